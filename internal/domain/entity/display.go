package entity

// DisplayState tells the catalogue view how to render an item.
type DisplayState string

const (
	// DisplayStateNormal renders the item as available.
	DisplayStateNormal DisplayState = "normal"
	// DisplayStateGreyedOut renders the item dimmed and greyscaled.
	DisplayStateGreyedOut DisplayState = "greyed_out"
)

// DisplayStateFor maps the sold flag to a render directive.
func DisplayStateFor(sold bool) DisplayState {
	if sold {
		return DisplayStateGreyedOut
	}
	return DisplayStateNormal
}

// DisplayState returns the render directive for the item's sold flag.
func (i *Item) DisplayState() DisplayState {
	return DisplayStateFor(i.Sold)
}
