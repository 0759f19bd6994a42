// Package presenter assembles the public catalogue view: stored fields
// plus everything derived on the fly (expected price, display state,
// ask-price link).
package presenter

import (
	"github.com/shopspring/decimal"

	"dress-catalogue/internal/domain/entity"
	"dress-catalogue/internal/infrastructure/whatsapp"
)

// ItemView is the wire shape of one catalogue entry.
type ItemView struct {
	ID              int64               `json:"id"`
	Name            string              `json:"name"`
	ImageURL        string              `json:"image_url"`
	Price           decimal.Decimal     `json:"price"`
	DiscountPercent int                 `json:"discount_percent"`
	ExpectedPrice   decimal.Decimal     `json:"expected_price"`
	Sold            bool                `json:"sold"`
	DisplayState    entity.DisplayState `json:"display_state"`
	InterestCount   int                 `json:"interest_count"`
	AskPriceURL     string              `json:"ask_price_url,omitempty"`
}

type ItemPresenter struct {
	links *whatsapp.LinkBuilder
}

func NewItemPresenter(links *whatsapp.LinkBuilder) *ItemPresenter {
	return &ItemPresenter{links: links}
}

func (p *ItemPresenter) View(item *entity.Item) ItemView {
	return ItemView{
		ID:              item.ID,
		Name:            item.Name,
		ImageURL:        item.ImageURL,
		Price:           item.Price,
		DiscountPercent: item.DiscountPercent,
		ExpectedPrice:   item.ExpectedPrice(),
		Sold:            item.Sold,
		DisplayState:    item.DisplayState(),
		InterestCount:   item.InterestCount,
		AskPriceURL:     p.links.AskPriceLink(item),
	}
}

// Views maps a slice of items, always returning a non-nil slice so the
// empty catalogue serializes as [] instead of null.
func (p *ItemPresenter) Views(items []*entity.Item) []ItemView {
	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, p.View(item))
	}
	return views
}
