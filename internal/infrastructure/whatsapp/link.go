// Package whatsapp builds hand-off links that open a chat pre-filled
// with the details of a catalogue item.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"dress-catalogue/internal/domain/entity"
)

const baseURL = "https://wa.me/"

// LinkBuilder renders ask-price links for a configured phone number.
// A builder with an empty number produces no links.
type LinkBuilder struct {
	number string
}

func NewLinkBuilder(number string) *LinkBuilder {
	return &LinkBuilder{number: sanitizeNumber(number)}
}

// AskPriceLink returns a wa.me URL whose text mentions the item and its
// discounted price, or "" when no number is configured.
func (b *LinkBuilder) AskPriceLink(item *entity.Item) string {
	if b.number == "" {
		return ""
	}

	text := fmt.Sprintf("Hi! I am interested in %q (item #%d), listed at %s. Is it still available?",
		item.Name, item.ID, item.ExpectedPrice().StringFixed(2))

	return baseURL + b.number + "?text=" + url.QueryEscape(text)
}

// sanitizeNumber strips everything wa.me rejects: spaces, dashes and a
// leading plus sign.
func sanitizeNumber(number string) string {
	cleaned := strings.NewReplacer(" ", "", "-", "", "+", "").Replace(number)
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return cleaned
}
