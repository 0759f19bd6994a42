package entity

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// currencyPlaces is the number of fractional digits kept on prices.
const currencyPlaces = 2

// MaxNameLength is the longest allowed item name.
const MaxNameLength = 100

var oneHundred = decimal.NewFromInt(100)

// Item is one catalogue entry. ExpectedPrice is always derived from
// Price and DiscountPercent and is never stored.
type Item struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	ImageURL        string          `json:"image_url"`
	Price           decimal.Decimal `json:"price"`
	DiscountPercent int             `json:"discount_percent"`
	Sold            bool            `json:"sold"`
	InterestCount   int             `json:"interest_count"`
}

// NewItem validates the input and builds a new, unsold item with no
// recorded interest. The ID is assigned by the repository on create.
func NewItem(name, imageURL string, price decimal.Decimal, discountPercent int) (*Item, error) {
	var errs []string

	if name == "" {
		errs = append(errs, "name is required")
	} else if len(name) > MaxNameLength {
		errs = append(errs, fmt.Sprintf("name must be %d characters or less", MaxNameLength))
	}

	if imageURL == "" {
		errs = append(errs, "image_url is required")
	} else if !IsValidImageURL(imageURL) {
		errs = append(errs, "image_url must be an absolute http(s) URL")
	}

	if price.IsNegative() {
		errs = append(errs, "price must be 0 or greater")
	}

	if discountPercent < 0 || discountPercent > 100 {
		errs = append(errs, "discount_percent must be between 0 and 100")
	}

	if len(errs) > 0 {
		return nil, errors.New(strings.Join(errs, ", "))
	}

	return &Item{
		Name:            strings.TrimSpace(name),
		ImageURL:        strings.TrimSpace(imageURL),
		Price:           price.Round(currencyPlaces),
		DiscountPercent: discountPercent,
	}, nil
}

// IsValidImageURL reports whether s is an absolute http or https URL.
func IsValidImageURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ExpectedPrice is the price after the discount is applied, rounded to
// currency precision: price * (1 - discount_percent/100).
func (i *Item) ExpectedPrice() decimal.Decimal {
	remaining := decimal.NewFromInt(int64(100 - i.DiscountPercent))
	return i.Price.Mul(remaining).Div(oneHundred).Round(currencyPlaces)
}

// RegisterInterest records one more interested viewer.
func (i *Item) RegisterInterest() {
	i.InterestCount++
}
