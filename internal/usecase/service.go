package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"dress-catalogue/internal/domain/entity"
	domainErrors "dress-catalogue/internal/domain/errors"
)

type ItemUsecase interface {
	GetAllItems(ctx context.Context) ([]*entity.Item, error)
	GetItemByID(ctx context.Context, id int64) (*entity.Item, error)
	CreateItem(ctx context.Context, input CreateItemInput) (*entity.Item, error)
	UpdateItem(ctx context.Context, id int64, input UpdateItemInput) (*entity.Item, error)
	DeleteItem(ctx context.Context, id int64) error
	RegisterInterest(ctx context.Context, id int64) (*entity.Item, error)
	GetCatalogueSummary(ctx context.Context) (*CatalogueSummary, error)
}

type CreateItemInput struct {
	Name            string          `json:"name"`
	ImageURL        string          `json:"image_url"`
	Price           decimal.Decimal `json:"price"`
	DiscountPercent int             `json:"discount_percent"`
}

// UpdateItemInput carries the PATCH payload. Pointer fields are nil when
// the field is not part of the update.
type UpdateItemInput struct {
	Name            *string          `json:"name,omitempty"`
	ImageURL        *string          `json:"image_url,omitempty"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	DiscountPercent *int             `json:"discount_percent,omitempty"`
	Sold            *bool            `json:"sold,omitempty"`
}

// CatalogueSummary aggregates the catalogue for the admin panel.
type CatalogueSummary struct {
	Total         int `json:"total"`
	Available     int `json:"available"`
	Sold          int `json:"sold"`
	TotalInterest int `json:"total_interest"`
}

type itemUsecase struct {
	itemRepo ItemRepository
}

func NewItemUsecase(itemRepo ItemRepository) ItemUsecase {
	return &itemUsecase{
		itemRepo: itemRepo,
	}
}

func (u *itemUsecase) GetAllItems(ctx context.Context) ([]*entity.Item, error) {
	items, err := u.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve items: %w", err)
	}

	return items, nil
}

func (u *itemUsecase) GetItemByID(ctx context.Context, id int64) (*entity.Item, error) {
	if id <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}

	item, err := u.itemRepo.FindByID(ctx, id)
	if err != nil {
		if domainErrors.IsNotFoundError(err) {
			return nil, domainErrors.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to retrieve item: %w", err)
	}

	return item, nil
}

func (u *itemUsecase) CreateItem(ctx context.Context, input CreateItemInput) (*entity.Item, error) {
	item, err := entity.NewItem(
		input.Name,
		input.ImageURL,
		input.Price,
		input.DiscountPercent,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domainErrors.ErrInvalidInput, err.Error())
	}

	createdItem, err := u.itemRepo.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return createdItem, nil
}

// UpdateItem applies a partial update to an existing item. Updatable
// fields: name, image_url, price, discount_percent, sold. The ID and
// interest count never change through this path.
func (u *itemUsecase) UpdateItem(ctx context.Context, id int64, input UpdateItemInput) (*entity.Item, error) {
	if id <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}

	if input.Name == nil && input.ImageURL == nil && input.Price == nil &&
		input.DiscountPercent == nil && input.Sold == nil {
		return nil, fmt.Errorf("%w: no fields to update", domainErrors.ErrInvalidInput)
	}

	if err := validateUpdateItemInput(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domainErrors.ErrInvalidInput, err.Error())
	}

	item, err := u.itemRepo.FindByID(ctx, id)
	if err != nil {
		if domainErrors.IsNotFoundError(err) {
			return nil, domainErrors.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to retrieve item: %w", err)
	}

	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
	}
	if input.ImageURL != nil {
		item.ImageURL = strings.TrimSpace(*input.ImageURL)
	}
	if input.Price != nil {
		item.Price = input.Price.Round(2)
	}
	if input.DiscountPercent != nil {
		item.DiscountPercent = *input.DiscountPercent
	}
	if input.Sold != nil {
		item.Sold = *input.Sold
	}

	updatedItem, err := u.itemRepo.Update(ctx, item)
	if err != nil {
		if domainErrors.IsNotFoundError(err) {
			return nil, domainErrors.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return updatedItem, nil
}

func (u *itemUsecase) DeleteItem(ctx context.Context, id int64) error {
	if id <= 0 {
		return domainErrors.ErrInvalidInput
	}

	_, err := u.itemRepo.FindByID(ctx, id)
	if err != nil {
		if domainErrors.IsNotFoundError(err) {
			return domainErrors.ErrItemNotFound
		}
		return fmt.Errorf("failed to check item existence: %w", err)
	}

	err = u.itemRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	return nil
}

// RegisterInterest bumps the interest counter of an item and returns the
// updated item. Sold items still accept interest.
func (u *itemUsecase) RegisterInterest(ctx context.Context, id int64) (*entity.Item, error) {
	if id <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}

	item, err := u.itemRepo.FindByID(ctx, id)
	if err != nil {
		if domainErrors.IsNotFoundError(err) {
			return nil, domainErrors.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to retrieve item: %w", err)
	}

	item.RegisterInterest()

	updatedItem, err := u.itemRepo.Update(ctx, item)
	if err != nil {
		if domainErrors.IsNotFoundError(err) {
			return nil, domainErrors.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to register interest: %w", err)
	}

	return updatedItem, nil
}

func (u *itemUsecase) GetCatalogueSummary(ctx context.Context) (*CatalogueSummary, error) {
	items, err := u.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get catalogue summary: %w", err)
	}

	summary := &CatalogueSummary{Total: len(items)}
	for _, item := range items {
		if item.Sold {
			summary.Sold++
		} else {
			summary.Available++
		}
		summary.TotalInterest += item.InterestCount
	}

	return summary, nil
}

// validateUpdateItemInput checks only the fields present in the update.
func validateUpdateItemInput(input UpdateItemInput) error {
	var errs []string

	if input.Name != nil {
		if *input.Name == "" {
			errs = append(errs, "name cannot be empty")
		} else if len(*input.Name) > entity.MaxNameLength {
			errs = append(errs, fmt.Sprintf("name must be %d characters or less", entity.MaxNameLength))
		}
	}

	if input.ImageURL != nil {
		if *input.ImageURL == "" {
			errs = append(errs, "image_url cannot be empty")
		} else if !entity.IsValidImageURL(*input.ImageURL) {
			errs = append(errs, "image_url must be an absolute http(s) URL")
		}
	}

	if input.Price != nil && input.Price.IsNegative() {
		errs = append(errs, "price must be 0 or greater")
	}

	if input.DiscountPercent != nil && (*input.DiscountPercent < 0 || *input.DiscountPercent > 100) {
		errs = append(errs, "discount_percent must be between 0 and 100")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, ", "))
	}

	return nil
}
