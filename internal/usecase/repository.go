package usecase

import (
	"context"

	"dress-catalogue/internal/domain/entity"
)

// ItemRepository defines the interface for catalogue row access.
type ItemRepository interface {
	// FindAll retrieves all items in store order.
	FindAll(ctx context.Context) ([]*entity.Item, error)

	// FindByID retrieves an item by ID.
	FindByID(ctx context.Context, id int64) (*entity.Item, error)

	// Create stores a new item and returns it with the assigned ID.
	Create(ctx context.Context, item *entity.Item) (*entity.Item, error)

	// Update rewrites the stored row identified by item.ID and returns
	// the stored result.
	Update(ctx context.Context, item *entity.Item) (*entity.Item, error)

	// Delete removes an item by ID.
	Delete(ctx context.Context, id int64) error
}
