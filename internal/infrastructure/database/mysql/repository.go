// Package mysql implements the catalogue repository on MySQL, for
// deployments that outgrow the spreadsheet backend.
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"dress-catalogue/internal/domain/entity"
	domainErrors "dress-catalogue/internal/domain/errors"
)

// NewDB opens and pings a MySQL connection pool.
func NewDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open mysql connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping mysql: %w", err)
	}
	return db, nil
}

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const itemColumns = "id, name, image_url, price, discount_percent, sold, interest_count"

func (r *Repository) FindAll(ctx context.Context) ([]*entity.Item, error) {
	query := "SELECT " + itemColumns + " FROM items ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrDatabaseError, err)
	}
	defer rows.Close()

	var items []*entity.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domainErrors.ErrDatabaseError, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrDatabaseError, err)
	}
	return items, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*entity.Item, error) {
	query := "SELECT " + itemColumns + " FROM items WHERE id = ?"

	item, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domainErrors.ErrItemNotFound
		}
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrDatabaseError, err)
	}
	return item, nil
}

func (r *Repository) Create(ctx context.Context, item *entity.Item) (*entity.Item, error) {
	query := `INSERT INTO items (name, image_url, price, discount_percent, sold, interest_count)
		VALUES (?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		item.Name, item.ImageURL, item.Price, item.DiscountPercent, item.Sold, item.InterestCount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrDatabaseError, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrDatabaseError, err)
	}

	item.ID = id
	return item, nil
}

func (r *Repository) Update(ctx context.Context, item *entity.Item) (*entity.Item, error) {
	query := `UPDATE items
		SET name = ?, image_url = ?, price = ?, discount_percent = ?, sold = ?, interest_count = ?
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		item.Name, item.ImageURL, item.Price, item.DiscountPercent, item.Sold, item.InterestCount, item.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrDatabaseError, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrDatabaseError, err)
	}
	if affected == 0 {
		// Either the row is gone or nothing changed; only the former is
		// an error, so check.
		if _, err := r.FindByID(ctx, item.ID); err != nil {
			return nil, err
		}
	}
	return item, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%w: %v", domainErrors.ErrDatabaseError, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", domainErrors.ErrDatabaseError, err)
	}
	if affected == 0 {
		return domainErrors.ErrItemNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*entity.Item, error) {
	var item entity.Item
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.ImageURL,
		&item.Price,
		&item.DiscountPercent,
		&item.Sold,
		&item.InterestCount,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
