package mysql

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dress-catalogue/internal/domain/entity"
	domainErrors "dress-catalogue/internal/domain/errors"
)

var itemColumnNames = []string{"id", "name", "image_url", "price", "discount_percent", "sold", "interest_count"}

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_FindAll(t *testing.T) {
	t.Run("ok: scans every row", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery("SELECT (.+) FROM items ORDER BY id").
			WillReturnRows(sqlmock.NewRows(itemColumnNames).
				AddRow(1, "Red Anarkali", "https://img.example.com/1.jpg", "1000.00", 20, false, 3).
				AddRow(2, "Silk Lehenga", "https://img.example.com/2.jpg", "2500.50", 0, true, 7))

		items, err := repo.FindAll(context.Background())

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.True(t, decimal.RequireFromString("1000.00").Equal(items[0].Price))
		assert.True(t, items[1].Sold)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: query fails", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery("SELECT (.+) FROM items ORDER BY id").
			WillReturnError(errors.New("connection refused"))

		_, err := repo.FindAll(context.Background())

		assert.ErrorIs(t, err, domainErrors.ErrDatabaseError)
	})
}

func TestRepository_FindByID(t *testing.T) {
	t.Run("ok: existing item", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery("SELECT (.+) FROM items WHERE id = ?").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(itemColumnNames).
				AddRow(1, "Red Anarkali", "https://img.example.com/1.jpg", "1000.00", 20, false, 3))

		item, err := repo.FindByID(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, "Red Anarkali", item.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: unknown id", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery("SELECT (.+) FROM items WHERE id = ?").
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(itemColumnNames))

		_, err := repo.FindByID(context.Background(), 99)

		assert.ErrorIs(t, err, domainErrors.ErrItemNotFound)
	})
}

func TestRepository_Create(t *testing.T) {
	t.Run("ok: returns the generated id", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec("INSERT INTO items").
			WithArgs("Green Kurti", "https://img.example.com/k.jpg", sqlmock.AnyArg(), 10, false, 0).
			WillReturnResult(sqlmock.NewResult(5, 1))

		item, err := entity.NewItem("Green Kurti", "https://img.example.com/k.jpg", decimal.NewFromInt(600), 10)
		require.NoError(t, err)

		created, err := repo.Create(context.Background(), item)

		require.NoError(t, err)
		assert.Equal(t, int64(5), created.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: insert fails", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec("INSERT INTO items").
			WillReturnError(errors.New("table gone"))

		item, err := entity.NewItem("Green Kurti", "https://img.example.com/k.jpg", decimal.NewFromInt(600), 10)
		require.NoError(t, err)

		_, err = repo.Create(context.Background(), item)

		assert.ErrorIs(t, err, domainErrors.ErrDatabaseError)
	})
}

func TestRepository_Update(t *testing.T) {
	item := &entity.Item{
		ID:              2,
		Name:            "Silk Lehenga",
		ImageURL:        "https://img.example.com/2.jpg",
		Price:           decimal.NewFromInt(2000),
		DiscountPercent: 25,
		InterestCount:   7,
	}

	t.Run("ok: row updated", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec("UPDATE items").
			WithArgs(item.Name, item.ImageURL, sqlmock.AnyArg(), 25, false, 7, int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		updated, err := repo.Update(context.Background(), item)

		require.NoError(t, err)
		assert.Equal(t, item, updated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: row vanished", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec("UPDATE items").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT (.+) FROM items WHERE id = ?").
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows(itemColumnNames))

		_, err := repo.Update(context.Background(), item)

		assert.ErrorIs(t, err, domainErrors.ErrItemNotFound)
	})

	t.Run("ok: no-op update on an existing row", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec("UPDATE items").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT (.+) FROM items WHERE id = ?").
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows(itemColumnNames).
				AddRow(2, item.Name, item.ImageURL, "2000.00", 25, false, 7))

		updated, err := repo.Update(context.Background(), item)

		require.NoError(t, err)
		assert.Equal(t, item, updated)
	})
}

func TestRepository_Delete(t *testing.T) {
	t.Run("ok: row deleted", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec("DELETE FROM items WHERE id = ?").
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), 1)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: unknown id", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec("DELETE FROM items WHERE id = ?").
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 99)

		assert.ErrorIs(t, err, domainErrors.ErrItemNotFound)
	})
}
