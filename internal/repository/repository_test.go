package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alterach/toko-kopi-khaleed/internal/entity"
)

var productCols = []string{"id", "name", "category", "price", "description", "image_url", "is_available", "created_at"}

func newMockRepo(t *testing.T) (*ProductRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewProductRepository(db), mock
}

func TestListAvailable(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2026, time.January, 2, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM products WHERE is_available = true ORDER BY created_at ASC`).
		WillReturnRows(sqlmock.NewRows(productCols).
			AddRow(1, "Cold Brew", "coffee", int64(52000), "Diseduh dingin 12 jam", "cold-brew.jpg", true, created).
			AddRow(2, "Kentang Goreng", "snack", int64(18000), nil, nil, true, created.Add(time.Hour)))

	products, err := repo.ListAvailable(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, entity.Product{
		ID:          1,
		Name:        "Cold Brew",
		Category:    entity.CategoryCoffee,
		Price:       52000,
		Description: "Diseduh dingin 12 jam",
		ImageURL:    "cold-brew.jpg",
		IsAvailable: true,
		CreatedAt:   created,
	}, products[0])
	assert.Equal(t, entity.CategorySnack, products[1].Category)
	assert.Empty(t, products[1].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAvailable_Empty(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT (.+) FROM products`).WillReturnRows(sqlmock.NewRows(productCols))

	products, err := repo.ListAvailable(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestListAvailable_QueryError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT (.+) FROM products`).WillReturnError(errors.New("connection refused"))

	_, err := repo.ListAvailable(context.Background())

	assert.EqualError(t, err, "connection refused")
}

func TestGetProduct(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT (.+) FROM products WHERE id = \?`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(productCols).
			AddRow(7, "Matcha Latte", "non-coffee", int64(35000), nil, "matcha.jpg", true, time.Now()))

	product, err := repo.GetProduct(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "Matcha Latte", product.Name)
	assert.Equal(t, entity.CategoryNonCoffee, product.Category)
}

func TestGetProduct_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT (.+) FROM products WHERE id = \?`).
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetProduct(context.Background(), 99)

	assert.ErrorIs(t, err, ErrProductNotFound)
}
