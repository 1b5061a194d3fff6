package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alterach/toko-kopi-khaleed/internal/entity"
)

var ErrProductNotFound = errors.New("product not found")

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db}
}

const productColumns = `id, name, category, price, description, image_url, is_available, created_at`

// ListAvailable returns the products on sale, oldest first.
func (r *ProductRepository) ListAvailable(ctx context.Context) ([]entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE is_available = true ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []entity.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *ProductRepository) GetProduct(ctx context.Context, id int) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ?`
	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", ErrProductNotFound, id)
		}
		return nil, err
	}

	return product, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row scanner) (*entity.Product, error) {
	var (
		product     entity.Product
		category    string
		description sql.NullString
		imageURL    sql.NullString
	)
	err := row.Scan(&product.ID, &product.Name, &category, &product.Price, &description, &imageURL, &product.IsAvailable, &product.CreatedAt)
	if err != nil {
		return nil, err
	}

	product.Category = entity.Category(category)
	product.Description = description.String
	product.ImageURL = imageURL.String
	return &product, nil
}
