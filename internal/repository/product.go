package repository

import (
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/commerce-mock/internal/model"
	"github.com/tuanvumaihuynh/commerce-mock/internal/storage/jsonfile"
)

type ProductRepository interface {
	ListAll(ctx context.Context) ([]model.Product, error)

	// Update runs a read-modify-write cycle over the whole catalog
	// under the product file lock. The callback returns the records
	// to persist.
	Update(ctx context.Context, fn func(products []model.Product) ([]model.Product, error)) error
}

type productRepository struct {
	store *jsonfile.Store
}

func NewProductRepository(store *jsonfile.Store) ProductRepository {
	return &productRepository{store: store}
}

func (r *productRepository) ListAll(_ context.Context) ([]model.Product, error) {
	products, err := jsonfile.Load[model.Product](r.store, ProductsFile)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	return products, nil
}

func (r *productRepository) Update(_ context.Context, fn func([]model.Product) ([]model.Product, error)) error {
	if err := jsonfile.Update(r.store, ProductsFile, fn); err != nil {
		return fmt.Errorf("update products: %w", err)
	}

	return nil
}

// NextProductID derives the id for a new product: one past the
// highest existing id, or 1 for an empty catalog.
func NextProductID(products []model.Product) int {
	maxID := 0
	for _, p := range products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}
