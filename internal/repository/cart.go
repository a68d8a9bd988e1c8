package repository

import (
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/commerce-mock/internal/model"
	"github.com/tuanvumaihuynh/commerce-mock/internal/storage/jsonfile"
)

type CartRepository interface {
	// AppendItems adds the submitted items to the cart and returns
	// the number of items added.
	AppendItems(ctx context.Context, items []model.CartItem) (int, error)
}

type cartRepository struct {
	store *jsonfile.Store
}

func NewCartRepository(store *jsonfile.Store) CartRepository {
	return &cartRepository{store: store}
}

func (r *cartRepository) AppendItems(_ context.Context, items []model.CartItem) (int, error) {
	err := jsonfile.Update(r.store, CartFile, func(cart []model.CartItem) ([]model.CartItem, error) {
		return append(cart, items...), nil
	})
	if err != nil {
		return 0, fmt.Errorf("append cart items: %w", err)
	}

	return len(items), nil
}
