package repository

import (
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/commerce-mock/internal/model"
	"github.com/tuanvumaihuynh/commerce-mock/internal/storage/jsonfile"
)

type OrderRepository interface {
	// Append persists the order, assigning "order_<n>" where n is the
	// collection size plus one, and returns the stored record.
	Append(ctx context.Context, order model.Order) (model.Order, error)
}

type orderRepository struct {
	store *jsonfile.Store
}

func NewOrderRepository(store *jsonfile.Store) OrderRepository {
	return &orderRepository{store: store}
}

func (r *orderRepository) Append(_ context.Context, order model.Order) (model.Order, error) {
	if order == nil {
		order = model.Order{}
	}

	err := jsonfile.Update(r.store, OrdersFile, func(orders []model.Order) ([]model.Order, error) {
		order["id"] = fmt.Sprintf("order_%d", len(orders)+1)
		return append(orders, order), nil
	})
	if err != nil {
		return nil, fmt.Errorf("append order: %w", err)
	}

	return order, nil
}
