package repository

import (
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/commerce-mock/internal/model"
	"github.com/tuanvumaihuynh/commerce-mock/internal/storage/jsonfile"
)

type InventoryRepository interface {
	ListAll(ctx context.Context) ([]model.InventoryItem, error)

	// Append adds a stock row for the given product, assigning the
	// next ledger id under the inventory file lock.
	Append(ctx context.Context, productID, stock int) (model.InventoryItem, error)
}

type inventoryRepository struct {
	store *jsonfile.Store
}

func NewInventoryRepository(store *jsonfile.Store) InventoryRepository {
	return &inventoryRepository{store: store}
}

func (r *inventoryRepository) ListAll(_ context.Context) ([]model.InventoryItem, error) {
	items, err := jsonfile.Load[model.InventoryItem](r.store, InventoryFile)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}

	return items, nil
}

func (r *inventoryRepository) Append(_ context.Context, productID, stock int) (model.InventoryItem, error) {
	var created model.InventoryItem

	err := jsonfile.Update(r.store, InventoryFile, func(items []model.InventoryItem) ([]model.InventoryItem, error) {
		maxID := 0
		for _, item := range items {
			if item.ID > maxID {
				maxID = item.ID
			}
		}

		created = model.InventoryItem{
			ID:        maxID + 1,
			ProductID: productID,
			Stock:     stock,
		}

		return append(items, created), nil
	})
	if err != nil {
		return model.InventoryItem{}, fmt.Errorf("append inventory item: %w", err)
	}

	return created, nil
}
