package model

// InventoryItem is one stock ledger row of inventory.json, paired
// with a product at creation time.
type InventoryItem struct {
	ID        int `json:"id"`
	ProductID int `json:"productId"`
	Stock     int `json:"stock"`
}
