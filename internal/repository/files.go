// Package repository provides file-backed access to the persisted
// collections.
package repository

// Collection file names, matching the layout of the service this one
// replaces so existing data files keep working.
const (
	ProductsFile  = "product.json"
	InventoryFile = "inventory.json"
	OrdersFile    = "orders.json"
	CartFile      = "cart.json"
)

// Files lists every collection file the service owns.
var Files = []string{ProductsFile, InventoryFile, OrdersFile, CartFile}
