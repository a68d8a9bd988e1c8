package model

// Order is an append-only record of orders.json. The order management
// endpoint accepts arbitrary fields, so the record is an open map;
// the "id" key is assigned by the order service.
type Order map[string]any

// CartItem is one entry of cart.json. Cart submissions carry
// arbitrary item fields as well.
type CartItem map[string]any
