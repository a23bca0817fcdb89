package entity

import "github.com/shopspring/decimal"

// CartEntry línea del carrito. Name y Price se copian del catálogo al escribir,
// por eso un cambio de precio posterior no afecta al carrito.
type CartEntry struct {
	MenuItemID string
	Quantity   int
	Name       string
	Price      decimal.Decimal
}
