package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías válidas del menú.
const (
	CategoryMain    = "main"
	CategorySide    = "side"
	CategoryDrink   = "drink"
	CategoryDessert = "dessert"
)

// Categories lista ordenada de categorías permitidas.
var Categories = []string{CategoryMain, CategorySide, CategoryDrink, CategoryDessert}

// IsValidCategory indica si c es una de las categorías permitidas.
func IsValidCategory(c string) bool {
	for _, cat := range Categories {
		if cat == c {
			return true
		}
	}
	return false
}

// MenuItem representa un plato o bebida del catálogo.
type MenuItem struct {
	ID          string
	Name        string
	Price       decimal.Decimal // siempre positivo, redondeado a 2 decimales
	Description string
	Category    string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MenuItemPatch actualización parcial de un MenuItem: solo se aplican los campos presentes.
type MenuItemPatch struct {
	Name        Field[string]
	Price       Field[decimal.Decimal]
	Description Field[string]
	Category    Field[string]
	ImageURL    Field[string]
}

// Apply copia en item los campos presentes del patch.
func (p MenuItemPatch) Apply(item *MenuItem) {
	if p.Name.Present {
		item.Name = p.Name.Value
	}
	if p.Price.Present {
		item.Price = p.Price.Value
	}
	if p.Description.Present {
		item.Description = p.Description.Value
	}
	if p.Category.Present {
		item.Category = p.Category.Value
	}
	if p.ImageURL.Present {
		item.ImageURL = p.ImageURL.Value
	}
}
