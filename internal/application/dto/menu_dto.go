package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/food-order-api/internal/domain/entity"
)

// CreateMenuItemRequest entrada para crear un item del menú.
type CreateMenuItemRequest struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"imageUrl"`
}

// UpdateMenuItemRequest actualización parcial. Cada campo distingue ausente de presente.
// Los campos de texto con un tipo distinto de string se tratan como ausentes;
// price presente con cualquier valor no numérico queda presente con valor cero (inválido).
type UpdateMenuItemRequest struct {
	Name        entity.Field[string]
	Price       entity.Field[decimal.Decimal]
	Description entity.Field[string]
	Category    entity.Field[string]
	ImageURL    entity.Field[string]
}

// UnmarshalJSON decodifica campo a campo para conservar la presencia de cada uno.
func (r *UpdateMenuItemRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Name = stringField(raw, "name")
	r.Description = stringField(raw, "description")
	r.Category = stringField(raw, "category")
	r.ImageURL = stringField(raw, "imageUrl")

	if v, ok := raw["price"]; ok {
		var price decimal.Decimal
		if err := json.Unmarshal(v, &price); err != nil {
			price = decimal.Zero
		}
		r.Price = entity.Some(price)
	}
	return nil
}

func stringField(raw map[string]json.RawMessage, key string) entity.Field[string] {
	v, ok := raw[key]
	if !ok {
		return entity.Field[string]{}
	}
	var s string
	if len(v) == 0 || v[0] != '"' || json.Unmarshal(v, &s) != nil {
		return entity.Field[string]{}
	}
	return entity.Some(s)
}

// MenuItemResponse salida de un item del menú.
type MenuItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"imageUrl"`
}

// MenuItemEnvelope {"item": ...}
type MenuItemEnvelope struct {
	Item MenuItemResponse `json:"item"`
}

// MenuItemListResponse {"items": [...]}
type MenuItemListResponse struct {
	Items []MenuItemResponse `json:"items"`
}
