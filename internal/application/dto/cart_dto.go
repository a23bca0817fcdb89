package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var errNotAnArray = errors.New("items debe ser un array")

// ItemID identificador de un item del menú; acepta string o número en el JSON.
type ItemID string

// UnmarshalJSON acepta "3" o 3. null deja el ID vacío.
func (id *ItemID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ItemID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ItemID(n.String())
	return nil
}

// LineItemRequest línea de carrito o pedido tal como llega del cliente.
type LineItemRequest struct {
	MenuItemID ItemID      `json:"menuItemId"`
	Quantity   json.Number `json:"quantity"`
}

// IntQuantity devuelve la cantidad si es un entero positivo.
// Acepta 2, 2.0, "2" y 1e2; rechaza 0, negativos, fracciones y valores ausentes.
func (l LineItemRequest) IntQuantity() (int, bool) {
	s := strings.TrimSpace(l.Quantity.String())
	if s == "" {
		return 0, false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n <= 0 || n > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 || f > math.MaxInt32 || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// SetCartRequest reemplazo completo del carrito.
type SetCartRequest struct {
	Items json.RawMessage `json:"items"`
}

// Lines decodifica items. Ausente o null devuelve nil (vaciar carrito);
// cualquier valor que no sea un array de líneas es error.
func (r SetCartRequest) Lines() ([]LineItemRequest, error) {
	raw := bytes.TrimSpace(r.Items)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	if raw[0] != '[' {
		return nil, errNotAnArray
	}
	var lines []LineItemRequest
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// AddCartItemRequest suma (o resta, con quantity negativa) unidades de un item al carrito.
type AddCartItemRequest struct {
	MenuItemID ItemID      `json:"menuItemId"`
	Quantity   json.Number `json:"quantity"`
}

// CartItemResponse línea del carrito con nombre y precio copiados al momento de agregarla.
type CartItemResponse struct {
	MenuItemID string          `json:"menuItemId"`
	Quantity   int             `json:"quantity"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
}

// CartResponse {"items": [...]}
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
}
