package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceOrderRequest entrada para crear un pedido.
type PlaceOrderRequest struct {
	Items []LineItemRequest `json:"items"`
}

// UpdateOrderStatusRequest cambio de estado (cliente: solo "canceled").
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse línea de un pedido.
type OrderItemResponse struct {
	MenuItemID string          `json:"menuItemId"`
	Quantity   int             `json:"quantity"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID         string              `json:"id"`
	Owner      string              `json:"owner"`
	Items      []OrderItemResponse `json:"items"`
	TotalPrice decimal.Decimal     `json:"totalPrice"`
	Status     string              `json:"status"`
	CreatedAt  time.Time           `json:"createdAt"`
}

// OrderEnvelope {"order": ...}
type OrderEnvelope struct {
	Order OrderResponse `json:"order"`
}

// OrderListResponse {"orders": [...]}
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}
