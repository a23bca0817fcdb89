package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado de un pedido.
type OrderStatus string

// Estados del ciclo de vida de un pedido.
const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCanceled  OrderStatus = "canceled"
)

// OrderStatuses todos los estados en orden de ciclo de vida.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusCompleted,
	OrderStatusCanceled,
}

// orderTransitions tabla de transiciones permitidas. completed y canceled son terminales.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusPreparing, OrderStatusReady, OrderStatusCompleted, OrderStatusCanceled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCompleted, OrderStatusCanceled},
	OrderStatusReady:     {OrderStatusCompleted, OrderStatusCanceled},
	OrderStatusCompleted: {},
	OrderStatusCanceled:  {},
}

// ParseOrderStatus valida un string contra los 5 estados conocidos.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	for _, st := range OrderStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// IsTerminal indica si el estado no admite más transiciones.
func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

// NextStatuses devuelve los estados alcanzables desde s según la tabla.
func (s OrderStatus) NextStatuses() []OrderStatus {
	next := orderTransitions[s]
	out := make([]OrderStatus, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo indica si la tabla permite pasar de s a target.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, st := range orderTransitions[s] {
		if st == target {
			return true
		}
	}
	return false
}

// OrderItem línea de un pedido. Name y UnitPrice son una foto del catálogo al momento de la compra.
type OrderItem struct {
	MenuItemID string
	Quantity   int
	Name       string
	UnitPrice  decimal.Decimal
}

// Order pedido confirmado. Solo Status cambia después de crearse.
type Order struct {
	ID         string
	Owner      string
	Items      []OrderItem
	TotalPrice decimal.Decimal
	Status     OrderStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
