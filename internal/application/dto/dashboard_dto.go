package dto

import "github.com/shopspring/decimal"

// SalesWindowDTO pedidos e ingresos de un rango de fechas (sin cancelados).
type SalesWindowDTO struct {
	Orders  int             `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

// TopItemDTO item más pedido en el mes.
type TopItemDTO struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
}

// DashboardSummaryDTO resumen de pedidos para el panel de administración.
type DashboardSummaryDTO struct {
	Today     SalesWindowDTO `json:"today"`
	Month     SalesWindowDTO `json:"month"`
	ByStatus  map[string]int `json:"byStatus"`
	TopItems  []TopItemDTO   `json:"topItems"`
	DateLabel string         `json:"dateLabel"`
}
