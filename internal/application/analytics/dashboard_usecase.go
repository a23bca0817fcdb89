// Package analytics contiene el resumen de pedidos del panel de administración.
package analytics

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/food-order-api/internal/application/dto"
	"github.com/jhoicas/food-order-api/internal/domain/entity"
	"github.com/jhoicas/food-order-api/internal/domain/repository"
)

const dashboardTopItems = 5 // número de items en el widget del dashboard

// DashboardUseCase genera el resumen de pedidos del día y del mes en curso.
// Solo lee del repositorio de pedidos.
type DashboardUseCase struct {
	orderRepo repository.OrderRepository
	now       func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(orderRepo repository.OrderRepository) *DashboardUseCase {
	return &DashboardUseCase{orderRepo: orderRepo, now: time.Now}
}

// GetSummary construye el DashboardSummaryDTO.
//   - Today / Month: pedidos no cancelados y suma de sus totales.
//   - ByStatus: conteo de todos los pedidos por estado actual.
//   - TopItems: items con más unidades en pedidos no cancelados del mes.
func (uc *DashboardUseCase) GetSummary() (*dto.DashboardSummaryDTO, error) {
	now := uc.now()

	// ── Rangos de fecha ────────────────────────────────────────────────────────
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	orders, err := uc.orderRepo.List()
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar pedidos: %w", err)
	}

	summary := &dto.DashboardSummaryDTO{
		Today:     dto.SalesWindowDTO{Revenue: decimal.Zero},
		Month:     dto.SalesWindowDTO{Revenue: decimal.Zero},
		ByStatus:  make(map[string]int, len(entity.OrderStatuses)),
		DateLabel: now.Format("2006-01-02"),
	}
	for _, st := range entity.OrderStatuses {
		summary.ByStatus[string(st)] = 0
	}

	top := map[string]*dto.TopItemDTO{}
	for _, o := range orders {
		summary.ByStatus[string(o.Status)]++
		if o.Status == entity.OrderStatusCanceled || o.CreatedAt.Before(monthStart) {
			continue
		}
		summary.Month.Orders++
		summary.Month.Revenue = summary.Month.Revenue.Add(o.TotalPrice)
		if !o.CreatedAt.Before(todayStart) {
			summary.Today.Orders++
			summary.Today.Revenue = summary.Today.Revenue.Add(o.TotalPrice)
		}
		for _, it := range o.Items {
			t, ok := top[it.MenuItemID]
			if !ok {
				t = &dto.TopItemDTO{MenuItemID: it.MenuItemID, Name: it.Name}
				top[it.MenuItemID] = t
			}
			t.Quantity += it.Quantity
		}
	}

	summary.TopItems = topItems(top, dashboardTopItems)
	return summary, nil
}

// topItems ordena por cantidad descendente (desempate por ID) y corta en n.
func topItems(m map[string]*dto.TopItemDTO, n int) []dto.TopItemDTO {
	out := make([]dto.TopItemDTO, 0, len(m))
	for _, t := range m {
		out = append(out, *t)
	}
	slices.SortFunc(out, func(a, b dto.TopItemDTO) int {
		if c := cmp.Compare(b.Quantity, a.Quantity); c != 0 {
			return c
		}
		return cmp.Compare(a.MenuItemID, b.MenuItemID)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
