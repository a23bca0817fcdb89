package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/food-order-api/internal/application/analytics"
)

// DashboardHandler resumen de pedidos para administración.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen de pedidos (admin)
// @Description  Pedidos e ingresos del día y del mes (sin cancelados), conteo por estado y top 5 items.
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
