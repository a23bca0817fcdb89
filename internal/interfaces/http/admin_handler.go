package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/food-order-api/internal/application/dto"
	"github.com/jhoicas/food-order-api/internal/application/ordering"
)

// AdminOrderHandler gestión de pedidos de todos los usuarios (solo admin).
type AdminOrderHandler struct {
	uc *ordering.OrderUseCase
}

// NewAdminOrderHandler construye el handler.
func NewAdminOrderHandler(uc *ordering.OrderUseCase) *AdminOrderHandler {
	return &AdminOrderHandler{uc: uc}
}

// List godoc
// @Summary      Todos los pedidos (admin)
// @Tags         admin
// @Produce      json
// @Param        status  query     string  false  "pending | preparing | ready | completed | canceled"
// @Success      200     {object}  dto.OrderListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Router       /api/admin/orders [get]
func (h *AdminOrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListAll(c.Query("status"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SetStatus godoc
// @Summary      Cambiar estado de un pedido (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "ID del pedido"
// @Param        body  body      dto.UpdateOrderStatusRequest  true  "status"
// @Success      200   {object}  dto.OrderEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/orders/{id} [patch]
func (h *AdminOrderHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := bindJSON(c, &in); err != nil {
		in = dto.UpdateOrderStatusRequest{}
	}
	out, err := h.uc.SetStatusAsAdmin(c.Params("id"), in.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.OrderEnvelope{Order: *out})
}
