package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/food-order-api/internal/application/dto"
	"github.com/jhoicas/food-order-api/internal/application/ordering"
	"github.com/jhoicas/food-order-api/internal/domain"
)

// OrderHandler pedidos del usuario autenticado.
type OrderHandler struct {
	uc      *ordering.OrderUseCase
	receipt *ordering.ReceiptUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *ordering.OrderUseCase, receipt *ordering.ReceiptUseCase) *OrderHandler {
	return &OrderHandler{uc: uc, receipt: receipt}
}

// List godoc
// @Summary      Mis pedidos
// @Tags         orders
// @Produce      json
// @Success      200  {object}  dto.OrderListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListOwn(GetUsername(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear pedido
// @Description  Valida las líneas contra el menú, calcula el total y vacía el carrito.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      dto.PlaceOrderRequest  true  "items"
// @Success      201   {object}  dto.OrderEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.PlaceOrderRequest
	if err := bindJSON(c, &in); err != nil {
		return writeError(c, domain.ErrInvalidOrderItems)
	}
	out, err := h.uc.PlaceOrder(c.UserContext(), GetUsername(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OrderEnvelope{Order: *out})
}

// GetByID godoc
// @Summary      Detalle de un pedido propio
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetOwn(GetUsername(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.OrderEnvelope{Order: *out})
}

// Cancel godoc
// @Summary      Cancelar un pedido propio
// @Description  Solo status "canceled" y solo desde pending.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "ID del pedido"
// @Param        body  body      dto.UpdateOrderStatusRequest  true  "status"
// @Success      200   {object}  dto.OrderEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [patch]
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := bindJSON(c, &in); err != nil {
		in = dto.UpdateOrderStatusRequest{}
	}
	out, err := h.uc.CancelOwn(GetUsername(c), c.Params("id"), in.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.OrderEnvelope{Order: *out})
}

// Receipt godoc
// @Summary      Recibo PDF de un pedido propio
// @Tags         orders
// @Produce      application/pdf
// @Param        id   path      string  true  "ID del pedido"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	data, filename, err := h.receipt.DownloadReceipt(c.UserContext(), GetUsername(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
