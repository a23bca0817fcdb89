package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/food-order-api/internal/application/dto"
	"github.com/jhoicas/food-order-api/internal/application/usecase"
	"github.com/jhoicas/food-order-api/internal/domain"
)

// CartHandler maneja el carrito del usuario autenticado.
type CartHandler struct {
	uc *usecase.CartUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *usecase.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Get godoc
// @Summary      Ver carrito
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetUsername(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Set godoc
// @Summary      Reemplazar carrito
// @Description  items ausente, null o [] vacía el carrito.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SetCartRequest  true  "items"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cart [put]
func (h *CartHandler) Set(c *fiber.Ctx) error {
	var in dto.SetCartRequest
	if err := bindJSON(c, &in); err != nil {
		return writeError(c, domain.ErrInvalidCartItems)
	}
	out, err := h.uc.Set(c.UserContext(), GetUsername(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Sumar unidades de un item al carrito
// @Description  quantity es un entero distinto de cero; negativo resta y la línea desaparece al llegar a 0.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AddCartItemRequest  true  "menuItemId, quantity"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := bindJSON(c, &in); err != nil {
		return writeError(c, domain.ErrInvalidCartItems)
	}
	out, err := h.uc.AddItem(c.UserContext(), GetUsername(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
