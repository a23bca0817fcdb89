package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/food-order-api/internal/application/dto"
	"github.com/jhoicas/food-order-api/internal/application/usecase"
	"github.com/jhoicas/food-order-api/internal/domain"
)

// MenuHandler maneja el catálogo. Lectura pública, escritura admin.
type MenuHandler struct {
	uc *usecase.MenuUseCase
}

// NewMenuHandler construye el handler.
func NewMenuHandler(uc *usecase.MenuUseCase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// List godoc
// @Summary      Listar menú
// @Tags         menu
// @Produce      json
// @Success      200  {object}  dto.MenuItemListResponse
// @Router       /api/menu-items [get]
func (h *MenuHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener item del menú
// @Tags         menu
// @Produce      json
// @Param        id   path      string  true  "ID del item"
// @Success      200  {object}  dto.MenuItemEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/menu-items/{id} [get]
func (h *MenuHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MenuItemEnvelope{Item: *out})
}

// Create godoc
// @Summary      Crear item del menú (admin)
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateMenuItemRequest  true  "name, price, description, category, imageUrl"
// @Success      201   {object}  dto.MenuItemEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/menu-items [post]
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMenuItemRequest
	if err := bindJSON(c, &in); err != nil {
		return writeError(c, domain.ErrInvalidMenuItem)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MenuItemEnvelope{Item: *out})
}

// Update godoc
// @Summary      Actualizar item del menú (admin)
// @Description  Solo se aplican los campos presentes; si uno es inválido no se aplica ninguno.
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "ID del item"
// @Param        body  body      dto.UpdateMenuItemRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.MenuItemEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/menu-items/{id} [patch]
func (h *MenuHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateMenuItemRequest
	if err := bindJSON(c, &in); err != nil {
		if _, err := h.uc.GetByID(id); err != nil {
			return writeError(c, err)
		}
		return writeError(c, domain.ErrInvalidMenuItem)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MenuItemEnvelope{Item: *out})
}

// Delete godoc
// @Summary      Eliminar item del menú (admin)
// @Tags         menu
// @Produce      json
// @Param        id   path      string  true  "ID del item"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/menu-items/{id} [delete]
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}
