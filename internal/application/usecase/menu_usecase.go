package usecase

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/food-order-api/internal/application/dto"
	"github.com/jhoicas/food-order-api/internal/domain"
	"github.com/jhoicas/food-order-api/internal/domain/entity"
	"github.com/jhoicas/food-order-api/internal/domain/ordering"
	"github.com/jhoicas/food-order-api/internal/domain/repository"
)

// Longitudes máximas (en runas) de los textos del catálogo.
const (
	maxNameLen        = 100
	maxDescriptionLen = 300
	maxImageURLLen    = 300
	maxCategoryLen    = 50
)

// MenuUseCase casos de uso del catálogo. Escritura solo admin (lo garantiza el router).
type MenuUseCase struct {
	repo repository.MenuItemRepository
}

// NewMenuUseCase construye el caso de uso.
func NewMenuUseCase(repo repository.MenuItemRepository) *MenuUseCase {
	return &MenuUseCase{repo: repo}
}

// List devuelve el catálogo completo ordenado por ID.
func (uc *MenuUseCase) List() (*dto.MenuItemListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MenuItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, toMenuItemResponse(it))
	}
	return &dto.MenuItemListResponse{Items: items}, nil
}

// GetByID obtiene un item. domain.ErrMenuItemNotFound si no existe.
func (uc *MenuUseCase) GetByID(id string) (*dto.MenuItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrMenuItemNotFound
	}
	out := toMenuItemResponse(item)
	return &out, nil
}

// Create valida y crea un item. Nombre, descripción, precio y categoría son obligatorios;
// cualquier fallo es domain.ErrInvalidMenuItem.
func (uc *MenuUseCase) Create(in dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error) {
	name := sanitize(in.Name, maxNameLen)
	description := sanitize(in.Description, maxDescriptionLen)
	category := sanitize(in.Category, maxCategoryLen)
	price, ok := normalizePrice(in.Price)
	if name == "" || description == "" || !ok || !entity.IsValidCategory(category) {
		return nil, domain.ErrInvalidMenuItem
	}

	now := time.Now()
	item := &entity.MenuItem{
		Name:        name,
		Price:       price,
		Description: description,
		Category:    category,
		ImageURL:    sanitize(in.ImageURL, maxImageURLLen),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	log.Info().Str("menu_item_id", item.ID).Str("name", item.Name).Msg("item de menú creado")
	out := toMenuItemResponse(item)
	return &out, nil
}

// Update aplica solo los campos presentes. Si alguno es inválido no se aplica ninguno.
//   - domain.ErrMenuItemNotFound  el ID no existe (se verifica primero).
//   - domain.ErrInvalidName       name presente y vacío tras sanear.
//   - domain.ErrInvalidPrice      price presente y no positivo.
//   - domain.ErrInvalidCategory   category presente y fuera de la lista.
func (uc *MenuUseCase) Update(id string, in dto.UpdateMenuItemRequest) (*dto.MenuItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrMenuItemNotFound
	}

	patch, err := buildPatch(in)
	if err != nil {
		return nil, err
	}
	patch.Apply(item)
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	log.Info().Str("menu_item_id", item.ID).Msg("item de menú actualizado")
	out := toMenuItemResponse(item)
	return &out, nil
}

// Delete borra un item. Los pedidos existentes no cambian.
func (uc *MenuUseCase) Delete(id string) error {
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	log.Info().Str("menu_item_id", id).Msg("item de menú eliminado")
	return nil
}

func buildPatch(in dto.UpdateMenuItemRequest) (entity.MenuItemPatch, error) {
	var patch entity.MenuItemPatch
	if in.Name.Present {
		name := sanitize(in.Name.Value, maxNameLen)
		if name == "" {
			return patch, domain.ErrInvalidName
		}
		patch.Name = entity.Some(name)
	}
	if in.Price.Present {
		price, ok := normalizePrice(in.Price.Value)
		if !ok {
			return patch, domain.ErrInvalidPrice
		}
		patch.Price = entity.Some(price)
	}
	if in.Category.Present {
		category := sanitize(in.Category.Value, maxCategoryLen)
		if !entity.IsValidCategory(category) {
			return patch, domain.ErrInvalidCategory
		}
		patch.Category = entity.Some(category)
	}
	if in.Description.Present {
		patch.Description = entity.Some(sanitize(in.Description.Value, maxDescriptionLen))
	}
	if in.ImageURL.Present {
		patch.ImageURL = entity.Some(sanitize(in.ImageURL.Value, maxImageURLLen))
	}
	return patch, nil
}

// sanitize recorta espacios, normaliza a NFC y trunca a max runas.
func sanitize(s string, max int) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	r := []rune(s)
	if len(r) > max {
		s = strings.TrimSpace(string(r[:max]))
	}
	return s
}

// normalizePrice redondea a 2 decimales; el resultado debe ser positivo.
func normalizePrice(p decimal.Decimal) (decimal.Decimal, bool) {
	p = ordering.Round2(p)
	if !p.IsPositive() {
		return decimal.Zero, false
	}
	return p, true
}

func toMenuItemResponse(it *entity.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Price:       it.Price,
		Description: it.Description,
		Category:    it.Category,
		ImageURL:    it.ImageURL,
	}
}
