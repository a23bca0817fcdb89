package ordering

import (
	"errors"

	"github.com/jhoicas/food-order-api/internal/application/dto"
	"github.com/jhoicas/food-order-api/internal/domain/entity"
	"github.com/jhoicas/food-order-api/internal/domain/repository"
)

// errUnresolvedLine una línea sin item existente o con cantidad no entera positiva.
var errUnresolvedLine = errors.New("línea no resuelve contra el catálogo")

// ResolveLines valida cada línea contra el catálogo y copia nombre y precio vigentes.
// Todo o nada: si una línea falla no se devuelve ninguna.
// Una lista vacía es válida aquí; cada caller decide si la acepta.
func ResolveLines(catalog repository.MenuItemRepository, lines []dto.LineItemRequest) ([]entity.OrderItem, error) {
	out := make([]entity.OrderItem, 0, len(lines))
	for _, l := range lines {
		item, err := resolveLine(catalog, l)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func resolveLine(catalog repository.MenuItemRepository, l dto.LineItemRequest) (entity.OrderItem, error) {
	id := string(l.MenuItemID)
	if id == "" {
		return entity.OrderItem{}, errUnresolvedLine
	}
	qty, ok := l.IntQuantity()
	if !ok {
		return entity.OrderItem{}, errUnresolvedLine
	}
	mi, err := catalog.GetByID(id)
	if err != nil {
		return entity.OrderItem{}, err
	}
	if mi == nil {
		return entity.OrderItem{}, errUnresolvedLine
	}
	return entity.OrderItem{
		MenuItemID: mi.ID,
		Quantity:   qty,
		Name:       mi.Name,
		UnitPrice:  mi.Price,
	}, nil
}

// IsUnresolved indica si err proviene de una línea inválida (y no de un fallo del repositorio).
func IsUnresolved(err error) bool {
	return errors.Is(err, errUnresolvedLine)
}

// MergeDuplicates agrupa líneas con el mismo menuItemId sumando cantidades.
// Conserva la posición de la primera aparición.
func MergeDuplicates(items []entity.OrderItem) []entity.OrderItem {
	pos := make(map[string]int, len(items))
	out := make([]entity.OrderItem, 0, len(items))
	for _, it := range items {
		if i, ok := pos[it.MenuItemID]; ok {
			out[i].Quantity += it.Quantity
			continue
		}
		pos[it.MenuItemID] = len(out)
		out = append(out, it)
	}
	return out
}
