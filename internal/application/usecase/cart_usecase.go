package usecase

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/jhoicas/food-order-api/internal/application/dto"
	"github.com/jhoicas/food-order-api/internal/application/ordering"
	"github.com/jhoicas/food-order-api/internal/domain"
	"github.com/jhoicas/food-order-api/internal/domain/entity"
	"github.com/jhoicas/food-order-api/internal/domain/repository"
)

// CartUseCase carrito por usuario. Las escrituras comparten candado con el checkout.
type CartUseCase struct {
	cartRepo repository.CartRepository
	menuRepo repository.MenuItemRepository
	locks    *ordering.UserLocks
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(cartRepo repository.CartRepository, menuRepo repository.MenuItemRepository, locks *ordering.UserLocks) *CartUseCase {
	return &CartUseCase{cartRepo: cartRepo, menuRepo: menuRepo, locks: locks}
}

// Get devuelve el carrito omitiendo líneas cuyo item ya no está en el catálogo.
// No modifica lo guardado.
func (uc *CartUseCase) Get(username string) (*dto.CartResponse, error) {
	entries, err := uc.cartRepo.Get(username)
	if err != nil {
		return nil, err
	}
	return uc.visible(entries)
}

// Set reemplaza el carrito completo. items ausente, null o [] lo vacía.
// Líneas repetidas se agrupan sumando cantidades.
func (uc *CartUseCase) Set(ctx context.Context, username string, in dto.SetCartRequest) (*dto.CartResponse, error) {
	lines, err := in.Lines()
	if err != nil {
		return nil, domain.ErrInvalidCartItems
	}
	resolved, err := ordering.ResolveLines(uc.menuRepo, lines)
	if ordering.IsUnresolved(err) {
		return nil, domain.ErrInvalidCartItems
	}
	if err != nil {
		return nil, err
	}
	entries := toCartEntries(ordering.MergeDuplicates(resolved))

	unlock, err := uc.locks.Lock(ctx, username)
	if err != nil {
		return nil, err
	}
	defer unlock()
	if err := uc.cartRepo.Set(username, entries); err != nil {
		return nil, err
	}
	return uc.visible(entries)
}

// AddItem suma quantity (entero distinto de cero, puede ser negativo) a la línea del item.
// La línea toma nombre y precio actuales; si queda en 0 o menos se elimina.
func (uc *CartUseCase) AddItem(ctx context.Context, username string, in dto.AddCartItemRequest) (*dto.CartResponse, error) {
	delta, ok := parseDelta(in.Quantity)
	if !ok || in.MenuItemID == "" {
		return nil, domain.ErrInvalidCartItems
	}
	item, err := uc.menuRepo.GetByID(string(in.MenuItemID))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrInvalidCartItems
	}

	unlock, err := uc.locks.Lock(ctx, username)
	if err != nil {
		return nil, err
	}
	defer unlock()

	entries, err := uc.cartRepo.Get(username)
	if err != nil {
		return nil, err
	}
	entries = mergeEntry(entries, item, delta)
	if err := uc.cartRepo.Set(username, entries); err != nil {
		return nil, err
	}
	return uc.visible(entries)
}

func mergeEntry(entries []entity.CartEntry, item *entity.MenuItem, delta int) []entity.CartEntry {
	for i, e := range entries {
		if e.MenuItemID != item.ID {
			continue
		}
		qty := e.Quantity + delta
		if qty <= 0 {
			return append(entries[:i], entries[i+1:]...)
		}
		entries[i] = entity.CartEntry{MenuItemID: item.ID, Quantity: qty, Name: item.Name, Price: item.Price}
		return entries
	}
	if delta <= 0 {
		return entries
	}
	return append(entries, entity.CartEntry{MenuItemID: item.ID, Quantity: delta, Name: item.Name, Price: item.Price})
}

func (uc *CartUseCase) visible(entries []entity.CartEntry) (*dto.CartResponse, error) {
	items := make([]dto.CartItemResponse, 0, len(entries))
	for _, e := range entries {
		mi, err := uc.menuRepo.GetByID(e.MenuItemID)
		if err != nil {
			return nil, err
		}
		if mi == nil {
			continue
		}
		items = append(items, dto.CartItemResponse{
			MenuItemID: e.MenuItemID,
			Quantity:   e.Quantity,
			Name:       e.Name,
			Price:      e.Price,
		})
	}
	return &dto.CartResponse{Items: items}, nil
}

func toCartEntries(items []entity.OrderItem) []entity.CartEntry {
	out := make([]entity.CartEntry, 0, len(items))
	for _, it := range items {
		out = append(out, entity.CartEntry{
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
			Name:       it.Name,
			Price:      it.UnitPrice,
		})
	}
	return out
}

// parseDelta acepta enteros distintos de cero, incluidos negativos.
func parseDelta(n json.Number) (int, bool) {
	s := strings.TrimSpace(n.String())
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		if v == 0 || v > math.MaxInt32 || v < math.MinInt32 {
			return 0, false
		}
		return int(v), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f == 0 || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
