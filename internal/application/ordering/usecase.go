package ordering

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/food-order-api/internal/application/dto"
	"github.com/jhoicas/food-order-api/internal/domain"
	"github.com/jhoicas/food-order-api/internal/domain/entity"
	pricing "github.com/jhoicas/food-order-api/internal/domain/ordering"
	"github.com/jhoicas/food-order-api/internal/domain/repository"
	"github.com/jhoicas/food-order-api/pkg/metrics"
)

// Options ajustes del motor de pedidos.
type Options struct {
	// EnforceTransitions obliga al admin a respetar la tabla de transiciones.
	// En false el admin puede fijar cualquiera de los 5 estados desde cualquier estado.
	EnforceTransitions bool
}

// OrderUseCase motor de pedidos: validación de líneas, totales, creación y cambios de estado.
type OrderUseCase struct {
	menuRepo  repository.MenuItemRepository
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	locks     *UserLocks
	opts      Options

	// statusMu serializa leer-verificar-escribir del estado de un pedido.
	statusMu sync.Mutex
}

// NewOrderUseCase construye el motor. locks debe ser el mismo registro que usa el carrito.
func NewOrderUseCase(
	menuRepo repository.MenuItemRepository,
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	locks *UserLocks,
	opts Options,
) *OrderUseCase {
	return &OrderUseCase{
		menuRepo:  menuRepo,
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		locks:     locks,
		opts:      opts,
	}
}

// ValidateItems resuelve las líneas de un pedido. Lista vacía o cualquier línea inválida
// devuelve domain.ErrInvalidOrderItems.
func (uc *OrderUseCase) ValidateItems(lines []dto.LineItemRequest) ([]entity.OrderItem, error) {
	if len(lines) == 0 {
		return nil, domain.ErrInvalidOrderItems
	}
	items, err := ResolveLines(uc.menuRepo, lines)
	if IsUnresolved(err) {
		return nil, domain.ErrInvalidOrderItems
	}
	if err != nil {
		return nil, fmt.Errorf("ordering: resolver líneas: %w", err)
	}
	return items, nil
}

// ComputeTotal total del pedido con redondeo único al final.
func ComputeTotal(items []entity.OrderItem) decimal.Decimal {
	lines := make([]pricing.PricedLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, pricing.PricedLine{UnitPrice: it.UnitPrice, Quantity: it.Quantity})
	}
	return pricing.TotalCalculator(lines)
}

// PlaceOrder crea un pedido pending para username y vacía su carrito.
// Creación y vaciado corren bajo el candado del usuario.
func (uc *OrderUseCase) PlaceOrder(ctx context.Context, username string, in dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
	unlock, err := uc.locks.Lock(ctx, username)
	if err != nil {
		return nil, err
	}
	defer unlock()

	items, err := uc.ValidateItems(in.Items)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	order := &entity.Order{
		Owner:      username,
		Items:      items,
		TotalPrice: ComputeTotal(items),
		Status:     entity.OrderStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("ordering: crear pedido: %w", err)
	}
	if err := uc.cartRepo.Set(username, nil); err != nil {
		return nil, fmt.Errorf("ordering: vaciar carrito: %w", err)
	}

	metrics.OrdersPlaced.Inc()
	metrics.OrderRevenue.Add(order.TotalPrice.InexactFloat64())
	log.Info().
		Str("order_id", order.ID).
		Str("owner", username).
		Int("lines", len(items)).
		Str("total", order.TotalPrice.StringFixed(2)).
		Msg("pedido creado")

	return toOrderResponse(order), nil
}

// ListOwn pedidos de username ordenados por ID.
func (uc *OrderUseCase) ListOwn(username string) (*dto.OrderListResponse, error) {
	list, err := uc.orderRepo.ListByOwner(username)
	if err != nil {
		return nil, err
	}
	return toOrderList(list), nil
}

// GetOwn devuelve el pedido solo si pertenece a username; si no, domain.ErrOrderNotFound.
func (uc *OrderUseCase) GetOwn(username, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.getOwned(username, orderID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// CancelOwn única transición permitida al cliente: pending -> canceled.
//   - domain.ErrOrderNotFound         el pedido no existe o es de otro usuario.
//   - domain.ErrInvalidStatusForUser  el estado pedido no es "canceled".
//   - domain.ErrCannotCancel          el pedido ya no está pending.
func (uc *OrderUseCase) CancelOwn(username, orderID, requested string) (*dto.OrderResponse, error) {
	uc.statusMu.Lock()
	defer uc.statusMu.Unlock()

	order, err := uc.getOwned(username, orderID)
	if err != nil {
		return nil, err
	}
	if requested != string(entity.OrderStatusCanceled) {
		return nil, domain.ErrInvalidStatusForUser
	}
	if order.Status != entity.OrderStatusPending {
		return nil, domain.ErrCannotCancel
	}
	updated, err := uc.orderRepo.UpdateStatus(order.ID, entity.OrderStatusCanceled)
	if err != nil {
		return nil, err
	}
	uc.recordStatusChange(updated, order.Status, entity.RoleUser)
	return toOrderResponse(updated), nil
}

// ListAll todos los pedidos (admin). status vacío no filtra; un valor desconocido
// devuelve domain.ErrInvalidStatus.
func (uc *OrderUseCase) ListAll(status string) (*dto.OrderListResponse, error) {
	var filter entity.OrderStatus
	if status != "" {
		st, ok := entity.ParseOrderStatus(status)
		if !ok {
			return nil, domain.ErrInvalidStatus
		}
		filter = st
	}
	list, err := uc.orderRepo.List()
	if err != nil {
		return nil, err
	}
	if filter != "" {
		kept := list[:0]
		for _, o := range list {
			if o.Status == filter {
				kept = append(kept, o)
			}
		}
		list = kept
	}
	return toOrderList(list), nil
}

// SetStatusAsAdmin fija el estado de cualquier pedido.
//   - domain.ErrInvalidStatus      status no es uno de los 5 conocidos.
//   - domain.ErrOrderNotFound      el pedido no existe.
//   - domain.ErrInvalidTransition  solo con EnforceTransitions, si la tabla no lo permite.
func (uc *OrderUseCase) SetStatusAsAdmin(orderID, status string) (*dto.OrderResponse, error) {
	target, ok := entity.ParseOrderStatus(status)
	if !ok {
		return nil, domain.ErrInvalidStatus
	}

	uc.statusMu.Lock()
	defer uc.statusMu.Unlock()

	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	if uc.opts.EnforceTransitions {
		if order.Status == target {
			return toOrderResponse(order), nil
		}
		if !order.Status.CanTransitionTo(target) {
			return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, target)
		}
	}
	updated, err := uc.orderRepo.UpdateStatus(order.ID, target)
	if err != nil {
		return nil, err
	}
	uc.recordStatusChange(updated, order.Status, entity.RoleAdmin)
	return toOrderResponse(updated), nil
}

func (uc *OrderUseCase) getOwned(username, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.Owner != username {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (uc *OrderUseCase) recordStatusChange(order *entity.Order, from entity.OrderStatus, actor string) {
	metrics.OrderStatusChanges.WithLabelValues(string(order.Status), actor).Inc()
	log.Info().
		Str("order_id", order.ID).
		Str("from", string(from)).
		Str("to", string(order.Status)).
		Str("actor", actor).
		Msg("estado de pedido actualizado")
}

func toOrderList(list []*entity.Order) *dto.OrderListResponse {
	orders := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		orders = append(orders, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{Orders: orders}
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
			Name:       it.Name,
			UnitPrice:  it.UnitPrice,
		})
	}
	return &dto.OrderResponse{
		ID:         o.ID,
		Owner:      o.Owner,
		Items:      items,
		TotalPrice: o.TotalPrice,
		Status:     string(o.Status),
		CreatedAt:  o.CreatedAt,
	}
}
