package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/food-order-api/internal/application/dto"
	"github.com/jhoicas/food-order-api/internal/application/ordering"
	"github.com/jhoicas/food-order-api/internal/application/usecase"
	"github.com/jhoicas/food-order-api/internal/domain"
	"github.com/jhoicas/food-order-api/internal/domain/entity"
	"github.com/jhoicas/food-order-api/internal/infrastructure/memory"
)

type cartFixture struct {
	menu  *memory.MenuItemRepo
	carts *memory.CartRepo
	uc    *usecase.CartUseCase
}

func newCartFixture(t *testing.T) cartFixture {
	t.Helper()
	menu := memory.NewMenuItemRepository()
	_, err := memory.SeedMenu(menu)
	require.NoError(t, err)
	carts := memory.NewCartRepository()
	return cartFixture{menu: menu, carts: carts, uc: usecase.NewCartUseCase(carts, menu, ordering.NewUserLocks())}
}

func setBody(t *testing.T, body string) dto.SetCartRequest {
	t.Helper()
	var in dto.SetCartRequest
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	return in
}

func TestCartSet_Reemplaza(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	out, err := f.uc.Set(ctx, "alice", setBody(t, `{"items":[{"menuItemId":"1","quantity":2},{"menuItemId":5,"quantity":"1"}]}`))
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Kung Pao Chicken", out.Items[0].Name)
	assert.Equal(t, "5", out.Items[1].MenuItemID)

	out, err = f.uc.Set(ctx, "alice", setBody(t, `{"items":[{"menuItemId":"2","quantity":1}]}`))
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "2", out.Items[0].MenuItemID)
}

func TestCartSet_VaciarBorraRegistro(t *testing.T) {
	for _, body := range []string{`{"items":[]}`, `{"items":null}`, `{}`} {
		t.Run(body, func(t *testing.T) {
			f := newCartFixture(t)
			_, err := f.uc.Set(context.Background(), "alice", setBody(t, `{"items":[{"menuItemId":"1","quantity":1}]}`))
			require.NoError(t, err)
			require.Equal(t, 1, f.carts.Len())

			out, err := f.uc.Set(context.Background(), "alice", setBody(t, body))
			require.NoError(t, err)
			assert.NotNil(t, out.Items)
			assert.Empty(t, out.Items)
			assert.Equal(t, 0, f.carts.Len())
		})
	}
}

func TestCartSet_Invalido(t *testing.T) {
	bodies := []string{
		`{"items":"1"}`,
		`{"items":{"menuItemId":"1"}}`,
		`{"items":[{"menuItemId":"1","quantity":0}]}`,
		`{"items":[{"menuItemId":"999","quantity":1}]}`,
		`{"items":[{"quantity":1}]}`,
	}
	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			f := newCartFixture(t)
			_, err := f.uc.Set(context.Background(), "alice", setBody(t, body))
			assert.ErrorIs(t, err, domain.ErrInvalidCartItems)
			assert.Equal(t, 0, f.carts.Len())
		})
	}
}

func TestCartSet_AgrupaDuplicados(t *testing.T) {
	f := newCartFixture(t)
	out, err := f.uc.Set(context.Background(), "alice",
		setBody(t, `{"items":[{"menuItemId":"3","quantity":1},{"menuItemId":"1","quantity":1},{"menuItemId":"3","quantity":2}]}`))
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "3", out.Items[0].MenuItemID)
	assert.Equal(t, 3, out.Items[0].Quantity)
}

func TestCartGet_OcultaItemsBorrados(t *testing.T) {
	f := newCartFixture(t)
	_, err := f.uc.Set(context.Background(), "alice", setBody(t, `{"items":[{"menuItemId":"1","quantity":1},{"menuItemId":"2","quantity":1}]}`))
	require.NoError(t, err)
	require.NoError(t, f.menu.Delete("1"))

	out, err := f.uc.Get("alice")
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "2", out.Items[0].MenuItemID)

	stored, err := f.carts.Get("alice")
	require.NoError(t, err)
	assert.Len(t, stored, 2, "la lectura no poda el registro")
}

func TestCartGet_PrecioCopiadoAlEscribir(t *testing.T) {
	f := newCartFixture(t)
	_, err := f.uc.Set(context.Background(), "alice", setBody(t, `{"items":[{"menuItemId":"1","quantity":1}]}`))
	require.NoError(t, err)

	item, err := f.menu.GetByID("1")
	require.NoError(t, err)
	item.Price = decimal.RequireFromString("99.00")
	require.NoError(t, f.menu.Update(item))

	out, err := f.uc.Get("alice")
	require.NoError(t, err)
	assert.Equal(t, "14.50", out.Items[0].Price.StringFixed(2))
}

func TestCartAddItem(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()
	add := func(id, qty string) (*dto.CartResponse, error) {
		return f.uc.AddItem(ctx, "alice", dto.AddCartItemRequest{MenuItemID: dto.ItemID(id), Quantity: json.Number(qty)})
	}

	_, err := add("1", "2")
	require.NoError(t, err)
	_, err = add("2", "1")
	require.NoError(t, err)
	out, err := add("1", "1")
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "1", out.Items[0].MenuItemID)
	assert.Equal(t, 3, out.Items[0].Quantity)

	out, err = add("1", "-3")
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "2", out.Items[0].MenuItemID)

	out, err = add("4", "-1")
	require.NoError(t, err)
	assert.Len(t, out.Items, 1, "restar de una línea inexistente no hace nada")

	_, err = add("1", "0")
	assert.ErrorIs(t, err, domain.ErrInvalidCartItems)
	_, err = add("1", "1.5")
	assert.ErrorIs(t, err, domain.ErrInvalidCartItems)
	_, err = add("999", "1")
	assert.ErrorIs(t, err, domain.ErrInvalidCartItems)
}

func TestCartAddItem_RecopiaPrecio(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()
	_, err := f.uc.AddItem(ctx, "alice", dto.AddCartItemRequest{MenuItemID: "1", Quantity: "1"})
	require.NoError(t, err)

	item, err := f.menu.GetByID("1")
	require.NoError(t, err)
	item.Price = decimal.RequireFromString("15.00")
	require.NoError(t, f.menu.Update(item))

	out, err := f.uc.AddItem(ctx, "alice", dto.AddCartItemRequest{MenuItemID: "1", Quantity: "1"})
	require.NoError(t, err)
	assert.Equal(t, "15.00", out.Items[0].Price.StringFixed(2))
	assert.Equal(t, 2, out.Items[0].Quantity)

	stored, err := f.carts.Get("alice")
	require.NoError(t, err)
	assert.Equal(t, []entity.CartEntry{{MenuItemID: "1", Quantity: 2, Name: "Kung Pao Chicken", Price: decimal.RequireFromString("15.00")}}, stored)
}
