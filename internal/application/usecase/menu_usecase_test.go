package usecase_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/food-order-api/internal/application/dto"
	"github.com/jhoicas/food-order-api/internal/application/usecase"
	"github.com/jhoicas/food-order-api/internal/domain"
	"github.com/jhoicas/food-order-api/internal/infrastructure/memory"
)

func validCreate() dto.CreateMenuItemRequest {
	return dto.CreateMenuItemRequest{
		Name:        "Mapo Tofu",
		Price:       decimal.RequireFromString("9.5"),
		Description: "Tofu picante",
		Category:    "main",
	}
}

func patch(t *testing.T, body string) dto.UpdateMenuItemRequest {
	t.Helper()
	var in dto.UpdateMenuItemRequest
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	return in
}

func TestMenuCreate_Normaliza(t *testing.T) {
	uc := usecase.NewMenuUseCase(memory.NewMenuItemRepository())
	in := validCreate()
	in.Name = "  Café  "
	in.Price = decimal.RequireFromString("2.005")
	in.Description = strings.Repeat("x", 400)

	out, err := uc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, "1", out.ID)
	assert.Equal(t, "Café", out.Name)
	assert.Equal(t, "2.01", out.Price.StringFixed(2))
	assert.Len(t, []rune(out.Description), 300)
	assert.Equal(t, "", out.ImageURL)
}

func TestMenuCreate_Invalido(t *testing.T) {
	uc := usecase.NewMenuUseCase(memory.NewMenuItemRepository())
	cases := map[string]func(*dto.CreateMenuItemRequest){
		"sin nombre":          func(r *dto.CreateMenuItemRequest) { r.Name = "   " },
		"sin descripción":     func(r *dto.CreateMenuItemRequest) { r.Description = "" },
		"precio cero":         func(r *dto.CreateMenuItemRequest) { r.Price = decimal.Zero },
		"precio negativo":     func(r *dto.CreateMenuItemRequest) { r.Price = decimal.RequireFromString("-1") },
		"precio redondea a 0": func(r *dto.CreateMenuItemRequest) { r.Price = decimal.RequireFromString("0.004") },
		"categoría inválida":  func(r *dto.CreateMenuItemRequest) { r.Category = "soup" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validCreate()
			mutate(&in)
			_, err := uc.Create(in)
			assert.ErrorIs(t, err, domain.ErrInvalidMenuItem)
		})
	}
	list, err := uc.List()
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

func TestMenuUpdate_Parcial(t *testing.T) {
	uc := usecase.NewMenuUseCase(memory.NewMenuItemRepository())
	created, err := uc.Create(validCreate())
	require.NoError(t, err)

	out, err := uc.Update(created.ID, patch(t, `{"price": 11.999, "description": 42}`))
	require.NoError(t, err)
	assert.Equal(t, "12.00", out.Price.StringFixed(2))
	assert.Equal(t, "Mapo Tofu", out.Name)
	assert.Equal(t, "Tofu picante", out.Description, "un campo no string se ignora")
}

func TestMenuUpdate_NadaSeAplicaSiFalla(t *testing.T) {
	uc := usecase.NewMenuUseCase(memory.NewMenuItemRepository())
	created, err := uc.Create(validCreate())
	require.NoError(t, err)

	_, err = uc.Update(created.ID, patch(t, `{"name": "Otro", "price": 0}`))
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
	_, err = uc.Update(created.ID, patch(t, `{"name": "Otro", "price": "abc"}`))
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
	_, err = uc.Update(created.ID, patch(t, `{"name": "  "}`))
	assert.ErrorIs(t, err, domain.ErrInvalidName)
	_, err = uc.Update(created.ID, patch(t, `{"name": "Otro", "category": "soup"}`))
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mapo Tofu", got.Name)
}

func TestMenuUpdate_NoEncontradoPrimero(t *testing.T) {
	uc := usecase.NewMenuUseCase(memory.NewMenuItemRepository())
	_, err := uc.Update("42", patch(t, `{"price": -1}`))
	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)
}

func TestMenuDelete(t *testing.T) {
	uc := usecase.NewMenuUseCase(memory.NewMenuItemRepository())
	a, err := uc.Create(validCreate())
	require.NoError(t, err)
	require.NoError(t, uc.Delete(a.ID))
	assert.ErrorIs(t, uc.Delete(a.ID), domain.ErrMenuItemNotFound)
	_, err = uc.GetByID(a.ID)
	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)

	b, err := uc.Create(validCreate())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID, "los IDs no se reutilizan")
}
