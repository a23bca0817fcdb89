package http_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/food-order-api/internal/application/dto"
	"github.com/jhoicas/food-order-api/internal/application/ordering"
)

// ──────────────────────────────────────────────────────────────────────────────
// Identidad
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_RegistroYLogin(t *testing.T) {
	s := newTestServer(t, ordering.Options{})

	resp := s.do(t, http.MethodPost, "/api/users", "", `{"username":"  alice "}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var user dto.UserResponse
	decode(t, resp, &user)
	assert.Equal(t, dto.UserResponse{Username: "alice", Role: "user"}, user)

	cases := []struct {
		path, body string
		status     int
		code       string
	}{
		{"/api/users", `{"username":"alice"}`, http.StatusConflict, "user-exists"},
		{"/api/users", `{"username":"a"}`, http.StatusBadRequest, "invalid-username"},
		{"/api/users", `{"username":"dog"}`, http.StatusForbidden, "forbidden-username"},
		{"/api/users", `not json`, http.StatusBadRequest, "invalid-username"},
		{"/api/sessions", `{"username":"dog"}`, http.StatusForbidden, "auth-forbidden"},
		{"/api/sessions", `{"username":"ghost"}`, http.StatusUnauthorized, "user-not-found"},
		{"/api/sessions", `{"username":"bad name"}`, http.StatusBadRequest, "invalid-username"},
	}
	for _, tc := range cases {
		resp := s.do(t, http.MethodPost, tc.path, "", tc.body)
		assert.Equal(t, tc.status, resp.StatusCode, tc.path+" "+tc.body)
		assert.Equal(t, tc.code, errorCode(t, resp), tc.path+" "+tc.body)
	}
}

func TestAPI_SesionCompleta(t *testing.T) {
	s := newTestServer(t, ordering.Options{})

	var me dto.SessionResponse
	decode(t, s.do(t, http.MethodGet, "/api/session", "", ""), &me)
	assert.False(t, me.LoggedIn)

	sid := s.login(t, "admin")
	decode(t, s.do(t, http.MethodGet, "/api/session", sid, ""), &me)
	assert.Equal(t, dto.SessionResponse{LoggedIn: true, Username: "admin", Role: "admin"}, me)

	resp := s.do(t, http.MethodDelete, "/api/sessions", sid, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var cleared bool
	for _, ck := range resp.Cookies() {
		if ck.Name == testCookie && ck.Value == "" {
			cleared = true
		}
	}
	assert.True(t, cleared, "logout borra la cookie")
	var out map[string]bool
	decode(t, resp, &out)
	assert.True(t, out["loggedOut"])

	// Logout repetido y sin sesión siguen respondiendo loggedOut.
	decode(t, s.do(t, http.MethodDelete, "/api/sessions", sid, ""), &out)
	assert.True(t, out["loggedOut"])
	decode(t, s.do(t, http.MethodDelete, "/api/sessions", "", ""), &out)
	assert.True(t, out["loggedOut"])

	decode(t, s.do(t, http.MethodGet, "/api/session", sid, ""), &me)
	assert.False(t, me.LoggedIn)
}

func TestAPI_LoginCookieHttpOnly(t *testing.T) {
	s := newTestServer(t, ordering.Options{})
	resp := s.do(t, http.MethodPost, "/api/sessions", "", `{"username":"admin"}`)
	defer resp.Body.Close()
	var found bool
	for _, ck := range resp.Cookies() {
		if ck.Name == testCookie {
			found = true
			assert.True(t, ck.HttpOnly)
			assert.Equal(t, http.SameSiteLaxMode, ck.SameSite)
		}
	}
	assert.True(t, found)
}

// ──────────────────────────────────────────────────────────────────────────────
// Menú
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_MenuPublico(t *testing.T) {
	s := newTestServer(t, ordering.Options{})
	var list dto.MenuItemListResponse
	decode(t, s.do(t, http.MethodGet, "/api/menu-items", "", ""), &list)
	require.Len(t, list.Items, 10)
	assert.Equal(t, "1", list.Items[0].ID)

	var env dto.MenuItemEnvelope
	decode(t, s.do(t, http.MethodGet, "/api/menu-items/5", "", ""), &env)
	assert.Equal(t, "Spring Rolls", env.Item.Name)

	resp := s.do(t, http.MethodGet, "/api/menu-items/999", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "menu-item-not-found", errorCode(t, resp))
}

func TestAPI_MenuEscrituraAdmin(t *testing.T) {
	s := newTestServer(t, ordering.Options{})
	admin := s.login(t, "admin")
	alice := s.login(t, "alice")
	body := `{"name":"Mapo Tofu","price":9.5,"description":"Picante","category":"main"}`

	resp := s.do(t, http.MethodPost, "/api/menu-items", "", body)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "auth-missing", errorCode(t, resp))

	resp = s.do(t, http.MethodPost, "/api/menu-items", alice, body)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "not-admin", errorCode(t, resp))

	resp = s.do(t, http.MethodPost, "/api/menu-items", admin, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var env dto.MenuItemEnvelope
	decode(t, resp, &env)
	assert.Equal(t, "11", env.Item.ID)
	assert.Equal(t, "9.50", env.Item.Price.StringFixed(2))

	resp = s.do(t, http.MethodPost, "/api/menu-items", admin, `{"name":"X","price":"abc","description":"d","category":"main"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid-menu-item", errorCode(t, resp))

	resp = s.do(t, http.MethodPatch, "/api/menu-items/11", admin, `{"price":-3}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid-price", errorCode(t, resp))

	resp = s.do(t, http.MethodPatch, "/api/menu-items/999", admin, `{"price":-3}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "menu-item-not-found", errorCode(t, resp))

	decode(t, s.do(t, http.MethodPatch, "/api/menu-items/11", admin, `{"category":"side"}`), &env)
	assert.Equal(t, "side", env.Item.Category)
	assert.Equal(t, "Mapo Tofu", env.Item.Name)

	var del map[string]bool
	decode(t, s.do(t, http.MethodDelete, "/api/menu-items/11", admin, ""), &del)
	assert.True(t, del["deleted"])
	resp = s.do(t, http.MethodDelete, "/api/menu-items/11", admin, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "menu-item-not-found", errorCode(t, resp))
}

// ──────────────────────────────────────────────────────────────────────────────
// Carrito y pedidos
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_CarritoAPedido(t *testing.T) {
	s := newTestServer(t, ordering.Options{})
	alice := s.login(t, "alice")

	resp := s.do(t, http.MethodGet, "/api/cart", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "auth-missing", errorCode(t, resp))

	var cart dto.CartResponse
	decode(t, s.do(t, http.MethodPut, "/api/cart", alice, `{"items":[{"menuItemId":"1","quantity":2}]}`), &cart)
	require.Len(t, cart.Items, 1)
	decode(t, s.do(t, http.MethodPost, "/api/cart/items", alice, `{"menuItemId":"5","quantity":1}`), &cart)
	require.Len(t, cart.Items, 2)

	resp = s.do(t, http.MethodPut, "/api/cart", alice, `{"items":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid-cart-items", errorCode(t, resp))

	resp = s.do(t, http.MethodPost, "/api/orders", alice, `{"items":[{"menuItemId":"1","quantity":2},{"menuItemId":"5","quantity":1}]}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var env dto.OrderEnvelope
	decode(t, resp, &env)
	assert.Equal(t, "35.00", env.Order.TotalPrice.StringFixed(2))
	assert.Equal(t, "pending", env.Order.Status)
	assert.Equal(t, "alice", env.Order.Owner)

	decode(t, s.do(t, http.MethodGet, "/api/cart", alice, ""), &cart)
	assert.Empty(t, cart.Items, "el carrito se vacía al crear el pedido")

	resp = s.do(t, http.MethodPost, "/api/orders", alice, `{"items":[]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid-order-items", errorCode(t, resp))
}

func TestAPI_PedidosPropios(t *testing.T) {
	s := newTestServer(t, ordering.Options{})
	alice := s.login(t, "alice")
	bob := s.login(t, "bob")

	var env dto.OrderEnvelope
	decode(t, s.do(t, http.MethodPost, "/api/orders", alice, `{"items":[{"menuItemId":"7","quantity":1}]}`), &env)
	id := env.Order.ID

	var list dto.OrderListResponse
	decode(t, s.do(t, http.MethodGet, "/api/orders", bob, ""), &list)
	assert.Empty(t, list.Orders)

	resp := s.do(t, http.MethodGet, "/api/orders/"+id, bob, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "order-not-found", errorCode(t, resp))

	resp = s.do(t, http.MethodPatch, "/api/orders/"+id, alice, `{"status":"completed"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid-status-for-user", errorCode(t, resp))

	decode(t, s.do(t, http.MethodPatch, "/api/orders/"+id, alice, `{"status":"canceled"}`), &env)
	assert.Equal(t, "canceled", env.Order.Status)

	resp = s.do(t, http.MethodPatch, "/api/orders/"+id, alice, `{"status":"canceled"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "cannot-cancel", errorCode(t, resp))
}

func TestAPI_Recibo(t *testing.T) {
	s := newTestServer(t, ordering.Options{})
	alice := s.login(t, "alice")
	var env dto.OrderEnvelope
	decode(t, s.do(t, http.MethodPost, "/api/orders", alice, `{"items":[{"menuItemId":"1","quantity":1}]}`), &env)

	resp := s.do(t, http.MethodGet, "/api/orders/"+env.Order.ID+"/receipt", alice, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "pedido_"+env.Order.ID+".pdf")
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))

	bob := s.login(t, "bob")
	resp = s.do(t, http.MethodGet, "/api/orders/"+env.Order.ID+"/receipt", bob, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "order-not-found", errorCode(t, resp))
}

// ──────────────────────────────────────────────────────────────────────────────
// Administración de pedidos
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_AdminPermisivo(t *testing.T) {
	s := newTestServer(t, ordering.Options{})
	admin := s.login(t, "admin")
	alice := s.login(t, "alice")
	var env dto.OrderEnvelope
	decode(t, s.do(t, http.MethodPost, "/api/orders", alice, `{"items":[{"menuItemId":"1","quantity":1}]}`), &env)
	id := env.Order.ID

	resp := s.do(t, http.MethodGet, "/api/admin/orders", alice, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "not-admin", errorCode(t, resp))

	resp = s.do(t, http.MethodPatch, "/api/admin/orders/"+id, admin, `{"status":"lost"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid-status", errorCode(t, resp))

	resp = s.do(t, http.MethodPatch, "/api/admin/orders/999", admin, `{"status":"ready"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "order-not-found", errorCode(t, resp))

	decode(t, s.do(t, http.MethodPatch, "/api/admin/orders/"+id, admin, `{"status":"completed"}`), &env)
	assert.Equal(t, "completed", env.Order.Status)
	decode(t, s.do(t, http.MethodPatch, "/api/admin/orders/"+id, admin, `{"status":"pending"}`), &env)
	assert.Equal(t, "pending", env.Order.Status)

	var list dto.OrderListResponse
	decode(t, s.do(t, http.MethodGet, "/api/admin/orders?status=pending", admin, ""), &list)
	assert.Len(t, list.Orders, 1)
	decode(t, s.do(t, http.MethodGet, "/api/admin/orders?status=ready", admin, ""), &list)
	assert.Empty(t, list.Orders)

	resp = s.do(t, http.MethodGet, "/api/admin/orders?status=nope", admin, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid-status", errorCode(t, resp))
}

func TestAPI_AdminEstricto(t *testing.T) {
	s := newTestServer(t, ordering.Options{EnforceTransitions: true})
	admin := s.login(t, "admin")
	var env dto.OrderEnvelope
	decode(t, s.do(t, http.MethodPost, "/api/orders", admin, `{"items":[{"menuItemId":"1","quantity":1}]}`), &env)

	decode(t, s.do(t, http.MethodPatch, "/api/admin/orders/"+env.Order.ID, admin, `{"status":"completed"}`), &env)
	resp := s.do(t, http.MethodPatch, "/api/admin/orders/"+env.Order.ID, admin, `{"status":"pending"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "invalid-transition", errorCode(t, resp))
}

func TestAPI_RutaInexistente(t *testing.T) {
	s := newTestServer(t, ordering.Options{})
	resp := s.do(t, http.MethodGet, "/api/nada", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(t, resp))
}

func TestAPI_Dashboard(t *testing.T) {
	s := newTestServer(t, ordering.Options{})
	admin := s.login(t, "admin")
	alice := s.login(t, "alice")
	resp := s.do(t, http.MethodPost, "/api/orders", alice, `{"items":[{"menuItemId":"1","quantity":2},{"menuItemId":"5","quantity":1}]}`)
	resp.Body.Close()

	resp = s.do(t, http.MethodGet, "/api/admin/dashboard", alice, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "not-admin", errorCode(t, resp))

	var summary dto.DashboardSummaryDTO
	decode(t, s.do(t, http.MethodGet, "/api/admin/dashboard", admin, ""), &summary)
	assert.Equal(t, 1, summary.Today.Orders)
	assert.Equal(t, "35.00", summary.Today.Revenue.StringFixed(2))
	assert.Equal(t, 1, summary.ByStatus["pending"])
	require.Len(t, summary.TopItems, 2)
	assert.Equal(t, "1", summary.TopItems[0].MenuItemID)
}
