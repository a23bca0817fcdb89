package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/food-order-api/internal/application/analytics"
	"github.com/jhoicas/food-order-api/internal/application/auth"
	"github.com/jhoicas/food-order-api/internal/application/ordering"
	"github.com/jhoicas/food-order-api/internal/application/usecase"
	"github.com/jhoicas/food-order-api/internal/infrastructure/memory"
	"github.com/jhoicas/food-order-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/food-order-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "food-order-api-test"
	testCookie = "sid"
)

type testServer struct {
	app      *fiber.App
	gate     *auth.Gate
	users    *memory.UserRepo
	sessions *memory.SessionRepo
	menu     *memory.MenuItemRepo
	carts    *memory.CartRepo
	orders   *memory.OrderRepo
}

// newTestServer arma la API completa sobre stores en memoria con el menú de demostración.
func newTestServer(t *testing.T, opts ordering.Options) *testServer {
	t.Helper()
	s := &testServer{
		users:    memory.NewUserRepository(),
		sessions: memory.NewSessionRepository(),
		menu:     memory.NewMenuItemRepository(),
		carts:    memory.NewCartRepository(),
		orders:   memory.NewOrderRepository(),
	}
	_, err := memory.SeedMenu(s.menu)
	require.NoError(t, err)

	s.gate = auth.NewGate(s.users, s.sessions, auth.TokenConfig{Secret: testSecret, Issuer: testIssuer})
	locks := ordering.NewUserLocks()
	orderUC := ordering.NewOrderUseCase(s.menu, s.orders, s.carts, locks, opts)

	s.app = fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(s.app, apphttp.RouterDeps{
		Gate:        s.gate,
		AuthUC:      auth.NewAuthUseCase(s.users, s.sessions, s.gate),
		MenuUC:      usecase.NewMenuUseCase(s.menu),
		CartUC:      usecase.NewCartUseCase(s.carts, s.menu, locks),
		OrderUC:     orderUC,
		ReceiptUC:   ordering.NewReceiptUseCase(s.orders, pdf.NewMarotoReceiptGenerator("test")),
		DashboardUC: analytics.NewDashboardUseCase(s.orders),
		Cookie:      apphttp.CookieConfig{Name: testCookie},
	})
	return s
}

// do lanza una petición; sid vacío no envía cookie.
func (s *testServer) do(t *testing.T, method, path, sid, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: sid})
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// login registra (si hace falta) y abre sesión; devuelve el valor de la cookie sid.
func (s *testServer) login(t *testing.T, username string) string {
	t.Helper()
	if username != "admin" {
		resp := s.do(t, http.MethodPost, "/api/users", "", `{"username":"`+username+`"}`)
		resp.Body.Close()
	}
	resp := s.do(t, http.MethodPost, "/api/sessions", "", `{"username":"`+username+`"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	for _, ck := range resp.Cookies() {
		if ck.Name == testCookie {
			return ck.Value
		}
	}
	t.Fatalf("login de %s sin cookie %s", username, testCookie)
	return ""
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

// errorCode devuelve el código del cuerpo de error.
func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Code  string `json:"code"`
		Error string `json:"error"`
	}
	decode(t, resp, &body)
	require.Equal(t, body.Code, body.Error)
	return body.Code
}
