package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/food-order-api/internal/application/analytics"
	"github.com/jhoicas/food-order-api/internal/application/auth"
	"github.com/jhoicas/food-order-api/internal/application/ordering"
	"github.com/jhoicas/food-order-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Gate        *auth.Gate
	AuthUC      *auth.AuthUseCase
	MenuUC      *usecase.MenuUseCase
	CartUC      *usecase.CartUseCase
	OrderUC     *ordering.OrderUseCase
	ReceiptUC   *ordering.ReceiptUseCase
	DashboardUC *appanalytics.DashboardUseCase
	Cookie      CookieConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	requireAuth := RequireAuth(deps.Gate, deps.Cookie.Name)

	// Identidad (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie)
	api.Post("/users", authHandler.Register)
	api.Post("/sessions", authHandler.Login)
	api.Delete("/sessions", authHandler.Logout)
	api.Get("/session", authHandler.WhoAmI)

	// Menú: lectura pública, escritura admin
	menuHandler := NewMenuHandler(deps.MenuUC)
	menu := api.Group("/menu-items")
	menu.Get("/", menuHandler.List)
	menu.Get("/:id", menuHandler.GetByID)
	menu.Post("/", requireAuth, RequireAdmin(), menuHandler.Create)
	menu.Patch("/:id", requireAuth, RequireAdmin(), menuHandler.Update)
	menu.Delete("/:id", requireAuth, RequireAdmin(), menuHandler.Delete)

	// Carrito (sesión requerida)
	cartHandler := NewCartHandler(deps.CartUC)
	cart := api.Group("/cart", requireAuth, RequireRole(roleUserOrAdmin...))
	cart.Get("/", cartHandler.Get)
	cart.Put("/", cartHandler.Set)
	cart.Post("/items", cartHandler.AddItem)

	// Pedidos propios (sesión requerida)
	orderHandler := NewOrderHandler(deps.OrderUC, deps.ReceiptUC)
	orders := api.Group("/orders", requireAuth, RequireRole(roleUserOrAdmin...))
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id", orderHandler.Cancel)
	orders.Get("/:id/receipt", orderHandler.Receipt)

	// Administración de pedidos
	adminHandler := NewAdminOrderHandler(deps.OrderUC)
	admin := api.Group("/admin", requireAuth, RequireAdmin())
	admin.Get("/orders", adminHandler.List)
	admin.Patch("/orders/:id", adminHandler.SetStatus)
	admin.Get("/dashboard", NewDashboardHandler(deps.DashboardUC).GetSummary)
}
