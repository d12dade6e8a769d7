package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/auth"
	appinventory "github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/inventory"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/orders"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/usecase"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockItemUC  *usecase.StockItemUseCase
	MenuItemUC   *usecase.MenuItemUseCase
	LedgerUC     *appinventory.LedgerUseCase
	WasteUC      *appinventory.WasteUseCase
	SweepUC      *appinventory.ExpirySweepUseCase
	DayUC        *appinventory.DayBoundaryUseCase
	Availability *appinventory.AvailabilityUseCase
	AuditUC      *appinventory.AuditUseCase
	OrderUC      *orders.OrderUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. El registro de insumos y el ciclo de
// días son de admin; la operación diaria (lotes, mermas, pedidos) la comparten
// admin y chef.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	adminOnly := RequireRole(entity.RoleAdmin)
	kitchen := RequireRole(entity.RoleAdmin, entity.RoleChef)

	// Registro de insumos (lecturas para todos; escrituras de admin)
	stockItems := protected.Group("/stock-items")
	stockItemHandler := NewStockItemHandler(deps.StockItemUC, deps.AuditUC)
	stockItems.Get("/", stockItemHandler.List)
	stockItems.Get("/:id", stockItemHandler.GetByID)
	stockItems.Get("/:id/logs", stockItemHandler.ListLogs)
	stockItems.Post("/", adminOnly, stockItemHandler.Create)
	stockItems.Put("/:id", adminOnly, stockItemHandler.Update)

	// Carta
	menuItems := protected.Group("/menu-items")
	menuItemHandler := NewMenuItemHandler(deps.MenuItemUC, deps.Availability)
	menuItems.Get("/", menuItemHandler.List)
	menuItems.Get("/:id", menuItemHandler.GetByID)
	menuItems.Post("/", adminOnly, menuItemHandler.Create)

	// Disponibilidad
	protected.Get("/availability/:id", menuItemHandler.CheckAvailability)

	// Libro diario, mermas y barrido de vencimientos
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.LedgerUC, deps.WasteUC, deps.SweepUC)
	invGroup.Post("/batches", kitchen, inventoryHandler.AddBatch)
	invGroup.Get("/ledger", inventoryHandler.ListLedger)
	invGroup.Post("/waste", kitchen, inventoryHandler.RegisterWaste)
	invGroup.Get("/waste", inventoryHandler.ListWaste)
	invGroup.Post("/expiry-sweep", adminOnly, inventoryHandler.RunExpirySweep)

	// Pedidos
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Post("/", kitchen, orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Put("/:id/status", kitchen, orderHandler.TransitionStatus)
	ordersGroup.Put("/:id/lines", kitchen, orderHandler.ReplaceLines)

	// Ciclo de días (solo admin)
	days := protected.Group("/days")
	dayHandler := NewDayHandler(deps.DayUC)
	days.Post("/end", adminOnly, dayHandler.EndDay)
	days.Post("/start", adminOnly, dayHandler.StartDay)
	days.Get("/:date", dayHandler.GetStatus)
}
