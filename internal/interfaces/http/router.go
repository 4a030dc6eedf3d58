package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stokmebel/gudang-api/internal/application/auth"
	"github.com/stokmebel/gudang-api/internal/application/label"
	"github.com/stokmebel/gudang-api/internal/application/ledger"
	"github.com/stokmebel/gudang-api/internal/application/usecase"
	"github.com/stokmebel/gudang-api/internal/domain/entity"
	"github.com/stokmebel/gudang-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Ledger          *ledger.StockLedger
	ProductUC       *usecase.ProductUseCase
	MasterProductUC *usecase.MasterProductUseCase
	StockLogUC      *usecase.StockLogUseCase
	LabelUC         *label.LabelUseCase
	AuthUC          *auth.AuthUseCase
	Log             *logger.Logger
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	ownerOnly := RequireRole(entity.RoleOwner)

	// Ledger de movimientos (protegido)
	ledgerGroup := protected.Group("/ledger")
	ledgerHandler := NewLedgerHandler(deps.Ledger, deps.Log)
	ledgerGroup.Post("/movements", ledgerHandler.RegisterMovement)
	ledgerGroup.Get("/resolve/:code", ledgerHandler.Resolve)
	ledgerGroup.Get("/audit/:code", ledgerHandler.Audit)

	// Products (protegido; delete solo owner)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", ownerOnly, productHandler.Delete)

	// Catálogo maestro (protegido; delete solo owner)
	masters := protected.Group("/master-products")
	masterHandler := NewMasterProductHandler(deps.MasterProductUC)
	masters.Post("/", masterHandler.Create)
	masters.Get("/", masterHandler.List)
	masters.Get("/:id", masterHandler.GetByID)
	masters.Delete("/:id", ownerOnly, masterHandler.Delete)

	// Ledger de movimientos: lectura (protegido)
	stockLogs := protected.Group("/stock-logs")
	stockLogHandler := NewStockLogHandler(deps.StockLogUC)
	stockLogs.Get("/", stockLogHandler.List)

	// Etiquetas (protegido)
	labels := protected.Group("/labels")
	labelHandler := NewLabelHandler(deps.LabelUC)
	labels.Get("/tspl/:code", labelHandler.TSPL)
	labels.Post("/sheet", labelHandler.Sheet)
}
