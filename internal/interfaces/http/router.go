package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/labmetricas/labstock-api/internal/application/audit"
	"github.com/labmetricas/labstock-api/internal/application/auth"
	"github.com/labmetricas/labstock-api/internal/application/catalogue"
	"github.com/labmetricas/labstock-api/internal/application/movement"
	"github.com/labmetricas/labstock-api/internal/application/product"
	"github.com/labmetricas/labstock-api/internal/domain/entity"
	"github.com/labmetricas/labstock-api/internal/infrastructure/pdf"
	"github.com/labmetricas/labstock-api/internal/infrastructure/qrimg"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *product.UseCase
	DiscountUC  *product.DiscountUseCase
	MovementUC  *movement.UseCase
	CatalogueUC *catalogue.UseCase
	AuthUC      *auth.UseCase
	AuditQuery  *audit.Query
	QrRenderer  *qrimg.Renderer
	LabelGen    *pdf.LabelGenerator
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público; registro solo ADMIN
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products, descuentos y QR (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.DiscountUC, deps.QrRenderer, deps.LabelGen)
	products.Post("/", productHandler.Create)
	products.Put("/", productHandler.Update)
	products.Get("/", productHandler.List)
	products.Get("/qr/:hash", productHandler.GetByQrHash)
	products.Get("/qr/:hash/image", productHandler.GetQrImage)
	products.Get("/:id", productHandler.GetByID)
	products.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleSupervisor), productHandler.Delete)
	products.Post("/:id/discounts", productHandler.CreateDiscount)
	products.Get("/:id/discounts", productHandler.ListDiscounts)
	products.Get("/:id/label", productHandler.GetLabel)

	// Kardex (protegido, solo lectura)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)

	// Diccionario de stock y catálogos de referencia (protegido)
	catalogueHandler := NewCatalogueHandler(deps.CatalogueUC)
	catalogues := protected.Group("/catalogues")
	catalogues.Post("/", RequireRole(entity.RoleAdmin, entity.RoleSupervisor), catalogueHandler.Create)
	catalogues.Get("/", catalogueHandler.List)
	catalogues.Get("/:id", catalogueHandler.GetByID)

	references := protected.Group("/references")
	references.Get("/statuses", catalogueHandler.ListStatuses)
	references.Get("/warehouse-types", catalogueHandler.ListWarehouseTypes)
	references.Get("/units", catalogueHandler.ListUnits)

	// Registro de acciones (ADMIN y SUPERVISOR)
	auditHandler := NewAuditHandler(deps.AuditQuery)
	protected.Get("/audit", RequireRole(entity.RoleAdmin, entity.RoleSupervisor), auditHandler.List)
}
