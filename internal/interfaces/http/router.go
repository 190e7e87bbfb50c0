package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cobrepro/pedidos-api/internal/application/auth"
	"github.com/cobrepro/pedidos-api/internal/application/usecase"
	"github.com/cobrepro/pedidos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ProductUC      *usecase.ProductUseCase
	CategoryUC     *usecase.CategoryUseCase
	CustomerUC     *usecase.CustomerUseCase
	DiscountTierUC *usecase.DiscountTierUseCase
	FXRateUC       *usecase.FXRateUseCase
	OrderUC        *usecase.OrderUseCase
	JWTSecret      string
}

// Router registra las rutas de la API. Login es la única ruta pública; el
// registro de usuarios exige sesión admin/interno.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/register",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(entity.RoleAdmin, entity.RoleInterno),
		authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)

	tiers := protected.Group("/discount-tiers")
	tierHandler := NewDiscountTierHandler(deps.DiscountTierUC)
	tiers.Post("/", tierHandler.Create)
	tiers.Get("/", tierHandler.List)

	// Clientes
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Deactivate)

	// Tasa de cambio
	fx := protected.Group("/fx-rate")
	fxHandler := NewFXRateHandler(deps.FXRateUC)
	fx.Get("/", fxHandler.GetCurrent)
	fx.Get("/history", fxHandler.GetHistory)
	fx.Put("/", fxHandler.UpdateRate)

	// Pedidos
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:reference", orderHandler.GetByReference)
	orders.Post("/:reference/transition", orderHandler.Transition)
}
