package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/cobrepro/pedidos-api/internal/application/auth"
	"github.com/cobrepro/pedidos-api/internal/application/usecase"
	"github.com/cobrepro/pedidos-api/internal/domain/repository"
	"github.com/cobrepro/pedidos-api/internal/infrastructure/memory"
	"github.com/cobrepro/pedidos-api/internal/infrastructure/postgres"
	httpRouter "github.com/cobrepro/pedidos-api/internal/interfaces/http"
	"github.com/cobrepro/pedidos-api/pkg/config"
	"github.com/cobrepro/pedidos-api/pkg/logger"
)

// repos agrupa los puertos de persistencia resueltos según el backend.
type repos struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	customers  repository.CustomerRepository
	tiers      repository.DiscountTierRepository
	fxRates    repository.FXRateRepository
	orders     repository.OrderRepository
	users      repository.UserRepository
	tenants    repository.TenantRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.App.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var r repos
	switch cfg.App.Backend {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		r = repos{
			products:   postgres.NewProductRepository(pool),
			categories: postgres.NewCategoryRepository(pool),
			customers:  postgres.NewCustomerRepository(pool),
			tiers:      postgres.NewDiscountTierRepository(pool),
			fxRates:    postgres.NewFXRateRepository(pool),
			orders:     postgres.NewOrderRepository(pool),
			users:      postgres.NewUserRepository(pool),
			tenants:    postgres.NewTenantRepository(pool),
		}
	case "memory":
		st := memory.NewStore()
		tenantID := memory.Seed(st)
		log.Info().Str("tenant_id", tenantID).Msg("backend en memoria con datos de demo")
		r = repos{
			products:   memory.NewProductRepository(st),
			categories: memory.NewCategoryRepository(st),
			customers:  memory.NewCustomerRepository(st),
			tiers:      memory.NewDiscountTierRepository(st),
			fxRates:    memory.NewFXRateRepository(st),
			orders:     memory.NewOrderRepository(st),
			users:      memory.NewUserRepository(st),
			tenants:    memory.NewTenantRepository(st),
		}
	}

	authUC := auth.NewAuthUseCase(r.users, r.tenants, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(r.products)
	categoryUC := usecase.NewCategoryUseCase(r.categories)
	customerUC := usecase.NewCustomerUseCase(r.customers)
	tierUC := usecase.NewDiscountTierUseCase(r.tiers)
	fxRateUC := usecase.NewFXRateUseCase(r.fxRates)
	orderUC := usecase.NewOrderUseCase(r.orders, r.products, r.customers, r.tiers)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Pedidos de Cobre API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ProductUC:      productUC,
		CategoryUC:     categoryUC,
		CustomerUC:     customerUC,
		DiscountTierUC: tierUC,
		FXRateUC:       fxRateUC,
		OrderUC:        orderUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("servidor HTTP")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor escuchando")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}
