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

	_ "github.com/jhoicas/catalogo-api/docs"
	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/catalogo-api/internal/infrastructure/pdf"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/catalogo-api/migrations"
	"github.com/jhoicas/catalogo-api/pkg/config"
	"github.com/jhoicas/catalogo-api/pkg/logger"
	"github.com/jhoicas/catalogo-api/pkg/migration"
)

// storage agrupa los repositorios y el runner transaccional del driver elegido.
type storage struct {
	users      repository.AccountRepository
	customers  repository.AccountRepository
	categories repository.CategoryRepository
	products   repository.ProductRepository
	accountsTx usecase.AccountTxRunner
	catalogTx  usecase.CatalogTxRunner
}

// @title                      Catálogo API
// @version                    1.0
// @description                Usuarios, clientes, categorías y productos.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("storage", cfg.App.StorageDriver).
		Msg("iniciando aplicación")

	metrics := httpRouter.NewMetrics("catalogo")

	ctx := context.Background()
	var st storage
	switch cfg.App.StorageDriver {
	case config.StorageMemory:
		log.Warn().Msg("STORAGE_DRIVER=memory: los datos se pierden al reiniciar")
		store := memory.NewStore()
		st = storage{
			users:      store.Accounts(entity.KindUser),
			customers:  store.Accounts(entity.KindCustomer),
			categories: store.Categories(),
			products:   store.Products(),
			accountsTx: store,
			catalogTx:  store,
		}
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		if cfg.App.MigrateOnStart {
			m := migration.NewMigrator(migration.Config{FS: migrations.FS, Path: migrations.Dir}, pool, log.Component("migration"))
			if err := m.Up(); err != nil {
				log.Fatal().Err(err).Msg("aplicar migraciones")
			}
		}
		metrics.RegisterPool("catalogo", pool)

		txRunner := postgres.NewTxRunner(pool)
		st = storage{
			users:      postgres.NewAccountRepository(pool, entity.KindUser),
			customers:  postgres.NewAccountRepository(pool, entity.KindCustomer),
			categories: postgres.NewCategoryRepository(pool),
			products:   postgres.NewProductRepository(pool),
			accountsTx: txRunner,
			catalogTx:  txRunner,
		}
	}

	userUC := usecase.NewAccountUseCase(entity.KindUser, st.users, st.accountsTx, log.Zerolog())
	customerUC := usecase.NewAccountUseCase(entity.KindCustomer, st.customers, st.accountsTx, log.Zerolog())
	categoryUC := usecase.NewCategoryUseCase(st.categories, log.Zerolog())
	productUC := usecase.NewProductUseCase(st.products, log.Zerolog())

	// PDF: catálogo de productos activos agrupados por categoría
	catalogUC := usecase.NewCatalogPDFUseCase(st.catalogTx, infrapdf.NewCatalogGenerator(), "Catálogo de productos", log.Zerolog())

	authUC := auth.NewAuthUseCase(userUC, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log.Zerolog())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log.Zerolog()))
	app.Use(metrics.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Catálogo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.App.StorageDriver})
	})
	app.Get("/metrics", metrics.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		UserUC:       userUC,
		CustomerUC:   customerUC,
		CategoryUC:   categoryUC,
		ProductUC:    productUC,
		CatalogUC:    catalogUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
		AuthRequired: cfg.HTTP.AuthRequired,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
