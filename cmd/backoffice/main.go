package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/meridian-coop/backoffice/internal/app"
	"github.com/meridian-coop/backoffice/internal/auth"
	"github.com/meridian-coop/backoffice/internal/fixtures"
	"github.com/meridian-coop/backoffice/internal/masterdata/categories"
	"github.com/meridian-coop/backoffice/internal/masterdata/products"
	"github.com/meridian-coop/backoffice/internal/masterdata/suppliers"
	"github.com/meridian-coop/backoffice/internal/platform/token"
	"github.com/meridian-coop/backoffice/internal/roles"
	"github.com/meridian-coop/backoffice/internal/users"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	registry := roles.NewRegistry(roles.Defaults()...)
	tokens := token.NewManager(cfg.TokenSecret, cfg.TokenTTL)

	authRepo := auth.NewMemoryRepository()
	authService := auth.NewService(authRepo, registry)
	accounts, err := fixtures.SeedAccounts(ctx, authService)
	if err != nil {
		logger.Error("seed accounts", slog.Any("error", err))
		os.Exit(1)
	}

	authHandler := auth.NewHandler(logger, authService, tokens)
	suppliersHandler := suppliers.NewHandler(logger, suppliers.NewMemoryRepository(fixtures.Suppliers()))
	productsHandler := products.NewHandler(logger, products.NewMemoryRepository(fixtures.Products()))
	categoriesHandler := categories.NewHandler(logger, categories.NewMemoryRepository(fixtures.Categories()))
	usersHandler := users.NewHandler(logger, users.NewMemoryRepository(fixtures.UserRows(accounts, registry)))

	router := app.NewRouter(app.RouterParams{
		Logger:            logger,
		Config:            cfg,
		Tokens:            tokens,
		AuthHandler:       authHandler,
		SuppliersHandler:  suppliersHandler,
		ProductsHandler:   productsHandler,
		CategoriesHandler: categoriesHandler,
		UsersHandler:      usersHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
