package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contact-directory/internal/api"
	"contact-directory/internal/api/middleware"
	"contact-directory/internal/config"
	"contact-directory/internal/logger"
	"contact-directory/internal/modules/address"
	"contact-directory/internal/modules/contact"
	"contact-directory/internal/modules/user"
	"contact-directory/migrations"
	"contact-directory/pkg/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func main() {
	// 1. --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. --- Logging ---
	appLogger := logger.New(cfg.Environment, cfg.LogLevel)

	// 3. --- Database: migrations first, then the application pool ---
	// goose runs over database/sql via the pgx stdlib driver; the handle is
	// closed once the schema is current.
	sqlDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to open database for migrations")
	}
	if err := migrations.Run(sqlDB); err != nil {
		appLogger.Fatal().Err(err).Msg("failed to run migrations")
	}
	if err := sqlDB.Close(); err != nil {
		appLogger.Warn().Err(err).Msg("failed to close migration connection")
	}

	dbConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("unable to parse database configuration")
	}
	dbPool, err := pgxpool.NewWithConfig(context.Background(), dbConfig)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("unable to create connection pool")
	}
	defer dbPool.Close()

	if err := dbPool.Ping(context.Background()); err != nil {
		appLogger.Fatal().Err(err).Msg("unable to ping database")
	}
	appLogger.Info().Msg("database connection established")

	// 4. --- Echo & Middleware ---
	e := echo.New()
	e.HideBanner = true

	metrics := middleware.NewMetrics("contact_directory")

	e.Use(echomw.Recover())
	e.Use(middleware.ContextLogger(appLogger))
	e.Use(middleware.RequestLogger(appLogger))
	e.Use(metrics.Middleware())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{cfg.ClientOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// 5. --- Dependency Injection (wiring everything up) ---
	validator := utils.NewValidator()

	// --- User Module ---
	userRepo := user.NewRepository(dbPool)
	userService := user.NewService(userRepo, validator, cfg.JWTSecret, cfg.AccessTokenDuration)
	userHandler := user.NewHandler(userService)

	// --- Contact Module ---
	contactRepo := contact.NewRepository(dbPool)
	contactService := contact.NewService(contactRepo, validator)
	contactHandler := contact.NewHandler(contactService)

	// --- Address Module ---
	// The contact service doubles as the ownership guard for addresses.
	addressRepo := address.NewRepository(dbPool)
	addressService := address.NewService(addressRepo, contactService, validator)
	addressHandler := address.NewHandler(addressService)

	// 6. --- Initialize Router ---
	api.SetupRoutes(e, dbPool,
		userHandler,
		contactHandler,
		addressHandler,
		cfg.JWTSecret,
	)

	// 7. --- Start Server with graceful shutdown logic ---
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}
	appLogger.Info().Msg("server exited")
}
