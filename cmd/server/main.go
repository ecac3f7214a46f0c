package main

import (
	"log"
	"net/http"
	"os"

	_ "portfolio/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"portfolio/internal/auth"
	"portfolio/internal/cache"
	"portfolio/internal/config"
	"portfolio/internal/db"
	"portfolio/internal/handler"
	"portfolio/internal/integration"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/router"
	"portfolio/internal/service"
)

// @title Portfolio API
// @version 1.0
// @description Personal portfolio backend with visitor analytics, contact inbox, JWT authentication and external integrations.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Visitor{},
			&model.Message{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Message{},
		&model.Visitor{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	messageRepo := repository.NewMessageRepository(gormDB)
	visitorRepo := repository.NewVisitorRepository(gormDB)

	// Initialize auth components
	credentials := service.NewCredentialStore()
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize outbound clients
	paymentClient := integration.NewPaymentClient(cfg.PaymentAPIURL, cfg.PaymentSecretKey)
	paletteClient := integration.NewPaletteClient(cfg.PaletteAPIURL, cfg.PaletteAPIKey)
	repoClient := integration.NewRepoClient(cfg.ReposAPIURL, cfg.ReposToken)

	// Initialize services
	authService := service.NewAuthService(userRepo, credentials, jwtService, tokenStore)
	userService := service.NewUserService(userRepo)
	messageService := service.NewMessageService(messageRepo)
	visitorService := service.NewVisitorService(visitorRepo)
	statsService := service.NewStatsService(visitorRepo)
	paymentService := service.NewPaymentService(paymentClient)
	paletteService := service.NewPaletteService(paletteClient)
	repoService := service.NewRepoService(repoClient, cacheClient, cfg.ReposUsername)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	messageHandler := handler.NewMessageHandler(messageService)
	visitorHandler := handler.NewVisitorHandler(visitorService, statsService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	paletteHandler := handler.NewPaletteHandler(paletteService)
	repoHandler := handler.NewRepoHandler(repoService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		messageHandler,
		visitorHandler,
		paymentHandler,
		paletteHandler,
		repoHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
