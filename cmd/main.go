package main

import (
	"context"
	"log"

	"github.com/AnthoniusHendriyanto/session-service/config"
	"github.com/AnthoniusHendriyanto/session-service/db"
	"github.com/AnthoniusHendriyanto/session-service/internal/auth/handler"
	repo "github.com/AnthoniusHendriyanto/session-service/internal/auth/repository/postgres"
	"github.com/AnthoniusHendriyanto/session-service/internal/auth/service"
	"github.com/AnthoniusHendriyanto/session-service/internal/obs"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	dbPool, err := db.NewPostgresPool(context.Background(), cfg.DBURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer dbPool.Close()

	obs.Init()

	userStore := repo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(cfg.AuthSecret, cfg.TokenTTL)
	userService := service.NewUserService(userStore, tokenService, cfg.BcryptCost)
	authHandler := handler.NewAuthHandler(userService, cfg.CookieTTLDays)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(obs.Instrument())

	handler.RegisterRoutes(app, authHandler)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("listen: %v", err)
	}
}
