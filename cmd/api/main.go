package main

import (
	"log"

	"hrms-backend/config"
	"hrms-backend/internal/handler"
	"hrms-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	config.ConnectDB()
	log.Println("database connected")

	app := fiber.New()

	corsConfig := cors.Config{}
	if origins := config.CORSOrigins(); origins != "" {
		corsConfig.AllowOrigins = origins
	}
	app.Use(cors.New(corsConfig))
	app.Use(logger.New())

	app.Get("/health", handler.Health)

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupAttendanceRoutes(app, config.DB)

	addr := config.ListenAddr()
	log.Printf("listening on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
