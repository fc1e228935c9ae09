package routes

import (
	"hrms-backend/internal/handler"
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/repository"
	"hrms-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewUserRepository(db)
	uc := usecase.NewAuthUsecase(repo)
	hdl := handler.NewAuthHandler(uc)

	api := app.Group("/api/v1/auth")

	api.Post("/login", hdl.Login)
	api.Post("/logout", middleware.Auth, hdl.Logout)
	api.Get("/me", middleware.Auth, hdl.Me)
}
