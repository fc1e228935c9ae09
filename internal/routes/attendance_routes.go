package routes

import (
	"hrms-backend/internal/handler"
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/model"
	"hrms-backend/internal/repository"
	"hrms-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewAttendanceRepository(db)
	uc := usecase.NewAttendanceUsecase(repo)
	hdl := handler.NewAttendanceHandler(uc)

	api := app.Group("/api/v1/attendance", middleware.Auth)

	api.Post("/check-in", hdl.CheckIn)
	api.Post("/check-out", hdl.CheckOut)
	api.Get("/", hdl.List)
	api.Get("/stats", hdl.Stats)
	api.Get("/daily", middleware.RequireRole(
		model.RoleAdmin, model.RoleSuperAdmin, model.RoleHR, model.RoleManager,
	), hdl.Daily)
}
