package handler

import (
	"time"

	"hrms-backend/internal/middleware"
	"hrms-backend/internal/model"
	"hrms-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AttendanceHandler struct {
	usecase *usecase.AttendanceUsecase
}

func NewAttendanceHandler(u *usecase.AttendanceUsecase) *AttendanceHandler {
	return &AttendanceHandler{usecase: u}
}

func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	att, err := h.usecase.CheckIn(middleware.UserID(c), time.Now())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "check-in recorded",
		"data":    att,
	})
}

func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	att, err := h.usecase.CheckOut(middleware.UserID(c), time.Now())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "check-out recorded",
		"data":    att,
	})
}

func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	params := usecase.ListParams{
		TargetUserID: uint(c.QueryInt("user_id", 0)),
		From:         c.Query("from"),
		To:           c.Query("to"),
		Status:       model.AttendanceStatus(c.Query("status")),
		Page:         c.QueryInt("page", 1),
		Limit:        c.QueryInt("limit", 10),
	}

	res, err := h.usecase.ListForUser(middleware.UserID(c), model.Role(middleware.RoleOf(c)), params)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"items":           res.Items,
		"total":           res.Total,
		"page":            res.Page,
		"limit":           res.Limit,
		"total_pages":     res.TotalPages,
		"TODAY_PUNCH_IN":  res.TodayCheckedIn,
		"TODAY_PUNCH_OUT": res.TodayCheckedOut,
	})
}

func (h *AttendanceHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.usecase.Stats(middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(stats)
}

// Daily returns every user's record for one date. Route is gated to
// privileged roles.
func (h *AttendanceHandler) Daily(c *fiber.Ctx) error {
	date := c.Query("date", time.Now().Format(model.DateLayout))
	list, err := h.usecase.DailyOverview(date)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"date": date,
		"data": list,
	})
}
