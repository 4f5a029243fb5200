package handler

import (
	"rerank/internal/delivery/http/middleware"
	"rerank/internal/pkg/response"
	"rerank/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AnalyticsHandler struct {
	uc usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(uc usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

func (h *AnalyticsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Summary)
}

func (h *AnalyticsHandler) Summary(c fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to fetch analytics", err)
	}
	return response.JSON(c, fiber.StatusOK, out)
}
