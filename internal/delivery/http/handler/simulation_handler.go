package handler

import (
	"errors"

	"rerank/internal/delivery/http/dto"
	"rerank/internal/delivery/http/middleware"
	"rerank/internal/pkg/response"
	"rerank/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SimulationHandler struct {
	uc usecase.SimulationUsecase
}

func NewSimulationHandler(uc usecase.SimulationUsecase) *SimulationHandler {
	return &SimulationHandler{uc: uc}
}

func (h *SimulationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/hiring", h.Hiring)
}

func (h *SimulationHandler) Hiring(c fiber.Ctx) error {
	var req dto.HiringSimulationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid simulation payload", err)
	}
	if len(req.CandidateIDs) == 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "candidateIds is required", nil)
	}

	out, err := h.uc.Hiring(c.Context(), req.ToInput())
	if err != nil {
		return mapSimulationUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, out)
}

func mapSimulationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid simulation request", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to run simulation", err)
	}
}
