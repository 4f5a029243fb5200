package handler

import (
	"errors"

	"rerank/internal/delivery/http/dto"
	"rerank/internal/delivery/http/middleware"
	"rerank/internal/pkg/response"
	"rerank/internal/search"
	"rerank/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CandidateHandler struct {
	uc usecase.CandidateUsecase
}

func NewCandidateHandler(uc usecase.CandidateUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

// RegisterRoutes mounts the candidate routes. protect guards the mutating
// ones.
func (h *CandidateHandler) RegisterRoutes(r fiber.Router, protect fiber.Handler) {
	if r == nil {
		return
	}
	if protect == nil {
		protect = func(c fiber.Ctx) error { return c.Next() }
	}

	r.Get("/search", h.Search)
	r.Post("/", protect, h.Create)
	r.Get("/:id", h.Get)
	r.Patch("/:id", protect, h.Update)
	r.Get("/:id/resumes", h.ListResumes)
}

func (h *CandidateHandler) Search(c fiber.Ctx) error {
	minScore, err := parseQueryIntPtr(c, "minScore")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid minScore", err)
	}
	maxScore, err := parseQueryIntPtr(c, "maxScore")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid maxScore", err)
	}

	out, err := h.uc.Search(c.Context(), search.Filters{
		Skills:     search.ParseSkills(c.Query("skills")),
		Experience: c.Query("experience"),
		Industry:   c.Query("industry"),
		Region:     c.Query("region"),
		MinScore:   minScore,
		MaxScore:   maxScore,
	})
	if err != nil {
		return mapCandidateUsecaseError(err, "Failed to search candidates")
	}
	return response.JSON(c, fiber.StatusOK, out)
}

func (h *CandidateHandler) Get(c fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapCandidateUsecaseError(err, "Failed to fetch candidate")
	}
	return response.JSON(c, fiber.StatusOK, out)
}

func (h *CandidateHandler) Create(c fiber.Ctx) error {
	var req dto.CreateCandidateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate payload", err)
	}

	out, err := h.uc.Create(c.Context(), req.ToInput())
	if err != nil {
		return mapCandidateUsecaseError(err, "Failed to create candidate")
	}
	return response.JSON(c, fiber.StatusCreated, out)
}

func (h *CandidateHandler) Update(c fiber.Ctx) error {
	var req dto.UpdateCandidateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate payload", err)
	}

	out, err := h.uc.Update(c.Context(), c.Params("id"), req.ToPatch())
	if err != nil {
		return mapCandidateUsecaseError(err, "Failed to update candidate")
	}
	return response.JSON(c, fiber.StatusOK, out)
}

func (h *CandidateHandler) ListResumes(c fiber.Ctx) error {
	out, err := h.uc.ListResumes(c.Context(), c.Params("id"))
	if err != nil {
		return mapCandidateUsecaseError(err, "Failed to fetch resumes")
	}
	return response.JSON(c, fiber.StatusOK, out)
}

func mapCandidateUsecaseError(err error, failMsg string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, failMsg, err)
	}
}
