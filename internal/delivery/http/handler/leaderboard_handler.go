package handler

import (
	"errors"

	"rerank/internal/delivery/http/middleware"
	"rerank/internal/pkg/response"
	"rerank/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type LeaderboardHandler struct {
	uc usecase.LeaderboardUsecase
}

func NewLeaderboardHandler(uc usecase.LeaderboardUsecase) *LeaderboardHandler {
	return &LeaderboardHandler{uc: uc}
}

func (h *LeaderboardHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Global)
	r.Get("/global", h.Global)
	r.Get("/regional/:region", h.Regional)
	r.Get("/industry/:industry", h.Industry)
}

func (h *LeaderboardHandler) Global(c fiber.Ctx) error {
	params, err := leaderboardParams(c)
	if err != nil {
		return err
	}
	rows, err := h.uc.Global(c.Context(), params)
	if err != nil {
		return mapLeaderboardUsecaseError(err, "Failed to fetch leaderboard")
	}
	return response.JSON(c, fiber.StatusOK, rows)
}

func (h *LeaderboardHandler) Regional(c fiber.Ctx) error {
	params, err := leaderboardParams(c)
	if err != nil {
		return err
	}
	rows, err := h.uc.Regional(c.Context(), c.Params("region"), params)
	if err != nil {
		return mapLeaderboardUsecaseError(err, "Failed to fetch regional leaderboard")
	}
	return response.JSON(c, fiber.StatusOK, rows)
}

func (h *LeaderboardHandler) Industry(c fiber.Ctx) error {
	params, err := leaderboardParams(c)
	if err != nil {
		return err
	}
	rows, err := h.uc.Industry(c.Context(), c.Params("industry"), params)
	if err != nil {
		return mapLeaderboardUsecaseError(err, "Failed to fetch industry leaderboard")
	}
	return response.JSON(c, fiber.StatusOK, rows)
}

func leaderboardParams(c fiber.Ctx) (usecase.LeaderboardParams, error) {
	limit, err := parseQueryIntStrict(c, "limit", usecase.DefaultPageLimit)
	if err != nil {
		return usecase.LeaderboardParams{}, middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", err)
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return usecase.LeaderboardParams{}, middleware.NewAppError(fiber.StatusBadRequest, "Invalid offset", err)
	}
	return usecase.LeaderboardParams{Limit: limit, Offset: offset}, nil
}

func mapLeaderboardUsecaseError(err error, failMsg string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, failMsg, err)
	}
}
