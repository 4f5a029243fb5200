package handler

import (
	"context"
	"time"

	"rerank/internal/delivery/http/dto"
	"rerank/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

const healthPingTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type ClientCounter interface {
	ClientCount() int
}

// HealthHandler reports dependency state. The service is healthy as long as
// it can answer; cache and database are optional and only reported.
type HealthHandler struct {
	cache   Pinger
	db      Pinger
	clients ClientCounter
}

func NewHealthHandler(cache, db Pinger, clients ClientCounter) *HealthHandler {
	return &HealthHandler{cache: cache, db: db, clients: clients}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), healthPingTimeout)
	defer cancel()

	out := dto.HealthResponse{
		Status:   "ok",
		Cache:    pingState(ctx, h.cache),
		Database: pingState(ctx, h.db),
	}
	if h.clients != nil {
		out.WSClients = h.clients.ClientCount()
	}
	return response.JSON(c, fiber.StatusOK, out)
}

func pingState(ctx context.Context, p Pinger) string {
	if p == nil {
		return "disabled"
	}
	if err := p.Ping(ctx); err != nil {
		return "unavailable"
	}
	return "ok"
}
