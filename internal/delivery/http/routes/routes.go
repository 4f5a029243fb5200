package routes

import (
	"rerank/internal/delivery/http/handler"
	"rerank/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Health      *handler.HealthHandler
	Leaderboard *handler.LeaderboardHandler
	Candidates  *handler.CandidateHandler
	Resumes     *handler.ResumeHandler
	Analytics   *handler.AnalyticsHandler
	Export      *handler.ExportHandler
	Simulations *handler.SimulationHandler
	Auth        *handler.AuthHandler
}

type Registry struct {
	handlers      Handlers
	auth          *middleware.AuthMiddleware
	uploadLimiter fiber.Handler
}

// NewRegistry wires the route table. A nil auth middleware leaves recruiter
// routes open; a nil limiter disables upload throttling.
func NewRegistry(h Handlers, auth *middleware.AuthMiddleware, uploadLimiter fiber.Handler) *Registry {
	return &Registry{handlers: h, auth: auth, uploadLimiter: uploadLimiter}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.handlers.Health != nil {
		r.handlers.Health.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterAPI(api, r.handlers, r.protect(), r.uploadLimiter)
}

func (r *Registry) protect() fiber.Handler {
	if r.auth == nil {
		return nil
	}
	return r.auth.Middleware()
}
