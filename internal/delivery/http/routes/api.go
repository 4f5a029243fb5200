package routes

import (
	"github.com/gofiber/fiber/v3"
)

// RegisterAPI mounts every /api group. protect guards recruiter mutations and
// limit throttles resume uploads; either may be nil.
func RegisterAPI(r fiber.Router, h Handlers, protect, limit fiber.Handler) {
	if r == nil {
		return
	}

	if h.Leaderboard != nil {
		h.Leaderboard.RegisterRoutes(r.Group("/leaderboard"))
	}
	if h.Candidates != nil {
		h.Candidates.RegisterRoutes(r.Group("/candidates"), protect)
	}
	if h.Resumes != nil {
		h.Resumes.RegisterRoutes(r.Group("/resumes"), limit)
	}
	if h.Analytics != nil {
		h.Analytics.RegisterRoutes(r.Group("/analytics"))
	}
	if h.Export != nil {
		h.Export.RegisterRoutes(r.Group("/export"))
	}
	if h.Simulations != nil {
		h.Simulations.RegisterRoutes(r.Group("/simulations"))
	}
	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}
}
