package app

import (
	"fmt"
	"net/http"
	"strings"

	"rerank/internal/config"
	"rerank/internal/delivery/http/handler"
	"rerank/internal/delivery/http/middleware"
	"rerank/internal/delivery/http/routes"
	"rerank/internal/resume"
	"rerank/internal/usecase"
	"rerank/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

// bodyLimit leaves room for multipart framing around a maximum size resume,
// so the upload handler can answer an oversized file itself.
const bodyLimit = 12 * 1024 * 1024

type App struct {
	Fiber     *fiber.App
	WS        *http.Server
	Container *Container
}

func New(c *Container) *App {
	errMw := middleware.NewErrorMiddleware(c.Logger)

	f := fiber.New(fiber.Config{
		AppName:      c.Config.App.AppName,
		BodyLimit:    bodyLimit,
		ErrorHandler: errMw.Handler,
		UnescapePath: true,
	})

	registerGlobalMiddleware(f, c, errMw)
	registerRoutes(f, c)

	out := &App{Fiber: f, Container: c}
	if addr, err := ListenAddr(c.Config.App.WSPort); err == nil {
		out.WS = ws.NewServer(addr, ws.NewHandler(c.Hub, c.Config.App.CORSOrigins, c.Logger))
	}
	return out
}

// Bootstrap builds the container and the HTTP app. The returned cleanup
// releases the container.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg, nil)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container, errMw *middleware.ErrorMiddleware) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	app.Use(errMw.Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  corsOrigins(c.Config.App.CORSOrigins),
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Disposition", middleware.HeaderRequestID},
	}))
}

func corsOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	cache := c.SearchCache()
	repo := c.Store

	leaderboardUC := usecase.NewLeaderboardUsecase(repo, cache, c.Logger)
	candidateUC := usecase.NewCandidateUsecase(repo, cache, c.Logger)
	resumeUC := usecase.NewResumeUsecase(repo, resume.NewDocExtractor(), resume.NewDeterministicAnalyzer(), c.Logger)
	analyticsUC := usecase.NewAnalyticsUsecase(repo, cache, c.Logger)
	exportUC := usecase.NewExportUsecase(repo, c.Logger)
	simulationUC := usecase.NewSimulationUsecase(repo)
	authUC := usecase.NewAuthUsecase(usecase.RecruiterCredentials{
		Email:        c.Config.Recruiter.Email,
		PasswordHash: c.Config.Recruiter.PasswordHash,
	}, c.JWT)

	var cachePinger, dbPinger handler.Pinger
	if c.Cache != nil {
		cachePinger = c.Cache
	}
	if c.DB != nil {
		dbPinger = c.DB
	}

	registry := routes.NewRegistry(routes.Handlers{
		Health:      handler.NewHealthHandler(cachePinger, dbPinger, c.Hub),
		Leaderboard: handler.NewLeaderboardHandler(leaderboardUC),
		Candidates:  handler.NewCandidateHandler(candidateUC),
		Resumes:     handler.NewResumeHandler(resumeUC),
		Analytics:   handler.NewAnalyticsHandler(analyticsUC),
		Export:      handler.NewExportHandler(exportUC),
		Simulations: handler.NewSimulationHandler(simulationUC),
		Auth:        handler.NewAuthHandler(authUC),
	}, middleware.NewAuthMiddleware(c.JWT), middleware.NewUploadLimiter(c.Config.App.UploadRateLimit))

	registry.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
