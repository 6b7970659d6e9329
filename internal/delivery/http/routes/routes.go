package routes

import (
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/delivery/http/handler"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/delivery/http/middleware"
	v1 "github.com/shaktisingh404/Auto-Job-Apply-System/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

// Registry owns the route tree. Handlers are built once in the app container
// and injected here.
type Registry struct {
	health       *handler.HealthHandler
	auth         *handler.AuthHandler
	users        *handler.UserHandler
	jobs         *handler.JobsHandler
	applications *handler.ApplicationHandler
	authMw       *middleware.AuthMiddleware
}

func NewRegistry(
	health *handler.HealthHandler,
	auth *handler.AuthHandler,
	users *handler.UserHandler,
	jobs *handler.JobsHandler,
	applications *handler.ApplicationHandler,
	authMw *middleware.AuthMiddleware,
) *Registry {
	return &Registry{
		health:       health,
		auth:         auth,
		users:        users,
		jobs:         jobs,
		applications: applications,
		authMw:       authMw,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1.Register(api.Group("/v1"), v1.Handlers{
		Auth:         r.auth,
		Users:        r.users,
		Jobs:         r.jobs,
		Applications: r.applications,
		AuthMw:       r.authMw,
	})
}
