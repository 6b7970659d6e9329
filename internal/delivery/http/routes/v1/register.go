package v1

import (
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/delivery/http/handler"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth         *handler.AuthHandler
	Users        *handler.UserHandler
	Jobs         *handler.JobsHandler
	Applications *handler.ApplicationHandler
	AuthMw       *middleware.AuthMiddleware
}

// Register mounts the v1 surface. Job search stays public; profile and
// application routes require a valid access token.
func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}

	if h.Jobs != nil {
		h.Jobs.RegisterRoutes(r.Group("/jobs"))
	}

	if h.AuthMw == nil {
		return
	}
	protected := r.Group("", h.AuthMw.Middleware())

	if h.Users != nil {
		h.Users.RegisterRoutes(protected.Group("/users"))
	}
	if h.Applications != nil {
		h.Applications.RegisterRoutes(protected.Group("/applications"))
	}
}
