package app

import (
	"fmt"
	"log"
	"strings"

	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/config"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/delivery/http/handler"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/delivery/http/middleware"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{})

	registerGlobalMiddleware(f)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(log.Default()).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.DB, c.Cache),
		handler.NewAuthHandler(c.AuthUC),
		handler.NewUserHandler(c.UserUC),
		handler.NewJobsHandler(c.JobSearchUC),
		handler.NewApplicationHandler(c.ApplyUC),
		middleware.NewAuthMiddleware(c.JWT),
	)
	registry.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
