package handler

import (
	"context"

	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/database"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type cachePinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    database.DB
	cache cachePinger
}

func NewHealthHandler(db database.DB, cache cachePinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Handle)
}

func (h *HealthHandler) Handle(c fiber.Ctx) error {
	dbStatus := "ok"
	if h.db == nil {
		dbStatus = "unconfigured"
	} else if err := h.db.Ping(c.Context()); err != nil {
		dbStatus = "down"
	}

	cacheStatus := "ok"
	if h.cache == nil {
		cacheStatus = "unconfigured"
	} else if err := h.cache.Ping(c.Context()); err != nil {
		cacheStatus = "down"
	}

	status := fiber.StatusOK
	if dbStatus == "down" {
		status = fiber.StatusServiceUnavailable
	}

	data := map[string]any{
		"database": dbStatus,
		"cache":    cacheStatus,
	}
	if status != fiber.StatusOK {
		return response.Error(c, status, "degraded", data)
	}
	return response.Success(c, status, response.MessageOK, data)
}
