package handler

import (
	"errors"

	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/delivery/http/dto"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/delivery/http/middleware"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/pkg/response"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobsHandler struct {
	uc usecase.JobSearchUsecase
}

func NewJobsHandler(uc usecase.JobSearchUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/search", h.HandleSearch)
}

// HandleSearch is public. A caller may pass user_id to get a personalized
// filter and have already-contacted jobs suppressed.
func (h *JobsHandler) HandleSearch(c fiber.Ctx) error {
	params := usecase.SearchParams{
		Query:    c.Query("query"),
		Location: c.Query("location"),
	}

	if raw := c.Query("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		params.UserID = &id
	}

	jobs, err := h.uc.SearchJobs(c.Context(), params)
	if err != nil {
		return mapJobSearchUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobListResponse(jobs))
}

func mapJobSearchUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
