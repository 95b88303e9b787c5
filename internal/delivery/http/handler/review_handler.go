package handler

import (
	"errors"

	"career-map/internal/delivery/http/dto"
	"career-map/internal/delivery/http/middleware"
	"career-map/internal/pkg/response"
	"career-map/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	uc usecase.ReviewUsecase
}

func NewReviewHandler(uc usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

func (h *ReviewHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/submissions", h.List)
	r.Get("/submissions/:id", h.Get)
}

func (h *ReviewHandler) List(c fiber.Ctx) error {
	limit := fiber.Query[int](c, "limit")
	offset := fiber.Query[int](c, "offset")

	items, total, err := h.uc.ListSubmissions(c.Context(), usecase.ListParams{Limit: limit, Offset: offset})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid pagination parameters", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	res := dto.SubmissionListResponse{
		Items:  make([]dto.SubmissionResponse, 0, len(items)),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for _, it := range items {
		res.Items = append(res.Items, dto.NewSubmissionResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ReviewHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid submission id", nil, err)
	}

	sub, err := h.uc.GetSubmission(c.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrSubmissionNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Submission not found", nil, err)
		}
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid submission id", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSubmissionResponse(sub))
}
