package handler

import (
	"errors"

	"career-map/internal/delivery/http/middleware"
	"career-map/internal/pkg/response"
	"career-map/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SuggestionHandler struct {
	uc usecase.SuggestionUsecase
}

func NewSuggestionHandler(uc usecase.SuggestionUsecase) *SuggestionHandler {
	return &SuggestionHandler{uc: uc}
}

func (h *SuggestionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/skills/suggestions", h.Search)
}

func (h *SuggestionHandler) Search(c fiber.Ctx) error {
	query := fiber.Query[string](c, "q")
	limit := fiber.Query[int](c, "limit")

	items, err := h.uc.SearchSuggestions(c.Context(), query, limit)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid query parameters", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}
