package handler

import (
	"errors"

	"career-map/internal/delivery/http/dto"
	"career-map/internal/delivery/http/middleware"
	"career-map/internal/form"
	"career-map/internal/pkg/response"
	"career-map/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type IntakeHandler struct {
	uc usecase.IntakeUsecase
}

func NewIntakeHandler(uc usecase.IntakeUsecase) *IntakeHandler {
	return &IntakeHandler{uc: uc}
}

func (h *IntakeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/submissions", h.Submit)
}

func (h *IntakeHandler) Submit(c fiber.Ctx) error {
	var req form.Intake
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	locale := form.LocaleFromAcceptLanguage(c.Get("Accept-Language"))

	created, fieldErrs, err := h.uc.Submit(c.Context(), req, locale)
	if err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", fieldErrs, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusCreated, "Submission created successfully", dto.NewSubmissionResponse(created))
}
