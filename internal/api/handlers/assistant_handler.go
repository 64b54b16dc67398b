package handlers

import (
	"Resep-HPP/domain"
	"Resep-HPP/internal/api/presenters"
	"Resep-HPP/pkg/assistant"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AssistantHandler interface {
		DraftFood(c *fiber.Ctx) error
		DraftInstructions(c *fiber.Ctx) error
	}

	assistantHandler struct {
		assistantService assistant.AssistantService
		validator        *validator.Validate
	}
)

func NewAssistantHandler(assistantService assistant.AssistantService, validator *validator.Validate) AssistantHandler {
	return &assistantHandler{
		assistantService: assistantService,
		validator:        validator,
	}
}

func (h *assistantHandler) DraftFood(c *fiber.Ctx) error {
	req := new(domain.FoodDraftRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDraftFood, err)
	}

	res, err := h.assistantService.DraftFood(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err, fiber.StatusInternalServerError), domain.MessageFailedDraftFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDraftFood)
}

func (h *assistantHandler) DraftInstructions(c *fiber.Ctx) error {
	res, err := h.assistantService.DraftInstructions(c.Context(), c.Params("id"), currentUserID(c))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err, fiber.StatusInternalServerError), domain.MessageFailedDraftInstructions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDraftInstructions)
}
