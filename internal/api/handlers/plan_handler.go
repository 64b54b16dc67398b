package handlers

import (
	"Resep-HPP/domain"
	"Resep-HPP/internal/api/presenters"
	"Resep-HPP/pkg/plan"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PlanHandler interface {
		ComputePlan(c *fiber.Ctx) error
		ExportPlan(c *fiber.Ctx) error
		GetExports(c *fiber.Ctx) error
	}

	planHandler struct {
		planService plan.PlanService
		validator   *validator.Validate
	}
)

func NewPlanHandler(planService plan.PlanService, validator *validator.Validate) PlanHandler {
	return &planHandler{
		planService: planService,
		validator:   validator,
	}
}

func (h *planHandler) ComputePlan(c *fiber.Ctx) error {
	req := new(domain.ComputePlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedComputePlan, err)
	}

	res, err := h.planService.ComputePlan(c.Context(), *req, currentUserID(c))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err, fiber.StatusBadRequest), domain.MessageFailedComputePlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessComputePlan)
}

func (h *planHandler) ExportPlan(c *fiber.Ctx) error {
	req := new(domain.ExportPlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExportPlan, err)
	}

	res, err := h.planService.ExportPlan(c.Context(), *req, currentUserID(c))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err, fiber.StatusInternalServerError), domain.MessageFailedExportPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessExportPlan)
}

func (h *planHandler) GetExports(c *fiber.Ctx) error {
	page, limit := pagination(c)

	res, err := h.planService.GetExports(c.Context(), currentUserID(c), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetExports, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetExports)
}
