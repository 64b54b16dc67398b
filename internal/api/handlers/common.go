package handlers

import (
	"errors"
	"strconv"

	"Resep-HPP/domain"

	"github.com/gofiber/fiber/v2"
)

const maxPageLimit = 100

func pagination(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

// errorStatus maps service errors to HTTP codes, falling back to status.
func errorStatus(err error, status int) int {
	switch {
	case errors.Is(err, domain.ErrFoodNotFound),
		errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedRecipeAccess):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrGeminiNotConfigured),
		errors.Is(err, domain.ErrStorageNotConfigured):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, domain.ErrGeminiAPIFailed):
		return fiber.StatusBadGateway
	}
	return status
}

func currentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}
