package domain

import (
	"errors"
)

const (
	RoleOwner = "owner"
	RoleStaff = "staff"
)

var (
	MesaageUserNotAllowed       = "user not allowed"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrUnknownUnit    = errors.New("unknown unit")
)

type (
	PaginationResponse struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		Total      int64 `json:"total"`
		TotalPages int64 `json:"total_pages"`
	}

	// NutritionResponse is shared by food, recipe and plan responses.
	NutritionResponse struct {
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Fat      float64 `json:"fat"`
		Carbs    float64 `json:"carbs"`
		Fiber    float64 `json:"fiber"`
	}

	CostResponse struct {
		HPP           float64 `json:"hpp"`
		Operational   float64 `json:"operational"`
		Labor         float64 `json:"labor"`
		TotalModal    float64 `json:"total_modal"`
		AverageMargin float64 `json:"average_margin"`
		Profit        float64 `json:"profit"`
		SellingPrice  float64 `json:"selling_price"`
	}
)

func NewPagination(page, limit int, total int64) PaginationResponse {
	return PaginationResponse{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + int64(limit) - 1) / int64(limit),
	}
}
