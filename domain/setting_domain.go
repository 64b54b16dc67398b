package domain

import (
	"errors"
)

const (
	SettingDefaultMargin = "default_margin_percent"
	SettingRoundingStep  = "price_rounding_step"
	SettingBusinessName  = "business_name"
	SettingCurrency      = "currency"
)

var (
	MessageSuccessGetSettings    = "settings retrieved successfully"
	MessageSuccessUpdateSettings = "settings updated successfully"

	MessageFailedGetSettings    = "failed to retrieve settings"
	MessageFailedUpdateSettings = "failed to update settings"

	ErrInvalidSetting = errors.New("invalid setting value")
)

type (
	UpdateSettingsRequest struct {
		DefaultMarginPercent *float64 `json:"default_margin_percent" validate:"omitempty,min=0"`
		PriceRoundingStep    *float64 `json:"price_rounding_step" validate:"omitempty,gt=0"`
		BusinessName         *string  `json:"business_name" validate:"omitempty,max=100"`
		Currency             *string  `json:"currency" validate:"omitempty,len=3"`
	}

	SettingsResponse struct {
		DefaultMarginPercent float64 `json:"default_margin_percent"`
		PriceRoundingStep    float64 `json:"price_rounding_step"`
		BusinessName         string  `json:"business_name"`
		Currency             string  `json:"currency"`
	}
)
