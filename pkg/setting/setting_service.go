package setting

import (
	"context"
	"strconv"

	"Resep-HPP/domain"
	"Resep-HPP/pkg/costing"

	"github.com/gofiber/fiber/v2/log"
)

const defaultCurrency = "IDR"

type (
	SettingService interface {
		GetSettings(ctx context.Context) (domain.SettingsResponse, error)
		UpdateSettings(ctx context.Context, req domain.UpdateSettingsRequest) (domain.SettingsResponse, error)
		GetPlanOptions(ctx context.Context) (costing.PlanOptions, error)
	}

	settingService struct {
		settingRepository SettingRepository
	}
)

func NewSettingService(settingRepository SettingRepository) SettingService {
	return &settingService{
		settingRepository: settingRepository,
	}
}

func (s *settingService) GetSettings(ctx context.Context) (domain.SettingsResponse, error) {
	values, err := s.settingRepository.GetAll(ctx)
	if err != nil {
		return domain.SettingsResponse{}, err
	}

	opts := planOptionsFrom(values)
	res := domain.SettingsResponse{
		DefaultMarginPercent: opts.DefaultMarginPercent,
		PriceRoundingStep:    opts.RoundingStep,
		BusinessName:         values[domain.SettingBusinessName],
		Currency:             values[domain.SettingCurrency],
	}
	if res.Currency == "" {
		res.Currency = defaultCurrency
	}
	return res, nil
}

func (s *settingService) UpdateSettings(ctx context.Context, req domain.UpdateSettingsRequest) (domain.SettingsResponse, error) {
	values := make(map[string]string)

	if req.DefaultMarginPercent != nil {
		if *req.DefaultMarginPercent < 0 {
			return domain.SettingsResponse{}, domain.ErrInvalidMargin
		}
		values[domain.SettingDefaultMargin] = formatFloat(*req.DefaultMarginPercent)
	}
	if req.PriceRoundingStep != nil {
		if *req.PriceRoundingStep <= 0 {
			return domain.SettingsResponse{}, domain.ErrInvalidSetting
		}
		values[domain.SettingRoundingStep] = formatFloat(*req.PriceRoundingStep)
	}
	if req.BusinessName != nil {
		values[domain.SettingBusinessName] = *req.BusinessName
	}
	if req.Currency != nil {
		values[domain.SettingCurrency] = *req.Currency
	}

	if err := s.settingRepository.Upsert(ctx, values); err != nil {
		return domain.SettingsResponse{}, err
	}
	return s.GetSettings(ctx)
}

func (s *settingService) GetPlanOptions(ctx context.Context) (costing.PlanOptions, error) {
	values, err := s.settingRepository.GetAll(ctx)
	if err != nil {
		return costing.PlanOptions{}, err
	}
	return planOptionsFrom(values), nil
}

func planOptionsFrom(values map[string]string) costing.PlanOptions {
	opts := costing.DefaultPlanOptions()

	if v, ok := parsePositive(values, domain.SettingDefaultMargin, true); ok {
		opts.DefaultMarginPercent = v
	}
	if v, ok := parsePositive(values, domain.SettingRoundingStep, false); ok {
		opts.RoundingStep = v
	}
	return opts
}

func parsePositive(values map[string]string, key string, allowZero bool) (float64, bool) {
	raw, ok := values[key]
	if !ok || raw == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || (v == 0 && !allowZero) {
		log.Warnw("ignoring invalid setting", "key", key, "value", raw)
		return 0, false
	}
	return v, true
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
