package plan

import (
	"context"
	"fmt"
	"html"
	"time"

	"Resep-HPP/domain"
	"Resep-HPP/entities"
	"Resep-HPP/internal/utils/mailing"
	"Resep-HPP/internal/utils/storage"
	"Resep-HPP/pkg/costing"
	"Resep-HPP/pkg/food"
	"Resep-HPP/pkg/recipe"
	"Resep-HPP/pkg/setting"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// MailSender matches mailing.SendMail.
type MailSender func(toEmail string, subject string, body string, attachments ...mailing.Attachment) error

var renderWorkbook = RenderWorkbook

type (
	PlanService interface {
		ComputePlan(ctx context.Context, req domain.ComputePlanRequest, userID string) (domain.PlanResponse, error)
		ExportPlan(ctx context.Context, req domain.ExportPlanRequest, userID string) (domain.PlanExportResponse, error)
		GetExports(ctx context.Context, userID string, page, limit int) (domain.PlanExportListResponse, error)
	}

	planService struct {
		recipeRepository recipe.RecipeRepository
		foodRepository   food.FoodRepository
		settingService   setting.SettingService
		planRepository   PlanRepository
		storage          storage.AwsS3
		sendMail         MailSender
	}
)

// NewPlanService builds the plan service. fileStorage and sendMail may be nil,
// in which case exports are rejected or not mailed respectively.
func NewPlanService(
	recipeRepository recipe.RecipeRepository,
	foodRepository food.FoodRepository,
	settingService setting.SettingService,
	planRepository PlanRepository,
	fileStorage storage.AwsS3,
	sendMail MailSender,
) PlanService {
	return &planService{
		recipeRepository: recipeRepository,
		foodRepository:   foodRepository,
		settingService:   settingService,
		planRepository:   planRepository,
		storage:          fileStorage,
		sendMail:         sendMail,
	}
}

func (s *planService) ComputePlan(ctx context.Context, req domain.ComputePlanRequest, userID string) (domain.PlanResponse, error) {
	res := domain.PlanResponse{
		Recipes:      []domain.PlanRecipeSummary{},
		ShoppingList: []domain.ShoppingListItemResponse{},
	}

	ids, err := validateEntries(req.Entries)
	if err != nil {
		return res, err
	}
	if len(ids) == 0 {
		return res, nil
	}

	recipes, err := s.recipeRepository.GetRecipesWithIngredients(ctx, ids)
	if err != nil {
		return res, fmt.Errorf("load plan recipes: %w", err)
	}
	byID := make(map[string]*entities.Recipe, len(recipes))
	for _, r := range recipes {
		byID[r.ID.String()] = r
	}

	conversions, err := s.foodRepository.GetConversionsByFoodIDs(ctx, recipe.FoodIDs(recipes...))
	if err != nil {
		return res, fmt.Errorf("load unit conversions: %w", err)
	}

	opts, err := s.settingService.GetPlanOptions(ctx)
	if err != nil {
		return res, err
	}

	entries := make([]costing.PlanEntry, 0, len(req.Entries))
	lines := make(map[string][]costing.IngredientLine, len(req.Entries))
	for i, e := range req.Entries {
		r, ok := byID[ids[i].String()]
		if !ok {
			return res, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, e.RecipeID)
		}
		if r.UserID.String() != userID {
			return res, domain.ErrUnauthorizedRecipeAccess
		}

		entry := costing.PlanEntry{Recipe: recipe.ResolveRecipe(r), TargetServings: e.TargetServings}
		entries = append(entries, entry)
		lines[entry.Recipe.ID] = recipe.ResolveLines(r.Ingredients, conversions)

		res.Recipes = append(res.Recipes, domain.PlanRecipeSummary{
			RecipeID:       entry.Recipe.ID,
			Name:           r.Name,
			BaseServings:   r.Servings,
			TargetServings: e.TargetServings,
			ScalingFactor:  costing.ScalingFactor(e.TargetServings, r.Servings),
			Skipped:        len(r.Ingredients) == 0,
		})
	}

	result := costing.ComputePlanWithOptions(entries, lines, opts)

	for _, item := range result.ShoppingList {
		row := costing.ComputeTotals([]costing.IngredientLine{{
			Food:     costing.Resolved(item.Food),
			Quantity: item.Quantity,
			Unit:     item.Unit,
		}}, 1)

		res.ShoppingList = append(res.ShoppingList, domain.ShoppingListItemResponse{
			FoodID:   item.Food.ID,
			FoodName: item.Food.Name,
			Unit:     item.Unit,
			Quantity: item.Quantity,
			Cost:     row.Price,
		})
	}
	res.TotalCost = recipe.ToCostResponse(result.TotalCost)
	res.TotalNutrition = recipe.ToNutritionResponse(result.TotalNutrition)

	log.Infow("plan computed", "recipes", len(entries), "items", len(res.ShoppingList), "selling_price", res.TotalCost.SellingPrice)
	return res, nil
}

func (s *planService) ExportPlan(ctx context.Context, req domain.ExportPlanRequest, userID string) (domain.PlanExportResponse, error) {
	if s.storage == nil {
		return domain.PlanExportResponse{}, domain.ErrStorageNotConfigured
	}

	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.PlanExportResponse{}, domain.ErrParseUUID
	}

	plan, err := s.ComputePlan(ctx, domain.ComputePlanRequest{Entries: req.Entries}, userID)
	if err != nil {
		return domain.PlanExportResponse{}, err
	}

	now := time.Now()
	title := req.Title
	if title == "" {
		title = "Rencana Produksi " + now.Format("02-01-2006")
	}

	content, err := renderWorkbook(title, plan)
	if err != nil {
		return domain.PlanExportResponse{}, fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	export := &entities.PlanExport{
		ID:           uuid.New(),
		UserID:       ownerID,
		FileName:     fmt.Sprintf("rencana-produksi-%s.xlsx", now.Format("20060102-150405")),
		RecipeCount:  len(activeRecipes(plan.Recipes)),
		TotalModal:   plan.TotalCost.TotalModal,
		SellingPrice: plan.TotalCost.SellingPrice,
	}
	export.ObjectKey = fmt.Sprintf("plans/%s/%s.xlsx", userID, export.ID)

	if _, err := s.storage.UploadFile(ctx, export.ObjectKey, content, storage.ContentTypeXLSX); err != nil {
		return domain.PlanExportResponse{}, err
	}
	export.URL = s.storage.GetPublicLinkKey(export.ObjectKey)

	if req.Email != "" && s.sendMail != nil {
		body := fmt.Sprintf(
			"<p>%s</p><p>Total modal: %.0f<br>Harga jual: %.0f</p><p><a href=\"%s\">Unduh file</a></p>",
			html.EscapeString(title), plan.TotalCost.TotalModal, plan.TotalCost.SellingPrice, export.URL,
		)
		attachment := mailing.Attachment{FileName: export.FileName, Content: content}
		if err := s.sendMail(req.Email, title, body, attachment); err != nil {
			log.Errorw("failed to mail plan export", "export_id", export.ID, "error", err)
		} else {
			export.SentTo = req.Email
		}
	}

	if err := s.planRepository.CreateExport(ctx, export); err != nil {
		if delErr := s.storage.DeleteFile(ctx, export.ObjectKey); delErr != nil {
			log.Warnw("failed to remove orphaned export", "object_key", export.ObjectKey, "error", delErr)
		}
		return domain.PlanExportResponse{}, fmt.Errorf("save plan export: %w", err)
	}

	return toExportResponse(export), nil
}

func (s *planService) GetExports(ctx context.Context, userID string, page, limit int) (domain.PlanExportListResponse, error) {
	exports, count, err := s.planRepository.GetExports(ctx, userID, page, limit)
	if err != nil {
		return domain.PlanExportListResponse{}, err
	}

	res := domain.PlanExportListResponse{
		Exports:    make([]domain.PlanExportResponse, 0, len(exports)),
		Pagination: domain.NewPagination(page, limit, count),
	}
	for _, e := range exports {
		res.Exports = append(res.Exports, toExportResponse(e))
	}
	return res, nil
}

func validateEntries(entries []domain.PlanEntryRequest) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(entries))
	seen := make(map[uuid.UUID]bool, len(entries))
	for _, e := range entries {
		id, err := uuid.Parse(e.RecipeID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		if e.TargetServings < 1 {
			return nil, domain.ErrInvalidServings
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicatePlanRecipe, id)
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}

func toExportResponse(e *entities.PlanExport) domain.PlanExportResponse {
	return domain.PlanExportResponse{
		ID:           e.ID.String(),
		FileName:     e.FileName,
		URL:          e.URL,
		RecipeCount:  e.RecipeCount,
		TotalModal:   e.TotalModal,
		SellingPrice: e.SellingPrice,
		SentTo:       e.SentTo,
		CreatedAt:    e.CreatedAt,
	}
}
