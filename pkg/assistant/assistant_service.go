package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"Resep-HPP/domain"
	"Resep-HPP/pkg/costing"
	"Resep-HPP/pkg/recipe"

	"github.com/gofiber/fiber/v2/log"
)

type (
	AssistantService interface {
		DraftFood(ctx context.Context, req domain.FoodDraftRequest) (domain.FoodDraft, error)
		DraftInstructions(ctx context.Context, recipeID string, userID string) (domain.InstructionsDraft, error)
	}

	assistantService struct {
		gemini        GeminiClient
		recipeService recipe.RecipeService
	}
)

func NewAssistantService(gemini GeminiClient, recipeService recipe.RecipeService) AssistantService {
	return &assistantService{
		gemini:        gemini,
		recipeService: recipeService,
	}
}

// DraftFood asks the model for nutrition and a typical Indonesian market price
// of a raw ingredient. The draft is returned for review and never stored.
func (s *assistantService) DraftFood(ctx context.Context, req domain.FoodDraftRequest) (domain.FoodDraft, error) {
	prompt := fmt.Sprintf(
		"You are a nutritionist helping an Indonesian home kitchen fill in its ingredient catalogue. "+
			"For the raw ingredient %q give nutrition values per 100 grams and an estimated retail price "+
			"in Indonesian Rupiah per 100 grams. "+
			"Respond only with a JSON object with these fields: name, category, calories_kcal, protein_grams, "+
			"fat_grams, carbs_grams, fiber_grams, price_per_100g. Use numbers, not strings, for every value "+
			"except name and category. Do not include any text outside of the JSON object.",
		req.Name,
	)

	text, err := s.gemini.GenerateText(ctx, prompt)
	if err != nil {
		return domain.FoodDraft{}, err
	}

	raw, err := extractJSON(text, '{', '}')
	if err != nil {
		return domain.FoodDraft{}, err
	}

	var draft domain.FoodDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return domain.FoodDraft{}, fmt.Errorf("%w: %v", domain.ErrGeminiAPIFailed, err)
	}

	if draft.Name == "" {
		draft.Name = req.Name
	}
	draft.ServingSizeGrams = costing.DefaultServingSizeGrams
	for _, v := range []*float64{&draft.CaloriesKcal, &draft.ProteinGrams, &draft.FatGrams, &draft.CarbsGrams, &draft.FiberGrams, &draft.PricePer100g} {
		if *v < 0 {
			*v = 0
		}
	}

	log.Infow("food draft generated", "name", draft.Name)
	return draft, nil
}

func (s *assistantService) DraftInstructions(ctx context.Context, recipeID string, userID string) (domain.InstructionsDraft, error) {
	detail, err := s.recipeService.GetRecipeDetail(ctx, recipeID, userID)
	if err != nil {
		return domain.InstructionsDraft{}, err
	}

	ingredients := make([]string, 0, len(detail.Ingredients))
	for _, ing := range detail.Ingredients {
		if ing.Missing {
			continue
		}
		ingredients = append(ingredients, fmt.Sprintf("%g %s %s", ing.Quantity, ing.Unit, ing.FoodName))
	}

	prompt := fmt.Sprintf(
		"You are a professional Indonesian chef. Write clear step by step cooking instructions in Bahasa Indonesia "+
			"for the recipe %q (%d servings) using these ingredients: %s. "+
			"Respond only with a JSON array of strings, one string per step. "+
			"Do not include any explanations or text outside of the JSON array.",
		detail.Name, detail.Servings, strings.Join(ingredients, "; "),
	)

	text, err := s.gemini.GenerateText(ctx, prompt)
	if err != nil {
		return domain.InstructionsDraft{}, err
	}

	raw, err := extractJSON(text, '[', ']')
	if err != nil {
		return domain.InstructionsDraft{}, err
	}

	var steps []string
	if err := json.Unmarshal([]byte(raw), &steps); err != nil {
		return domain.InstructionsDraft{}, fmt.Errorf("%w: %v", domain.ErrGeminiAPIFailed, err)
	}

	return domain.InstructionsDraft{
		RecipeID: recipeID,
		Steps:    steps,
	}, nil
}
