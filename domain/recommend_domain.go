package domain

import (
	"errors"
)

var (
	MessageSuccessGetRecommendations = "recommendations retrieved successfully"
	MessageFailedGetRecommendations  = "failed to retrieve recommendations"
	MessageEmptyFridge               = "fridge set is empty, add ingredients to get recommendations"

	ErrUnknownAlgorithm = errors.New("unknown matching algorithm")
)

type (
	RecommendationRequest struct {
		FridgeIngredientIDs []string `json:"fridge_ingredient_ids" validate:"omitempty,dive,uuid"`
		Algorithm           string   `json:"algorithm" validate:"omitempty,oneof=jaccard cosine weighted-essential"`
		MinMatchRate        *float64 `json:"min_match_rate" validate:"omitempty,min=0,max=1"`
		ExcludeSeasonings   *bool    `json:"exclude_seasonings"`
		Limit               int      `json:"limit" validate:"omitempty,min=1,max=100"`
	}

	IngredientBrief struct {
		ID            string `json:"id"`
		CanonicalName string `json:"canonical_name"`
		Category      string `json:"category"`
	}

	RecommendedRecipe struct {
		RecipeID           string            `json:"recipe_id"`
		Title              string            `json:"title"`
		Score              float64           `json:"score"`
		MatchedIngredients []IngredientBrief `json:"matched_ingredients"`
		MissingIngredients []IngredientBrief `json:"missing_ingredients"`
	}

	RecommendationResponse struct {
		Recipes   []RecommendedRecipe `json:"recipes"`
		Total     int                 `json:"total"`
		Algorithm string              `json:"algorithm"`
		Message   string              `json:"message,omitempty"`
	}
)
