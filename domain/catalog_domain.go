package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetIngredients     = "ingredients retrieved successfully"
	MessageSuccessApproveIngredient  = "pending ingredient approved"
	MessageSuccessRejectIngredient   = "pending ingredient rejected"
	MessageSuccessReviewIngredient   = "pending ingredient held for review"
	MessageSuccessApproveRecipe      = "pending recipe approved"
	MessageSuccessRejectRecipe       = "pending recipe rejected"
	MessageSuccessRecomputeSeasoning = "seasoning flags recomputed"

	MessageFailedGetIngredients     = "failed to retrieve ingredients"
	MessageFailedApproveIngredient  = "failed to approve pending ingredient"
	MessageFailedRejectIngredient   = "failed to reject pending ingredient"
	MessageFailedReviewIngredient   = "failed to hold pending ingredient for review"
	MessageFailedApproveRecipe      = "failed to approve pending recipe"
	MessageFailedRejectRecipe       = "failed to reject pending recipe"
	MessageFailedRecomputeSeasoning = "failed to recompute seasoning flags"

	ErrIngredientNotFound         = errors.New("ingredient not found")
	ErrPendingIngredientNotFound  = errors.New("pending ingredient not found")
	ErrPendingRecipeNotFound      = errors.New("pending recipe not found")
	ErrAlreadyResolved            = errors.New("staged entity is already resolved")
	ErrDuplicateTargetNotApproved = errors.New("duplicate target is not an approved ingredient")
	ErrUnresolvedIngredients      = errors.New("recipe has unresolved pending ingredients")
)

type (
	ApprovalRequest struct {
		Reason string `json:"reason" validate:"omitempty,max=500"`
	}

	IngredientResponse struct {
		ID                string    `json:"id"`
		CanonicalName     string    `json:"canonical_name"`
		Category          string    `json:"category"`
		IsCommonSeasoning bool      `json:"is_common_seasoning"`
		UsageCount        int64     `json:"usage_count"`
		CreatedAt         time.Time `json:"created_at"`
	}

	PendingIngredientResponse struct {
		ID                string   `json:"id"`
		RawText           string   `json:"raw_text"`
		NormalizedName    string   `json:"normalized_name"`
		SuggestedCategory string   `json:"suggested_category"`
		QuantityFrom      *float64 `json:"quantity_from,omitempty"`
		QuantityTo        *float64 `json:"quantity_to,omitempty"`
		Unit              *string  `json:"unit,omitempty"`
		IsVague           bool     `json:"is_vague"`
		Importance        string   `json:"importance"`
		Confidence        float64  `json:"confidence"`
		DuplicateOfID     *string  `json:"duplicate_of_id,omitempty"`
		MatchConfidence   float64  `json:"match_confidence,omitempty"`
		ApprovalStatus    string   `json:"approval_status"`
		RejectionReason   string   `json:"rejection_reason,omitempty"`
	}

	PendingRecipeResponse struct {
		ID              string `json:"id"`
		SourceRef       string `json:"source_ref"`
		Title           string `json:"title"`
		RawIngredients  string `json:"raw_ingredients"`
		ApprovalStatus  string `json:"approval_status"`
		RejectionReason string `json:"rejection_reason,omitempty"`
		RecipeID        string `json:"recipe_id,omitempty"`
	}

	ApproveIngredientResponse struct {
		IngredientID  string `json:"ingredient_id"`
		CanonicalName string `json:"canonical_name"`
		Merged        bool   `json:"merged"`
	}

	ApproveRecipeResponse struct {
		RecipeID        string `json:"recipe_id"`
		Title           string `json:"title"`
		IngredientCount int    `json:"ingredient_count"`
	}

	RecomputeSeasoningResponse struct {
		TotalRecipes      int64 `json:"total_recipes"`
		FlaggedSeasonings int   `json:"flagged_seasonings"`
	}
)
