package catalog

import (
	"Recipe-Radar-Backend/domain"
	"Recipe-Radar-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Approval states shared by staged ingredients and recipes.
const (
	StatusPending     = "pending"
	StatusApproved    = "approved"
	StatusRejected    = "rejected"
	StatusNeedsReview = "needs_review"
)

type (
	CatalogService interface {
		GetIngredients(ctx context.Context, page, limit int) ([]domain.IngredientResponse, int64, error)
		ApproveIngredient(ctx context.Context, id string) (domain.ApproveIngredientResponse, error)
		RejectIngredient(ctx context.Context, id string, reason string) error
		MarkIngredientNeedsReview(ctx context.Context, id string, reason string) error
		ApproveRecipe(ctx context.Context, id string) (domain.ApproveRecipeResponse, error)
		RejectRecipe(ctx context.Context, id string, reason string) error
		RecomputeSeasoningFlags(ctx context.Context) (domain.RecomputeSeasoningResponse, error)
	}

	catalogService struct {
		catalogRepository  CatalogRepository
		seasoningThreshold float64
	}
)

func NewCatalogService(catalogRepository CatalogRepository, seasoningThreshold float64) CatalogService {
	return &catalogService{
		catalogRepository:  catalogRepository,
		seasoningThreshold: seasoningThreshold,
	}
}

func (s *catalogService) GetIngredients(ctx context.Context, page, limit int) ([]domain.IngredientResponse, int64, error) {
	ingredients, count, err := s.catalogRepository.GetIngredients(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		response = append(response, domain.IngredientResponse{
			ID:                ingredient.ID.String(),
			CanonicalName:     ingredient.CanonicalName,
			Category:          ingredient.Category,
			IsCommonSeasoning: ingredient.IsCommonSeasoning,
			UsageCount:        ingredient.UsageCount,
			CreatedAt:         ingredient.CreatedAt,
		})
	}

	return response, count, nil
}

// ApproveIngredient promotes a staged ingredient into the catalog. A
// duplicate-flagged entry merges onto its proposed target instead of creating
// a new row. A concurrent insert of the same canonical name is resolved by
// re-reading the winner and merging onto it.
func (s *catalogService) ApproveIngredient(ctx context.Context, id string) (domain.ApproveIngredientResponse, error) {
	pendingID, err := uuid.Parse(id)
	if err != nil {
		return domain.ApproveIngredientResponse{}, domain.ErrParseUUID
	}

	pending, err := s.catalogRepository.GetPendingIngredientByID(ctx, pendingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ApproveIngredientResponse{}, domain.ErrPendingIngredientNotFound
		}
		return domain.ApproveIngredientResponse{}, err
	}

	if pending.ApprovalStatus == StatusApproved || pending.ApprovalStatus == StatusRejected {
		return domain.ApproveIngredientResponse{}, domain.ErrAlreadyResolved
	}

	if pending.DuplicateOfID != nil {
		target, err := s.catalogRepository.GetIngredientByID(ctx, *pending.DuplicateOfID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ApproveIngredientResponse{}, domain.ErrDuplicateTargetNotApproved
			}
			return domain.ApproveIngredientResponse{}, err
		}

		pending.IngredientID = &target.ID
		pending.ApprovalStatus = StatusApproved
		if err := s.catalogRepository.UpdatePendingIngredient(ctx, pending); err != nil {
			return domain.ApproveIngredientResponse{}, err
		}

		return domain.ApproveIngredientResponse{
			IngredientID:  target.ID.String(),
			CanonicalName: target.CanonicalName,
			Merged:        true,
		}, nil
	}

	ingredient := &entities.Ingredient{
		ID:            uuid.New(),
		CanonicalName: pending.NormalizedName,
		Category:      pending.SuggestedCategory,
	}

	merged := false
	if err := s.catalogRepository.CreateIngredient(ctx, ingredient); err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ApproveIngredientResponse{}, err
		}
		// Another batch created this canonical name first; merge onto it.
		existing, lookupErr := s.catalogRepository.GetIngredientByName(ctx, pending.NormalizedName)
		if lookupErr != nil {
			return domain.ApproveIngredientResponse{}, lookupErr
		}
		ingredient = existing
		merged = true
	}

	pending.IngredientID = &ingredient.ID
	pending.ApprovalStatus = StatusApproved
	if err := s.catalogRepository.UpdatePendingIngredient(ctx, pending); err != nil {
		return domain.ApproveIngredientResponse{}, err
	}

	return domain.ApproveIngredientResponse{
		IngredientID:  ingredient.ID.String(),
		CanonicalName: ingredient.CanonicalName,
		Merged:        merged,
	}, nil
}

func (s *catalogService) RejectIngredient(ctx context.Context, id string, reason string) error {
	pendingID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}

	pending, err := s.catalogRepository.GetPendingIngredientByID(ctx, pendingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPendingIngredientNotFound
		}
		return err
	}

	if pending.ApprovalStatus == StatusApproved || pending.ApprovalStatus == StatusRejected {
		return domain.ErrAlreadyResolved
	}

	pending.ApprovalStatus = StatusRejected
	pending.RejectionReason = reason
	return s.catalogRepository.UpdatePendingIngredient(ctx, pending)
}

func (s *catalogService) MarkIngredientNeedsReview(ctx context.Context, id string, reason string) error {
	pendingID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}

	pending, err := s.catalogRepository.GetPendingIngredientByID(ctx, pendingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPendingIngredientNotFound
		}
		return err
	}

	if pending.ApprovalStatus == StatusApproved || pending.ApprovalStatus == StatusRejected {
		return domain.ErrAlreadyResolved
	}

	pending.ApprovalStatus = StatusNeedsReview
	pending.RejectionReason = reason
	return s.catalogRepository.UpdatePendingIngredient(ctx, pending)
}

// ApproveRecipe promotes a staged recipe and its resolved ingredient rows into
// the production catalog. Every non-rejected pending ingredient of the row
// must already be approved; rejected rows are simply left out of the recipe.
func (s *catalogService) ApproveRecipe(ctx context.Context, id string) (domain.ApproveRecipeResponse, error) {
	pendingID, err := uuid.Parse(id)
	if err != nil {
		return domain.ApproveRecipeResponse{}, domain.ErrParseUUID
	}

	pending, err := s.catalogRepository.GetPendingRecipeByID(ctx, pendingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ApproveRecipeResponse{}, domain.ErrPendingRecipeNotFound
		}
		return domain.ApproveRecipeResponse{}, err
	}

	if pending.ApprovalStatus == StatusApproved || pending.ApprovalStatus == StatusRejected {
		return domain.ApproveRecipeResponse{}, domain.ErrAlreadyResolved
	}

	pendingIngredients, err := s.catalogRepository.GetPendingIngredientsByRecipe(ctx, pending.ID)
	if err != nil {
		return domain.ApproveRecipeResponse{}, err
	}

	recipe := &entities.Recipe{
		ID:        uuid.New(),
		Title:     pending.Title,
		SourceRef: pending.SourceRef,
	}

	var associations []*entities.RecipeIngredient
	seen := make(map[uuid.UUID]bool)
	for _, pi := range pendingIngredients {
		switch pi.ApprovalStatus {
		case StatusRejected:
			continue
		case StatusApproved:
			if pi.IngredientID == nil {
				return domain.ApproveRecipeResponse{}, domain.ErrUnresolvedIngredients
			}
		default:
			return domain.ApproveRecipeResponse{}, domain.ErrUnresolvedIngredients
		}

		// Two raw tokens may merge onto the same catalog entry; keep the first.
		if seen[*pi.IngredientID] {
			continue
		}
		seen[*pi.IngredientID] = true

		associations = append(associations, &entities.RecipeIngredient{
			ID:           uuid.New(),
			IngredientID: *pi.IngredientID,
			QuantityFrom: pi.QuantityFrom,
			QuantityTo:   pi.QuantityTo,
			Unit:         pi.Unit,
			IsVague:      pi.IsVague,
			Importance:   pi.Importance,
			DisplayOrder: pi.DisplayOrder,
		})
	}

	if err := s.catalogRepository.CreateRecipeWithIngredients(ctx, recipe, associations); err != nil {
		return domain.ApproveRecipeResponse{}, err
	}

	pending.RecipeID = &recipe.ID
	pending.ApprovalStatus = StatusApproved
	if err := s.catalogRepository.UpdatePendingRecipe(ctx, pending); err != nil {
		return domain.ApproveRecipeResponse{}, err
	}

	return domain.ApproveRecipeResponse{
		RecipeID:        recipe.ID.String(),
		Title:           recipe.Title,
		IngredientCount: len(associations),
	}, nil
}

func (s *catalogService) RejectRecipe(ctx context.Context, id string, reason string) error {
	pendingID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}

	pending, err := s.catalogRepository.GetPendingRecipeByID(ctx, pendingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPendingRecipeNotFound
		}
		return err
	}

	if pending.ApprovalStatus == StatusApproved || pending.ApprovalStatus == StatusRejected {
		return domain.ErrAlreadyResolved
	}

	pending.ApprovalStatus = StatusRejected
	pending.RejectionReason = reason
	return s.catalogRepository.UpdatePendingRecipe(ctx, pending)
}

// RecomputeSeasoningFlags re-derives is_common_seasoning for the whole catalog
// from corpus frequency. It is a batch operation triggered explicitly (or
// after approvals), never inline with a request.
func (s *catalogService) RecomputeSeasoningFlags(ctx context.Context) (domain.RecomputeSeasoningResponse, error) {
	totalRecipes, err := s.catalogRepository.CountRecipes(ctx)
	if err != nil {
		return domain.RecomputeSeasoningResponse{}, err
	}
	if totalRecipes == 0 {
		return domain.RecomputeSeasoningResponse{TotalRecipes: 0}, nil
	}

	counts, err := s.catalogRepository.GetIngredientRecipeCounts(ctx)
	if err != nil {
		return domain.RecomputeSeasoningResponse{}, err
	}

	ingredients, err := s.catalogRepository.GetAllIngredients(ctx)
	if err != nil {
		return domain.RecomputeSeasoningResponse{}, err
	}

	flagged := 0
	for _, ingredient := range ingredients {
		frequency := float64(counts[ingredient.ID]) / float64(totalRecipes)
		isCommon := frequency >= s.seasoningThreshold
		if isCommon {
			flagged++
		}
		if isCommon != ingredient.IsCommonSeasoning {
			if err := s.catalogRepository.UpdateIngredientSeasoning(ctx, ingredient.ID, isCommon); err != nil {
				return domain.RecomputeSeasoningResponse{}, err
			}
		}
	}

	return domain.RecomputeSeasoningResponse{
		TotalRecipes:      totalRecipes,
		FlaggedSeasonings: flagged,
	}, nil
}
