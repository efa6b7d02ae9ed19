package match

import (
	"Recipe-Radar-Backend/domain"
	"Recipe-Radar-Backend/entities"
	"Recipe-Radar-Backend/internal/utils"
	"context"
	"sort"

	"github.com/google/uuid"
)

type (
	MatchService interface {
		Recommend(ctx context.Context, req domain.RecommendationRequest) (domain.RecommendationResponse, error)
	}

	matchService struct {
		matchRepository MatchRepository
		settings        utils.Settings
	}
)

func NewMatchService(matchRepository MatchRepository, settings utils.Settings) MatchService {
	return &matchService{
		matchRepository: matchRepository,
		settings:        settings,
	}
}

// Recommend scores every candidate recipe against the fridge set and returns
// the top matches. Scoring is read-only against the catalog; recipes sharing
// no ingredient with the fridge are pruned through an inverted index before
// any scorer runs.
func (s *matchService) Recommend(ctx context.Context, req domain.RecommendationRequest) (domain.RecommendationResponse, error) {
	algorithm := req.Algorithm
	if algorithm == "" {
		algorithm = s.settings.DefaultAlgorithm
	}
	scorer, err := NewScorer(algorithm)
	if err != nil {
		return domain.RecommendationResponse{}, err
	}

	if len(req.FridgeIngredientIDs) == 0 {
		return domain.RecommendationResponse{
			Recipes:   []domain.RecommendedRecipe{},
			Algorithm: algorithm,
			Message:   domain.MessageEmptyFridge,
		}, nil
	}

	fridge := make(map[uuid.UUID]bool, len(req.FridgeIngredientIDs))
	for _, raw := range req.FridgeIngredientIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return domain.RecommendationResponse{}, domain.ErrParseUUID
		}
		fridge[id] = true
	}

	minMatchRate := s.settings.MinMatchRate
	if req.MinMatchRate != nil {
		minMatchRate = *req.MinMatchRate
	}
	excludeSeasonings := s.settings.ExcludeSeasoningsDefault
	if req.ExcludeSeasonings != nil {
		excludeSeasonings = *req.ExcludeSeasonings
	}
	limit := s.settings.DefaultLimit
	if req.Limit > 0 {
		limit = req.Limit
	}

	recipes, err := s.matchRepository.GetScoringRecipes(ctx)
	if err != nil {
		return domain.RecommendationResponse{}, err
	}

	vectors := make([]*RecipeVector, 0, len(recipes))
	index := make(map[uuid.UUID][]int)
	for _, recipe := range recipes {
		vector := buildVector(recipe, excludeSeasonings)
		position := len(vectors)
		vectors = append(vectors, vector)
		for _, item := range vector.Items {
			index[item.IngredientID] = append(index[item.IngredientID], position)
		}
	}

	candidates := make(map[int]bool)
	for id := range fridge {
		for _, position := range index[id] {
			candidates[position] = true
		}
	}

	threshold := scorer.Threshold(minMatchRate)
	var scored []domain.RecommendedRecipe
	for position := range candidates {
		vector := vectors[position]
		score := scorer.Score(vector, fridge)
		if score < threshold {
			continue
		}
		scored = append(scored, domain.RecommendedRecipe{
			RecipeID:           vector.RecipeID.String(),
			Title:              vector.Title,
			Score:              score,
			MatchedIngredients: matchedIngredients(vector, fridge),
			MissingIngredients: missingIngredients(vector, fridge),
		})
	}

	// Descending score, ascending recipe id on ties, so output is stable.
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].RecipeID < scored[j].RecipeID
	})

	total := len(scored)
	if len(scored) > limit {
		scored = scored[:limit]
	}
	if scored == nil {
		scored = []domain.RecommendedRecipe{}
	}

	return domain.RecommendationResponse{
		Recipes:   scored,
		Total:     total,
		Algorithm: algorithm,
	}, nil
}

func buildVector(recipe *entities.Recipe, excludeSeasonings bool) *RecipeVector {
	items := make([]RecipeItem, 0, len(recipe.Ingredients))
	for _, ri := range recipe.Ingredients {
		item := RecipeItem{
			IngredientID: ri.IngredientID,
			Importance:   ri.Importance,
		}
		if ri.Ingredient != nil {
			item.CanonicalName = ri.Ingredient.CanonicalName
			item.Category = ri.Ingredient.Category
			item.IsCommonSeasoning = ri.Ingredient.IsCommonSeasoning
		}
		items = append(items, item)
	}

	vector := NewRecipeVector(recipe.ID, recipe.Title, items)
	if excludeSeasonings {
		vector.Items = vector.Essential
		vector.Seasoning = nil
	}
	return vector
}

func matchedIngredients(vector *RecipeVector, fridge map[uuid.UUID]bool) []domain.IngredientBrief {
	briefs := []domain.IngredientBrief{}
	for _, item := range vector.Items {
		if fridge[item.IngredientID] {
			briefs = append(briefs, brief(item))
		}
	}
	return briefs
}

// missingIngredients reports the essential gaps only; a missing pinch of salt
// is not worth surfacing.
func missingIngredients(vector *RecipeVector, fridge map[uuid.UUID]bool) []domain.IngredientBrief {
	briefs := []domain.IngredientBrief{}
	for _, item := range vector.Essential {
		if !fridge[item.IngredientID] {
			briefs = append(briefs, brief(item))
		}
	}
	return briefs
}

func brief(item RecipeItem) domain.IngredientBrief {
	return domain.IngredientBrief{
		ID:            item.IngredientID.String(),
		CanonicalName: item.CanonicalName,
		Category:      item.Category,
	}
}
