package match

import (
	"Recipe-Radar-Backend/domain"
	"math"

	"github.com/google/uuid"
)

const (
	AlgorithmJaccard           = "jaccard"
	AlgorithmCosine            = "cosine"
	AlgorithmWeightedEssential = "weighted-essential"
)

type (
	// RecipeItem is one ingredient of a recipe, flattened for scoring.
	RecipeItem struct {
		IngredientID      uuid.UUID
		CanonicalName     string
		Category          string
		Importance        string
		IsCommonSeasoning bool
	}

	// RecipeVector is a recipe prepared for scoring, with its ingredients
	// pre-split into the essential and seasoning sets.
	RecipeVector struct {
		RecipeID  uuid.UUID
		Title     string
		Items     []RecipeItem
		Essential []RecipeItem
		Seasoning []RecipeItem
	}

	// Scorer computes one recipe's score against a fridge set. Implementations
	// are stateless and safe for concurrent use.
	Scorer interface {
		Name() string
		// Threshold maps the configured minimum match rate (always 0..1)
		// onto this scorer's output range.
		Threshold(minMatchRate float64) float64
		Score(recipe *RecipeVector, fridge map[uuid.UUID]bool) float64
	}
)

func NewScorer(algorithm string) (Scorer, error) {
	switch algorithm {
	case AlgorithmJaccard:
		return jaccardScorer{}, nil
	case AlgorithmCosine:
		return cosineScorer{}, nil
	case AlgorithmWeightedEssential:
		return weightedEssentialScorer{}, nil
	default:
		return nil, domain.ErrUnknownAlgorithm
	}
}

// NewRecipeVector splits a recipe's items into the essential and seasoning
// sets. An item counts as seasoning when its recipe row is marked so, or when
// the catalog flags the ingredient as a common seasoning.
func NewRecipeVector(recipeID uuid.UUID, title string, items []RecipeItem) *RecipeVector {
	vector := &RecipeVector{RecipeID: recipeID, Title: title, Items: items}
	for _, item := range items {
		if item.Importance == "seasoning" || item.IsCommonSeasoning {
			vector.Seasoning = append(vector.Seasoning, item)
		} else {
			vector.Essential = append(vector.Essential, item)
		}
	}
	return vector
}

func countMatches(items []RecipeItem, fridge map[uuid.UUID]bool) int {
	matched := 0
	for _, item := range items {
		if fridge[item.IngredientID] {
			matched++
		}
	}
	return matched
}

type jaccardScorer struct{}

func (jaccardScorer) Name() string                           { return AlgorithmJaccard }
func (jaccardScorer) Threshold(minMatchRate float64) float64 { return minMatchRate }

func (jaccardScorer) Score(recipe *RecipeVector, fridge map[uuid.UUID]bool) float64 {
	if len(recipe.Items) == 0 || len(fridge) == 0 {
		return 0
	}
	intersection := countMatches(recipe.Items, fridge)
	union := len(recipe.Items) + len(fridge) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

type cosineScorer struct{}

func (cosineScorer) Name() string                           { return AlgorithmCosine }
func (cosineScorer) Threshold(minMatchRate float64) float64 { return minMatchRate }

// Score treats both sets as binary vectors, so cosine similarity reduces to
// the intersection size over the geometric mean of the set sizes.
func (cosineScorer) Score(recipe *RecipeVector, fridge map[uuid.UUID]bool) float64 {
	if len(recipe.Items) == 0 || len(fridge) == 0 {
		return 0
	}
	intersection := countMatches(recipe.Items, fridge)
	return float64(intersection) / math.Sqrt(float64(len(recipe.Items))*float64(len(fridge)))
}

type weightedEssentialScorer struct{}

func (weightedEssentialScorer) Name() string { return AlgorithmWeightedEssential }

// Threshold scales onto the 0..105 range of this scorer's base component.
func (weightedEssentialScorer) Threshold(minMatchRate float64) float64 {
	return minMatchRate * 100
}

// Score weighs essential coverage on a 0..100 base and grants up to 5 bonus
// points for seasoning coverage. A recipe without essential ingredients
// scores zero.
func (weightedEssentialScorer) Score(recipe *RecipeVector, fridge map[uuid.UUID]bool) float64 {
	if len(recipe.Essential) == 0 {
		return 0
	}

	base := float64(countMatches(recipe.Essential, fridge)) / float64(len(recipe.Essential)) * 100

	bonus := 0.0
	if len(recipe.Seasoning) > 0 {
		bonus = math.Min(float64(countMatches(recipe.Seasoning, fridge))/float64(len(recipe.Seasoning))*5, 5)
	}

	return base + bonus
}
