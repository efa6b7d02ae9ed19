package match

import (
	"Recipe-Radar-Backend/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fridgeOf(ids ...uuid.UUID) map[uuid.UUID]bool {
	fridge := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		fridge[id] = true
	}
	return fridge
}

func essentialItem(id uuid.UUID) RecipeItem {
	return RecipeItem{IngredientID: id, Importance: "essential"}
}

func seasoningItem(id uuid.UUID) RecipeItem {
	return RecipeItem{IngredientID: id, Importance: "seasoning"}
}

func TestNewScorerUnknownAlgorithm(t *testing.T) {
	_, err := NewScorer("levenshtein")
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)
}

func TestNewRecipeVectorSplitsSeasonings(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	vector := NewRecipeVector(uuid.New(), "김치찌개", []RecipeItem{
		essentialItem(a),
		seasoningItem(b),
		// Common seasonings count as seasoning regardless of row importance.
		{IngredientID: c, Importance: "essential", IsCommonSeasoning: true},
	})

	assert.Len(t, vector.Essential, 1)
	assert.Len(t, vector.Seasoning, 2)
}

func TestJaccardScore(t *testing.T) {
	scorer, err := NewScorer(AlgorithmJaccard)
	require.NoError(t, err)

	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	vector := NewRecipeVector(uuid.New(), "", []RecipeItem{
		essentialItem(a), essentialItem(b), essentialItem(c),
	})

	// Intersection 2, union 4.
	score := scorer.Score(vector, fridgeOf(a, b, d))
	assert.InDelta(t, 0.5, score, 1e-9)

	assert.InDelta(t, 1.0, scorer.Score(vector, fridgeOf(a, b, c)), 1e-9)
	assert.Equal(t, 0.0, scorer.Score(vector, fridgeOf()))
}

func TestCosineScore(t *testing.T) {
	scorer, err := NewScorer(AlgorithmCosine)
	require.NoError(t, err)

	a, b := uuid.New(), uuid.New()
	vector := NewRecipeVector(uuid.New(), "", []RecipeItem{
		essentialItem(a), essentialItem(b),
	})

	// Intersection 1 over sqrt(2*2).
	assert.InDelta(t, 0.5, scorer.Score(vector, fridgeOf(a, uuid.New())), 1e-9)
	assert.InDelta(t, 1.0, scorer.Score(vector, fridgeOf(a, b)), 1e-9)
}

func TestWeightedEssentialScore(t *testing.T) {
	scorer, err := NewScorer(AlgorithmWeightedEssential)
	require.NoError(t, err)

	a, b, c := uuid.New(), uuid.New(), uuid.New()
	vector := NewRecipeVector(uuid.New(), "", []RecipeItem{
		essentialItem(a), essentialItem(b), essentialItem(c),
	})

	// Two of three essentials on hand, no seasonings in the recipe.
	score := scorer.Score(vector, fridgeOf(a, b))
	assert.InDelta(t, 66.6667, score, 1e-3)
}

func TestWeightedEssentialSeasoningBonus(t *testing.T) {
	scorer, err := NewScorer(AlgorithmWeightedEssential)
	require.NoError(t, err)

	a, s1, s2 := uuid.New(), uuid.New(), uuid.New()
	vector := NewRecipeVector(uuid.New(), "", []RecipeItem{
		essentialItem(a), seasoningItem(s1), seasoningItem(s2),
	})

	// Full essentials plus half the seasonings: 100 + 2.5.
	assert.InDelta(t, 102.5, scorer.Score(vector, fridgeOf(a, s1)), 1e-9)

	// Bonus caps at 5 even with full seasoning coverage.
	assert.InDelta(t, 105, scorer.Score(vector, fridgeOf(a, s1, s2)), 1e-9)
}

func TestWeightedEssentialNoEssentialsScoresZero(t *testing.T) {
	scorer, err := NewScorer(AlgorithmWeightedEssential)
	require.NoError(t, err)

	s1 := uuid.New()
	vector := NewRecipeVector(uuid.New(), "", []RecipeItem{seasoningItem(s1)})

	assert.Equal(t, 0.0, scorer.Score(vector, fridgeOf(s1)))
}

func TestWeightedEssentialMonotonicity(t *testing.T) {
	scorer, err := NewScorer(AlgorithmWeightedEssential)
	require.NoError(t, err)

	essentials := make([]uuid.UUID, 6)
	items := make([]RecipeItem, 0, len(essentials))
	for i := range essentials {
		essentials[i] = uuid.New()
		items = append(items, essentialItem(essentials[i]))
	}
	vector := NewRecipeVector(uuid.New(), "", items)

	// Adding one more matching essential never decreases the score.
	previous := scorer.Score(vector, fridgeOf())
	for i := range essentials {
		score := scorer.Score(vector, fridgeOf(essentials[:i+1]...))
		assert.GreaterOrEqual(t, score, previous)
		previous = score
	}
}

func TestThresholdScaling(t *testing.T) {
	jaccard, _ := NewScorer(AlgorithmJaccard)
	cosine, _ := NewScorer(AlgorithmCosine)
	weighted, _ := NewScorer(AlgorithmWeightedEssential)

	assert.Equal(t, 0.3, jaccard.Threshold(0.3))
	assert.Equal(t, 0.3, cosine.Threshold(0.3))
	assert.Equal(t, 30.0, weighted.Threshold(0.3))
}
