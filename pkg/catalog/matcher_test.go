package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarityExactMatch(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("양파", "양파"))
}

func TestSimilarityRuneAware(t *testing.T) {
	// One Hangul syllable of two differs: distance 1 over max rune length 2.
	assert.InDelta(t, 0.5, Similarity("대파", "파"), 1e-9)
}

func TestSimilarityBounds(t *testing.T) {
	pairs := [][2]string{
		{"양파", "파"},
		{"돼지고기", "소고기"},
		{"고추장", "된장"},
		{"", ""},
		{"소금", "완전히다른것"},
	}
	for _, pair := range pairs {
		score := Similarity(pair[0], pair[1])
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestBestMatchBelowThresholdStaysUnmerged(t *testing.T) {
	m := NewMatcher(0.6)
	candidates := []MatchCandidate{
		{ID: uuid.New(), CanonicalName: "파", UsageCount: 10},
	}

	// "대파" vs "파" scores 0.5, under the 0.6 threshold: no merge proposal.
	_, found := m.BestMatch("대파", candidates)
	assert.False(t, found)
}

func TestBestMatchExactShortCircuits(t *testing.T) {
	m := NewMatcher(0.6)
	id := uuid.New()
	candidates := []MatchCandidate{
		{ID: uuid.New(), CanonicalName: "양파즙", UsageCount: 99},
		{ID: id, CanonicalName: "양파", UsageCount: 1},
	}

	match, found := m.BestMatch("양파", candidates)
	require.True(t, found)
	assert.Equal(t, id, match.IngredientID)
	assert.Equal(t, 1.0, match.Confidence)
}

func TestBestMatchAboveThreshold(t *testing.T) {
	m := NewMatcher(0.6)
	id := uuid.New()
	candidates := []MatchCandidate{
		{ID: id, CanonicalName: "고춧가루", UsageCount: 5},
	}

	match, found := m.BestMatch("고추가루", candidates)
	require.True(t, found)
	assert.Equal(t, id, match.IngredientID)
	assert.GreaterOrEqual(t, match.Confidence, 0.6)
}

func TestBestMatchTieBreaksOnUsage(t *testing.T) {
	m := NewMatcher(0.4)
	popular := uuid.New()
	candidates := []MatchCandidate{
		{ID: uuid.New(), CanonicalName: "간장", UsageCount: 1},
		{ID: popular, CanonicalName: "된장", UsageCount: 50},
	}

	// "완장" is equidistant from both two-syllable names; higher usage wins.
	match, found := m.BestMatch("완장", candidates)
	require.True(t, found)
	assert.Equal(t, popular, match.IngredientID)
}

func TestBestMatchEmptyCandidates(t *testing.T) {
	m := NewMatcher(0.6)

	_, found := m.BestMatch("양파", nil)
	assert.False(t, found)
}
