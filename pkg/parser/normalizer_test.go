package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestNormalizer() *Normalizer {
	return NewNormalizer(DefaultConfig(0.3))
}

func TestNormalizeStripsParenthetical(t *testing.T) {
	n := newTestNormalizer()

	assert.Equal(t, "감자", n.Normalize("감자(국산)"))
	assert.Equal(t, "돼지고기", n.Normalize("돼지고기 (신선한것)"))
}

func TestNormalizeAppliesAliases(t *testing.T) {
	n := newTestNormalizer()

	assert.Equal(t, "양파", n.Normalize("양파(중간크기)"))
	assert.Equal(t, "달걀", n.Normalize("계란"))
}

func TestNormalizeStripsModifiers(t *testing.T) {
	n := newTestNormalizer()

	assert.Equal(t, "삼겹살", n.Normalize("구이용 삼겹살"))
	assert.Equal(t, "돼지고기", n.Normalize("돼지고기 목살"))
}

func TestNormalizeKeepsModifierOnlyName(t *testing.T) {
	n := newTestNormalizer()

	// Cut-of-meat tokens are ingredients in their own right when they stand
	// alone; stripping must never leave an empty name.
	assert.Equal(t, "삼겹살", n.Normalize("삼겹살"))
	assert.Equal(t, "목살", n.Normalize("목살"))
	assert.NotEmpty(t, n.Normalize("다진"))
}

func TestNormalizeCollapsesWhitespaceAndPunctuation(t *testing.T) {
	n := newTestNormalizer()

	assert.Equal(t, "애호박", n.Normalize("  애호박 ,"))
	assert.Equal(t, "청양 고추", n.Normalize("청양   고추"))
}

func TestNormalizeIdempotent(t *testing.T) {
	n := newTestNormalizer()

	inputs := []string{
		"양파(중간크기)",
		"구이용 삼겹살",
		"계란",
		"  애호박 ,",
		"돼지고기 목살",
		"소금",
		"청양   고추",
	}
	for _, input := range inputs {
		once := n.Normalize(input)
		assert.Equal(t, once, n.Normalize(once), "input %q", input)
	}
}
