package catalog

import (
	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
)

// MatchCandidate is one approved catalog entry the matcher compares against.
type MatchCandidate struct {
	ID            uuid.UUID
	CanonicalName string
	UsageCount    int64
}

// Match is a proposed merge target for a staged name.
type Match struct {
	IngredientID  uuid.UUID
	CanonicalName string
	Confidence    float64
}

// Matcher proposes merge targets for newly normalized names using
// edit-distance similarity against the approved master list. A score below
// the threshold never merges: a false new entry is cheaper to fix than a
// false merge.
type Matcher struct {
	threshold float64
}

func NewMatcher(threshold float64) *Matcher {
	return &Matcher{threshold: threshold}
}

// Similarity returns a 0.0-1.0 score between two names:
// 1 - distance/max(runeLen(a), runeLen(b)). Rune-aware so Hangul syllables
// count as single characters.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len([]rune(a))
	if lb := len([]rune(b)); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}

// BestMatch scans the candidate set for the closest approved name. The second
// return is false when no candidate reaches the threshold. Ties prefer the
// candidate with the higher usage count.
func (m *Matcher) BestMatch(name string, candidates []MatchCandidate) (Match, bool) {
	var best Match
	var bestUsage int64 = -1
	found := false

	for _, candidate := range candidates {
		if candidate.CanonicalName == name {
			return Match{
				IngredientID:  candidate.ID,
				CanonicalName: candidate.CanonicalName,
				Confidence:    1.0,
			}, true
		}

		score := Similarity(name, candidate.CanonicalName)
		if score < m.threshold {
			continue
		}
		if !found || score > best.Confidence ||
			(score == best.Confidence && candidate.UsageCount > bestUsage) {
			best = Match{
				IngredientID:  candidate.ID,
				CanonicalName: candidate.CanonicalName,
				Confidence:    score,
			}
			bestUsage = candidate.UsageCount
			found = true
		}
	}

	return best, found
}
