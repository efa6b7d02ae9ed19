package parser

import (
	"regexp"
	"strings"
)

// Normalizer turns the residual text left after quantity extraction into a
// canonical ingredient name candidate. Normalize is idempotent: running it on
// an already-canonical name returns the name unchanged.
type Normalizer struct {
	cfg           Config
	parentheticRe *regexp.Regexp
}

func NewNormalizer(cfg Config) *Normalizer {
	return &Normalizer{
		cfg:           cfg,
		parentheticRe: regexp.MustCompile(`[(（][^)）]*[)）]`),
	}
}

func (n *Normalizer) Normalize(raw string) string {
	name := strings.TrimSpace(raw)

	// Aliases first, so alias keys that include a parenthetical qualifier
	// ("양파(중간크기)") still match.
	for alias, canonical := range n.cfg.Aliases {
		name = strings.ReplaceAll(name, alias, canonical)
	}

	name = n.parentheticRe.ReplaceAllString(name, " ")

	// A modifier only describes another word; when it is the whole token it
	// IS the name ("삼겹살" the ingredient, not the cut descriptor).
	for _, mod := range n.cfg.PrefixModifiers {
		name = strings.TrimSpace(name)
		if rest := strings.TrimSpace(strings.TrimPrefix(name, mod)); rest != "" {
			name = rest
		}
	}
	for _, mod := range n.cfg.SuffixModifiers {
		name = strings.TrimSpace(name)
		if rest := strings.TrimSpace(strings.TrimSuffix(name, mod)); rest != "" {
			name = rest
		}
	}

	name = strings.Join(strings.Fields(name), " ")
	name = strings.TrimRight(name, ".,;:·-~/")

	return strings.TrimSpace(name)
}
