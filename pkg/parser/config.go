package parser

// Config carries every lexicon the parser and normalizer need. It is built once
// at startup and injected, so parser instances hold no package-level state and
// are safe to share across goroutines.
type Config struct {
	// VagueExpressions are non-numeric quantity words ("약간", "조금") mapped to
	// VagueQuantityProxy when encountered.
	VagueExpressions   []string
	VagueQuantityProxy float64

	// UnitSynonyms maps shorthand unit tokens to their canonical form before
	// storage. Unmapped units are kept verbatim.
	UnitSynonyms map[string]string

	// Aliases are applied to the residual name by substring replacement.
	Aliases map[string]string

	// PrefixModifiers and SuffixModifiers are descriptor tokens stripped from
	// the candidate name (cut style, cut of meat, freshness).
	PrefixModifiers []string
	SuffixModifiers []string
}

// DefaultConfig returns the built-in Korean lexicons. Values can be overridden
// per deployment before constructing the parser.
func DefaultConfig(vagueProxy float64) Config {
	if vagueProxy <= 0 {
		vagueProxy = 0.3
	}
	return Config{
		VagueExpressions:   []string{"약간", "적당량", "조금", "듬뿍", "톡톡", "넉넉히", "기호에 따라"},
		VagueQuantityProxy: vagueProxy,
		UnitSynonyms: map[string]string{
			"T":  "큰술",
			"t":  "작은술",
			"Ts": "큰술",
			"ts": "작은술",
			"스푼": "큰술",
			"숟갈": "큰술",
			"g":  "그램",
			"kg": "킬로그램",
			"ml": "밀리리터",
			"L":  "리터",
			"l":  "리터",
			"cc": "밀리리터",
			"cm": "센티미터",
		},
		Aliases: map[string]string{
			"양파(중간크기)": "양파",
			"계란":       "달걀",
			"후추가루":     "후춧가루",
			"고추가루":     "고춧가루",
			"조선간장":     "국간장",
			"식용유나 올리브유": "식용유",
		},
		PrefixModifiers: []string{"구이용", "볶음용", "국거리용", "찌개용", "다진", "손질된", "냉동"},
		SuffixModifiers: []string{"등심", "안심", "목살", "삼겹살", "채썬것", "다진것"},
	}
}
