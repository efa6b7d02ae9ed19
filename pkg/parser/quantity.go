package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// ParsedQuantity is the structured quantity extracted from one ingredient
// token. It is produced once and never mutated afterwards. When both bounds
// are set, QuantityFrom <= QuantityTo always holds.
type ParsedQuantity struct {
	QuantityFrom *float64 `json:"quantity_from,omitempty"`
	QuantityTo   *float64 `json:"quantity_to,omitempty"`
	Unit         *string  `json:"unit,omitempty"`
	IsVague      bool     `json:"is_vague"`
}

type Parser struct {
	cfg        Config
	fractionRe *regexp.Regexp
	rangeRe    *regexp.Regexp
	numberRe   *regexp.Regexp
	normalizer *Normalizer
}

func NewParser(cfg Config) *Parser {
	return &Parser{
		cfg: cfg,
		// Units are whatever non-space, non-digit run trails the number
		// ("개", "큰술", "g"). Unknown units are kept verbatim.
		fractionRe: regexp.MustCompile(`(\d+)\s*/\s*(\d+)\s*([^\s\d/~\-]*)`),
		rangeRe:    regexp.MustCompile(`(\d+(?:\.\d+)?)\s*[~\-]\s*(\d+(?:\.\d+)?)\s*([^\s\d/~\-]*)`),
		numberRe:   regexp.MustCompile(`(\d+(?:\.\d+)?)\s*([^\s\d/~\-]*)`),
		normalizer: NewNormalizer(cfg),
	}
}

// ParseQuantity extracts a quantity from a single ingredient token and returns
// the residual text to use as the name candidate. Matching precedence: vague
// expression, fraction, range, plain number, none. It never fails: a token
// with no recognizable quantity comes back whole as the name candidate.
func (p *Parser) ParseQuantity(token string) (ParsedQuantity, string) {
	token = strings.TrimSpace(token)

	for _, vague := range p.cfg.VagueExpressions {
		if strings.Contains(token, vague) {
			proxy := p.cfg.VagueQuantityProxy
			rest := strings.Replace(token, vague, " ", 1)
			return ParsedQuantity{QuantityFrom: &proxy, IsVague: true}, rest
		}
	}

	if loc := p.fractionRe.FindStringSubmatchIndex(token); loc != nil {
		m := p.fractionRe.FindStringSubmatch(token)
		num, _ := strconv.ParseFloat(m[1], 64)
		den, _ := strconv.ParseFloat(m[2], 64)
		if den != 0 {
			from := num / den
			return ParsedQuantity{QuantityFrom: &from, Unit: p.mapUnit(m[3])}, cutMatch(token, loc)
		}
	}

	if loc := p.rangeRe.FindStringSubmatchIndex(token); loc != nil {
		m := p.rangeRe.FindStringSubmatch(token)
		from, _ := strconv.ParseFloat(m[1], 64)
		to, _ := strconv.ParseFloat(m[2], 64)
		// Keep both endpoints; a reversed range is swapped, never collapsed.
		if from > to {
			from, to = to, from
		}
		return ParsedQuantity{QuantityFrom: &from, QuantityTo: &to, Unit: p.mapUnit(m[3])}, cutMatch(token, loc)
	}

	if loc := p.numberRe.FindStringSubmatchIndex(token); loc != nil {
		m := p.numberRe.FindStringSubmatch(token)
		from, _ := strconv.ParseFloat(m[1], 64)
		return ParsedQuantity{QuantityFrom: &from, Unit: p.mapUnit(m[2])}, cutMatch(token, loc)
	}

	return ParsedQuantity{}, token
}

// mapUnit passes a unit token through the synonym table. Unmapped units are
// preserved verbatim; an empty token means no unit.
func (p *Parser) mapUnit(unit string) *string {
	unit = strings.TrimSpace(unit)
	if unit == "" {
		return nil
	}
	if canonical, ok := p.cfg.UnitSynonyms[unit]; ok {
		return &canonical
	}
	return &unit
}

// cutMatch removes the matched quantity span from the token, leaving the name
// candidate on either side of it.
func cutMatch(token string, loc []int) string {
	return token[:loc[0]] + " " + token[loc[1]:]
}

// Confidence scores how trustworthy a parsed line is, in [0.1, 1.0].
func Confidence(name string, q ParsedQuantity) float64 {
	score := 1.0
	if len([]rune(name)) < 2 {
		score *= 0.3
	}
	if q.QuantityFrom == nil {
		score *= 0.8
	} else if q.Unit == nil {
		score *= 0.9
	}
	if score < 0.1 {
		score = 0.1
	}
	return score
}
