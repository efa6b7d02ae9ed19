package parser

import (
	"regexp"
	"strings"
)

const (
	ImportanceEssential = "essential"
	ImportanceSeasoning = "seasoning"
	ImportanceOptional  = "optional"
)

// ParsedIngredient is the full parse result for one ingredient token.
type ParsedIngredient struct {
	RawText      string
	Name         string
	Quantity     ParsedQuantity
	Importance   string
	DisplayOrder int
	Confidence   float64
}

var sectionMarkerRe = regexp.MustCompile(`\[([^\]]+)\]`)

// ParseLine splits a raw ingredient line into bracket-delimited sections
// ("[재료] ... [양념] ...") and parses every pipe- or comma-separated token
// inside them. Tokens before any marker are treated as essential. A token that
// fails to parse still yields a result with degraded confidence; parsing a
// line never returns an error.
func (p *Parser) ParseLine(line string) []ParsedIngredient {
	var results []ParsedIngredient

	order := 0
	for _, section := range splitSections(line) {
		importance := sectionImportance(section.marker)
		for _, token := range splitItems(section.body) {
			parsed := p.parseToken(token, importance, order)
			if parsed.Name == "" && parsed.Quantity.QuantityFrom == nil {
				continue
			}
			results = append(results, parsed)
			order++
		}
	}

	return results
}

func (p *Parser) parseToken(token, importance string, order int) ParsedIngredient {
	quantity, rest := p.ParseQuantity(token)
	name := p.normalizer.Normalize(rest)

	return ParsedIngredient{
		RawText:      strings.TrimSpace(token),
		Name:         name,
		Quantity:     quantity,
		Importance:   importance,
		DisplayOrder: order,
		Confidence:   Confidence(name, quantity),
	}
}

type section struct {
	marker string
	body   string
}

func splitSections(line string) []section {
	markers := sectionMarkerRe.FindAllStringSubmatchIndex(line, -1)
	if len(markers) == 0 {
		return []section{{marker: "", body: line}}
	}

	var sections []section
	if head := strings.TrimSpace(line[:markers[0][0]]); head != "" {
		sections = append(sections, section{marker: "", body: head})
	}
	for i, m := range markers {
		end := len(line)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		sections = append(sections, section{
			marker: line[m[2]:m[3]],
			body:   line[m[1]:end],
		})
	}
	return sections
}

func splitItems(body string) []string {
	items := strings.FieldsFunc(body, func(r rune) bool {
		return r == '|' || r == ','
	})
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func sectionImportance(marker string) string {
	switch {
	case marker == "":
		return ImportanceEssential
	case strings.Contains(marker, "재료"):
		return ImportanceEssential
	case strings.Contains(marker, "양념"), strings.Contains(marker, "소스"), strings.Contains(marker, "드레싱"):
		return ImportanceSeasoning
	default:
		return ImportanceOptional
	}
}
