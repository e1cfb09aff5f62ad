// Package parse turns recipe text into domain values: a line-level
// ingredient grammar and a section-level recipe state machine.
package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hammamikhairi/cookbook/internal/domain"
)

// The grammar is an ordered-choice cascade: each pattern is tried in
// sequence against the whole trimmed line and the first match wins.
// Keeping the patterns as an explicit ordered list makes the precedence
// auditable and testable per step.
var ingredientPatterns = []struct {
	re    *regexp.Regexp
	build func(m []string) domain.Ingredient
}{
	// Trailing "to taste" marks an unmeasured ingredient.
	{regexp.MustCompile(`(?i)^(.+?)\s+to\s+taste$`), buildToTaste},
	// "a" / "an" reads as a quantity of one.
	{regexp.MustCompile(`(?i)^(?:a|an)\s+(.+)$`), buildArticle},
	// Integer range: "2-3 ...".
	{regexp.MustCompile(`^(\d+)-(\d+)\s+(.+)$`), buildRange},
	// Mixed number: "2 1/2 ...".
	{regexp.MustCompile(`^(\d+)\s+(\d+)/(\d+)\s+(.+)$`), buildMixed},
	// Bare fraction: "1/2 ...".
	{regexp.MustCompile(`^(\d+)/(\d+)\s+(.+)$`), buildFraction},
	// Integer or decimal: "2 ..." or "1.5 ...".
	{regexp.MustCompile(`^(\d+(?:\.\d+)?)\s+(.+)$`), buildNumber},
}

// Ingredient parses one ingredient line. It is total: every input
// yields an ingredient, falling back to a Vague ingredient whenever no
// quantity pattern applies or the matched quantity cannot be built.
func Ingredient(line string) domain.Ingredient {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return domain.NewVague(trimmed, "", "", "")
	}
	for _, p := range ingredientPatterns {
		if m := p.re.FindStringSubmatch(trimmed); m != nil {
			return p.build(m)
		}
	}
	return domain.NewVague(trimmed, "", "", "")
}

func buildToTaste(m []string) domain.Ingredient {
	return domain.NewVague(strings.TrimSpace(m[1]), "to taste", "", "")
}

func buildArticle(m []string) domain.Ingredient {
	return measuredFromRest(strings.TrimSpace(m[1]), 1.0)
}

func buildRange(m []string) domain.Ingredient {
	lo, _ := strconv.ParseFloat(m[1], 64)
	hi, _ := strconv.ParseFloat(m[2], 64)
	rest := strings.TrimSpace(m[3])

	unit, remainder := consumeUnit(rest)
	name, prep := splitNamePrep(remainder)
	if name == "" {
		return domain.NewVague(rest, "", "", "")
	}
	q, err := domain.NewRange(lo, hi, unit)
	if err != nil {
		// Degenerate ranges like "0-3" or "3-2" have no quantity reading.
		return domain.NewVague(rest, "", "", "")
	}
	return mustMeasured(name, q, prep, rest)
}

func buildMixed(m []string) domain.Ingredient {
	whole, _ := strconv.ParseFloat(m[1], 64)
	num, _ := strconv.ParseFloat(m[2], 64)
	den, _ := strconv.ParseFloat(m[3], 64)
	return measuredFromRest(strings.TrimSpace(m[4]), whole+num/den)
}

func buildFraction(m []string) domain.Ingredient {
	num, _ := strconv.ParseFloat(m[1], 64)
	den, _ := strconv.ParseFloat(m[2], 64)
	return measuredFromRest(strings.TrimSpace(m[3]), num/den)
}

func buildNumber(m []string) domain.Ingredient {
	qty, _ := strconv.ParseFloat(m[1], 64)
	return measuredFromRest(strings.TrimSpace(m[2]), qty)
}

// measuredFromRest resolves the text after a leading quantity into unit,
// name, and preparation. A zero quantity or an empty name discards the
// quantity reading and falls back to Vague over the remainder.
func measuredFromRest(rest string, qty float64) domain.Ingredient {
	if qty <= 0 {
		return domain.NewVague(rest, "", "", "")
	}
	unit, remainder := consumeUnit(rest)
	name, prep := splitNamePrep(remainder)
	if name == "" {
		return domain.NewVague(rest, "", "", "")
	}
	q, err := domain.NewExact(qty, unit)
	if err != nil {
		return domain.NewVague(rest, "", "", "")
	}
	return mustMeasured(name, q, prep, rest)
}

func mustMeasured(name string, q domain.Quantity, prep, rest string) domain.Ingredient {
	m, err := domain.NewMeasured(name, q, prep, "")
	if err != nil {
		return domain.NewVague(rest, "", "", "")
	}
	return m
}

var whitespace = regexp.MustCompile(`\s+`)

// consumeUnit takes the text after the quantity and strips a leading
// unit token if one is present. Two-word aliases are tried first so
// "fl oz" resolves before "fl" fails alone; with no recognized unit the
// count unit Whole is assumed and nothing is consumed.
func consumeUnit(rest string) (domain.Unit, string) {
	tokens := whitespace.Split(rest, 3)
	if len(tokens) >= 2 {
		if u, ok := domain.ResolveUnit(tokens[0] + " " + tokens[1]); ok {
			if len(tokens) == 3 {
				return u, strings.TrimSpace(tokens[2])
			}
			return u, ""
		}
	}
	if len(tokens) >= 1 && tokens[0] != "" {
		if u, ok := domain.ResolveUnit(tokens[0]); ok {
			return u, strings.TrimSpace(strings.TrimPrefix(rest, tokens[0]))
		}
	}
	return domain.Whole, rest
}

// splitNamePrep drops a leading "of" connector and splits name from
// preparation on the first comma.
func splitNamePrep(s string) (name, prep string) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "of ") {
		s = strings.TrimSpace(s[3:])
	} else if lower == "of" {
		s = ""
	}
	if i := strings.Index(s, ","); i >= 0 {
		return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:])
	}
	return strings.TrimSpace(s), ""
}
