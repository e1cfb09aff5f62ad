package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hammamikhairi/cookbook/internal/domain"
)

var (
	servingsLine       = regexp.MustCompile(`(?i)^\s*(?:makes|serves)\s*:?\s*(\d+)(?:\s+(.+?))?\s*$`)
	ingredientsHeader  = regexp.MustCompile(`(?i)^\s*ingredients\s*:?\s*$`)
	instructionsHeader = regexp.MustCompile(`(?i)^\s*(?:instructions|directions|steps)\s*:?\s*$`)
	// Leading step number: "1. " or "1) " or "1 ".
	stepPrefix = regexp.MustCompile(`^\d+[.)\s]\s*`)
)

// section is the parser state. There is no way back: once instructions
// start, everything is an instruction.
type section int

const (
	inHeader section = iota
	inIngredients
	inInstructions
)

// Recipe parses free-form recipe text into a domain recipe.
//
// The text is segmented by a three-state machine. Before any section
// header, the first non-blank line becomes the title and later
// "Serves/Makes N" lines set the servings; a servings-shaped first line
// still becomes the title. After an "ingredients" header every
// non-blank line goes through the ingredient grammar. After an
// "instructions" header any leading step number is stripped and steps
// are renumbered from one. Blank lines never end a section.
//
// The only failure is ErrEmptyTitle, when the input holds no title
// line at all.
func Recipe(text string) (*domain.Recipe, error) {
	var (
		title        string
		servings     *domain.Servings
		ingredients  []domain.Ingredient
		instructions []domain.Instruction
	)

	state := inHeader
	step := 1

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimRight(raw, " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if ingredientsHeader.MatchString(line) {
			state = inIngredients
			continue
		}
		if instructionsHeader.MatchString(line) {
			state = inInstructions
			continue
		}

		switch state {
		case inHeader:
			if title == "" {
				// First content line is always the title, even when it
				// looks like a servings line.
				title = strings.TrimSpace(line)
				continue
			}
			if m := servingsLine.FindStringSubmatch(line); m != nil {
				amount, err := strconv.Atoi(m[1])
				if err != nil || amount <= 0 {
					continue
				}
				s, err := domain.NewServings(amount, strings.TrimSpace(m[2]))
				if err == nil {
					servings = &s
				}
			}
			// Any other header line is ignored.

		case inIngredients:
			ingredients = append(ingredients, Ingredient(strings.TrimSpace(line)))

		case inInstructions:
			stripped := strings.TrimSpace(stepPrefix.ReplaceAllString(strings.TrimSpace(line), ""))
			if stripped != "" {
				instructions = append(instructions, domain.Instruction{Step: step, Text: stripped})
				step++
			}
		}
	}

	if title == "" {
		return nil, domain.ErrEmptyTitle
	}
	return domain.NewRecipe(title, servings, ingredients, instructions, nil)
}
