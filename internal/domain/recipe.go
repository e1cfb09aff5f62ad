// Package domain defines the core measurement and recipe types for the
// cookbook toolkit. All other packages depend on domain; domain depends
// only on stdlib and uuid.
package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Servings describes how many portions a recipe yields, with an
// optional free-form description ("people", "large cookies").
type Servings struct {
	Amount      int
	Description string
}

// NewServings builds a servings value. The amount must be positive.
func NewServings(amount int, description string) (Servings, error) {
	if amount <= 0 {
		return Servings{}, fmt.Errorf("%w: servings amount must be positive, got %d", ErrInvalidArgument, amount)
	}
	return Servings{Amount: amount, Description: description}, nil
}

// Scale returns servings multiplied by factor, rounded to the nearest
// whole portion.
func (s Servings) Scale(factor float64) (Servings, error) {
	if err := checkFactor(factor); err != nil {
		return Servings{}, err
	}
	amount := int(float64(s.Amount)*factor + 0.5)
	return Servings{Amount: amount, Description: s.Description}, nil
}

func (s Servings) String() string {
	if s.Description != "" {
		return fmt.Sprintf("%d %s", s.Amount, s.Description)
	}
	return fmt.Sprintf("%d", s.Amount)
}

// Instruction is one numbered cooking step.
type Instruction struct {
	Step int
	Text string
}

func (i Instruction) String() string {
	return fmt.Sprintf("%d. %s", i.Step, i.Text)
}

// Recipe is a complete parsed recipe. Rules holds recipe-local
// conversion rules layered at recipe priority during conversion.
type Recipe struct {
	ID           string
	Title        string
	Servings     *Servings
	Ingredients  []Ingredient
	Instructions []Instruction
	Rules        []Rule
}

// NewRecipe builds a recipe with a fresh ID. The title must be
// non-blank.
func NewRecipe(title string, servings *Servings, ingredients []Ingredient, instructions []Instruction, rules []Rule) (*Recipe, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	return &Recipe{
		ID:           uuid.NewString(),
		Title:        title,
		Servings:     servings,
		Ingredients:  ingredients,
		Instructions: instructions,
		Rules:        rules,
	}, nil
}

// Scale returns a new recipe (fresh ID) with servings and every
// measured ingredient multiplied by factor.
func (r *Recipe) Scale(factor float64) (*Recipe, error) {
	if err := checkFactor(factor); err != nil {
		return nil, err
	}

	var servings *Servings
	if r.Servings != nil {
		s, err := r.Servings.Scale(factor)
		if err != nil {
			return nil, err
		}
		servings = &s
	}

	ingredients := make([]Ingredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		scaled, err := ing.Scale(factor)
		if err != nil {
			return nil, fmt.Errorf("scaling %s: %w", ing.Name(), err)
		}
		ingredients = append(ingredients, scaled)
	}

	instructions := make([]Instruction, len(r.Instructions))
	copy(instructions, r.Instructions)

	return NewRecipe(r.Title, servings, ingredients, instructions, r.Rules)
}
