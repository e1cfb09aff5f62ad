package domain

import (
	"errors"
	"testing"
)

func TestNewRecipeRequiresTitle(t *testing.T) {
	if _, err := NewRecipe("", nil, nil, nil, nil); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("empty title: err = %v, want ErrEmptyTitle", err)
	}
	if _, err := NewRecipe("   ", nil, nil, nil, nil); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("blank title: err = %v, want ErrEmptyTitle", err)
	}

	r, err := NewRecipe("Pancakes", nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewRecipe: %v", err)
	}
	if r.ID == "" {
		t.Error("NewRecipe did not assign an ID")
	}
}

func TestServingsScaleRounds(t *testing.T) {
	s, _ := NewServings(4, "people")

	tests := []struct {
		factor float64
		want   int
	}{
		{2, 8},
		{0.5, 2},
		{0.6, 2}, // 2.4 rounds down
		{0.7, 3}, // 2.8 rounds up
	}
	for _, tt := range tests {
		scaled, err := s.Scale(tt.factor)
		if err != nil {
			t.Fatalf("Scale(%v): %v", tt.factor, err)
		}
		if scaled.Amount != tt.want {
			t.Errorf("Scale(%v).Amount = %d, want %d", tt.factor, scaled.Amount, tt.want)
		}
		if scaled.Description != "people" {
			t.Errorf("Scale(%v) dropped description", tt.factor)
		}
	}
}

func TestRecipeScale(t *testing.T) {
	qty, _ := NewExact(2, Cup)
	flour, _ := NewMeasured("flour", qty, "", "")
	salt := NewVague("salt", "to taste", "", "")
	servings, _ := NewServings(4, "")

	r, err := NewRecipe("Pancakes", &servings,
		[]Ingredient{flour, salt},
		[]Instruction{{Step: 1, Text: "mix"}},
		nil)
	if err != nil {
		t.Fatalf("NewRecipe: %v", err)
	}

	scaled, err := r.Scale(2)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}

	if scaled.ID == r.ID {
		t.Error("scaled recipe kept the source ID")
	}
	if scaled.Servings.Amount != 8 {
		t.Errorf("Servings = %d, want 8", scaled.Servings.Amount)
	}
	if got := scaled.Ingredients[0].(Measured).Quantity().ToDecimal(); got != 4 {
		t.Errorf("flour = %v, want 4", got)
	}
	if _, ok := scaled.Ingredients[1].(Vague); !ok {
		t.Errorf("vague ingredient changed type: %T", scaled.Ingredients[1])
	}
	if len(scaled.Instructions) != 1 || scaled.Instructions[0].Text != "mix" {
		t.Errorf("instructions not carried over: %v", scaled.Instructions)
	}

	if _, err := r.Scale(0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Scale(0): err = %v, want ErrInvalidArgument", err)
	}
}
