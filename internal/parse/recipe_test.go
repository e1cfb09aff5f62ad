package parse

import (
	"errors"
	"testing"

	"github.com/hammamikhairi/cookbook/internal/domain"
)

const pancakesText = `Fluffy Pancakes
Serves 4

Ingredients:
2 cups flour
1 1/2 cups milk
2 eggs
1/4 tsp salt
butter to taste

Instructions:
1. Whisk the dry ingredients together.
2. Add milk and eggs, whisk until smooth.
3. Fry on a buttered griddle until golden.
`

func TestRecipeFullText(t *testing.T) {
	r, err := Recipe(pancakesText)
	if err != nil {
		t.Fatalf("Recipe: %v", err)
	}

	if r.Title != "Fluffy Pancakes" {
		t.Errorf("Title = %q, want %q", r.Title, "Fluffy Pancakes")
	}
	if r.Servings == nil || r.Servings.Amount != 4 {
		t.Errorf("Servings = %v, want 4", r.Servings)
	}
	if len(r.Ingredients) != 5 {
		t.Fatalf("got %d ingredients, want 5", len(r.Ingredients))
	}

	flour, ok := r.Ingredients[0].(domain.Measured)
	if !ok {
		t.Fatalf("first ingredient = %T, want Measured", r.Ingredients[0])
	}
	if flour.Name() != "flour" || flour.Quantity().ToDecimal() != 2 || flour.Quantity().Unit() != domain.Cup {
		t.Errorf("flour = %v", flour)
	}

	if _, ok := r.Ingredients[4].(domain.Vague); !ok {
		t.Errorf("last ingredient = %T, want Vague", r.Ingredients[4])
	}

	if len(r.Instructions) != 3 {
		t.Fatalf("got %d instructions, want 3", len(r.Instructions))
	}
	for i, ins := range r.Instructions {
		if ins.Step != i+1 {
			t.Errorf("Instructions[%d].Step = %d, want %d", i, ins.Step, i+1)
		}
	}
	if r.Instructions[0].Text != "Whisk the dry ingredients together." {
		t.Errorf("Instructions[0].Text = %q", r.Instructions[0].Text)
	}
}

func TestRecipeHeaderVariants(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"colon optional", "Soup\nIngredients\n1 cup broth\nDirections\n1. Simmer."},
		{"steps header", "Soup\nINGREDIENTS:\n1 cup broth\nSteps:\nSimmer."},
		{"mixed case", "Soup\ningredients:\n1 cup broth\ndirections:\nSimmer."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Recipe(tt.text)
			if err != nil {
				t.Fatalf("Recipe: %v", err)
			}
			if len(r.Ingredients) != 1 {
				t.Errorf("got %d ingredients, want 1", len(r.Ingredients))
			}
			if len(r.Instructions) != 1 {
				t.Errorf("got %d instructions, want 1", len(r.Instructions))
			}
		})
	}
}

func TestRecipeRenumbersSteps(t *testing.T) {
	text := "Soup\nInstructions:\n7. First thing.\n2) Second thing.\nThird thing."
	r, err := Recipe(text)
	if err != nil {
		t.Fatalf("Recipe: %v", err)
	}

	want := []string{"First thing.", "Second thing.", "Third thing."}
	if len(r.Instructions) != len(want) {
		t.Fatalf("got %d instructions, want %d", len(r.Instructions), len(want))
	}
	for i, text := range want {
		if r.Instructions[i].Step != i+1 || r.Instructions[i].Text != text {
			t.Errorf("Instructions[%d] = %v, want step %d %q", i, r.Instructions[i], i+1, text)
		}
	}
}

func TestRecipeServingsVariants(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		amount int
		desc   string
	}{
		{"serves", "Soup\nServes 6", 6, ""},
		{"serves colon", "Soup\nServes: 6", 6, ""},
		{"makes with description", "Cookies\nMakes 24 large cookies", 24, "large cookies"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Recipe(tt.text)
			if err != nil {
				t.Fatalf("Recipe: %v", err)
			}
			if r.Servings == nil {
				t.Fatal("Servings = nil")
			}
			if r.Servings.Amount != tt.amount || r.Servings.Description != tt.desc {
				t.Errorf("Servings = %v, want %d %q", r.Servings, tt.amount, tt.desc)
			}
		})
	}
}

func TestRecipeFirstLineIsAlwaysTitle(t *testing.T) {
	// Even a servings-shaped first line reads as the title.
	r, err := Recipe("Serves 4\nServes 6")
	if err != nil {
		t.Fatalf("Recipe: %v", err)
	}
	if r.Title != "Serves 4" {
		t.Errorf("Title = %q, want %q", r.Title, "Serves 4")
	}
	if r.Servings == nil || r.Servings.Amount != 6 {
		t.Errorf("Servings = %v, want 6", r.Servings)
	}
}

func TestRecipeEmptyTitle(t *testing.T) {
	for _, text := range []string{"", "\n\n", "   \n\t\n"} {
		if _, err := Recipe(text); !errors.Is(err, domain.ErrEmptyTitle) {
			t.Errorf("Recipe(%q): err = %v, want ErrEmptyTitle", text, err)
		}
	}
}

func TestRecipeBlankLinesDoNotEndSections(t *testing.T) {
	text := "Soup\n\nIngredients:\n1 cup broth\n\n1 carrot\n\nInstructions:\nSimmer.\n\nServe."
	r, err := Recipe(text)
	if err != nil {
		t.Fatalf("Recipe: %v", err)
	}
	if len(r.Ingredients) != 2 {
		t.Errorf("got %d ingredients, want 2", len(r.Ingredients))
	}
	if len(r.Instructions) != 2 {
		t.Errorf("got %d instructions, want 2", len(r.Instructions))
	}
}
