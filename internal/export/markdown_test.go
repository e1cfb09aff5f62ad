package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hammamikhairi/cookbook/internal/domain"
)

func sampleRecipe(t *testing.T) *domain.Recipe {
	t.Helper()

	qty, err := domain.NewExact(2, domain.Cup)
	if err != nil {
		t.Fatalf("NewExact: %v", err)
	}
	flour, err := domain.NewMeasured("flour", qty, "", "")
	if err != nil {
		t.Fatalf("NewMeasured: %v", err)
	}
	salt := domain.NewVague("salt", "to taste", "", "")
	servings, err := domain.NewServings(4, "people")
	if err != nil {
		t.Fatalf("NewServings: %v", err)
	}

	r, err := domain.NewRecipe("Flatbread", &servings,
		[]domain.Ingredient{flour, salt},
		[]domain.Instruction{{Step: 1, Text: "Knead."}, {Step: 2, Text: "Bake."}},
		nil)
	if err != nil {
		t.Fatalf("NewRecipe: %v", err)
	}
	return r
}

func TestMarkdownLayout(t *testing.T) {
	got := Markdown(sampleRecipe(t))

	for _, want := range []string{
		"# Flatbread\n",
		"_Serves: 4 people_\n",
		"## Ingredients\n",
		"- 2 cups flour\n",
		"- salt (to taste)\n",
		"## Instructions\n",
		"1. Knead.\n",
		"2. Bake.\n",
		"---\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Markdown output missing %q:\n%s", want, got)
		}
	}
}

func TestMarkdownOmitsEmptySections(t *testing.T) {
	r, err := domain.NewRecipe("Water", nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewRecipe: %v", err)
	}

	got := Markdown(r)
	if strings.Contains(got, "## Ingredients") {
		t.Error("empty ingredients section rendered")
	}
	if strings.Contains(got, "## Instructions") {
		t.Error("empty instructions section rendered")
	}
	if strings.Contains(got, "_Serves") {
		t.Error("servings rendered without servings")
	}
}

func TestWriteRecipe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flatbread.md")
	if err := WriteRecipe(sampleRecipe(t), path); err != nil {
		t.Fatalf("WriteRecipe: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.HasPrefix(string(data), "# Flatbread") {
		t.Errorf("file does not start with title: %q", string(data)[:20])
	}
}
