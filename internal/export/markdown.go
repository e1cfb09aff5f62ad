// Package export renders recipes to shareable formats.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/hammamikhairi/cookbook/internal/domain"
)

// Markdown renders a recipe as a Markdown document.
func Markdown(r *domain.Recipe) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", r.Title)

	if r.Servings != nil {
		fmt.Fprintf(&b, "_Serves: %s_\n\n", r.Servings)
	}

	if len(r.Ingredients) > 0 {
		b.WriteString("## Ingredients\n\n")
		for _, ing := range r.Ingredients {
			fmt.Fprintf(&b, "- %s\n", ing)
		}
		b.WriteString("\n")
	}

	if len(r.Instructions) > 0 {
		b.WriteString("## Instructions\n\n")
		for _, ins := range r.Instructions {
			fmt.Fprintf(&b, "%d. %s\n", ins.Step, ins.Text)
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	b.WriteString("_Exported from cookbook_\n")

	return b.String()
}

// WriteRecipe writes the Markdown rendering of a recipe to a file.
func WriteRecipe(r *domain.Recipe, path string) error {
	if err := os.WriteFile(path, []byte(Markdown(r)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
