// Package display renders recipes and shopping lists for the terminal.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/cookbook/internal/domain"
	"github.com/hammamikhairi/cookbook/internal/service"
)

// Styles tuned for dark terminals.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#bae6fd"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	sepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	ingredientStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#71717a")).
		Italic(true)
)

// Recipe renders a full recipe.
func Recipe(r *domain.Recipe) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(r.Title))
	b.WriteString("\n")
	b.WriteString(idStyle.Render(r.ID))
	b.WriteString("\n")

	if r.Servings != nil {
		b.WriteString(labelStyle.Render(fmt.Sprintf("Serves: %s", r.Servings)))
		b.WriteString("\n")
	}

	if len(r.Ingredients) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Ingredients"))
		b.WriteString("\n")
		for _, ing := range r.Ingredients {
			fmt.Fprintf(&b, "  %s %s\n", sepStyle.Render("·"), ingredientStyle.Render(ing.String()))
		}
	}

	if len(r.Instructions) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Instructions"))
		b.WriteString("\n")
		for _, ins := range r.Instructions {
			fmt.Fprintf(&b, "  %s %s\n", mutedStyle.Render(fmt.Sprintf("%d.", ins.Step)), stepStyle.Render(ins.Text))
		}
	}

	if len(r.Rules) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Conversion rules"))
		b.WriteString("\n")
		for _, rule := range r.Rules {
			fmt.Fprintf(&b, "  %s %s\n", sepStyle.Render("·"), mutedStyle.Render(rule.String()))
		}
	}

	return b.String()
}

// Summaries renders a one-line-per-recipe listing.
func Summaries(recipes []*domain.Recipe) string {
	if len(recipes) == 0 {
		return mutedStyle.Render("no recipes stored")
	}

	var b strings.Builder
	for _, r := range recipes {
		line := fmt.Sprintf("%s  %s",
			titleStyle.Render(r.Title),
			idStyle.Render(r.ID))
		if r.Servings != nil {
			line += "  " + mutedStyle.Render(fmt.Sprintf("(serves %s)", r.Servings))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// ShoppingList renders an aggregated shopping list.
func ShoppingList(list *service.ShoppingList) string {
	if len(list.Items) == 0 && len(list.Uncountable) == 0 {
		return mutedStyle.Render("nothing to buy")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Shopping list"))
	b.WriteString("\n")

	for _, item := range list.Items {
		fmt.Fprintf(&b, "  %s %s %s\n",
			sepStyle.Render("·"),
			ingredientStyle.Render(item.Quantity.String()),
			stepStyle.Render(item.Name))
	}

	if len(list.Uncountable) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("To taste / as needed"))
		b.WriteString("\n")
		for _, desc := range list.Uncountable {
			fmt.Fprintf(&b, "  %s %s\n", sepStyle.Render("·"), mutedStyle.Render(desc))
		}
	}

	return b.String()
}
