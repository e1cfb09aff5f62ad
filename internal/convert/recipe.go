package convert

import (
	"fmt"
	"strings"

	"github.com/hammamikhairi/cookbook/internal/domain"
)

// layered returns the registry with the recipe's own rules added at
// recipe priority. The layering is transient: the base registry is
// untouched.
func layered(r *domain.Recipe, reg Registry) Registry {
	if len(r.Rules) == 0 {
		return reg
	}
	return reg.WithRules(TierRecipe, r.Rules)
}

// Recipe converts every measured ingredient of a recipe to the target
// unit, layering the recipe's own rules at recipe priority. Strict: the
// first unconvertible ingredient aborts and the original recipe is left
// as it was.
func Recipe(r *domain.Recipe, target domain.Unit, reg Registry) (*domain.Recipe, error) {
	enhanced := layered(r, reg)

	ingredients := make([]domain.Ingredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		m, ok := ing.(domain.Measured)
		if !ok || m.Quantity().Unit() == target {
			ingredients = append(ingredients, ing)
			continue
		}
		q, err := enhanced.Convert(m.Quantity(), target, m.Name())
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, m.WithQuantity(q))
	}

	return domain.NewRecipe(r.Title, r.Servings, ingredients, r.Instructions, r.Rules)
}

// ScaleToTarget rescales a whole recipe so that the named measured
// ingredient lands on the target quantity, then converts each measured
// ingredient to the target's unit. Ingredients with no applicable rule
// are tolerated and keep their unit; only the anchor ingredient must be
// convertible.
func ScaleToTarget(r *domain.Recipe, ingredientName string, target domain.Quantity, reg Registry) (*domain.Recipe, error) {
	if strings.TrimSpace(ingredientName) == "" {
		return nil, fmt.Errorf("%w: ingredient name must not be blank", domain.ErrInvalidArgument)
	}
	enhanced := layered(r, reg)

	anchor, ok := findMeasured(r, ingredientName)
	if !ok {
		return nil, fmt.Errorf("%w: ingredient %q not in recipe", domain.ErrNotFound, ingredientName)
	}

	current := anchor.Quantity()
	if current.Unit() != target.Unit() {
		converted, err := enhanced.Convert(current, target.Unit(), anchor.Name())
		if err != nil {
			return nil, err
		}
		current = converted
	}

	factor := target.ToDecimal() / current.ToDecimal()
	scaled, err := r.Scale(factor)
	if err != nil {
		return nil, err
	}

	ingredients := make([]domain.Ingredient, 0, len(scaled.Ingredients))
	for _, ing := range scaled.Ingredients {
		ingredients = append(ingredients, tryConvert(ing, target.Unit(), enhanced))
	}
	scaled.Ingredients = ingredients
	return scaled, nil
}

// tryConvert converts a measured ingredient to the target unit,
// returning it unchanged when no rule applies.
func tryConvert(ing domain.Ingredient, target domain.Unit, reg Registry) domain.Ingredient {
	m, ok := ing.(domain.Measured)
	if !ok || m.Quantity().Unit() == target {
		return ing
	}
	q, err := reg.Convert(m.Quantity(), target, m.Name())
	if err != nil {
		// Rule factors are always positive, so the only failure here is
		// an unsupported conversion; leave the ingredient as-is.
		return ing
	}
	return m.WithQuantity(q)
}

func findMeasured(r *domain.Recipe, name string) (domain.Measured, bool) {
	for _, ing := range r.Ingredients {
		if m, ok := ing.(domain.Measured); ok && strings.EqualFold(m.Name(), name) {
			return m, true
		}
	}
	return domain.Measured{}, false
}
