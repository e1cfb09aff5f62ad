package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/hammamikhairi/cookbook/internal/domain"
)

// ShoppingItem is one aggregated line of a shopping list.
type ShoppingItem struct {
	Name     string
	Quantity domain.Quantity
}

// ShoppingList is an aggregated list of ingredients across recipes.
// Items carries measured ingredients merged by name and unit, in the
// order they were first seen. Uncountable carries deduplicated vague
// ingredients such as "salt to taste".
type ShoppingList struct {
	Items       []ShoppingItem
	Uncountable []string
}

// ShoppingList aggregates the ingredients of the given recipes.
// Measured ingredients with the same name (case-insensitive) and the
// same unit merge into a single item; amounts are added as decimals.
// Quantities in different units for the same ingredient stay separate
// lines since they cannot be added without a conversion rule.
func (s *Service) ShoppingList(ctx context.Context, ids ...string) (*ShoppingList, error) {
	list := &ShoppingList{}

	type key struct {
		name string
		unit domain.Unit
	}
	totals := make(map[key]int) // key -> index into list.Items
	seen := make(map[string]bool)

	for _, id := range ids {
		recipe, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("getting recipe %s: %w", id, err)
		}

		for _, ing := range recipe.Ingredients {
			switch ing := ing.(type) {
			case domain.Measured:
				k := key{name: strings.ToLower(ing.Name()), unit: ing.Quantity().Unit()}
				if idx, ok := totals[k]; ok {
					merged, err := addQuantities(list.Items[idx].Quantity, ing.Quantity())
					if err != nil {
						return nil, fmt.Errorf("merging %q: %w", ing.Name(), err)
					}
					list.Items[idx].Quantity = merged
					continue
				}
				totals[k] = len(list.Items)
				list.Items = append(list.Items, ShoppingItem{
					Name:     ing.Name(),
					Quantity: ing.Quantity(),
				})
			case domain.Vague:
				k := strings.ToLower(ing.String())
				if seen[k] {
					continue
				}
				seen[k] = true
				list.Uncountable = append(list.Uncountable, ing.String())
			}
		}
	}

	s.log.Debug("built shopping list from %d recipes: %d items, %d uncountable",
		len(ids), len(list.Items), len(list.Uncountable))
	return list, nil
}

// addQuantities adds two same-unit quantities as a single exact amount.
func addQuantities(a, b domain.Quantity) (domain.Quantity, error) {
	if a.Unit() != b.Unit() {
		return nil, domain.ErrUnitMismatch
	}
	return domain.NewExact(a.ToDecimal()+b.ToDecimal(), a.Unit())
}
