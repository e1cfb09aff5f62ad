// Package convert implements the layered unit-conversion registry and
// recipe-level conversion operations.
package convert

import (
	"github.com/hammamikhairi/cookbook/internal/domain"
)

// Tier is a priority bucket of conversion rules. Lower value means
// higher priority: house rules beat recipe rules beat the standard
// table.
type Tier int

const (
	// TierHouse holds per-user overrides.
	TierHouse Tier = iota
	// TierRecipe holds rules shipped with a single recipe.
	TierRecipe
	// TierStandard holds the precomputed same-dimension table.
	TierStandard

	tierCount
)

// String returns the lowercase tier name.
func (t Tier) String() string {
	switch t {
	case TierHouse:
		return "house"
	case TierRecipe:
		return "recipe"
	case TierStandard:
		return "standard"
	}
	return "unknown"
}

// Registry is an immutable three-tier stack of conversion rules.
// WithRule and WithRules return new registries; an existing registry is
// never observably mutated, so registries may be shared across
// goroutines without locking.
type Registry struct {
	tiers [tierCount][]domain.Rule
}

// NewRegistry returns an empty registry.
func NewRegistry() Registry { return Registry{} }

// NewStandardRegistry returns a registry seeded with the standard
// same-dimension table at standard priority.
func NewStandardRegistry() Registry {
	return Registry{}.WithRules(TierStandard, StandardRules())
}

// WithRule returns a new registry with the rule appended to the end of
// the tier's sequence. Earlier rules in a tier win ties.
func (g Registry) WithRule(tier Tier, rule domain.Rule) Registry {
	return g.WithRules(tier, []domain.Rule{rule})
}

// WithRules returns a new registry with the rules appended, in order,
// to the end of the tier's sequence. Untouched tiers are shared with
// the receiver.
func (g Registry) WithRules(tier Tier, rules []domain.Rule) Registry {
	if len(rules) == 0 {
		return g
	}
	layer := g.tiers[tier]
	next := make([]domain.Rule, 0, len(layer)+len(rules))
	next = append(next, layer...)
	next = append(next, rules...)

	out := g
	out.tiers[tier] = next
	return out
}

// RuleCount returns the number of rules in a tier.
func (g Registry) RuleCount(tier Tier) int { return len(g.tiers[tier]) }

// Convert converts a quantity to the target unit. The ingredient name,
// when non-empty, lets ingredient-specific rules participate.
//
// Tiers are scanned house, recipe, standard. Within a tier the
// ingredient-specific rules are scanned first in insertion order, then
// the generic rules; only a fully empty-handed tier defers to the next.
// Specificity therefore breaks ties inside a tier while priority
// dominates across tiers: a generic house rule still beats an
// ingredient-specific recipe rule.
func (g Registry) Convert(q domain.Quantity, target domain.Unit, ingredient string) (domain.Quantity, error) {
	from := q.Unit()
	for tier := TierHouse; tier < tierCount; tier++ {
		rules := g.tiers[tier]
		if ingredient != "" {
			for _, r := range rules {
				if !r.IsGeneric() && r.Matches(from, target, ingredient) {
					return r.Apply(q)
				}
			}
		}
		for _, r := range rules {
			if r.IsGeneric() && r.Matches(from, target, ingredient) {
				return r.Apply(q)
			}
		}
	}
	return nil, &domain.UnsupportedConversionError{From: from, To: target, Ingredient: ingredient}
}

// FindToSystem returns the first rule, in tier then insertion order,
// converting the source unit into any unit of the target system. Used
// to pick a reasonable default target unit ("convert pounds to metric")
// without committing to grams versus kilograms upfront.
func (g Registry) FindToSystem(from domain.Unit, system domain.UnitSystem) (domain.Rule, bool) {
	for tier := TierHouse; tier < tierCount; tier++ {
		for _, r := range g.tiers[tier] {
			if r.From() == from && r.To().System() == system {
				return r, true
			}
		}
	}
	return domain.Rule{}, false
}
