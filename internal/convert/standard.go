package convert

import (
	"fmt"

	"github.com/hammamikhairi/cookbook/internal/domain"
)

// Factors normalizing each volume unit to milliliters.
const (
	cupToMl        = 236.588
	tablespoonToMl = 14.7868
	teaspoonToMl   = 4.92892
	fluidOunceToMl = 29.5735
	literToMl      = 1000.0
)

// Factors normalizing each weight unit to grams.
const (
	ounceToG    = 28.3495
	poundToG    = 453.592
	kilogramToG = 1000.0
)

type unitPair struct {
	from domain.Unit
	to   domain.Unit
}

// standardRules and standardIndex are built once at process start and
// never mutated afterwards; concurrent reads need no synchronization.
var standardRules, standardIndex = buildStandard()

func buildStandard() ([]domain.Rule, map[unitPair]domain.Rule) {
	volume := []domain.Unit{domain.Cup, domain.Tablespoon, domain.Teaspoon, domain.FluidOunce, domain.Milliliter, domain.Liter}
	toMl := map[domain.Unit]float64{
		domain.Cup:        cupToMl,
		domain.Tablespoon: tablespoonToMl,
		domain.Teaspoon:   teaspoonToMl,
		domain.FluidOunce: fluidOunceToMl,
		domain.Milliliter: 1.0,
		domain.Liter:      literToMl,
	}

	weight := []domain.Unit{domain.Ounce, domain.Pound, domain.Gram, domain.Kilogram}
	toG := map[domain.Unit]float64{
		domain.Ounce:    ounceToG,
		domain.Pound:    poundToG,
		domain.Gram:     1.0,
		domain.Kilogram: kilogramToG,
	}

	var rules []domain.Rule
	index := make(map[unitPair]domain.Rule)

	addPairs := func(units []domain.Unit, base map[domain.Unit]float64) {
		for _, from := range units {
			for _, to := range units {
				if from == to {
					continue
				}
				rule, err := domain.NewRule(from, to, base[from]/base[to])
				if err != nil {
					panic(fmt.Sprintf("standard conversion table: %v", err))
				}
				rules = append(rules, rule)
				index[unitPair{from, to}] = rule
			}
		}
	}
	addPairs(volume, toMl)
	addPairs(weight, toG)

	return rules, index
}

// StandardRules returns every precomputed same-dimension rule: all
// ordered pairs within the volume units and within the weight units. No
// identity, cross-dimension, count, or house-unit rules are included.
func StandardRules() []domain.Rule {
	out := make([]domain.Rule, len(standardRules))
	copy(out, standardRules)
	return out
}

// StandardRule returns the precomputed rule for an ordered unit pair,
// or false when the pair is not covered (identity pairs included).
func StandardRule(from, to domain.Unit) (domain.Rule, bool) {
	r, ok := standardIndex[unitPair{from, to}]
	return r, ok
}
