package domain

import (
	"fmt"
	"strings"
)

// Rule is one directed conversion factor between two units, optionally
// scoped to a single ingredient (a density-style rule such as
// cups-of-flour to grams). Rules are immutable and may be shared by any
// number of registries.
type Rule struct {
	from       Unit
	to         Unit
	factor     float64
	ingredient string
}

// NewRule builds a generic rule applying to any ingredient. The factor
// must be positive.
func NewRule(from, to Unit, factor float64) (Rule, error) {
	return NewIngredientRule(from, to, factor, "")
}

// NewIngredientRule builds a rule scoped to one ingredient name. An
// empty name produces a generic rule.
func NewIngredientRule(from, to Unit, factor float64, ingredient string) (Rule, error) {
	if factor <= 0 {
		return Rule{}, fmt.Errorf("%w: conversion factor must be positive, got %v", ErrInvalidArgument, factor)
	}
	return Rule{from: from, to: to, factor: factor, ingredient: ingredient}, nil
}

// From returns the source unit.
func (r Rule) From() Unit { return r.from }

// To returns the target unit.
func (r Rule) To() Unit { return r.to }

// Factor returns the multiplication factor.
func (r Rule) Factor() float64 { return r.factor }

// Ingredient returns the ingredient scope, empty for generic rules.
func (r Rule) Ingredient() string { return r.ingredient }

// IsGeneric reports whether the rule applies to any ingredient.
func (r Rule) IsGeneric() bool { return r.ingredient == "" }

// Matches reports whether the rule covers a conversion from one unit to
// another for the named ingredient. A scoped rule requires a
// case-insensitive name match; a generic rule matches any name.
func (r Rule) Matches(from, to Unit, ingredient string) bool {
	if r.from != from || r.to != to {
		return false
	}
	if r.ingredient != "" {
		return strings.EqualFold(r.ingredient, ingredient)
	}
	return true
}

// Apply converts a quantity expressed in the rule's source unit. The
// quantity's unit must equal From; otherwise ErrUnitMismatch.
func (r Rule) Apply(q Quantity) (Quantity, error) {
	if q.Unit() != r.from {
		return nil, fmt.Errorf("%w: quantity unit %s does not match rule source %s",
			ErrUnitMismatch, q.Unit(), r.from)
	}
	return q.Rescale(r.factor, r.to)
}

func (r Rule) String() string {
	if r.ingredient != "" {
		return fmt.Sprintf("%s -> %s x%s for %s", r.from, r.to, formatAmount(r.factor), r.ingredient)
	}
	return fmt.Sprintf("%s -> %s x%s", r.from, r.to, formatAmount(r.factor))
}
