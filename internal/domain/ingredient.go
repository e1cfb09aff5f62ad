package domain

import (
	"fmt"
	"strings"
)

// Ingredient is one recipe ingredient. The variant set is closed:
// Measured carries a quantity, Vague does not ("salt to taste").
type Ingredient interface {
	// Name returns the ingredient name.
	Name() string
	// Preparation returns the preparation note ("softened"), empty if none.
	Preparation() string
	// Notes returns the free-form note, empty if none.
	Notes() string
	// Scale returns a new ingredient with its quantity multiplied by
	// factor. Vague ingredients are returned unchanged.
	Scale(factor float64) (Ingredient, error)

	fmt.Stringer

	sealedIngredient()
}

// Measured is an ingredient with a parsed quantity.
type Measured struct {
	name        string
	quantity    Quantity
	preparation string
	notes       string
}

// NewMeasured builds a measured ingredient. The name must be non-blank
// and the quantity non-nil.
func NewMeasured(name string, quantity Quantity, preparation, notes string) (Measured, error) {
	if strings.TrimSpace(name) == "" {
		return Measured{}, fmt.Errorf("%w: ingredient name must not be blank", ErrInvalidArgument)
	}
	if quantity == nil {
		return Measured{}, fmt.Errorf("%w: ingredient quantity must not be nil", ErrInvalidArgument)
	}
	return Measured{name: name, quantity: quantity, preparation: preparation, notes: notes}, nil
}

// Name returns the ingredient name.
func (m Measured) Name() string { return m.name }

// Quantity returns the measured quantity.
func (m Measured) Quantity() Quantity { return m.quantity }

// Preparation returns the preparation note, empty if none.
func (m Measured) Preparation() string { return m.preparation }

// Notes returns the free-form note, empty if none.
func (m Measured) Notes() string { return m.notes }

// Scale returns a new Measured with the quantity rescaled in place
// (same unit).
func (m Measured) Scale(factor float64) (Ingredient, error) {
	q, err := m.quantity.Rescale(factor, m.quantity.Unit())
	if err != nil {
		return nil, err
	}
	return Measured{name: m.name, quantity: q, preparation: m.preparation, notes: m.notes}, nil
}

// WithQuantity returns a copy carrying a different quantity. Used by
// conversion to swap in a converted amount without touching the rest.
func (m Measured) WithQuantity(q Quantity) Measured {
	m.quantity = q
	return m
}

func (m Measured) String() string {
	var b strings.Builder
	b.WriteString(m.quantity.String())
	b.WriteString(" ")
	b.WriteString(m.name)
	if m.preparation != "" {
		b.WriteString(", ")
		b.WriteString(m.preparation)
	}
	if m.notes != "" {
		b.WriteString(" (")
		b.WriteString(m.notes)
		b.WriteString(")")
	}
	return b.String()
}

func (Measured) sealedIngredient() {}

// Vague is an ingredient without a measurable quantity. The description
// captures how much to use in words, e.g. "to taste".
type Vague struct {
	name        string
	description string
	preparation string
	notes       string
}

// NewVague builds a vague ingredient. The description is trimmed.
func NewVague(name, description, preparation, notes string) Vague {
	return Vague{
		name:        name,
		description: strings.TrimSpace(description),
		preparation: preparation,
		notes:       notes,
	}
}

// Name returns the ingredient name.
func (v Vague) Name() string { return v.name }

// Description returns the amount description, empty if none.
func (v Vague) Description() string { return v.description }

// Preparation returns the preparation note, empty if none.
func (v Vague) Preparation() string { return v.preparation }

// Notes returns the free-form note, empty if none.
func (v Vague) Notes() string { return v.notes }

// Scale is a no-op: there is no quantity to scale.
func (v Vague) Scale(factor float64) (Ingredient, error) { return v, nil }

func (v Vague) String() string {
	var b strings.Builder
	b.WriteString(v.name)
	if v.description != "" {
		b.WriteString(" (")
		b.WriteString(v.description)
		b.WriteString(")")
	}
	if v.preparation != "" {
		b.WriteString(", ")
		b.WriteString(v.preparation)
	}
	return b.String()
}

func (Vague) sealedIngredient() {}
