package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Quantity is a measured amount with a unit. The variant set is closed:
// Exact, Fractional, and Range. Values are immutable; Rescale returns a
// new Quantity and never mutates the receiver, so quantities may be
// shared freely across goroutines.
type Quantity interface {
	// Unit returns the unit of measurement.
	Unit() Unit
	// ToDecimal reduces the quantity to a single representative number.
	ToDecimal() float64
	// Rescale returns a new quantity multiplied by factor and carrying
	// the new unit. The factor must be positive.
	Rescale(factor float64, to Unit) (Quantity, error)

	fmt.Stringer

	// sealed prevents variants outside this package.
	sealed()
}

// formatAmount renders a number with at most three decimal digits,
// stripping trailing zeros and a dangling point. Very large or
// non-finite values fall back to Go's shortest float rendering.
func formatAmount(v float64) string {
	if math.Abs(v) >= 1e10 || math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', 3, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

func checkFactor(factor float64) error {
	if factor <= 0 {
		return fmt.Errorf("%w: scaling factor must be positive, got %v", ErrInvalidArgument, factor)
	}
	return nil
}

// Exact is a precise decimal quantity, e.g. "2.5 cups".
type Exact struct {
	amount float64
	unit   Unit
}

// NewExact builds an exact quantity. The amount must be positive.
func NewExact(amount float64, unit Unit) (Exact, error) {
	if amount <= 0 {
		return Exact{}, fmt.Errorf("%w: amount must be positive, got %v", ErrInvalidArgument, amount)
	}
	return Exact{amount: amount, unit: unit}, nil
}

// Amount returns the decimal amount.
func (q Exact) Amount() float64 { return q.amount }

// Unit returns the unit of measurement.
func (q Exact) Unit() Unit { return q.unit }

// ToDecimal returns the amount.
func (q Exact) ToDecimal() float64 { return q.amount }

// Rescale returns a new Exact with the amount multiplied by factor.
func (q Exact) Rescale(factor float64, to Unit) (Quantity, error) {
	if err := checkFactor(factor); err != nil {
		return nil, err
	}
	return Exact{amount: q.amount * factor, unit: to}, nil
}

// String renders the amount with the singular abbreviation only when it
// is exactly one, e.g. "1 cup" but "2.5 cups".
func (q Exact) String() string {
	if q.amount == 1.0 {
		return formatAmount(q.amount) + " " + q.unit.Abbreviation()
	}
	return formatAmount(q.amount) + " " + q.unit.PluralAbbreviation()
}

func (Exact) sealed() {}

// Fractional is a mixed-number quantity, e.g. "2 1/3 cups". Fractions
// are not required to be in lowest terms.
type Fractional struct {
	whole       int
	numerator   int
	denominator int
	unit        Unit
}

// NewFractional builds a mixed-number quantity. The denominator must be
// positive, whole and numerator non-negative, and at least one of whole
// or numerator non-zero.
func NewFractional(whole, numerator, denominator int, unit Unit) (Fractional, error) {
	switch {
	case whole < 0:
		return Fractional{}, fmt.Errorf("%w: whole part must be non-negative, got %d", ErrInvalidArgument, whole)
	case numerator < 0:
		return Fractional{}, fmt.Errorf("%w: numerator must be non-negative, got %d", ErrInvalidArgument, numerator)
	case denominator <= 0:
		return Fractional{}, fmt.Errorf("%w: denominator must be positive, got %d", ErrInvalidArgument, denominator)
	case whole == 0 && numerator == 0:
		return Fractional{}, fmt.Errorf("%w: whole and numerator cannot both be zero", ErrInvalidArgument)
	}
	return Fractional{whole: whole, numerator: numerator, denominator: denominator, unit: unit}, nil
}

// Whole returns the whole-number part.
func (q Fractional) Whole() int { return q.whole }

// Numerator returns the numerator of the fractional part.
func (q Fractional) Numerator() int { return q.numerator }

// Denominator returns the denominator of the fractional part.
func (q Fractional) Denominator() int { return q.denominator }

// Unit returns the unit of measurement.
func (q Fractional) Unit() Unit { return q.unit }

// ToDecimal returns whole + numerator/denominator.
func (q Fractional) ToDecimal() float64 {
	return float64(q.whole) + float64(q.numerator)/float64(q.denominator)
}

// Rescale returns an Exact quantity: the fractional structure cannot
// survive multiplication by an arbitrary factor.
func (q Fractional) Rescale(factor float64, to Unit) (Quantity, error) {
	if err := checkFactor(factor); err != nil {
		return nil, err
	}
	return Exact{amount: q.ToDecimal() * factor, unit: to}, nil
}

func (q Fractional) String() string {
	switch {
	case q.whole > 0 && q.numerator > 0:
		return fmt.Sprintf("%d %d/%d %s", q.whole, q.numerator, q.denominator, q.unit.PluralAbbreviation())
	case q.whole > 0:
		if q.whole == 1 {
			return fmt.Sprintf("%d %s", q.whole, q.unit.Abbreviation())
		}
		return fmt.Sprintf("%d %s", q.whole, q.unit.PluralAbbreviation())
	default:
		if q.numerator == 1 && q.denominator == 1 {
			return fmt.Sprintf("%d %s", q.numerator, q.unit.Abbreviation())
		}
		return fmt.Sprintf("%d/%d %s", q.numerator, q.denominator, q.unit.Abbreviation())
	}
}

func (Fractional) sealed() {}

// Range is a quantity span, e.g. "2-3 cups". ToDecimal returns the
// midpoint.
type Range struct {
	min  float64
	max  float64
	unit Unit
}

// NewRange builds a range quantity. Min must be positive and strictly
// below max.
func NewRange(min, max float64, unit Unit) (Range, error) {
	if min <= 0 {
		return Range{}, fmt.Errorf("%w: min must be positive, got %v", ErrInvalidArgument, min)
	}
	if max <= min {
		return Range{}, fmt.Errorf("%w: max %v must be greater than min %v", ErrInvalidArgument, max, min)
	}
	return Range{min: min, max: max, unit: unit}, nil
}

// Min returns the lower bound.
func (q Range) Min() float64 { return q.min }

// Max returns the upper bound.
func (q Range) Max() float64 { return q.max }

// Unit returns the unit of measurement.
func (q Range) Unit() Unit { return q.unit }

// ToDecimal returns the midpoint of the range.
func (q Range) ToDecimal() float64 { return (q.min + q.max) / 2.0 }

// Rescale scales both bounds, preserving the range structure.
func (q Range) Rescale(factor float64, to Unit) (Quantity, error) {
	if err := checkFactor(factor); err != nil {
		return nil, err
	}
	return Range{min: q.min * factor, max: q.max * factor, unit: to}, nil
}

// String always renders the plural form; a range is never exactly one.
func (q Range) String() string {
	return formatAmount(q.min) + "-" + formatAmount(q.max) + " " + q.unit.PluralAbbreviation()
}

func (Range) sealed() {}
