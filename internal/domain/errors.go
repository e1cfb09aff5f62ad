package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across layers.
var (
	ErrNotFound              = errors.New("not found")
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrEmptyTitle            = errors.New("recipe text has no title")
	ErrUnitMismatch          = errors.New("unit mismatch")
	ErrUnsupportedConversion = errors.New("unsupported conversion")
)

// UnsupportedConversionError reports a conversion no registry rule
// covers. It matches ErrUnsupportedConversion under errors.Is.
type UnsupportedConversionError struct {
	From       Unit
	To         Unit
	Ingredient string
}

func (e *UnsupportedConversionError) Error() string {
	if e.Ingredient != "" {
		return fmt.Sprintf("cannot convert %s from %s to %s", e.Ingredient, e.From.Abbreviation(), e.To.Abbreviation())
	}
	return fmt.Sprintf("cannot convert from %s to %s", e.From.Abbreviation(), e.To.Abbreviation())
}

// Is reports whether target is the ErrUnsupportedConversion sentinel.
func (e *UnsupportedConversionError) Is(target error) bool {
	return target == ErrUnsupportedConversion
}
