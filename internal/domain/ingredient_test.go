package domain

import (
	"errors"
	"testing"
)

func TestNewMeasuredValidation(t *testing.T) {
	qty, _ := NewExact(2, Cup)

	if _, err := NewMeasured("", qty, "", ""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("blank name: err = %v, want ErrInvalidArgument", err)
	}
	if _, err := NewMeasured("   ", qty, "", ""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("whitespace name: err = %v, want ErrInvalidArgument", err)
	}
	if _, err := NewMeasured("flour", nil, "", ""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil quantity: err = %v, want ErrInvalidArgument", err)
	}
}

func TestMeasuredString(t *testing.T) {
	qty, _ := NewExact(2.5, Cup)

	plain, _ := NewMeasured("flour", qty, "", "")
	if got := plain.String(); got != "2.5 cups flour" {
		t.Errorf("String = %q, want %q", got, "2.5 cups flour")
	}

	prepped, _ := NewMeasured("butter", qty, "softened", "")
	if got := prepped.String(); got != "2.5 cups butter, softened" {
		t.Errorf("String = %q, want %q", got, "2.5 cups butter, softened")
	}

	noted, _ := NewMeasured("flour", qty, "", "sifted twice")
	if got := noted.String(); got != "2.5 cups flour (sifted twice)" {
		t.Errorf("String = %q, want %q", got, "2.5 cups flour (sifted twice)")
	}
}

func TestMeasuredScaleKeepsUnit(t *testing.T) {
	qty, _ := NewExact(2, Cup)
	flour, _ := NewMeasured("flour", qty, "", "")

	scaled, err := flour.Scale(1.5)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}
	m, ok := scaled.(Measured)
	if !ok {
		t.Fatalf("Scale returned %T, want Measured", scaled)
	}
	if m.Quantity().Unit() != Cup {
		t.Errorf("Unit = %v, want Cup", m.Quantity().Unit())
	}
	if got := m.Quantity().ToDecimal(); got != 3 {
		t.Errorf("ToDecimal = %v, want 3", got)
	}

	// The original is untouched.
	if got := flour.Quantity().ToDecimal(); got != 2 {
		t.Errorf("original mutated: ToDecimal = %v, want 2", got)
	}
}

func TestVagueString(t *testing.T) {
	toTaste := NewVague("salt", "to taste", "", "")
	if got := toTaste.String(); got != "salt (to taste)" {
		t.Errorf("String = %q, want %q", got, "salt (to taste)")
	}

	bare := NewVague("garnish", "", "", "")
	if got := bare.String(); got != "garnish" {
		t.Errorf("String = %q, want %q", got, "garnish")
	}
}

func TestVagueScaleIsNoop(t *testing.T) {
	salt := NewVague("salt", "to taste", "", "")
	scaled, err := salt.Scale(10)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}
	if scaled.(Vague) != salt {
		t.Errorf("Scale changed the ingredient: %v", scaled)
	}
}
