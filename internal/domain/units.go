package domain

import "strings"

// UnitSystem identifies the measurement system a unit belongs to.
type UnitSystem int

const (
	// Imperial covers US customary units (cups, ounces, pounds).
	Imperial UnitSystem = iota
	// Metric covers SI-derived units (grams, liters).
	Metric
	// House covers informal kitchen units (pinch, dash, whole).
	House
)

// String returns the lowercase system name.
func (s UnitSystem) String() string {
	switch s {
	case Imperial:
		return "imperial"
	case Metric:
		return "metric"
	case House:
		return "house"
	}
	return "unknown"
}

// UnitDimension is the physical quantity kind a unit measures.
type UnitDimension int

const (
	// Weight units measure mass.
	Weight UnitDimension = iota
	// Volume units measure volume.
	Volume
	// Count units count discrete items (eggs, cloves).
	Count
	// Other covers informal units with no fixed physical dimension.
	Other
)

// String returns the lowercase dimension name.
func (d UnitDimension) String() string {
	switch d {
	case Weight:
		return "weight"
	case Volume:
		return "volume"
	case Count:
		return "count"
	case Other:
		return "other"
	}
	return "unknown"
}

// Unit is a unit of measurement for ingredient quantities. The set is
// closed; the zero value is not a valid unit.
type Unit int

const (
	// Cup is an imperial volume unit.
	Cup Unit = iota + 1
	// Tablespoon is an imperial volume unit.
	Tablespoon
	// Teaspoon is an imperial volume unit.
	Teaspoon
	// FluidOunce is an imperial volume unit.
	FluidOunce
	// Ounce is an imperial weight unit.
	Ounce
	// Pound is an imperial weight unit.
	Pound
	// Milliliter is a metric volume unit.
	Milliliter
	// Liter is a metric volume unit.
	Liter
	// Gram is a metric weight unit.
	Gram
	// Kilogram is a metric weight unit.
	Kilogram
	// Whole counts discrete items, e.g. "2 eggs".
	Whole
	// Pinch is an informal house unit.
	Pinch
	// Dash is an informal house unit.
	Dash
	// Handful is an informal house unit.
	Handful
	// ToTaste marks an amount left to the cook's judgment.
	ToTaste
)

type unitInfo struct {
	name   string // canonical name, also a lookup alias
	system UnitSystem
	dim    UnitDimension
	abbr   string
	plural string
}

var unitTable = [...]unitInfo{
	Cup:        {"cup", Imperial, Volume, "cup", "cups"},
	Tablespoon: {"tablespoon", Imperial, Volume, "tbsp", "tbsp"},
	Teaspoon:   {"teaspoon", Imperial, Volume, "tsp", "tsp"},
	FluidOunce: {"fluid_ounce", Imperial, Volume, "fl oz", "fl oz"},
	Ounce:      {"ounce", Imperial, Weight, "oz", "oz"},
	Pound:      {"pound", Imperial, Weight, "lb", "lb"},
	Milliliter: {"milliliter", Metric, Volume, "ml", "ml"},
	Liter:      {"liter", Metric, Volume, "L", "L"},
	Gram:       {"gram", Metric, Weight, "g", "g"},
	Kilogram:   {"kilogram", Metric, Weight, "kg", "kg"},
	Whole:      {"whole", House, Count, "whole", "whole"},
	Pinch:      {"pinch", House, Other, "pinch", "pinches"},
	Dash:       {"dash", House, Other, "dash", "dashes"},
	Handful:    {"handful", House, Other, "handful", "handfuls"},
	ToTaste:    {"to_taste", House, Other, "to taste", "to taste"},
}

func (u Unit) info() unitInfo {
	if u < Cup || int(u) >= len(unitTable) {
		return unitInfo{name: "unknown", abbr: "?", plural: "?"}
	}
	return unitTable[u]
}

// Name returns the canonical name of the unit, e.g. "fluid_ounce".
// The name always resolves back to the unit via ResolveUnit.
func (u Unit) Name() string { return u.info().name }

// System returns the measurement system the unit belongs to.
func (u Unit) System() UnitSystem { return u.info().system }

// Dimension returns the physical dimension of the unit.
func (u Unit) Dimension() UnitDimension { return u.info().dim }

// Abbreviation returns the singular display form, e.g. "tbsp".
func (u Unit) Abbreviation() string { return u.info().abbr }

// PluralAbbreviation returns the plural display form, e.g. "cups".
func (u Unit) PluralAbbreviation() string { return u.info().plural }

func (u Unit) String() string { return u.Name() }

// AllUnits returns every defined unit in declaration order.
func AllUnits() []Unit {
	out := make([]Unit, 0, len(unitTable)-1)
	for u := Cup; int(u) < len(unitTable); u++ {
		out = append(out, u)
	}
	return out
}

// unitAliases maps lowercase alias strings to units. Built once at
// package init, read-only afterwards.
var unitAliases = buildAliases()

func buildAliases() map[string]Unit {
	m := make(map[string]Unit)
	add := func(u Unit, aliases ...string) {
		for _, a := range aliases {
			m[strings.ToLower(a)] = u
		}
	}
	for _, u := range AllUnits() {
		add(u, u.Name())
	}
	add(Cup, "cup", "cups", "c")
	add(Tablespoon, "tbsp", "tablespoon", "tablespoons")
	add(Teaspoon, "tsp", "teaspoon", "teaspoons")
	add(FluidOunce, "fl oz", "fluid ounce", "fluid ounces")
	add(Ounce, "oz", "ounce", "ounces")
	add(Pound, "lb", "lbs", "pound", "pounds")
	add(Milliliter, "ml", "milliliter", "milliliters")
	add(Liter, "l", "liter", "liters")
	add(Gram, "g", "gram", "grams")
	add(Kilogram, "kg", "kilogram", "kilograms")
	add(Whole, "whole")
	add(Pinch, "pinch", "pinches")
	add(Dash, "dash", "dashes")
	add(Handful, "handful", "handfuls")
	add(ToTaste, "to taste")
	return m
}

// ResolveUnit looks up a unit by name or abbreviation. Matching is
// case-insensitive after trimming surrounding whitespace; there is no
// fuzzy or partial matching. The second return is false when the text
// is not a known alias.
func ResolveUnit(text string) (Unit, bool) {
	u, ok := unitAliases[strings.ToLower(strings.TrimSpace(text))]
	return u, ok
}
