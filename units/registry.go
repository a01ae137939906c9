package units

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrUnknownUnit is returned by lookups for identifiers outside the registry.
var ErrUnknownUnit = errors.New("unknown unit")

// entry describes one registered unit: its dimension, the multiplicative
// factor converting one of it into the dimension's base unit, and its
// stable display name and symbol.
type entry struct {
	dim    Dimension
	scale  float64
	name   string
	symbol string
}

// registry is the single source of truth for supported units. It is
// populated at compile time and never mutated, so lookups are safe from
// any number of goroutines without locking.
var registry = map[Unit]entry{
	Meter:            {Length, 1.0, "meter", "m"},
	Kilometer:        {Length, 1_000.0, "kilometer", "Km"},
	AstronomicalUnit: {Length, 149_597_870_000.7, "astronomical unit", "Au"},
	LightYear:        {Length, 9_460_730_472_580_000.8, "light year", "Ly"},
	SolarRadius:      {Length, 695_700_000.0, "solar radius", "SR"},
	Parsec:           {Length, 3.26 * 9_460_730_472_580_000.8, "parsec", "ps"},

	Second:        {Time, 1.0, "second", "sec"},
	Minute:        {Time, 60.0, "minute", "min"},
	Hour:          {Time, 3_600.0, "hour", "h"},
	Day:           {Time, 86_400.0, "day", "d"},
	Millisecond:   {Time, 1.0 / 1_000.0, "millisecond", "ms"},
	Week:          {Time, 7.0 * 86_400.0, "week", "wk"},
	Year:          {Time, 365.242_5 * 86_400.0, "year", "yr"},
	JulianYear:    {Time, 365.25 * 86_400.0, "julian year", "JY"},
	Century:       {Time, 36_524.25 * 86_400.0, "century", "cent"},
	JulianCentury: {Time, 36_525.0 * 86_400.0, "julian century", "JC"},

	Radian:         {Angle, 1.0, "radian", "Rad"},
	Degree:         {Angle, math.Pi / 180.0, "degree", "Deg"},
	Arcsecond:      {Angle, math.Pi / 648_000.0, "arcsecond", "Arcs"},
	Milliarcsecond: {Angle, math.Pi / 648_000_000.0, "milliarcsecond", "Mas"},
	HourAngle:      {Angle, math.Pi / 12.0, "hour angle", "Hms"},

	Kilogram:  {Mass, 1.0, "kilogram", "Kg"},
	Gram:      {Mass, 1.0 / 1_000.0, "gram", "g"},
	SolarMass: {Mass, 1.988_47e30, "solar mass", "M☉"},
}

// IsValid reports whether u has a registry entry.
func IsValid(u Unit) bool {
	_, ok := registry[u]
	return ok
}

// DimensionOf returns the physical dimension of a registered unit.
func DimensionOf(u Unit) (Dimension, error) {
	e, ok := registry[u]
	if !ok {
		return 0, fmt.Errorf("unit %d: %w", uint32(u), ErrUnknownUnit)
	}
	return e.dim, nil
}

// ScaleToBase returns the factor converting one u into the base unit of
// its dimension (e.g. Kilometer -> 1000 meters).
func ScaleToBase(u Unit) (float64, error) {
	e, ok := registry[u]
	if !ok {
		return 0, fmt.Errorf("unit %d: %w", uint32(u), ErrUnknownUnit)
	}
	return e.scale, nil
}

// Name returns the stable human-readable name of a unit, or the empty
// string for identifiers outside the registry.
func Name(u Unit) string {
	return registry[u].name
}

// Symbol returns the printable symbol of a unit (e.g. "m", "Rad"), or the
// empty string for identifiers outside the registry.
func Symbol(u Unit) string {
	return registry[u].symbol
}

// All returns every registered unit in ascending identifier order.
func All() []Unit {
	us := make([]Unit, 0, len(registry))
	for u := range registry {
		us = append(us, u)
	}
	sort.Slice(us, func(i, j int) bool { return us[i] < us[j] })
	return us
}
