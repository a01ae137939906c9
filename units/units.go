// Package units defines the fixed registry of supported units of measure.
//
// Every unit maps to exactly one physical dimension and one positive, finite
// scale factor relative to that dimension's base unit (meter, second, radian,
// kilogram). The numeric values of Dimension and Unit identifiers cross the
// C boundary and are frozen once published: new identifiers may be added, but
// existing ones must never change or be reused.
package units

import "fmt"

// Dimension identifies a physical dimension. Two units are convertible
// iff they share a dimension.
type Dimension uint32

const (
	Length Dimension = 1
	Time   Dimension = 2
	Angle  Dimension = 3
	Mass   Dimension = 4
)

// String returns the lowercase dimension name, or "dimension(n)" for
// values outside the known set.
func (d Dimension) String() string {
	switch d {
	case Length:
		return "length"
	case Time:
		return "time"
	case Angle:
		return "angle"
	case Mass:
		return "mass"
	}
	return fmt.Sprintf("dimension(%d)", uint32(d))
}

// Unit identifies a unit of measure. Identifiers are grouped by dimension
// in reserved ranges (length 100-199, time 200-299, angle 300-399,
// mass 400-499). The grouping is organizational only; the registry, not
// the numeric range, determines a unit's dimension.
type Unit uint32

const (
	// Length units (100-199). Base: meter.
	Meter            Unit = 100
	Kilometer        Unit = 101
	AstronomicalUnit Unit = 102
	LightYear        Unit = 103
	SolarRadius      Unit = 104
	Parsec           Unit = 105

	// Time units (200-299). Base: second.
	Second        Unit = 200
	Minute        Unit = 201
	Hour          Unit = 202
	Day           Unit = 203
	Millisecond   Unit = 204
	Week          Unit = 205
	Year          Unit = 206
	JulianYear    Unit = 207
	Century       Unit = 208
	JulianCentury Unit = 209

	// Angle units (300-399). Base: radian.
	Radian         Unit = 300
	Degree         Unit = 301
	Arcsecond      Unit = 302
	Milliarcsecond Unit = 303
	HourAngle      Unit = 304

	// Mass units (400-499). Base: kilogram.
	Kilogram  Unit = 400
	Gram      Unit = 401
	SolarMass Unit = 402
)

// String returns the unit's registered name, or "unit(n)" for identifiers
// outside the registry.
func (u Unit) String() string {
	if e, ok := registry[u]; ok {
		return e.name
	}
	return fmt.Sprintf("unit(%d)", uint32(u))
}
