// Package qtty is the conversion engine: compatibility checks and value or
// quantity conversion between units of the same dimension. It is built
// entirely on the units registry and holds no state of its own, so every
// function is safe for concurrent use.
package qtty

import (
	"fmt"

	"github.com/siderust/qtty/units"
)

// Quantity pairs a numeric magnitude with the unit it is measured in.
// Quantities are plain values: copy freely, never mutated in place.
// NaN and infinities are carried as-is; arithmetic on them follows
// IEEE-754 semantics.
type Quantity struct {
	Value float64
	Unit  units.Unit
}

// New returns a quantity of the given value and unit. The value is stored
// unchanged; construction never rescales.
func New(value float64, unit units.Unit) (Quantity, error) {
	if !units.IsValid(unit) {
		return Quantity{}, fmt.Errorf("unit %d: %w", uint32(unit), ErrUnknownUnit)
	}
	return Quantity{Value: value, Unit: unit}, nil
}

// Convert returns the quantity re-expressed in dst.
func (q Quantity) Convert(dst units.Unit) (Quantity, error) {
	v, err := ConvertValue(q.Value, q.Unit, dst)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: v, Unit: dst}, nil
}

// String formats the quantity with its unit symbol, e.g. "1.5 Km".
func (q Quantity) String() string {
	return fmt.Sprintf("%g %s", q.Value, units.Symbol(q.Unit))
}
