// Package validation checks the unit registry for internal consistency.
// The registry is compiled in, so a violation here is a programming error
// caught by the test suite rather than a runtime condition.
package validation

import (
	"fmt"
	"math"

	"github.com/siderust/qtty/units"
)

// idRanges maps each dimension to its reserved identifier range. Ranges
// are organizational; they keep additively assigned identifiers from
// colliding across dimensions.
var idRanges = map[units.Dimension]struct{ lo, hi units.Unit }{
	units.Length: {100, 199},
	units.Time:   {200, 299},
	units.Angle:  {300, 399},
	units.Mass:   {400, 499},
}

// Check verifies every registry entry: a known dimension, a positive and
// finite scale factor, a nonempty name and symbol, an identifier inside
// the dimension's reserved range, and no duplicate names. Exactly one
// unit per dimension must be the base unit (scale factor 1).
func Check() error {
	namesSeen := make(map[string]units.Unit)
	baseSeen := make(map[units.Dimension]units.Unit)

	for _, u := range units.All() {
		dim, err := units.DimensionOf(u)
		if err != nil {
			return err
		}

		r, ok := idRanges[dim]
		if !ok {
			return fmt.Errorf("unit %s: unreserved dimension %s", u, dim)
		}
		if u < r.lo || u > r.hi {
			return fmt.Errorf("unit %s: identifier %d outside %s range %d-%d",
				u, uint32(u), dim, uint32(r.lo), uint32(r.hi))
		}

		scale, err := units.ScaleToBase(u)
		if err != nil {
			return err
		}
		if !(scale > 0) || math.IsInf(scale, 0) {
			return fmt.Errorf("unit %s: scale factor %v is not positive and finite", u, scale)
		}
		if scale == 1.0 {
			if prev, dup := baseSeen[dim]; dup {
				return fmt.Errorf("dimension %s: both %s and %s claim scale 1", dim, prev, u)
			}
			baseSeen[dim] = u
		}

		name := units.Name(u)
		if name == "" {
			return fmt.Errorf("unit %d: empty name", uint32(u))
		}
		if prev, dup := namesSeen[name]; dup {
			return fmt.Errorf("duplicate unit name %q (%d and %d)", name, uint32(prev), uint32(u))
		}
		namesSeen[name] = u

		if units.Symbol(u) == "" {
			return fmt.Errorf("unit %s: empty symbol", u)
		}
	}

	for dim := range idRanges {
		if _, ok := baseSeen[dim]; !ok {
			return fmt.Errorf("dimension %s: no base unit with scale 1", dim)
		}
	}
	return nil
}
