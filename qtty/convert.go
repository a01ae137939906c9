package qtty

import (
	"errors"
	"fmt"

	"github.com/siderust/qtty/units"
)

// ErrUnknownUnit is returned when an identifier has no registry entry.
// It is the units package sentinel re-exported so callers of the engine
// only need one import for error matching.
var ErrUnknownUnit = units.ErrUnknownUnit

// ErrIncompatibleDimension is returned when both units are registered but
// belong to different physical dimensions.
var ErrIncompatibleDimension = errors.New("incompatible dimensions")

// Compatible reports whether a and b share a physical dimension. Both
// units must be registered; unit validity is checked before dimensions
// are compared.
func Compatible(a, b units.Unit) (bool, error) {
	da, err := units.DimensionOf(a)
	if err != nil {
		return false, err
	}
	db, err := units.DimensionOf(b)
	if err != nil {
		return false, err
	}
	return da == db, nil
}

// ConvertValue converts v from src to dst by normalizing to the dimension's
// base unit and denormalizing to the target: v * scale(src) / scale(dst).
// Keeping a single per-unit scale factor instead of a pairwise table makes
// conversion composable for any unit later added to a dimension.
//
// Both units are validated before dimensions are compared, so an unknown
// identifier reports ErrUnknownUnit even when the other side is unknown
// too. Same-unit conversion returns v bit-for-bit.
func ConvertValue(v float64, src, dst units.Unit) (float64, error) {
	srcDim, err := units.DimensionOf(src)
	if err != nil {
		return 0, err
	}
	dstDim, err := units.DimensionOf(dst)
	if err != nil {
		return 0, err
	}
	if src == dst {
		return v, nil
	}
	if srcDim != dstDim {
		return 0, fmt.Errorf("cannot convert %s to %s: %w", src, dst, ErrIncompatibleDimension)
	}
	srcScale, err := units.ScaleToBase(src)
	if err != nil {
		return 0, err
	}
	dstScale, err := units.ScaleToBase(dst)
	if err != nil {
		return 0, err
	}
	return v * srcScale / dstScale, nil
}
