package qtty

import (
	"encoding/json"
	"fmt"

	"github.com/siderust/qtty/units"
)

// wireQuantity is the JSON shape of a quantity: {"value": 1.5, "unit_id": 101}.
// The field names and the numeric unit identifier are part of the wire
// contract shared with non-Go consumers of the C boundary.
type wireQuantity struct {
	Value  float64 `json:"value"`
	UnitID uint32  `json:"unit_id"`
}

// MarshalJSON encodes the quantity as {"value": ..., "unit_id": ...}.
// Quantities carrying an unregistered unit do not encode.
func (q Quantity) MarshalJSON() ([]byte, error) {
	if !units.IsValid(q.Unit) {
		return nil, fmt.Errorf("unit %d: %w", uint32(q.Unit), ErrUnknownUnit)
	}
	return json.Marshal(wireQuantity{Value: q.Value, UnitID: uint32(q.Unit)})
}

// UnmarshalJSON decodes {"value": ..., "unit_id": ...}, rejecting unit
// identifiers outside the registry.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	var w wireQuantity
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if !units.IsValid(units.Unit(w.UnitID)) {
		return fmt.Errorf("unit %d: %w", w.UnitID, ErrUnknownUnit)
	}
	q.Value = w.Value
	q.Unit = units.Unit(w.UnitID)
	return nil
}
