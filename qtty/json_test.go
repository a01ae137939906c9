package qtty

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/siderust/qtty/units"
)

func TestQuantityMarshalJSON(t *testing.T) {
	t.Run("encodes value and unit id", func(t *testing.T) {
		data, err := json.Marshal(Quantity{Value: 1.5, Unit: units.Kilometer})
		if err != nil {
			t.Fatalf("Marshal returned error: %v", err)
		}
		want := `{"value":1.5,"unit_id":101}`
		if string(data) != want {
			t.Errorf("Marshal = %s, want %s", data, want)
		}
	})

	t.Run("rejects unknown units", func(t *testing.T) {
		_, err := json.Marshal(Quantity{Value: 1.0, Unit: units.Unit(9999)})
		if !errors.Is(err, ErrUnknownUnit) {
			t.Errorf("Marshal error = %v, want ErrUnknownUnit", err)
		}
	})
}

func TestQuantityUnmarshalJSON(t *testing.T) {
	t.Run("decodes value and unit id", func(t *testing.T) {
		var q Quantity
		if err := json.Unmarshal([]byte(`{"value": 24, "unit_id": 202}`), &q); err != nil {
			t.Fatalf("Unmarshal returned error: %v", err)
		}
		want := Quantity{Value: 24.0, Unit: units.Hour}
		if q != want {
			t.Errorf("Unmarshal = %+v, want %+v", q, want)
		}
	})

	t.Run("rejects unknown unit ids", func(t *testing.T) {
		var q Quantity
		err := json.Unmarshal([]byte(`{"value": 1, "unit_id": 9999}`), &q)
		if !errors.Is(err, ErrUnknownUnit) {
			t.Errorf("Unmarshal error = %v, want ErrUnknownUnit", err)
		}
	})

	t.Run("rejects malformed documents", func(t *testing.T) {
		var q Quantity
		if err := json.Unmarshal([]byte(`{"value": "abc"}`), &q); err == nil {
			t.Error("Unmarshal accepted a non-numeric value")
		}
	})
}

func TestQuantityJSONRoundTrip(t *testing.T) {
	for _, u := range units.All() {
		orig := Quantity{Value: 42.5, Unit: u}
		data, err := json.Marshal(orig)
		if err != nil {
			t.Fatalf("Marshal(%s) returned error: %v", u, err)
		}
		var back Quantity
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("Unmarshal(%s) returned error: %v", data, err)
		}
		if back != orig {
			t.Errorf("round trip changed %+v to %+v", orig, back)
		}
	}
}
