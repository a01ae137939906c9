package qtty

import (
	"errors"
	"testing"

	"github.com/siderust/qtty/units"
)

func TestNew(t *testing.T) {
	t.Run("stores value unchanged", func(t *testing.T) {
		q, err := New(1000.0, units.Meter)
		if err != nil {
			t.Fatalf("New returned error: %v", err)
		}
		if q.Value != 1000.0 || q.Unit != units.Meter {
			t.Errorf("New(1000, meter) = %+v", q)
		}
	})

	t.Run("rejects unknown units", func(t *testing.T) {
		if _, err := New(1.0, units.Unit(9999)); !errors.Is(err, ErrUnknownUnit) {
			t.Errorf("New(1, 9999) error = %v, want ErrUnknownUnit", err)
		}
	})
}

func TestQuantityConvert(t *testing.T) {
	t.Run("wraps the converted value in the target unit", func(t *testing.T) {
		q := Quantity{Value: 1000.0, Unit: units.Meter}
		got, err := q.Convert(units.Kilometer)
		if err != nil {
			t.Fatalf("Convert returned error: %v", err)
		}
		want := Quantity{Value: 1.0, Unit: units.Kilometer}
		if got != want {
			t.Errorf("Convert = %+v, want %+v", got, want)
		}
	})

	t.Run("source quantity is untouched", func(t *testing.T) {
		q := Quantity{Value: 2.0, Unit: units.Hour}
		if _, err := q.Convert(units.Minute); err != nil {
			t.Fatalf("Convert returned error: %v", err)
		}
		if q.Value != 2.0 || q.Unit != units.Hour {
			t.Errorf("source quantity mutated: %+v", q)
		}
	})

	t.Run("propagates engine errors", func(t *testing.T) {
		q := Quantity{Value: 1.0, Unit: units.Meter}
		if _, err := q.Convert(units.Second); !errors.Is(err, ErrIncompatibleDimension) {
			t.Errorf("Convert(meter -> second) error = %v, want ErrIncompatibleDimension", err)
		}
		bad := Quantity{Value: 1.0, Unit: units.Unit(9999)}
		if _, err := bad.Convert(units.Meter); !errors.Is(err, ErrUnknownUnit) {
			t.Errorf("Convert(9999 -> meter) error = %v, want ErrUnknownUnit", err)
		}
	})
}

func TestQuantityString(t *testing.T) {
	tests := []struct {
		q    Quantity
		want string
	}{
		{Quantity{1.5, units.Kilometer}, "1.5 Km"},
		{Quantity{180, units.Degree}, "180 Deg"},
		{Quantity{0.25, units.Hour}, "0.25 h"},
	}

	for _, tt := range tests {
		if got := tt.q.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
