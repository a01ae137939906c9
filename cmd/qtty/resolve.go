package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/siderust/qtty/units"
)

// resolveUnit turns a command-line argument into a registered unit. It
// accepts the numeric identifier, the unit name (case-insensitive, spaces
// or dashes, e.g. "julian-year"), or the unit symbol.
func resolveUnit(arg string) (units.Unit, error) {
	if n, err := strconv.ParseUint(arg, 10, 32); err == nil {
		u := units.Unit(n)
		if !units.IsValid(u) {
			return 0, fmt.Errorf("unknown unit id %d", n)
		}
		return u, nil
	}

	normalized := strings.ToLower(strings.ReplaceAll(arg, "-", " "))
	for _, u := range units.All() {
		if strings.ToLower(units.Name(u)) == normalized || units.Symbol(u) == arg {
			return u, nil
		}
	}
	return 0, fmt.Errorf("unknown unit %q (try 'qtty units' for the full list)", arg)
}
