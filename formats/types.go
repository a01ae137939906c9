// Package formats holds the registry of output formats used to render
// conversion results and unit listings. Formats are registered once at
// init time; the registry is read-only afterwards.
package formats

import (
	"fmt"
	"regexp"
	"sort"
)

// Tabular is implemented by payloads that can project themselves as rows
// for the table format. Structured formats (json, yaml) render the payload
// value directly and ignore this interface.
type Tabular interface {
	Headers() []string
	Rows() [][]string
}

// Format renders a payload in one output encoding.
type Format struct {
	// Name is the format identifier (lowercase alphanumeric, dashes,
	// underscores).
	Name string

	// Render returns the payload serialized in this format.
	Render func(v interface{}) (string, error)
}

// registry holds all available output formats
var registry = make(map[string]*Format)

var validName = regexp.MustCompile(`^[a-z0-9_-]+$`)

// Register adds a new output format to the registry.
func Register(format *Format) error {
	if !validName.MatchString(format.Name) {
		return fmt.Errorf("invalid format name %q: must be lowercase alphanumeric with dashes and underscores only", format.Name)
	}
	if format.Render == nil {
		return fmt.Errorf("format %q has no render function", format.Name)
	}
	if _, exists := registry[format.Name]; exists {
		return fmt.Errorf("format %q already registered", format.Name)
	}
	registry[format.Name] = format
	return nil
}

// Get returns an output format by name.
func Get(name string) (*Format, error) {
	format, exists := registry[name]
	if !exists {
		return nil, fmt.Errorf("unknown format %q (available: %v)", name, Names())
	}
	return format, nil
}

// Names returns the registered format names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
