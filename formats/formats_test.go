package formats

import (
	"strings"
	"testing"
)

// rowPayload is a minimal Tabular payload for testing.
type rowPayload struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

func (p rowPayload) Headers() []string { return []string{"NAME", "COUNT"} }
func (p rowPayload) Rows() [][]string  { return [][]string{{p.Name, "3"}} }

func TestRegister(t *testing.T) {
	t.Run("rejects invalid names", func(t *testing.T) {
		err := Register(&Format{Name: "Bad Name", Render: func(interface{}) (string, error) { return "", nil }})
		if err == nil {
			t.Error("Register accepted an invalid format name")
		}
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		if err := Register(Table); err == nil {
			t.Error("Register accepted a duplicate format")
		}
	})

	t.Run("rejects missing render function", func(t *testing.T) {
		if err := Register(&Format{Name: "empty"}); err == nil {
			t.Error("Register accepted a format with no render function")
		}
	})
}

func TestGet(t *testing.T) {
	for _, name := range []string{"table", "json", "yaml"} {
		if _, err := Get(name); err != nil {
			t.Errorf("Get(%q) returned error: %v", name, err)
		}
	}
	if _, err := Get("csv"); err == nil {
		t.Error("Get(\"csv\") should fail, format not registered")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	want := []string{"json", "table", "yaml"}
	for _, w := range want {
		found := false
		for _, n := range names {
			if n == w {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Names() = %v, missing %q", names, w)
		}
	}
}

func TestTableRender(t *testing.T) {
	out, err := Table.Render(rowPayload{Name: "meter", Count: 3})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.Contains(out, "NAME") || !strings.Contains(out, "meter") {
		t.Errorf("table output missing expected content:\n%s", out)
	}

	t.Run("rejects non-tabular payloads", func(t *testing.T) {
		if _, err := Table.Render(42); err == nil {
			t.Error("Render accepted a payload with no tabular projection")
		}
	})
}

func TestJSONRender(t *testing.T) {
	out, err := JSON.Render(rowPayload{Name: "meter", Count: 3})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.Contains(out, `"name": "meter"`) {
		t.Errorf("json output missing name field:\n%s", out)
	}
}

func TestYAMLRender(t *testing.T) {
	out, err := YAML.Render(rowPayload{Name: "meter", Count: 3})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.Contains(out, "name: meter") {
		t.Errorf("yaml output missing name field:\n%s", out)
	}
}
