package formats

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// Table renders Tabular payloads as aligned plain-text columns.
var Table = &Format{
	Name: "table",
	Render: func(v interface{}) (string, error) {
		t, ok := v.(Tabular)
		if !ok {
			return "", fmt.Errorf("table format: %T has no tabular projection", v)
		}

		var sb strings.Builder
		w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, strings.Join(t.Headers(), "\t"))
		for _, row := range t.Rows() {
			fmt.Fprintln(w, strings.Join(row, "\t"))
		}
		if err := w.Flush(); err != nil {
			return "", err
		}
		return sb.String(), nil
	},
}

func init() {
	if err := Register(Table); err != nil {
		panic(fmt.Sprintf("failed to register table format: %v", err))
	}
}
