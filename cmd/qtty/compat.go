package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/siderust/qtty/qtty"
	"github.com/siderust/qtty/units"
)

var compatCmd = &cobra.Command{
	Use:   "compat <unit-a> <unit-b>",
	Short: "Check whether two units are convertible",
	Long:  "Report whether two units share a physical dimension and can therefore be converted into each other.",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompat,
}

// compatResult is the payload rendered by the compat command.
type compatResult struct {
	A          string `json:"a" yaml:"a"`
	B          string `json:"b" yaml:"b"`
	Compatible bool   `json:"compatible" yaml:"compatible"`
}

func (r compatResult) Headers() []string {
	return []string{"A", "B", "COMPATIBLE"}
}

func (r compatResult) Rows() [][]string {
	return [][]string{{r.A, r.B, strconv.FormatBool(r.Compatible)}}
}

func runCompat(cmd *cobra.Command, args []string) error {
	a, err := resolveUnit(args[0])
	if err != nil {
		return err
	}
	b, err := resolveUnit(args[1])
	if err != nil {
		return err
	}

	compatible, err := qtty.Compatible(a, b)
	if err != nil {
		return err
	}

	return render(compatResult{
		A:          units.Name(a),
		B:          units.Name(b),
		Compatible: compatible,
	})
}
