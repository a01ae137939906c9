package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/siderust/qtty/qtty"
	"github.com/siderust/qtty/units"
)

var convertCmd = &cobra.Command{
	Use:   "convert <value> <from-unit> <to-unit>",
	Short: "Convert a value between compatible units",
	Long:  "Convert a numeric value from one unit to another of the same dimension. Units may be given by name, symbol, or numeric ID.",
	Args:  cobra.ExactArgs(3),
	RunE:  runConvert,
}

// conversionResult is the payload rendered by the convert command.
type conversionResult struct {
	Value  float64 `json:"value" yaml:"value"`
	From   string  `json:"from" yaml:"from"`
	Result float64 `json:"result" yaml:"result"`
	To     string  `json:"to" yaml:"to"`
}

func (r conversionResult) Headers() []string {
	return []string{"VALUE", "FROM", "RESULT", "TO"}
}

func (r conversionResult) Rows() [][]string {
	return [][]string{{
		strconv.FormatFloat(r.Value, 'g', -1, 64),
		r.From,
		strconv.FormatFloat(r.Result, 'g', -1, 64),
		r.To,
	}}
}

func runConvert(cmd *cobra.Command, args []string) error {
	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[0], err)
	}

	src, err := resolveUnit(args[1])
	if err != nil {
		return err
	}
	dst, err := resolveUnit(args[2])
	if err != nil {
		return err
	}

	slog.Debug("converting", "value", value, "from", src, "to", dst)

	result, err := qtty.ConvertValue(value, src, dst)
	if err != nil {
		return err
	}

	return render(conversionResult{
		Value:  value,
		From:   units.Name(src),
		Result: result,
		To:     units.Name(dst),
	})
}
