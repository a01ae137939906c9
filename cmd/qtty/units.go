package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/siderust/qtty/units"
)

var dimensionFilter string

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the registered units",
	Long:  "List every unit in the registry with its identifier, dimension, symbol, and scale factor to the dimension's base unit.",
	Args:  cobra.NoArgs,
	RunE:  runUnits,
}

func init() {
	unitsCmd.Flags().StringVarP(&dimensionFilter, "dimension", "d", "", "only list units of this dimension (length|time|angle|mass)")
}

// unitInfo is one row of the units listing.
type unitInfo struct {
	ID        uint32  `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	Symbol    string  `json:"symbol" yaml:"symbol"`
	Dimension string  `json:"dimension" yaml:"dimension"`
	Scale     float64 `json:"scale_to_base" yaml:"scale_to_base"`
}

// unitList renders as a multi-row table.
type unitList []unitInfo

func (unitList) Headers() []string {
	return []string{"ID", "NAME", "SYMBOL", "DIMENSION", "SCALE TO BASE"}
}

func (l unitList) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, u := range l {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(u.ID), 10),
			u.Name,
			u.Symbol,
			u.Dimension,
			strconv.FormatFloat(u.Scale, 'g', -1, 64),
		})
	}
	return rows
}

func runUnits(cmd *cobra.Command, args []string) error {
	list := make(unitList, 0, len(units.All()))
	for _, u := range units.All() {
		dim, err := units.DimensionOf(u)
		if err != nil {
			return err
		}
		if dimensionFilter != "" && dim.String() != dimensionFilter {
			continue
		}
		scale, err := units.ScaleToBase(u)
		if err != nil {
			return err
		}
		list = append(list, unitInfo{
			ID:        uint32(u),
			Name:      units.Name(u),
			Symbol:    units.Symbol(u),
			Dimension: dim.String(),
			Scale:     scale,
		})
	}
	if dimensionFilter != "" && len(list) == 0 {
		return fmt.Errorf("no units in dimension %q", dimensionFilter)
	}
	return render(list)
}
