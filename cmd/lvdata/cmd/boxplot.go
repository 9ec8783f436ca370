// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdata/boxplot"
	"github.com/katalvlaran/lvdata/dataset"
	"github.com/katalvlaran/lvdata/synth"
)

func (a *app) newBoxPlotCmd() *cobra.Command {
	c := &cobra.Command{
		Use:     "boxplot",
		Short:   "Generate a dataset sized for a box-plot grid",
		Example: "  lvdata boxplot --count 11 --grid-min 0 --grid-max 40 --seed 7",
		Args:    cobra.NoArgs,
		RunE:    a.runBoxPlot,
	}

	f := c.Flags()
	f.Int("count", 11, "number of values")
	f.Int("grid-min", 0, "lowest grid line")
	f.Int("grid-max", 40, "highest grid line")
	f.Int64("seed", 0, "random seed (unset = time-seeded)")
	f.Duration("timeout", 5*time.Second, "generation time budget")
	return c
}

// plotView is the serialisable form of a box plot.
type plotView struct {
	Values     []int              `json:"values" yaml:"values"`
	GridMin    int                `json:"grid_min" yaml:"grid_min"`
	GridMax    int                `json:"grid_max" yaml:"grid_max"`
	GridLines  []int              `json:"grid_lines" yaml:"grid_lines"`
	FiveNumber dataset.FiveNumber `json:"five_number" yaml:"five_number"`
}

func (a *app) runBoxPlot(cmd *cobra.Command, _ []string) error {
	out, err := parseFormat(a.v.GetString("output"))
	if err != nil {
		return err
	}

	opts := []synth.Option{synth.WithLogger(a.log)}
	if a.v.IsSet("seed") {
		opts = append(opts, synth.WithSeed(a.v.GetInt64("seed")))
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), a.v.GetDuration("timeout"))
	defer cancel()

	plot, err := boxplot.Generate(ctx, a.v.GetInt("count"),
		a.v.GetInt("grid-min"), a.v.GetInt("grid-max"), boxplot.WithSynth(opts...))
	if err != nil {
		return err
	}

	gridMin, gridMax := plot.GridRange()
	return render(cmd.OutOrStdout(), out, plotView{
		Values:     plot.Dataset().Values(),
		GridMin:    gridMin,
		GridMax:    gridMax,
		GridLines:  plot.GridLines(),
		FiveNumber: plot.FiveNumber(),
	})
}

func (p plotView) table() string {
	f := p.FiveNumber
	rows := [][]string{
		{"minimum", strconv.Itoa(f.Lowest)},
		{"first quartile", strconv.FormatFloat(f.FirstQuartile, 'g', -1, 64)},
		{"median", strconv.FormatFloat(f.Median, 'g', -1, 64)},
		{"third quartile", strconv.FormatFloat(f.ThirdQuartile, 'g', -1, 64)},
		{"maximum", strconv.Itoa(f.Highest)},
		{"grid", strconv.Itoa(p.GridMin) + ".." + strconv.Itoa(p.GridMax)},
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		valuesStyle.Render(joinInts(p.Values)),
		newTable("summary", "value").Rows(rows...).String(),
	)
}
