// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdata/dataset"
)

func (a *app) newStatsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:     "stats VALUE...",
		Short:   "Print statistics for literal values",
		Example: "  lvdata stats 9 1 3 8 3 7 6 --probe 3",
		Args:    cobra.MinimumNArgs(1),
		RunE:    a.runStats,
	}
	c.Flags().IntSlice("probe", nil, "values to count in the dataset")
	return c
}

func (a *app) runStats(cmd *cobra.Command, args []string) error {
	out, err := parseFormat(a.v.GetString("output"))
	if err != nil {
		return err
	}

	values, err := parseInts(args)
	if err != nil {
		return err
	}

	ds := dataset.New(values)
	return render(cmd.OutOrStdout(), out, newReport(ds, a.v.GetIntSlice("probe")))
}

func parseInts(args []string) ([]int, error) {
	values := make([]int, len(args))
	for i, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("value %d: %q is not an integer", i+1, s)
		}
		values[i] = v
	}
	return values, nil
}
