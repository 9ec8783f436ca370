// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"
	"k8s.io/utils/ptr"

	"github.com/katalvlaran/lvdata/preset"
)

func (a *app) newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "presets",
		Short:   "List the presets in --presets",
		Example: "  lvdata presets --presets presets.toml",
		Args:    cobra.NoArgs,
		RunE:    a.runPresets,
	}
}

// presetList keeps catalog order stable for every output format.
type presetList struct {
	Names   []string       `json:"names" yaml:"names"`
	Presets preset.Catalog `json:"presets" yaml:"presets"`
}

func (a *app) runPresets(cmd *cobra.Command, _ []string) error {
	out, err := parseFormat(a.v.GetString("output"))
	if err != nil {
		return err
	}
	if a.v.GetString("presets") == "" {
		return errors.New("no preset file: pass --presets or set LVDATA_PRESETS")
	}

	cat, err := a.catalog()
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), out, presetList{Names: cat.Names(), Presets: cat})
}

func (l presetList) table() string {
	rows := make([][]string, 0, len(l.Names))
	for _, name := range l.Names {
		p := l.Presets[name]
		rows = append(rows, []string{
			name,
			strconv.Itoa(p.Count),
			strconv.Itoa(p.Min) + ".." + strconv.Itoa(p.Max),
			strconv.Itoa(p.ModeCount),
			strconv.FormatBool(p.Unique),
			strconv.FormatBool(ptr.Deref(p.AllowPrime, true)),
			strconv.FormatBool(p.FromFactor),
		})
	}
	return newTable("name", "count", "range", "modes", "unique", "primes", "factor").Rows(rows...).String()
}
