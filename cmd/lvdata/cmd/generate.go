// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdata/synth"
)

func (a *app) newGenerateCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "generate",
		Short: "Generate a constrained dataset and print its statistics",
		Example: `  lvdata generate --count 11 --min 1 --max 30 --mode-count 1 --seed 42
  lvdata generate --presets presets.yaml --preset box-plot-small -o json`,
		Args: cobra.NoArgs,
		RunE: a.runGenerate,
	}

	f := c.Flags()
	f.Int("count", 0, "number of values")
	f.Int("min", 0, "lowest allowed value")
	f.Int("max", 0, "highest allowed value")
	f.Int("mode-count", 0, "exact number of tied modes (0 = unconstrained)")
	f.Bool("unique", false, "forbid repeated values")
	f.Bool("allow-prime", true, "allow prime values")
	f.Bool("from-factor", false, "draw values sharing a common factor")
	f.Int64("seed", 0, "random seed (unset = time-seeded)")
	f.Int("max-attempts", synth.DefaultMaxAttempts, "candidates to draw before giving up")
	f.String("preset", "", "named preset from --presets")
	f.IntSlice("probe", nil, "values to count in the result")
	f.Duration("timeout", 5*time.Second, "generation time budget")
	return c
}

func (a *app) runGenerate(cmd *cobra.Command, _ []string) error {
	out, err := parseFormat(a.v.GetString("output"))
	if err != nil {
		return err
	}

	cfg, err := a.generateConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), a.v.GetDuration("timeout"))
	defer cancel()

	ds, err := synth.Generate(ctx, cfg)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), out, newReport(ds, a.v.GetIntSlice("probe")))
}

// generateConfig resolves flags, env and config file into a synth.Config.
// With --preset the catalog entry wins; an explicit seed or max-attempts is
// layered on top.
func (a *app) generateConfig() (synth.Config, error) {
	common := []synth.Option{synth.WithLogger(a.log)}
	if a.v.IsSet("seed") {
		common = append(common, synth.WithSeed(a.v.GetInt64("seed")))
	}
	if a.v.IsSet("max-attempts") {
		n := a.v.GetInt("max-attempts")
		if n < 1 {
			return synth.Config{}, fmt.Errorf("max-attempts %d < 1: %w", n, synth.ErrConfiguration)
		}
		common = append(common, synth.WithMaxAttempts(n))
	}

	if name := a.v.GetString("preset"); name != "" {
		cat, err := a.catalog()
		if err != nil {
			return synth.Config{}, err
		}
		return cat.Config(name, common...)
	}

	modes := a.v.GetInt("mode-count")
	if modes < 0 {
		return synth.Config{}, fmt.Errorf("mode-count %d < 0: %w", modes, synth.ErrConfiguration)
	}

	return synth.NewBuilder().
		ValueCount(a.v.GetInt("count")).
		ValueRange(a.v.GetInt("min"), a.v.GetInt("max")).
		ModeCount(modes).
		Unique(a.v.GetBool("unique")).
		AllowPrime(a.v.GetBool("allow-prime")).
		GenerateFromFactor(a.v.GetBool("from-factor")).
		With(common...).
		Build()
}
