// SPDX-License-Identifier: MIT

// Package cmd implements the lvdata command line.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvdata/preset"
)

const envPrefix = "LVDATA"

// app carries state shared by every subcommand.
type app struct {
	v   *viper.Viper
	log logr.Logger
}

// Execute runs the root command against os.Args.
func Execute() error {
	root := NewRootCmd()
	if err := root.ExecuteContext(context.Background()); err != nil {
		printError(root, err)
		return err
	}
	return nil
}

// NewRootCmd assembles the command tree. Each call gets its own viper
// instance so commands can be built repeatedly in tests.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: logr.Discard()}

	root := &cobra.Command{
		Use:   "lvdata",
		Short: "Constrained integer dataset synthesizer",
		Long: `lvdata draws random integer datasets under constraints (value count,
range, number of modes, uniqueness, primes, common factor) and reports
their descriptive statistics.

Every flag can also be set through an LVDATA_ environment variable
(LVDATA_MODE_COUNT=2) or a config file passed with --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (yaml, toml or json)")
	pf.CountP("verbose", "v", "log verbosity, repeat for more detail")
	pf.StringP("output", "o", string(formatTable), "output format: table, json or yaml")
	pf.String("presets", "", "preset catalog file (yaml or toml)")

	root.AddCommand(
		a.newGenerateCmd(),
		a.newStatsCmd(),
		a.newBoxPlotCmd(),
		a.newServeCmd(),
		a.newPresetsCmd(),
		newVersionCmd(),
	)
	return root
}

// init binds flags, environment and config file into viper and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	if err := bindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	log, err := newLogger(a.v.GetInt("verbose"))
	if err != nil {
		return err
	}
	a.log = log
	return nil
}

// bindFlags registers every flag of fs under its own name, so the flag value
// wins over LVDATA_ env and config file only when it was set explicitly.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err == nil {
			err = v.BindPFlag(f.Name, f)
		}
	})
	return err
}

// catalog loads the preset file named by --presets; no file means an empty catalog.
func (a *app) catalog() (preset.Catalog, error) {
	path := a.v.GetString("presets")
	if path == "" {
		return preset.Catalog{}, nil
	}
	return preset.Load(path)
}

// newLogger returns a zap-backed logr.Logger writing to stderr. Verbosity n
// enables logr V(n) lines.
func newLogger(verbosity int) (logr.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-verbosity))
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	z, err := cfg.Build()
	if err != nil {
		return logr.Discard(), fmt.Errorf("build logger: %w", err)
	}
	return zapr.NewLogger(z), nil
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", cmd.Name(), err)
}
