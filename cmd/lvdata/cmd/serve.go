// SPDX-License-Identifier: MIT

package cmd

import (
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdata/service"
)

func (a *app) newServeCmd() *cobra.Command {
	def := service.DefaultConfig()

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Long: `Serve dataset generation over HTTP.

Endpoints:
  POST /v1/generate  synthesize a dataset
  POST /v1/stats     statistics for literal values
  GET  /healthz      liveness
  GET  /metrics      Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: a.runServe,
	}

	f := c.Flags()
	f.String("addr", def.Addr, "listen address")
	f.Duration("generate-timeout", def.GenerateTimeout, "time budget per generation")
	f.Int("max-count", def.MaxValueCount, "largest accepted value count or value list")
	f.Int64("max-body-bytes", 0, "request body cap in bytes (0 = derived from max-count)")
	f.Int("max-attempts", def.MaxAttempts, "candidates per generation before giving up")
	f.Duration("read-timeout", def.ReadTimeout, "HTTP read timeout")
	f.Duration("write-timeout", def.WriteTimeout, "HTTP write timeout")
	return c
}

func (a *app) runServe(cmd *cobra.Command, _ []string) error {
	cat, err := a.catalog()
	if err != nil {
		return err
	}

	cfg := service.Config{
		Addr:            a.v.GetString("addr"),
		GenerateTimeout: a.v.GetDuration("generate-timeout"),
		MaxValueCount:   a.v.GetInt("max-count"),
		MaxBodyBytes:    a.v.GetInt64("max-body-bytes"),
		MaxAttempts:     a.v.GetInt("max-attempts"),
		ReadTimeout:     a.v.GetDuration("read-timeout"),
		WriteTimeout:    a.v.GetDuration("write-timeout"),
		Presets:         cat,
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.log.Info("starting server", "addr", cfg.Addr, "presets", len(cat))
	return service.New(cfg, a.log, reg).ListenAndServe(ctx)
}
