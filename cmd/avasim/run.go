// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/ava-labs/avasim/adversary"
	"github.com/ava-labs/avasim/api"
	"github.com/ava-labs/avasim/config"
	"github.com/ava-labs/avasim/engine"
	"github.com/ava-labs/avasim/logging"
	"github.com/ava-labs/avasim/metrics"
	"github.com/ava-labs/avasim/utils/sampler"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const serverShutdownTimeout = 5 * time.Second

// runtime bundles what every subcommand needs after parsing flags:
// the event log, a logger, an optional HTTP status server, and the
// Prometheus collectors the server exposes.
type runtime struct {
	log     logging.Logger
	events  *logging.EventLog
	metrics *metrics.Metrics
	server  *api.Server
	closers []func()
}

func (r *runtime) Close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		r.closers[i]()
	}
}

// bindFlags binds cmd's fully merged flag set (local flags plus every
// ancestor's persistent flags, merged by cobra before RunE runs) into
// a fresh viper instance, the same BuildViper role config.BuildViper
// plays for the standalone pflag.FlagSet case.
func bindFlags(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	return v, nil
}

// setupRuntime opens the rotating event log, builds a logger at the
// configured level, and — if --serve-api was passed — starts the
// status/metrics/events HTTP surface (spec.md §6/SPEC_FULL.md §6).
func setupRuntime(v *viper.Viper) (*runtime, error) {
	level, err := logging.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return nil, err
	}

	logDir := v.GetString("log-dir")
	if logDir == "" {
		logDir, err = config.DefaultLogDir()
		if err != nil {
			return nil, fmt.Errorf("resolve default log dir: %w", err)
		}
	}
	if err := logging.EnsureDir(logDir); err != nil {
		return nil, fmt.Errorf("create log dir %s: %w", logDir, err)
	}

	logPath := logging.NextLogPath(logDir, "avasim")
	broadcaster := logging.NewBroadcaster()
	eventWriter := io.MultiWriter(logging.NewRotatingWriter(logPath), broadcaster)

	log := logging.New(os.Stderr, level, "avasim")
	events := logging.NewEventLog(eventWriter, func(err error) {
		log.Warn("event log write failed: %s", err)
	})

	rt := &runtime{log: log, events: events}

	registry := prometheus.NewRegistry()
	m := &metrics.Metrics{}
	if err := m.Initialize("avasim", registry); err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}
	rt.metrics = m

	if v.GetBool("serve-api") {
		srv := api.NewServer(v.GetString("api-addr"), registry, broadcaster, log)
		if err := srv.RegisterCheck(api.NewRunCheck("process-up", func() error { return nil }), 0, time.Minute); err != nil {
			return nil, fmt.Errorf("register health check: %w", err)
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil {
				log.Error("api server: %s", err)
			}
		}()
		rt.server = srv
		rt.closers = append(rt.closers, func() {
			ctx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
			defer cancel()
			_ = srv.Shutdown(ctx)
		})
	}

	return rt, nil
}

// runSnowball drives v.GetInt("runs") independent SnowballRuns to
// completion, printing a one-line summary per run (spec.md §4.6/§4.8).
func runSnowball(cmd *cobra.Command, rt *runtime, v *viper.Viper, strategy adversary.Strategy, oracle adversary.ActionOracle) error {
	cfg := config.SnowballFromViper(v)
	if err := cfg.Validate(); err != nil {
		return err
	}

	seed := v.GetInt64("seed")
	runs := v.GetInt("runs")
	for i := 0; i < runs; i++ {
		run := engine.NewSnowballRun(cfg, sampler.NewSource(seed+int64(i)), strategy, oracle)
		run.SetMetrics(rt.metrics)
		ticks, converged := run.Run()
		fmt.Fprintf(cmd.OutOrStdout(), "run %d: ticks=%d converged=%t\n", i, ticks, converged)
	}
	return nil
}

// runAvalanche drives v.GetInt("runs") independent AvalancheRuns for a
// fixed tick budget (the protocol has no built-in termination,
// spec.md §4.8), printing participant 0's accepted-block count per
// run.
func runAvalanche(cmd *cobra.Command, rt *runtime, v *viper.Viper) error {
	cfg := config.AvalancheFromViper(v)
	if err := cfg.Validate(); err != nil {
		return err
	}

	seed := v.GetInt64("seed")
	runs := v.GetInt("runs")
	ticks := v.GetInt("ticks")
	for i := 0; i < runs; i++ {
		run := engine.NewAvalancheRun(cfg, sampler.NewSource(seed+int64(i)), rt.events)
		run.SetMetrics(rt.metrics)
		for t := 0; t < ticks; t++ {
			run.Tick()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "run %d: accepted=%d\n", i, run.AcceptedCount(0))
	}
	return nil
}

// runProtocol sets up shared runtime state (event log, metrics, and
// optionally the --serve-api HTTP surface), dispatches to the
// configured protocol, and — if the HTTP surface is up — blocks for
// an interrupt before tearing it down, so a running --serve-api
// server outlives the simulation runs that produced its metrics.
func runProtocol(cmd *cobra.Command, v *viper.Viper, strategy adversary.Strategy, oracle adversary.ActionOracle) error {
	rt, err := setupRuntime(v)
	if err != nil {
		return err
	}
	defer rt.Close()

	switch v.GetString("protocol") {
	case "snowball":
		err = runSnowball(cmd, rt, v, strategy, oracle)
	case "avalanche":
		err = runAvalanche(cmd, rt, v)
	default:
		return fmt.Errorf("unknown --protocol %q (want snowball or avalanche)", v.GetString("protocol"))
	}
	if err == nil && v.GetBool("serve-api") {
		fmt.Fprintln(cmd.OutOrStdout(), "runs complete; --serve-api still listening, press ctrl-C to exit")
		waitForInterrupt()
	}
	return err
}

// waitForInterrupt blocks until os.Interrupt (SIGINT, ctrl-C) arrives;
// SIGTERM is not caught. It is used by subcommands
// that keep the --serve-api HTTP surface running after the
// simulation runs complete.
func waitForInterrupt() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	<-ch
}
