package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-co-op/gocron/v2"
	prom "github.com/prometheus/client_golang/prometheus"
	promcollect "github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/OOAAHH/RNAView/internal/bench"
)

// DaemonCmd implements the 'daemon' command: recurring benchmarks with
// a Prometheus scrape endpoint, for unattended perf-regression
// tracking.
type DaemonCmd struct {
	Interval time.Duration `help:"Time between scheduled bench runs" default:"1h"`
	Listen   string        `help:"Address for the /metrics endpoint" default:":9090"`
}

func (d *DaemonCmd) Run(_ *Global, root *CLI) error {
	ctx, cancel := signalContext()
	defer cancel()

	registry := prom.NewRegistry()
	registry.MustRegister(
		promcollect.NewGoCollector(),
		promcollect.NewProcessCollector(promcollect.ProcessCollectorOpts{}),
	)
	recorder := bench.NewPrometheusRecorder(registry)

	bn, cleanup, err := buildBench(root.Config, bench.WithRecorder(recorder))
	if err != nil {
		return err
	}
	defer cleanup()

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(d.Interval),
		gocron.NewTask(func() {
			if err := runBench(ctx, bn); err != nil {
				slog.Error("scheduled bench failed", slog.String("error", err.Error()))
			}
		}),
		gocron.WithName("bench"),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("schedule bench job: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	server := &http.Server{
		Addr:              d.Listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("serving metrics", slog.String("addr", d.Listen))
		errCh <- server.ListenAndServe()
	}()

	scheduler.Start()
	slog.Info("bench daemon started", slog.Duration("interval", d.Interval))

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = scheduler.Shutdown()
			return fmt.Errorf("metrics server: %w", err)
		}
	}

	slog.Info("shutting down bench daemon")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	_ = server.Shutdown(shutdownCtx)
	return scheduler.Shutdown()
}
