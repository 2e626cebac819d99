package commands

import (
	"context"
	"log/slog"

	"github.com/OOAAHH/RNAView/internal/bench"
	"github.com/OOAAHH/RNAView/internal/config"
	"github.com/OOAAHH/RNAView/internal/gitrev"
	"github.com/OOAAHH/RNAView/internal/history"
)

// BenchCmd implements the 'bench' command.
type BenchCmd struct{}

func (b *BenchCmd) Run(_ *Global, root *CLI) error {
	ctx, cancel := signalContext()
	defer cancel()

	bn, cleanup, err := buildBench(root.Config)
	if err != nil {
		return err
	}
	defer cleanup()

	return runBench(ctx, bn)
}

// buildBench loads environment and config and assembles a Bench with
// its history store. The returned cleanup closes the store.
func buildBench(configPath string, opts ...bench.Option) (*bench.Bench, func(), error) {
	if err := config.LoadEnv(); err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {}
	if cfg.HistoryDB != "" {
		store, err := history.Open(cfg.HistoryDB)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, bench.WithStore(store))
		cleanup = func() { _ = store.Close() }
	}

	if cfg.Revision == "" {
		if rev := gitrev.Head("."); rev != "" {
			opts = append(opts, bench.WithRevision(rev))
			slog.Debug("stamping bench runs with checkout revision", slog.String("revision", rev))
		}
	}

	return bench.New(cfg, opts...), cleanup, nil
}

func runBench(ctx context.Context, bn *bench.Bench) error {
	results, err := bn.Run(ctx)
	if err != nil {
		return err
	}
	for _, res := range results {
		renderAggregate(res.Input, res.Aggregate)
	}
	return nil
}
