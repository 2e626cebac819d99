package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

// Global context shared by subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Bench configuration file path" default:"bench.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Show    ShowCmd    `cmd:"" help:"Pretty-print one profiling report"`
	Compare CompareCmd `cmd:"" help:"Compare two profiling reports stage by stage"`
	Bench   BenchCmd   `cmd:"" help:"Run the configured benchmark and summarize the reports"`
	Watch   WatchCmd   `cmd:"" help:"Watch a directory and summarize profiling reports as they appear"`
	Daemon  DaemonCmd  `cmd:"" help:"Run recurring benchmarks and expose Prometheus metrics"`
}

// AfterApply runs after flag parsing; sets up logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// signalContext returns a context canceled by SIGINT/SIGTERM, for the
// long-running commands.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
