package commands

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/OOAAHH/RNAView/internal/report"
)

// WatchCmd implements the 'watch' command: it follows a directory that
// a batch run drops profiling reports into and summarizes each one as
// it lands.
type WatchCmd struct {
	Dir string `arg:"" help:"Directory to watch for profiling reports"`

	// A report file may still be mid-write when its event arrives;
	// settle gives the producer time to finish.
	Settle time.Duration `help:"Delay before reading a newly appeared report" default:"200ms"`
}

func (w *WatchCmd) Run(_ *Global) error {
	ctx, cancel := signalContext()
	defer cancel()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.Dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.Dir, err)
	}
	slog.Info("watching for profiling reports", slog.String("dir", w.Dir))

	seen := make(map[string]time.Time)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !strings.HasSuffix(event.Name, ".json") {
				continue
			}
			// Write events arrive in bursts; debounce per file.
			if last, ok := seen[event.Name]; ok && time.Since(last) < w.Settle {
				continue
			}
			seen[event.Name] = time.Now()
			w.summarize(ctx, event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch error", slog.String("error", err.Error()))
		}
	}
}

func (w *WatchCmd) summarize(ctx context.Context, path string) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(w.Settle):
	}

	r, err := report.Load(path)
	if err != nil {
		// Not every JSON file in the directory is a report.
		slog.Debug("skipping file", slog.String("path", path), slog.String("reason", err.Error()))
		return
	}

	line := fmt.Sprintf("%s: input=%s num_residue=%d total=%s",
		filepath.Base(path), r.Input, r.NumResidue, fmtMS(r.Total()))
	if stage, ns, ok := r.SlowestStage(); ok {
		line += fmt.Sprintf(" slowest=%s(%s)", stage, fmtMS(ns))
	}
	fmt.Println(line)
}
