// rnaprofile is the companion tool for RNAView's profiling
// instrumentation: it pretty-prints and compares the JSON reports the
// recorder emits, benches instrumented binaries, and tracks results
// over time.
package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/OOAAHH/RNAView/cmd/rnaprofile/commands"
)

var version = "dev"

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("rnaprofile"),
		kong.Description("Inspect, compare, and bench RNAView profiling reports."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	err := ctx.Run(&commands.Global{Logger: slog.Default()})
	ctx.FatalIfErrorf(err)
}
