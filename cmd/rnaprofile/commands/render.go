package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/OOAAHH/RNAView/internal/report"
)

func headerFormatter() func(format string, vals ...interface{}) string {
	return color.New(color.FgYellow, color.Underline).SprintfFunc()
}

func sectionTitle(format string, args ...interface{}) {
	color.New(color.FgYellow).Add(color.Bold).Printf(format, args...)
}

// fmtMS renders nanoseconds as milliseconds with fixed precision, the
// unit the bench tooling has always reported in.
func fmtMS(ns int64) string {
	return fmt.Sprintf("%.3fms", float64(ns)/1e6)
}

// fmtSpeedup renders a before/after ratio; zero means not computable.
func fmtSpeedup(s float64) string {
	if s == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.2fx", s)
}

func renderReport(r *report.Report) {
	sectionTitle("\nProfile %s (num_residue=%d)\n", r.Input, r.NumResidue)

	tbl := table.New("stage", "time", "calls")
	tbl.WithHeaderFormatter(headerFormatter())
	tbl.AddRow("total", fmtMS(r.Total()), "")
	for _, name := range report.TimeNames()[1:] {
		ns, ok := r.TimesNS[name]
		if !ok {
			continue
		}
		calls := ""
		if c, hasCalls := r.Counts[name+"_calls"]; hasCalls {
			calls = fmt.Sprintf("%d", c)
		}
		tbl.AddRow(name, fmtMS(ns), calls)
	}
	tbl.Print()

	tbl = table.New("counter", "value")
	tbl.WithHeaderFormatter(headerFormatter())
	for _, name := range report.CountNames() {
		if v, ok := r.Counts[name]; ok {
			tbl.AddRow(name, v)
		}
	}
	tbl.Print()

	if stage, ns, ok := r.SlowestStage(); ok {
		fmt.Printf("\nslowest stage: %s %s\n", stage, fmtMS(ns))
	}
}

func renderDiff(before, after *report.Report) {
	sectionTitle("\nProfile comparison: %s vs %s\n", before.Input, after.Input)

	tbl := table.New("stage", "before", "after", "speedup")
	tbl.WithHeaderFormatter(headerFormatter())
	for _, d := range report.DiffTimes(before, after) {
		tbl.AddRow(d.Name, fmtMS(d.Before), fmtMS(d.After), fmtSpeedup(d.Speedup))
	}
	tbl.Print()

	tbl = table.New("counter", "before", "after")
	tbl.WithHeaderFormatter(headerFormatter())
	for _, d := range report.DiffCounts(before, after) {
		tbl.AddRow(d.Name, d.Before, d.After)
	}
	tbl.Print()
}

func renderAggregate(input string, agg report.Aggregate) {
	sectionTitle("\nBench %s (%d runs)\n", input, agg.Runs)

	tbl := table.New("stage", "min", "median", "mean", "max")
	tbl.WithHeaderFormatter(headerFormatter())
	for _, name := range report.TimeNames() {
		st, ok := agg.Times[name]
		if !ok {
			continue
		}
		tbl.AddRow(name, fmtMS(st.Min), fmtMS(st.Median), fmtMS(st.Mean), fmtMS(st.Max))
	}
	tbl.Print()
}
