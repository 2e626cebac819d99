package commands

import (
	"github.com/OOAAHH/RNAView/internal/report"
)

// CompareCmd implements the 'compare' command.
type CompareCmd struct {
	Before string `arg:"" help:"Baseline profiling report"`
	After  string `arg:"" help:"Profiling report to compare against the baseline"`
}

func (c *CompareCmd) Run(_ *Global) error {
	before, err := report.Load(c.Before)
	if err != nil {
		return err
	}
	after, err := report.Load(c.After)
	if err != nil {
		return err
	}
	renderDiff(before, after)
	return nil
}
