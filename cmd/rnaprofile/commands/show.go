package commands

import (
	"github.com/OOAAHH/RNAView/internal/report"
)

// ShowCmd implements the 'show' command.
type ShowCmd struct {
	Path string `arg:"" help:"Profiling report to display"`
}

func (s *ShowCmd) Run(_ *Global) error {
	r, err := report.Load(s.Path)
	if err != nil {
		return err
	}
	renderReport(r)
	return nil
}
