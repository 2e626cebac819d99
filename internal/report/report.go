// Package report reads profiling reports emitted by instrumented RNAView
// runs and derives the comparisons and aggregates the bench tooling
// prints and persists. It is the consuming side of the report contract;
// the producing side lives in internal/profile.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// SchemaVersion is the report layout this package understands.
const SchemaVersion = 1

var (
	// ErrSchemaVersion indicates a report produced by an incompatible
	// recorder.
	ErrSchemaVersion = errors.New("unsupported report schema version")

	// ErrMissingBlock indicates a structurally valid JSON document that
	// is not a profiling report.
	ErrMissingBlock = errors.New("report is missing a counts or times_ns block")
)

// Report is one emitted profiling document read back in.
type Report struct {
	SchemaVersion int              `json:"schema_version"`
	Input         string           `json:"input"`
	NumResidue    int64            `json:"num_residue"`
	Counts        map[string]int64 `json:"counts"`
	TimesNS       map[string]int64 `json:"times_ns"`
}

// CountNames lists the counts block keys in report order.
func CountNames() []string {
	return []string{
		"cand_pairs",
		"all_pairs_check_pairs_calls",
		"all_pairs_base_stack_calls",
		"all_pairs_hbond_pair_calls",
		"all_pairs_hbond_pair_h_catalog_calls",
		"all_pairs_lw_pair_type_calls",
		"all_pairs_lw_get_hbond_ij_calls",
		"best_pair_check_pairs_calls",
	}
}

// TimeNames lists the times_ns block keys in report order, synthesized
// total first.
func TimeNames() []string {
	return []string{
		"total",
		"base_info",
		"all_pairs_total",
		"all_pairs_candidate",
		"all_pairs_check_pairs",
		"all_pairs_base_stack",
		"all_pairs_hbond_pair",
		"all_pairs_hbond_pair_h_catalog",
		"all_pairs_lw_pair_type",
		"all_pairs_lw_get_hbond_ij",
		"best_pair_total",
		"best_pair_check_pairs",
	}
}

// Parse decodes and validates a report document.
func Parse(data []byte) (*Report, error) {
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	if r.SchemaVersion != SchemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSchemaVersion, r.SchemaVersion, SchemaVersion)
	}
	if r.Counts == nil || r.TimesNS == nil {
		return nil, ErrMissingBlock
	}
	return &r, nil
}

// Load reads and parses the report at path.
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", path, err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("report %s: %w", path, err)
	}
	return r, nil
}

// Total returns the synthesized whole-run duration in nanoseconds.
func (r *Report) Total() int64 { return r.TimesNS["total"] }

// SlowestStage returns the stage (excluding total) with the largest
// accumulated time. ok is false when the report has no stage entries.
func (r *Report) SlowestStage() (name string, ns int64, ok bool) {
	for _, k := range TimeNames()[1:] {
		v, present := r.TimesNS[k]
		if !present {
			continue
		}
		if !ok || v > ns {
			name, ns, ok = k, v, true
		}
	}
	return name, ns, ok
}
