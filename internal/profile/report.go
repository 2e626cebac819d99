package profile

import (
	"bytes"
	"encoding/json"
	"os"
)

// SchemaVersion identifies the report document layout. Downstream
// tooling checks it before reading any other field.
const SchemaVersion = 1

// The report key order is part of the contract: consumers may parse the
// document textually, not only as JSON. encoding/json emits struct
// fields in declaration order, which freezes the layout below.

type reportCounts struct {
	CandPairs                  int64 `json:"cand_pairs"`
	AllPairsCheckPairsCalls    int64 `json:"all_pairs_check_pairs_calls"`
	AllPairsBaseStackCalls     int64 `json:"all_pairs_base_stack_calls"`
	AllPairsHBondPairCalls     int64 `json:"all_pairs_hbond_pair_calls"`
	AllPairsHBondPairHCatCalls int64 `json:"all_pairs_hbond_pair_h_catalog_calls"`
	AllPairsLWPairTypeCalls    int64 `json:"all_pairs_lw_pair_type_calls"`
	AllPairsLWGetHBondIJCalls  int64 `json:"all_pairs_lw_get_hbond_ij_calls"`
	BestPairCheckPairsCalls    int64 `json:"best_pair_check_pairs_calls"`
}

type reportTimes struct {
	Total                 int64 `json:"total"`
	BaseInfo              int64 `json:"base_info"`
	AllPairsTotal         int64 `json:"all_pairs_total"`
	AllPairsCandidate     int64 `json:"all_pairs_candidate"`
	AllPairsCheckPairs    int64 `json:"all_pairs_check_pairs"`
	AllPairsBaseStack     int64 `json:"all_pairs_base_stack"`
	AllPairsHBondPair     int64 `json:"all_pairs_hbond_pair"`
	AllPairsHBondPairHCat int64 `json:"all_pairs_hbond_pair_h_catalog"`
	AllPairsLWPairType    int64 `json:"all_pairs_lw_pair_type"`
	AllPairsLWGetHBondIJ  int64 `json:"all_pairs_lw_get_hbond_ij"`
	BestPairTotal         int64 `json:"best_pair_total"`
	BestPairCheckPairs    int64 `json:"best_pair_check_pairs"`
}

type reportDoc struct {
	SchemaVersion int          `json:"schema_version"`
	Input         string       `json:"input"`
	NumResidue    int64        `json:"num_residue"`
	Counts        reportCounts `json:"counts"`
	TimesNS       reportTimes  `json:"times_ns"`
}

// Emit captures the end timestamp and writes the report to the
// destination recorded at activation, truncating any previous content.
// It is a silent no-op when the recorder is disabled, the destination is
// empty, or the destination cannot be written: instrumentation must
// never fail the host run, so the write result is discarded here. The
// only observable symptom of a failure is the absence of the report
// file.
func (p *Profile) Emit() {
	if !p.enabled || p.reportPath == "" {
		return
	}
	p.endNS = NowNS()
	_ = p.emit()
}

// emit does the actual serialization and write, keeping the failure path
// inspectable even though Emit discards it.
func (p *Profile) emit() error {
	doc := reportDoc{
		SchemaVersion: SchemaVersion,
		Input:         p.input,
		NumResidue:    p.numResidue,
		Counts: reportCounts{
			CandPairs:                  p.counts[CounterCandPairs],
			AllPairsCheckPairsCalls:    p.counts[CounterAllPairsCheckPairs],
			AllPairsBaseStackCalls:     p.counts[CounterAllPairsBaseStack],
			AllPairsHBondPairCalls:     p.counts[CounterAllPairsHBondPair],
			AllPairsHBondPairHCatCalls: p.counts[CounterAllPairsHBondPairHCatalog],
			AllPairsLWPairTypeCalls:    p.counts[CounterAllPairsLWPairType],
			AllPairsLWGetHBondIJCalls:  p.counts[CounterAllPairsLWGetHBondIJ],
			BestPairCheckPairsCalls:    p.counts[CounterBestPairCheckPairs],
		},
		TimesNS: reportTimes{
			Total:                 p.endNS - p.beginNS,
			BaseInfo:              p.times[SpanBaseInfo],
			AllPairsTotal:         p.times[SpanAllPairsTotal],
			AllPairsCandidate:     p.times[SpanAllPairsCandidate],
			AllPairsCheckPairs:    p.times[SpanAllPairsCheckPairs],
			AllPairsBaseStack:     p.times[SpanAllPairsBaseStack],
			AllPairsHBondPair:     p.times[SpanAllPairsHBondPair],
			AllPairsHBondPairHCat: p.times[SpanAllPairsHBondPairHCatalog],
			AllPairsLWPairType:    p.times[SpanAllPairsLWPairType],
			AllPairsLWGetHBondIJ:  p.times[SpanAllPairsLWGetHBondIJ],
			BestPairTotal:         p.times[SpanBestPairTotal],
			BestPairCheckPairs:    p.times[SpanBestPairCheckPairs],
		},
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return os.WriteFile(p.reportPath, buf.Bytes(), 0o644)
}
