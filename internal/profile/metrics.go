package profile

// Counter identifies one monotonically increasing event count. The values
// index a fixed array inside Profile, so recording a count is a single
// add with no map or string lookup.
type Counter int

const (
	CounterCandPairs Counter = iota
	CounterAllPairsCheckPairs
	CounterAllPairsBaseStack
	CounterAllPairsHBondPair
	CounterAllPairsHBondPairHCatalog
	CounterAllPairsLWPairType
	CounterAllPairsLWGetHBondIJ
	CounterBestPairCheckPairs

	numCounters
)

// Span identifies one timed code region whose elapsed nanoseconds are
// accumulated across all invocations during a run.
type Span int

const (
	SpanBaseInfo Span = iota
	SpanAllPairsTotal
	SpanAllPairsCandidate
	SpanAllPairsCheckPairs
	SpanAllPairsBaseStack
	SpanAllPairsHBondPair
	SpanAllPairsHBondPairHCatalog
	SpanAllPairsLWPairType
	SpanAllPairsLWGetHBondIJ
	SpanBestPairTotal
	SpanBestPairCheckPairs

	numSpans
)

// noCounter marks spans that are cumulative phase totals rather than
// per-call timings.
const noCounter Counter = -1

// counterNames holds the report keys for the counts block, in emission order.
var counterNames = [numCounters]string{
	CounterCandPairs:                 "cand_pairs",
	CounterAllPairsCheckPairs:        "all_pairs_check_pairs_calls",
	CounterAllPairsBaseStack:         "all_pairs_base_stack_calls",
	CounterAllPairsHBondPair:         "all_pairs_hbond_pair_calls",
	CounterAllPairsHBondPairHCatalog: "all_pairs_hbond_pair_h_catalog_calls",
	CounterAllPairsLWPairType:        "all_pairs_lw_pair_type_calls",
	CounterAllPairsLWGetHBondIJ:      "all_pairs_lw_get_hbond_ij_calls",
	CounterBestPairCheckPairs:        "best_pair_check_pairs_calls",
}

// spanNames holds the report keys for the times_ns block, in emission order
// (the synthesized "total" entry precedes them).
var spanNames = [numSpans]string{
	SpanBaseInfo:                  "base_info",
	SpanAllPairsTotal:             "all_pairs_total",
	SpanAllPairsCandidate:         "all_pairs_candidate",
	SpanAllPairsCheckPairs:        "all_pairs_check_pairs",
	SpanAllPairsBaseStack:         "all_pairs_base_stack",
	SpanAllPairsHBondPair:         "all_pairs_hbond_pair",
	SpanAllPairsHBondPairHCatalog: "all_pairs_hbond_pair_h_catalog",
	SpanAllPairsLWPairType:        "all_pairs_lw_pair_type",
	SpanAllPairsLWGetHBondIJ:      "all_pairs_lw_get_hbond_ij",
	SpanBestPairTotal:             "best_pair_total",
	SpanBestPairCheckPairs:        "best_pair_check_pairs",
}

// spanCounters pairs each span with the counter bumped alongside it.
// Phase totals carry noCounter: their time accumulates without a call count.
var spanCounters = [numSpans]Counter{
	SpanBaseInfo:                  noCounter,
	SpanAllPairsTotal:             noCounter,
	SpanAllPairsCandidate:         noCounter,
	SpanAllPairsCheckPairs:        CounterAllPairsCheckPairs,
	SpanAllPairsBaseStack:         CounterAllPairsBaseStack,
	SpanAllPairsHBondPair:         CounterAllPairsHBondPair,
	SpanAllPairsHBondPairHCatalog: CounterAllPairsHBondPairHCatalog,
	SpanAllPairsLWPairType:        CounterAllPairsLWPairType,
	SpanAllPairsLWGetHBondIJ:      CounterAllPairsLWGetHBondIJ,
	SpanBestPairTotal:             noCounter,
	SpanBestPairCheckPairs:        CounterBestPairCheckPairs,
}

// Name returns the report key for c.
func (c Counter) Name() string { return counterNames[c] }

// Name returns the report key for s.
func (s Span) Name() string { return spanNames[s] }
