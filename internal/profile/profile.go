// Package profile is the in-process instrumentation recorder for RNAView
// analysis runs. It accumulates a fixed set of call counters and
// nanosecond timing totals while the host analyses a structure, then
// emits a single JSON report at the end of the run.
//
// The recorder is strictly an observer: it never logs, never returns an
// error to the host, and every failure mode degrades to doing nothing.
// When profiling is not activated each accumulation call is a single
// branch on the enabled flag. The recorder is not safe for concurrent
// use; the host's analysis flow is single-threaded by contract.
package profile

import "os"

// EnvReportPath is the activation signal: when this environment variable
// is set and non-empty, profiling is enabled and its value is the path
// the report is written to.
const EnvReportPath = "RNAVIEW_PROFILE_JSON"

// fieldCap bounds the input and destination strings kept in the report
// header. Longer values are truncated, keeping the report size bounded.
const fieldCap = 1024

// Profile holds all recorder state for one analysis run. It is owned by
// the host's top-level run function and threaded by pointer into the
// instrumented call sites. The zero value is a valid, disabled recorder.
type Profile struct {
	enabled    bool
	numResidue int64

	counts [numCounters]int64
	times  [numSpans]int64

	beginNS int64
	endNS   int64

	input      string
	reportPath string
}

// New returns a disabled recorder. It stays inert until Activate finds
// the activation signal set.
func New() *Profile { return &Profile{} }

// Activate reads the activation signal and, when present, resets the
// whole recorder and arms it for the run: the report destination is
// taken verbatim from the environment value, input and numResidue are
// recorded for the report header, and the begin timestamp is captured.
// When the signal is unset or empty the recorder is left disabled and
// every later call on it is a no-op.
//
// Calling Activate again fully resets and re-arms the recorder; it is
// meant to be called once near the start of a run.
func (p *Profile) Activate(input string, numResidue int) {
	dest := os.Getenv(EnvReportPath)
	if dest == "" {
		p.enabled = false
		return
	}

	*p = Profile{
		enabled:    true,
		numResidue: int64(numResidue),
		input:      truncate(input),
		reportPath: truncate(dest),
	}
	p.beginNS = NowNS()
}

// Enabled reports whether the recorder was armed by Activate.
func (p *Profile) Enabled() bool { return p.enabled }

// AddSpan accumulates deltaNS onto the span's timing total and bumps the
// paired call counter, if the span has one. No-op while disabled.
//
// deltaNS is expected to be a non-negative NowNS difference measured by
// the caller around the region of interest. Zero deltas from an
// unavailable clock accumulate as zero; the recorder does not detect
// them.
func (p *Profile) AddSpan(s Span, deltaNS int64) {
	if !p.enabled {
		return
	}
	p.times[s] += deltaNS
	if c := spanCounters[s]; c != noCounter {
		p.counts[c]++
	}
}

// Inc bumps a bare counter by one. No-op while disabled.
func (p *Profile) Inc(c Counter) {
	if !p.enabled {
		return
	}
	p.counts[c]++
}

// AddHBondCatalog records one hydrogen-bond catalog lookup inside the
// all-pairs hbond check.
func (p *Profile) AddHBondCatalog(deltaNS int64) {
	p.AddSpan(SpanAllPairsHBondPairHCatalog, deltaNS)
}

// AddLWGetHBondIJ records one LW hbond(i,j) retrieval inside the
// all-pairs LW classification.
func (p *Profile) AddLWGetHBondIJ(deltaNS int64) {
	p.AddSpan(SpanAllPairsLWGetHBondIJ, deltaNS)
}

// Count returns the accumulated value of c.
func (p *Profile) Count(c Counter) int64 { return p.counts[c] }

// Time returns the accumulated nanoseconds of s.
func (p *Profile) Time(s Span) int64 { return p.times[s] }

func truncate(s string) string {
	if len(s) >= fieldCap {
		return s[:fieldCap-1]
	}
	return s
}
