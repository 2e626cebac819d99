package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestActivateAbsentSignalLeavesRecorderDisabled(t *testing.T) {
	t.Setenv(EnvReportPath, "")

	p := New()
	p.Activate("1ehz.pdb", 76)

	if p.Enabled() {
		t.Fatal("recorder enabled without activation signal")
	}
}

func TestDisabledAccumulationDoesNotTouchState(t *testing.T) {
	t.Setenv(EnvReportPath, "")

	p := New()
	p.Activate("1ehz.pdb", 76)

	p.AddSpan(SpanAllPairsCheckPairs, 500)
	p.AddSpan(SpanBaseInfo, 42)
	p.Inc(CounterCandPairs)
	p.AddHBondCatalog(100)
	p.AddLWGetHBondIJ(100)

	for c := Counter(0); c < numCounters; c++ {
		if got := p.Count(c); got != 0 {
			t.Errorf("counter %s = %d while disabled, want 0", c.Name(), got)
		}
	}
	for s := Span(0); s < numSpans; s++ {
		if got := p.Time(s); got != 0 {
			t.Errorf("span %s = %d while disabled, want 0", s.Name(), got)
		}
	}
}

func TestAddSpanAccumulatesDeltaAndBumpsPairedCounter(t *testing.T) {
	t.Setenv(EnvReportPath, filepath.Join(t.TempDir(), "profile.json"))

	p := New()
	p.Activate("1ehz.pdb", 76)

	for _, delta := range []int64{100, 200, 300} {
		p.AddSpan(SpanAllPairsCheckPairs, delta)
	}

	if got := p.Count(CounterAllPairsCheckPairs); got != 3 {
		t.Errorf("paired counter = %d, want 3", got)
	}
	if got := p.Time(SpanAllPairsCheckPairs); got != 600 {
		t.Errorf("span total = %d, want 600", got)
	}
}

func TestPhaseTotalSpansHaveNoPairedCounter(t *testing.T) {
	t.Setenv(EnvReportPath, filepath.Join(t.TempDir(), "profile.json"))

	p := New()
	p.Activate("1ehz.pdb", 76)

	p.AddSpan(SpanBaseInfo, 10)
	p.AddSpan(SpanAllPairsTotal, 20)
	p.AddSpan(SpanAllPairsCandidate, 30)
	p.AddSpan(SpanBestPairTotal, 40)

	for c := Counter(0); c < numCounters; c++ {
		if got := p.Count(c); got != 0 {
			t.Errorf("counter %s = %d after phase-total adds, want 0", c.Name(), got)
		}
	}
	if got := p.Time(SpanAllPairsTotal); got != 20 {
		t.Errorf("all_pairs_total = %d, want 20", got)
	}
}

func TestNamedAccumulatorsHitTheirSlots(t *testing.T) {
	t.Setenv(EnvReportPath, filepath.Join(t.TempDir(), "profile.json"))

	p := New()
	p.Activate("1ehz.pdb", 76)

	p.AddHBondCatalog(11)
	p.AddHBondCatalog(22)
	p.AddLWGetHBondIJ(33)

	if got := p.Time(SpanAllPairsHBondPairHCatalog); got != 33 {
		t.Errorf("h_catalog total = %d, want 33", got)
	}
	if got := p.Count(CounterAllPairsHBondPairHCatalog); got != 2 {
		t.Errorf("h_catalog calls = %d, want 2", got)
	}
	if got := p.Count(CounterAllPairsLWGetHBondIJ); got != 1 {
		t.Errorf("lw_get_hbond_ij calls = %d, want 1", got)
	}
}

func TestReactivateResetsAllAccumulatedState(t *testing.T) {
	t.Setenv(EnvReportPath, filepath.Join(t.TempDir(), "profile.json"))

	p := New()
	p.Activate("first.pdb", 10)
	p.Inc(CounterCandPairs)
	p.AddSpan(SpanAllPairsCheckPairs, 999)
	p.AddSpan(SpanBaseInfo, 123)

	p.Activate("second.pdb", 20)

	if !p.Enabled() {
		t.Fatal("recorder disabled after re-activation")
	}
	for c := Counter(0); c < numCounters; c++ {
		if got := p.Count(c); got != 0 {
			t.Errorf("counter %s = %d after re-activation, want 0", c.Name(), got)
		}
	}
	for s := Span(0); s < numSpans; s++ {
		if got := p.Time(s); got != 0 {
			t.Errorf("span %s = %d after re-activation, want 0", s.Name(), got)
		}
	}
	if p.input != "second.pdb" {
		t.Errorf("input = %q after re-activation, want %q", p.input, "second.pdb")
	}
}

func TestInputIdentifierTruncatedToFieldCapacity(t *testing.T) {
	t.Setenv(EnvReportPath, filepath.Join(t.TempDir(), "profile.json"))

	long := strings.Repeat("x", 4*fieldCap)
	p := New()
	p.Activate(long, 1)

	if len(p.input) != fieldCap-1 {
		t.Errorf("stored input length = %d, want %d", len(p.input), fieldCap-1)
	}
	if p.input != long[:fieldCap-1] {
		t.Error("stored input is not a prefix of the original value")
	}
}

func TestNowNSMonotonic(t *testing.T) {
	prev := NowNS()
	for i := 0; i < 1000; i++ {
		cur := NowNS()
		if cur < prev {
			t.Fatalf("NowNS went backwards: %d after %d", cur, prev)
		}
		prev = cur
	}
}

func TestUnavailableClockDegradesToZeroDeltas(t *testing.T) {
	orig := nowFunc
	nowFunc = func() int64 { return 0 }
	t.Cleanup(func() { nowFunc = orig })

	t.Setenv(EnvReportPath, filepath.Join(t.TempDir(), "profile.json"))

	p := New()
	p.Activate("1ehz.pdb", 76)

	// Callers bracketing regions with NowNS differences see zeros;
	// accumulation still works and never fails.
	delta := NowNS() - NowNS()
	p.AddSpan(SpanBaseInfo, delta)

	if got := p.Time(SpanBaseInfo); got != 0 {
		t.Errorf("base_info = %d with unavailable clock, want 0", got)
	}
}

func TestEmitWithoutActivationWritesNothing(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvReportPath, "")

	p := New()
	p.Activate("1ehz.pdb", 76)
	p.Inc(CounterCandPairs)
	p.Emit()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("found %d files in report dir, want none", len(entries))
	}
}
