package report

// MetricDelta compares one metric across two reports. Speedup is
// before/after and zero when the after side is zero or missing.
type MetricDelta struct {
	Name    string
	Before  int64
	After   int64
	Speedup float64
}

// DiffTimes compares the times_ns blocks of two reports, in report
// order. Metrics absent from both sides are skipped.
func DiffTimes(before, after *Report) []MetricDelta {
	return diff(TimeNames(), before.TimesNS, after.TimesNS)
}

// DiffCounts compares the counts blocks of two reports, in report order.
func DiffCounts(before, after *Report) []MetricDelta {
	return diff(CountNames(), before.Counts, after.Counts)
}

func diff(names []string, before, after map[string]int64) []MetricDelta {
	out := make([]MetricDelta, 0, len(names))
	for _, k := range names {
		b, inBefore := before[k]
		a, inAfter := after[k]
		if !inBefore && !inAfter {
			continue
		}
		d := MetricDelta{Name: k, Before: b, After: a}
		if a != 0 {
			d.Speedup = float64(b) / float64(a)
		}
		out = append(out, d)
	}
	return out
}
