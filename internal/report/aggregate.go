package report

import "sort"

// Stat summarizes one metric across a set of runs.
type Stat struct {
	Min    int64
	Max    int64
	Mean   int64
	Median int64
}

// Aggregate summarizes a set of reports from repeated runs of the same
// input: per-metric statistics over times_ns, and the counts of the
// first run (counts are deterministic per input, so re-aggregating them
// would only mask a host bug).
type Aggregate struct {
	Runs   int
	Times  map[string]Stat
	Counts map[string]int64
}

// AggregateRuns builds run statistics across reports. Nil or empty input
// yields a zero-run aggregate.
func AggregateRuns(reports []*Report) Aggregate {
	agg := Aggregate{
		Runs:   len(reports),
		Times:  make(map[string]Stat),
		Counts: make(map[string]int64),
	}
	if len(reports) == 0 {
		return agg
	}

	for k, v := range reports[0].Counts {
		agg.Counts[k] = v
	}

	for _, name := range TimeNames() {
		samples := make([]int64, 0, len(reports))
		for _, r := range reports {
			if v, ok := r.TimesNS[name]; ok {
				samples = append(samples, v)
			}
		}
		if len(samples) == 0 {
			continue
		}
		agg.Times[name] = summarize(samples)
	}
	return agg
}

func summarize(samples []int64) Stat {
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })

	var sum int64
	for _, v := range samples {
		sum += v
	}

	n := len(samples)
	st := Stat{
		Min:  samples[0],
		Max:  samples[n-1],
		Mean: sum / int64(n),
	}
	if n%2 == 1 {
		st.Median = samples[n/2]
	} else {
		st.Median = (samples[n/2-1] + samples[n/2]) / 2
	}
	return st
}
