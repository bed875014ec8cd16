// Package stats holds the sample series collected by the latency probe
// and boils them down to per-task summaries.
package stats

import (
	gostats "github.com/GaryBoone/GoStats/stats"
	"gonum.org/v1/gonum/stat"
)

// z score for a 95% confidence interval.
const z95 = 1.96

type (
	// Record is one sample: the run it was taken in and a value in
	// microseconds.
	Record struct {
		Run   int
		Value int64
	}

	// Series is an append-only run of samples owned by a single task.
	// Appends beyond the capacity fixed at construction are dropped.
	Series struct {
		records []Record
	}

	// Summary describes one series. Values are microseconds.
	Summary struct {
		N      int
		Min    float64
		Max    float64
		Mean   float64
		Total  float64
		StdDev float64
		CLow   float64
		CHigh  float64
	}
)

func NewSeries(capacity int) *Series {
	return &Series{records: make([]Record, 0, capacity)}
}

func (s *Series) Append(run int, value int64) {
	if len(s.records) == cap(s.records) {
		return
	}
	s.records = append(s.records, Record{Run: run, Value: value})
}

func (s *Series) Len() int {
	return len(s.records)
}

// Value returns the sample recorded for the given run.
func (s *Series) Value(run int) int64 {
	return s.records[run].Value
}

// Truncate drops all samples past the first n.
func (s *Series) Truncate(n int) {
	if n >= 0 && n < len(s.records) {
		s.records = s.records[:n]
	}
}

// Values returns the samples as floats, in run order.
func (s *Series) Values() []float64 {
	vals := make([]float64, len(s.records))
	for i, r := range s.records {
		vals[i] = float64(r.Value)
	}
	return vals
}

func (s *Series) Summary() Summary {
	if len(s.records) == 0 {
		return Summary{}
	}

	var acc gostats.Stats
	var total int64
	for _, r := range s.records {
		acc.Update(float64(r.Value))
		total += r.Value
	}

	sum := Summary{
		N:     acc.Count(),
		Min:   acc.Min(),
		Max:   acc.Max(),
		Mean:  acc.Mean(),
		Total: float64(total),
	}

	// The sample standard deviation needs at least two samples.
	if len(s.records) > 1 {
		vals := s.Values()
		m, std := stat.MeanStdDev(vals, nil)
		se := stat.StdErr(std, float64(len(vals)))
		sum.StdDev = std
		sum.CLow = m - z95*se
		sum.CHigh = m + z95*se
	} else {
		sum.CLow = sum.Mean
		sum.CHigh = sum.Mean
	}
	return sum
}
