package stats

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSeriesAppendBounds(t *testing.T) {
	s := NewSeries(3)
	for run := 0; run < 5; run++ {
		s.Append(run, int64(run*10))
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	for run := 0; run < 3; run++ {
		if got := s.Value(run); got != int64(run*10) {
			t.Errorf("Value(%d) = %d, want %d", run, got, run*10)
		}
	}
}

func TestSeriesTruncate(t *testing.T) {
	s := NewSeries(5)
	for run := 0; run < 5; run++ {
		s.Append(run, int64(run))
	}

	s.Truncate(7)
	if s.Len() != 5 {
		t.Errorf("Truncate(7): Len() = %d, want 5", s.Len())
	}
	s.Truncate(2)
	if s.Len() != 2 {
		t.Errorf("Truncate(2): Len() = %d, want 2", s.Len())
	}
	s.Truncate(-1)
	if s.Len() != 2 {
		t.Errorf("Truncate(-1): Len() = %d, want 2", s.Len())
	}
}

func TestSeriesValues(t *testing.T) {
	s := NewSeries(4)
	s.Append(0, 3)
	s.Append(1, 1)
	s.Append(2, 2)

	want := []float64{3, 1, 2}
	if diff := cmp.Diff(want, s.Values()); diff != "" {
		t.Fatal(diff)
	}
}

func TestSummary(t *testing.T) {
	s := NewSeries(4)
	for run, v := range []int64{10, 20, 30, 40} {
		s.Append(run, v)
	}

	std := math.Sqrt(500.0 / 3.0)
	se := std / 2
	want := Summary{
		N:      4,
		Min:    10,
		Max:    40,
		Mean:   25,
		Total:  100,
		StdDev: std,
		CLow:   25 - 1.96*se,
		CHigh:  25 + 1.96*se,
	}
	got := s.Summary()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatal(diff)
	}
}

func TestSummarySingle(t *testing.T) {
	s := NewSeries(1)
	s.Append(0, 42)

	want := Summary{N: 1, Min: 42, Max: 42, Mean: 42, Total: 42, CLow: 42, CHigh: 42}
	got := s.Summary()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatal(diff)
	}
}

func TestSummaryEmpty(t *testing.T) {
	s := NewSeries(0)
	s.Append(0, 99)

	if got := s.Summary(); got != (Summary{}) {
		t.Errorf("Summary() = %+v, want zero", got)
	}
}
