package statistics

import (
	"math"
	"testing"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 0.01 }

func fp(v float64) *float64 { return &v }

func TestMean(t *testing.T) {
	if got := Mean(nil); got != 0 {
		t.Fatalf("Mean(nil)=%v want 0", got)
	}
	if got := Mean([]float64{80, 90}); got != 85 {
		t.Fatalf("Mean([80 90])=%v want 85", got)
	}
}

func TestMinMaxEmpty(t *testing.T) {
	if Min(nil) != 0 || Max(nil) != 0 {
		t.Fatalf("empty min/max must be 0, got %v/%v", Min(nil), Max(nil))
	}
	if StdDev(nil) != 0 {
		t.Fatalf("empty stddev must be 0")
	}
}

func TestStdDevRepeated(t *testing.T) {
	for _, x := range []float64{0, 0.1, 77.7, 100} {
		if got := StdDev([]float64{x, x, x}); got != 0 {
			t.Errorf("StdDev(%v x3)=%v want 0", x, got)
		}
	}
}

func TestMinMaxNormalize(t *testing.T) {
	cases := []struct {
		name        string
		x, min, max float64
		want        float64
	}{
		{"degenerate equal", 50, 70, 70, 0},
		{"degenerate inverted", 90, 100, 70, 0},
		{"at min", 70, 70, 100, 0},
		{"at max", 100, 70, 100, 100},
		{"middle", 85, 70, 100, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MinMaxNormalize(tc.x, tc.min, tc.max); !approx(got, tc.want) {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestNormalizePreservesOrder(t *testing.T) {
	values := []float64{91.5, 70, 88, 100, 75.25, 70, 99.9}
	min, max := Min(values), Max(values)
	for i := range values {
		for j := range values {
			if values[i] < values[j] && MinMaxNormalize(values[i], min, max) > MinMaxNormalize(values[j], min, max) {
				t.Fatalf("order broken for %v < %v", values[i], values[j])
			}
		}
	}
}

func TestScenario(t *testing.T) {
	values := []float64{70, 80, 90, 100}
	if Mean(values) != 85 || Min(values) != 70 || Max(values) != 100 {
		t.Fatalf("mean/min/max = %v/%v/%v", Mean(values), Min(values), Max(values))
	}
	if sd := StdDev(values); !approx(sd, 11.18) {
		t.Fatalf("std=%v want ≈11.18", sd)
	}
	want := []float64{0, 33.33, 66.67, 100}
	for i, v := range values {
		if got := MinMaxNormalize(v, 70, 100); !approx(got, want[i]) {
			t.Errorf("normalize(%v)=%v want %v", v, got, want[i])
		}
	}
}

func TestHistogramBuckets(t *testing.T) {
	values := []float64{0, 65, 70, 74.99, 75, 89, 95, 99.5, 100}
	counts := HistogramBuckets(values, DefaultGradeEdges)
	want := []int{2, 2, 1, 0, 1, 0, 3}
	if len(counts) != len(want) {
		t.Fatalf("len=%d want %d", len(counts), len(want))
	}
	total := 0
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("bucket %d = %d want %d", i, counts[i], want[i])
		}
		total += counts[i]
	}
	if total != len(values) {
		t.Fatalf("buckets not exhaustive: %d of %d", total, len(values))
	}
}

func TestHistogramOutOfRangeAndBadEdges(t *testing.T) {
	counts := HistogramBuckets([]float64{-1, 101}, DefaultGradeEdges)
	for i, c := range counts {
		if c != 0 {
			t.Errorf("bucket %d counted out-of-range value", i)
		}
	}
	if got := HistogramBuckets([]float64{1, 2}, []float64{5}); len(got) != 0 {
		t.Fatalf("single edge should give no buckets, got %v", got)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]*float64{fp(70), nil, fp(80), fp(90), nil, fp(100)})
	if s.ValidCount != 4 || s.InvalidCount != 2 || s.TotalCount != 6 {
		t.Fatalf("counts = %+v", s)
	}
	if s.Mean != 85 || s.Min != 70 || s.Max != 100 {
		t.Fatalf("summary = %+v", s)
	}

	empty := Summarize([]*float64{nil, nil})
	if empty.Mean != 0 || empty.Min != 0 || empty.Max != 0 || empty.InvalidCount != 2 {
		t.Fatalf("all-missing summary = %+v", empty)
	}
	if MeanPresent([]*float64{nil, fp(80), fp(90)}) != 85 {
		t.Fatalf("MeanPresent should skip nil")
	}
}

func TestIQROutliers(t *testing.T) {
	values := []float64{80, 81, 82, 83, 84, 85, 20}
	out := IQROutliers(values)
	if !out[6] {
		t.Fatalf("expected index 6 flagged, got %v", out)
	}
	if len(out) != 1 {
		t.Fatalf("expected one outlier, got %v", out)
	}
	if got := IQROutliers([]float64{1, 100, 1000}); len(got) != 0 {
		t.Fatalf("fewer than 4 values must not flag, got %v", got)
	}
}
