package service

import (
	"testing"

	"snbp_backend/internals/features/snbp/nilai/model"
)

func f(v float64) *float64 { return &v }

func TestComputeAverage(t *testing.T) {
	cases := []struct {
		name   string
		scores []*float64
		want   *float64
	}{
		{"semua terisi", []*float64{f(80), f(85), f(90), f(75), f(70)}, f(80)},
		{"abaikan yang kosong", []*float64{f(80), nil, f(90), nil, nil}, f(85)},
		{"pembulatan", []*float64{f(80), f(85), f(86)}, f(83.67)},
		{"semua kosong", []*float64{nil, nil, nil, nil, nil}, nil},
		{"tanpa input", nil, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeAverage(tc.scores...)
			switch {
			case tc.want == nil && got != nil:
				t.Fatalf("want nil, got %v", *got)
			case tc.want != nil && (got == nil || *got != *tc.want):
				t.Fatalf("want %v, got %v", *tc.want, got)
			}
		})
	}
}

func TestRecomputeIgnoresClientAverage(t *testing.T) {
	m := &model.NilaiModel{Semester1: f(90), Semester3: f(70), RataRata: f(99)}
	Recompute(m)
	if m.RataRata == nil || *m.RataRata != 80 {
		t.Fatalf("rata_rata = %v, want 80", m.RataRata)
	}

	m.SetSemester(1, nil)
	m.SetSemester(3, nil)
	Recompute(m)
	if m.RataRata != nil {
		t.Fatalf("rata_rata should be nil when no semester is present")
	}
}
