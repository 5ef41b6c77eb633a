package service

import "testing"

func fp(v float64) *float64 { return &v }

func TestRataRataNilaiCountsNullAsZero(t *testing.T) {
	cases := []struct {
		in   []*float64
		want float64
	}{
		{nil, 0},
		{[]*float64{fp(80), fp(90)}, 85},
		{[]*float64{fp(80), nil}, 40},
		{[]*float64{fp(70), fp(80), fp(85)}, 78.33},
	}
	for _, tc := range cases {
		if got := RataRataNilai(tc.in); got != tc.want {
			t.Errorf("RataRataNilai = %v want %v", got, tc.want)
		}
	}
}

func TestPersentaseLolos(t *testing.T) {
	cases := []struct {
		in   []float64
		want int
	}{
		{nil, 0},
		{[]float64{75, 74.9}, 50},
		{[]float64{90, 80, 10}, 67},
		{[]float64{10, 20, 30}, 0},
	}
	for _, tc := range cases {
		if got := PersentaseLolos(tc.in); got != tc.want {
			t.Errorf("PersentaseLolos(%v) = %d want %d", tc.in, got, tc.want)
		}
	}
}
