package service

import "testing"

func TestBandOfBoundaries(t *testing.T) {
	cases := []struct {
		p    float64
		want Band
	}{
		{0, BandRendah},
		{49.99, BandRendah},
		{50, BandSedang},
		{74.99, BandSedang},
		{75, BandLolos},
		{100, BandLolos},
	}
	for _, tc := range cases {
		if got := BandOf(tc.p); got != tc.want {
			t.Errorf("BandOf(%v) = %s want %s", tc.p, got, tc.want)
		}
	}
}

func TestLabelOfBoundaries(t *testing.T) {
	cases := []struct {
		p    float64
		want string
	}{
		{39, "Rendah"},
		{40, "Sedang"},
		{59, "Sedang"},
		{60, "Tinggi"},
		{79, "Tinggi"},
		{80, "Sangat Tinggi"},
	}
	for _, tc := range cases {
		if got := LabelOf(tc.p); got != tc.want {
			t.Errorf("LabelOf(%v) = %s want %s", tc.p, got, tc.want)
		}
	}
}

func TestBandCondition(t *testing.T) {
	cases := []struct {
		b    Band
		sql  string
		args int
	}{
		{BandLolos, "prediksi_persentase_kelulusan >= ?", 1},
		{BandSedang, "prediksi_persentase_kelulusan >= ? AND prediksi_persentase_kelulusan < ?", 2},
		{BandRendah, "prediksi_persentase_kelulusan < ?", 1},
	}
	for _, tc := range cases {
		sql, args := BandCondition(tc.b)
		if sql != tc.sql || len(args) != tc.args {
			t.Errorf("BandCondition(%s) = %q %v", tc.b, sql, args)
		}
	}
}
