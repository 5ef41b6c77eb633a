package service

import (
	"testing"

	prediksiModel "snbp_backend/internals/features/snbp/prediksi/model"
	sekolahModel "snbp_backend/internals/features/snbp/sekolah/model"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

func scenario() []NilaiRow {
	return []NilaiRow{
		{Nama: "A", RataRata: fp(70), Semesters: [5]*float64{fp(70), fp(70)}, PeringkatSekolah: ip(4)},
		{Nama: "B", RataRata: fp(80), Semesters: [5]*float64{fp(80)}, PeringkatSekolah: ip(3), JumlahPrestasi: 1},
		{Nama: "C", RataRata: fp(90), Semesters: [5]*float64{fp(90)}, PeringkatSekolah: ip(2)},
		{Nama: "D", RataRata: fp(100), Semesters: [5]*float64{fp(100)}, PeringkatSekolah: ip(1), JumlahPrestasi: 3},
		{Nama: "E"},
	}
}

func TestSummaryScenario(t *testing.T) {
	s := Summary(scenario())
	if s.Mean != 85 || s.Min != 70 || s.Max != 100 || s.ValidCount != 4 || s.InvalidCount != 1 || s.TotalCount != 5 {
		t.Fatalf("summary = %+v", s)
	}
}

func TestNormalizationLimitAndValues(t *testing.T) {
	got := Normalization(scenario(), 10)
	want := []float64{0, 33.33, 66.67, 100}
	if len(got) != 4 {
		t.Fatalf("rows = %d (row without average must be skipped)", len(got))
	}
	for i, w := range want {
		if got[i].Normalized != w {
			t.Errorf("row %d normalized = %v want %v", i, got[i].Normalized, w)
		}
	}
	if got[0].Standardized >= 50 || got[3].Standardized <= 50 {
		t.Errorf("standardized should straddle 50: %v %v", got[0].Standardized, got[3].Standardized)
	}
	if n := len(Normalization(scenario(), 2)); n != 2 {
		t.Errorf("limit not applied: %d", n)
	}
}

func TestHistogramDefaultLabelsAndCustomEdges(t *testing.T) {
	edges, err := ParseEdges("")
	if err != nil {
		t.Fatal(err)
	}
	b := Histogram(scenario(), edges)
	if len(b) != 7 || b[0].Label != "< 70" {
		t.Fatalf("default buckets = %+v", b)
	}
	total := 0
	for _, x := range b {
		total += x.Count
	}
	if total != 4 {
		t.Fatalf("bucket sum = %d want 4", total)
	}

	custom, err := ParseEdges("60, 80, 100")
	if err != nil {
		t.Fatal(err)
	}
	cb := Histogram(scenario(), custom)
	if len(cb) != 2 || cb[0].Label != "60-80" || cb[0].Count != 1 || cb[1].Count != 3 {
		t.Fatalf("custom buckets = %+v", cb)
	}

	for _, bad := range []string{"10", "a,b", "80,70", "NaN,50", "0,NaN", "0,Inf", "-Inf,0", "0,+Infinity"} {
		if _, err := ParseEdges(bad); err == nil {
			t.Errorf("ParseEdges(%q) should fail", bad)
		}
	}
}

func TestScatterKeepsPositiveOnly(t *testing.T) {
	rows := append(scenario(), NilaiRow{Nama: "F", RataRata: fp(88), PeringkatSekolah: ip(0)})
	pts := Scatter(rows)
	if len(pts) != 4 {
		t.Fatalf("points = %d", len(pts))
	}
	if pts[3].Z != 500 || pts[0].Z != 200 {
		t.Fatalf("z sizes = %d %d", pts[0].Z, pts[3].Z)
	}
}

func TestSemesterMeansCountsMissingAsZero(t *testing.T) {
	m := SemesterMeans(scenario())
	// sem 1: (70+80+90+100+0)/5
	if m[0].Nilai != 68 || m[0].Semester != "Sem 1" {
		t.Fatalf("sem 1 = %+v", m[0])
	}
	// sem 2: 70/5
	if m[1].Nilai != 14 {
		t.Fatalf("sem 2 = %+v", m[1])
	}
	if empty := SemesterMeans(nil); empty[4].Nilai != 0 {
		t.Fatalf("empty input must give zeros")
	}
}

func TestCounts(t *testing.T) {
	pc := CountPrediksi([]float64{90, 75, 60, 10}, []prediksiModel.Status{"published", "pending", "pending", "bogus"})
	if pc.Band["lolos"] != 2 || pc.Band["sedang"] != 1 || pc.Band["rendah"] != 1 || pc.Total != 4 {
		t.Fatalf("band = %v", pc.Band)
	}
	if pc.Status["pending"] != 2 || pc.Status["processed"] != 0 {
		t.Fatalf("status = %v", pc.Status)
	}

	ak := CountAkreditasi([]sekolahModel.Akreditasi{"A", "A", "C"})
	if ak["A"] != 2 || ak["B"] != 0 || ak["C"] != 1 {
		t.Fatalf("akreditasi = %v", ak)
	}
}
