package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"snbp_backend/internals/helpers/statistics"
)

// StageInfo: katalog tahap preprocessing (urut 1..6).
type StageInfo struct {
	Tahap     int    `json:"tahap"`
	Nama      string `json:"nama"`
	Deskripsi string `json:"deskripsi"`
}

var Stages = []StageInfo{
	{1, "Data Collection", "Mengumpulkan data dari berbagai sumber (siswa, nilai, sekolah)"},
	{2, "Data Cleaning", "Menghapus data duplikat dan nilai kosong"},
	{3, "Data Transformation", "Mengubah format data dan encoding kategorikal"},
	{4, "Normalization", "Min-Max scaling dan standardisasi nilai"},
	{5, "Feature Engineering", "Membuat fitur baru dari data yang ada"},
	{6, "Validation", "Validasi data akhir sebelum prediksi"},
}

// Record: satu baris nilai beserta siswa dan sekolahnya.
type Record struct {
	SiswaID          uuid.UUID
	Nama             string
	NISN             string
	Kelas            string
	Jurusan          string
	Akreditasi       string
	PeringkatSekolah *int
	Semesters        [5]*float64
	RataRata         *float64
	Prestasi         []string
	Portofolio       *float64
}

// Sources: jumlah data mentah per sumber (tahap 1).
type Sources struct {
	Siswa   int64 `json:"siswa"`
	Nilai   int64 `json:"nilai"`
	Sekolah int64 `json:"sekolah"`
}

type StageResult struct {
	StageInfo
	Input       int
	Output      int
	Error       int
	Detail      map[string]any
	Statistik   map[string]any
	StartedAt   time.Time
	CompletedAt time.Time
}

type RowResult struct {
	SiswaID          uuid.UUID
	Original         map[string]any
	Cleaned          map[string]any
	Normalized       map[string]any
	Transformed      map[string]any
	IsValid          bool
	ValidationErrors []string
}

type Result struct {
	Stages []StageResult
	Rows   []RowResult
}

// RunPipeline menjalankan 6 tahap deskriptif secara berurutan. Tidak ada model prediksi di sini.
func RunPipeline(records []Record, src Sources, now func() time.Time) Result {
	if now == nil {
		now = time.Now
	}
	rows := make([]RowResult, len(records))
	for i, r := range records {
		rows[i] = RowResult{SiswaID: r.SiswaID, Original: original(r), IsValid: true}
	}
	stage := func(idx int) StageResult {
		return StageResult{StageInfo: Stages[idx], StartedAt: now()}
	}
	done := func(s *StageResult) { s.CompletedAt = now() }

	var out Result

	// 1. collection
	s1 := stage(0)
	s1.Input, s1.Output = len(records), len(records)
	s1.Detail = map[string]any{"sumber": src}
	s1.Statistik = map[string]any{"total_record": len(records)}
	done(&s1)
	out.Stages = append(out.Stages, s1)

	// 2. cleaning
	s2 := stage(1)
	var clean []int
	seen := map[uuid.UUID]bool{}
	tanpaRata, duplikat := 0, 0
	for i, r := range records {
		switch {
		case r.RataRata == nil:
			tanpaRata++
			rows[i].IsValid = false
			rows[i].ValidationErrors = append(rows[i].ValidationErrors, "rata_rata kosong")
		case seen[r.SiswaID]:
			duplikat++
			rows[i].IsValid = false
			rows[i].ValidationErrors = append(rows[i].ValidationErrors, "duplikat siswa")
		default:
			seen[r.SiswaID] = true
			clean = append(clean, i)
			rows[i].Cleaned = map[string]any{
				"rata_rata":  *r.RataRata,
				"jurusan":    normCategory(r.Jurusan),
				"akreditasi": normCategory(r.Akreditasi),
			}
		}
	}
	s2.Input, s2.Output, s2.Error = len(records), len(clean), tanpaRata+duplikat
	s2.Detail = map[string]any{"tanpa_rata_rata": tanpaRata, "duplikat": duplikat}
	s2.Statistik = map[string]any{"dibuang": tanpaRata + duplikat, "tersisa": len(clean)}
	done(&s2)
	out.Stages = append(out.Stages, s2)

	// 3. transformation: one-hot akreditasi & jurusan
	s3 := stage(2)
	jurusanSet := map[string]bool{}
	for _, i := range clean {
		if j := normCategory(records[i].Jurusan); j != "" {
			jurusanSet[j] = true
		}
	}
	jurusanList := make([]string, 0, len(jurusanSet))
	for j := range jurusanSet {
		jurusanList = append(jurusanList, j)
	}
	sort.Strings(jurusanList)

	akrCount := map[string]int{"A": 0, "B": 0, "C": 0}
	jurCount := map[string]int{}
	for _, i := range clean {
		akr := normCategory(records[i].Akreditasi)
		jur := normCategory(records[i].Jurusan)
		t := map[string]any{}
		for _, a := range []string{"A", "B", "C"} {
			t["akreditasi_"+a] = boolInt(akr == a)
		}
		for _, j := range jurusanList {
			t["jurusan_"+j] = boolInt(jur == j)
		}
		if _, ok := akrCount[akr]; ok {
			akrCount[akr]++
		}
		if jur != "" {
			jurCount[jur]++
		}
		rows[i].Transformed = t
	}
	s3.Input, s3.Output = len(clean), len(clean)
	s3.Detail = map[string]any{"kolom_akreditasi": []string{"A", "B", "C"}, "kolom_jurusan": jurusanList}
	s3.Statistik = map[string]any{"akreditasi": akrCount, "jurusan": jurCount}
	done(&s3)
	out.Stages = append(out.Stages, s3)

	// 4. normalization
	s4 := stage(3)
	vals := make([]float64, len(clean))
	for k, i := range clean {
		vals[k] = *records[i].RataRata
	}
	lo, hi := statistics.Min(vals), statistics.Max(vals)
	mean, std := statistics.Mean(vals), statistics.StdDev(vals)
	normVals := make([]float64, len(clean))
	for k, i := range clean {
		mm := statistics.Round2(statistics.MinMaxNormalize(vals[k], lo, hi))
		normVals[k] = mm
		rows[i].Normalized = map[string]any{
			"rata_rata":    vals[k],
			"min_max":      mm,
			"standardized": statistics.Round2(statistics.Standardize(vals[k], mean, std)),
		}
	}
	s4.Input, s4.Output = len(clean), len(clean)
	s4.Detail = map[string]any{"metode": []string{"min-max (0-100)", "z*20+50"}}
	s4.Statistik = map[string]any{
		"sebelum": map[string]float64{"mean": statistics.Round2(mean), "min": lo, "max": hi, "std": statistics.Round2(std)},
		"sesudah": map[string]float64{"mean": statistics.Round2(statistics.Mean(normVals)), "min": statistics.Min(normVals), "max": statistics.Max(normVals)},
	}
	done(&s4)
	out.Stages = append(out.Stages, s4)

	// 5. feature engineering
	s5 := stage(4)
	jumlah := make([]float64, 0, len(clean))
	porto := make([]float64, 0, len(clean))
	for _, i := range clean {
		r := records[i]
		n := len(r.Prestasi)
		p := 0.0
		if r.Portofolio != nil {
			p = *r.Portofolio
		}
		jumlah = append(jumlah, float64(n))
		porto = append(porto, p)
		if rows[i].Transformed == nil {
			rows[i].Transformed = map[string]any{}
		}
		rows[i].Transformed["jumlah_prestasi"] = n
		rows[i].Transformed["skor_prestasi"] = SkorPrestasi(n)
		rows[i].Transformed["nilai_portofolio"] = p
	}
	s5.Input, s5.Output = len(clean), len(clean)
	s5.Detail = map[string]any{"fitur": []string{"jumlah_prestasi", "skor_prestasi", "nilai_portofolio"}}
	s5.Statistik = map[string]any{
		"rata_jumlah_prestasi": statistics.Round2(statistics.Mean(jumlah)),
		"rata_portofolio":      statistics.Round2(statistics.Mean(porto)),
	}
	done(&s5)
	out.Stages = append(out.Stages, s5)

	// 6. validation: outlier IQR + rentang nilai
	s6 := stage(5)
	outliers := statistics.IQROutliers(vals)
	q1, q3, _ := statistics.Quartiles(vals)
	valid, rangeErr := 0, 0
	for k, i := range clean {
		errs := rangeErrors(records[i])
		if len(errs) > 0 {
			rangeErr++
		}
		if outliers[k] {
			errs = append(errs, fmt.Sprintf("outlier rata_rata %.2f", vals[k]))
		}
		rows[i].ValidationErrors = append(rows[i].ValidationErrors, errs...)
		rows[i].IsValid = len(errs) == 0
		if rows[i].IsValid {
			valid++
		}
	}
	s6.Input, s6.Output, s6.Error = len(clean), valid, len(clean)-valid
	s6.Detail = map[string]any{"metode": "IQR 1.5", "cek_rentang": "0-100"}
	s6.Statistik = map[string]any{
		"q1":          statistics.Round2(q1),
		"q3":          statistics.Round2(q3),
		"outlier":     len(outliers),
		"range_error": rangeErr,
		"valid":       valid,
	}
	done(&s6)
	out.Stages = append(out.Stages, s6)

	out.Rows = rows
	return out
}

// SkorPrestasi: bobot prestasi yang juga dipakai sebagai ukuran titik scatter.
func SkorPrestasi(jumlah int) int { return jumlah*100 + 200 }

func original(r Record) map[string]any {
	m := map[string]any{
		"nama":       r.Nama,
		"nisn":       r.NISN,
		"kelas":      r.Kelas,
		"jurusan":    r.Jurusan,
		"akreditasi": r.Akreditasi,
		"rata_rata":  r.RataRata,
		"prestasi":   r.Prestasi,
		"portofolio": r.Portofolio,
	}
	for i, s := range r.Semesters {
		m[fmt.Sprintf("semester_%d", i+1)] = s
	}
	if r.PeringkatSekolah != nil {
		m["peringkat_sekolah"] = *r.PeringkatSekolah
	}
	return m
}

func rangeErrors(r Record) []string {
	var errs []string
	for i, s := range r.Semesters {
		if s != nil && (*s < 0 || *s > 100) {
			errs = append(errs, fmt.Sprintf("semester_%d di luar 0-100", i+1))
		}
	}
	if r.Portofolio != nil && (*r.Portofolio < 0 || *r.Portofolio > 100) {
		errs = append(errs, "portofolio di luar 0-100")
	}
	return errs
}

func normCategory(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
