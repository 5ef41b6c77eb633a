package service

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	prediksiModel "snbp_backend/internals/features/snbp/prediksi/model"
	prediksiService "snbp_backend/internals/features/snbp/prediksi/service"
	sekolahModel "snbp_backend/internals/features/snbp/sekolah/model"
	"snbp_backend/internals/helpers/statistics"
)

// NilaiRow: baris nilai yang sudah di-join dengan siswa (input semua grafik).
type NilaiRow struct {
	Nama             string
	Semesters        [5]*float64
	RataRata         *float64
	JumlahPrestasi   int
	PeringkatSekolah *int
}

type Bucket struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

type NormalizationRow struct {
	Nama         string  `json:"nama"`
	Raw          float64 `json:"raw"`
	Normalized   float64 `json:"normalized"`
	Standardized float64 `json:"standardized"`
}

type ScatterPoint struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    int     `json:"z"`
	Nama string  `json:"nama"`
}

type SemesterMean struct {
	Semester string  `json:"semester"`
	Nilai    float64 `json:"nilai"`
}

type PrediksiCounts struct {
	Band   map[string]int `json:"band"`
	Status map[string]int `json:"status"`
	Total  int            `json:"total"`
}

func averages(rows []NilaiRow) []*float64 {
	out := make([]*float64, len(rows))
	for i := range rows {
		out[i] = rows[i].RataRata
	}
	return out
}

// Summary: ringkasan deskriptif rata_rata semua baris nilai.
func Summary(rows []NilaiRow) statistics.Summary {
	return statistics.Summarize(averages(rows))
}

var ErrEdges = errors.New("edges harus minimal 2 angka naik, dipisah koma")

// ParseEdges: "0,70,80,100" → []float64; kosong → default.
func ParseEdges(raw string) ([]float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return statistics.DefaultGradeEdges, nil
	}
	parts := strings.Split(raw, ",")
	edges := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrEdges
		}
		if n := len(edges); n > 0 && v <= edges[n-1] {
			return nil, ErrEdges
		}
		edges = append(edges, v)
	}
	if len(edges) < 2 {
		return nil, ErrEdges
	}
	return edges, nil
}

func sameEdges(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Histogram memakai label bawaan untuk edges default, selain itu "lo-hi".
func Histogram(rows []NilaiRow, edges []float64) []Bucket {
	counts := statistics.HistogramBuckets(statistics.Present(averages(rows)), edges)
	useDefault := sameEdges(edges, statistics.DefaultGradeEdges)
	out := make([]Bucket, len(counts))
	for i, n := range counts {
		label := fmt.Sprintf("%g-%g", edges[i], edges[i+1])
		if useDefault {
			label = statistics.DefaultGradeLabels[i]
		}
		out[i] = Bucket{Label: label, Min: edges[i], Max: edges[i+1], Count: n}
	}
	return out
}

// Normalization: parameter min/max/mean/std dihitung dari semua nilai terisi, lalu diambil limit baris pertama.
func Normalization(rows []NilaiRow, limit int) []NormalizationRow {
	vals := statistics.Present(averages(rows))
	lo, hi := statistics.Min(vals), statistics.Max(vals)
	mean, std := statistics.Mean(vals), statistics.StdDev(vals)

	out := make([]NormalizationRow, 0, limit)
	for _, r := range rows {
		if len(out) >= limit {
			break
		}
		if r.RataRata == nil {
			continue
		}
		x := *r.RataRata
		out = append(out, NormalizationRow{
			Nama:         r.Nama,
			Raw:          statistics.Round2(x),
			Normalized:   statistics.Round2(statistics.MinMaxNormalize(x, lo, hi)),
			Standardized: statistics.Round2(statistics.Standardize(x, mean, std)),
		})
	}
	return out
}

// Scatter: x = rata_rata, y = peringkat sekolah, z = ukuran titik dari jumlah prestasi.
func Scatter(rows []NilaiRow) []ScatterPoint {
	out := make([]ScatterPoint, 0, len(rows))
	for _, r := range rows {
		if r.RataRata == nil || r.PeringkatSekolah == nil {
			continue
		}
		x, y := *r.RataRata, float64(*r.PeringkatSekolah)
		if x <= 0 || y <= 0 {
			continue
		}
		out = append(out, ScatterPoint{X: x, Y: y, Z: r.JumlahPrestasi*100 + 200, Nama: r.Nama})
	}
	return out
}

// SemesterMeans: semester kosong dihitung 0, dibagi jumlah baris.
func SemesterMeans(rows []NilaiRow) []SemesterMean {
	out := make([]SemesterMean, 5)
	for s := 0; s < 5; s++ {
		sum := 0.0
		for _, r := range rows {
			if v := r.Semesters[s]; v != nil {
				sum += *v
			}
		}
		mean := 0.0
		if len(rows) > 0 {
			mean = sum / float64(len(rows))
		}
		out[s] = SemesterMean{Semester: fmt.Sprintf("Sem %d", s+1), Nilai: statistics.Round2(mean)}
	}
	return out
}

// CountPrediksi: jumlah per band dan per status. Semua kunci selalu ada.
func CountPrediksi(persentase []float64, status []prediksiModel.Status) PrediksiCounts {
	out := PrediksiCounts{Band: map[string]int{}, Status: map[string]int{}, Total: len(persentase)}
	for _, b := range prediksiService.AllBands {
		out.Band[string(b)] = 0
	}
	for _, s := range prediksiModel.AllStatus {
		out.Status[string(s)] = 0
	}
	for _, p := range persentase {
		out.Band[string(prediksiService.BandOf(p))]++
	}
	for _, s := range status {
		if s.Valid() {
			out.Status[string(s)]++
		}
	}
	return out
}

// CountAkreditasi: sekolah per akreditasi A/B/C.
func CountAkreditasi(list []sekolahModel.Akreditasi) map[string]int {
	out := map[string]int{}
	for _, a := range sekolahModel.AllAkreditasi {
		out[string(a)] = 0
	}
	for _, a := range list {
		if a.Valid() {
			out[string(a)]++
		}
	}
	return out
}
