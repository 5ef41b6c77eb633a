// Package statistics berisi ringkasan statistik deskriptif untuk nilai rapor.
//
// Semua fungsi murni dan tidak pernah mengembalikan error: data kosong atau
// hilang dihitung sebagai nol. Min/Max dari input kosong = 0 (bukan ±Inf),
// karena normalisasi di hilir bergantung pada perilaku ini.
package statistics

import (
	"math"

	"github.com/montanaflynn/stats"
)

// DefaultGradeEdges: batas bucket histogram rata-rata nilai (bucket terakhir tertutup).
var DefaultGradeEdges = []float64{0, 70, 75, 80, 85, 90, 95, 100}

// DefaultGradeLabels berpasangan dengan DefaultGradeEdges.
var DefaultGradeLabels = []string{"< 70", "70-75", "75-80", "80-85", "85-90", "90-95", "95-100"}

type Summary struct {
	Mean         float64 `json:"mean"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	StdDev       float64 `json:"std"`
	ValidCount   int     `json:"valid_count"`
	InvalidCount int     `json:"invalid_count"`
	TotalCount   int     `json:"total_count"`
}

func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return m
}

// MeanPresent: rata-rata dari nilai yang ada (non-nil).
func MeanPresent(values []*float64) float64 {
	return Mean(Present(values))
}

func Min(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m, err := stats.Min(values)
	if err != nil {
		return 0
	}
	return m
}

func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m, err := stats.Max(values)
	if err != nil {
		return 0
	}
	return m
}

// StdDev: standar deviasi populasi sqrt(mean((x-mean)^2)).
func StdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	// nilai identik → 0 persis, tanpa sisa pembulatan
	if Min(values) == Max(values) {
		return 0
	}
	sd, err := stats.StandardDeviationPopulation(values)
	if err != nil || math.IsNaN(sd) {
		return 0
	}
	return sd
}

// MinMaxNormalize memetakan x ke skala 0-100. Jika max <= min hasilnya 0.
func MinMaxNormalize(x, min, max float64) float64 {
	if max <= min {
		return 0
	}
	return (x - min) / (max - min) * 100
}

// Standardize: z-score yang digeser ke skala 50 ± 20. Jika std <= 0 hasilnya 50.
func Standardize(x, mean, std float64) float64 {
	if std <= 0 {
		return 50
	}
	return (x-mean)/std*20 + 50
}

// HistogramBuckets menghitung jumlah nilai di setiap interval [e_i, e_i+1).
// Bucket terakhir tertutup di kedua sisi. Nilai di luar [e_0, e_n] tidak dihitung.
func HistogramBuckets(values []float64, edges []float64) []int {
	if len(edges) < 2 {
		return []int{}
	}
	counts := make([]int, len(edges)-1)
	last := len(edges) - 2
	for _, v := range values {
		for i := 0; i <= last; i++ {
			lo, hi := edges[i], edges[i+1]
			if v >= lo && (v < hi || (i == last && v == hi)) {
				counts[i]++
				break
			}
		}
	}
	return counts
}

// Present mengambil nilai non-nil saja.
func Present(values []*float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}

func ValidCount(values []*float64) int {
	n := 0
	for _, v := range values {
		if v != nil {
			n++
		}
	}
	return n
}

func InvalidCount(values []*float64) int {
	return len(values) - ValidCount(values)
}

func Summarize(values []*float64) Summary {
	present := Present(values)
	if len(present) == 0 {
		return Summary{
			InvalidCount: len(values),
			TotalCount:   len(values),
		}
	}
	return Summary{
		Mean:         Mean(present),
		Min:          Min(present),
		Max:          Max(present),
		StdDev:       StdDev(present),
		ValidCount:   len(present),
		InvalidCount: len(values) - len(present),
		TotalCount:   len(values),
	}
}

// Quartiles mengembalikan Q1 dan Q3. Input kurang dari 4 nilai → (0, 0, false).
func Quartiles(values []float64) (q1, q3 float64, ok bool) {
	if len(values) < 4 {
		return 0, 0, false
	}
	q, err := stats.Quartile(values)
	if err != nil {
		return 0, 0, false
	}
	return q.Q1, q.Q3, true
}

// IQROutliers menandai indeks nilai di luar pagar Tukey [Q1-1.5*IQR, Q3+1.5*IQR].
func IQROutliers(values []float64) map[int]bool {
	out := map[int]bool{}
	q1, q3, ok := Quartiles(values)
	if !ok {
		return out
	}
	iqr := q3 - q1
	lo, hi := q1-1.5*iqr, q3+1.5*iqr
	for i, v := range values {
		if v < lo || v > hi {
			out[i] = true
		}
	}
	return out
}

// Round2 membulatkan ke 2 desimal untuk tampilan.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
