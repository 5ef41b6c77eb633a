package service

import (
	"math"

	"snbp_backend/internals/helpers/statistics"
)

// RataRataNilai: rata-rata rata_rata semua baris; baris tanpa nilai dihitung 0.
func RataRataNilai(values []*float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		if v != nil {
			sum += *v
		}
	}
	return statistics.Round2(sum / float64(len(values)))
}

// PersentaseLolos: persen prediksi dengan persentase >= 75, dibulatkan ke bilangan bulat.
func PersentaseLolos(persentase []float64) int {
	if len(persentase) == 0 {
		return 0
	}
	lolos := 0
	for _, p := range persentase {
		if p >= 75 {
			lolos++
		}
	}
	return int(math.Round(float64(lolos) / float64(len(persentase)) * 100))
}
