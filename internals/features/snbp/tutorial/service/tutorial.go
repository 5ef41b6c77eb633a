package service

import (
	"fmt"
	"slices"
	"strings"

	"snbp_backend/internals/constants"
)

type Category string

const (
	CategoryLogin     Category = "login"
	CategoryInput     Category = "input"
	CategoryPrediksi  Category = "prediksi"
	CategoryStatistik Category = "statistik"
)

var categoryLabels = map[Category]string{
	CategoryLogin:     "Login & Akses",
	CategoryInput:     "Input Data",
	CategoryPrediksi:  "Prediksi",
	CategoryStatistik: "Statistik",
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := categoryLabels[c]; !ok {
		return "", fmt.Errorf("kategori tidak dikenal: %q", s)
	}
	return c, nil
}

type Section struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Duration      string           `json:"duration"`
	VideoID       string           `json:"video_id"`
	Category      Category         `json:"category"`
	CategoryLabel string           `json:"category_label"`
	ForRoles      []constants.Role `json:"for_roles"`
}

type Step struct {
	Step  int    `json:"step"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

var staff = []constants.Role{constants.RoleAdmin, constants.RoleGuru}

var sections = []Section{
	{
		ID:          "1",
		Title:       "Cara Login ke Sistem SNBP",
		Description: "Panduan lengkap untuk masuk ke sistem sesuai dengan peran Anda (Admin, Guru, atau Siswa)",
		Duration:    "3:45",
		VideoID:     "dQw4w9WgXcQ",
		Category:    CategoryLogin,
		ForRoles:    constants.AllRoles,
	},
	{
		ID:          "2",
		Title:       "Input Data Siswa Baru",
		Description: "Tutorial menambahkan data siswa baru ke dalam sistem sesuai ketentuan PDSS",
		Duration:    "5:20",
		VideoID:     "dQw4w9WgXcQ",
		Category:    CategoryInput,
		ForRoles:    staff,
	},
	{
		ID:          "3",
		Title:       "Input Nilai Rapor Semester 1-5",
		Description: "Cara memasukkan nilai rapor siswa dari semester 1 hingga semester 5",
		Duration:    "6:15",
		VideoID:     "dQw4w9WgXcQ",
		Category:    CategoryInput,
		ForRoles:    staff,
	},
	{
		ID:          "4",
		Title:       "Menjalankan Prediksi SNBP",
		Description: "Panduan menjalankan proses prediksi kelulusan untuk siswa",
		Duration:    "4:30",
		VideoID:     "dQw4w9WgXcQ",
		Category:    CategoryPrediksi,
		ForRoles:    staff,
	},
	{
		ID:          "5",
		Title:       "Memahami Hasil Prediksi",
		Description: "Penjelasan tentang cara membaca dan memahami hasil prediksi kelulusan SNBP",
		Duration:    "5:00",
		VideoID:     "dQw4w9WgXcQ",
		Category:    CategoryPrediksi,
		ForRoles:    constants.AllRoles,
	},
	{
		ID:          "6",
		Title:       "Menggunakan Dashboard Statistik",
		Description: "Tutorial lengkap untuk menganalisis data menggunakan dashboard statistik",
		Duration:    "7:45",
		VideoID:     "dQw4w9WgXcQ",
		Category:    CategoryStatistik,
		ForRoles:    staff,
	},
}

var QuickSteps = []Step{
	{Step: 1, Title: "Login", Desc: "Masuk dengan akun yang diberikan admin"},
	{Step: 2, Title: "Input Data", Desc: "Guru memasukkan data siswa dan nilai"},
	{Step: 3, Title: "Prediksi", Desc: "Jalankan prediksi untuk melihat hasil"},
	{Step: 4, Title: "Analisis", Desc: "Lihat statistik dan rekomendasi PTN"},
}

// ForRole: section yang boleh dilihat role, cat kosong = semua kategori.
func ForRole(role constants.Role, cat Category) []Section {
	out := make([]Section, 0, len(sections))
	for _, s := range sections {
		if !slices.Contains(s.ForRoles, role) {
			continue
		}
		if cat != "" && s.Category != cat {
			continue
		}
		s.CategoryLabel = categoryLabels[s.Category]
		out = append(out, s)
	}
	return out
}
