package dto

import (
	activityDTO "snbp_backend/internals/features/snbp/activity/dto"
	nilaiDTO "snbp_backend/internals/features/snbp/nilai/dto"
	prediksiDTO "snbp_backend/internals/features/snbp/prediksi/dto"
	siswaDTO "snbp_backend/internals/features/snbp/siswa/dto"
	statistikService "snbp_backend/internals/features/snbp/statistik/service"
)

type AdminView struct {
	Role                 string                            `json:"role"`
	TotalSiswa           int64                             `json:"total_siswa"`
	TotalGuru            int64                             `json:"total_guru"`
	TotalSekolah         int64                             `json:"total_sekolah"`
	TotalPrediksi        int                               `json:"total_prediksi"`
	RataRataNilai        float64                           `json:"rata_rata_nilai"`
	PersentaseLolos      int                               `json:"persentase_lolos"`
	DistribusiAkreditasi map[string]int                    `json:"distribusi_akreditasi"`
	StatusPrediksi       map[string]int                    `json:"status_prediksi"`
	NilaiPerSemester     []statistikService.SemesterMean   `json:"nilai_per_semester"`
	AktivitasTerbaru     []activityDTO.ActivityLogResponse `json:"aktivitas_terbaru"`
}

type GuruView struct {
	Role             string                          `json:"role"`
	TotalSiswa       int64                           `json:"total_siswa"`
	TotalPrediksi    int                             `json:"total_prediksi"`
	RataRataNilai    float64                         `json:"rata_rata_nilai"`
	PersentaseLolos  int                             `json:"persentase_lolos"`
	NilaiPerSemester []statistikService.SemesterMean `json:"nilai_per_semester"`
	PrediksiTerbaru  []prediksiDTO.PrediksiResponse  `json:"prediksi_terbaru"`
}

type SiswaView struct {
	Role     string                        `json:"role"`
	Siswa    *siswaDTO.SiswaResponse       `json:"siswa"`
	Nilai    *nilaiDTO.NilaiResponse       `json:"nilai"`
	Prediksi *prediksiDTO.PrediksiResponse `json:"prediksi"`
}
