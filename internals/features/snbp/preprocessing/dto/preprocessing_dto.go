package dto

import (
	"time"

	"github.com/google/uuid"

	"snbp_backend/internals/features/snbp/preprocessing/model"
	"snbp_backend/internals/features/snbp/preprocessing/service"
)

// BatchSummary: ringkasan satu kali run (agregat dari 6 log tahap).
type BatchSummary struct {
	BatchID     uuid.UUID  `json:"batch_id" gorm:"column:batch_id"`
	JumlahTahap int        `json:"jumlah_tahap" gorm:"column:jumlah_tahap"`
	TotalInput  int        `json:"total_input" gorm:"column:total_input"`
	TotalValid  int        `json:"total_valid" gorm:"column:total_valid"`
	AdaError    bool       `json:"ada_error" gorm:"column:ada_error"`
	StartedAt   *time.Time `json:"started_at" gorm:"column:started_at"`
	CompletedAt *time.Time `json:"completed_at" gorm:"column:completed_at"`
}

type BatchDetail struct {
	BatchSummary
	Katalog []service.StageInfo           `json:"katalog"`
	Tahap   []model.PreprocessingLogModel `json:"tahap"`
}

type DataResponse struct {
	model.PreprocessingDataModel
	SiswaNama string `json:"siswa_nama,omitempty"`
	SiswaNISN string `json:"siswa_nisn,omitempty"`
}

func FromData(m *model.PreprocessingDataModel) DataResponse {
	out := DataResponse{PreprocessingDataModel: *m}
	if m.Siswa != nil {
		out.SiswaNama = m.Siswa.Nama
		out.SiswaNISN = m.Siswa.NISN
	}
	out.Siswa = nil
	return out
}

func FromDataList(list []model.PreprocessingDataModel) []DataResponse {
	out := make([]DataResponse, 0, len(list))
	for i := range list {
		out = append(out, FromData(&list[i]))
	}
	return out
}

// Summarize menghitung ringkasan batch dari log-lognya (urut tahap).
func Summarize(batchID uuid.UUID, logs []model.PreprocessingLogModel) BatchSummary {
	s := BatchSummary{BatchID: batchID, JumlahTahap: len(logs)}
	for i, l := range logs {
		if l.Status == model.LogError {
			s.AdaError = true
		}
		if l.Tahap == 1 {
			s.TotalInput = l.JumlahInput
		}
		if i == len(logs)-1 && l.Tahap == len(service.Stages) {
			s.TotalValid = l.JumlahOutput
		}
		if l.StartedAt != nil && (s.StartedAt == nil || l.StartedAt.Before(*s.StartedAt)) {
			t := *l.StartedAt
			s.StartedAt = &t
		}
		if l.CompletedAt != nil && (s.CompletedAt == nil || l.CompletedAt.After(*s.CompletedAt)) {
			t := *l.CompletedAt
			s.CompletedAt = &t
		}
	}
	return s
}
