package dto

import (
	"time"

	"github.com/google/uuid"

	"snbp_backend/internals/features/snbp/prediksi/model"
	"snbp_backend/internals/features/snbp/prediksi/service"
	helper "snbp_backend/internals/helpers"
)

type CreatePrediksiRequest struct {
	SiswaID             uuid.UUID `json:"prediksi_siswa_id" validate:"required"`
	PersentaseKelulusan *float64  `json:"prediksi_persentase_kelulusan" validate:"required,min=0,max=100"`
	PTNRekomendasi1     *string   `json:"prediksi_ptn_rekomendasi_1" validate:"omitempty,max=160"`
	ProdiRekomendasi1   *string   `json:"prediksi_prodi_rekomendasi_1" validate:"omitempty,max=160"`
	PTNRekomendasi2     *string   `json:"prediksi_ptn_rekomendasi_2" validate:"omitempty,max=160"`
	ProdiRekomendasi2   *string   `json:"prediksi_prodi_rekomendasi_2" validate:"omitempty,max=160"`
	Status              *string   `json:"prediksi_status" validate:"omitempty,oneof=pending processed published"`
	Catatan             *string   `json:"prediksi_catatan"`
}

func (r *CreatePrediksiRequest) Normalize() {
	r.PTNRekomendasi1 = helper.TrimPtr(r.PTNRekomendasi1)
	r.ProdiRekomendasi1 = helper.TrimPtr(r.ProdiRekomendasi1)
	r.PTNRekomendasi2 = helper.TrimPtr(r.PTNRekomendasi2)
	r.ProdiRekomendasi2 = helper.TrimPtr(r.ProdiRekomendasi2)
	r.Status = helper.TrimPtr(r.Status)
	r.Catatan = helper.TrimPtr(r.Catatan)
}

func (r *CreatePrediksiRequest) ToModel(createdBy *uuid.UUID) *model.PrediksiModel {
	status := model.StatusPending
	if r.Status != nil {
		status = model.Status(*r.Status)
	}
	return &model.PrediksiModel{
		SiswaID:             r.SiswaID,
		PersentaseKelulusan: *r.PersentaseKelulusan,
		PTNRekomendasi1:     r.PTNRekomendasi1,
		ProdiRekomendasi1:   r.ProdiRekomendasi1,
		PTNRekomendasi2:     r.PTNRekomendasi2,
		ProdiRekomendasi2:   r.ProdiRekomendasi2,
		Status:              status,
		Catatan:             r.Catatan,
		CreatedBy:           createdBy,
	}
}

type PatchPrediksiRequest struct {
	PersentaseKelulusan *float64                   `json:"prediksi_persentase_kelulusan" validate:"omitempty,min=0,max=100"`
	PTNRekomendasi1     helper.UpdateField[string] `json:"prediksi_ptn_rekomendasi_1"`
	ProdiRekomendasi1   helper.UpdateField[string] `json:"prediksi_prodi_rekomendasi_1"`
	PTNRekomendasi2     helper.UpdateField[string] `json:"prediksi_ptn_rekomendasi_2"`
	ProdiRekomendasi2   helper.UpdateField[string] `json:"prediksi_prodi_rekomendasi_2"`
	Status              *string                    `json:"prediksi_status" validate:"omitempty,oneof=pending processed published"`
	Catatan             helper.UpdateField[string] `json:"prediksi_catatan"`
}

func (r *PatchPrediksiRequest) Apply(m *model.PrediksiModel) {
	if r.PersentaseKelulusan != nil {
		m.PersentaseKelulusan = *r.PersentaseKelulusan
	}
	set := func(dst **string, f helper.UpdateField[string]) {
		if f.ShouldUpdate() {
			*dst = helper.TrimPtr(f.Ptr())
		}
	}
	set(&m.PTNRekomendasi1, r.PTNRekomendasi1)
	set(&m.ProdiRekomendasi1, r.ProdiRekomendasi1)
	set(&m.PTNRekomendasi2, r.PTNRekomendasi2)
	set(&m.ProdiRekomendasi2, r.ProdiRekomendasi2)
	set(&m.Catatan, r.Catatan)
	if r.Status != nil {
		m.Status = model.Status(*r.Status)
	}
}

type UpdateStatusRequest struct {
	Status string `json:"prediksi_status" validate:"required,oneof=pending processed published"`
}

/* =========================================================
   RESPONSE
========================================================= */

type PrediksiResponse struct {
	ID                  uuid.UUID  `json:"prediksi_id"`
	SiswaID             uuid.UUID  `json:"prediksi_siswa_id"`
	SiswaNama           string     `json:"siswa_nama,omitempty"`
	SiswaNISN           string     `json:"siswa_nisn,omitempty"`
	SiswaKelas          string     `json:"siswa_kelas,omitempty"`
	PersentaseKelulusan float64    `json:"prediksi_persentase_kelulusan"`
	Band                string     `json:"band"`
	Label               string     `json:"label"`
	PTNRekomendasi1     *string    `json:"prediksi_ptn_rekomendasi_1,omitempty"`
	ProdiRekomendasi1   *string    `json:"prediksi_prodi_rekomendasi_1,omitempty"`
	PTNRekomendasi2     *string    `json:"prediksi_ptn_rekomendasi_2,omitempty"`
	ProdiRekomendasi2   *string    `json:"prediksi_prodi_rekomendasi_2,omitempty"`
	Status              string     `json:"prediksi_status"`
	Catatan             *string    `json:"prediksi_catatan,omitempty"`
	CreatedBy           *uuid.UUID `json:"prediksi_created_by,omitempty"`
	CreatedAt           time.Time  `json:"prediksi_created_at"`
	UpdatedAt           time.Time  `json:"prediksi_updated_at"`
}

func FromModel(m *model.PrediksiModel) PrediksiResponse {
	out := PrediksiResponse{
		ID:                  m.ID,
		SiswaID:             m.SiswaID,
		PersentaseKelulusan: m.PersentaseKelulusan,
		Band:                string(service.BandOf(m.PersentaseKelulusan)),
		Label:               service.LabelOf(m.PersentaseKelulusan),
		PTNRekomendasi1:     m.PTNRekomendasi1,
		ProdiRekomendasi1:   m.ProdiRekomendasi1,
		PTNRekomendasi2:     m.PTNRekomendasi2,
		ProdiRekomendasi2:   m.ProdiRekomendasi2,
		Status:              string(m.Status),
		Catatan:             m.Catatan,
		CreatedBy:           m.CreatedBy,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
	if m.Siswa != nil {
		out.SiswaNama = m.Siswa.Nama
		out.SiswaNISN = m.Siswa.NISN
		out.SiswaKelas = m.Siswa.Kelas
	}
	return out
}

func FromModels(list []model.PrediksiModel) []PrediksiResponse {
	out := make([]PrediksiResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
