package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"snbp_backend/internals/features/snbp/sekolah/model"
	helper "snbp_backend/internals/helpers"
)

/* =========================================================
   CREATE
========================================================= */

type CreateSekolahRequest struct {
	Nama       string  `json:"sekolah_nama" validate:"required,min=3,max=160"`
	NPSN       string  `json:"sekolah_npsn" validate:"required,len=8,numeric"`
	Akreditasi string  `json:"sekolah_akreditasi" validate:"required,oneof=A B C"`
	Alamat     *string `json:"sekolah_alamat" validate:"omitempty"`
	Kota       *string `json:"sekolah_kota" validate:"omitempty,max=120"`
	Provinsi   *string `json:"sekolah_provinsi" validate:"omitempty,max=120"`
	KuotaSNBP  *int    `json:"sekolah_kuota_snbp" validate:"omitempty,min=0"`
}

func (r *CreateSekolahRequest) Normalize() {
	r.Nama = strings.TrimSpace(r.Nama)
	r.NPSN = strings.TrimSpace(r.NPSN)
	r.Akreditasi = strings.ToUpper(strings.TrimSpace(r.Akreditasi))
	r.Alamat = helper.TrimPtr(r.Alamat)
	r.Kota = helper.TrimPtr(r.Kota)
	r.Provinsi = helper.TrimPtr(r.Provinsi)
}

func (r *CreateSekolahRequest) ToModel() *model.SekolahModel {
	kuota := 0
	if r.KuotaSNBP != nil {
		kuota = *r.KuotaSNBP
	}
	return &model.SekolahModel{
		Nama:       r.Nama,
		NPSN:       r.NPSN,
		Akreditasi: model.Akreditasi(r.Akreditasi),
		Alamat:     r.Alamat,
		Kota:       r.Kota,
		Provinsi:   r.Provinsi,
		KuotaSNBP:  kuota,
	}
}

/* =========================================================
   PATCH
========================================================= */

type PatchSekolahRequest struct {
	Nama       *string                    `json:"sekolah_nama" validate:"omitempty,min=3,max=160"`
	NPSN       *string                    `json:"sekolah_npsn" validate:"omitempty,len=8,numeric"`
	Akreditasi *string                    `json:"sekolah_akreditasi" validate:"omitempty,oneof=A B C"`
	Alamat     helper.UpdateField[string] `json:"sekolah_alamat"`
	Kota       helper.UpdateField[string] `json:"sekolah_kota"`
	Provinsi   helper.UpdateField[string] `json:"sekolah_provinsi"`
	KuotaSNBP  *int                       `json:"sekolah_kuota_snbp" validate:"omitempty,min=0"`
}

func (r *PatchSekolahRequest) Normalize() {
	r.Nama = helper.TrimPtr(r.Nama)
	r.NPSN = helper.TrimPtr(r.NPSN)
	if r.Akreditasi != nil {
		a := strings.ToUpper(strings.TrimSpace(*r.Akreditasi))
		r.Akreditasi = &a
	}
}

func (r *PatchSekolahRequest) Apply(m *model.SekolahModel) {
	if r.Nama != nil {
		m.Nama = *r.Nama
	}
	if r.NPSN != nil {
		m.NPSN = *r.NPSN
	}
	if r.Akreditasi != nil {
		m.Akreditasi = model.Akreditasi(*r.Akreditasi)
	}
	if r.Alamat.ShouldUpdate() {
		m.Alamat = helper.TrimPtr(r.Alamat.Ptr())
	}
	if r.Kota.ShouldUpdate() {
		m.Kota = helper.TrimPtr(r.Kota.Ptr())
	}
	if r.Provinsi.ShouldUpdate() {
		m.Provinsi = helper.TrimPtr(r.Provinsi.Ptr())
	}
	if r.KuotaSNBP != nil {
		m.KuotaSNBP = *r.KuotaSNBP
	}
}

/* =========================================================
   RESPONSE
========================================================= */

type SekolahResponse struct {
	ID         uuid.UUID `json:"sekolah_id"`
	Nama       string    `json:"sekolah_nama"`
	NPSN       string    `json:"sekolah_npsn"`
	Akreditasi string    `json:"sekolah_akreditasi"`
	Alamat     *string   `json:"sekolah_alamat,omitempty"`
	Kota       *string   `json:"sekolah_kota,omitempty"`
	Provinsi   *string   `json:"sekolah_provinsi,omitempty"`
	KuotaSNBP  int       `json:"sekolah_kuota_snbp"`
	CreatedAt  time.Time `json:"sekolah_created_at"`
	UpdatedAt  time.Time `json:"sekolah_updated_at"`
}

func FromModel(m *model.SekolahModel) SekolahResponse {
	return SekolahResponse{
		ID:         m.ID,
		Nama:       m.Nama,
		NPSN:       m.NPSN,
		Akreditasi: string(m.Akreditasi),
		Alamat:     m.Alamat,
		Kota:       m.Kota,
		Provinsi:   m.Provinsi,
		KuotaSNBP:  m.KuotaSNBP,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func FromModels(list []model.SekolahModel) []SekolahResponse {
	out := make([]SekolahResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
