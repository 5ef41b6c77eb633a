package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"snbp_backend/internals/features/snbp/siswa/model"
	helper "snbp_backend/internals/helpers"
)

/* =========================================================
   CREATE
========================================================= */

type CreateSiswaRequest struct {
	Nama             string     `json:"siswa_nama" validate:"required,min=3,max=120"`
	NISN             string     `json:"siswa_nisn" validate:"required,len=10,numeric"`
	NIS              *string    `json:"siswa_nis" validate:"omitempty,max=20"`
	Kelas            string     `json:"siswa_kelas" validate:"required,max=20"`
	Jurusan          *string    `json:"siswa_jurusan" validate:"omitempty,max=40"`
	UserID           *uuid.UUID `json:"siswa_user_id"`
	SekolahID        *uuid.UUID `json:"siswa_sekolah_id"`
	GuruID           *uuid.UUID `json:"siswa_guru_id"`
	PeringkatSekolah *int       `json:"siswa_peringkat_sekolah" validate:"omitempty,min=1"`
	PeringkatKelas   *int       `json:"siswa_peringkat_kelas" validate:"omitempty,min=1"`
	TahunMasuk       *int       `json:"siswa_tahun_masuk" validate:"omitempty,min=2000,max=2100"`
	IsActive         *bool      `json:"siswa_is_active"`
}

func (r *CreateSiswaRequest) Normalize() {
	r.Nama = strings.TrimSpace(r.Nama)
	r.NISN = strings.TrimSpace(r.NISN)
	r.Kelas = strings.TrimSpace(r.Kelas)
	r.NIS = helper.TrimPtr(r.NIS)
	r.Jurusan = helper.TrimPtr(r.Jurusan)
}

func (r *CreateSiswaRequest) ToModel() *model.SiswaModel {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &model.SiswaModel{
		Nama:             r.Nama,
		NISN:             r.NISN,
		NIS:              r.NIS,
		Kelas:            r.Kelas,
		Jurusan:          r.Jurusan,
		UserID:           r.UserID,
		SekolahID:        r.SekolahID,
		GuruID:           r.GuruID,
		PeringkatSekolah: r.PeringkatSekolah,
		PeringkatKelas:   r.PeringkatKelas,
		TahunMasuk:       r.TahunMasuk,
		IsActive:         active,
	}
}

/* =========================================================
   PATCH
========================================================= */

type PatchSiswaRequest struct {
	Nama             *string                       `json:"siswa_nama" validate:"omitempty,min=3,max=120"`
	NISN             *string                       `json:"siswa_nisn" validate:"omitempty,len=10,numeric"`
	Kelas            *string                       `json:"siswa_kelas" validate:"omitempty,min=1,max=20"`
	NIS              helper.UpdateField[string]    `json:"siswa_nis"`
	Jurusan          helper.UpdateField[string]    `json:"siswa_jurusan"`
	UserID           helper.UpdateField[uuid.UUID] `json:"siswa_user_id"`
	SekolahID        helper.UpdateField[uuid.UUID] `json:"siswa_sekolah_id"`
	GuruID           helper.UpdateField[uuid.UUID] `json:"siswa_guru_id"`
	PeringkatSekolah helper.UpdateField[int]       `json:"siswa_peringkat_sekolah"`
	PeringkatKelas   helper.UpdateField[int]       `json:"siswa_peringkat_kelas"`
	TahunMasuk       helper.UpdateField[int]       `json:"siswa_tahun_masuk"`
	IsActive         *bool                         `json:"siswa_is_active"`
}

func (r *PatchSiswaRequest) Normalize() {
	r.Nama = helper.TrimPtr(r.Nama)
	r.NISN = helper.TrimPtr(r.NISN)
	if r.Kelas != nil {
		k := strings.TrimSpace(*r.Kelas)
		r.Kelas = &k
	}
}

// Validate: cek field tri-state yang tidak tercakup tag validator.
func (r *PatchSiswaRequest) Validate() map[string][]string {
	errs := map[string][]string{}
	if r.Kelas != nil && *r.Kelas == "" {
		errs["siswa_kelas"] = []string{"required"}
	}
	positive := func(key string, f helper.UpdateField[int]) {
		if f.ShouldUpdate() && !f.IsNull() && f.Val() < 1 {
			errs[key] = []string{"min=1"}
		}
	}
	positive("siswa_peringkat_sekolah", r.PeringkatSekolah)
	positive("siswa_peringkat_kelas", r.PeringkatKelas)
	if r.TahunMasuk.ShouldUpdate() && !r.TahunMasuk.IsNull() {
		if y := r.TahunMasuk.Val(); y < 2000 || y > 2100 {
			errs["siswa_tahun_masuk"] = []string{"min=2000", "max=2100"}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (r *PatchSiswaRequest) Apply(m *model.SiswaModel) {
	if r.Nama != nil {
		m.Nama = *r.Nama
	}
	if r.NISN != nil {
		m.NISN = *r.NISN
	}
	if r.Kelas != nil {
		m.Kelas = *r.Kelas
	}
	if r.NIS.ShouldUpdate() {
		m.NIS = helper.TrimPtr(r.NIS.Ptr())
	}
	if r.Jurusan.ShouldUpdate() {
		m.Jurusan = helper.TrimPtr(r.Jurusan.Ptr())
	}
	if r.UserID.ShouldUpdate() {
		m.UserID = r.UserID.Ptr()
	}
	if r.SekolahID.ShouldUpdate() {
		m.SekolahID = r.SekolahID.Ptr()
		m.Sekolah = nil
	}
	if r.GuruID.ShouldUpdate() {
		m.GuruID = r.GuruID.Ptr()
		m.Guru = nil
	}
	if r.PeringkatSekolah.ShouldUpdate() {
		m.PeringkatSekolah = r.PeringkatSekolah.Ptr()
	}
	if r.PeringkatKelas.ShouldUpdate() {
		m.PeringkatKelas = r.PeringkatKelas.Ptr()
	}
	if r.TahunMasuk.ShouldUpdate() {
		m.TahunMasuk = r.TahunMasuk.Ptr()
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

/* =========================================================
   RESPONSE
========================================================= */

type SiswaResponse struct {
	ID               uuid.UUID  `json:"siswa_id"`
	UserID           *uuid.UUID `json:"siswa_user_id,omitempty"`
	Nama             string     `json:"siswa_nama"`
	NISN             string     `json:"siswa_nisn"`
	NIS              *string    `json:"siswa_nis,omitempty"`
	Kelas            string     `json:"siswa_kelas"`
	Jurusan          *string    `json:"siswa_jurusan,omitempty"`
	SekolahID        *uuid.UUID `json:"siswa_sekolah_id,omitempty"`
	SekolahNama      *string    `json:"sekolah_nama,omitempty"`
	GuruID           *uuid.UUID `json:"siswa_guru_id,omitempty"`
	GuruNama         *string    `json:"guru_nama,omitempty"`
	PeringkatSekolah *int       `json:"siswa_peringkat_sekolah,omitempty"`
	PeringkatKelas   *int       `json:"siswa_peringkat_kelas,omitempty"`
	TahunMasuk       *int       `json:"siswa_tahun_masuk,omitempty"`
	IsActive         bool       `json:"siswa_is_active"`
	CreatedAt        time.Time  `json:"siswa_created_at"`
	UpdatedAt        time.Time  `json:"siswa_updated_at"`
}

func FromModel(m *model.SiswaModel) SiswaResponse {
	out := SiswaResponse{
		ID:               m.ID,
		UserID:           m.UserID,
		Nama:             m.Nama,
		NISN:             m.NISN,
		NIS:              m.NIS,
		Kelas:            m.Kelas,
		Jurusan:          m.Jurusan,
		SekolahID:        m.SekolahID,
		GuruID:           m.GuruID,
		PeringkatSekolah: m.PeringkatSekolah,
		PeringkatKelas:   m.PeringkatKelas,
		TahunMasuk:       m.TahunMasuk,
		IsActive:         m.IsActive,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
	if m.Sekolah != nil {
		n := m.Sekolah.Nama
		out.SekolahNama = &n
	}
	if m.Guru != nil {
		n := m.Guru.Nama
		out.GuruNama = &n
	}
	return out
}

func FromModels(list []model.SiswaModel) []SiswaResponse {
	out := make([]SiswaResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
