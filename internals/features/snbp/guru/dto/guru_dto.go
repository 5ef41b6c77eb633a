package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"snbp_backend/internals/features/snbp/guru/model"
	helper "snbp_backend/internals/helpers"
)

type CreateGuruRequest struct {
	Nama          string     `json:"guru_nama" validate:"required,min=3,max=120"`
	NIP           *string    `json:"guru_nip" validate:"omitempty,numeric,min=8,max=18"`
	UserID        *uuid.UUID `json:"guru_user_id"`
	SekolahID     *uuid.UUID `json:"guru_sekolah_id"`
	MataPelajaran *string    `json:"guru_mata_pelajaran" validate:"omitempty,max=80"`
	IsActive      *bool      `json:"guru_is_active"`
}

func (r *CreateGuruRequest) Normalize() {
	r.Nama = strings.TrimSpace(r.Nama)
	r.NIP = helper.TrimPtr(r.NIP)
	r.MataPelajaran = helper.TrimPtr(r.MataPelajaran)
}

func (r *CreateGuruRequest) ToModel() *model.GuruModel {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &model.GuruModel{
		Nama:          r.Nama,
		NIP:           r.NIP,
		UserID:        r.UserID,
		SekolahID:     r.SekolahID,
		MataPelajaran: r.MataPelajaran,
		IsActive:      active,
	}
}

type PatchGuruRequest struct {
	Nama          *string                       `json:"guru_nama" validate:"omitempty,min=3,max=120"`
	NIP           helper.UpdateField[string]    `json:"guru_nip"`
	UserID        helper.UpdateField[uuid.UUID] `json:"guru_user_id"`
	SekolahID     helper.UpdateField[uuid.UUID] `json:"guru_sekolah_id"`
	MataPelajaran helper.UpdateField[string]    `json:"guru_mata_pelajaran"`
	IsActive      *bool                         `json:"guru_is_active"`
}

func (r *PatchGuruRequest) Normalize() {
	r.Nama = helper.TrimPtr(r.Nama)
}

// Validate: UpdateField tidak lewat tag validator, jadi nip dicek manual.
func (r *PatchGuruRequest) Validate() map[string][]string {
	errs := map[string][]string{}
	if r.NIP.ShouldUpdate() && !r.NIP.IsNull() {
		nip := strings.TrimSpace(r.NIP.Val())
		if err := helper.Validate.Var(nip, "numeric,min=8,max=18"); err != nil {
			errs["guru_nip"] = []string{"numeric,min=8,max=18"}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (r *PatchGuruRequest) Apply(m *model.GuruModel) {
	if r.Nama != nil {
		m.Nama = *r.Nama
	}
	if r.NIP.ShouldUpdate() {
		m.NIP = helper.TrimPtr(r.NIP.Ptr())
	}
	if r.UserID.ShouldUpdate() {
		m.UserID = r.UserID.Ptr()
	}
	if r.SekolahID.ShouldUpdate() {
		m.SekolahID = r.SekolahID.Ptr()
		m.Sekolah = nil
	}
	if r.MataPelajaran.ShouldUpdate() {
		m.MataPelajaran = helper.TrimPtr(r.MataPelajaran.Ptr())
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

type GuruResponse struct {
	ID            uuid.UUID  `json:"guru_id"`
	UserID        *uuid.UUID `json:"guru_user_id,omitempty"`
	Nama          string     `json:"guru_nama"`
	NIP           *string    `json:"guru_nip,omitempty"`
	SekolahID     *uuid.UUID `json:"guru_sekolah_id,omitempty"`
	SekolahNama   *string    `json:"sekolah_nama,omitempty"`
	MataPelajaran *string    `json:"guru_mata_pelajaran,omitempty"`
	IsActive      bool       `json:"guru_is_active"`
	CreatedAt     time.Time  `json:"guru_created_at"`
	UpdatedAt     time.Time  `json:"guru_updated_at"`
}

func FromModel(m *model.GuruModel) GuruResponse {
	out := GuruResponse{
		ID:            m.ID,
		UserID:        m.UserID,
		Nama:          m.Nama,
		NIP:           m.NIP,
		SekolahID:     m.SekolahID,
		MataPelajaran: m.MataPelajaran,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Sekolah != nil {
		nama := m.Sekolah.Nama
		out.SekolahNama = &nama
	}
	return out
}

func FromModels(list []model.GuruModel) []GuruResponse {
	out := make([]GuruResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
