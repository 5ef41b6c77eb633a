package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"snbp_backend/internals/features/snbp/nilai/model"
	helper "snbp_backend/internals/helpers"
)

/* =========================================================
   UPSERT (by siswa)
========================================================= */

type UpsertNilaiRequest struct {
	SiswaID    uuid.UUID `json:"nilai_siswa_id" validate:"required"`
	Semester1  *float64  `json:"nilai_semester_1" validate:"omitempty,min=0,max=100"`
	Semester2  *float64  `json:"nilai_semester_2" validate:"omitempty,min=0,max=100"`
	Semester3  *float64  `json:"nilai_semester_3" validate:"omitempty,min=0,max=100"`
	Semester4  *float64  `json:"nilai_semester_4" validate:"omitempty,min=0,max=100"`
	Semester5  *float64  `json:"nilai_semester_5" validate:"omitempty,min=0,max=100"`
	Prestasi   []string  `json:"nilai_prestasi" validate:"omitempty,max=50,dive,max=200"`
	Portofolio *float64  `json:"nilai_portofolio" validate:"omitempty,min=0,max=100"`
	Catatan    *string   `json:"nilai_catatan"`
}

func (r *UpsertNilaiRequest) Normalize() {
	r.Prestasi = cleanPrestasi(r.Prestasi)
	r.Catatan = helper.TrimPtr(r.Catatan)
}

func (r *UpsertNilaiRequest) ToModel() *model.NilaiModel {
	return &model.NilaiModel{
		SiswaID:    r.SiswaID,
		Semester1:  r.Semester1,
		Semester2:  r.Semester2,
		Semester3:  r.Semester3,
		Semester4:  r.Semester4,
		Semester5:  r.Semester5,
		Prestasi:   pq.StringArray(r.Prestasi),
		Portofolio: r.Portofolio,
		Catatan:    r.Catatan,
	}
}

func cleanPrestasi(in []string) []string {
	out := make([]string, 0, len(in))
	for _, p := range in {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

/* =========================================================
   PATCH
========================================================= */

type PatchNilaiRequest struct {
	Semester1  helper.UpdateField[float64] `json:"nilai_semester_1"`
	Semester2  helper.UpdateField[float64] `json:"nilai_semester_2"`
	Semester3  helper.UpdateField[float64] `json:"nilai_semester_3"`
	Semester4  helper.UpdateField[float64] `json:"nilai_semester_4"`
	Semester5  helper.UpdateField[float64] `json:"nilai_semester_5"`
	Prestasi   *[]string                   `json:"nilai_prestasi"`
	Portofolio helper.UpdateField[float64] `json:"nilai_portofolio"`
	Catatan    helper.UpdateField[string]  `json:"nilai_catatan"`
}

func (r *PatchNilaiRequest) semesters() [model.JumlahSemester]helper.UpdateField[float64] {
	return [model.JumlahSemester]helper.UpdateField[float64]{r.Semester1, r.Semester2, r.Semester3, r.Semester4, r.Semester5}
}

// Validate: setiap skor yang dikirim harus di [0,100].
func (r *PatchNilaiRequest) Validate() map[string][]string {
	errs := map[string][]string{}
	check := func(key string, f helper.UpdateField[float64]) {
		if f.ShouldUpdate() && !f.IsNull() && (f.Val() < 0 || f.Val() > 100) {
			errs[key] = []string{"min=0", "max=100"}
		}
	}
	for i, f := range r.semesters() {
		check(fmt.Sprintf("nilai_semester_%d", i+1), f)
	}
	check("nilai_portofolio", r.Portofolio)
	if r.Prestasi != nil && len(*r.Prestasi) > 50 {
		errs["nilai_prestasi"] = []string{"max=50"}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (r *PatchNilaiRequest) Apply(m *model.NilaiModel) {
	for i, f := range r.semesters() {
		if f.ShouldUpdate() {
			m.SetSemester(i+1, f.Ptr())
		}
	}
	if r.Prestasi != nil {
		m.Prestasi = pq.StringArray(cleanPrestasi(*r.Prestasi))
	}
	if r.Portofolio.ShouldUpdate() {
		m.Portofolio = r.Portofolio.Ptr()
	}
	if r.Catatan.ShouldUpdate() {
		m.Catatan = helper.TrimPtr(r.Catatan.Ptr())
	}
}

/* =========================================================
   RESPONSE
========================================================= */

type NilaiResponse struct {
	ID         uuid.UUID `json:"nilai_id"`
	SiswaID    uuid.UUID `json:"nilai_siswa_id"`
	SiswaNama  string    `json:"siswa_nama,omitempty"`
	SiswaNISN  string    `json:"siswa_nisn,omitempty"`
	SiswaKelas string    `json:"siswa_kelas,omitempty"`
	Semester1  *float64  `json:"nilai_semester_1"`
	Semester2  *float64  `json:"nilai_semester_2"`
	Semester3  *float64  `json:"nilai_semester_3"`
	Semester4  *float64  `json:"nilai_semester_4"`
	Semester5  *float64  `json:"nilai_semester_5"`
	RataRata   *float64  `json:"nilai_rata_rata"`
	Prestasi   []string  `json:"nilai_prestasi"`
	Portofolio *float64  `json:"nilai_portofolio"`
	Catatan    *string   `json:"nilai_catatan,omitempty"`
	CreatedAt  time.Time `json:"nilai_created_at"`
	UpdatedAt  time.Time `json:"nilai_updated_at"`
}

func FromModel(m *model.NilaiModel) NilaiResponse {
	out := NilaiResponse{
		ID:         m.ID,
		SiswaID:    m.SiswaID,
		Semester1:  m.Semester1,
		Semester2:  m.Semester2,
		Semester3:  m.Semester3,
		Semester4:  m.Semester4,
		Semester5:  m.Semester5,
		RataRata:   m.RataRata,
		Prestasi:   []string(m.Prestasi),
		Portofolio: m.Portofolio,
		Catatan:    m.Catatan,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if out.Prestasi == nil {
		out.Prestasi = []string{}
	}
	if m.Siswa != nil {
		out.SiswaNama = m.Siswa.Nama
		out.SiswaNISN = m.Siswa.NISN
		out.SiswaKelas = m.Siswa.Kelas
	}
	return out
}

func FromModels(list []model.NilaiModel) []NilaiResponse {
	out := make([]NilaiResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
