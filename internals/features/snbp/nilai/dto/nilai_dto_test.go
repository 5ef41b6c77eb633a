package dto

import (
	"testing"

	"github.com/google/uuid"

	"snbp_backend/internals/features/snbp/nilai/model"
	helper "snbp_backend/internals/helpers"
)

func fp(v float64) *float64 { return &v }

func TestUpsertNilaiValidation(t *testing.T) {
	ok := UpsertNilaiRequest{SiswaID: uuid.New(), Semester1: fp(0), Semester2: fp(100)}
	if err := helper.Validate.Struct(&ok); err != nil {
		t.Fatalf("boundary scores must pass: %v", err)
	}

	bad := UpsertNilaiRequest{SiswaID: uuid.New(), Semester3: fp(100.5)}
	err := helper.Validate.Struct(&bad)
	if err == nil {
		t.Fatalf("score > 100 must fail")
	}
	if fe := helper.FieldErrors(err); fe["nilai_semester_3"] == nil {
		t.Fatalf("expected nilai_semester_3 error, got %v", fe)
	}

	missing := UpsertNilaiRequest{}
	if err := helper.Validate.Struct(&missing); err == nil {
		t.Fatalf("siswa_id is required")
	}
}

func TestUpsertNormalizePrestasi(t *testing.T) {
	req := UpsertNilaiRequest{Prestasi: []string{" Juara 1 OSN ", "", "  "}}
	req.Normalize()
	if len(req.Prestasi) != 1 || req.Prestasi[0] != "Juara 1 OSN" {
		t.Fatalf("prestasi = %q", req.Prestasi)
	}
}

func TestPatchNilai(t *testing.T) {
	bad := PatchNilaiRequest{Semester2: helper.Set(-1.0), Portofolio: helper.Set(101.0)}
	errs := bad.Validate()
	if errs["nilai_semester_2"] == nil || errs["nilai_portofolio"] == nil {
		t.Fatalf("errs = %v", errs)
	}

	m := &model.NilaiModel{Semester1: fp(80), Semester2: fp(70)}
	req := PatchNilaiRequest{Semester1: helper.Null[float64](), Semester4: helper.Set(95.0)}
	if errs := req.Validate(); errs != nil {
		t.Fatalf("unexpected errs %v", errs)
	}
	req.Apply(m)
	if m.Semester1 != nil || m.Semester2 == nil || *m.Semester4 != 95 {
		t.Fatalf("apply result = %+v", m)
	}
}

func TestFromModelEmptyPrestasi(t *testing.T) {
	out := FromModel(&model.NilaiModel{})
	if out.Prestasi == nil {
		t.Fatalf("prestasi should serialize as []")
	}
}
