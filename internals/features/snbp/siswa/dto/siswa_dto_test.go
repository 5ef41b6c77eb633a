package dto

import (
	"testing"

	"snbp_backend/internals/features/snbp/siswa/model"
	helper "snbp_backend/internals/helpers"
)

func TestCreateSiswaValidation(t *testing.T) {
	cases := []struct {
		name  string
		nisn  string
		kelas string
		ok    bool
	}{
		{"valid", "0051234567", "XII IPA 1", true},
		{"nisn 9 digit", "005123456", "XII IPA 1", false},
		{"nisn huruf", "00512345AB", "XII IPA 1", false},
		{"kelas kosong", "0051234567", "   ", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := CreateSiswaRequest{Nama: "Ahmad Fauzi", NISN: tc.nisn, Kelas: tc.kelas}
			req.Normalize()
			err := helper.Validate.Struct(&req)
			if (err == nil) != tc.ok {
				t.Fatalf("validate err=%v want ok=%v", err, tc.ok)
			}
		})
	}
}

func TestPatchSiswaValidate(t *testing.T) {
	kosong := "  "
	req := PatchSiswaRequest{
		Kelas:            &kosong,
		PeringkatSekolah: helper.Set(0),
		TahunMasuk:       helper.Set(1990),
	}
	req.Normalize()
	errs := req.Validate()
	for _, k := range []string{"siswa_kelas", "siswa_peringkat_sekolah", "siswa_tahun_masuk"} {
		if errs[k] == nil {
			t.Errorf("expected error for %s, got %v", k, errs)
		}
	}

	ok := PatchSiswaRequest{PeringkatKelas: helper.Null[int]()}
	if errs := ok.Validate(); errs != nil {
		t.Fatalf("null peringkat must pass, got %v", errs)
	}
}

func TestPatchSiswaApply(t *testing.T) {
	rank := 3
	jurusan := "IPA"
	m := &model.SiswaModel{Nama: "Siti", NISN: "0051234567", Kelas: "XII", Jurusan: &jurusan, PeringkatSekolah: &rank, IsActive: true}

	kelas := "XII IPS 2"
	req := PatchSiswaRequest{
		Kelas:            &kelas,
		Jurusan:          helper.Set("IPS"),
		PeringkatSekolah: helper.Null[int](),
	}
	req.Apply(m)

	if m.Kelas != "XII IPS 2" || m.Jurusan == nil || *m.Jurusan != "IPS" || m.PeringkatSekolah != nil || m.NISN != "0051234567" {
		t.Fatalf("apply result = %+v", m)
	}
}
