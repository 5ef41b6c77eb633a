package dto

import (
	"testing"

	"snbp_backend/internals/features/snbp/sekolah/model"
	helper "snbp_backend/internals/helpers"
)

func TestCreateSekolahValidation(t *testing.T) {
	cases := []struct {
		name string
		req  CreateSekolahRequest
		ok   bool
	}{
		{"valid", CreateSekolahRequest{Nama: "SMAN 1 Bandung", NPSN: "20219175", Akreditasi: "a"}, true},
		{"npsn 7 digit", CreateSekolahRequest{Nama: "SMAN 1", NPSN: "2021917", Akreditasi: "A"}, false},
		{"npsn huruf", CreateSekolahRequest{Nama: "SMAN 1", NPSN: "2021917X", Akreditasi: "A"}, false},
		{"akreditasi D", CreateSekolahRequest{Nama: "SMAN 1", NPSN: "20219175", Akreditasi: "D"}, false},
		{"kuota negatif", CreateSekolahRequest{Nama: "SMAN 1", NPSN: "20219175", Akreditasi: "B", KuotaSNBP: intPtr(-1)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.req.Normalize()
			err := helper.Validate.Struct(&tc.req)
			if (err == nil) != tc.ok {
				t.Fatalf("validate err=%v want ok=%v", err, tc.ok)
			}
		})
	}
}

func TestPatchSekolahApply(t *testing.T) {
	alamat := "Jl. Merdeka"
	m := &model.SekolahModel{Nama: "Lama", NPSN: "20219175", Akreditasi: model.AkreditasiB, Alamat: &alamat, KuotaSNBP: 10}

	akr := " a "
	req := PatchSekolahRequest{
		Akreditasi: &akr,
		Alamat:     helper.Null[string](),
		KuotaSNBP:  intPtr(25),
	}
	req.Normalize()
	req.Apply(m)

	if m.Akreditasi != model.AkreditasiA || m.Alamat != nil || m.KuotaSNBP != 25 || m.Nama != "Lama" {
		t.Fatalf("apply result = %+v", m)
	}
}

func intPtr(v int) *int { return &v }
