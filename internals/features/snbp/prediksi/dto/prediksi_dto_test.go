package dto

import (
	"testing"

	"github.com/google/uuid"

	"snbp_backend/internals/features/snbp/prediksi/model"
	helper "snbp_backend/internals/helpers"
)

func fp(v float64) *float64 { return &v }

func TestCreatePrediksiValidation(t *testing.T) {
	cases := []struct {
		name string
		req  CreatePrediksiRequest
		ok   bool
	}{
		{"valid nol", CreatePrediksiRequest{SiswaID: uuid.New(), PersentaseKelulusan: fp(0)}, true},
		{"valid seratus", CreatePrediksiRequest{SiswaID: uuid.New(), PersentaseKelulusan: fp(100)}, true},
		{"lebih dari 100", CreatePrediksiRequest{SiswaID: uuid.New(), PersentaseKelulusan: fp(100.1)}, false},
		{"tanpa persentase", CreatePrediksiRequest{SiswaID: uuid.New()}, false},
		{"status asing", CreatePrediksiRequest{SiswaID: uuid.New(), PersentaseKelulusan: fp(60), Status: strPtr("done")}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := helper.Validate.Struct(&tc.req)
			if (err == nil) != tc.ok {
				t.Fatalf("validate err=%v want ok=%v", err, tc.ok)
			}
		})
	}
}

func TestToModelDefaultsAndDerivedFields(t *testing.T) {
	by := uuid.New()
	req := CreatePrediksiRequest{SiswaID: uuid.New(), PersentaseKelulusan: fp(82.5), PTNRekomendasi1: strPtr("  ITB ")}
	req.Normalize()
	m := req.ToModel(&by)
	if m.Status != model.StatusPending || *m.CreatedBy != by || *m.PTNRekomendasi1 != "ITB" {
		t.Fatalf("model = %+v", m)
	}

	out := FromModel(m)
	if out.Band != "lolos" || out.Label != "Sangat Tinggi" {
		t.Fatalf("band/label = %s/%s", out.Band, out.Label)
	}
}

func TestPatchPrediksiApply(t *testing.T) {
	m := &model.PrediksiModel{PersentaseKelulusan: 40, Status: model.StatusPending, Catatan: strPtr("lama")}
	st := "published"
	req := PatchPrediksiRequest{PersentaseKelulusan: fp(55), Status: &st, Catatan: helper.Null[string]()}
	req.Apply(m)
	if m.PersentaseKelulusan != 55 || m.Status != model.StatusPublished || m.Catatan != nil {
		t.Fatalf("apply result = %+v", m)
	}
}

func strPtr(s string) *string { return &s }
