package dto

import (
	"testing"

	"github.com/google/uuid"

	"snbp_backend/internals/features/snbp/guru/model"
	helper "snbp_backend/internals/helpers"
)

func TestPatchGuruNIP(t *testing.T) {
	bad := PatchGuruRequest{NIP: helper.Set("12ab")}
	if errs := bad.Validate(); errs["guru_nip"] == nil {
		t.Fatalf("nip non-numeric must fail, got %v", errs)
	}

	unset := PatchGuruRequest{NIP: helper.Null[string]()}
	if errs := unset.Validate(); errs != nil {
		t.Fatalf("null nip must pass, got %v", errs)
	}

	nip := "198701012010011001"
	m := &model.GuruModel{Nama: "Bu Rina", NIP: &nip, IsActive: true}
	unset.Apply(m)
	if m.NIP != nil {
		t.Fatalf("nip should be cleared")
	}
}

func TestPatchGuruSekolah(t *testing.T) {
	sid := uuid.New()
	off := false
	req := PatchGuruRequest{SekolahID: helper.Set(sid), IsActive: &off}

	m := &model.GuruModel{Nama: "Pak Andi", IsActive: true}
	req.Apply(m)
	if m.SekolahID == nil || *m.SekolahID != sid || m.IsActive {
		t.Fatalf("apply result = %+v", m)
	}
}

func TestCreateGuruDefaults(t *testing.T) {
	req := CreateGuruRequest{Nama: "  Bu Sari  "}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		t.Fatalf("validate: %v", err)
	}
	m := req.ToModel()
	if m.Nama != "Bu Sari" || !m.IsActive {
		t.Fatalf("model = %+v", m)
	}
}
