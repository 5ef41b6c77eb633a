package dto

import (
	"testing"

	"snbp_backend/internals/constants"
	uModel "snbp_backend/internals/features/users/user/model"
	helper "snbp_backend/internals/helpers"
)

func TestSetRolesNormalize(t *testing.T) {
	req := SetRolesRequest{Roles: []string{" Guru", "guru", "", "SISWA"}}
	req.Normalize()
	if len(req.Roles) != 2 || req.Roles[0] != "guru" || req.Roles[1] != "siswa" {
		t.Fatalf("Normalize = %v", req.Roles)
	}
	if err := helper.Validate.Struct(&req); err != nil {
		t.Fatalf("valid roles rejected: %v", err)
	}

	bad := SetRolesRequest{Roles: []string{"owner"}}
	bad.Normalize()
	if err := helper.Validate.Struct(&bad); err == nil {
		t.Fatalf("unknown role must fail validation")
	}
	empty := SetRolesRequest{}
	if err := helper.Validate.Struct(&empty); err == nil {
		t.Fatalf("empty roles must fail validation")
	}
}

func TestFromModelHidesPassword(t *testing.T) {
	m := &uModel.UserModel{
		Nama:     "Rina",
		Email:    "rina@sekolah.id",
		Password: "$2a$10$hash",
		IsActive: true,
		Roles: []uModel.UserRoleModel{
			{Role: constants.RoleSiswa},
			{Role: constants.RoleGuru},
		},
	}
	got := FromModel(m)
	if got.Role != constants.RoleGuru {
		t.Fatalf("primary role = %q", got.Role)
	}
	if len(got.Roles) != 2 {
		t.Fatalf("roles = %v", got.Roles)
	}
}

func TestPatchApply(t *testing.T) {
	nama := "  Budi Santoso "
	off := false
	req := PatchUserRequest{Nama: &nama, IsActive: &off}
	req.Normalize()

	m := &uModel.UserModel{Nama: "Budi", IsActive: true}
	req.Apply(m)
	if m.Nama != "Budi Santoso" || m.IsActive {
		t.Fatalf("Apply = %+v", m)
	}
}
