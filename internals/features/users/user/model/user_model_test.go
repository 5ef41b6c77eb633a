package model

import (
	"testing"

	"snbp_backend/internals/constants"
)

func TestPrimaryRole(t *testing.T) {
	cases := []struct {
		name  string
		roles []constants.Role
		want  constants.Role
		ok    bool
	}{
		{"none", nil, "", false},
		{"siswa only", []constants.Role{constants.RoleSiswa}, constants.RoleSiswa, true},
		{"guru beats siswa", []constants.Role{constants.RoleSiswa, constants.RoleGuru}, constants.RoleGuru, true},
		{"admin beats all", []constants.Role{constants.RoleGuru, constants.RoleAdmin, constants.RoleSiswa}, constants.RoleAdmin, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows := make([]UserRoleModel, 0, len(tc.roles))
			for _, r := range tc.roles {
				rows = append(rows, UserRoleModel{Role: r})
			}
			got, ok := PrimaryRole(rows)
			if got != tc.want || ok != tc.ok {
				t.Fatalf("PrimaryRole = %q,%v want %q,%v", got, ok, tc.want, tc.ok)
			}
		})
	}
}
