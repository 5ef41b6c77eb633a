package constants

import (
	"fmt"
	"strings"
)

// Role aplikasi (tabel user_roles)
type Role string

const (
	RoleAdmin Role = "admin"
	RoleGuru  Role = "guru"
	RoleSiswa Role = "siswa"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleGuru, RoleSiswa:
		return true
	default:
		return false
	}
}

// Priority dipakai saat user punya lebih dari satu role (admin > guru > siswa).
func (r Role) Priority() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleGuru:
		return 2
	case RoleSiswa:
		return 1
	default:
		return 0
	}
}

func (r Role) String() string { return string(r) }

func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("role tidak dikenal: %q", s)
	}
	return r, nil
}

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyStaffCanAccess  = "❌ Hanya guru atau admin yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []Role{
		RoleAdmin,
		RoleGuru,
		RoleSiswa,
	}

	StaffRoles = []Role{
		RoleAdmin,
		RoleGuru,
	}

	AdminOnly = []Role{
		RoleAdmin,
	}
)
