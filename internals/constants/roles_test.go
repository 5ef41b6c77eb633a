package constants

import "testing"

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"admin":  RoleAdmin,
		" Guru ": RoleGuru,
		"SISWA":  RoleSiswa,
	}
	for in, want := range cases {
		got, err := ParseRole(in)
		if err != nil || got != want {
			t.Errorf("ParseRole(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	for _, bad := range []string{"", "owner", "user"} {
		if _, err := ParseRole(bad); err == nil {
			t.Errorf("ParseRole(%q) should fail", bad)
		}
	}
}

func TestPriority(t *testing.T) {
	if !(RoleAdmin.Priority() > RoleGuru.Priority() && RoleGuru.Priority() > RoleSiswa.Priority()) {
		t.Fatalf("priority order must be admin > guru > siswa")
	}
	if Role("x").Priority() != 0 {
		t.Fatalf("unknown role priority must be 0")
	}
}
