package service

import (
	"testing"

	"snbp_backend/internals/constants"
)

func TestForRole(t *testing.T) {
	cases := []struct {
		role constants.Role
		cat  Category
		want []string
	}{
		{constants.RoleSiswa, "", []string{"1", "5"}},
		{constants.RoleGuru, "", []string{"1", "2", "3", "4", "5", "6"}},
		{constants.RoleAdmin, CategoryInput, []string{"2", "3"}},
		{constants.RoleSiswa, CategoryStatistik, nil},
		{constants.Role("kepsek"), "", nil},
	}
	for _, tc := range cases {
		got := ForRole(tc.role, tc.cat)
		if len(got) != len(tc.want) {
			t.Fatalf("ForRole(%s,%q) len = %d want %d", tc.role, tc.cat, len(got), len(tc.want))
		}
		for i, s := range got {
			if s.ID != tc.want[i] {
				t.Errorf("ForRole(%s,%q)[%d] = %s want %s", tc.role, tc.cat, i, s.ID, tc.want[i])
			}
			if s.CategoryLabel == "" {
				t.Errorf("section %s missing category label", s.ID)
			}
		}
	}
}

func TestParseCategory(t *testing.T) {
	if c, err := ParseCategory(" Prediksi "); err != nil || c != CategoryPrediksi {
		t.Fatalf("ParseCategory = %q, %v", c, err)
	}
	if _, err := ParseCategory("video"); err == nil {
		t.Fatalf("unknown category must fail")
	}
}
