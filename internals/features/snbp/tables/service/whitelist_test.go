package service

import (
	"strings"
	"testing"
)

func TestLookupOnlyWhitelisted(t *testing.T) {
	for _, name := range []string{"siswa", "nilai", "users", "preprocessing_data"} {
		spec, ok := Lookup(name)
		if !ok || spec.Name != name || len(spec.Columns) == 0 || spec.OrderBy == "" {
			t.Errorf("Lookup(%q) = %+v, %v", name, spec, ok)
		}
	}
	for _, name := range []string{"", "token_blacklist", "pg_user", "siswa; DROP TABLE siswa"} {
		if _, ok := Lookup(name); ok {
			t.Errorf("Lookup(%q) must be rejected", name)
		}
	}
}

func TestUsersHidesPassword(t *testing.T) {
	spec, _ := Lookup("users")
	for _, col := range spec.Columns {
		if strings.Contains(col, "password") {
			t.Fatalf("users exposes %s", col)
		}
	}
}

func TestTablesSorted(t *testing.T) {
	list := Tables()
	if len(list) != len(whitelist) {
		t.Fatalf("len = %d want %d", len(list), len(whitelist))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].Name >= list[i].Name {
			t.Fatalf("not sorted at %d: %s >= %s", i, list[i-1].Name, list[i].Name)
		}
	}
}
