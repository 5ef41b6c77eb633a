package service

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := CheckPasswordHash(hash, "rahasia123"); err != nil {
		t.Fatalf("correct password rejected: %v", err)
	}
	if err := CheckPasswordHash(hash, "salah123"); err == nil {
		t.Fatalf("wrong password accepted")
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	cases := map[string]bool{
		"short1":      false,
		"onlyletters": false,
		"12345678":    false,
		"rahasia123":  true,
	}
	for pw, ok := range cases {
		if err := ValidatePasswordStrength(pw); (err == nil) != ok {
			t.Errorf("ValidatePasswordStrength(%q) err=%v want ok=%v", pw, err, ok)
		}
	}
}

func TestRegisterRequestNormalize(t *testing.T) {
	r := RegisterRequest{Nama: "  Dewi ", Email: " Dewi@Sekolah.ID ", Role: " GURU "}
	r.Normalize()
	if r.Nama != "Dewi" || r.Email != "dewi@sekolah.id" || r.Role != "guru" {
		t.Fatalf("normalize = %+v", r)
	}
}
