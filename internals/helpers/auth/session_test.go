package helper

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"snbp_backend/internals/constants"
)

const testSecret = "test-secret"

type memBlacklist struct {
	tokens map[string]time.Time
}

func (m *memBlacklist) Add(_ context.Context, raw string, exp time.Time) error {
	m.tokens[raw] = exp
	return nil
}

func (m *memBlacklist) IsBlacklisted(_ context.Context, raw string) (bool, error) {
	_, ok := m.tokens[raw]
	return ok, nil
}

func TestTokenRoundTrip(t *testing.T) {
	id := uuid.New()
	tok, exp, err := IssueAccessToken(testSecret, id, "Budi", "budi@sekolah.id", constants.RoleGuru, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := ParseAccessToken(testSecret, tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != id || claims.Role != constants.RoleGuru || claims.Nama != "Budi" || claims.Email != "budi@sekolah.id" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
	if !claims.ExpiresAt.Equal(exp) {
		t.Fatalf("exp mismatch: %v vs %v", claims.ExpiresAt, exp)
	}

	if _, err := ParseAccessToken("other-secret", tok); err == nil {
		t.Fatalf("expected signature failure with wrong secret")
	}
}

func TestParseRejectsExpiredAndBadRole(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   uuid.NewString(),
		"role": "admin",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})
	raw, _ := expired.SignedString([]byte(testSecret))
	if _, err := ParseAccessToken(testSecret, raw); err != ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}

	badRole := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   uuid.NewString(),
		"role": "owner",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	raw, _ = badRole.SignedString([]byte(testSecret))
	if _, err := ParseAccessToken(testSecret, raw); err == nil {
		t.Fatalf("unknown role must be rejected")
	}
}

func TestSessionInitAndTeardown(t *testing.T) {
	bl := &memBlacklist{tokens: map[string]time.Time{}}
	id := uuid.New()
	tok, _, _ := IssueAccessToken(testSecret, id, "Sari", "sari@sekolah.id", constants.RoleSiswa, time.Hour)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		if _, err := SessionFrom(c); err == nil {
			t.Errorf("session must be absent before Init")
		}
		claims, err := ParseAccessToken(testSecret, tok)
		if err != nil {
			return err
		}
		Init(c, NewSession(claims, tok))

		s, err := SessionFrom(c)
		if err != nil || s.UserID != id || s.Role != constants.RoleSiswa {
			t.Errorf("session after Init = %+v, %v", s, err)
		}
		if c.Locals(LocalUserRole) != "siswa" {
			t.Errorf("userRole local not set")
		}

		if err := Teardown(context.Background(), c, bl); err != nil {
			t.Errorf("teardown: %v", err)
		}
		if _, err := SessionFrom(c); err == nil {
			t.Errorf("session must be cleared after Teardown")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusNoContent {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ok, _ := bl.IsBlacklisted(context.Background(), tok); !ok {
		t.Fatalf("token should be blacklisted after Teardown")
	}
}

func TestExtractBearerToken(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		tok, err := ExtractBearerToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).SendString(err.Error())
		}
		return c.SendString(tok)
	})

	cases := []struct {
		header string
		cookie string
		status int
	}{
		{"Bearer abc", "", 200},
		{"bearer   \"abc\"", "", 200},
		{"", "abc", 200},
		{"Basic abc", "", 401},
		{"", "", 401},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("GET", "/", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		if tc.cookie != "" {
			req.Header.Set("Cookie", "access_token="+tc.cookie)
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != tc.status {
			t.Errorf("header=%q cookie=%q status=%d want %d", tc.header, tc.cookie, resp.StatusCode, tc.status)
		}
	}
}
