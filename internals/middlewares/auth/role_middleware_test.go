package auth

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"snbp_backend/internals/constants"
	authRepo "snbp_backend/internals/features/users/auth/repository"
	helperAuth "snbp_backend/internals/helpers/auth"
)

const secret = "test-secret"

type fakeBlacklist map[string]bool

func (f fakeBlacklist) Add(_ context.Context, raw string, _ time.Time) error {
	f[raw] = true
	return nil
}

func (f fakeBlacklist) IsBlacklisted(_ context.Context, raw string) (bool, error) {
	return f[raw], nil
}

func tokenFor(t *testing.T, role constants.Role) string {
	t.Helper()
	tok, _, err := helperAuth.IssueAccessToken(secret, uuid.New(), "Tester", "t@x.id", role, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return tok
}

func newApp(bl fakeBlacklist, resolve func(*fiber.Ctx, uuid.UUID) (constants.Role, error)) *fiber.App {
	app := fiber.New()
	g := app.Group("/api/g", AuthJWT(AuthJWTOpts{Secret: secret, Blacklist: bl, RoleResolver: resolve}),
		OnlyRolesSlice(constants.RoleErrorStaff("siswa"), constants.StaffRoles))
	g.Get("/siswa", func(c *fiber.Ctx) error { return c.SendString("ok") })

	// tanpa AuthJWT: OnlyRoles harus 401
	app.Get("/bare", OnlyRoles("x", constants.RoleAdmin), func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func do(t *testing.T, app *fiber.App, path, token string) int {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp.StatusCode
}

func TestRoleMatrix(t *testing.T) {
	app := newApp(fakeBlacklist{}, nil)

	cases := []struct {
		name string
		role constants.Role
		want int
	}{
		{"admin allowed", constants.RoleAdmin, fiber.StatusOK},
		{"guru allowed", constants.RoleGuru, fiber.StatusOK},
		{"siswa forbidden", constants.RoleSiswa, fiber.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := do(t, app, "/api/g/siswa", tokenFor(t, tc.role)); got != tc.want {
				t.Fatalf("status = %d want %d", got, tc.want)
			}
		})
	}
}

func TestUnauthorizedPaths(t *testing.T) {
	bl := fakeBlacklist{}
	app := newApp(bl, nil)

	if got := do(t, app, "/api/g/siswa", ""); got != fiber.StatusUnauthorized {
		t.Errorf("no token: %d", got)
	}
	if got := do(t, app, "/api/g/siswa", "garbage"); got != fiber.StatusUnauthorized {
		t.Errorf("bad token: %d", got)
	}
	if got := do(t, app, "/bare", ""); got != fiber.StatusUnauthorized {
		t.Errorf("no session on role check: %d", got)
	}

	tok := tokenFor(t, constants.RoleAdmin)
	bl[tok] = true
	if got := do(t, app, "/api/g/siswa", tok); got != fiber.StatusUnauthorized {
		t.Errorf("blacklisted token: %d", got)
	}
}

func resolveTo(role constants.Role, err error) func(*fiber.Ctx, uuid.UUID) (constants.Role, error) {
	return func(*fiber.Ctx, uuid.UUID) (constants.Role, error) { return role, err }
}

func TestInactiveUser(t *testing.T) {
	app := newApp(fakeBlacklist{}, resolveTo("", authRepo.ErrUserInactive))
	if got := do(t, app, "/api/g/siswa", tokenFor(t, constants.RoleAdmin)); got != fiber.StatusForbidden {
		t.Fatalf("inactive user status = %d want 403", got)
	}

	app = newApp(fakeBlacklist{}, resolveTo("", gorm.ErrRecordNotFound))
	if got := do(t, app, "/api/g/siswa", tokenFor(t, constants.RoleAdmin)); got != fiber.StatusUnauthorized {
		t.Fatalf("deleted user status = %d want 401", got)
	}

	app = newApp(fakeBlacklist{}, resolveTo("", errors.New("db down")))
	if got := do(t, app, "/api/g/siswa", tokenFor(t, constants.RoleAdmin)); got != fiber.StatusInternalServerError {
		t.Fatalf("db error status = %d want 500", got)
	}
}

func TestRoleFromDatabaseOverridesClaim(t *testing.T) {
	// token masih berklaim admin, tapi role di DB sudah diturunkan jadi siswa
	app := newApp(fakeBlacklist{}, resolveTo(constants.RoleSiswa, nil))
	if got := do(t, app, "/api/g/siswa", tokenFor(t, constants.RoleAdmin)); got != fiber.StatusForbidden {
		t.Fatalf("demoted admin status = %d want 403", got)
	}

	app = newApp(fakeBlacklist{}, resolveTo("", authRepo.ErrNoRole))
	if got := do(t, app, "/api/g/siswa", tokenFor(t, constants.RoleAdmin)); got != fiber.StatusForbidden {
		t.Fatalf("roleless user status = %d want 403", got)
	}

	// promosi juga langsung berlaku
	app = newApp(fakeBlacklist{}, resolveTo(constants.RoleGuru, nil))
	if got := do(t, app, "/api/g/siswa", tokenFor(t, constants.RoleSiswa)); got != fiber.StatusOK {
		t.Fatalf("promoted siswa status = %d want 200", got)
	}
}
