package controller

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"snbp_backend/internals/constants"
	"snbp_backend/internals/features/snbp/dashboard/service"
	helperAuth "snbp_backend/internals/helpers/auth"
	"snbp_backend/internals/helpers/querycache"
)

func newTestApp(h *DashboardController, role constants.Role) *fiber.App {
	app := fiber.New()
	app.Get("/dashboard", func(c *fiber.Ctx) error {
		if role != "" {
			helperAuth.Init(c, &helperAuth.Session{UserID: uuid.New(), Role: role})
		}
		return c.Next()
	}, h.Get)
	return app
}

func get(t *testing.T, app *fiber.App) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/dashboard", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func TestDashboardDispatchAndCache(t *testing.T) {
	calls := 0
	h := &DashboardController{
		Cache: querycache.New(time.Minute),
		Builders: service.Builders{
			Admin: func(context.Context) (any, error) { calls++; return fiber.Map{"role": "admin"}, nil },
			Guru:  func(context.Context) (any, error) { return fiber.Map{"role": "guru"}, nil },
			Siswa: func(context.Context, *helperAuth.Session) (any, error) { return fiber.Map{"role": "siswa"}, nil },
		},
	}

	app := newTestApp(h, constants.RoleAdmin)
	for i := 0; i < 2; i++ {
		code, body := get(t, app)
		if code != fiber.StatusOK || !strings.Contains(body, `"role":"admin"`) {
			t.Fatalf("admin dashboard = %d %s", code, body)
		}
	}
	if calls != 1 {
		t.Fatalf("admin view built %d times, want 1 (cached)", calls)
	}

	h.Cache.InvalidateFor(querycache.KeyNilai)
	get(t, app)
	if calls != 2 {
		t.Fatalf("nilai mutation should invalidate dashboard cache")
	}

	if code, body := get(t, newTestApp(h, constants.RoleGuru)); !strings.Contains(body, `"role":"guru"`) {
		t.Fatalf("guru dashboard = %d %s", code, body)
	}
}

func TestDashboardErrors(t *testing.T) {
	h := &DashboardController{
		Cache: querycache.New(time.Minute),
		Builders: service.Builders{
			Siswa: func(context.Context, *helperAuth.Session) (any, error) {
				return nil, fiber.NewError(fiber.StatusNotFound, "belum terhubung")
			},
		},
	}

	if code, _ := get(t, newTestApp(h, "")); code != fiber.StatusUnauthorized {
		t.Errorf("no session = %d", code)
	}
	if code, _ := get(t, newTestApp(h, constants.RoleSiswa)); code != fiber.StatusNotFound {
		t.Errorf("siswa not linked = %d", code)
	}
	if code, _ := get(t, newTestApp(h, constants.Role("kepsek"))); code != fiber.StatusForbidden {
		t.Errorf("unknown role = %d", code)
	}

	h.Builders.Admin = func(context.Context) (any, error) { return nil, errors.New("db down") }
	if code, _ := get(t, newTestApp(h, constants.RoleAdmin)); code != fiber.StatusInternalServerError {
		t.Errorf("db error = %d", code)
	}
}
