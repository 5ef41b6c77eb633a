package service

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"snbp_backend/internals/constants"
	authRepo "snbp_backend/internals/features/users/auth/repository"
	helperAuth "snbp_backend/internals/helpers/auth"
)

const callerSecret = "test-secret"

type noBlacklist struct{}

func (noBlacklist) Add(context.Context, string, time.Time) error { return nil }

func (noBlacklist) IsBlacklisted(context.Context, string) (bool, error) { return false, nil }

func TestIsAdminCallerRechecksDatabase(t *testing.T) {
	adminTok, _, err := helperAuth.IssueAccessToken(callerSecret, uuid.New(), "Admin", "admin@x.id", constants.RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	cases := []struct {
		name  string
		token string
		role  constants.Role
		err   error
		want  bool
	}{
		{"admin still admin", adminTok, constants.RoleAdmin, nil, true},
		{"admin deactivated", adminTok, "", authRepo.ErrUserInactive, false},
		{"admin demoted to guru", adminTok, constants.RoleGuru, nil, false},
		{"db error", adminTok, "", errors.New("db down"), false},
		{"no token", "", constants.RoleAdmin, nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resolve := func(context.Context, uuid.UUID) (constants.Role, error) { return tc.role, tc.err }

			app := fiber.New()
			app.Post("/register", func(c *fiber.Ctx) error {
				if isAdminCaller(c, callerSecret, noBlacklist{}, resolve) {
					return c.SendStatus(fiber.StatusOK)
				}
				return c.SendStatus(fiber.StatusForbidden)
			})

			req := httptest.NewRequest("POST", "/register", nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if got := resp.StatusCode == fiber.StatusOK; got != tc.want {
				t.Fatalf("isAdminCaller = %v want %v", got, tc.want)
			}
		})
	}
}
