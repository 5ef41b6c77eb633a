package helper

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"snbp_backend/internals/constants"
)

const (
	sessionLocalKey = "session"
	LocalUserID     = "user_id"
	LocalUserRole   = "userRole"
)

var ErrNoSession = fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - sesi tidak ditemukan")

// Session: user yang sedang login, dibangun sekali per request oleh middleware auth.
type Session struct {
	UserID    uuid.UUID      `json:"id"`
	Nama      string         `json:"nama"`
	Email     string         `json:"email"`
	Role      constants.Role `json:"role"`
	Token     string         `json:"-"`
	ExpiresAt time.Time      `json:"expires_at"`
}

func (s *Session) IsAdmin() bool { return s != nil && s.Role == constants.RoleAdmin }

func (s *Session) IsStaff() bool {
	return s != nil && (s.Role == constants.RoleAdmin || s.Role == constants.RoleGuru)
}

func NewSession(claims *AccessClaims, rawToken string) *Session {
	return &Session{
		UserID:    claims.UserID,
		Nama:      claims.Nama,
		Email:     claims.Email,
		Role:      claims.Role,
		Token:     rawToken,
		ExpiresAt: claims.ExpiresAt,
	}
}

// Init menyimpan session ke locals (plus key lama user_id/userRole).
func Init(c *fiber.Ctx, s *Session) {
	c.Locals(sessionLocalKey, s)
	c.Locals(LocalUserID, s.UserID.String())
	c.Locals(LocalUserRole, string(s.Role))
}

func SessionFrom(c *fiber.Ctx) (*Session, error) {
	s, ok := c.Locals(sessionLocalKey).(*Session)
	if !ok || s == nil || s.UserID == uuid.Nil {
		return nil, ErrNoSession
	}
	return s, nil
}

// Teardown: masukkan token ke blacklist sampai exp, lalu kosongkan locals.
func Teardown(ctx context.Context, c *fiber.Ctx, bl Blacklist) error {
	s, err := SessionFrom(c)
	if err != nil {
		return err
	}
	if bl != nil {
		if err := bl.Add(ctx, s.Token, s.ExpiresAt); err != nil {
			return errors.Join(errors.New("gagal blacklist token"), err)
		}
	}
	c.Locals(sessionLocalKey, nil)
	c.Locals(LocalUserID, nil)
	c.Locals(LocalUserRole, nil)
	return nil
}
