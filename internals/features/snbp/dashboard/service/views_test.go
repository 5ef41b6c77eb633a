package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"snbp_backend/internals/constants"
	helperAuth "snbp_backend/internals/helpers/auth"
)

func stubBuilders(called *string) Builders {
	return Builders{
		Admin: func(context.Context) (any, error) { *called = "admin"; return "A", nil },
		Guru:  func(context.Context) (any, error) { *called = "guru"; return "G", nil },
		Siswa: func(_ context.Context, s *helperAuth.Session) (any, error) {
			*called = "siswa"
			return s.UserID, nil
		},
	}
}

func TestDispatchPicksExactlyOneView(t *testing.T) {
	for _, role := range constants.AllRoles {
		var called string
		s := &helperAuth.Session{UserID: uuid.New(), Role: role}
		if _, err := Dispatch(context.Background(), s, stubBuilders(&called)); err != nil {
			t.Fatalf("%s: %v", role, err)
		}
		if called != string(role) {
			t.Errorf("role %s dispatched to %q", role, called)
		}
	}
}

func TestDispatchUnknownRole(t *testing.T) {
	var called string
	s := &helperAuth.Session{UserID: uuid.New(), Role: constants.Role("kepsek")}
	_, err := Dispatch(context.Background(), s, stubBuilders(&called))
	if !errors.Is(err, ErrUnknownRole) || called != "" {
		t.Fatalf("unknown role: err=%v called=%q", err, called)
	}
}
