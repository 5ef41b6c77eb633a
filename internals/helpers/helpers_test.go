package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestNewPaging(t *testing.T) {
	cases := []struct {
		page, perPage     string
		wantPage, wantPer int
		wantOffset        int
	}{
		{"", "", 1, 20, 0},
		{"3", "10", 3, 10, 20},
		{"-1", "0", 1, 20, 0},
		{"2", "500", 2, 100, 100},
		{"abc", "x", 1, 20, 0},
	}
	for _, tc := range cases {
		p := NewPaging(tc.page, tc.perPage, 20, 100)
		if p.Page != tc.wantPage || p.PerPage != tc.wantPer || p.Offset != tc.wantOffset || p.Limit != p.PerPage {
			t.Errorf("NewPaging(%q,%q) = %+v", tc.page, tc.perPage, p)
		}
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	if p.TotalPages != 3 || !p.HasNext || !p.HasPrev {
		t.Fatalf("unexpected pagination %+v", p)
	}
	empty := BuildPaginationFromPage(0, 1, 20)
	if empty.TotalPages != 1 || empty.HasNext || empty.HasPrev {
		t.Fatalf("empty pagination %+v", empty)
	}
}

func TestFoldSearch(t *testing.T) {
	cases := map[string]string{
		"  Ánggi   Putri ": "anggi putri",
		"SMA Négeri 1":     "sma negeri 1",
		"":                 "",
	}
	for in, want := range cases {
		if got := FoldSearch(in); got != want {
			t.Errorf("FoldSearch(%q) = %q want %q", in, got, want)
		}
	}
	if got := LikePattern("50%_a"); got != `%50\%\_a%` {
		t.Errorf("LikePattern escape = %q", got)
	}
}

func TestDBErrorStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{gorm.ErrRecordNotFound, fiber.StatusNotFound},
		{fmt.Errorf("wrap: %w", &pgconn.PgError{Code: "23505"}), fiber.StatusConflict},
		{&pgconn.PgError{Code: "23503"}, fiber.StatusBadRequest},
		{&pgconn.PgError{Code: "23514"}, fiber.StatusBadRequest},
		{&pgconn.PgError{Code: "42P01"}, fiber.StatusInternalServerError},
		{errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got, _ := DBErrorStatus(tc.err); got != tc.want {
			t.Errorf("DBErrorStatus(%v) = %d want %d", tc.err, got, tc.want)
		}
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(fmt.Errorf("nilai siswa: %w", gorm.ErrRecordNotFound)) {
		t.Error("wrapped ErrRecordNotFound harus dikenali")
	}
	if IsNotFound(errors.New("connection reset")) || IsNotFound(nil) {
		t.Error("error lain bukan not found")
	}
}

func TestFieldErrors(t *testing.T) {
	type req struct {
		NPSN string `json:"npsn" validate:"required,len=8,numeric"`
	}
	err := Validate.Struct(req{NPSN: "12"})
	fe := FieldErrors(err)
	if len(fe["npsn"]) == 0 || fe["npsn"][0] != "len=8" {
		t.Fatalf("expected npsn len=8, got %v", fe)
	}
}
