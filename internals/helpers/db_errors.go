package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kode SQLSTATE yang dipetakan ke status HTTP
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
)

// DBErrorStatus memetakan error gorm/pgx ke status HTTP + pesan singkat.
func DBErrorStatus(err error) (int, string) {
	if err == nil {
		return fiber.StatusOK, ""
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.StatusNotFound, "data tidak ditemukan"
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fiber.StatusConflict, "data sudah ada (duplikat)"
		case pgForeignKeyViolation:
			return fiber.StatusBadRequest, "referensi data tidak valid"
		case pgCheckViolation, pgNotNullViolation:
			return fiber.StatusBadRequest, "data melanggar batasan tabel"
		}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fiber.StatusConflict, "data sudah ada (duplikat)"
	}
	return fiber.StatusInternalServerError, "terjadi kesalahan database"
}

// JsonDBError: log error asli, balas JSON dengan status hasil pemetaan.
// context = aksi yang gagal, mis. "Gagal menyimpan siswa".
func JsonDBError(c *fiber.Ctx, err error, context string) error {
	status, msg := DBErrorStatus(err)
	if status >= 500 {
		log.Printf("[ERROR] %s: %v", context, err)
	}
	if context != "" {
		msg = context + ": " + msg
	}
	return JsonError(c, status, msg)
}

// IsNotFound: baris tidak ada (termasuk error yang dibungkus).
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
