package service

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"snbp_backend/internals/features/snbp/siswa/model"
	helper "snbp_backend/internals/helpers"
	helperAuth "snbp_backend/internals/helpers/auth"
)

var ErrSiswaTidakTerhubung = fiber.NewError(fiber.StatusNotFound, "Akun ini belum terhubung ke data siswa")

// FindByUserID: data siswa milik akun login.
func FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.SiswaModel, error) {
	var m model.SiswaModel
	err := db.WithContext(ctx).
		Preload("Sekolah").
		Preload("Guru").
		Where("siswa_user_id = ?", userID).
		First(&m).Error
	if helper.IsNotFound(err) {
		return nil, ErrSiswaTidakTerhubung
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CurrentSiswa: session → siswa. 401 tanpa session, 404 bila belum ditautkan.
func CurrentSiswa(c *fiber.Ctx, db *gorm.DB) (*model.SiswaModel, error) {
	s, err := helperAuth.SessionFrom(c)
	if err != nil {
		return nil, err
	}
	return FindByUserID(c.UserContext(), db, s.UserID)
}
