package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"snbp_backend/internals/features/snbp/prediksi/model"
)

// LatestForSiswa: prediksi published terbaru; kalau belum ada, prediksi terbaru apa pun statusnya.
func LatestForSiswa(ctx context.Context, db *gorm.DB, siswaID uuid.UUID) (*model.PrediksiModel, error) {
	db = db.WithContext(ctx)

	var m model.PrediksiModel
	err := db.Where("prediksi_siswa_id = ? AND prediksi_status = ?", siswaID, model.StatusPublished).
		Order("prediksi_created_at DESC").
		Limit(1).Find(&m).Error
	if err != nil {
		return nil, err
	}
	if m.ID != uuid.Nil {
		return &m, nil
	}

	if err := db.Where("prediksi_siswa_id = ?", siswaID).
		Order("prediksi_created_at DESC").
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Latest: n prediksi terbaru beserta siswa (kartu dashboard guru).
func Latest(ctx context.Context, db *gorm.DB, n int) ([]model.PrediksiModel, error) {
	var rows []model.PrediksiModel
	err := db.WithContext(ctx).
		Preload("Siswa").
		Order("prediksi_created_at DESC").
		Limit(n).
		Find(&rows).Error
	return rows, err
}
