package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"snbp_backend/internals/features/snbp/nilai/model"
	"snbp_backend/internals/helpers/statistics"
)

// ComputeAverage: rata-rata semester yang terisi, dibulatkan 2 desimal. nil kalau tidak ada yang terisi.
func ComputeAverage(scores ...*float64) *float64 {
	present := 0
	for _, s := range scores {
		if s != nil {
			present++
		}
	}
	if present == 0 {
		return nil
	}
	avg := statistics.Round2(statistics.MeanPresent(scores))
	return &avg
}

// Recompute mengisi ulang rata_rata dari semester; input klien untuk rata_rata diabaikan.
func Recompute(m *model.NilaiModel) {
	s := m.Semesters()
	m.RataRata = ComputeAverage(s[:]...)
}

var upsertColumns = []string{
	"nilai_semester_1", "nilai_semester_2", "nilai_semester_3", "nilai_semester_4", "nilai_semester_5",
	"nilai_rata_rata", "nilai_prestasi", "nilai_portofolio", "nilai_catatan", "nilai_updated_at",
}

// Upsert by siswa: INSERT ... ON CONFLICT (nilai_siswa_id) DO UPDATE, lalu baca ulang barisnya.
func Upsert(ctx context.Context, db *gorm.DB, m *model.NilaiModel) (*model.NilaiModel, error) {
	Recompute(m)
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "nilai_siswa_id"}},
			DoUpdates: clause.AssignmentColumns(upsertColumns),
		}).
		Omit("Siswa").
		Create(m).Error
	if err != nil {
		return nil, err
	}
	return FindBySiswa(ctx, db, m.SiswaID)
}

func FindBySiswa(ctx context.Context, db *gorm.DB, siswaID uuid.UUID) (*model.NilaiModel, error) {
	var out model.NilaiModel
	if err := db.WithContext(ctx).
		Preload("Siswa").
		Where("nilai_siswa_id = ?", siswaID).
		First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}
