package database

import (
	"log"

	"gorm.io/gorm"

	activityModel "snbp_backend/internals/features/snbp/activity/model"
	guruModel "snbp_backend/internals/features/snbp/guru/model"
	nilaiModel "snbp_backend/internals/features/snbp/nilai/model"
	prediksiModel "snbp_backend/internals/features/snbp/prediksi/model"
	preprocessingModel "snbp_backend/internals/features/snbp/preprocessing/model"
	sekolahModel "snbp_backend/internals/features/snbp/sekolah/model"
	siswaModel "snbp_backend/internals/features/snbp/siswa/model"
	authModel "snbp_backend/internals/features/users/auth/model"
	userModel "snbp_backend/internals/features/users/user/model"
)

// Urutan penting: tabel induk dulu (FK).
func models() []any {
	return []any{
		&userModel.UserModel{},
		&userModel.UserRoleModel{},
		&authModel.TokenBlacklist{},
		&activityModel.ActivityLogModel{},
		&sekolahModel.SekolahModel{},
		&guruModel.GuruModel{},
		&siswaModel.SiswaModel{},
		&nilaiModel.NilaiModel{},
		&prediksiModel.PrediksiModel{},
		&preprocessingModel.PreprocessingLogModel{},
		&preprocessingModel.PreprocessingDataModel{},
	}
}

// AutoMigrate: hanya jalan kalau DB_AUTO_MIGRATE=true.
func AutoMigrate(db *gorm.DB) error {
	// gen_random_uuid() butuh pgcrypto di PG < 13
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		log.Printf("[WARN] pgcrypto: %v", err)
	}
	if err := db.AutoMigrate(models()...); err != nil {
		return err
	}
	log.Printf("[INFO] AutoMigrate selesai (%d tabel)", len(models()))
	return nil
}
