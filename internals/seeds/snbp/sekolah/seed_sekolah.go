package sekolah

import (
	"errors"
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"snbp_backend/internals/features/snbp/sekolah/dto"
	"snbp_backend/internals/features/snbp/sekolah/model"
	helper "snbp_backend/internals/helpers"
)

func SeedSekolahFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file sekolah:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var inputs []dto.CreateSekolahRequest
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	for i := range inputs {
		req := &inputs[i]
		req.Normalize()
		if err := helper.Validate.Struct(req); err != nil {
			log.Printf("❌ Sekolah '%s' tidak valid: %v", req.NPSN, err)
			continue
		}

		var existing model.SekolahModel
		err := db.Where("sekolah_npsn = ?", req.NPSN).First(&existing).Error
		if err == nil {
			log.Printf("ℹ️ NPSN '%s' sudah ada, dilewati.", req.NPSN)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("❌ Gagal cek NPSN '%s': %v", req.NPSN, err)
			continue
		}

		if err := db.Create(req.ToModel()).Error; err != nil {
			log.Printf("❌ Gagal insert sekolah '%s': %v", req.Nama, err)
			continue
		}
		log.Printf("✅ Sekolah '%s' berhasil ditambahkan", req.Nama)
	}
}
