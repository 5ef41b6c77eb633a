package user

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"snbp_backend/internals/constants"
	authRepo "snbp_backend/internals/features/users/auth/repository"
	authService "snbp_backend/internals/features/users/auth/service"
	"snbp_backend/internals/features/users/user/model"
)

type UserSeed struct {
	Nama     string `json:"nama"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var inputs []UserSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	for _, data := range inputs {
		var existing model.UserModel
		err := db.Where("user_email = ?", data.Email).First(&existing).Error
		if err == nil {
			log.Printf("ℹ️ User dengan email '%s' sudah ada, dilewati.", data.Email)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("❌ Gagal cek user '%s': %v", data.Email, err)
			continue
		}

		role, err := constants.ParseRole(data.Role)
		if err != nil {
			log.Printf("❌ %s: %v", data.Email, err)
			continue
		}

		// 🔐 Hash password sebelum disimpan
		hashed, err := authService.HashPassword(data.Password)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", data.Email, err)
			continue
		}

		u := model.UserModel{
			Nama:     data.Nama,
			Email:    data.Email,
			Password: hashed,
			IsActive: true,
		}
		if err := authRepo.CreateUserWithRole(context.Background(), db, &u, role); err != nil {
			log.Printf("❌ Gagal insert user '%s': %v", data.Email, err)
			continue
		}
		log.Printf("✅ User '%s' (%s) berhasil ditambahkan", data.Email, role)
	}
}
