package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"snbp_backend/internals/configs"
	"snbp_backend/internals/constants"
	activityService "snbp_backend/internals/features/snbp/activity/service"
	authRepo "snbp_backend/internals/features/users/auth/repository"
	userModel "snbp_backend/internals/features/users/user/model"
	helper "snbp_backend/internals/helpers"
	helperAuth "snbp_backend/internals/helpers/auth"
)

type RegisterRequest struct {
	Nama     string `json:"nama" validate:"required,min=3,max=120"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=admin guru siswa"`
}

func (r *RegisterRequest) Normalize() {
	r.Nama = strings.TrimSpace(r.Nama)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID    string         `json:"id"`
	Nama  string         `json:"nama"`
	Email string         `json:"email"`
	Role  constants.Role `json:"role"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.Normalize()
	if err := helper.Validate.Struct(&input); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}
	if err := ValidatePasswordStrength(input.Password); err != nil {
		return helper.JsonValidationError(c, map[string][]string{"password": {err.Error()}})
	}

	// default siswa; role lain hanya boleh di-assign oleh admin
	role := constants.RoleSiswa
	if input.Role != "" && input.Role != string(constants.RoleSiswa) {
		if !callerIsAdmin(db, c) {
			return helper.JsonError(c, fiber.StatusForbidden, "Hanya admin yang boleh mendaftarkan role "+input.Role)
		}
		role = constants.Role(input.Role)
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := userModel.UserModel{
		Nama:     input.Nama,
		Email:    input.Email,
		Password: hash,
		IsActive: true,
	}
	if err := authRepo.CreateUserWithRole(c.UserContext(), db, &user, role); err != nil {
		if status, _ := helper.DBErrorStatus(err); status == fiber.StatusConflict {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		log.Printf("[ERROR] register: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	activityService.Record(c, db, "register", "users", &user.ID, fiber.Map{"role": role})

	return helper.JsonCreated(c, "Registration successful", UserResponse{
		ID:    user.ID.String(),
		Nama:  user.Nama,
		Email: user.Email,
		Role:  role,
	})
}

// callerIsAdmin: token opsional pada endpoint publik. Role dicek ulang ke DB
// supaya admin yang sudah dinonaktifkan/diturunkan tidak bisa membuat akun admin.
func callerIsAdmin(db *gorm.DB, c *fiber.Ctx) bool {
	return isAdminCaller(c, configs.JWTSecret, helperAuth.NewGormBlacklist(db, configs.JWTSecret),
		func(ctx context.Context, userID uuid.UUID) (constants.Role, error) {
			return authRepo.CurrentRole(ctx, db, userID)
		})
}

func isAdminCaller(
	c *fiber.Ctx,
	secret string,
	bl helperAuth.Blacklist,
	resolve func(ctx context.Context, userID uuid.UUID) (constants.Role, error),
) bool {
	raw, err := helperAuth.ExtractBearerToken(c)
	if err != nil {
		return false
	}
	if black, err := bl.IsBlacklisted(c.UserContext(), raw); err != nil || black {
		return false
	}
	claims, err := helperAuth.ParseAccessToken(secret, raw)
	if err != nil {
		return false
	}
	role, err := resolve(c.UserContext(), claims.UserID)
	if err != nil {
		if !errors.Is(err, authRepo.ErrUserInactive) && !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("[ERROR] cek role pendaftar:", err)
		}
		return false
	}
	return role == constants.RoleAdmin
}

/* ==========================
   LOGIN (email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := helper.Validate.Struct(&input); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	user, err := authRepo.FindUserByEmail(c.UserContext(), db, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		log.Printf("[ERROR] login lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	if err := CheckPasswordHash(user.Password, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	role, ok := userModel.PrimaryRole(user.Roles)
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun belum memiliki role")
	}

	token, exp, err := helperAuth.IssueAccessToken(configs.JWTSecret, user.ID, user.Nama, user.Email, role, configs.AccessTokenTTL)
	if err != nil {
		log.Printf("[ERROR] issue token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  exp,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
		Path:     "/",
	})

	activityService.Record(c, db, "login", "users", &user.ID, nil)

	return helper.JsonOK(c, "Login berhasil", LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   exp,
		User: UserResponse{
			ID:    user.ID.String(),
			Nama:  user.Nama,
			Email: user.Email,
			Role:  role,
		},
	})
}

/* ==========================
   LOGOUT / ME
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	s, err := helperAuth.SessionFrom(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	userID := s.UserID

	bl := helperAuth.NewGormBlacklist(db, configs.JWTSecret)
	if err := helperAuth.Teardown(c.UserContext(), c, bl); err != nil {
		log.Printf("[ERROR] logout: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
		Path:     "/",
	})

	activityService.Record(c, db, "logout", "users", &userID, nil)
	return helper.JsonOK(c, "Logout berhasil", nil)
}

func Me(db *gorm.DB, c *fiber.Ctx) error {
	s, err := helperAuth.SessionFrom(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"user": UserResponse{
			ID:    s.UserID.String(),
			Nama:  s.Nama,
			Email: s.Email,
			Role:  s.Role,
		},
		"expires_at": s.ExpiresAt,
	})
}

/* ==========================
   CHANGE PASSWORD
========================== */

func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := helper.Validate.Struct(&input); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}
	if err := ValidatePasswordStrength(input.NewPassword); err != nil {
		return helper.JsonValidationError(c, map[string][]string{"new_password": {err.Error()}})
	}

	s, err := helperAuth.SessionFrom(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	user, err := authRepo.FindUserByID(c.UserContext(), db, s.UserID)
	if err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil user")
	}
	if err := CheckPasswordHash(user.Password, input.CurrentPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Password lama salah")
	}

	hash, err := HashPassword(input.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash new password")
	}
	if err := authRepo.UpdateUserPassword(c.UserContext(), db, s.UserID, hash); err != nil {
		return helper.JsonDBError(c, err, "Gagal memperbarui password")
	}

	activityService.Record(c, db, "change_password", "users", &s.UserID, nil)
	return helper.JsonUpdated(c, "Password changed successfully", nil)
}
