package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"snbp_backend/internals/constants"
	userModel "snbp_backend/internals/features/users/user/model"
)

var (
	ErrUserInactive = errors.New("user inactive")
	ErrNoRole       = errors.New("user tidak punya role")
)

/* ====================== USER ====================== */

func FindUserByEmail(ctx context.Context, db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).
		Preload("Roles").
		Where("user_email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).
		Preload("Roles").
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CurrentRole: role efektif user menurut DB saat ini, bukan klaim di token.
// User terhapus -> gorm.ErrRecordNotFound, nonaktif -> ErrUserInactive.
func CurrentRole(ctx context.Context, db *gorm.DB, userID uuid.UUID) (constants.Role, error) {
	user, err := FindUserByID(ctx, db, userID)
	if err != nil {
		return "", err
	}
	if !user.IsActive {
		return "", ErrUserInactive
	}
	role, ok := userModel.PrimaryRole(user.Roles)
	if !ok {
		return "", ErrNoRole
	}
	return role, nil
}

// CreateUserWithRole: user + satu role dalam satu transaksi.
func CreateUserWithRole(ctx context.Context, db *gorm.DB, user *userModel.UserModel, role constants.Role) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		ur := userModel.UserRoleModel{UserID: user.ID, Role: role}
		if err := tx.Create(&ur).Error; err != nil {
			return err
		}
		user.Roles = []userModel.UserRoleModel{ur}
		return nil
	})
}

func UpdateUserPassword(ctx context.Context, db *gorm.DB, userID uuid.UUID, hash string) error {
	return db.WithContext(ctx).
		Model(&userModel.UserModel{}).
		Where("user_id = ?", userID).
		Update("user_password", hash).Error
}
