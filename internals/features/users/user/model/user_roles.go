package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"snbp_backend/internals/constants"
)

type UserRoleModel struct {
	ID        uuid.UUID      `gorm:"column:user_role_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"column:user_role_user_id;type:uuid;not null;uniqueIndex:uq_user_role" json:"user_id"`
	Role      constants.Role `gorm:"column:user_role_role;type:varchar(16);not null;uniqueIndex:uq_user_role" json:"role"`
	CreatedAt time.Time      `gorm:"column:user_role_created_at;autoCreateTime" json:"created_at"`
}

func (UserRoleModel) TableName() string { return "user_roles" }

func (r *UserRoleModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if !r.Role.Valid() {
		return fmt.Errorf("role tidak valid: %q", r.Role)
	}
	return nil
}

// PrimaryRole: role dengan prioritas tertinggi (admin > guru > siswa).
func PrimaryRole(roles []UserRoleModel) (constants.Role, bool) {
	var best constants.Role
	for _, r := range roles {
		if r.Role.Priority() > best.Priority() {
			best = r.Role
		}
	}
	return best, best.Valid()
}
