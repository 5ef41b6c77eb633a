package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel merepresentasikan tabel users (akun login)
type UserModel struct {
	ID        uuid.UUID      `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Nama      string         `gorm:"column:user_nama;type:varchar(120);not null" json:"nama"`
	Email     string         `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex:uq_users_email" json:"email"`
	Password  string         `gorm:"column:user_password;type:text;not null" json:"-"`
	IsActive  bool           `gorm:"column:user_is_active;not null;default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`

	Roles []UserRoleModel `gorm:"foreignKey:UserID;references:ID" json:"roles,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// BeforeSave: email selalu lowercase
func (u *UserModel) BeforeSave(tx *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Nama = strings.TrimSpace(u.Nama)
	return nil
}
