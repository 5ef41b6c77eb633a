package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	sekolahModel "snbp_backend/internals/features/snbp/sekolah/model"
)

type GuruModel struct {
	ID            uuid.UUID  `gorm:"column:guru_id;type:uuid;default:gen_random_uuid();primaryKey" json:"guru_id"`
	UserID        *uuid.UUID `gorm:"column:guru_user_id;type:uuid;index" json:"guru_user_id,omitempty"`
	Nama          string     `gorm:"column:guru_nama;type:varchar(120);not null" json:"guru_nama"`
	NIP           *string    `gorm:"column:guru_nip;type:varchar(18);uniqueIndex:uq_guru_nip" json:"guru_nip,omitempty"`
	SekolahID     *uuid.UUID `gorm:"column:guru_sekolah_id;type:uuid;index" json:"guru_sekolah_id,omitempty"`
	MataPelajaran *string    `gorm:"column:guru_mata_pelajaran;type:varchar(80)" json:"guru_mata_pelajaran,omitempty"`
	IsActive      bool       `gorm:"column:guru_is_active;not null;default:true" json:"guru_is_active"`

	Sekolah *sekolahModel.SekolahModel `gorm:"foreignKey:SekolahID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"sekolah,omitempty"`

	CreatedAt time.Time      `gorm:"column:guru_created_at;autoCreateTime" json:"guru_created_at"`
	UpdatedAt time.Time      `gorm:"column:guru_updated_at;autoUpdateTime" json:"guru_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:guru_deleted_at;index" json:"-"`
}

func (GuruModel) TableName() string { return "guru" }

func (m *GuruModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
