package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	guruModel "snbp_backend/internals/features/snbp/guru/model"
	sekolahModel "snbp_backend/internals/features/snbp/sekolah/model"
)

var ErrKelasKosong = errors.New("kelas tidak boleh kosong")

type SiswaModel struct {
	ID               uuid.UUID  `gorm:"column:siswa_id;type:uuid;default:gen_random_uuid();primaryKey" json:"siswa_id"`
	UserID           *uuid.UUID `gorm:"column:siswa_user_id;type:uuid;uniqueIndex:uq_siswa_user" json:"siswa_user_id,omitempty"`
	Nama             string     `gorm:"column:siswa_nama;type:varchar(120);not null" json:"siswa_nama"`
	NISN             string     `gorm:"column:siswa_nisn;type:varchar(10);not null;uniqueIndex:uq_siswa_nisn" json:"siswa_nisn"`
	NIS              *string    `gorm:"column:siswa_nis;type:varchar(20)" json:"siswa_nis,omitempty"`
	Kelas            string     `gorm:"column:siswa_kelas;type:varchar(20);not null;check:chk_siswa_kelas,siswa_kelas <> ''" json:"siswa_kelas"`
	Jurusan          *string    `gorm:"column:siswa_jurusan;type:varchar(40)" json:"siswa_jurusan,omitempty"`
	SekolahID        *uuid.UUID `gorm:"column:siswa_sekolah_id;type:uuid;index" json:"siswa_sekolah_id,omitempty"`
	GuruID           *uuid.UUID `gorm:"column:siswa_guru_id;type:uuid;index" json:"siswa_guru_id,omitempty"`
	PeringkatSekolah *int       `gorm:"column:siswa_peringkat_sekolah" json:"siswa_peringkat_sekolah,omitempty"`
	PeringkatKelas   *int       `gorm:"column:siswa_peringkat_kelas" json:"siswa_peringkat_kelas,omitempty"`
	TahunMasuk       *int       `gorm:"column:siswa_tahun_masuk" json:"siswa_tahun_masuk,omitempty"`
	IsActive         bool       `gorm:"column:siswa_is_active;not null;default:true" json:"siswa_is_active"`

	Sekolah *sekolahModel.SekolahModel `gorm:"foreignKey:SekolahID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"sekolah,omitempty"`
	Guru    *guruModel.GuruModel       `gorm:"foreignKey:GuruID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"guru,omitempty"`

	CreatedAt time.Time      `gorm:"column:siswa_created_at;autoCreateTime;index" json:"siswa_created_at"`
	UpdatedAt time.Time      `gorm:"column:siswa_updated_at;autoUpdateTime" json:"siswa_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:siswa_deleted_at;index" json:"-"`
}

func (SiswaModel) TableName() string { return "siswa" }

func (m *SiswaModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (m *SiswaModel) BeforeSave(tx *gorm.DB) error {
	m.Kelas = strings.TrimSpace(m.Kelas)
	if m.Kelas == "" {
		return ErrKelasKosong
	}
	return nil
}
