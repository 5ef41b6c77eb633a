package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   ENUM: Akreditasi
   ========================================================= */

type Akreditasi string

const (
	AkreditasiA Akreditasi = "A"
	AkreditasiB Akreditasi = "B"
	AkreditasiC Akreditasi = "C"
)

var AllAkreditasi = []Akreditasi{AkreditasiA, AkreditasiB, AkreditasiC}

func (a Akreditasi) Valid() bool {
	switch a {
	case AkreditasiA, AkreditasiB, AkreditasiC:
		return true
	default:
		return false
	}
}

func ParseAkreditasi(s string) (Akreditasi, error) {
	a := Akreditasi(strings.ToUpper(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", fmt.Errorf("akreditasi harus A, B, atau C")
	}
	return a, nil
}

/* =========================================================
   MODEL: sekolah
   ========================================================= */

type SekolahModel struct {
	ID         uuid.UUID  `gorm:"column:sekolah_id;type:uuid;default:gen_random_uuid();primaryKey" json:"sekolah_id"`
	Nama       string     `gorm:"column:sekolah_nama;type:varchar(160);not null" json:"sekolah_nama"`
	NPSN       string     `gorm:"column:sekolah_npsn;type:varchar(8);not null;uniqueIndex:uq_sekolah_npsn" json:"sekolah_npsn"`
	Akreditasi Akreditasi `gorm:"column:sekolah_akreditasi;type:varchar(1);not null;default:'B';check:chk_sekolah_akreditasi,sekolah_akreditasi IN ('A','B','C')" json:"sekolah_akreditasi"`
	Alamat     *string    `gorm:"column:sekolah_alamat;type:text" json:"sekolah_alamat,omitempty"`
	Kota       *string    `gorm:"column:sekolah_kota;type:varchar(120)" json:"sekolah_kota,omitempty"`
	Provinsi   *string    `gorm:"column:sekolah_provinsi;type:varchar(120)" json:"sekolah_provinsi,omitempty"`
	KuotaSNBP  int        `gorm:"column:sekolah_kuota_snbp;not null;default:0;check:chk_sekolah_kuota,sekolah_kuota_snbp >= 0" json:"sekolah_kuota_snbp"`

	CreatedAt time.Time      `gorm:"column:sekolah_created_at;autoCreateTime" json:"sekolah_created_at"`
	UpdatedAt time.Time      `gorm:"column:sekolah_updated_at;autoUpdateTime" json:"sekolah_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:sekolah_deleted_at;index" json:"-"`
}

func (SekolahModel) TableName() string { return "sekolah" }

func (m *SekolahModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (m *SekolahModel) BeforeSave(tx *gorm.DB) error {
	if !m.Akreditasi.Valid() {
		return fmt.Errorf("akreditasi tidak valid: %q", m.Akreditasi)
	}
	if m.KuotaSNBP < 0 {
		return fmt.Errorf("kuota_snbp tidak boleh negatif")
	}
	return nil
}
