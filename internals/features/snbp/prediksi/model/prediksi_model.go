package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	siswaModel "snbp_backend/internals/features/snbp/siswa/model"
)

/* =========================================================
   ENUM: status prediksi
   ========================================================= */

type Status string

const (
	StatusPending   Status = "pending"
	StatusProcessed Status = "processed"
	StatusPublished Status = "published"
)

var AllStatus = []Status{StatusPending, StatusProcessed, StatusPublished}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessed, StatusPublished:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("status harus pending, processed, atau published")
	}
	return st, nil
}

/* =========================================================
   MODEL: prediksi
   ========================================================= */

type PrediksiModel struct {
	ID                  uuid.UUID  `gorm:"column:prediksi_id;type:uuid;default:gen_random_uuid();primaryKey" json:"prediksi_id"`
	SiswaID             uuid.UUID  `gorm:"column:prediksi_siswa_id;type:uuid;not null;index" json:"prediksi_siswa_id"`
	PersentaseKelulusan float64    `gorm:"column:prediksi_persentase_kelulusan;type:numeric(5,2);not null;check:chk_prediksi_persentase,prediksi_persentase_kelulusan BETWEEN 0 AND 100" json:"prediksi_persentase_kelulusan"`
	PTNRekomendasi1     *string    `gorm:"column:prediksi_ptn_rekomendasi_1;type:varchar(160)" json:"prediksi_ptn_rekomendasi_1,omitempty"`
	ProdiRekomendasi1   *string    `gorm:"column:prediksi_prodi_rekomendasi_1;type:varchar(160)" json:"prediksi_prodi_rekomendasi_1,omitempty"`
	PTNRekomendasi2     *string    `gorm:"column:prediksi_ptn_rekomendasi_2;type:varchar(160)" json:"prediksi_ptn_rekomendasi_2,omitempty"`
	ProdiRekomendasi2   *string    `gorm:"column:prediksi_prodi_rekomendasi_2;type:varchar(160)" json:"prediksi_prodi_rekomendasi_2,omitempty"`
	Status              Status     `gorm:"column:prediksi_status;type:varchar(16);not null;default:'pending';index;check:chk_prediksi_status,prediksi_status IN ('pending','processed','published')" json:"prediksi_status"`
	Catatan             *string    `gorm:"column:prediksi_catatan;type:text" json:"prediksi_catatan,omitempty"`
	CreatedBy           *uuid.UUID `gorm:"column:prediksi_created_by;type:uuid" json:"prediksi_created_by,omitempty"`

	Siswa *siswaModel.SiswaModel `gorm:"foreignKey:SiswaID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"siswa,omitempty"`

	CreatedAt time.Time      `gorm:"column:prediksi_created_at;autoCreateTime;index" json:"prediksi_created_at"`
	UpdatedAt time.Time      `gorm:"column:prediksi_updated_at;autoUpdateTime" json:"prediksi_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:prediksi_deleted_at;index" json:"-"`
}

func (PrediksiModel) TableName() string { return "prediksi" }

func (m *PrediksiModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Status == "" {
		m.Status = StatusPending
	}
	return nil
}

func (m *PrediksiModel) BeforeSave(tx *gorm.DB) error {
	if !m.Status.Valid() {
		return fmt.Errorf("status prediksi tidak valid: %q", m.Status)
	}
	if m.PersentaseKelulusan < 0 || m.PersentaseKelulusan > 100 {
		return fmt.Errorf("persentase kelulusan harus 0-100")
	}
	return nil
}
