package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	siswaModel "snbp_backend/internals/features/snbp/siswa/model"
)

type LogStatus string

const (
	LogPending    LogStatus = "pending"
	LogProcessing LogStatus = "processing"
	LogCompleted  LogStatus = "completed"
	LogError      LogStatus = "error"
)

/* =========================================================
   preprocessing_log: satu baris per tahap per batch
   ========================================================= */

type PreprocessingLogModel struct {
	ID           uuid.UUID      `gorm:"column:preprocessing_log_id;type:uuid;default:gen_random_uuid();primaryKey" json:"preprocessing_log_id"`
	BatchID      uuid.UUID      `gorm:"column:preprocessing_log_batch_id;type:uuid;not null;uniqueIndex:uq_preprocessing_batch_tahap,priority:1" json:"batch_id"`
	Tahap        int            `gorm:"column:preprocessing_log_tahap;not null;uniqueIndex:uq_preprocessing_batch_tahap,priority:2;check:chk_preprocessing_tahap,preprocessing_log_tahap BETWEEN 1 AND 6" json:"tahap"`
	NamaTahap    string         `gorm:"column:preprocessing_log_nama_tahap;type:varchar(80);not null" json:"nama_tahap"`
	Deskripsi    *string        `gorm:"column:preprocessing_log_deskripsi;type:text" json:"deskripsi,omitempty"`
	JumlahInput  int            `gorm:"column:preprocessing_log_jumlah_data_input;not null;default:0" json:"jumlah_data_input"`
	JumlahOutput int            `gorm:"column:preprocessing_log_jumlah_data_output;not null;default:0" json:"jumlah_data_output"`
	JumlahError  int            `gorm:"column:preprocessing_log_jumlah_data_error;not null;default:0" json:"jumlah_data_error"`
	DetailProses datatypes.JSON `gorm:"column:preprocessing_log_detail_proses;type:jsonb" json:"detail_proses,omitempty"`
	Statistik    datatypes.JSON `gorm:"column:preprocessing_log_statistik;type:jsonb" json:"statistik,omitempty"`
	Status       LogStatus      `gorm:"column:preprocessing_log_status;type:varchar(16);not null;default:'pending'" json:"status"`
	ErrorMessage *string        `gorm:"column:preprocessing_log_error_message;type:text" json:"error_message,omitempty"`
	StartedAt    *time.Time     `gorm:"column:preprocessing_log_started_at" json:"started_at,omitempty"`
	CompletedAt  *time.Time     `gorm:"column:preprocessing_log_completed_at" json:"completed_at,omitempty"`
	CreatedBy    *uuid.UUID     `gorm:"column:preprocessing_log_created_by;type:uuid" json:"created_by,omitempty"`
	CreatedAt    time.Time      `gorm:"column:preprocessing_log_created_at;autoCreateTime;index" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:preprocessing_log_updated_at;autoUpdateTime" json:"updated_at"`
}

func (PreprocessingLogModel) TableName() string { return "preprocessing_log" }

func (m *PreprocessingLogModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

/* =========================================================
   preprocessing_data: hasil per siswa, menempel ke log tahap akhir
   ========================================================= */

type PreprocessingDataModel struct {
	ID               uuid.UUID      `gorm:"column:preprocessing_data_id;type:uuid;default:gen_random_uuid();primaryKey" json:"preprocessing_data_id"`
	LogID            uuid.UUID      `gorm:"column:preprocessing_data_log_id;type:uuid;not null;index" json:"preprocessing_log_id"`
	SiswaID          *uuid.UUID     `gorm:"column:preprocessing_data_siswa_id;type:uuid;index" json:"siswa_id,omitempty"`
	DataOriginal     datatypes.JSON `gorm:"column:preprocessing_data_original;type:jsonb" json:"data_original,omitempty"`
	DataCleaned      datatypes.JSON `gorm:"column:preprocessing_data_cleaned;type:jsonb" json:"data_cleaned,omitempty"`
	DataNormalized   datatypes.JSON `gorm:"column:preprocessing_data_normalized;type:jsonb" json:"data_normalized,omitempty"`
	DataTransformed  datatypes.JSON `gorm:"column:preprocessing_data_transformed;type:jsonb" json:"data_transformed,omitempty"`
	IsValid          bool           `gorm:"column:preprocessing_data_is_valid;not null;default:true" json:"is_valid"`
	ValidationErrors pq.StringArray `gorm:"column:preprocessing_data_validation_errors;type:text[];not null;default:'{}'" json:"validation_errors"`
	CreatedAt        time.Time      `gorm:"column:preprocessing_data_created_at;autoCreateTime" json:"created_at"`

	Log   *PreprocessingLogModel `gorm:"foreignKey:LogID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Siswa *siswaModel.SiswaModel `gorm:"foreignKey:SiswaID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"siswa,omitempty"`
}

func (PreprocessingDataModel) TableName() string { return "preprocessing_data" }

func (m *PreprocessingDataModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.ValidationErrors == nil {
		m.ValidationErrors = pq.StringArray{}
	}
	return nil
}
