package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	nilaiModel "snbp_backend/internals/features/snbp/nilai/model"
	"snbp_backend/internals/features/snbp/preprocessing/model"
	sekolahModel "snbp_backend/internals/features/snbp/sekolah/model"
	siswaModel "snbp_backend/internals/features/snbp/siswa/model"
)

const dataBatchSize = 200

type recordRow struct {
	SiswaID          uuid.UUID      `gorm:"column:siswa_id"`
	Nama             string         `gorm:"column:siswa_nama"`
	NISN             string         `gorm:"column:siswa_nisn"`
	Kelas            string         `gorm:"column:siswa_kelas"`
	Jurusan          *string        `gorm:"column:siswa_jurusan"`
	PeringkatSekolah *int           `gorm:"column:siswa_peringkat_sekolah"`
	Akreditasi       *string        `gorm:"column:sekolah_akreditasi"`
	Semester1        *float64       `gorm:"column:nilai_semester_1"`
	Semester2        *float64       `gorm:"column:nilai_semester_2"`
	Semester3        *float64       `gorm:"column:nilai_semester_3"`
	Semester4        *float64       `gorm:"column:nilai_semester_4"`
	Semester5        *float64       `gorm:"column:nilai_semester_5"`
	RataRata         *float64       `gorm:"column:nilai_rata_rata"`
	Prestasi         pq.StringArray `gorm:"column:nilai_prestasi"`
	Portofolio       *float64       `gorm:"column:nilai_portofolio"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// LoadRecords: semua nilai yang siswanya masih aktif (belum dihapus), plus akreditasi sekolah.
func LoadRecords(ctx context.Context, db *gorm.DB) ([]Record, Sources, error) {
	var src Sources
	db = db.WithContext(ctx)
	if err := db.Model(&siswaModel.SiswaModel{}).Count(&src.Siswa).Error; err != nil {
		return nil, src, err
	}
	if err := db.Model(&nilaiModel.NilaiModel{}).Count(&src.Nilai).Error; err != nil {
		return nil, src, err
	}
	if err := db.Model(&sekolahModel.SekolahModel{}).Count(&src.Sekolah).Error; err != nil {
		return nil, src, err
	}

	var rows []recordRow
	err := db.Table("nilai AS n").
		Select(`s.siswa_id, s.siswa_nama, s.siswa_nisn, s.siswa_kelas, s.siswa_jurusan, s.siswa_peringkat_sekolah,
			sk.sekolah_akreditasi,
			n.nilai_semester_1, n.nilai_semester_2, n.nilai_semester_3, n.nilai_semester_4, n.nilai_semester_5,
			n.nilai_rata_rata, n.nilai_prestasi, n.nilai_portofolio`).
		Joins("JOIN siswa s ON s.siswa_id = n.nilai_siswa_id AND s.siswa_deleted_at IS NULL").
		Joins("LEFT JOIN sekolah sk ON sk.sekolah_id = s.siswa_sekolah_id AND sk.sekolah_deleted_at IS NULL").
		Order("n.nilai_created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, src, err
	}

	out := make([]Record, 0, len(rows))
	for _, r := range rows {
		out = append(out, Record{
			SiswaID:          r.SiswaID,
			Nama:             r.Nama,
			NISN:             r.NISN,
			Kelas:            r.Kelas,
			Jurusan:          deref(r.Jurusan),
			Akreditasi:       deref(r.Akreditasi),
			PeringkatSekolah: r.PeringkatSekolah,
			Semesters:        [5]*float64{r.Semester1, r.Semester2, r.Semester3, r.Semester4, r.Semester5},
			RataRata:         r.RataRata,
			Prestasi:         []string(r.Prestasi),
			Portofolio:       r.Portofolio,
		})
	}
	return out, src, nil
}

// toJSON: map nil tetap NULL di kolom jsonb (bukan literal "null").
func toJSON(v map[string]any) datatypes.JSON {
	if v == nil {
		return nil
	}
	b, err := sonic.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

// BuildModels memetakan hasil pipeline ke baris log (tahap 1..6) dan data (di bawah log tahap 6).
func BuildModels(batchID uuid.UUID, createdBy *uuid.UUID, res Result) ([]model.PreprocessingLogModel, []model.PreprocessingDataModel) {
	logs := make([]model.PreprocessingLogModel, 0, len(res.Stages))
	for _, s := range res.Stages {
		desc := s.Deskripsi
		started, completed := s.StartedAt, s.CompletedAt
		logs = append(logs, model.PreprocessingLogModel{
			ID:           uuid.New(),
			BatchID:      batchID,
			Tahap:        s.Tahap,
			NamaTahap:    s.Nama,
			Deskripsi:    &desc,
			JumlahInput:  s.Input,
			JumlahOutput: s.Output,
			JumlahError:  s.Error,
			DetailProses: toJSON(s.Detail),
			Statistik:    toJSON(s.Statistik),
			Status:       model.LogCompleted,
			StartedAt:    &started,
			CompletedAt:  &completed,
			CreatedBy:    createdBy,
		})
	}
	if len(logs) == 0 {
		return logs, nil
	}

	lastLog := logs[len(logs)-1].ID
	data := make([]model.PreprocessingDataModel, 0, len(res.Rows))
	for _, r := range res.Rows {
		sid := r.SiswaID
		data = append(data, model.PreprocessingDataModel{
			LogID:            lastLog,
			SiswaID:          &sid,
			DataOriginal:     toJSON(r.Original),
			DataCleaned:      toJSON(r.Cleaned),
			DataNormalized:   toJSON(r.Normalized),
			DataTransformed:  toJSON(r.Transformed),
			IsValid:          r.IsValid,
			ValidationErrors: pq.StringArray(r.ValidationErrors),
		})
	}
	return logs, data
}

type RunSummary struct {
	BatchID    uuid.UUID                     `json:"batch_id"`
	TotalInput int                           `json:"total_input"`
	TotalValid int                           `json:"total_valid"`
	Stages     []StageResult                 `json:"-"`
	Logs       []model.PreprocessingLogModel `json:"logs"`
	DurationMS int64                         `json:"duration_ms"`
}

// Run: load → pipeline → simpan semua log dan data dalam satu transaksi.
func Run(ctx context.Context, db *gorm.DB, createdBy *uuid.UUID) (*RunSummary, error) {
	started := time.Now()
	records, src, err := LoadRecords(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}

	res := RunPipeline(records, src, time.Now)
	batchID := uuid.New()
	logs, data := BuildModels(batchID, createdBy, res)

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&logs).Error; err != nil {
			return err
		}
		if len(data) > 0 {
			if err := tx.Omit("Log", "Siswa").CreateInBatches(&data, dataBatchSize).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		recordFailure(ctx, db, batchID, createdBy, err)
		return nil, err
	}

	sum := &RunSummary{
		BatchID:    batchID,
		TotalInput: len(records),
		Stages:     res.Stages,
		Logs:       logs,
		DurationMS: time.Since(started).Milliseconds(),
	}
	if n := len(res.Stages); n > 0 {
		sum.TotalValid = res.Stages[n-1].Output
	}
	log.Printf("[PREPROCESSING] batch=%s input=%d valid=%d dur=%dms", batchID, sum.TotalInput, sum.TotalValid, sum.DurationMS)
	return sum, nil
}

const failureLogTimeout = 3 * time.Second

// failureContext lepas dari pembatalan request (timeout/klien putus), dengan batas waktu sendiri.
func failureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), failureLogTimeout)
}

// recordFailure: best-effort, satu log status error agar batch gagal tetap terlihat.
func recordFailure(ctx context.Context, db *gorm.DB, batchID uuid.UUID, createdBy *uuid.UUID, cause error) {
	ctx, cancel := failureContext(ctx)
	defer cancel()
	msg := cause.Error()
	now := time.Now()
	m := model.PreprocessingLogModel{
		BatchID:      batchID,
		Tahap:        Stages[0].Tahap,
		NamaTahap:    Stages[0].Nama,
		Status:       model.LogError,
		ErrorMessage: &msg,
		StartedAt:    &now,
		CreatedBy:    createdBy,
	}
	if err := db.WithContext(ctx).Create(&m).Error; err != nil {
		log.Printf("[ERROR] preprocessing batch %s gagal dicatat: %v", batchID, err)
	}
}
