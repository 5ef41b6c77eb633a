package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityService "snbp_backend/internals/features/snbp/activity/service"
	"snbp_backend/internals/features/snbp/preprocessing/dto"
	"snbp_backend/internals/features/snbp/preprocessing/model"
	"snbp_backend/internals/features/snbp/preprocessing/service"
	helper "snbp_backend/internals/helpers"
	helperAuth "snbp_backend/internals/helpers/auth"
	"snbp_backend/internals/helpers/querycache"
)

type PreprocessingController struct {
	DB *gorm.DB
}

func NewPreprocessingController(db *gorm.DB) *PreprocessingController {
	return &PreprocessingController{DB: db}
}

// POST /api/g/preprocessing/run
func (h *PreprocessingController) Run(c *fiber.Ctx) error {
	var createdBy *uuid.UUID
	if s, err := helperAuth.SessionFrom(c); err == nil {
		id := s.UserID
		createdBy = &id
	}

	sum, err := service.Run(c.UserContext(), h.DB, createdBy)
	if err != nil {
		return helper.JsonDBError(c, err, "Preprocessing gagal")
	}

	querycache.Default.InvalidateFor(querycache.KeyPreprocessing)
	activityService.Record(c, h.DB, "run_preprocessing", "preprocessing", &sum.BatchID, fiber.Map{
		"total_input": sum.TotalInput,
		"total_valid": sum.TotalValid,
	})
	return helper.JsonCreated(c, "Preprocessing selesai, data siap ditampilkan", sum)
}

// GET /api/g/preprocessing/stages
func (h *PreprocessingController) Catalog(c *fiber.Ctx) error {
	return helper.JsonOK(c, "ok", service.Stages)
}

// GET /api/g/preprocessing/logs?batch_id=&page=&per_page=
func (h *PreprocessingController) ListLogs(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 30, 120)
	batchID, err := helper.ParseUUIDQuery(c, "batch_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "batch_id tidak valid")
	}

	filters := func(tx *gorm.DB) *gorm.DB {
		if batchID != nil {
			tx = tx.Where("preprocessing_log_batch_id = ?", *batchID)
		}
		return tx
	}

	db := h.DB.WithContext(c.UserContext())
	var total int64
	if err := db.Model(&model.PreprocessingLogModel{}).Scopes(filters).Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung log preprocessing")
	}

	var rows []model.PreprocessingLogModel
	if err := db.Scopes(filters).
		Order("preprocessing_log_created_at DESC, preprocessing_log_tahap ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil log preprocessing")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/g/preprocessing/logs/:id/data?is_valid=&page=&per_page=
func (h *PreprocessingController) ListData(c *fiber.Ctx) error {
	logID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "preprocessing_log_id tidak valid")
	}
	p := helper.ResolvePaging(c, 50, 500)
	valid := helper.ParseBoolQuery(c, "is_valid")

	filters := func(tx *gorm.DB) *gorm.DB {
		tx = tx.Where("preprocessing_data_log_id = ?", logID)
		if valid != nil {
			tx = tx.Where("preprocessing_data_is_valid = ?", *valid)
		}
		return tx
	}

	db := h.DB.WithContext(c.UserContext())
	var total int64
	if err := db.Model(&model.PreprocessingDataModel{}).Scopes(filters).Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung data preprocessing")
	}

	var rows []model.PreprocessingDataModel
	if err := db.Scopes(filters).
		Preload("Siswa").
		Order("preprocessing_data_created_at ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil data preprocessing")
	}
	return helper.JsonList(c, "ok", dto.FromDataList(rows), helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/g/preprocessing/batches
func (h *PreprocessingController) ListBatches(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 10, 50)
	key := querycache.KeyPreprocessingLogs + ":batches:" + c.Query("page", "1") + ":" + c.Query("per_page", c.Query("limit", "10"))

	type page struct {
		Rows  []dto.BatchSummary
		Total int64
	}
	res, err := querycache.Remember(querycache.Default, key, func() (page, error) {
		db := h.DB.WithContext(c.UserContext())
		var out page
		if err := db.Model(&model.PreprocessingLogModel{}).
			Distinct("preprocessing_log_batch_id").
			Count(&out.Total).Error; err != nil {
			return out, err
		}
		err := db.Model(&model.PreprocessingLogModel{}).
			Select(`preprocessing_log_batch_id AS batch_id,
				COUNT(*) AS jumlah_tahap,
				COALESCE(MAX(preprocessing_log_jumlah_data_input) FILTER (WHERE preprocessing_log_tahap = 1), 0) AS total_input,
				COALESCE(MAX(preprocessing_log_jumlah_data_output) FILTER (WHERE preprocessing_log_tahap = 6), 0) AS total_valid,
				BOOL_OR(preprocessing_log_status = 'error') AS ada_error,
				MIN(preprocessing_log_started_at) AS started_at,
				MAX(preprocessing_log_completed_at) AS completed_at`).
			Group("preprocessing_log_batch_id").
			Order("MIN(preprocessing_log_created_at) DESC").
			Limit(p.Limit).Offset(p.Offset).
			Scan(&out.Rows).Error
		return out, err
	})
	if err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil batch preprocessing")
	}
	if res.Rows == nil {
		res.Rows = []dto.BatchSummary{}
	}
	return helper.JsonList(c, "ok", res.Rows, helper.BuildPaginationFromPage(res.Total, p.Page, p.PerPage))
}

// GET /api/a/preprocessing/batches/:batch_id
func (h *PreprocessingController) BatchDetail(c *fiber.Ctx) error {
	batchID, err := helper.ParseUUIDParam(c, "batch_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "batch_id tidak valid")
	}

	var logs []model.PreprocessingLogModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("preprocessing_log_batch_id = ?", batchID).
		Order("preprocessing_log_tahap ASC").
		Find(&logs).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil batch")
	}
	if len(logs) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Batch tidak ditemukan")
	}

	return helper.JsonOK(c, "ok", dto.BatchDetail{
		BatchSummary: dto.Summarize(batchID, logs),
		Katalog:      service.Stages,
		Tahap:        logs,
	})
}
