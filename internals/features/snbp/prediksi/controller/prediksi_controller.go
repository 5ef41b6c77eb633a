package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityService "snbp_backend/internals/features/snbp/activity/service"
	"snbp_backend/internals/features/snbp/prediksi/dto"
	"snbp_backend/internals/features/snbp/prediksi/model"
	prediksiService "snbp_backend/internals/features/snbp/prediksi/service"
	siswaService "snbp_backend/internals/features/snbp/siswa/service"
	helper "snbp_backend/internals/helpers"
	helperAuth "snbp_backend/internals/helpers/auth"
	"snbp_backend/internals/helpers/querycache"
)

type PrediksiController struct {
	DB *gorm.DB
}

func NewPrediksiController(db *gorm.DB) *PrediksiController {
	return &PrediksiController{DB: db}
}

// GET /api/g/prediksi?status=&band=&siswa_id=&q=&page=&per_page=
func (h *PrediksiController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	var status model.Status
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		st, err := model.ParseStatus(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		status = st
	}
	band := prediksiService.Band(strings.ToLower(strings.TrimSpace(c.Query("band"))))
	if band != "" && !band.Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "band harus lolos, sedang, atau rendah")
	}
	siswaID, err := helper.ParseUUIDQuery(c, "siswa_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "siswa_id tidak valid")
	}
	q := helper.FoldSearch(c.Query("q"))

	filters := func(tx *gorm.DB) *gorm.DB {
		if status != "" {
			tx = tx.Where("prediksi_status = ?", status)
		}
		if band != "" {
			cond, args := prediksiService.BandCondition(band)
			tx = tx.Where(cond, args...)
		}
		if siswaID != nil {
			tx = tx.Where("prediksi_siswa_id = ?", *siswaID)
		}
		if q != "" {
			like := helper.LikePattern(q)
			tx = tx.Where(`prediksi_siswa_id IN (
				SELECT siswa_id FROM siswa
				WHERE siswa_deleted_at IS NULL AND (siswa_nama ILIKE ? OR siswa_nisn ILIKE ?)
			)`, like, like)
		}
		return tx
	}

	db := h.DB.WithContext(c.UserContext())

	var total int64
	if err := db.Model(&model.PrediksiModel{}).Scopes(filters).Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung prediksi")
	}

	var rows []model.PrediksiModel
	if err := db.Scopes(filters).
		Preload("Siswa").
		Order("prediksi_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil prediksi")
	}

	return helper.JsonList(c, "ok", dto.FromModels(rows), helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/g/prediksi/:id
func (h *PrediksiController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "prediksi_id tidak valid")
	}
	var m model.PrediksiModel
	if err := h.DB.WithContext(c.UserContext()).Preload("Siswa").First(&m, "prediksi_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Prediksi tidak ditemukan")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(&m))
}

// GET /api/u/prediksi/me
func (h *PrediksiController) Me(c *fiber.Ctx) error {
	s, err := siswaService.CurrentSiswa(c, h.DB)
	if err != nil {
		return helper.FromFiberError(c, err, "Gagal mengambil data siswa")
	}
	m, err := prediksiService.LatestForSiswa(c.UserContext(), h.DB, s.ID)
	if err != nil {
		return helper.JsonDBError(c, err, "Prediksi belum tersedia")
	}
	m.Siswa = s
	return helper.JsonOK(c, "ok", dto.FromModel(m))
}

// POST /api/g/prediksi
func (h *PrediksiController) Create(c *fiber.Ctx) error {
	var req dto.CreatePrediksiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var createdBy *uuid.UUID
	if s, err := helperAuth.SessionFrom(c); err == nil {
		id := s.UserID
		createdBy = &id
	}

	m := req.ToModel(createdBy)
	if err := h.DB.WithContext(c.UserContext()).Omit("Siswa").Create(m).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal membuat prediksi")
	}

	querycache.Default.InvalidateFor(querycache.KeyPrediksi)
	activityService.Record(c, h.DB, "create_prediksi", "prediksi", &m.ID, fiber.Map{
		"siswa_id":   m.SiswaID,
		"persentase": m.PersentaseKelulusan,
	})
	return helper.JsonCreated(c, "Prediksi berhasil dibuat", dto.FromModel(m))
}

// PATCH /api/g/prediksi/:id
func (h *PrediksiController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "prediksi_id tidak valid")
	}

	var req dto.PatchPrediksiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	db := h.DB.WithContext(c.UserContext())
	var m model.PrediksiModel
	if err := db.First(&m, "prediksi_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Prediksi tidak ditemukan")
	}
	req.Apply(&m)
	if err := db.Omit("Siswa").Save(&m).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal memperbarui prediksi")
	}

	querycache.Default.InvalidateFor(querycache.KeyPrediksi)
	activityService.Record(c, h.DB, "update_prediksi", "prediksi", &m.ID, nil)
	return helper.JsonUpdated(c, "Prediksi berhasil diperbarui", dto.FromModel(&m))
}

// PATCH /api/g/prediksi/:id/status
func (h *PrediksiController) PatchStatus(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "prediksi_id tidak valid")
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Status = strings.ToLower(strings.TrimSpace(req.Status))
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	res := h.DB.WithContext(c.UserContext()).
		Model(&model.PrediksiModel{}).
		Where("prediksi_id = ?", id).
		Update("prediksi_status", req.Status)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "Gagal mengubah status prediksi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Prediksi tidak ditemukan")
	}

	querycache.Default.InvalidateFor(querycache.KeyPrediksi)
	activityService.Record(c, h.DB, "update_status_prediksi", "prediksi", &id, fiber.Map{"status": req.Status})
	return helper.JsonUpdated(c, "Status prediksi diperbarui", fiber.Map{"prediksi_id": id, "prediksi_status": req.Status})
}

// DELETE /api/g/prediksi/:id
func (h *PrediksiController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "prediksi_id tidak valid")
	}
	res := h.DB.WithContext(c.UserContext()).Delete(&model.PrediksiModel{}, "prediksi_id = ?", id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "Gagal menghapus prediksi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Prediksi tidak ditemukan")
	}

	querycache.Default.InvalidateFor(querycache.KeyPrediksi)
	activityService.Record(c, h.DB, "delete_prediksi", "prediksi", &id, nil)
	return helper.JsonDeleted(c, "Prediksi berhasil dihapus", fiber.Map{"prediksi_id": id})
}
