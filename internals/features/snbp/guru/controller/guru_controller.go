package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityService "snbp_backend/internals/features/snbp/activity/service"
	"snbp_backend/internals/features/snbp/guru/dto"
	"snbp_backend/internals/features/snbp/guru/model"
	helper "snbp_backend/internals/helpers"
	"snbp_backend/internals/helpers/querycache"
)

type GuruController struct {
	DB *gorm.DB
}

func NewGuruController(db *gorm.DB) *GuruController {
	return &GuruController{DB: db}
}

// GET /api/a/guru?q=&sekolah_id=&is_active=&page=&per_page=
func (h *GuruController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	sekolahID, err := helper.ParseUUIDQuery(c, "sekolah_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "sekolah_id tidak valid")
	}
	active := helper.ParseBoolQuery(c, "is_active")
	q := helper.FoldSearch(c.Query("q"))

	filters := func(tx *gorm.DB) *gorm.DB {
		if sekolahID != nil {
			tx = tx.Where("guru_sekolah_id = ?", *sekolahID)
		}
		if active != nil {
			tx = tx.Where("guru_is_active = ?", *active)
		}
		if q != "" {
			like := helper.LikePattern(q)
			tx = tx.Where("(guru_nama ILIKE ? OR guru_nip ILIKE ? OR guru_mata_pelajaran ILIKE ?)", like, like, like)
		}
		return tx
	}

	db := h.DB.WithContext(c.UserContext())

	var total int64
	if err := db.Model(&model.GuruModel{}).Scopes(filters).Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung guru")
	}

	var rows []model.GuruModel
	if err := db.Scopes(filters).
		Preload("Sekolah").
		Order("guru_nama ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil guru")
	}

	return helper.JsonList(c, "ok", dto.FromModels(rows), helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/a/guru/:id
func (h *GuruController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "guru_id tidak valid")
	}
	var m model.GuruModel
	if err := h.DB.WithContext(c.UserContext()).Preload("Sekolah").First(&m, "guru_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Guru tidak ditemukan")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(&m))
}

// POST /api/a/guru
func (h *GuruController) Create(c *fiber.Ctx) error {
	var req dto.CreateGuruRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal membuat guru")
	}

	querycache.Default.InvalidateFor(querycache.KeyGuru)
	activityService.Record(c, h.DB, "create_guru", "guru", &m.ID, fiber.Map{"nama": m.Nama})
	return helper.JsonCreated(c, "Guru berhasil dibuat", dto.FromModel(m))
}

// PATCH /api/a/guru/:id
func (h *GuruController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "guru_id tidak valid")
	}

	var req dto.PatchGuruRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}
	if errs := req.Validate(); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	db := h.DB.WithContext(c.UserContext())
	var m model.GuruModel
	if err := db.First(&m, "guru_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Guru tidak ditemukan")
	}
	req.Apply(&m)
	if err := db.Omit("Sekolah").Save(&m).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal memperbarui guru")
	}

	querycache.Default.InvalidateFor(querycache.KeyGuru)
	activityService.Record(c, h.DB, "update_guru", "guru", &m.ID, nil)
	return helper.JsonUpdated(c, "Guru berhasil diperbarui", dto.FromModel(&m))
}

// DELETE /api/a/guru/:id
func (h *GuruController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "guru_id tidak valid")
	}
	res := h.DB.WithContext(c.UserContext()).Delete(&model.GuruModel{}, "guru_id = ?", id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "Gagal menghapus guru")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
	}

	querycache.Default.InvalidateFor(querycache.KeyGuru)
	activityService.Record(c, h.DB, "delete_guru", "guru", &id, nil)
	return helper.JsonDeleted(c, "Guru berhasil dihapus", fiber.Map{"guru_id": id})
}
