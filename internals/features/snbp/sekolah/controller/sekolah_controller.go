package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityService "snbp_backend/internals/features/snbp/activity/service"
	"snbp_backend/internals/features/snbp/sekolah/dto"
	"snbp_backend/internals/features/snbp/sekolah/model"
	helper "snbp_backend/internals/helpers"
	"snbp_backend/internals/helpers/querycache"
)

type SekolahController struct {
	DB *gorm.DB
}

func NewSekolahController(db *gorm.DB) *SekolahController {
	return &SekolahController{DB: db}
}

// GET /api/a/sekolah?q=&akreditasi=&page=&per_page=
func (h *SekolahController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var akr model.Akreditasi
	if s := strings.TrimSpace(c.Query("akreditasi")); s != "" {
		a, err := model.ParseAkreditasi(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		akr = a
	}
	q := helper.FoldSearch(c.Query("q"))

	filters := func(tx *gorm.DB) *gorm.DB {
		if akr != "" {
			tx = tx.Where("sekolah_akreditasi = ?", akr)
		}
		if q != "" {
			like := helper.LikePattern(q)
			tx = tx.Where("(sekolah_nama ILIKE ? OR sekolah_npsn ILIKE ?)", like, like)
		}
		return tx
	}

	db := h.DB.WithContext(c.UserContext())

	var total int64
	if err := db.Model(&model.SekolahModel{}).Scopes(filters).Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung sekolah")
	}

	var rows []model.SekolahModel
	if err := db.Scopes(filters).
		Order("sekolah_nama ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil sekolah")
	}

	return helper.JsonList(c, "ok", dto.FromModels(rows), helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/a/sekolah/:id
func (h *SekolahController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "sekolah_id tidak valid")
	}
	var m model.SekolahModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "sekolah_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Sekolah tidak ditemukan")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(&m))
}

// POST /api/a/sekolah
func (h *SekolahController) Create(c *fiber.Ctx) error {
	var req dto.CreateSekolahRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal membuat sekolah")
	}

	querycache.Default.InvalidateFor(querycache.KeySekolah)
	activityService.Record(c, h.DB, "create_sekolah", "sekolah", &m.ID, fiber.Map{"npsn": m.NPSN})
	return helper.JsonCreated(c, "Sekolah berhasil dibuat", dto.FromModel(m))
}

// PATCH /api/a/sekolah/:id
func (h *SekolahController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "sekolah_id tidak valid")
	}

	var req dto.PatchSekolahRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	db := h.DB.WithContext(c.UserContext())
	var m model.SekolahModel
	if err := db.First(&m, "sekolah_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Sekolah tidak ditemukan")
	}
	req.Apply(&m)
	if err := db.Save(&m).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal memperbarui sekolah")
	}

	querycache.Default.InvalidateFor(querycache.KeySekolah)
	activityService.Record(c, h.DB, "update_sekolah", "sekolah", &m.ID, nil)
	return helper.JsonUpdated(c, "Sekolah berhasil diperbarui", dto.FromModel(&m))
}

// DELETE /api/a/sekolah/:id (soft delete)
func (h *SekolahController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "sekolah_id tidak valid")
	}
	res := h.DB.WithContext(c.UserContext()).Delete(&model.SekolahModel{}, "sekolah_id = ?", id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "Gagal menghapus sekolah")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
	}

	querycache.Default.InvalidateFor(querycache.KeySekolah)
	activityService.Record(c, h.DB, "delete_sekolah", "sekolah", &id, nil)
	return helper.JsonDeleted(c, "Sekolah berhasil dihapus", fiber.Map{"sekolah_id": id})
}
