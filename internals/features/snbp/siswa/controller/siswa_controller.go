package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityService "snbp_backend/internals/features/snbp/activity/service"
	"snbp_backend/internals/features/snbp/siswa/dto"
	"snbp_backend/internals/features/snbp/siswa/model"
	siswaService "snbp_backend/internals/features/snbp/siswa/service"
	helper "snbp_backend/internals/helpers"
	"snbp_backend/internals/helpers/querycache"
)

type SiswaController struct {
	DB *gorm.DB
}

func NewSiswaController(db *gorm.DB) *SiswaController {
	return &SiswaController{DB: db}
}

// GET /api/g/siswa?q=&kelas=&jurusan=&sekolah_id=&guru_id=&is_active=&page=&per_page=
func (h *SiswaController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	sekolahID, err := helper.ParseUUIDQuery(c, "sekolah_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "sekolah_id tidak valid")
	}
	guruID, err := helper.ParseUUIDQuery(c, "guru_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "guru_id tidak valid")
	}
	active := helper.ParseBoolQuery(c, "is_active")
	kelas := strings.TrimSpace(c.Query("kelas"))
	jurusan := strings.TrimSpace(c.Query("jurusan"))
	q := helper.FoldSearch(c.Query("q"))

	filters := func(tx *gorm.DB) *gorm.DB {
		if kelas != "" {
			tx = tx.Where("siswa_kelas = ?", kelas)
		}
		if jurusan != "" {
			tx = tx.Where("LOWER(siswa_jurusan) = LOWER(?)", jurusan)
		}
		if sekolahID != nil {
			tx = tx.Where("siswa_sekolah_id = ?", *sekolahID)
		}
		if guruID != nil {
			tx = tx.Where("siswa_guru_id = ?", *guruID)
		}
		if active != nil {
			tx = tx.Where("siswa_is_active = ?", *active)
		}
		if q != "" {
			like := helper.LikePattern(q)
			tx = tx.Where("(siswa_nama ILIKE ? OR siswa_nisn ILIKE ?)", like, like)
		}
		return tx
	}

	db := h.DB.WithContext(c.UserContext())

	var total int64
	if err := db.Model(&model.SiswaModel{}).Scopes(filters).Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung siswa")
	}

	var rows []model.SiswaModel
	if err := db.Scopes(filters).
		Preload("Sekolah").
		Preload("Guru").
		Order("siswa_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil siswa")
	}

	return helper.JsonList(c, "ok", dto.FromModels(rows), helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/g/siswa/:id
func (h *SiswaController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "siswa_id tidak valid")
	}
	var m model.SiswaModel
	if err := h.DB.WithContext(c.UserContext()).
		Preload("Sekolah").Preload("Guru").
		First(&m, "siswa_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Siswa tidak ditemukan")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(&m))
}

// GET /api/u/siswa/me
func (h *SiswaController) Me(c *fiber.Ctx) error {
	m, err := siswaService.CurrentSiswa(c, h.DB)
	if err != nil {
		return helper.FromFiberError(c, err, "Gagal mengambil data siswa")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(m))
}

// POST /api/g/siswa
func (h *SiswaController) Create(c *fiber.Ctx) error {
	var req dto.CreateSiswaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal membuat siswa")
	}

	querycache.Default.InvalidateFor(querycache.KeySiswa)
	activityService.Record(c, h.DB, "create_siswa", "siswa", &m.ID, fiber.Map{"nisn": m.NISN, "nama": m.Nama})
	return helper.JsonCreated(c, "Siswa berhasil dibuat", dto.FromModel(m))
}

// PATCH /api/g/siswa/:id
func (h *SiswaController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "siswa_id tidak valid")
	}

	var req dto.PatchSiswaRequest
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
	var m model.SiswaModel
	if err := db.First(&m, "siswa_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Siswa tidak ditemukan")
	}
	req.Apply(&m)
	if err := db.Omit("Sekolah", "Guru").Save(&m).Error; err != nil {
		if errors.Is(err, model.ErrKelasKosong) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonDBError(c, err, "Gagal memperbarui siswa")
	}

	querycache.Default.InvalidateFor(querycache.KeySiswa)
	activityService.Record(c, h.DB, "update_siswa", "siswa", &m.ID, nil)
	return helper.JsonUpdated(c, "Siswa berhasil diperbarui", dto.FromModel(&m))
}

// DELETE /api/g/siswa/:id
func (h *SiswaController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "siswa_id tidak valid")
	}
	res := h.DB.WithContext(c.UserContext()).Delete(&model.SiswaModel{}, "siswa_id = ?", id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "Gagal menghapus siswa")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}

	querycache.Default.InvalidateFor(querycache.KeySiswa)
	activityService.Record(c, h.DB, "delete_siswa", "siswa", &id, nil)
	return helper.JsonDeleted(c, "Siswa berhasil dihapus", fiber.Map{"siswa_id": id})
}
