package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityService "snbp_backend/internals/features/snbp/activity/service"
	"snbp_backend/internals/features/snbp/nilai/dto"
	"snbp_backend/internals/features/snbp/nilai/model"
	nilaiService "snbp_backend/internals/features/snbp/nilai/service"
	siswaService "snbp_backend/internals/features/snbp/siswa/service"
	helper "snbp_backend/internals/helpers"
	"snbp_backend/internals/helpers/querycache"
)

type NilaiController struct {
	DB *gorm.DB
}

func NewNilaiController(db *gorm.DB) *NilaiController {
	return &NilaiController{DB: db}
}

// GET /api/g/nilai?q=&kelas=&page=&per_page=
func (h *NilaiController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)
	q := helper.FoldSearch(c.Query("q"))
	kelas := c.Query("kelas")

	filters := func(tx *gorm.DB) *gorm.DB {
		tx = tx.Joins("JOIN siswa s ON s.siswa_id = nilai.nilai_siswa_id AND s.siswa_deleted_at IS NULL")
		if q != "" {
			like := helper.LikePattern(q)
			tx = tx.Where("(s.siswa_nama ILIKE ? OR s.siswa_nisn ILIKE ?)", like, like)
		}
		if kelas != "" {
			tx = tx.Where("s.siswa_kelas = ?", kelas)
		}
		return tx
	}

	db := h.DB.WithContext(c.UserContext())

	var total int64
	if err := db.Model(&model.NilaiModel{}).Scopes(filters).Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung nilai")
	}

	var rows []model.NilaiModel
	if err := db.Model(&model.NilaiModel{}).Scopes(filters).
		Preload("Siswa").
		Order("s.siswa_nama ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil nilai")
	}

	return helper.JsonList(c, "ok", dto.FromModels(rows), helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/g/nilai/:id
func (h *NilaiController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "nilai_id tidak valid")
	}
	var m model.NilaiModel
	if err := h.DB.WithContext(c.UserContext()).Preload("Siswa").First(&m, "nilai_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Nilai tidak ditemukan")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(&m))
}

// GET /api/g/nilai/siswa/:siswa_id
func (h *NilaiController) GetBySiswa(c *fiber.Ctx) error {
	siswaID, err := helper.ParseUUIDParam(c, "siswa_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "siswa_id tidak valid")
	}
	m, err := nilaiService.FindBySiswa(c.UserContext(), h.DB, siswaID)
	if err != nil {
		return helper.JsonDBError(c, err, "Nilai siswa belum ada")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(m))
}

// GET /api/u/nilai/me
func (h *NilaiController) Me(c *fiber.Ctx) error {
	s, err := siswaService.CurrentSiswa(c, h.DB)
	if err != nil {
		return helper.FromFiberError(c, err, "Gagal mengambil data siswa")
	}
	m, err := nilaiService.FindBySiswa(c.UserContext(), h.DB, s.ID)
	if err != nil {
		return helper.JsonDBError(c, err, "Nilai belum diinput")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(m))
}

// POST /api/g/nilai (upsert per siswa)
func (h *NilaiController) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertNilaiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	m, err := nilaiService.Upsert(c.UserContext(), h.DB, req.ToModel())
	if err != nil {
		return helper.JsonDBError(c, err, "Gagal menyimpan nilai")
	}

	querycache.Default.InvalidateFor(querycache.KeyNilai)
	activityService.Record(c, h.DB, "upsert_nilai", "nilai", &m.ID, fiber.Map{
		"siswa_id":  m.SiswaID,
		"rata_rata": m.RataRata,
	})
	return helper.JsonOK(c, "Nilai berhasil disimpan", dto.FromModel(m))
}

// PATCH /api/g/nilai/:id
func (h *NilaiController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "nilai_id tidak valid")
	}

	var req dto.PatchNilaiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if errs := req.Validate(); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	db := h.DB.WithContext(c.UserContext())
	var m model.NilaiModel
	if err := db.First(&m, "nilai_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Nilai tidak ditemukan")
	}
	req.Apply(&m)
	nilaiService.Recompute(&m)
	if err := db.Omit("Siswa").Save(&m).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal memperbarui nilai")
	}

	querycache.Default.InvalidateFor(querycache.KeyNilai)
	activityService.Record(c, h.DB, "update_nilai", "nilai", &m.ID, fiber.Map{"rata_rata": m.RataRata})
	return helper.JsonUpdated(c, "Nilai berhasil diperbarui", dto.FromModel(&m))
}

// DELETE /api/g/nilai/:id
func (h *NilaiController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "nilai_id tidak valid")
	}
	res := h.DB.WithContext(c.UserContext()).Delete(&model.NilaiModel{}, "nilai_id = ?", id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "Gagal menghapus nilai")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
	}

	querycache.Default.InvalidateFor(querycache.KeyNilai)
	activityService.Record(c, h.DB, "delete_nilai", "nilai", &id, nil)
	return helper.JsonDeleted(c, "Nilai berhasil dihapus", fiber.Map{"nilai_id": id})
}
