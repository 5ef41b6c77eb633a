package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snbp_backend/internals/features/snbp/statistik/service"
	helper "snbp_backend/internals/helpers"
	"snbp_backend/internals/helpers/querycache"
	"snbp_backend/internals/helpers/statistics"
)

type StatistikController struct {
	DB *gorm.DB
}

func NewStatistikController(db *gorm.DB) *StatistikController {
	return &StatistikController{DB: db}
}

func statKey(name string) string { return querycache.KeyStatistik + ":" + name }

// nilaiRows di-cache sekali dan dipakai bersama oleh semua grafik nilai.
func (h *StatistikController) nilaiRows(c *fiber.Ctx) ([]service.NilaiRow, error) {
	return querycache.Remember(querycache.Default, statKey("nilai_rows"), func() ([]service.NilaiRow, error) {
		return service.LoadNilaiRows(c.UserContext(), h.DB)
	})
}

// GET /api/g/statistik/summary
func (h *StatistikController) Summary(c *fiber.Ctx) error {
	rows, err := h.nilaiRows(c)
	if err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil data nilai")
	}
	sum := service.Summary(rows)
	sum.Mean = statistics.Round2(sum.Mean)
	sum.StdDev = statistics.Round2(sum.StdDev)
	return helper.JsonOK(c, "ok", sum)
}

// GET /api/g/statistik/histogram?edges=0,70,80,90,100
func (h *StatistikController) Histogram(c *fiber.Ctx) error {
	edges, err := service.ParseEdges(c.Query("edges"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	rows, err := h.nilaiRows(c)
	if err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil data nilai")
	}
	return helper.JsonOK(c, "ok", service.Histogram(rows, edges))
}

// GET /api/g/statistik/normalization?limit=10
func (h *StatistikController) Normalization(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}
	if limit > 200 {
		limit = 200
	}
	rows, err := h.nilaiRows(c)
	if err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil data nilai")
	}
	return helper.JsonOK(c, "ok", service.Normalization(rows, limit))
}

// GET /api/g/statistik/scatter
func (h *StatistikController) Scatter(c *fiber.Ctx) error {
	rows, err := h.nilaiRows(c)
	if err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil data nilai")
	}
	return helper.JsonOK(c, "ok", service.Scatter(rows))
}

// GET /api/g/statistik/semester
func (h *StatistikController) Semester(c *fiber.Ctx) error {
	rows, err := h.nilaiRows(c)
	if err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil data nilai")
	}
	return helper.JsonOK(c, "ok", service.SemesterMeans(rows))
}

// GET /api/g/statistik/prediksi
func (h *StatistikController) Prediksi(c *fiber.Ctx) error {
	out, err := querycache.Remember(querycache.Default, statKey("prediksi"), func() (service.PrediksiCounts, error) {
		pct, st, err := service.LoadPrediksi(c.UserContext(), h.DB)
		if err != nil {
			return service.PrediksiCounts{}, err
		}
		return service.CountPrediksi(pct, st), nil
	})
	if err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil data prediksi")
	}
	return helper.JsonOK(c, "ok", out)
}

// GET /api/g/statistik/akreditasi
func (h *StatistikController) Akreditasi(c *fiber.Ctx) error {
	out, err := querycache.Remember(querycache.Default, statKey("akreditasi"), func() (map[string]int, error) {
		list, err := service.LoadAkreditasi(c.UserContext(), h.DB)
		if err != nil {
			return nil, err
		}
		return service.CountAkreditasi(list), nil
	})
	if err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil data sekolah")
	}
	return helper.JsonOK(c, "ok", out)
}
