package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snbp_backend/internals/features/snbp/tables/service"
	helper "snbp_backend/internals/helpers"
)

type TablesController struct {
	DB *gorm.DB
}

func NewTablesController(db *gorm.DB) *TablesController {
	return &TablesController{DB: db}
}

type tableItem struct {
	service.TableSpec
	Total int64 `json:"total"`
}

func scoped(db *gorm.DB, spec service.TableSpec) *gorm.DB {
	tx := db.Table(spec.Name)
	if spec.SoftDeleted != "" {
		tx = tx.Where(spec.SoftDeleted + " IS NULL")
	}
	return tx
}

// GET /api/a/tables
func (h *TablesController) List(c *fiber.Ctx) error {
	db := h.DB.WithContext(c.UserContext())

	specs := service.Tables()
	out := make([]tableItem, 0, len(specs))
	for _, spec := range specs {
		var n int64
		if err := scoped(db, spec).Count(&n).Error; err != nil {
			return helper.JsonDBError(c, err, "Gagal menghitung tabel "+spec.Name)
		}
		out = append(out, tableItem{TableSpec: spec, Total: n})
	}
	return helper.JsonOK(c, "ok", out)
}

// GET /api/a/tables/:table?page=&per_page=
func (h *TablesController) Rows(c *fiber.Ctx) error {
	name := strings.ToLower(strings.TrimSpace(c.Params("table")))
	spec, ok := service.Lookup(name)
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Tabel tidak tersedia")
	}
	p := helper.ResolvePaging(c, 25, 200)
	db := h.DB.WithContext(c.UserContext())

	var total int64
	if err := scoped(db, spec).Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung baris")
	}

	rows := make([]map[string]any, 0, p.Limit)
	if err := scoped(db, spec).
		Select(spec.Columns).
		Order(spec.OrderBy).
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil baris")
	}

	return helper.JsonList(c, "ok", fiber.Map{
		"table":   spec.Name,
		"label":   spec.Label,
		"columns": spec.Columns,
		"rows":    rows,
	}, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
