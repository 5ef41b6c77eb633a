package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snbp_backend/internals/features/snbp/activity/dto"
	"snbp_backend/internals/features/snbp/activity/model"
	helper "snbp_backend/internals/helpers"
)

// batas jumlah log terbaru yang bisa dibuka
const maxActivityWindow = 100

type ActivityLogController struct {
	DB *gorm.DB
}

func NewActivityLogController(db *gorm.DB) *ActivityLogController {
	return &ActivityLogController{DB: db}
}

// QueryLatest: n log terbaru beserta nama user (dipakai juga oleh dashboard).
func QueryLatest(db *gorm.DB, limit, offset int) *gorm.DB {
	return db.Model(&model.ActivityLogModel{}).
		Select("activity_log.*, users.user_nama").
		Joins("LEFT JOIN users ON users.user_id = activity_log.activity_log_user_id").
		Order("activity_log.activity_log_created_at DESC").
		Limit(limit).Offset(offset)
}

// GET /api/a/activity-logs?action=&entity_type=&user_id=&page=&per_page=
func (h *ActivityLogController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, maxActivityWindow)

	uid, err := helper.ParseUUIDQuery(c, "user_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
	}
	action := strings.TrimSpace(c.Query("action"))
	entityType := strings.TrimSpace(c.Query("entity_type"))

	filters := func(q *gorm.DB) *gorm.DB {
		if action != "" {
			q = q.Where("activity_log_action = ?", action)
		}
		if entityType != "" {
			q = q.Where("activity_log_entity_type = ?", entityType)
		}
		if uid != nil {
			q = q.Where("activity_log_user_id = ?", *uid)
		}
		return q
	}

	db := h.DB.WithContext(c.UserContext())

	var total int64
	if err := db.Model(&model.ActivityLogModel{}).Scopes(filters).Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung activity log")
	}
	if total > maxActivityWindow {
		total = maxActivityWindow
	}

	limit := p.Limit
	if p.Offset >= maxActivityWindow {
		limit = 0
	} else if p.Offset+limit > maxActivityWindow {
		limit = maxActivityWindow - p.Offset
	}

	rows := make([]dto.ActivityLogRow, 0, limit)
	if limit > 0 {
		if err := QueryLatest(db, limit, p.Offset).Scopes(filters).Scan(&rows).Error; err != nil {
			return helper.JsonDBError(c, err, "Gagal mengambil activity log")
		}
	}

	out := make([]dto.ActivityLogResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromRow(r))
	}
	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
