package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snbp_backend/internals/features/snbp/activity/controller"
)

// /api/a/activity-logs
func ActivityAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewActivityLogController(db)
	r.Get("/activity-logs", ctl.List)
}
