package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snbp_backend/internals/features/snbp/dashboard/controller"
)

// /api/u/dashboard (semua role)
func DashboardUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewDashboardController(db)
	r.Get("/dashboard", ctl.Get)
}
