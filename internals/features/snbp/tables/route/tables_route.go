package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snbp_backend/internals/features/snbp/tables/controller"
)

// /api/a/tables
func TablesAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewTablesController(db)

	g := r.Group("/tables")
	g.Get("/", ctl.List)
	g.Get("/:table", ctl.Rows)
}
