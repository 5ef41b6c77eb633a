package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snbp_backend/internals/features/snbp/guru/controller"
)

// /api/a/guru
func GuruAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewGuruController(db)

	g := r.Group("/guru")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
