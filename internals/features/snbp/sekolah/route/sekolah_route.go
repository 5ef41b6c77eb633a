package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snbp_backend/internals/features/snbp/sekolah/controller"
)

// /api/a/sekolah
func SekolahAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSekolahController(db)

	g := r.Group("/sekolah")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
