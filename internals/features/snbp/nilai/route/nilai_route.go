package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snbp_backend/internals/features/snbp/nilai/controller"
)

// /api/g/nilai (guru|admin)
func NilaiStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewNilaiController(db)

	g := r.Group("/nilai")
	g.Get("/", ctl.List)
	g.Get("/siswa/:siswa_id", ctl.GetBySiswa)
	g.Get("/:id", ctl.Get)
	g.Post("/", ctl.Upsert)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}

// /api/u/nilai/me
func NilaiUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewNilaiController(db)
	r.Get("/nilai/me", ctl.Me)
}
