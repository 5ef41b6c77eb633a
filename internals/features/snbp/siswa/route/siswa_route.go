package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snbp_backend/internals/features/snbp/siswa/controller"
)

// /api/g/siswa (guru|admin)
func SiswaStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSiswaController(db)

	g := r.Group("/siswa")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}

// /api/u/siswa/me
func SiswaUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSiswaController(db)
	r.Get("/siswa/me", ctl.Me)
}
