package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snbp_backend/internals/features/snbp/prediksi/controller"
)

// /api/g/prediksi (guru|admin)
func PrediksiStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewPrediksiController(db)

	g := r.Group("/prediksi")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Post("/", ctl.Create)
	g.Patch("/:id/status", ctl.PatchStatus)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}

// /api/u/prediksi/me
func PrediksiUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewPrediksiController(db)
	r.Get("/prediksi/me", ctl.Me)
}
