package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snbp_backend/internals/features/snbp/statistik/controller"
)

// /api/g/statistik (guru|admin)
func StatistikStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewStatistikController(db)

	g := r.Group("/statistik")
	g.Get("/summary", ctl.Summary)
	g.Get("/histogram", ctl.Histogram)
	g.Get("/normalization", ctl.Normalization)
	g.Get("/scatter", ctl.Scatter)
	g.Get("/semester", ctl.Semester)
	g.Get("/prediksi", ctl.Prediksi)
	g.Get("/akreditasi", ctl.Akreditasi)
}
