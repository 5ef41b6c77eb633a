package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snbp_backend/internals/features/snbp/preprocessing/controller"
	"snbp_backend/internals/middlewares"
)

// /api/g/preprocessing (guru|admin)
func PreprocessingStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewPreprocessingController(db)

	g := r.Group("/preprocessing")
	g.Post("/run", middlewares.PreprocessingRateLimiter(), ctl.Run)
	g.Get("/stages", ctl.Catalog)
	g.Get("/batches", ctl.ListBatches)
	g.Get("/logs", ctl.ListLogs)
	g.Get("/logs/:id/data", ctl.ListData)
}

// /api/a/preprocessing (detail batch)
func PreprocessingAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewPreprocessingController(db)
	r.Get("/preprocessing/batches/:batch_id", ctl.BatchDetail)
}
