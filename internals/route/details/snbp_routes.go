// internals/route/details/snbp_routes.go
package details

import (
	// ====== SNBP features ======
	ActivityRoutes "snbp_backend/internals/features/snbp/activity/route"
	DashboardRoutes "snbp_backend/internals/features/snbp/dashboard/route"
	GuruRoutes "snbp_backend/internals/features/snbp/guru/route"
	NilaiRoutes "snbp_backend/internals/features/snbp/nilai/route"
	PrediksiRoutes "snbp_backend/internals/features/snbp/prediksi/route"
	PreprocessingRoutes "snbp_backend/internals/features/snbp/preprocessing/route"
	SekolahRoutes "snbp_backend/internals/features/snbp/sekolah/route"
	SiswaRoutes "snbp_backend/internals/features/snbp/siswa/route"
	StatistikRoutes "snbp_backend/internals/features/snbp/statistik/route"
	TablesRoutes "snbp_backend/internals/features/snbp/tables/route"
	TutorialRoutes "snbp_backend/internals/features/snbp/tutorial/route"

	UserRoutes "snbp_backend/internals/features/users/user/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* ===================== USER (semua role) ===================== */
// /api/u
func SnbpUserRoutes(r fiber.Router, db *gorm.DB) {
	DashboardRoutes.DashboardUserRoutes(r, db)
	SiswaRoutes.SiswaUserRoutes(r, db)
	NilaiRoutes.NilaiUserRoutes(r, db)
	PrediksiRoutes.PrediksiUserRoutes(r, db)
	TutorialRoutes.TutorialUserRoutes(r)
}

/* ===================== STAFF (guru + admin) ===================== */
// /api/g
func SnbpStaffRoutes(r fiber.Router, db *gorm.DB) {
	SiswaRoutes.SiswaStaffRoutes(r, db)
	NilaiRoutes.NilaiStaffRoutes(r, db)
	PrediksiRoutes.PrediksiStaffRoutes(r, db)
	PreprocessingRoutes.PreprocessingStaffRoutes(r, db)
	StatistikRoutes.StatistikStaffRoutes(r, db)
}

/* ===================== ADMIN ===================== */
// /api/a
func SnbpAdminRoutes(r fiber.Router, db *gorm.DB) {
	SekolahRoutes.SekolahAdminRoutes(r, db)
	GuruRoutes.GuruAdminRoutes(r, db)
	UserRoutes.UserAdminRoutes(r, db)
	ActivityRoutes.ActivityAdminRoutes(r, db)
	TablesRoutes.TablesAdminRoutes(r, db)
	PreprocessingRoutes.PreprocessingAdminRoutes(r, db)
}
