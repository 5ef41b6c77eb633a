// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"snbp_backend/internals/constants"
	authMiddleware "snbp_backend/internals/middlewares/auth"
	routeDetails "snbp_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== GROUPS =====================
	auth := authMiddleware.AuthMiddleware(db)

	log.Println("[INFO] Setting up PRIVATE (user) group...")
	private := app.Group("/api/u", auth)

	log.Println("[INFO] Setting up STAFF group (Auth + guru/admin)...")
	staff := app.Group("/api/g",
		auth,
		authMiddleware.OnlyRolesSlice(constants.RoleErrorStaff("ini"), constants.StaffRoles),
	)

	log.Println("[INFO] Setting up ADMIN group (Auth + admin)...")
	admin := app.Group("/api/a",
		auth,
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("ini"), constants.AdminOnly),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting SNBP routes...")
	routeDetails.SnbpUserRoutes(private, db)
	routeDetails.SnbpStaffRoutes(staff, db)
	routeDetails.SnbpAdminRoutes(admin, db)
}
