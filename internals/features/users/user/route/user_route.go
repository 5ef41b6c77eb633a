package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snbp_backend/internals/features/users/user/controller"
)

// /api/a/users
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewUserController(db)

	g := r.Group("/users")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Patch("/:id", ctl.Patch)
	g.Put("/:id/roles", ctl.SetRoles)
	g.Delete("/:id", ctl.Delete)
}
