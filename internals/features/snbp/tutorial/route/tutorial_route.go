package route

import (
	"github.com/gofiber/fiber/v2"

	"snbp_backend/internals/features/snbp/tutorial/controller"
)

// /api/u/tutorial
func TutorialUserRoutes(r fiber.Router) {
	ctl := controller.NewTutorialController()
	r.Get("/tutorial", ctl.List)
}
