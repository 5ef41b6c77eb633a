package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"snbp_backend/internals/features/snbp/tutorial/service"
	helper "snbp_backend/internals/helpers"
	helperAuth "snbp_backend/internals/helpers/auth"
)

type TutorialController struct{}

func NewTutorialController() *TutorialController { return &TutorialController{} }

// GET /api/u/tutorial?category=
func (h *TutorialController) List(c *fiber.Ctx) error {
	s, err := helperAuth.SessionFrom(c)
	if err != nil {
		return helper.FromFiberError(c, err, "Sesi tidak valid")
	}

	var cat service.Category
	if raw := strings.TrimSpace(c.Query("category")); raw != "" {
		if cat, err = service.ParseCategory(raw); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"role":        s.Role,
		"sections":    service.ForRole(s.Role, cat),
		"quick_steps": service.QuickSteps,
	})
}
