package auth

import (
	"github.com/gofiber/fiber/v2"

	"snbp_backend/internals/constants"
	helper "snbp_backend/internals/helpers"
	helperAuth "snbp_backend/internals/helpers/auth"
)

// OnlyRoles: 401 tanpa session, 403 kalau role di luar daftar.
func OnlyRoles(forbiddenMessage string, roles ...constants.Role) fiber.Handler {
	return OnlyRolesSlice(forbiddenMessage, roles)
}

func OnlyRolesSlice(forbiddenMessage string, allowed []constants.Role) fiber.Handler {
	if forbiddenMessage == "" {
		forbiddenMessage = "Forbidden: you are not authorized to access this resource"
	}
	return func(c *fiber.Ctx) error {
		s, err := helperAuth.SessionFrom(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Role not found")
		}
		for _, r := range allowed {
			if s.Role == r {
				return c.Next()
			}
		}
		return helper.JsonError(c, fiber.StatusForbidden, forbiddenMessage)
	}
}
