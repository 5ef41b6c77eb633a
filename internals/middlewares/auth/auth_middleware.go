package auth

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"snbp_backend/internals/configs"
	"snbp_backend/internals/constants"
	authRepo "snbp_backend/internals/features/users/auth/repository"
	helper "snbp_backend/internals/helpers"
	helperAuth "snbp_backend/internals/helpers/auth"
)

type AuthJWTOpts struct {
	Secret    string
	Blacklist helperAuth.Blacklist
	// RoleResolver mengembalikan role user saat ini dari DB; hasilnya menggantikan klaim role di token.
	// nil = percaya klaim token (dipakai di test)
	RoleResolver func(c *fiber.Ctx, userID uuid.UUID) (constants.Role, error)
}

// AuthMiddleware: JWT + blacklist + user aktif + role terkini, lalu session disimpan ke locals.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return AuthJWT(AuthJWTOpts{
		Secret:    configs.JWTSecret,
		Blacklist: helperAuth.NewGormBlacklist(db, configs.JWTSecret),
		RoleResolver: func(c *fiber.Ctx, userID uuid.UUID) (constants.Role, error) {
			return authRepo.CurrentRole(c.UserContext(), db, userID)
		},
	})
}

func AuthJWT(o AuthJWTOpts) fiber.Handler {
	return func(c *fiber.Ctx) error {
		secret := strings.TrimSpace(o.Secret)
		if secret == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		raw, err := helperAuth.ExtractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		if o.Blacklist != nil {
			black, err := o.Blacklist.IsBlacklisted(c.UserContext(), raw)
			if err != nil {
				log.Println("[ERROR] DB error saat cek blacklist:", err)
				return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
			}
			if black {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
			}
		}

		claims, err := helperAuth.ParseAccessToken(secret, raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		session := helperAuth.NewSession(claims, raw)
		if o.RoleResolver != nil {
			role, err := o.RoleResolver(c, claims.UserID)
			switch {
			case err == nil:
				session.Role = role
			case errors.Is(err, gorm.ErrRecordNotFound):
				return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - User not found")
			case errors.Is(err, authRepo.ErrUserInactive):
				return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
			case errors.Is(err, authRepo.ErrNoRole):
				return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda tidak memiliki role")
			default:
				log.Println("[ERROR] resolve role:", err)
				return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
			}
		}

		helperAuth.Init(c, session)
		return c.Next()
	}
}
