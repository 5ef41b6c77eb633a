package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snbp_backend/internals/constants"
	"snbp_backend/internals/features/snbp/dashboard/service"
	helper "snbp_backend/internals/helpers"
	helperAuth "snbp_backend/internals/helpers/auth"
	"snbp_backend/internals/helpers/querycache"
)

type DashboardController struct {
	DB       *gorm.DB
	Builders service.Builders
	Cache    *querycache.Cache
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{
		DB:       db,
		Builders: service.DBBuilders(db),
		Cache:    querycache.Default,
	}
}

// cacheKey: admin/guru berbagi satu view per role, siswa per orang.
func cacheKey(s *helperAuth.Session) string {
	if s.Role == constants.RoleSiswa {
		return querycache.KeyDashboardStats + ":siswa:" + s.UserID.String()
	}
	return querycache.KeyDashboardStats + ":" + string(s.Role)
}

// GET /api/u/dashboard
func (h *DashboardController) Get(c *fiber.Ctx) error {
	s, err := helperAuth.SessionFrom(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	view, err := querycache.Remember(h.Cache, cacheKey(s), func() (any, error) {
		return service.Dispatch(c.UserContext(), s, h.Builders)
	})
	if err != nil {
		if errors.Is(err, service.ErrUnknownRole) {
			return helper.JsonError(c, fiber.StatusForbidden, err.Error())
		}
		return helper.FromFiberError(c, err, "Gagal memuat dashboard")
	}
	return helper.JsonOK(c, "ok", view)
}
