package controller

import (
	"errors"
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snbp_backend/internals/constants"
	activityService "snbp_backend/internals/features/snbp/activity/service"
	"snbp_backend/internals/features/users/user/dto"
	"snbp_backend/internals/features/users/user/model"
	helper "snbp_backend/internals/helpers"
	helperAuth "snbp_backend/internals/helpers/auth"
	"snbp_backend/internals/helpers/querycache"
)

var errSelfLockout = fiber.NewError(fiber.StatusBadRequest, "Admin tidak boleh mengunci akunnya sendiri")

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/a/users?q=&role=&is_active=&page=&per_page=
func (uc *UserController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var role constants.Role
	if s := strings.TrimSpace(c.Query("role")); s != "" {
		r, err := constants.ParseRole(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		role = r
	}
	active := helper.ParseBoolQuery(c, "is_active")
	q := helper.FoldSearch(c.Query("q"))

	filters := func(tx *gorm.DB) *gorm.DB {
		if role != "" {
			tx = tx.Where("EXISTS (SELECT 1 FROM user_roles ur WHERE ur.user_role_user_id = users.user_id AND ur.user_role_role = ?)", role)
		}
		if active != nil {
			tx = tx.Where("user_is_active = ?", *active)
		}
		if q != "" {
			like := helper.LikePattern(q)
			tx = tx.Where("(user_nama ILIKE ? OR user_email ILIKE ?)", like, like)
		}
		return tx
	}

	db := uc.DB.WithContext(c.UserContext())

	var total int64
	if err := db.Model(&model.UserModel{}).Scopes(filters).Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung user")
	}

	var users []model.UserModel
	if err := db.Scopes(filters).
		Preload("Roles").
		Order("user_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&users).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil user")
	}

	return helper.JsonList(c, "ok", dto.FromModels(users), helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/a/users/:id
func (uc *UserController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
	}
	var user model.UserModel
	if err := uc.DB.WithContext(c.UserContext()).Preload("Roles").First(&user, "user_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "User tidak ditemukan")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(&user))
}

// PATCH /api/a/users/:id
func (uc *UserController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
	}
	var req dto.PatchUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	if req.IsActive != nil && !*req.IsActive {
		if s, err := helperAuth.SessionFrom(c); err == nil && s.UserID == id {
			return helper.FromFiberError(c, errSelfLockout, "")
		}
	}

	db := uc.DB.WithContext(c.UserContext())
	var user model.UserModel
	if err := db.Preload("Roles").First(&user, "user_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "User tidak ditemukan")
	}
	req.Apply(&user)
	if err := db.Omit("Roles").Save(&user).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal memperbarui user")
	}

	querycache.Default.InvalidateFor(querycache.KeyUsers)
	activityService.Record(c, uc.DB, "update_user", "users", &user.ID, fiber.Map{"is_active": user.IsActive})
	return helper.JsonUpdated(c, "User berhasil diperbarui", dto.FromModel(&user))
}

// PUT /api/a/users/:id/roles
func (uc *UserController) SetRoles(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
	}
	var req dto.SetRolesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}
	roles := req.ToRoles()

	if s, err := helperAuth.SessionFrom(c); err == nil && s.UserID == id && !slices.Contains(roles, constants.RoleAdmin) {
		return helper.FromFiberError(c, errSelfLockout, "")
	}

	var user model.UserModel
	err = uc.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, "user_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("user_role_user_id = ?", id).Delete(&model.UserRoleModel{}).Error; err != nil {
			return err
		}
		rows := make([]model.UserRoleModel, 0, len(roles))
		for _, r := range roles {
			rows = append(rows, model.UserRoleModel{UserID: id, Role: r})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		user.Roles = rows
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonDBError(c, err, "Gagal mengubah role")
	}

	querycache.Default.InvalidateFor(querycache.KeyUsers)
	activityService.Record(c, uc.DB, "set_user_roles", "users", &user.ID, fiber.Map{"roles": roles})
	return helper.JsonUpdated(c, "Role user berhasil diperbarui", dto.FromModel(&user))
}

// DELETE /api/a/users/:id (soft delete)
func (uc *UserController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
	}
	if s, err := helperAuth.SessionFrom(c); err == nil && s.UserID == id {
		return helper.FromFiberError(c, errSelfLockout, "")
	}

	res := uc.DB.WithContext(c.UserContext()).Delete(&model.UserModel{}, "user_id = ?", id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "Gagal menghapus user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	querycache.Default.InvalidateFor(querycache.KeyUsers)
	activityService.Record(c, uc.DB, "delete_user", "users", &id, nil)
	return helper.JsonDeleted(c, "User berhasil dihapus", fiber.Map{"user_id": id})
}
