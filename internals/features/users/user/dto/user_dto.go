package dto

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"snbp_backend/internals/constants"
	uModel "snbp_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// PatchUserRequest: admin hanya boleh ubah nama & status aktif; email/password lewat auth.
type PatchUserRequest struct {
	Nama     *string `json:"nama,omitempty" validate:"omitempty,min=3,max=120"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *PatchUserRequest) Normalize() {
	if r.Nama != nil {
		v := strings.TrimSpace(*r.Nama)
		r.Nama = &v
	}
}

func (r *PatchUserRequest) Apply(m *uModel.UserModel) {
	if r.Nama != nil {
		m.Nama = *r.Nama
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

// SetRolesRequest mengganti seluruh role user.
type SetRolesRequest struct {
	Roles []string `json:"roles" validate:"required,min=1,max=3,dive,oneof=admin guru siswa"`
}

// Normalize: lowercase + buang duplikat, urutan dipertahankan.
func (r *SetRolesRequest) Normalize() {
	out := make([]string, 0, len(r.Roles))
	for _, s := range r.Roles {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || slices.Contains(out, s) {
			continue
		}
		out = append(out, s)
	}
	r.Roles = out
}

func (r *SetRolesRequest) ToRoles() []constants.Role {
	out := make([]constants.Role, 0, len(r.Roles))
	for _, s := range r.Roles {
		out = append(out, constants.Role(s))
	}
	return out
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type UserResponse struct {
	ID        uuid.UUID        `json:"id"`
	Nama      string           `json:"nama"`
	Email     string           `json:"email"`
	IsActive  bool             `json:"is_active"`
	Role      constants.Role   `json:"role,omitempty"`
	Roles     []constants.Role `json:"roles"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// FromModel: password tidak pernah ikut keluar.
func FromModel(m *uModel.UserModel) UserResponse {
	roles := make([]constants.Role, 0, len(m.Roles))
	for _, r := range m.Roles {
		roles = append(roles, r.Role)
	}
	primary, _ := uModel.PrimaryRole(m.Roles)
	return UserResponse{
		ID:        m.ID,
		Nama:      m.Nama,
		Email:     m.Email,
		IsActive:  m.IsActive,
		Role:      primary,
		Roles:     roles,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromModels(rows []uModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
