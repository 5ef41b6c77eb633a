package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"snbp_backend/internals/features/snbp/activity/model"
)

type ActivityLogResponse struct {
	ID         uuid.UUID      `json:"id"`
	UserID     *uuid.UUID     `json:"user_id,omitempty"`
	UserNama   string         `json:"user_nama,omitempty"`
	Action     string         `json:"action"`
	EntityType *string        `json:"entity_type,omitempty"`
	EntityID   *string        `json:"entity_id,omitempty"`
	Detail     datatypes.JSON `json:"detail,omitempty"`
	IPAddress  *string        `json:"ip_address,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// ActivityLogRow: hasil join activity_log + users
type ActivityLogRow struct {
	model.ActivityLogModel
	UserNama *string `gorm:"column:user_nama"`
}

func FromRow(r ActivityLogRow) ActivityLogResponse {
	out := ActivityLogResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		Action:     r.Action,
		EntityType: r.EntityType,
		EntityID:   r.EntityID,
		Detail:     r.Detail,
		IPAddress:  r.IPAddress,
		CreatedAt:  r.CreatedAt,
	}
	if r.UserNama != nil {
		out.UserNama = *r.UserNama
	}
	return out
}
