package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ActivityLogModel struct {
	ID         uuid.UUID      `gorm:"column:activity_log_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     *uuid.UUID     `gorm:"column:activity_log_user_id;type:uuid;index" json:"user_id,omitempty"`
	Action     string         `gorm:"column:activity_log_action;type:varchar(64);not null;index" json:"action"`
	EntityType *string        `gorm:"column:activity_log_entity_type;type:varchar(64)" json:"entity_type,omitempty"`
	EntityID   *string        `gorm:"column:activity_log_entity_id;type:text" json:"entity_id,omitempty"`
	Detail     datatypes.JSON `gorm:"column:activity_log_detail;type:jsonb" json:"detail,omitempty"`
	IPAddress  *string        `gorm:"column:activity_log_ip_address;type:varchar(64)" json:"ip_address,omitempty"`
	CreatedAt  time.Time      `gorm:"column:activity_log_created_at;autoCreateTime;index" json:"created_at"`
}

func (ActivityLogModel) TableName() string { return "activity_log" }

func (m *ActivityLogModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
