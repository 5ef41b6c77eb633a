package service

import (
	"log"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"snbp_backend/internals/features/snbp/activity/model"
	helperAuth "snbp_backend/internals/helpers/auth"
)

// Build menyusun baris activity_log. userID diambil dari session kalau ada.
func Build(userID *uuid.UUID, action, entityType string, entityID *uuid.UUID, detail any, ip string) model.ActivityLogModel {
	m := model.ActivityLogModel{
		UserID: userID,
		Action: strings.TrimSpace(action),
	}
	if et := strings.TrimSpace(entityType); et != "" {
		m.EntityType = &et
	}
	if entityID != nil && *entityID != uuid.Nil {
		s := entityID.String()
		m.EntityID = &s
	}
	if detail != nil {
		if b, err := sonic.Marshal(detail); err == nil {
			m.Detail = b
		}
	}
	if ip = strings.TrimSpace(ip); ip != "" {
		m.IPAddress = &ip
	}
	return m
}

// Record: best-effort, gagal simpan hanya di-log dan tidak menggagalkan request.
func Record(c *fiber.Ctx, db *gorm.DB, action, entityType string, entityID *uuid.UUID, detail any) {
	if db == nil {
		return
	}
	var userID *uuid.UUID
	if s, err := helperAuth.SessionFrom(c); err == nil {
		id := s.UserID
		userID = &id
	} else if entityType == "users" && entityID != nil {
		// login/register: belum ada session, pelaku = user itu sendiri
		id := *entityID
		userID = &id
	}

	m := Build(userID, action, entityType, entityID, detail, c.IP())
	if err := db.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		log.Printf("[WARN] activity log %s gagal: %v", action, err)
	}
}
