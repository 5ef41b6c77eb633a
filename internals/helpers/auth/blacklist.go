package helper

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Blacklist menyimpan token yang sudah logout sampai token itu kedaluwarsa.
type Blacklist interface {
	Add(ctx context.Context, rawToken string, expiresAt time.Time) error
	IsBlacklisted(ctx context.Context, rawToken string) (bool, error)
}

// GormBlacklist: tabel token_blacklist, token disimpan sebagai HMAC hex (bukan token mentah).
type GormBlacklist struct {
	DB     *gorm.DB
	Secret string
}

func NewGormBlacklist(db *gorm.DB, secret string) *GormBlacklist {
	return &GormBlacklist{DB: db, Secret: secret}
}

func hmacHex(msg, secret string) string {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(msg))
	return hex.EncodeToString(m.Sum(nil))
}

func (b *GormBlacklist) Add(ctx context.Context, rawToken string, expiresAt time.Time) error {
	if b.DB == nil || strings.TrimSpace(rawToken) == "" {
		return nil
	}
	return b.DB.WithContext(ctx).Exec(`
		INSERT INTO token_blacklist (token, expired_at, created_at)
		VALUES (?, ?, NOW())
		ON CONFLICT (token) DO UPDATE
		SET expired_at = EXCLUDED.expired_at,
		    deleted_at = NULL
	`, hmacHex(rawToken, b.Secret), expiresAt).Error
}

func (b *GormBlacklist) IsBlacklisted(ctx context.Context, rawToken string) (bool, error) {
	if b.DB == nil || strings.TrimSpace(rawToken) == "" {
		return false, nil
	}
	var exists bool
	err := b.DB.WithContext(ctx).Raw(`
		SELECT EXISTS (
		  SELECT 1 FROM token_blacklist
		  WHERE token = ?
		    AND deleted_at IS NULL
		    AND expired_at > NOW()
		)
	`, hmacHex(rawToken, b.Secret)).Scan(&exists).Error
	return exists, err
}

// PurgeOlderThan menghapus baris yang sudah kedaluwarsa lebih dari ttl.
func PurgeOlderThan(ctx context.Context, db *gorm.DB, ttl time.Duration) (int64, error) {
	res := db.WithContext(ctx).Exec(`DELETE FROM token_blacklist WHERE expired_at < ?`, time.Now().UTC().Add(-ttl))
	return res.RowsAffected, res.Error
}
