package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"snbp_backend/internals/configs"
	helperAuth "snbp_backend/internals/helpers/auth"
	"snbp_backend/internals/helpers/querycache"
)

// StartScheduler: cleanup token_blacklist + sweep query cache sesuai CLEANUP_CRON.
// Return *cron.Cron supaya bisa di-Stop saat shutdown.
func StartScheduler(db *gorm.DB) *cron.Cron {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	spec := configs.CleanupCron
	if spec == "" {
		spec = "@daily"
	}
	if _, err := c.AddFunc(spec, func() { RunBlacklistCleanup(db, configs.BlacklistTTLDays) }); err != nil {
		log.Printf("[CLEANUP ERROR] jadwal %q tidak valid: %v", spec, err)
	}

	// cache sweep lebih sering dari cleanup DB
	if _, err := c.AddFunc("@every 5m", func() { SweepQueryCache(configs.QueryCacheTTL) }); err != nil {
		log.Printf("[CLEANUP ERROR] jadwal sweep cache: %v", err)
	}

	c.Start()
	log.Printf("[INFO] Scheduler aktif (cleanup=%s)", spec)

	// jalankan sekali saat startup
	go RunBlacklistCleanup(db, configs.BlacklistTTLDays)
	return c
}

func RunBlacklistCleanup(db *gorm.DB, ttlDays int) {
	if ttlDays <= 0 {
		ttlDays = 7
	}
	log.Println("[CLEANUP] Menjalankan pembersihan token_blacklist...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := helperAuth.PurgeOlderThan(ctx, db, time.Duration(ttlDays)*24*time.Hour)
	switch {
	case err != nil:
		log.Printf("[CLEANUP ERROR] Gagal hapus token: %v", err)
	case n > 0:
		log.Printf("[CLEANUP] %d token kadaluarsa dihapus", n)
	default:
		log.Println("[CLEANUP] Tidak ada token yang memenuhi syarat dihapus")
	}
}

func SweepQueryCache(maxAge time.Duration) {
	if n := querycache.Default.Sweep(maxAge); n > 0 {
		log.Printf("[CLEANUP] %d entry query cache dibuang", n)
	}
}
