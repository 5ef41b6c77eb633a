package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	AccessTokenTTL   time.Duration
	CorsAllowOrigins string
	BlacklistTTLDays int
	CleanupCron      string
	QueryCacheTTL    time.Duration
	AutoMigrate      bool
	SeedOnStart      bool
	// CIDR/IP reverse proxy yang boleh mengisi X-Forwarded-For. Kosong = header diabaikan.
	TrustedProxies []string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	AccessTokenTTL = time.Duration(GetEnvInt("JWT_ACCESS_TTL_HOURS", 24)) * time.Hour
	CorsAllowOrigins = GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173, http://localhost:8080")
	BlacklistTTLDays = GetEnvInt("TOKEN_BLACKLIST_TTL_DAYS", 7)
	CleanupCron = GetEnv("CLEANUP_CRON", "@daily")
	QueryCacheTTL = time.Duration(GetEnvInt("QUERY_CACHE_TTL_SECONDS", 60)) * time.Second
	AutoMigrate = GetEnvBool("DB_AUTO_MIGRATE", false)
	SeedOnStart = GetEnvBool("DB_SEED", false)
	TrustedProxies = ParseCSV(GetEnv("TRUSTED_PROXIES"))

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	for _, k := range []string{"DB_HOST", "DB_NAME", "DB_USER"} {
		if GetEnv(k) == "" {
			log.Printf("❌ %s belum diset!", k)
		}
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || strings.TrimSpace(value) == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("⚠️ %s bukan angka (%q), pakai default %d", key, v, def)
		return def
	}
	return n
}

func GetEnvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// ParseCSV: "a, b,,c" -> [a b c].
func ParseCSV(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ApplyProxy memasang aturan reverse proxy ke config Fiber.
// Tanpa proxy terpercaya, c.IP() selalu alamat koneksi.
func ApplyProxy(cfg fiber.Config, proxies []string) fiber.Config {
	cfg.EnableTrustedProxyCheck = true
	cfg.TrustedProxies = proxies
	cfg.ProxyHeader = ""
	if len(proxies) > 0 {
		cfg.ProxyHeader = fiber.HeaderXForwardedFor
	}
	return cfg
}
