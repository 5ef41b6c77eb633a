package querycache

import (
	"strings"
	"sync"
	"time"
)

// Key yang dipakai controller. Mutasi meng-invalidasi key-key ini.
const (
	KeySiswa             = "siswa"
	KeyNilai             = "nilai"
	KeyPrediksi          = "prediksi"
	KeySekolah           = "sekolah"
	KeyGuru              = "guru"
	KeyDashboardStats    = "dashboard_stats"
	KeyStatistik         = "statistik"
	KeyPreprocessingLogs = "preprocessing_logs"
	KeyPreprocessingData = "preprocessing_data"
	KeyPreprocessing     = "preprocessing"
	KeyUsers             = "users"
)

// Peta invalidasi per entitas yang dimutasi.
var invalidations = map[string][]string{
	KeySiswa:         {KeySiswa, KeyDashboardStats, KeyStatistik},
	KeyNilai:         {KeyNilai, KeyDashboardStats, KeyStatistik},
	KeyPrediksi:      {KeyPrediksi, KeyDashboardStats, KeyStatistik},
	KeySekolah:       {KeySekolah, KeyDashboardStats, KeyStatistik},
	KeyGuru:          {KeyGuru, KeyDashboardStats},
	KeyPreprocessing: {KeyPreprocessingLogs, KeyPreprocessingData},
	KeyUsers:         {KeyUsers, KeyDashboardStats},
}

type entry struct {
	value    any
	storedAt time.Time
	stale    bool
}

type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]*entry
	now     func() time.Time
	// epoch naik setiap Invalidate; hasil loader yang mulai sebelum epoch berubah disimpan stale.
	epoch uint64
}

// New: ttl <= 0 berarti entry tidak kedaluwarsa karena umur (hanya lewat Invalidate).
func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Default dipakai bersama oleh semua controller.
var Default = New(60 * time.Second)

// Configure mengganti TTL cache default (dipanggil sekali saat startup).
func Configure(ttl time.Duration) {
	Default.mu.Lock()
	Default.ttl = ttl
	Default.mu.Unlock()
}

func (c *Cache) fresh(e *entry) bool {
	if e.stale {
		return false
	}
	if c.ttl > 0 && c.now().Sub(e.storedAt) > c.ttl {
		return false
	}
	return true
}

// Get mengembalikan value dan true jika entry masih segar.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || !c.fresh(e) {
		return nil, false
	}
	return e.value, true
}

func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	c.entries[key] = &entry{value: value, storedAt: c.now()}
	c.mu.Unlock()
}

func (c *Cache) currentEpoch() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.epoch
}

// setSince menyimpan value sebagai stale kalau ada Invalidate sejak epoch `since`.
func (c *Cache) setSince(key string, value any, since uint64) {
	c.mu.Lock()
	c.entries[key] = &entry{value: value, storedAt: c.now(), stale: c.epoch != since}
	c.mu.Unlock()
}

// Invalidate menandai key (dan semua "key:*") sebagai stale.
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	for k, e := range c.entries {
		for _, key := range keys {
			if k == key || strings.HasPrefix(k, key+":") {
				e.stale = true
				break
			}
		}
	}
}

// InvalidateFor meng-invalidasi semua key yang bergantung pada entitas yang dimutasi.
func (c *Cache) InvalidateFor(entity string) {
	keys, ok := invalidations[entity]
	if !ok {
		keys = []string{entity}
	}
	c.Invalidate(keys...)
}

// Sweep membuang entry stale atau yang lebih tua dari maxAge. Return jumlah yang dibuang.
func (c *Cache) Sweep(maxAge time.Duration) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	n := 0
	for k, e := range c.entries {
		if e.stale || (maxAge > 0 && now.Sub(e.storedAt) > maxAge) {
			delete(c.entries, k)
			n++
		}
	}
	return n
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Remember: ambil dari cache, atau jalankan loader lalu simpan hasilnya.
// Error dari loader tidak di-cache.
func Remember[T any](c *Cache, key string, loader func() (T, error)) (T, error) {
	if v, ok := c.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}
	since := c.currentEpoch()
	v, err := loader()
	if err != nil {
		var zero T
		return zero, err
	}
	c.setSince(key, v, since)
	return v, nil
}
