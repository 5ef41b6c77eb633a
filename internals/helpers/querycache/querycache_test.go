package querycache

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestGetFreshAndInvalidate(t *testing.T) {
	c := New(time.Minute)
	c.Set("siswa", 10)

	if v, ok := c.Get("siswa"); !ok || v.(int) != 10 {
		t.Fatalf("expected fresh hit, got %v %v", v, ok)
	}
	c.Invalidate("siswa")
	if _, ok := c.Get("siswa"); ok {
		t.Fatalf("expected miss after invalidate")
	}
}

func TestPrefixInvalidation(t *testing.T) {
	c := New(time.Minute)
	c.Set("statistik:summary", 1)
	c.Set("statistik:histogram", 2)
	c.Set("statistikx", 3)
	c.Set("siswa", 4)

	c.Invalidate("statistik")

	for _, k := range []string{"statistik:summary", "statistik:histogram"} {
		if _, ok := c.Get(k); ok {
			t.Errorf("%s should be stale", k)
		}
	}
	for _, k := range []string{"statistikx", "siswa"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("%s should still be fresh", k)
		}
	}
}

func TestInvalidateForNilaiReachesDashboard(t *testing.T) {
	c := New(time.Minute)
	c.Set("dashboard_stats:admin", "x")
	c.Set("statistik:summary", "y")
	c.Set("sekolah", "z")

	c.InvalidateFor(KeyNilai)

	if _, ok := c.Get("dashboard_stats:admin"); ok {
		t.Errorf("dashboard_stats should be invalidated by nilai")
	}
	if _, ok := c.Get("statistik:summary"); ok {
		t.Errorf("statistik should be invalidated by nilai")
	}
	if _, ok := c.Get("sekolah"); !ok {
		t.Errorf("sekolah should be untouched")
	}
}

func TestTTLExpiryAndSweep(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := New(time.Minute)
	c.now = func() time.Time { return now }

	c.Set("a", 1)
	c.Set("b", 2)
	c.Invalidate("b")

	now = now.Add(2 * time.Minute)
	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected a expired")
	}

	if n := c.Sweep(time.Hour); n != 1 {
		t.Fatalf("sweep removed %d, want 1 (only stale b)", n)
	}
	if n := c.Sweep(time.Minute); n != 1 {
		t.Fatalf("sweep removed %d, want 1 (old a)", n)
	}
	if c.Len() != 0 {
		t.Fatalf("cache should be empty, len=%d", c.Len())
	}
}

func TestRemember(t *testing.T) {
	c := New(time.Minute)
	calls := 0
	loader := func() (int, error) {
		calls++
		return 42, nil
	}

	for i := 0; i < 3; i++ {
		v, err := Remember(c, "k", loader)
		if err != nil || v != 42 {
			t.Fatalf("Remember = %v, %v", v, err)
		}
	}
	if calls != 1 {
		t.Fatalf("loader called %d times, want 1", calls)
	}

	c.Invalidate("k")
	_, _ = Remember(c, "k", loader)
	if calls != 2 {
		t.Fatalf("loader should rerun after invalidate, calls=%d", calls)
	}

	boom := errors.New("boom")
	if _, err := Remember(c, "err", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}
	if _, ok := c.Get("err"); ok {
		t.Fatalf("errors must not be cached")
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New(time.Minute)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Set("siswa:list", i)
			c.Get("siswa:list")
			c.InvalidateFor(KeySiswa)
		}(i)
	}
	wg.Wait()
}

func TestRememberInvalidatedDuringLoad(t *testing.T) {
	c := New(time.Minute)

	v, err := Remember(c, "nilai:list", func() (string, error) {
		// mutasi nilai terjadi saat loader masih membaca
		c.InvalidateFor(KeyNilai)
		return "old-snapshot", nil
	})
	if err != nil || v != "old-snapshot" {
		t.Fatalf("Remember = %q, %v", v, err)
	}
	if got, ok := c.Get("nilai:list"); ok {
		t.Fatalf("snapshot loaded before invalidation must not be fresh, got %v", got)
	}

	calls := 0
	v, _ = Remember(c, "nilai:list", func() (string, error) {
		calls++
		return "new-snapshot", nil
	})
	if v != "new-snapshot" || calls != 1 {
		t.Fatalf("expected reload after invalidation, got %q (calls=%d)", v, calls)
	}
	if got, ok := c.Get("nilai:list"); !ok || got != "new-snapshot" {
		t.Fatalf("reloaded value should be fresh, got %v %v", got, ok)
	}
}
