package configs

import (
	"io"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestParseCSV(t *testing.T) {
	if got := ParseCSV(""); len(got) != 0 {
		t.Fatalf("ParseCSV(\"\") = %v", got)
	}
	got := ParseCSV(" 10.0.0.0/8, ,173.245.48.0/20,")
	want := []string{"10.0.0.0/8", "173.245.48.0/20"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseCSV = %v want %v", got, want)
	}
}

func ipApp(proxies []string) *fiber.App {
	app := fiber.New(ApplyProxy(fiber.Config{DisableStartupMessage: true}, proxies))
	app.Get("/ip", func(c *fiber.Ctx) error { return c.SendString(c.IP()) })
	return app
}

func clientIP(t *testing.T, app *fiber.App) string {
	t.Helper()
	req := httptest.NewRequest("GET", "/ip", nil)
	req.Header.Set(fiber.HeaderXForwardedFor, "203.0.113.7")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestForwardedForIgnoredWithoutTrustedProxy(t *testing.T) {
	if ip := clientIP(t, ipApp(nil)); ip == "203.0.113.7" {
		t.Fatal("X-Forwarded-For dipakai padahal tidak ada proxy terpercaya")
	}
	if ip := clientIP(t, ipApp([]string{"198.51.100.0/24"})); ip == "203.0.113.7" {
		t.Fatal("X-Forwarded-For dari alamat di luar TrustedProxies dipakai")
	}
}

func TestForwardedForFromTrustedProxy(t *testing.T) {
	// koneksi app.Test datang dari 0.0.0.0
	if ip := clientIP(t, ipApp([]string{"0.0.0.0/0"})); ip != "203.0.113.7" {
		t.Fatalf("c.IP() = %q, want header value dari proxy terpercaya", ip)
	}
}
