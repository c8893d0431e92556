package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default addr :8080, got %s", cfg.HTTPAddr)
	}
	if cfg.OrderPrefix != "TP" {
		t.Fatalf("expected default order prefix TP, got %s", cfg.OrderPrefix)
	}
	if cfg.ShippingDebounce != 600*time.Millisecond {
		t.Fatalf("expected default debounce 600ms, got %s", cfg.ShippingDebounce)
	}
	if cfg.MailConfigured() {
		t.Fatalf("mail must be off without SMTP_HOST")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("SHIPPING_DEBOUNCE", "250ms")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.HTTPAddr != ":9999" {
		t.Fatalf("expected :9999, got %s", cfg.HTTPAddr)
	}
	if !cfg.MailConfigured() {
		t.Fatalf("mail must be on with SMTP_HOST set")
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %v", cfg.CORSOrigins)
	}
	if cfg.ShippingDebounce != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %s", cfg.ShippingDebounce)
	}
}

func TestFromEnvBadDuration(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	if _, err := FromEnv(); err == nil {
		t.Fatalf("expected parse failure")
	}
}
