package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.ServerAddr != ":3000" {
		t.Fatalf("expected default addr :3000, got %q", cfg.ServerAddr)
	}
	if cfg.DownloadsDir != "./downloads" {
		t.Fatalf("expected default downloads dir, got %q", cfg.DownloadsDir)
	}
	if cfg.ArtifactMaxAge != time.Hour {
		t.Fatalf("expected 1h artifact max age, got %s", cfg.ArtifactMaxAge)
	}
	if cfg.JobTTL != 10*time.Minute {
		t.Fatalf("expected 10m job ttl, got %s", cfg.JobTTL)
	}
}

func TestLoad_PortFromEnv(t *testing.T) {
	t.Setenv("PORT", "8085")

	cfg := Load()
	if cfg.ServerAddr != ":8085" {
		t.Fatalf("expected :8085 from PORT, got %q", cfg.ServerAddr)
	}
}

func TestLoad_PrefixedOverrides(t *testing.T) {
	t.Setenv("CLIPD_DOWNLOADS_DIR", "/var/lib/clipd")
	t.Setenv("CLIPD_JOB_TTL", "5m")

	cfg := Load()
	if cfg.DownloadsDir != "/var/lib/clipd" {
		t.Fatalf("expected overridden downloads dir, got %q", cfg.DownloadsDir)
	}
	if cfg.JobTTL != 5*time.Minute {
		t.Fatalf("expected 5m job ttl, got %s", cfg.JobTTL)
	}
}
