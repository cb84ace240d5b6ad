package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnsureUserConfigCopiesDefault(t *testing.T) {
	dir := t.TempDir()
	def := filepath.Join(dir, "default.yml")
	if err := os.WriteFile(def, []byte("app:\n  port: 9999\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	dataDir := filepath.Join(dir, "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		t.Fatal(err)
	}

	path, err := EnsureUserConfig(dataDir, def)
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Port != 9999 {
		t.Fatalf("port = %d", cfg.App.Port)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Site.Title != "Job Board" || cfg.Logos.MaxBytes != 512*1024 {
		t.Fatalf("defaults not applied: %+v", cfg)
	}

	// A second call must not overwrite the user's file.
	if err := os.WriteFile(def, []byte("app:\n  port: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := EnsureUserConfig(dataDir, def); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load(path)
	if cfg.App.Port != 9999 {
		t.Fatalf("user config was overwritten, port = %d", cfg.App.Port)
	}
}

func TestEnsureUserConfigWritesDefaultWhenTemplateMissing(t *testing.T) {
	dataDir := t.TempDir()
	path, err := EnsureUserConfig(dataDir, filepath.Join(dataDir, "missing.yml"))
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Port != Default().App.Port {
		t.Fatalf("port = %d", cfg.App.Port)
	}
}

func TestNormalizeAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(*Config) {}, ""},
		{"bad port", func(c *Config) { c.App.Port = 70000 }, "app.port"},
		{"relative base url", func(c *Config) { c.Site.BaseURL = "/jobs" }, "site.base_url"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"zero rate", func(c *Config) { c.Logos.RequestsPerSecond = 0 }, "logos.requests_per_second"},
		{"zero rate ignored when disabled", func(c *Config) {
			c.Logos.Enabled = false
			c.Logos.RequestsPerSecond = 0
		}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			_, vr := NormalizeAndValidate(cfg)
			if tt.wantErr == "" {
				if !vr.OK() {
					t.Fatalf("unexpected errors: %v", vr.Errors)
				}
				return
			}
			if vr.OK() || !strings.Contains(strings.Join(vr.Errors, "\n"), tt.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", tt.wantErr, vr.Errors)
			}
		})
	}
}

func TestNormalizeTrimsAndDedupesHosts(t *testing.T) {
	cfg := Default()
	cfg.Site.BaseURL = " https://jobs.example.com/ "
	cfg.Logos.AllowHosts = []string{" Images.Example.com", "images.example.com", ""}
	out, vr := NormalizeAndValidate(cfg)
	if !vr.OK() {
		t.Fatalf("errors: %v", vr.Errors)
	}
	if out.Site.BaseURL != "https://jobs.example.com" {
		t.Fatalf("base url = %q", out.Site.BaseURL)
	}
	if len(out.Logos.AllowHosts) != 1 || out.Logos.AllowHosts[0] != "images.example.com" {
		t.Fatalf("hosts = %v", out.Logos.AllowHosts)
	}
}

func TestOverlayEnv(t *testing.T) {
	t.Setenv("JOBBOARD_PORT", "8081")
	t.Setenv("JOBBOARD_CATALOG", "/srv/jobs.yml")
	t.Setenv("JOBBOARD_LOGOS", "false")
	cfg := Default()
	if err := OverlayEnv(&cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.App.Port != 8081 || cfg.Catalog.Path != "/srv/jobs.yml" || cfg.Logos.Enabled {
		t.Fatalf("overlay not applied: %+v", cfg)
	}

	t.Setenv("JOBBOARD_PORT", "eighty")
	if err := OverlayEnv(&cfg); err == nil {
		t.Fatal("expected error for non-numeric port")
	}
}

func TestSaveAtomicKeepsBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	cfg := Default()
	if err := SaveAtomic(path, cfg); err != nil {
		t.Fatal(err)
	}
	cfg.App.Port = 9000
	if err := SaveAtomic(path, cfg); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path + ".bak"); err != nil {
		t.Fatalf("expected backup: %v", err)
	}
	got, err := Load(path)
	if err != nil || got.App.Port != 9000 {
		t.Fatalf("reload: port=%d err=%v", got.App.Port, err)
	}

	cfg.App.Port = 0
	if err := SaveAtomic(path, cfg); err == nil {
		t.Fatal("expected invalid config to be rejected")
	}
}
