package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_FileValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "serverUrl: http://nas:8337\napiKey: sekrit\ntimeoutSeconds: 10\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerURL != "http://nas:8337" {
		t.Errorf("ServerURL = %q", cfg.ServerURL)
	}
	if cfg.APIKey != "sekrit" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.Timeout() != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.Timeout())
	}
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load should fail for an explicit path that does not exist")
	}
}

func TestLoad_DefaultsApply(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("apiKey: k\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerURL != Default().ServerURL {
		t.Errorf("ServerURL = %q, want default %q", cfg.ServerURL, Default().ServerURL)
	}
	if cfg.TimeoutSeconds != Default().TimeoutSeconds {
		t.Errorf("TimeoutSeconds = %d, want default %d", cfg.TimeoutSeconds, Default().TimeoutSeconds)
	}
}
