package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.API.BaseURL != "https://jsonplaceholder.typicode.com/users" {
		t.Errorf("default base url = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 10*time.Second {
		t.Errorf("default timeout = %v, want %v", cfg.API.Timeout, 10*time.Second)
	}
	if cfg.UI.Limit != 5 {
		t.Errorf("default limit = %d, want 5", cfg.UI.Limit)
	}
	if cfg.Log.Dir != "" {
		t.Errorf("default log dir = %q, want empty", cfg.Log.Dir)
	}
}

func TestLoad_ValidFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "rolodex.yaml")
	if err := os.WriteFile(cfgPath, []byte(`
api:
  base_url: http://localhost:8080/users
  timeout: 30s
ui:
  limit: 10
`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:8080/users" {
		t.Errorf("base url = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", cfg.API.Timeout)
	}
	if cfg.UI.Limit != 10 {
		t.Errorf("limit = %d, want 10", cfg.UI.Limit)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load("/nonexistent/rolodex.yaml")
	if err != nil {
		t.Fatalf("Load() should return defaults for missing file, got error: %v", err)
	}
	want := DefaultConfig()
	if *cfg != want {
		t.Errorf("Load(missing) = %+v, want defaults %+v", *cfg, want)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "rolodex.yaml")
	if err := os.WriteFile(cfgPath, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := DefaultConfig()
	if *cfg != want {
		t.Errorf("Load(empty) = %+v, want defaults %+v", *cfg, want)
	}
}

func TestLoad_UnknownFields(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "rolodex.yaml")
	if err := os.WriteFile(cfgPath, []byte("bogus: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(cfgPath); err == nil {
		t.Error("Load() should reject unknown fields")
	}
}

func TestLoadLayered_LaterOverridesEarlier(t *testing.T) {
	dir := t.TempDir()
	userPath := filepath.Join(dir, "user.yaml")
	projPath := filepath.Join(dir, "project.yaml")

	if err := os.WriteFile(userPath, []byte(`
api:
  base_url: http://user.example/users
  timeout: 20s
ui:
  limit: 7
`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(projPath, []byte(`
api:
  base_url: http://project.example/users
`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLayered(userPath, projPath)
	if err != nil {
		t.Fatalf("LoadLayered() error = %v", err)
	}

	// Project layer overrides base url but not the user layer's other fields.
	if cfg.API.BaseURL != "http://project.example/users" {
		t.Errorf("base url = %q, want project override", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 20*time.Second {
		t.Errorf("timeout = %v, want 20s from user layer", cfg.API.Timeout)
	}
	if cfg.UI.Limit != 7 {
		t.Errorf("limit = %d, want 7 from user layer", cfg.UI.Limit)
	}
}

func TestLoadLayered_MissingFilesSkipped(t *testing.T) {
	cfg, err := LoadLayered("/nonexistent/a.yaml", "/nonexistent/b.yaml")
	if err != nil {
		t.Fatalf("LoadLayered() error = %v", err)
	}
	want := DefaultConfig()
	if *cfg != want {
		t.Errorf("LoadLayered(missing) = %+v, want defaults", *cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"empty base url", func(c *Config) { c.API.BaseURL = "" }, true},
		{"zero timeout", func(c *Config) { c.API.Timeout = 0 }, true},
		{"negative timeout", func(c *Config) { c.API.Timeout = -time.Second }, true},
		{"zero limit", func(c *Config) { c.UI.Limit = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("ROLODEX_BASE_URL", "http://env.example/users")
	t.Setenv("ROLODEX_TIMEOUT", "45s")
	t.Setenv("ROLODEX_LIMIT", "3")
	t.Setenv("ROLODEX_LOG_DIR", "/tmp/rolodex-logs")

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}

	if cfg.API.BaseURL != "http://env.example/users" {
		t.Errorf("base url = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 45*time.Second {
		t.Errorf("timeout = %v, want 45s", cfg.API.Timeout)
	}
	if cfg.UI.Limit != 3 {
		t.Errorf("limit = %d, want 3", cfg.UI.Limit)
	}
	if cfg.Log.Dir != "/tmp/rolodex-logs" {
		t.Errorf("log dir = %q", cfg.Log.Dir)
	}
}

func TestApplyEnv_InvalidValues(t *testing.T) {
	t.Setenv("ROLODEX_TIMEOUT", "not-a-duration")
	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(); err == nil {
		t.Error("ApplyEnv() should reject an invalid duration")
	}

	t.Setenv("ROLODEX_TIMEOUT", "")
	t.Setenv("ROLODEX_LIMIT", "nope")
	cfg = DefaultConfig()
	if err := cfg.ApplyEnv(); err == nil {
		t.Error("ApplyEnv() should reject an invalid limit")
	}
}
