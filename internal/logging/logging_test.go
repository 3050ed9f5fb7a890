package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_EmptyDirIsNop(t *testing.T) {
	log, err := New("")
	if err != nil {
		t.Fatalf("New(\"\") error = %v", err)
	}
	// Must be safe to use without side effects.
	log.Info("discarded")
}

func TestNew_WritesToFile(t *testing.T) {
	dir := t.TempDir()
	log, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	log.Info("hello from test")
	if err := log.Sync(); err != nil {
		t.Logf("sync: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "rolodex.log"))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file missing entry, got: %s", data)
	}
}

func TestNew_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")
	if _, err := New(dir); err != nil {
		t.Fatalf("New() should create the directory: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("log dir not created: %v", err)
	}
}
