package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"INTERM_LINES", "INTERM_STEPS", "INTERM_TICK", "INTERM_LOG_LEVEL", "INTERM_CLEAR_ON_EXIT"} {
		t.Setenv(key, "")
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %#v", cfg)
	}
}

func TestLoadRejectsInvalidNumericEnv(t *testing.T) {
	t.Setenv("INTERM_LINES", "abc")
	if _, err := Load(""); err == nil {
		t.Fatal("expected parse error for INTERM_LINES")
	}
}

func TestLoadRejectsOutOfRangeLines(t *testing.T) {
	t.Setenv("INTERM_LINES", "256")
	if _, err := Load(""); err == nil {
		t.Fatal("expected range error for INTERM_LINES")
	}
}

func TestLoadParsesDurationLevelAndFlags(t *testing.T) {
	t.Setenv("INTERM_LINES", "4")
	t.Setenv("INTERM_TICK", "5ms")
	t.Setenv("INTERM_LOG_LEVEL", "debug")
	t.Setenv("INTERM_CLEAR_ON_EXIT", "off")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Lines != 4 || cfg.Tick != 5*time.Millisecond || cfg.LogLevel != slog.LevelDebug || cfg.ClearOnExit {
		t.Fatalf("unexpected config %#v", cfg)
	}
}

func TestLoadRejectsInvalidBoolean(t *testing.T) {
	t.Setenv("INTERM_CLEAR_ON_EXIT", "treu")
	if _, err := Load(""); err == nil {
		t.Fatal("expected parse error for INTERM_CLEAR_ON_EXIT")
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	t.Setenv("INTERM_LINES", "")
	t.Setenv("INTERM_STEPS", "")
	os.Unsetenv("INTERM_STEPS")
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("INTERM_STEPS=7\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Steps != 7 {
		t.Fatalf("expected steps from env file, got %d", cfg.Steps)
	}
}

func TestLoadReportsMissingEnvFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatal("expected error for missing env file")
	}
}
