package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadCLIConfig_Defaults(t *testing.T) {
	cfg, err := loadCLIConfig(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("loadCLIConfig() = %v, want nil for missing file", err)
	}

	if got := cfg.Skin; got != "default" {
		t.Fatalf("skin = %q, want default", got)
	}
	if got := cfg.Base; got != 10 {
		t.Fatalf("base = %d, want 10", got)
	}
	if got := cfg.CopyFlash; got != 1200*time.Millisecond {
		t.Fatalf("copy-flash = %v, want 1.2s", got)
	}
	if cfg.ManualStart {
		t.Fatal("manual-start = true, want false")
	}
	if got := cfg.LogBuffer; got != 256 {
		t.Fatalf("log-buffer = %d, want 256", got)
	}
}

func TestLoadCLIConfig_FileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	body := "skin: neon\nbase: 16\ncopy-flash: 500ms\nmanual-start: true\nlog-buffer: 32\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadCLIConfig(path)
	if err != nil {
		t.Fatalf("loadCLIConfig() = %v, want nil", err)
	}

	if got := cfg.Skin; got != "neon" {
		t.Fatalf("skin = %q, want neon", got)
	}
	if got := cfg.Base; got != 16 {
		t.Fatalf("base = %d, want 16", got)
	}
	if got := cfg.CopyFlash; got != 500*time.Millisecond {
		t.Fatalf("copy-flash = %v, want 500ms", got)
	}
	if !cfg.ManualStart {
		t.Fatal("manual-start = false, want true")
	}
	if got := cfg.LogBuffer; got != 32 {
		t.Fatalf("log-buffer = %d, want 32", got)
	}
}

func TestLoadCLIConfig_EnvOverrides(t *testing.T) {
	t.Setenv("BITVIS_BASE", "2")
	t.Setenv("BITVIS_MANUAL_START", "true")

	cfg, err := loadCLIConfig(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("loadCLIConfig() = %v, want nil", err)
	}

	if got := cfg.Base; got != 2 {
		t.Fatalf("base = %d, want 2 from env", got)
	}
	if !cfg.ManualStart {
		t.Fatal("manual-start not picked up from env")
	}
}

func TestLoadCLIConfig_RejectsBadValues(t *testing.T) {
	for name, body := range map[string]string{
		"base too low":  "base: 1\n",
		"base too high": "base: 37\n",
		"zero log ring": "log-buffer: 0\n",
	} {
		path := filepath.Join(t.TempDir(), "config.yml")
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := loadCLIConfig(path); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
