package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Position != StartPosition {
		t.Errorf("expected default start position, got %s", cfg.Position)
	}
	if len(cfg.Engine) == 0 {
		t.Error("expected a default engine command")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "explorer.yaml")
	data := "engine: [cargo, run, -p, uci, --release]\nposition: \"0000000000000000000000000/2/11,13/17,7\"\ndebug: true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Engine) != 5 || cfg.Engine[0] != "cargo" {
		t.Errorf("unexpected engine command: %v", cfg.Engine)
	}
	if cfg.Position != "0000000000000000000000000/2/11,13/17,7" {
		t.Errorf("unexpected position: %s", cfg.Position)
	}
	if !cfg.Debug {
		t.Error("expected debug to be set")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig("/does/not/exist.yaml"); err == nil {
		t.Error("expected an error for a missing config file")
	}
}
