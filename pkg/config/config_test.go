package config

import (
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	Path  string `yaml:"path"`
	Count int    `yaml:"count"`
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("TEST_VAULT_DIR", "/tmp/vault")
	file := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(file, []byte("path: ${TEST_VAULT_DIR}\ncount: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var cfg testConfig
	if err := Load(file, &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Path != "/tmp/vault" {
		t.Errorf("Path = %q, want env-expanded value", cfg.Path)
	}
	if cfg.Count != 3 {
		t.Errorf("Count = %d, want 3", cfg.Count)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	var cfg testConfig
	if err := Load(filepath.Join(t.TempDir(), "nope.yaml"), &cfg); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadOptional_MissingFileIsNoOp(t *testing.T) {
	cfg := testConfig{Path: "untouched"}
	if err := LoadOptional(filepath.Join(t.TempDir(), "nope.yaml"), &cfg); err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if cfg.Path != "untouched" {
		t.Errorf("Path = %q, target should be left untouched", cfg.Path)
	}
}
