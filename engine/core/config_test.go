package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hubastard/meowcade/engine/colors"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "title: Cats\nwidth: 800\nclearColor: [0, 0, 0, 1]\nsaveName: \"\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Title != "Cats" || cfg.Width != 800 {
		t.Errorf("explicit fields lost: %+v", cfg)
	}
	if cfg.Height != DefaultConfig().Height {
		t.Errorf("Height = %d, want default", cfg.Height)
	}
	if cfg.ClearColor != colors.Black {
		t.Errorf("ClearColor = %v, want black", cfg.ClearColor)
	}
	if cfg.SaveName != "" {
		t.Errorf("SaveName = %q, want empty (in-memory progress)", cfg.SaveName)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("width: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected a parse error")
	}
}
