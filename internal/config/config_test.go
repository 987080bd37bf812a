package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/phanxgames/wardley"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1000 || cfg.Window.Height != 800 {
		t.Errorf("expected window 1000x800, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Grid.Lines != 5 {
		t.Errorf("expected 5 grid lines, got %d", cfg.Grid.Lines)
	}
	if cfg.Connections.Count != 10 {
		t.Errorf("expected 10 connections, got %d", cfg.Connections.Count)
	}
	if cfg.Camera.Layout != "origin" {
		t.Errorf("expected layout 'origin', got %q", cfg.Camera.Layout)
	}
	if cfg.Debug.Enabled {
		t.Error("default debug should be disabled")
	}
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/test-xdg")
	dir := ConfigDir()
	if dir != "/tmp/test-xdg/wardley" {
		t.Errorf("expected /tmp/test-xdg/wardley, got %q", dir)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	dir = ConfigDir()
	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".config", "wardley")
	if dir != expected {
		t.Errorf("expected %q, got %q", expected, dir)
	}
}

func TestLoadMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Grid.Lines != Default().Grid.Lines {
		t.Errorf("expected defaults for missing file, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg := Default()
	cfg.Grid.Lines = 7
	cfg.Camera.Layout = "symmetric"

	if err := Save(cfg, ""); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Grid.Lines != 7 {
		t.Errorf("expected 7 grid lines, got %d", loaded.Grid.Lines)
	}
	if loaded.Camera.Layout != "symmetric" {
		t.Errorf("expected layout 'symmetric', got %q", loaded.Camera.Layout)
	}
}

func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.toml")
	if err := os.WriteFile(path, []byte("[connections]\ncount = 3\nseed = 42\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Connections.Count != 3 || cfg.Connections.Seed != 42 {
		t.Errorf("expected count 3 seed 42, got %+v", cfg.Connections)
	}
	if cfg.Window.Width != 1000 {
		t.Errorf("unset sections should keep defaults, got width %d", cfg.Window.Width)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[grid\nlines = "), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestSceneOptions(t *testing.T) {
	cfg := Default()
	cfg.Camera.Layout = "symmetric"
	cfg.Camera.WheelStep = 1.25
	cfg.Connections.Seed = 9

	opts, err := cfg.SceneOptions()
	if err != nil {
		t.Fatalf("SceneOptions failed: %v", err)
	}
	if opts.Camera.Layout != wardley.LayoutSymmetric {
		t.Errorf("expected symmetric layout, got %v", opts.Camera.Layout)
	}
	if opts.WheelStep != 1.25 {
		t.Errorf("expected wheel step 1.25, got %f", opts.WheelStep)
	}
	if opts.Compose.Rand == nil {
		t.Error("expected seeded random source")
	}
}

func TestSceneOptionsInvalid(t *testing.T) {
	cfg := Default()
	cfg.Grid.Lines = 1
	if _, err := cfg.SceneOptions(); !errors.Is(err, wardley.ErrConfiguration) {
		t.Errorf("expected ErrConfiguration for 1 grid line, got %v", err)
	}

	cfg = Default()
	cfg.Camera.Layout = "diagonal"
	if _, err := cfg.SceneOptions(); !errors.Is(err, wardley.ErrConfiguration) {
		t.Errorf("expected ErrConfiguration for unknown layout, got %v", err)
	}
}
