package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phanxgames/wardley/internal/config"
	"github.com/spf13/cobra"
)

const sampleMap = "../../examples/maps/teashop.yaml"

// useConfig points --config at a file holding content for the test's duration.
func useConfig(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	prev := configPath
	configPath = path
	t.Cleanup(func() { configPath = prev })
}

func parseLayoutFlags(t *testing.T, args ...string) (*layoutFlags, *cobra.Command) {
	t.Helper()
	var f layoutFlags
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v): %v", args, err)
	}
	return &f, cmd
}

func TestSettingsFlagsOverrideConfig(t *testing.T) {
	useConfig(t, `[window]
width = 1200
height = 900

[grid]
lines = 7

[connections]
count = 3
seed = 42

[camera]
layout = "symmetric"
`)
	f, cmd := parseLayoutFlags(t, "--width", "640", "--grid-lines", "3", "--seed", "9")

	cfg, err := f.settings(cmd)
	if err != nil {
		t.Fatalf("settings failed: %v", err)
	}
	if cfg.Window.Width != 640 {
		t.Errorf("width = %d, want 640 from the flag", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("height = %d, want 900 from the config", cfg.Window.Height)
	}
	if cfg.Grid.Lines != 3 {
		t.Errorf("grid lines = %d, want 3 from the flag", cfg.Grid.Lines)
	}
	if cfg.Connections.Count != 3 {
		t.Errorf("connections = %d, want 3 from the config", cfg.Connections.Count)
	}
	if cfg.Connections.Seed != 9 {
		t.Errorf("seed = %d, want 9 from the flag", cfg.Connections.Seed)
	}
	if cfg.Camera.Layout != "symmetric" {
		t.Errorf("layout = %q, want symmetric from the config", cfg.Camera.Layout)
	}
}

func TestSettingsUnsetFlagsKeepConfig(t *testing.T) {
	useConfig(t, `[window]
width = 1200
`)
	f, cmd := parseLayoutFlags(t)

	cfg, err := f.settings(cmd)
	if err != nil {
		t.Fatalf("settings failed: %v", err)
	}
	// The flag's default (1000) must not win over the config file.
	if cfg.Window.Width != 1200 {
		t.Errorf("width = %d, want 1200", cfg.Window.Width)
	}
}

func TestSettingsMissingConfigUsesDefaults(t *testing.T) {
	useConfig(t, "")
	f, cmd := parseLayoutFlags(t, "--layout", "symmetric")

	cfg, err := f.settings(cmd)
	if err != nil {
		t.Fatalf("settings failed: %v", err)
	}
	d := config.Default()
	if cfg.Window != d.Window || cfg.Grid != d.Grid {
		t.Errorf("settings = %+v, want defaults", cfg)
	}
	if cfg.Camera.Layout != "symmetric" {
		t.Errorf("layout = %q, want symmetric", cfg.Camera.Layout)
	}
}

func TestSettingsMalformedConfig(t *testing.T) {
	useConfig(t, "[window\nwidth = ")
	f, cmd := parseLayoutFlags(t)
	if _, err := f.settings(cmd); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestWriteSVG(t *testing.T) {
	comp, err := compose(sampleMap, config.Default())
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "map.svg")
	if err := writeSVG(path, comp); err != nil {
		t.Fatalf("writeSVG failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "<svg ") || !strings.HasSuffix(string(data), "</svg>\n") {
		t.Errorf("file is not a complete svg document:\n%s", data)
	}
}

func TestWriteSVGMissingDir(t *testing.T) {
	comp, err := compose(sampleMap, config.Default())
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "missing", "map.svg")
	if err := writeSVG(path, comp); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}

func TestExportToStdout(t *testing.T) {
	useConfig(t, "")
	var out bytes.Buffer
	cmd := exportCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{sampleMap, "-o", "-", "--width", "500", "--height", "400", "--connections", "0"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(out.String(), `width="500" height="400"`) {
		t.Errorf("svg does not use the flag size:\n%s", out.String())
	}
	if strings.Contains(out.String(), `class="random"`) {
		t.Error("--connections 0 should draw no random edges")
	}
}
