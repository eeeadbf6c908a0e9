package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Camera.FOV != 60.0 {
		t.Errorf("default FOV = %f, want 60", cfg.Camera.FOV)
	}
	if cfg.Camera.RotationSpeed != 0.25 || cfg.Camera.MovementSpeed != 0.3 {
		t.Errorf("default speeds = %f, %f; want 0.25, 0.3",
			cfg.Camera.RotationSpeed, cfg.Camera.MovementSpeed)
	}
	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("default window = %dx%d, want 1280x720", cfg.Window.Width, cfg.Window.Height)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
window:
  title: "Drift Test"
camera:
  fov: 90
  invert_y: true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Window.Title != "Drift Test" {
		t.Errorf("title = %q, want %q", cfg.Window.Title, "Drift Test")
	}
	if cfg.Camera.FOV != 90 {
		t.Errorf("fov = %f, want 90", cfg.Camera.FOV)
	}
	if !cfg.Camera.InvertY {
		t.Error("invert_y not applied")
	}

	// Unset fields keep their defaults.
	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("window = %dx%d, want defaults 1280x720", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Camera.MovementSpeed != 0.3 {
		t.Errorf("movement_speed = %f, want default 0.3", cfg.Camera.MovementSpeed)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load must fail for a missing file")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("window: [not, a, map"), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load must fail for malformed YAML")
	}
}
