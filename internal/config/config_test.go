package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Detection.MinLength != 2 {
		t.Errorf("MinLength = %d, want 2", cfg.Detection.MinLength)
	}
	if cfg.Detection.Delta != 1 {
		t.Errorf("Delta = %d, want 1", cfg.Detection.Delta)
	}
	if cfg.Detection.AngleEpsilon != 5.0 {
		t.Errorf("AngleEpsilon = %v, want 5.0", cfg.Detection.AngleEpsilon)
	}
	if cfg.Detection.Threshold != 128 {
		t.Errorf("Threshold = %v, want 128", cfg.Detection.Threshold)
	}
	if cfg.RenderColor != "#FF0000" {
		t.Errorf("RenderColor = %q, want #FF0000", cfg.RenderColor)
	}
}

func TestLoad_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "detection:\n  delta: 3\n  angle_epsilon: 10.5\nrender_color: \"#00FF00\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Detection.Delta != 3 {
		t.Errorf("Delta = %d, want 3", cfg.Detection.Delta)
	}
	if cfg.Detection.AngleEpsilon != 10.5 {
		t.Errorf("AngleEpsilon = %v, want 10.5", cfg.Detection.AngleEpsilon)
	}
	if cfg.RenderColor != "#00FF00" {
		t.Errorf("RenderColor = %q, want #00FF00", cfg.RenderColor)
	}
	// Untouched fields keep their defaults.
	if cfg.Detection.MinLength != 2 {
		t.Errorf("MinLength = %d, want default 2", cfg.Detection.MinLength)
	}
	if cfg.Detection.Threshold != 128 {
		t.Errorf("Threshold = %v, want default 128", cfg.Detection.Threshold)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing file, got nil")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("detection: [not a map"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML, got nil")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LINE_MCP_CONFIG", "")
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.Detection.Delta != Default().Detection.Delta {
		t.Error("unset LINE_MCP_CONFIG should yield defaults")
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("detection:\n  min_length: 4\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("LINE_MCP_CONFIG", path)
	cfg, err = FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.Detection.MinLength != 4 {
		t.Errorf("MinLength = %d, want 4", cfg.Detection.MinLength)
	}
}
