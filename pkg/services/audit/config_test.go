package audit

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_ValidYAML_PopulatesThresholds(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "audit.yaml")
	content := `tolerance:
  low_percent: 5
  high_percent: 20`
	err := os.WriteFile(path, []byte(content), 0o644)
	if err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// When
	cfg, err := LoadConfig(path)

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Tolerance.LowPercent != 5 {
		t.Errorf("expected LowPercent=5, got %v", cfg.Tolerance.LowPercent)
	}
	if cfg.Tolerance.HighPercent != 20 {
		t.Errorf("expected HighPercent=20, got %v", cfg.Tolerance.HighPercent)
	}
}

func TestLoadConfig_MissingThresholds_UsesDefaults(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "audit.yaml")
	err := os.WriteFile(path, []byte(`tolerance: {}`), 0o644)
	if err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// When
	cfg, err := LoadConfig(path)

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Tolerance != DefaultTolerance() {
		t.Errorf("expected default tolerance, got %+v", cfg.Tolerance)
	}
}

func TestLoadConfig_InvalidYAML_ReturnsError(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	err := os.WriteFile(path, []byte("tolerance: low: bad"), 0o644)
	if err != nil {
		t.Fatalf("failed to write bad config: %v", err)
	}

	// When
	_, err = LoadConfig(path)

	// Then
	if err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}
