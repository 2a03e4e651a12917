package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "inputRoot: /data/routes\noutputDir: /data/out\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.RouteExtension != ".rtz" {
		t.Errorf("expected default extension .rtz, got %q", cfg.RouteExtension)
	}
	if cfg.Workers != 4 {
		t.Errorf("expected default workers 4, got %d", cfg.Workers)
	}
	if cfg.Artifacts.Catalog != "catalog.json" || cfg.Artifacts.Geometry != "routes.geojson" || cfg.Artifacts.Summary != "summary.json" {
		t.Errorf("unexpected artifact defaults: %+v", cfg.Artifacts)
	}
}

func TestLoad_ExplicitValuesWin(t *testing.T) {
	path := writeConfig(t, `
inputRoot: /data/routes
outputDir: /data/out
routeExtension: .xml
workers: 2
artifacts:
  catalog: cat.json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.RouteExtension != ".xml" {
		t.Errorf("expected .xml, got %q", cfg.RouteExtension)
	}
	if cfg.Workers != 2 {
		t.Errorf("expected 2 workers, got %d", cfg.Workers)
	}
	if cfg.Artifacts.Catalog != "cat.json" {
		t.Errorf("expected cat.json, got %q", cfg.Artifacts.Catalog)
	}
	if cfg.Artifacts.Geometry != "routes.geojson" {
		t.Errorf("unset artifact should keep default, got %q", cfg.Artifacts.Geometry)
	}
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	path := writeConfig(t, "inputRoot: /data/routes\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for missing outputDir")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.RouteExtension != ".rtz" || cfg.Workers != 4 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Default() without input/output should not validate")
	}
}
