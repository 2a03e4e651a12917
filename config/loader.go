package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Default returns a PipelineConfig with every optional field filled in.
// InputRoot and OutputDir are left empty and must be set by the caller.
func Default() PipelineConfig {
	cfg := PipelineConfig{}
	applyDefaults(&cfg)
	return cfg
}

// Load reads and validates a pipeline configuration from path.
// An empty path falls back to config.yml in the working directory.
func Load(path string) (PipelineConfig, error) {
	paths := []string{path}
	if path == "" {
		paths = []string{"config.yml", "./rtz-to-catalog/config.yml"}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return PipelineConfig{}, err
	}
	var cfg PipelineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PipelineConfig{}, err
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return PipelineConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c PipelineConfig) Validate() error {
	v := validator.New()
	return v.Struct(c)
}

func applyDefaults(cfg *PipelineConfig) {
	if cfg.RouteExtension == "" {
		cfg.RouteExtension = ".rtz"
	}
	if cfg.Workers == 0 {
		cfg.Workers = 4
	}
	if cfg.Artifacts.Catalog == "" {
		cfg.Artifacts.Catalog = "catalog.json"
	}
	if cfg.Artifacts.Geometry == "" {
		cfg.Artifacts.Geometry = "routes.geojson"
	}
	if cfg.Artifacts.Summary == "" {
		cfg.Artifacts.Summary = "summary.json"
	}
}
