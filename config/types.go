package config

// ArtifactConfig names the files written to the output directory
type ArtifactConfig struct {
	Catalog  string `yaml:"catalog"`
	Geometry string `yaml:"geometry"`
	Summary  string `yaml:"summary"`
}

// PipelineConfig is the root configuration for one ingestion run
type PipelineConfig struct {
	InputRoot      string         `yaml:"inputRoot" validate:"required"`
	OutputDir      string         `yaml:"outputDir" validate:"required"`
	RouteExtension string         `yaml:"routeExtension"`
	Workers        int            `yaml:"workers" validate:"gte=0"`
	Artifacts      ArtifactConfig `yaml:"artifacts"`
}
