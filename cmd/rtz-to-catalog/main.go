package main

import (
	"context"
	"flag"
	"fmt"

	lib "github.com/norcoast-labs/rtz-to-catalog"
	"github.com/norcoast-labs/rtz-to-catalog/config"
	"github.com/norcoast-labs/rtz-to-catalog/formatter"
)

func main() {
	configPath := flag.String("config", "", "path to config.yml (optional)")
	input := flag.String("input", "", "input root directory (overrides config)")
	output := flag.String("output", "", "output directory for artifacts (overrides config)")
	workers := flag.Int("workers", 0, "regional worker count (overrides config)")
	ext := flag.String("ext", "", "route file extension, e.g. .rtz (overrides config)")
	flag.Parse()

	lib.InitLogging()

	var cfg config.PipelineConfig
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			panic(err)
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}
	if *input != "" {
		cfg.InputRoot = *input
	}
	if *output != "" {
		cfg.OutputDir = *output
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *ext != "" {
		cfg.RouteExtension = *ext
	}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	p := lib.NewPipeline(cfg)
	cat, sum, err := p.Run(context.Background())
	if err != nil {
		panic(err)
	}
	if err := p.WriteArtifacts(cat, sum); err != nil {
		panic(err)
	}

	buf, err := formatter.NewArtifactBuilder().BuildSummaryJSON(sum)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(buf))
}
