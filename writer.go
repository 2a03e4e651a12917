package rtzcatalog

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/norcoast-labs/rtz-to-catalog/catalog"
	"github.com/norcoast-labs/rtz-to-catalog/formatter"
)

// WriteArtifacts serializes the catalog, geometry and summary documents into
// the configured output directory. Every artifact is fully serialized before
// the first byte hits disk, and each file is written to a temp name and then
// renamed, so an interrupted run never leaves a partially-written artifact
// and a failed run leaves any previous artifacts untouched.
func (p *Pipeline) WriteArtifacts(cat catalog.Catalog, sum catalog.Summary) error {
	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("output dir: %w", err)
	}

	ab := formatter.NewArtifactBuilder()
	catBytes, err := ab.BuildCatalogJSON(cat)
	if err != nil {
		return fmt.Errorf("serialize catalog: %w", err)
	}
	geoBytes, err := ab.BuildGeometryJSON(cat)
	if err != nil {
		return fmt.Errorf("serialize geometry: %w", err)
	}
	sumBytes, err := ab.BuildSummaryJSON(sum)
	if err != nil {
		return fmt.Errorf("serialize summary: %w", err)
	}

	artifacts := []struct {
		name string
		data []byte
	}{
		{name: p.cfg.Artifacts.Catalog, data: catBytes},
		{name: p.cfg.Artifacts.Geometry, data: geoBytes},
		{name: p.cfg.Artifacts.Summary, data: sumBytes},
	}
	for _, a := range artifacts {
		if err := writeFileAtomic(p.cfg.OutputDir, a.name, a.data); err != nil {
			return err
		}
		log.Printf("pipeline: wrote %s (%d bytes)", filepath.Join(p.cfg.OutputDir, a.name), len(a.data))
	}
	return nil
}

func writeFileAtomic(dir, name string, data []byte) error {
	tmp, err := os.CreateTemp(dir, "."+name+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmpName, filepath.Join(dir, name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
