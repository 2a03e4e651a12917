package rtzcatalog

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/norcoast-labs/rtz-to-catalog/catalog"
	"github.com/norcoast-labs/rtz-to-catalog/config"
	"github.com/norcoast-labs/rtz-to-catalog/geo"
	"github.com/norcoast-labs/rtz-to-catalog/resolve"
	"github.com/norcoast-labs/rtz-to-catalog/rtz"
	"github.com/norcoast-labs/rtz-to-catalog/scanner"
)

// Pipeline runs one ingestion pass over an input tree. All state is held in
// the caller-constructed value; nothing survives between runs.
type Pipeline struct {
	cfg config.PipelineConfig
}

// NewPipeline creates a pipeline for the given configuration.
func NewPipeline(cfg config.PipelineConfig) *Pipeline {
	return &Pipeline{cfg: cfg}
}

// regionResult is the share-nothing output of one regional worker.
type regionResult struct {
	routes []catalog.Route
	drops  []catalog.DropRecord
}

// Run scans every region, fans regional work out to workers and fans back in
// for cross-region deduplication and catalog construction. Only a missing
// input root is fatal; every file-level failure becomes a drop record.
func (p *Pipeline) Run(ctx context.Context) (catalog.Catalog, catalog.Summary, error) {
	regions, err := scanner.ListRegions(p.cfg.InputRoot)
	if err != nil {
		return catalog.Catalog{}, catalog.Summary{}, err
	}
	log.Printf("pipeline: scanning %d regions under %s", len(regions), p.cfg.InputRoot)

	workers := p.cfg.Workers
	if workers < 1 {
		workers = 1
	}

	results := make([]regionResult, len(regions))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, region := range regions {
		i, region := i, region
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = p.processRegion(region)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return catalog.Catalog{}, catalog.Summary{}, err
	}

	// Fan-in. Region order is sorted and per-region file order is
	// deterministic, so first-seen-wins dedup is reproducible.
	var all []catalog.Route
	var drops []catalog.DropRecord
	for _, res := range results {
		all = append(all, res.routes...)
		drops = append(drops, res.drops...)
	}

	kept, dupDrops := catalog.Deduplicate(all)
	drops = append(drops, dupDrops...)

	agg := catalog.NewDropAggregator()
	for _, d := range drops {
		agg.Add(d)
	}
	agg.LogAll()

	cat := catalog.Build(kept, drops)
	sum := catalog.Summarize(cat)
	log.Printf("pipeline: kept %d routes across %d regions, dropped %d", sum.TotalRoutes, sum.TotalRegions, sum.TotalDropped)
	return cat, sum, nil
}

// processRegion runs the per-region stages: scan, parse, sanitize, resolve
// metadata, compute distances.
func (p *Pipeline) processRegion(region string) regionResult {
	files, drops := scanner.ScanRegion(p.cfg.InputRoot, region, p.cfg.RouteExtension)

	var res regionResult
	res.drops = drops
	for _, f := range files {
		draft, err := rtz.Parse(f.Data)
		if err != nil {
			res.drops = append(res.drops, catalog.DropRecord{
				SourceFile: f.Path,
				Region:     region,
				Reason:     catalog.DropParseError,
				Detail:     err.Error(),
			})
			continue
		}
		for _, detail := range draft.CoordinateDrops {
			res.drops = append(res.drops, catalog.DropRecord{
				SourceFile: f.Path,
				Region:     region,
				Reason:     catalog.DropCoordinateError,
				Detail:     detail,
			})
		}
		if len(draft.Waypoints) < 2 {
			res.drops = append(res.drops, catalog.DropRecord{
				SourceFile: f.Path,
				Region:     region,
				Reason:     catalog.DropValidationError,
				Detail:     fmt.Sprintf("%d valid waypoints after sanitization", len(draft.Waypoints)),
			})
			continue
		}

		meta := resolve.ResolveMetadata(f.Name, draft)
		name := draft.Name
		if name == "" {
			name = meta.Origin + " - " + meta.Destination
		}
		segs, total := geo.RouteDistances(draft.Waypoints)
		res.routes = append(res.routes, catalog.Route{
			Name:               name,
			Origin:             meta.Origin,
			Destination:        meta.Destination,
			Region:             region,
			Waypoints:          draft.Waypoints,
			SegmentDistancesNM: segs,
			TotalDistanceNM:    total,
			IdentityKey:        catalog.IdentityKey(meta.Origin, meta.Destination, region, name),
			SourceFile:         f.Path,
		})
	}
	return res
}
