package catalog

import (
	"sort"
)

// Build groups deduplicated routes and drop records by region. Regions,
// routes and drops are sorted so the same inputs always produce the same
// catalog regardless of worker interleaving.
func Build(routes []Route, drops []DropRecord) Catalog {
	byRegion := map[string]*RegionCatalog{}
	regionFor := func(name string) *RegionCatalog {
		rc, ok := byRegion[name]
		if !ok {
			rc = &RegionCatalog{RegionName: name}
			byRegion[name] = rc
		}
		return rc
	}

	for _, r := range routes {
		rc := regionFor(r.Region)
		rc.Routes = append(rc.Routes, r)
	}
	for _, d := range drops {
		rc := regionFor(d.Region)
		rc.Dropped = append(rc.Dropped, d)
	}

	names := make([]string, 0, len(byRegion))
	for name := range byRegion {
		names = append(names, name)
	}
	sort.Strings(names)

	var cat Catalog
	for _, name := range names {
		rc := byRegion[name]
		sort.Slice(rc.Routes, func(i, j int) bool {
			if rc.Routes[i].Name != rc.Routes[j].Name {
				return rc.Routes[i].Name < rc.Routes[j].Name
			}
			return rc.Routes[i].SourceFile < rc.Routes[j].SourceFile
		})
		sort.Slice(rc.Dropped, func(i, j int) bool {
			a, b := rc.Dropped[i], rc.Dropped[j]
			if a.SourceFile != b.SourceFile {
				return a.SourceFile < b.SourceFile
			}
			if a.Reason != b.Reason {
				return a.Reason < b.Reason
			}
			return a.Detail < b.Detail
		})
		cat.Regions = append(cat.Regions, *rc)
	}
	return cat
}

// Summarize computes the global statistics for a built catalog.
func Summarize(cat Catalog) Summary {
	sum := Summary{
		DroppedByReason:   map[string]int{},
		RegionRouteCounts: map[string]int{},
	}
	for _, rc := range cat.Regions {
		sum.TotalRegions++
		sum.RegionRouteCounts[rc.RegionName] = len(rc.Routes)
		for _, r := range rc.Routes {
			sum.TotalRoutes++
			sum.TotalWaypoints += len(r.Waypoints)
			sum.TotalDistanceNM += r.TotalDistanceNM
		}
		for _, d := range rc.Dropped {
			sum.TotalDropped++
			sum.DroppedByReason[d.Reason]++
		}
	}
	return sum
}
