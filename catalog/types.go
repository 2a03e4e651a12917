package catalog

import (
	"github.com/norcoast-labs/rtz-to-catalog/rtz"
)

// Drop reason constants
const (
	DropArchiveError    = "ArchiveError"
	DropParseError      = "ParseError"
	DropCoordinateError = "CoordinateError"
	DropValidationError = "ValidationError"
	DropDuplicateRoute  = "DuplicateRoute"
)

// DropRecord explains why a candidate file or route did not make it into the
// final catalog. Key is set for DuplicateRoute drops only.
type DropRecord struct {
	SourceFile string `json:"source_file"`
	Region     string `json:"region"`
	Reason     string `json:"reason"`
	Detail     string `json:"detail,omitempty"`
	Key        string `json:"key,omitempty"`
}

// Route is a finalized route ready for deduplication.
type Route struct {
	Name               string
	Origin             string
	Destination        string
	Region             string
	Waypoints          []rtz.Waypoint
	SegmentDistancesNM []float64
	TotalDistanceNM    float64
	IdentityKey        string
	SourceFile         string
}

// RegionCatalog is the per-region result of one scan, immutable after Build.
type RegionCatalog struct {
	RegionName string
	Routes     []Route
	Dropped    []DropRecord
}

// Catalog aggregates all regions of one run, sorted by region name.
type Catalog struct {
	Regions []RegionCatalog
}

// Summary is the at-a-glance health surface consumed by the dashboard layer.
type Summary struct {
	TotalRegions      int            `json:"total_regions"`
	TotalRoutes       int            `json:"total_routes"`
	TotalWaypoints    int            `json:"total_waypoints"`
	TotalDistanceNM   float64        `json:"total_distance_nm"`
	TotalDropped      int            `json:"total_dropped"`
	DroppedByReason   map[string]int `json:"dropped_by_reason"`
	RegionRouteCounts map[string]int `json:"region_route_counts"`
}
