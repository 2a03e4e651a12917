package rtz

// Waypoint is one accepted route point
type Waypoint struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name"`
	Lat          float64  `json:"lat"`
	Lon          float64  `json:"lon"`
	TurnRadiusNM *float64 `json:"turn_radius_nm,omitempty"`
	SpeedMaxKn   *float64 `json:"speed_max_kn,omitempty"`
	Order        int      `json:"order"`
}

// RouteDraft is a parsed route before metadata resolution and distance
// computation. Name may be empty and fewer than two waypoints may survive
// sanitization; promotion to a full route happens downstream.
type RouteDraft struct {
	Name            string
	Waypoints       []Waypoint
	CoordinateDrops []string // one detail line per waypoint rejected by the sanitizer
}
