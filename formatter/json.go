package formatter

import (
	"encoding/json"

	"github.com/norcoast-labs/rtz-to-catalog/catalog"
)

type artifactBuilder struct{}

func newArtifactBuilder() *artifactBuilder { return &artifactBuilder{} }

// NewArtifactBuilder creates a builder for the catalog output artifacts
func NewArtifactBuilder() *artifactBuilder {
	return newArtifactBuilder()
}

// Catalog document types, the shape consumed by the dashboard layer.

type waypointDocument struct {
	Name         string   `json:"name"`
	Lat          float64  `json:"lat"`
	Lon          float64  `json:"lon"`
	TurnRadiusNM *float64 `json:"turn_radius_nm,omitempty"`
	SpeedMaxKn   *float64 `json:"speed_max_kn,omitempty"`
	Order        int      `json:"order"`
}

type routeDocument struct {
	Name            string             `json:"name"`
	Origin          string             `json:"origin"`
	Destination     string             `json:"destination"`
	TotalDistanceNM float64            `json:"total_distance_nm"`
	WaypointCount   int                `json:"waypoint_count"`
	Waypoints       []waypointDocument `json:"waypoints"`
}

type regionDocument struct {
	Region        string          `json:"region"`
	RouteCount    int             `json:"route_count"`
	WaypointCount int             `json:"waypoint_count"`
	Routes        []routeDocument `json:"routes"`
}

// BuildCatalogJSON serializes the catalog document, one object per region.
func (ab *artifactBuilder) BuildCatalogJSON(cat catalog.Catalog) ([]byte, error) {
	docs := make([]regionDocument, 0, len(cat.Regions))
	for _, rc := range cat.Regions {
		doc := regionDocument{
			Region:     rc.RegionName,
			RouteCount: len(rc.Routes),
			Routes:     make([]routeDocument, 0, len(rc.Routes)),
		}
		for _, r := range rc.Routes {
			rd := routeDocument{
				Name:            r.Name,
				Origin:          r.Origin,
				Destination:     r.Destination,
				TotalDistanceNM: r.TotalDistanceNM,
				WaypointCount:   len(r.Waypoints),
				Waypoints:       make([]waypointDocument, 0, len(r.Waypoints)),
			}
			for _, wp := range r.Waypoints {
				rd.Waypoints = append(rd.Waypoints, waypointDocument{
					Name:         wp.Name,
					Lat:          wp.Lat,
					Lon:          wp.Lon,
					TurnRadiusNM: wp.TurnRadiusNM,
					SpeedMaxKn:   wp.SpeedMaxKn,
					Order:        wp.Order,
				})
			}
			doc.WaypointCount += len(r.Waypoints)
			doc.Routes = append(doc.Routes, rd)
		}
		docs = append(docs, doc)
	}
	return marshalArtifact(docs)
}

// BuildSummaryJSON serializes the run summary document.
func (ab *artifactBuilder) BuildSummaryJSON(sum catalog.Summary) ([]byte, error) {
	return marshalArtifact(sum)
}

func marshalArtifact(v any) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
