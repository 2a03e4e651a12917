package formatter

import (
	geojson "github.com/paulmach/go.geojson"

	"github.com/norcoast-labs/rtz-to-catalog/catalog"
)

// BuildGeometryJSON serializes route geometry as a GeoJSON feature
// collection: one LineString per route with its waypoints ordered by their
// route position, plus one Point per waypoint flagged as start/end.
// Coordinates are [lon, lat] per the GeoJSON spec.
func (ab *artifactBuilder) BuildGeometryJSON(cat catalog.Catalog) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, rc := range cat.Regions {
		for _, r := range rc.Routes {
			coords := make([][]float64, 0, len(r.Waypoints))
			for _, wp := range r.Waypoints {
				coords = append(coords, []float64{wp.Lon, wp.Lat})
			}

			line := geojson.NewLineStringFeature(coords)
			line.SetProperty("route_id", r.IdentityKey)
			line.SetProperty("name", r.Name)
			line.SetProperty("origin", r.Origin)
			line.SetProperty("destination", r.Destination)
			line.SetProperty("region", rc.RegionName)
			line.SetProperty("total_distance_nm", r.TotalDistanceNM)
			fc.AddFeature(line)

			for i, wp := range r.Waypoints {
				pt := geojson.NewPointFeature([]float64{wp.Lon, wp.Lat})
				pt.SetProperty("route_id", r.IdentityKey)
				pt.SetProperty("name", wp.Name)
				pt.SetProperty("origin", r.Origin)
				pt.SetProperty("destination", r.Destination)
				pt.SetProperty("total_distance_nm", r.TotalDistanceNM)
				pt.SetProperty("order", wp.Order)
				pt.SetProperty("is_start", i == 0)
				pt.SetProperty("is_end", i == len(r.Waypoints)-1)
				fc.AddFeature(pt)
			}
		}
	}
	b, err := fc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
