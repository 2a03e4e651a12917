package geo

import (
	"math"

	"github.com/norcoast-labs/rtz-to-catalog/rtz"
)

// EarthRadiusNM is the mean Earth radius in nautical miles.
const EarthRadiusNM = 3440.065

// HaversineNM returns the great-circle distance between two points in
// nautical miles. The formula is symmetric in its arguments and exactly
// zero for identical points.
func HaversineNM(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	la1 := lat1 * math.Pi / 180
	la2 := lat2 * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(la1)*math.Cos(la2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusNM * c
}

// RouteDistances returns per-segment distances and their sum for an ordered
// waypoint sequence. Routes are polylines; the total is always the sum of
// consecutive segments, never a single chord from first to last point.
func RouteDistances(wps []rtz.Waypoint) ([]float64, float64) {
	if len(wps) < 2 {
		return nil, 0
	}
	segs := make([]float64, 0, len(wps)-1)
	total := 0.0
	for i := 1; i < len(wps); i++ {
		d := HaversineNM(wps[i-1].Lat, wps[i-1].Lon, wps[i].Lat, wps[i].Lon)
		segs = append(segs, d)
		total += d
	}
	return segs, total
}
