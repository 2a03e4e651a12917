// Package formatter serializes a built catalog to its output artifacts.
//
// This package is organized into:
// - json.go: catalog and summary JSON documents
// - geojson.go: route geometry as a GeoJSON feature collection
//
// All output is deterministic: the same catalog always serializes to the
// same bytes, which is what makes pipeline re-runs byte-identical.
package formatter
