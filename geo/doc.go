// Package geo computes great-circle distances for route waypoint sequences.
package geo
