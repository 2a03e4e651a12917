// Package rtz parses vendor route exchange (RTZ) XML documents.
//
// Real-world files arrive under several namespace URIs for the same logical
// schema, and sometimes with no namespace at all. The parser tries known
// namespace bindings in a fixed priority order and falls back to a bare
// tag-name match, so a file is only rejected when it is malformed or holds
// no waypoint elements under any binding.
//
// Coordinate strings in these files are frequently corrupted by stray
// non-numeric characters; sanitize.go strips the noise and range-checks the
// result before a waypoint is accepted. Invalid waypoints are dropped, never
// clamped or defaulted.
package rtz
