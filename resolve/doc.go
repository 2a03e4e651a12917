// Package resolve assigns origin and destination metadata to parsed routes.
//
// Vendor filenames follow AUTHORITY_origin_destination_direction_YYYYMMDD
// with a looser dateless variant; when neither matches, the first and last
// waypoint names are used, and "Unknown" is the final sentinel. Region is
// never resolved here: it comes from the directory a file was discovered
// under and is treated as ground truth by the caller.
package resolve
