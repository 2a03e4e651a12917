// Package scanner discovers candidate route files under an input tree.
//
// The expected layout is <root>/<region>/raw with standalone route files
// and ZIP archives mixed together, possibly in nested subdirectories.
// Archive entries are extracted to in-memory buffers using only their base
// names; byte-identical extracts are collapsed by content hash before they
// reach the parser, so the same file shipped in several archives is only
// parsed once. A corrupt archive never aborts a scan.
package scanner
