// Package rtzcatalog ingests vendor RTZ route files into a deduplicated
// route catalog.
//
// The pipeline is an offline, run-to-completion batch job: it scans
// <root>/<region>/raw for route files and ZIP archives, parses and
// sanitizes each file, resolves origin/destination metadata, computes
// great-circle distances, deduplicates by semantic identity and writes the
// catalog, geometry and summary artifacts. Regions are processed in
// parallel; deduplication and artifact writing run once, after every
// regional worker has finished, because duplicates are defined across
// regions. Re-running on unchanged input produces byte-identical artifacts.
package rtzcatalog
