package scanner

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/norcoast-labs/rtz-to-catalog/catalog"
)

// RawFile is one discovered route file candidate. For archive entries Path
// is "<archive>!<entry base name>" and Data holds the decompressed bytes;
// nothing is written to disk.
type RawFile struct {
	Path    string
	Name    string // base name used for metadata resolution
	Region  string
	Archive string // source archive path, empty for standalone files
	Data    []byte
}

// ListRegions returns the sorted region subdirectories of root. A missing
// root is the one hard failure of the scan phase.
func ListRegions(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("input root: %w", err)
	}
	var regions []string
	for _, e := range entries {
		if e.IsDir() {
			regions = append(regions, e.Name())
		}
	}
	sort.Strings(regions)
	return regions, nil
}

// ScanRegion collects the route file candidates of one region in a
// deterministic order: standalone files first, then archive extracts, both
// sorted by path. File-level failures are returned as drop records and never
// stop the scan.
func ScanRegion(root, region, ext string) ([]RawFile, []catalog.DropRecord) {
	dir := filepath.Join(root, region, "raw")
	if _, err := os.Stat(dir); err != nil {
		return nil, nil
	}

	var routePaths, archivePaths []string
	var drops []catalog.DropRecord
	_ = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			drops = append(drops, catalog.DropRecord{
				SourceFile: p,
				Region:     region,
				Reason:     catalog.DropArchiveError,
				Detail:     err.Error(),
			})
			return nil
		}
		if d.IsDir() {
			return nil
		}
		switch {
		case strings.EqualFold(filepath.Ext(p), ext):
			routePaths = append(routePaths, p)
		case strings.EqualFold(filepath.Ext(p), ".zip"):
			archivePaths = append(archivePaths, p)
		}
		return nil
	})
	sort.Strings(routePaths)
	sort.Strings(archivePaths)

	var files []RawFile
	for _, p := range routePaths {
		data, err := os.ReadFile(p)
		if err != nil {
			// ArchiveError is reserved for containers; an unreadable standalone
			// route file is a file-level failure and classifies as ParseError.
			drops = append(drops, catalog.DropRecord{
				SourceFile: p,
				Region:     region,
				Reason:     catalog.DropParseError,
				Detail:     err.Error(),
			})
			continue
		}
		files = append(files, RawFile{Path: p, Name: filepath.Base(p), Region: region, Data: data})
	}

	// Extract prefilter: tracks decompressed archive entries materialized in
	// this region scan, keyed by length and content hash.
	seen := map[string]string{}
	for _, p := range archivePaths {
		extractArchive(p, region, ext, seen, &files, &drops)
	}
	return files, drops
}

func extractArchive(archivePath, region, ext string, seen map[string]string, files *[]RawFile, drops *[]catalog.DropRecord) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		*drops = append(*drops, catalog.DropRecord{
			SourceFile: archivePath,
			Region:     region,
			Reason:     catalog.DropArchiveError,
			Detail:     err.Error(),
		})
		return
	}
	defer zr.Close()

	for _, f := range zr.File {
		if !strings.EqualFold(path.Ext(f.Name), ext) {
			continue
		}
		data, err := readEntry(f)
		if err != nil {
			*drops = append(*drops, catalog.DropRecord{
				SourceFile: archivePath,
				Region:     region,
				Reason:     catalog.DropArchiveError,
				Detail:     fmt.Sprintf("entry %s: %v", f.Name, err),
			})
			continue
		}
		// Entry base name only; nested directories inside archives are not
		// retained in the working set.
		base := path.Base(f.Name)
		key := contentKey(data)
		if prev, ok := seen[key]; ok {
			log.Printf("scanner: skipping byte-identical extract %s!%s (already materialized from %s)", archivePath, base, prev)
			continue
		}
		seen[key] = archivePath + "!" + base
		*files = append(*files, RawFile{
			Path:    archivePath + "!" + base,
			Name:    base,
			Region:  region,
			Archive: archivePath,
			Data:    data,
		})
	}
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func contentKey(data []byte) string {
	return fmt.Sprintf("%d:%016x", len(data), xxhash.Sum64(data))
}
