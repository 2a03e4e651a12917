// Package helpers builds input fixture trees for pipeline tests.
package helpers

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// FixtureWaypoint is one waypoint of a generated route document.
type FixtureWaypoint struct {
	Name string
	Lat  string
	Lon  string
}

// RouteXML renders a route document in the given namespace. An empty ns
// produces a document with no namespace declaration.
func RouteXML(ns, routeName string, wps []FixtureWaypoint) []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	if ns == "" {
		b.WriteString(`<route version="1.1">` + "\n")
	} else {
		fmt.Fprintf(&b, `<route xmlns=%q version="1.1">`+"\n", ns)
	}
	if routeName != "" {
		fmt.Fprintf(&b, `  <routeInfo routeName=%q/>`+"\n", routeName)
	}
	b.WriteString("  <waypoints>\n")
	for i, wp := range wps {
		fmt.Fprintf(&b, `    <waypoint id="%d" name=%q>`+"\n", i+1, wp.Name)
		fmt.Fprintf(&b, `      <position lat=%q lon=%q/>`+"\n", wp.Lat, wp.Lon)
		b.WriteString("    </waypoint>\n")
	}
	b.WriteString("  </waypoints>\n</route>\n")
	return []byte(b.String())
}

// BergenOsloWaypoints is a five-point Bergen to Oslo coastal polyline.
func BergenOsloWaypoints() []FixtureWaypoint {
	return []FixtureWaypoint{
		{Name: "Bergen", Lat: "60.3913", Lon: "5.3221"},
		{Name: "Haugesund", Lat: "59.4138", Lon: "5.2680"},
		{Name: "Kristiansand", Lat: "58.1467", Lon: "7.9956"},
		{Name: "Drøbak", Lat: "59.6630", Lon: "10.6290"},
		{Name: "Oslo", Lat: "59.9139", Lon: "10.7522"},
	}
}

// WriteRegionFile places a standalone route file under <root>/<region>/raw.
func WriteRegionFile(t *testing.T, root, region, name string, data []byte) string {
	t.Helper()
	dir := filepath.Join(root, region, "raw")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteRegionZip places a ZIP archive with the given entries under
// <root>/<region>/raw.
func WriteRegionZip(t *testing.T, root, region, name string, entries map[string][]byte) string {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for entry, data := range entries {
		w, err := zw.Create(entry)
		if err != nil {
			t.Fatalf("zip create %s: %v", entry, err)
		}
		if _, err := w.Write(data); err != nil {
			t.Fatalf("zip write %s: %v", entry, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return WriteRegionFile(t, root, region, name, buf.Bytes())
}
