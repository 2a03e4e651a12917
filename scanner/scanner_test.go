package scanner

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/norcoast-labs/rtz-to-catalog/catalog"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func writeZip(t *testing.T, path string, entries map[string][]byte) {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, data := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip create: %v", err)
		}
		if _, err := w.Write(data); err != nil {
			t.Fatalf("zip write: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	writeFile(t, path, buf.Bytes())
}

func TestListRegions(t *testing.T) {
	root := t.TempDir()
	for _, r := range []string{"oslo", "bergen", "narvik"} {
		if err := os.MkdirAll(filepath.Join(root, r, "raw"), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	writeFile(t, filepath.Join(root, "stray.txt"), []byte("x"))

	regions, err := ListRegions(root)
	if err != nil {
		t.Fatalf("ListRegions: %v", err)
	}
	want := []string{"bergen", "narvik", "oslo"}
	if len(regions) != 3 {
		t.Fatalf("got %v", regions)
	}
	for i := range want {
		if regions[i] != want[i] {
			t.Errorf("regions not sorted: %v", regions)
		}
	}
}

func TestListRegions_MissingRoot(t *testing.T) {
	if _, err := ListRegions(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("missing input root must be a hard failure")
	}
}

func TestScanRegion_StandaloneAndArchives(t *testing.T) {
	root := t.TempDir()
	raw := filepath.Join(root, "bergen", "raw")
	writeFile(t, filepath.Join(raw, "b.rtz"), []byte("<route b/>"))
	writeFile(t, filepath.Join(raw, "nested", "a.rtz"), []byte("<route a/>"))
	writeFile(t, filepath.Join(raw, "notes.txt"), []byte("ignored"))
	writeZip(t, filepath.Join(raw, "bundle.zip"), map[string][]byte{
		"exports/2025/c.rtz": []byte("<route c/>"),
		"readme.txt":         []byte("ignored"),
	})

	files, drops := ScanRegion(root, "bergen", ".rtz")
	if len(drops) != 0 {
		t.Fatalf("unexpected drops: %+v", drops)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 files, got %d: %+v", len(files), files)
	}
	// Standalone files sorted first, then archive extracts.
	if files[0].Name != "a.rtz" || files[1].Name != "b.rtz" {
		t.Errorf("standalone files out of order: %s, %s", files[0].Name, files[1].Name)
	}
	if files[2].Name != "c.rtz" {
		t.Errorf("archive entry should be flattened to base name, got %q", files[2].Name)
	}
	if files[2].Archive == "" || files[2].Path != files[2].Archive+"!c.rtz" {
		t.Errorf("archive entry path: %+v", files[2])
	}
	if string(files[2].Data) != "<route c/>" {
		t.Errorf("archive entry bytes: %q", files[2].Data)
	}
}

func TestScanRegion_ByteIdenticalExtractsCollapsed(t *testing.T) {
	root := t.TempDir()
	raw := filepath.Join(root, "bergen", "raw")
	payload := []byte("<route xmlns=\"urn:x\"/>")
	writeZip(t, filepath.Join(raw, "first.zip"), map[string][]byte{"r.rtz": payload})
	writeZip(t, filepath.Join(raw, "second.zip"), map[string][]byte{"copy_of_r.rtz": payload, "other.rtz": []byte("<route other/>")})

	files, drops := ScanRegion(root, "bergen", ".rtz")
	if len(drops) != 0 {
		t.Fatalf("unexpected drops: %+v", drops)
	}
	if len(files) != 2 {
		t.Fatalf("byte-identical extract should be collapsed, got %d files", len(files))
	}
}

func TestScanRegion_StandaloneNotPrefiltered(t *testing.T) {
	// A standalone file and a byte-identical archive copy must both reach
	// the parser so the duplicate surfaces as a DuplicateRoute drop record
	// instead of disappearing silently.
	root := t.TempDir()
	raw := filepath.Join(root, "bergen", "raw")
	payload := []byte("<route xmlns=\"urn:x\"/>")
	writeFile(t, filepath.Join(raw, "r.rtz"), payload)
	writeZip(t, filepath.Join(raw, "bundle.zip"), map[string][]byte{"r_dup.rtz": payload})

	files, _ := ScanRegion(root, "bergen", ".rtz")
	if len(files) != 2 {
		t.Fatalf("expected standalone and archive copy both kept, got %d", len(files))
	}
}

func TestScanRegion_UnreadableStandaloneIsParseError(t *testing.T) {
	root := t.TempDir()
	raw := filepath.Join(root, "bergen", "raw")
	writeFile(t, filepath.Join(raw, "good.rtz"), []byte("<route/>"))
	// A dangling symlink makes the read itself fail without depending on
	// file permissions.
	if err := os.Symlink(filepath.Join(raw, "absent"), filepath.Join(raw, "gone.rtz")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	files, drops := ScanRegion(root, "bergen", ".rtz")
	if len(files) != 1 || files[0].Name != "good.rtz" {
		t.Fatalf("readable file should survive: %+v", files)
	}
	if len(drops) != 1 || drops[0].Reason != catalog.DropParseError {
		t.Fatalf("unreadable route file should yield one ParseError drop, got %+v", drops)
	}
	if drops[0].SourceFile != filepath.Join(raw, "gone.rtz") {
		t.Errorf("drop should name the failing file: %+v", drops[0])
	}
}

func TestScanRegion_CorruptZipIsolated(t *testing.T) {
	root := t.TempDir()
	raw := filepath.Join(root, "bergen", "raw")
	writeFile(t, filepath.Join(raw, "broken.zip"), []byte("this is not a zip archive"))
	writeFile(t, filepath.Join(raw, "good.rtz"), []byte("<route/>"))

	files, drops := ScanRegion(root, "bergen", ".rtz")
	if len(files) != 1 || files[0].Name != "good.rtz" {
		t.Fatalf("good file should survive a corrupt archive: %+v", files)
	}
	if len(drops) != 1 || drops[0].Reason != catalog.DropArchiveError {
		t.Fatalf("corrupt zip should yield one ArchiveError drop: %+v", drops)
	}
}

func TestScanRegion_MissingRawDir(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "bergen"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, drops := ScanRegion(root, "bergen", ".rtz")
	if files != nil || drops != nil {
		t.Errorf("region without raw/ should scan empty, got %v %v", files, drops)
	}
}
