package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// Golden compares rendered output against testdata/<name>.golden.
// Set UPDATE_GOLDEN to rewrite the file instead.
func Golden(t *testing.T, name string, got []byte) {
	t.Helper()

	goldenPath := filepath.Join("testdata", name+".golden")

	if os.Getenv("UPDATE_GOLDEN") != "" {
		if err := os.MkdirAll("testdata", 0755); err != nil {
			t.Fatalf("failed to create testdata dir: %v", err)
		}
		if err := os.WriteFile(goldenPath, got, 0644); err != nil {
			t.Fatalf("failed to update golden file: %v", err)
		}
		return
	}

	want, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v\nGot:\n%s", goldenPath, err, got)
	}
	want = bytes.ReplaceAll(want, []byte("\r\n"), []byte("\n"))

	if !bytes.Equal(got, want) {
		wantLines := bytes.Split(want, []byte("\n"))
		gotLines := bytes.Split(got, []byte("\n"))
		for i := 0; i < len(wantLines) || i < len(gotLines); i++ {
			var w, g []byte
			if i < len(wantLines) {
				w = wantLines[i]
			}
			if i < len(gotLines) {
				g = gotLines[i]
			}
			if !bytes.Equal(w, g) {
				t.Errorf("output mismatch for %s at line %d\nwant: %q\n got: %q\n\nWant:\n%s\nGot:\n%s", name, i+1, w, g, want, got)
				return
			}
		}
	}
}
