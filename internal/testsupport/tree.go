package testsupport

import (
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

// Snapshot records every entry under root keyed by its slash-separated
// relative path. Files map to their content, directories to "<dir>", and
// symlinks to "-> target".
func Snapshot(t testing.TB, root string) map[string]string {
	t.Helper()

	entries := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		switch {
		case d.Type()&fs.ModeSymlink != 0:
			target, err := os.Readlink(path)
			if err != nil {
				return err
			}
			entries[rel] = "-> " + target
		case d.IsDir():
			entries[rel] = "<dir>"
		default:
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			entries[rel] = string(data)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("snapshot %s: %v", root, err)
	}
	return entries
}

// AssertSameTree fails the test with a readable diff when two snapshots differ.
func AssertSameTree(t testing.TB, want, got map[string]string) {
	t.Helper()

	if maps.Equal(want, got) {
		return
	}
	keys := make(map[string]struct{}, len(want)+len(got))
	for k := range want {
		keys[k] = struct{}{}
	}
	for k := range got {
		keys[k] = struct{}{}
	}
	var diff strings.Builder
	for _, k := range slices.Sorted(maps.Keys(keys)) {
		w, wok := want[k]
		g, gok := got[k]
		switch {
		case !gok:
			diff.WriteString("  missing: " + k + "\n")
		case !wok:
			diff.WriteString("  unexpected: " + k + "\n")
		case w != g:
			diff.WriteString("  changed: " + k + "\n")
		}
	}
	t.Fatalf("directory tree changed:\n%s", diff.String())
}
