package proptest

import (
	"path/filepath"
	"proj/internal/picker"
	"proj/internal/scan"
	"strings"

	"pgregory.net/rapid"
)

func verifyScanInvariants(t *rapid.T, root string, repos []scan.Repository) {
	t.Helper()
	paths := make(map[string]bool, len(repos))
	for _, r := range repos {
		if paths[r.Path] {
			t.Fatalf("duplicate repository path %q", r.Path)
		}
		paths[r.Path] = true

		if !scan.IsRepository(r.Path) {
			t.Fatalf("reported %q has no %s marker", r.Path, scan.Marker)
		}
	}

	// No reported repository may sit below another one.
	for _, r := range repos {
		for dir := filepath.Dir(r.Path); strings.HasPrefix(dir, root); dir = filepath.Dir(dir) {
			if paths[dir] {
				t.Fatalf("%q reported although ancestor %q is a repository", r.Path, dir)
			}
			if dir == root {
				break
			}
		}
	}
}

func verifyGroupedRows(t *rapid.T, rows []picker.Row) {
	t.Helper()
	seen := map[string]bool{}
	current := ""
	inGroup := false
	for i, row := range rows {
		if row.Separator {
			if seen[row.Category] {
				t.Fatalf("separator for %q repeated at row %d", row.Category, i)
			}
			if inGroup && current == scan.RootFolder {
				t.Fatalf("group %q follows the root group", row.Category)
			}
			seen[row.Category] = true
			current, inGroup = row.Category, true
			continue
		}
		if !inGroup {
			t.Fatalf("project row %d precedes any separator", i)
		}
		if row.Entry.Category != current {
			t.Fatalf("row %d (%s) listed under %q", i, row.Entry.Category, current)
		}
	}
}
