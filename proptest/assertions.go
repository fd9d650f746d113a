package proptest

import (
	"proj/internal/catalog"
	"proj/internal/scan"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

func byPath(a, b scan.Repository) bool { return a.Path < b.Path }

func assertSameRepos(t *rapid.T, expected, actual []scan.Repository) {
	t.Helper()
	opts := cmp.Options{
		cmpopts.SortSlices(byPath),
		cmpopts.EquateEmpty(),
	}
	if diff := cmp.Diff(expected, actual, opts...); diff != "" {
		t.Fatalf("repository mismatch (-want +got):\n%s", diff)
	}
}

func assertReposEqual(t *rapid.T, expected, actual []scan.Repository) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("repository list mismatch (-want +got):\n%s", diff)
	}
}

func assertEntriesEqual(t *rapid.T, expected, actual []catalog.Entry) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("entry list mismatch (-want +got):\n%s", diff)
	}
}

// assertSubsequence checks that sub keeps the relative order it has in full.
func assertSubsequence(t *rapid.T, sub, full []catalog.Entry) {
	t.Helper()
	j := 0
	for _, e := range sub {
		for j < len(full) && full[j] != e {
			j++
		}
		if j == len(full) {
			t.Fatalf("entry %+v out of order or missing from catalog", e)
		}
		j++
	}
}
