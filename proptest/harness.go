package proptest

import (
	"os"
	"path/filepath"
	"proj/internal/repocache"
	"proj/internal/scan"
	"slices"
	"testing"
	"time"

	"pgregory.net/rapid"
)

const (
	maxTreeDepth    = 4
	maxChildren     = 3
	minRepos        = 0
	maxRepos        = 20
	typicalMinRepos = 1
	typicalMaxRepos = 10
)

type Harness struct {
	T   *rapid.T
	Dir string
}

// TreeHarness materializes a generated directory tree under Dir.
type TreeHarness struct {
	Harness
	Tree *node
}

// Build writes tree to disk and returns the repositories a correct walk of
// Dir must report, in no particular order.
func (h *TreeHarness) Build(tree *node) []scan.Repository {
	h.Tree = tree
	h.materialize(h.Dir, tree)
	return expectedRepos(h.Dir, tree)
}

func (h *TreeHarness) materialize(dir string, n *node) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		h.T.Fatalf("failed to create dir: %v", err)
	}
	switch n.marker {
	case markerDir:
		if err := os.Mkdir(filepath.Join(dir, scan.Marker), 0o755); err != nil {
			h.T.Fatalf("failed to create marker dir: %v", err)
		}
	case markerFile:
		if err := os.WriteFile(filepath.Join(dir, scan.Marker), []byte("gitdir: elsewhere\n"), 0o644); err != nil {
			h.T.Fatalf("failed to create marker file: %v", err)
		}
	}
	for _, f := range n.files {
		if err := os.WriteFile(filepath.Join(dir, f), nil, 0o644); err != nil {
			h.T.Fatalf("failed to create file: %v", err)
		}
	}
	for _, c := range n.children {
		h.materialize(filepath.Join(dir, c.name), c)
	}
}

// expectedRepos is the reference model of the stopping rule: a marked
// directory is reported and nothing below it is visited.
func expectedRepos(root string, tree *node) []scan.Repository {
	var out []scan.Repository
	var visit func(dir, top string, n *node)
	visit = func(dir, top string, n *node) {
		if n.marker != markerNone {
			out = append(out, scan.Repository{Name: filepath.Base(dir), Path: dir, TopLevelFolder: top})
			return
		}
		for _, c := range n.children {
			childTop := top
			if dir == root {
				childTop = c.name
			}
			visit(filepath.Join(dir, c.name), childTop, c)
		}
	}
	visit(root, scan.RootFolder, tree)
	if out == nil {
		out = []scan.Repository{}
	}
	return out
}

// StoreHarness wraps a cache store whose scanner counts invocations.
type StoreHarness struct {
	Harness
	Store *repocache.Store
	Scans int
	Repos []scan.Repository
}

func (h *StoreHarness) scanner(string) []scan.Repository {
	h.Scans++
	return slices.Clone(h.Repos)
}

func (h *StoreHarness) CachePath() string {
	return filepath.Join(h.Dir, "cache", "repos.json")
}

func iterDir(t *testing.T, base string, rt *rapid.T) string {
	t.Helper()
	dir := filepath.Join(base, iterDirGen.Draw(rt, "iterDir"))
	if err := os.RemoveAll(dir); err != nil {
		rt.Fatalf("failed to clear iter dir: %v", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		rt.Fatalf("failed to create iter dir: %v", err)
	}
	return dir
}

func RunBasic(t *testing.T, fn func(h *Harness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		fn(&Harness{T: rt, Dir: iterDir(t, tempDir, rt)})
	})
}

func RunWithTree(t *testing.T, fn func(h *TreeHarness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		h := &TreeHarness{Harness: Harness{T: rt, Dir: filepath.Join(iterDir(t, tempDir, rt), "wd")}}
		fn(h)
	})
}

func RunWithStore(t *testing.T, fn func(h *StoreHarness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		h := &StoreHarness{Harness: Harness{T: rt, Dir: iterDir(t, tempDir, rt)}}
		clock := time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC)
		h.Store = repocache.New(h.CachePath(),
			repocache.WithScanner(h.scanner),
			repocache.WithClock(func() time.Time { return clock }),
		)
		fn(h)
	})
}
