package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"proj/internal/catalog"
	"proj/internal/config"
	"proj/internal/scan"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	repos     []scan.Repository
	err       error
	loads     []string
	refreshes []string
}

func (f *fakeSource) Load(wd string) ([]scan.Repository, error) {
	f.loads = append(f.loads, wd)
	return f.repos, f.err
}

func (f *fakeSource) Refresh(wd string) ([]scan.Repository, error) {
	f.refreshes = append(f.refreshes, wd)
	return f.repos, f.err
}

func names(entries []catalog.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func manualCategories() config.Categories {
	return config.Categories{
		{Name: "work", Projects: []config.ProjectRef{
			{Name: "web", Path: "/w/web"},
			{Name: "api", Path: "/w/api"},
		}},
		{Name: "home", Projects: []config.ProjectRef{
			{Name: "dotfiles", Path: "/h/dotfiles"},
		}},
	}
}

func TestOpen(t *testing.T) {
	t.Run("no working directory selects manual mode", func(t *testing.T) {
		src := &fakeSource{}
		cfg := &config.Config{Projects: manualCategories()}

		cat, err := catalog.Open(cfg, src, catalog.OpenOptions{})

		require.NoError(t, err)
		assert.Equal(t, catalog.ModeManual, cat.Mode())
		assert.Equal(t, []string{"web", "api", "dotfiles"}, names(cat.Entries()))
		assert.Empty(t, src.loads)
	})

	t.Run("working directory ignores the manual map", func(t *testing.T) {
		wd := t.TempDir()
		src := &fakeSource{repos: []scan.Repository{{Name: "repo", Path: filepath.Join(wd, "repo"), TopLevelFolder: "repo"}}}
		cfg := &config.Config{WorkingDirectory: wd, Projects: manualCategories()}

		cat, err := catalog.Open(cfg, src, catalog.OpenOptions{})

		require.NoError(t, err)
		assert.Equal(t, catalog.ModeAuto, cat.Mode())
		assert.Equal(t, wd, cat.Root())
		assert.Equal(t, []string{"repo"}, names(cat.Entries()))
		assert.Equal(t, []string{wd}, src.loads)
		assert.Empty(t, src.refreshes)
	})

	t.Run("refresh option forces a rescan", func(t *testing.T) {
		wd := t.TempDir()
		src := &fakeSource{}

		_, err := catalog.Open(&config.Config{WorkingDirectory: wd}, src, catalog.OpenOptions{Refresh: true})

		require.NoError(t, err)
		assert.Empty(t, src.loads)
		assert.Equal(t, []string{wd}, src.refreshes)
	})

	t.Run("missing working directory fails before scanning", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "gone")
		src := &fakeSource{}

		_, err := catalog.Open(&config.Config{WorkingDirectory: missing}, src, catalog.OpenOptions{})

		assert.ErrorIs(t, err, catalog.ErrWorkingDirNotFound)
		assert.Contains(t, err.Error(), missing)
		assert.Empty(t, src.loads)
	})

	t.Run("working directory that is a file fails", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, nil, 0o644))

		_, err := catalog.Open(&config.Config{WorkingDirectory: file}, &fakeSource{}, catalog.OpenOptions{})

		assert.ErrorIs(t, err, catalog.ErrWorkingDirNotDir)
	})

	t.Run("tilde in working directory is expanded", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		require.NoError(t, os.Mkdir(filepath.Join(home, "code"), 0o755))
		src := &fakeSource{}

		cat, err := catalog.Open(&config.Config{WorkingDirectory: "~/code"}, src, catalog.OpenOptions{})

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "code"), cat.Root())
	})

	t.Run("source error propagates", func(t *testing.T) {
		boom := errors.New("boom")

		_, err := catalog.Open(&config.Config{WorkingDirectory: t.TempDir()}, &fakeSource{err: boom}, catalog.OpenOptions{})

		assert.ErrorIs(t, err, boom)
	})
}

func TestNewAuto(t *testing.T) {
	t.Run("sorts by name with locale-aware collation", func(t *testing.T) {
		cat := catalog.NewAuto("/r", []scan.Repository{
			{Name: "gamma", Path: "/r/g/gamma", TopLevelFolder: "g"},
			{Name: "Beta", Path: "/r/b/Beta", TopLevelFolder: "b"},
			{Name: "alpha", Path: "/r/a/alpha", TopLevelFolder: "a"},
			{Name: "Alpha", Path: "/r/z/Alpha", TopLevelFolder: "z"},
		})

		assert.Equal(t, []string{"alpha", "Alpha", "Beta", "gamma"}, names(cat.Entries()))
	})

	t.Run("equal names ordered by path", func(t *testing.T) {
		cat := catalog.NewAuto("/r", []scan.Repository{
			{Name: "api", Path: "/r/z/api", TopLevelFolder: "z"},
			{Name: "api", Path: "/r/a/api", TopLevelFolder: "a"},
		})

		entries := cat.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, "/r/a/api", entries[0].Path)
		assert.Equal(t, "/r/z/api", entries[1].Path)
	})

	t.Run("uses top-level folder as category", func(t *testing.T) {
		cat := catalog.NewAuto("/r", []scan.Repository{
			{Name: "sub", Path: "/r/c/sub", TopLevelFolder: "c"},
			{Name: "r", Path: "/r", TopLevelFolder: scan.RootFolder},
		})

		assert.ElementsMatch(t, []string{"c", scan.RootFolder}, cat.Categories())
		assert.Equal(t, []catalog.Entry{{Category: "c", Name: "sub", Path: "/r/c/sub"}}, cat.InCategory("c"))
	})
}

func TestNewManual(t *testing.T) {
	t.Run("keeps document order", func(t *testing.T) {
		cat := catalog.NewManual(manualCategories())

		assert.Equal(t, []string{"work", "home"}, cat.Categories())
		assert.Equal(t, []string{"web", "api"}, names(cat.InCategory("work")))
	})

	t.Run("skips empty categories", func(t *testing.T) {
		cs := append(manualCategories(), config.Category{Name: "empty"})

		cat := catalog.NewManual(cs)

		assert.Equal(t, []string{"work", "home"}, cat.Categories())
	})

	t.Run("empty map yields empty catalog", func(t *testing.T) {
		cat := catalog.NewManual(nil)

		assert.Equal(t, 0, cat.Len())
		assert.Empty(t, cat.Search(""))
	})
}

func TestCatalog_Search(t *testing.T) {
	cat := catalog.NewManual(manualCategories())

	t.Run("empty query returns everything in order", func(t *testing.T) {
		assert.Equal(t, names(cat.Entries()), names(cat.Search("")))
		assert.Equal(t, names(cat.Entries()), names(cat.Search("   ")))
	})

	t.Run("matches category", func(t *testing.T) {
		assert.Equal(t, []string{"web", "api"}, names(cat.Search("work")))
	})

	t.Run("matches path", func(t *testing.T) {
		assert.Equal(t, []string{"dotfiles"}, names(cat.Search("/h/")))
	})

	t.Run("all keywords must match", func(t *testing.T) {
		assert.Equal(t, []string{"api"}, names(cat.Search("work api")))
		assert.Empty(t, cat.Search("work dotfiles"))
	})

	t.Run("case-insensitive", func(t *testing.T) {
		assert.Equal(t, []string{"api"}, names(cat.Search("WORK Api")))
	})

	t.Run("no ranking by match quality", func(t *testing.T) {
		assert.Equal(t, []string{"web", "api"}, names(cat.Search("w")))
	})
}

func TestEntry_Display(t *testing.T) {
	e := catalog.Entry{Category: "work", Name: "api", Path: "/w/api"}

	assert.Equal(t, "api (/w/api)", e.Display(catalog.ModeAuto))
	assert.Equal(t, "api (work)", e.Display(catalog.ModeManual))
}

func TestMatchAll(t *testing.T) {
	t.Run("no keywords matches", func(t *testing.T) {
		assert.True(t, catalog.MatchAll(nil, "anything"))
	})

	t.Run("keyword does not span fields", func(t *testing.T) {
		assert.False(t, catalog.MatchAll(catalog.Keywords("apiwork"), "api", "work"))
	})

	t.Run("keywords are lowercased and split on any whitespace", func(t *testing.T) {
		assert.Equal(t, []string{"foo", "bar"}, catalog.Keywords("  Foo\tBAR \n"))
	})
}
