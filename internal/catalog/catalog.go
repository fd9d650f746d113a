package catalog

import (
	"errors"
	"fmt"
	"os"
	"proj/internal/config"
	"proj/internal/scan"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	ErrWorkingDirNotFound = errors.New("working directory does not exist")
	ErrWorkingDirNotDir   = errors.New("working directory is not a directory")
)

// RepoSource supplies discovered repositories for a working directory.
// *repocache.Store is the production implementation.
type RepoSource interface {
	Load(wd string) ([]scan.Repository, error)
	Refresh(wd string) ([]scan.Repository, error)
}

type OpenOptions struct {
	// Refresh forces a rescan instead of serving the cached snapshot.
	Refresh bool
}

type Catalog struct {
	mode       Mode
	root       string
	entries    []Entry
	categories []string
}

// Open builds the catalog for cfg. A configured working directory selects
// auto-discovery and the manual project map is not consulted at all.
func Open(cfg *config.Config, src RepoSource, opts OpenOptions) (*Catalog, error) {
	if !cfg.AutoDiscovery() {
		return NewManual(cfg.Projects), nil
	}

	wd, err := cfg.ResolvedWorkingDirectory()
	if err != nil {
		return nil, fmt.Errorf("invalid working directory %q: %w", cfg.WorkingDirectory, err)
	}
	if err := ValidateWorkingDirectory(wd); err != nil {
		return nil, err
	}

	load := src.Load
	if opts.Refresh {
		load = src.Refresh
	}
	repos, err := load(wd)
	if err != nil {
		return nil, fmt.Errorf("failed to discover repositories in %s: %w", wd, err)
	}

	return NewAuto(wd, repos), nil
}

func ValidateWorkingDirectory(wd string) error {
	info, err := os.Stat(wd)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrWorkingDirNotFound, wd)
		}
		return fmt.Errorf("cannot access working directory %q: %w", wd, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrWorkingDirNotDir, wd)
	}
	return nil
}

// NewAuto orders repositories by name using locale-aware collation. Equal
// names fall back to path so the order is total.
func NewAuto(root string, repos []scan.Repository) *Catalog {
	entries := make([]Entry, len(repos))
	for i, r := range repos {
		entries[i] = entryFromRepo(r)
	}

	col := collate.New(language.Und)
	slices.SortStableFunc(entries, func(a, b Entry) int {
		if c := col.CompareString(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.Path, b.Path)
	})

	var categories []string
	for _, e := range entries {
		if !slices.Contains(categories, e.Category) {
			categories = append(categories, e.Category)
		}
	}

	return &Catalog{mode: ModeAuto, root: root, entries: entries, categories: categories}
}

// NewManual flattens the category map in document order.
func NewManual(cs config.Categories) *Catalog {
	var entries []Entry
	var categories []string
	for _, c := range cs {
		if len(c.Projects) == 0 {
			continue
		}
		categories = append(categories, c.Name)
		for _, p := range c.Projects {
			entries = append(entries, Entry{Category: c.Name, Name: p.Name, Path: p.Path})
		}
	}
	return &Catalog{mode: ModeManual, entries: entries, categories: categories}
}

func (c *Catalog) Mode() Mode {
	return c.mode
}

// Root is the scanned working directory, empty in manual mode.
func (c *Catalog) Root() string {
	return c.root
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

func (c *Catalog) Entries() []Entry {
	return slices.Clone(c.entries)
}

// Categories lists categories in catalog order.
func (c *Catalog) Categories() []string {
	return slices.Clone(c.categories)
}

// Search filters the full catalog; results keep catalog order.
func (c *Catalog) Search(query string) []Entry {
	keywords := Keywords(query)
	results := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		if e.Matches(keywords) {
			results = append(results, e)
		}
	}
	return results
}

func (c *Catalog) InCategory(category string) []Entry {
	var results []Entry
	for _, e := range c.entries {
		if e.Category == category {
			results = append(results, e)
		}
	}
	return results
}
