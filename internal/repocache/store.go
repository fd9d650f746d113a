package repocache

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"proj/internal/scan"
	"time"

	"github.com/charmbracelet/log"
)

// SchemaVersion tags the on-disk snapshot. Bump it whenever the shape of
// Snapshot or scan.Repository changes; older files then read as a miss.
const SchemaVersion = 1

type Snapshot struct {
	Version          int               `json:"version"`
	WorkingDirectory string            `json:"workingDirectory"`
	UpdatedAt        int64             `json:"updatedAt"`
	Repos            []scan.Repository `json:"repos"`
}

func (s Snapshot) Updated() time.Time {
	return time.UnixMilli(s.UpdatedAt)
}

type ScanFunc func(root string) []scan.Repository

type Store struct {
	path string
	scan ScanFunc
	now  func() time.Time
	log  *log.Logger
}

type Option func(*Store)

func WithScanner(fn ScanFunc) Option {
	return func(s *Store) {
		s.scan = fn
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

func New(path string, opts ...Option) *Store {
	s := &Store{
		path: path,
		now:  time.Now,
		log:  log.New(io.Discard),
	}
	s.scan = s.defaultScan
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) defaultScan(root string) []scan.Repository {
	start := s.now()
	skipped := 0
	repos := scan.Walk(root,
		scan.WithSkipCounter(&skipped),
		scan.WithSkipHandler(func(path string, err error) {
			s.log.Debug("skipping unreadable directory", "path", path, "err", err)
		}),
	)
	s.log.Debug("scan finished", "root", root, "repos", len(repos), "skipped", skipped, "took", s.now().Sub(start))
	return repos
}

// Read returns the cached repositories for wd. Any problem with the file,
// from absence to corruption to a stale schema or working directory, is a
// miss.
func (s *Store) Read(wd string) ([]scan.Repository, bool) {
	snap, reason := s.load()
	if reason == "" && snap.WorkingDirectory != wd {
		reason = "working directory changed"
	}
	if reason != "" {
		s.log.Debug("repository cache miss", "path", s.path, "reason", reason)
		return nil, false
	}
	s.log.Debug("repository cache hit", "path", s.path, "repos", len(snap.Repos))
	return snap.Repos, true
}

// Info returns the stored snapshot if it is readable under the current schema.
func (s *Store) Info() (Snapshot, bool) {
	snap, reason := s.load()
	return snap, reason == ""
}

func (s *Store) load() (Snapshot, string) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return Snapshot{}, "no cache file"
	}
	if err != nil {
		return Snapshot{}, err.Error()
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, "unparseable: " + err.Error()
	}
	if snap.Version != SchemaVersion {
		return Snapshot{}, fmt.Sprintf("schema version %d, want %d", snap.Version, SchemaVersion)
	}
	if snap.Repos == nil {
		return Snapshot{}, "missing repos"
	}
	for _, r := range snap.Repos {
		if r.Name == "" || !filepath.IsAbs(r.Path) {
			return Snapshot{}, "malformed repository entry"
		}
	}
	return snap, ""
}

// Write replaces the snapshot wholesale.
func (s *Store) Write(wd string, repos []scan.Repository) error {
	if repos == nil {
		repos = []scan.Repository{}
	}
	snap := Snapshot{
		Version:          SchemaVersion,
		WorkingDirectory: wd,
		UpdatedAt:        s.now().UnixMilli(),
		Repos:            repos,
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write repository cache: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("failed to replace repository cache: %w", err)
	}

	s.log.Debug("repository cache written", "path", s.path, "repos", len(repos))
	return nil
}

// Refresh scans wd regardless of any cached snapshot and persists the result.
func (s *Store) Refresh(wd string) ([]scan.Repository, error) {
	repos := s.scan(wd)
	if err := s.Write(wd, repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// Load serves from the cache and falls back to a scan on a miss. A failure
// to persist the fresh scan is logged, the scan result is still returned.
func (s *Store) Load(wd string) ([]scan.Repository, error) {
	if repos, ok := s.Read(wd); ok {
		return repos, nil
	}

	repos := s.scan(wd)
	if err := s.Write(wd, repos); err != nil {
		s.log.Warn("could not persist repository cache", "path", s.path, "err", err)
	}
	return repos, nil
}
