package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"proj/internal/scan"
	"strings"
)

var (
	ErrEmptyName     = errors.New("project name cannot be empty")
	ErrRelativePath  = errors.New("project path must be absolute")
	ErrPathNotExist  = errors.New("project path does not exist")
	ErrNotADirectory = errors.New("project path is not a directory")
)

type Mode int

const (
	ModeManual Mode = iota
	ModeAuto
)

func (m Mode) String() string {
	if m == ModeAuto {
		return "auto-discovery"
	}
	return "manual"
}

// Entry is one selectable project. In auto-discovery mode Category holds the
// top-level folder the repository was found under.
type Entry struct {
	Category string
	Name     string
	Path     string
}

func entryFromRepo(r scan.Repository) Entry {
	return Entry{Category: r.TopLevelFolder, Name: r.Name, Path: r.Path}
}

func (e Entry) Display(m Mode) string {
	if m == ModeAuto {
		return fmt.Sprintf("%s (%s)", e.Name, e.Path)
	}
	return fmt.Sprintf("%s (%s)", e.Name, e.Category)
}

func (e Entry) Matches(keywords []string) bool {
	return MatchAll(keywords, e.Name, e.Category, e.Path)
}

func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

// ValidatePath checks that path is an absolute path to an existing directory.
func ValidatePath(path string) error {
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%w: got %q", ErrRelativePath, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrPathNotExist, path)
		}
		return fmt.Errorf("cannot access path %q: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotADirectory, path)
	}

	return nil
}
