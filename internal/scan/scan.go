package scan

import (
	"os"
	"path/filepath"
	"strings"
)

// RootFolder is the top-level folder of a repository that is the scan root itself.
const RootFolder = ""

type Repository struct {
	Name           string `json:"name"`
	Path           string `json:"path"`
	TopLevelFolder string `json:"topLevelFolder"`
}

type Option func(*walker)

func WithSkipHandler(fn func(path string, err error)) Option {
	return func(w *walker) {
		w.onSkip = fn
	}
}

func WithSkipCounter(n *int) Option {
	return func(w *walker) {
		w.skipped = n
	}
}

type walker struct {
	root    string
	repos   []Repository
	onSkip  func(path string, err error)
	skipped *int
}

// Walk returns every outermost Git repository under root. Directories that
// cannot be read are skipped; the walk never fails once started.
func Walk(root string, opts ...Option) []Repository {
	w := &walker{root: filepath.Clean(root)}
	for _, opt := range opts {
		opt(w)
	}
	w.visit(w.root)
	if w.repos == nil {
		return []Repository{}
	}
	return w.repos
}

func (w *walker) visit(dir string) {
	if IsRepository(dir) {
		w.repos = append(w.repos, Repository{
			Name:           filepath.Base(dir),
			Path:           dir,
			TopLevelFolder: w.topLevelFolder(dir),
		})
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		w.skip(dir, err)
		return
	}

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		w.visit(filepath.Join(dir, e.Name()))
	}
}

func (w *walker) skip(dir string, err error) {
	if w.skipped != nil {
		*w.skipped++
	}
	if w.onSkip != nil {
		w.onSkip(dir, err)
	}
}

func (w *walker) topLevelFolder(dir string) string {
	rel, err := filepath.Rel(w.root, dir)
	if err != nil || rel == "." {
		return RootFolder
	}
	first, _, _ := strings.Cut(rel, string(filepath.Separator))
	return first
}
