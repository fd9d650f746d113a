package picker

import (
	"errors"
	"proj/internal/catalog"
)

var (
	ErrCancelled  = errors.New("selection cancelled")
	ErrNoProjects = errors.New("no projects to choose from")
)

// Prompt describes one interactive list. Rows is called with the current
// search text on every keystroke and must derive the rows from the complete
// source, never from a previous result.
type Prompt struct {
	Title string
	Query string
	Rows  func(query string) []Row
}

// Prompter asks the user to choose one selectable row. An abort returns
// ErrCancelled.
type Prompter interface {
	Choose(p Prompt) (Row, error)
}

type Strategy interface {
	Pick(p Prompter) (catalog.Entry, error)
}

// ForCatalog picks the selection flow once for the catalog's mode. Manual
// catalogs without a query go through category first; everything else is a
// single list.
func ForCatalog(cat *catalog.Catalog, query string) Strategy {
	switch {
	case cat.Mode() == catalog.ModeAuto:
		return groupedStrategy{cat: cat, query: query}
	case len(catalog.Keywords(query)) > 0:
		return flatStrategy{cat: cat, query: query}
	default:
		return twoStepStrategy{cat: cat}
	}
}

type groupedStrategy struct {
	cat   *catalog.Catalog
	query string
}

func (s groupedStrategy) Pick(p Prompter) (catalog.Entry, error) {
	if s.cat.Len() == 0 {
		return catalog.Entry{}, ErrNoProjects
	}
	row, err := p.Choose(Prompt{
		Title: "Open project",
		Query: s.query,
		Rows: func(q string) []Row {
			return GroupedRows(s.cat.Search(q))
		},
	})
	if err != nil {
		return catalog.Entry{}, err
	}
	return row.Entry, nil
}

type flatStrategy struct {
	cat   *catalog.Catalog
	query string
}

func (s flatStrategy) Pick(p Prompter) (catalog.Entry, error) {
	if s.cat.Len() == 0 {
		return catalog.Entry{}, ErrNoProjects
	}
	row, err := p.Choose(Prompt{
		Title: "Open project",
		Query: s.query,
		Rows: func(q string) []Row {
			return FlatRows(s.cat.Search(q))
		},
	})
	if err != nil {
		return catalog.Entry{}, err
	}
	return row.Entry, nil
}

type twoStepStrategy struct {
	cat *catalog.Catalog
}

func (s twoStepStrategy) Pick(p Prompter) (catalog.Entry, error) {
	categories := s.cat.Categories()
	if len(categories) == 0 {
		return catalog.Entry{}, ErrNoProjects
	}

	catRow, err := p.Choose(Prompt{
		Title: "Select category",
		Rows: func(q string) []Row {
			keywords := catalog.Keywords(q)
			var matched []string
			for _, c := range categories {
				if catalog.MatchAll(keywords, c) {
					matched = append(matched, c)
				}
			}
			return CategoryRows(matched)
		},
	})
	if err != nil {
		return catalog.Entry{}, err
	}

	entries := s.cat.InCategory(catRow.Category)
	row, err := p.Choose(Prompt{
		Title: "Select project in " + catRow.Category,
		Rows: func(q string) []Row {
			keywords := catalog.Keywords(q)
			var matched []catalog.Entry
			for _, e := range entries {
				if catalog.MatchAll(keywords, e.Name, e.Path) {
					matched = append(matched, e)
				}
			}
			return ProjectRows(matched)
		},
	})
	if err != nil {
		return catalog.Entry{}, err
	}
	return row.Entry, nil
}
