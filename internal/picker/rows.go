package picker

import (
	"proj/internal/catalog"
	"proj/internal/scan"
	"slices"
	"strings"
)

// RootLabel names the separator of repositories found at the scan root.
const RootLabel = "(root)"

const indent = "  "

// Row is one line of a selection list. Separator rows only label the group
// below them and can never be chosen.
type Row struct {
	Label     string
	Separator bool
	Category  string
	Entry     catalog.Entry
}

func (r Row) Selectable() bool {
	return !r.Separator
}

// GroupedRows lays entries out under one separator per category. Categories
// are sorted ascending with the root bucket always last; entries keep their
// incoming order within a group.
func GroupedRows(entries []catalog.Entry) []Row {
	groups := make(map[string][]catalog.Entry)
	var categories []string
	for _, e := range entries {
		if _, ok := groups[e.Category]; !ok {
			categories = append(categories, e.Category)
		}
		groups[e.Category] = append(groups[e.Category], e)
	}

	slices.SortFunc(categories, compareCategories)

	rows := make([]Row, 0, len(entries)+len(categories))
	for _, c := range categories {
		rows = append(rows, Row{Label: CategoryLabel(c), Separator: true, Category: c})
		for _, e := range groups[c] {
			rows = append(rows, Row{
				Label:    indent + e.Display(catalog.ModeAuto),
				Category: c,
				Entry:    e,
			})
		}
	}
	return rows
}

func compareCategories(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == scan.RootFolder:
		return 1
	case b == scan.RootFolder:
		return -1
	}
	return strings.Compare(a, b)
}

func CategoryLabel(category string) string {
	if category == scan.RootFolder {
		return RootLabel
	}
	return category
}

// FlatRows labels each entry with its category, without separators.
func FlatRows(entries []catalog.Entry) []Row {
	rows := make([]Row, len(entries))
	for i, e := range entries {
		rows[i] = Row{Label: e.Display(catalog.ModeManual), Category: e.Category, Entry: e}
	}
	return rows
}

// CategoryRows are the choices of the first step of the two-step flow.
func CategoryRows(categories []string) []Row {
	rows := make([]Row, len(categories))
	for i, c := range categories {
		rows[i] = Row{Label: c, Category: c}
	}
	return rows
}

// ProjectRows are the choices within one category.
func ProjectRows(entries []catalog.Entry) []Row {
	rows := make([]Row, len(entries))
	for i, e := range entries {
		rows[i] = Row{Label: e.Display(catalog.ModeAuto), Category: e.Category, Entry: e}
	}
	return rows
}
