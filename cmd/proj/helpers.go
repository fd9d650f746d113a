package main

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"proj/internal/catalog"
	"strings"
)

const fallbackEditor = "code"

var ErrNoMatch = errors.New("no project found")

type AmbiguousMatchError struct {
	Query   string
	Mode    catalog.Mode
	Matches []catalog.Entry
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("multiple projects match %q", e.Query)
}

func (e *AmbiguousMatchError) WriteMatches(w io.Writer) {
	fmt.Fprintln(w, "Multiple projects match. Please be more specific:")
	for _, m := range e.Matches {
		fmt.Fprintf(w, "  - %s\n", m.Display(e.Mode))
	}
}

func handleFindError(w io.Writer, err error) bool {
	var ambErr *AmbiguousMatchError
	if errors.As(err, &ambErr) {
		ambErr.WriteMatches(w)
		return true
	}
	return false
}

// findProject resolves query to exactly one entry. An exact name match wins
// over other substring matches.
func findProject(cat *catalog.Catalog, query string) (catalog.Entry, error) {
	matches := cat.Search(query)
	if len(matches) == 0 {
		return catalog.Entry{}, fmt.Errorf("%w matching: %s", ErrNoMatch, query)
	}
	if len(matches) == 1 {
		return matches[0], nil
	}

	var exact []catalog.Entry
	for _, m := range matches {
		if strings.EqualFold(m.Name, strings.TrimSpace(query)) {
			exact = append(exact, m)
		}
	}
	if len(exact) == 1 {
		return exact[0], nil
	}
	return catalog.Entry{}, &AmbiguousMatchError{Query: query, Mode: cat.Mode(), Matches: matches}
}

func splitCommand(s string) []string {
	var result []string
	var current strings.Builder
	var inQuote rune

	for _, r := range s {
		if inQuote != 0 {
			if r == inQuote {
				inQuote = 0
			} else {
				current.WriteRune(r)
			}
			continue
		}
		switch r {
		case '"', '\'':
			inQuote = r
		case ' ', '\t':
			if current.Len() > 0 {
				result = append(result, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		result = append(result, current.String())
	}
	return result
}

// editorCommand picks the first non-empty of the configured editor, $VISUAL
// and $EDITOR, falling back to code.
func (g *Globals) editorCommand(configured string) string {
	for _, candidate := range []string{configured, g.getenv("VISUAL"), g.getenv("EDITOR")} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return fallbackEditor
}

func (g *Globals) resolveEditor(configured string) ([]string, error) {
	editor := g.editorCommand(configured)

	parts := splitCommand(editor)
	if len(parts) == 0 {
		return nil, fmt.Errorf("editor %q is empty after parsing", editor)
	}

	if _, err := exec.LookPath(parts[0]); err != nil {
		return nil, fmt.Errorf("editor %q not found in PATH", parts[0])
	}
	return parts, nil
}
