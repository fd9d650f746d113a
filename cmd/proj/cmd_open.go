package main

import (
	"errors"
	"fmt"
	"os"
	"proj/internal/catalog"
	"proj/internal/picker"
	"strings"
)

var ErrQueryRequired = errors.New("a query is required when not running in a terminal")

type OpenCmd struct {
	Query   []string `arg:"" optional:"" help:"Keywords narrowing the project list"`
	Refresh bool     `short:"r" help:"Rescan the working directory before picking"`
	Print   bool     `short:"p" help:"Print the selected path instead of opening the editor"`
}

func (cmd *OpenCmd) Run(g *Globals) error {
	cfg, cat, err := g.OpenCatalog(cmd.Refresh)
	if err != nil {
		return err
	}

	entry, err := cmd.choose(g, cat)
	switch {
	case errors.Is(err, picker.ErrCancelled):
		return nil
	case errors.Is(err, picker.ErrNoProjects):
		fmt.Fprintln(g.Out, "No projects found.")
		return nil
	case err != nil:
		if handleFindError(g.Out, err) {
			return nil
		}
		return err
	}

	if _, err := os.Stat(entry.Path); os.IsNotExist(err) {
		return staleEntryError(cat, entry)
	}

	if cmd.Print {
		fmt.Fprintln(g.Out, entry.Path)
		return nil
	}

	editor, err := g.resolveEditor(cfg.Editor)
	if err != nil {
		return err
	}

	g.Log.Debug("launching editor", "editor", editor[0], "dir", entry.Path)
	args := append(editor[1:], entry.Path)
	return g.RunCmd(entry.Path, editor[0], args...)
}

func (cmd *OpenCmd) choose(g *Globals, cat *catalog.Catalog) (catalog.Entry, error) {
	query := strings.Join(cmd.Query, " ")
	if g.interactive() {
		return picker.ForCatalog(cat, query).Pick(g.Prompter)
	}
	if len(catalog.Keywords(query)) == 0 {
		return catalog.Entry{}, ErrQueryRequired
	}
	return findProject(cat, query)
}

func staleEntryError(cat *catalog.Catalog, entry catalog.Entry) error {
	if cat.Mode() == catalog.ModeAuto {
		return fmt.Errorf("project path no longer exists: %s\nRun 'proj refresh' to rescan", entry.Path)
	}
	return fmt.Errorf("project path no longer exists: %s\nRun 'proj rm %s %s' to remove it",
		entry.Path, entry.Category, entry.Name)
}
