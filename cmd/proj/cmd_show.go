package main

import (
	"fmt"
	"proj/internal/catalog"
	"proj/internal/picker"
	"strings"
)

type ShowCmd struct {
	Query []string `arg:"" help:"Project name or keywords"`
	Path  bool     `help:"Output only the path (for scripting)"`
}

func (cmd *ShowCmd) Run(g *Globals) error {
	_, cat, err := g.OpenCatalog(false)
	if err != nil {
		return err
	}

	entry, err := findProject(cat, strings.Join(cmd.Query, " "))
	if err != nil {
		if !cmd.Path && handleFindError(g.Out, err) {
			return nil
		}
		return err
	}

	if cmd.Path {
		fmt.Fprintln(g.Out, entry.Path)
		return nil
	}

	category := entry.Category
	if cat.Mode() == catalog.ModeAuto {
		category = picker.CategoryLabel(category)
	}

	fmt.Fprintf(g.Out, "Name:     %s\n", entry.Name)
	fmt.Fprintf(g.Out, "Category: %s\n", category)
	fmt.Fprintf(g.Out, "Path:     %s\n", entry.Path)
	fmt.Fprintf(g.Out, "Source:   %s\n", cat.Mode())
	return nil
}
