package main

import (
	"fmt"
	"proj/cmd/proj/render"
	"proj/internal/catalog"
	"proj/internal/picker"
	"strings"
)

type ListCmd struct {
	Query   []string `arg:"" optional:"" help:"Keywords narrowing the list"`
	Names   bool     `short:"n" help:"Output only project names (one per line)"`
	Refresh bool     `short:"r" help:"Rescan the working directory first"`
}

func (cmd *ListCmd) Run(g *Globals) error {
	_, cat, err := g.OpenCatalog(cmd.Refresh)
	if err != nil {
		return err
	}

	entries := cat.Search(strings.Join(cmd.Query, " "))

	if cmd.Names {
		for _, e := range entries {
			fmt.Fprintln(g.Out, e.Name)
		}
		return nil
	}

	view := render.ProjectListView{Groups: listGroups(cat, entries)}
	if cat.Mode() == catalog.ModeAuto {
		if snap, ok := g.Store.Info(); ok {
			view.Scanned = snap.Updated()
		}
	}
	fmt.Fprint(g.Out, g.Render.RenderProjectList(view))
	return nil
}

// listGroups mirrors the picker layout: discovered repositories grouped by
// top-level folder with the root last, manual projects in configured order.
func listGroups(cat *catalog.Catalog, entries []catalog.Entry) []render.ProjectGroup {
	var groups []render.ProjectGroup

	if cat.Mode() == catalog.ModeAuto {
		for _, row := range picker.GroupedRows(entries) {
			if row.Separator {
				groups = append(groups, render.ProjectGroup{Label: row.Label})
				continue
			}
			last := &groups[len(groups)-1]
			last.Items = append(last.Items, render.ProjectListItem{Name: row.Entry.Name, Path: row.Entry.Path})
		}
		return groups
	}

	for _, category := range cat.Categories() {
		var items []render.ProjectListItem
		for _, e := range entries {
			if e.Category == category {
				items = append(items, render.ProjectListItem{Name: e.Name, Path: e.Path})
			}
		}
		if len(items) > 0 {
			groups = append(groups, render.ProjectGroup{Label: category, Items: items})
		}
	}
	return groups
}
