package main

import (
	"fmt"
	"proj/internal/catalog"
	"proj/internal/config"
)

type RefreshCmd struct{}

func (cmd *RefreshCmd) Run(g *Globals) error {
	cfg, err := g.LoadConfig()
	if err != nil {
		return err
	}
	if !cfg.AutoDiscovery() {
		fmt.Fprintln(g.Out, "No working directory configured; nothing to refresh.")
		return nil
	}

	wd, err := cfg.ResolvedWorkingDirectory()
	if err != nil {
		return fmt.Errorf("invalid working directory %q: %w", cfg.WorkingDirectory, err)
	}
	if err := catalog.ValidateWorkingDirectory(wd); err != nil {
		return err
	}

	repos, err := g.Store.Refresh(wd)
	if err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}

	fmt.Fprintf(g.Out, "Refreshed %d repositories in %s\n", len(repos), config.ShortenPath(wd))
	return nil
}
