package main

import (
	"fmt"
	"path/filepath"
	"proj/internal/catalog"
	"proj/internal/config"
)

type AddCmd struct {
	Path     string `arg:"" help:"Path to the project directory"`
	Category string `short:"C" required:"" help:"Category to file the project under"`
	Name     string `short:"n" help:"Project name (defaults to directory name)"`
}

func (cmd *AddCmd) Run(g *Globals) error {
	cfg, err := config.LoadOrEmpty(g.ConfigPath)
	if err != nil {
		return err
	}

	path, err := config.ExpandPath(cmd.Path)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}
	path, err = filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}
	if err := catalog.ValidatePath(path); err != nil {
		return err
	}

	name := cmd.Name
	if name == "" {
		name = filepath.Base(path)
	}
	if err := catalog.ValidateName(name); err != nil {
		return err
	}
	if err := catalog.ValidateName(cmd.Category); err != nil {
		return fmt.Errorf("category: %w", err)
	}

	projects, err := cfg.Projects.Add(cmd.Category, name, path)
	if err != nil {
		return fmt.Errorf("failed to add project %q: %w", name, err)
	}
	cfg.Projects = projects

	if err := config.Save(g.ConfigPath, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	if cfg.AutoDiscovery() {
		g.Log.Warn("working directory is set; the project map is ignored until 'proj setup --manual' clears it",
			"working_directory", cfg.WorkingDirectory)
	}

	fmt.Fprintf(g.Out, "Added: %s (%s)\n", name, cmd.Category)
	return nil
}
