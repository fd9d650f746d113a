package main

import (
	"fmt"
	"proj/internal/config"
)

type RmCmd struct {
	Category string `arg:"" help:"Category holding the project"`
	Name     string `arg:"" help:"Project name"`
}

func (cmd *RmCmd) Run(g *Globals) error {
	cfg, err := g.LoadConfig()
	if err != nil {
		return err
	}

	projects, err := cfg.Projects.Remove(cmd.Category, cmd.Name)
	if err != nil {
		return fmt.Errorf("failed to remove project %q: %w", cmd.Name, err)
	}
	cfg.Projects = projects

	if err := config.Save(g.ConfigPath, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(g.Out, "Removed: %s/%s\n", cmd.Category, cmd.Name)
	return nil
}
