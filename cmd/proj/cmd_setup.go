package main

import (
	"errors"
	"fmt"
	"os/exec"
	"proj/internal/catalog"
	"proj/internal/config"
	"proj/internal/ui"
	"strings"

	"github.com/charmbracelet/huh"
)

type SetupCmd struct {
	WorkingDirectory string `name:"working-directory" short:"w" xor:"mode" help:"Set the working directory without prompting"`
	Editor           string `short:"e" help:"Set the editor command without prompting"`
	Manual           bool   `xor:"mode" help:"Clear the working directory and use the manual project map"`
}

func validateWorkingDirectory(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return errors.New("Working directory cannot be empty")
	}
	expanded, err := config.ExpandPath(strings.TrimSpace(dir))
	if err != nil {
		return err
	}
	return catalog.ValidateWorkingDirectory(expanded)
}

func (cmd *SetupCmd) Run(g *Globals) error {
	cfg, err := config.LoadOrEmpty(g.ConfigPath)
	if err != nil {
		return err
	}

	workingDir := cfg.WorkingDirectory
	editor := cfg.Editor

	if cmd.Manual {
		if cmd.Editor != "" {
			editor = cmd.Editor
		}
		return cmd.save(g, cfg, "", editor)
	}

	if workingDir == "" {
		workingDir = config.ShortenPath(config.DefaultProjectsDir())
	}

	if cmd.WorkingDirectory != "" || cmd.Editor != "" || !g.interactive() {
		if cmd.WorkingDirectory != "" {
			workingDir = cmd.WorkingDirectory
		}
		if cmd.Editor != "" {
			editor = cmd.Editor
		}
		if err := validateWorkingDirectory(workingDir); err != nil {
			return err
		}
	} else {
		if err := runSetupForm(&workingDir, &editor); err != nil {
			return handleSetupFormError(err)
		}
	}

	return cmd.save(g, cfg, workingDir, editor)
}

func (cmd *SetupCmd) save(g *Globals, cfg *config.Config, workingDir, editor string) error {
	cfg.WorkingDirectory = strings.TrimSpace(workingDir)
	cfg.Editor = strings.TrimSpace(editor)
	if err := config.Save(g.ConfigPath, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	renderSetupSummary(g, cfg)
	return nil
}

func runSetupForm(workingDir, editor *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Working directory").
				Description("Repositories are discovered below this folder").
				Value(workingDir).
				Validate(validateWorkingDirectory),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Editor").
				Description("Leave empty to use $VISUAL, $EDITOR or code").
				Value(editor),
		),
	).WithTheme(ui.WizardTheme())

	return form.Run()
}

func handleSetupFormError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}

func renderSetupSummary(g *Globals, cfg *config.Config) {
	fields := []ui.Field{
		{Label: "Working directory", Value: workingDirectoryLabel(cfg)},
		{Label: "Editor", Value: cfg.Editor, Optional: true},
	}
	fmt.Fprint(g.Out, ui.RenderWizard("Configure proj", fields, -1))
	fmt.Fprint(g.Out, ui.RenderSaved(g.ConfigPath, setupChecks(g, cfg)))
}

func setupChecks(g *Globals, cfg *config.Config) []ui.Check {
	var checks []ui.Check

	if !cfg.AutoDiscovery() {
		checks = append(checks, ui.Check{Message: "no working directory; using the manual project map", OK: true})
	} else if wd, err := cfg.ResolvedWorkingDirectory(); err == nil && catalog.ValidateWorkingDirectory(wd) == nil {
		checks = append(checks, ui.Check{Message: "working directory exists", OK: true})
	} else {
		checks = append(checks, ui.Check{Message: "working directory not found"})
	}

	editor := splitCommand(g.editorCommand(cfg.Editor))
	if len(editor) > 0 {
		if _, err := exec.LookPath(editor[0]); err == nil {
			checks = append(checks, ui.Check{Message: fmt.Sprintf("editor %q found on PATH", editor[0]), OK: true})
		} else {
			checks = append(checks, ui.Check{Message: fmt.Sprintf("editor %q not found on PATH", editor[0])})
		}
	}

	if cfg.AutoDiscovery() && len(cfg.Projects) > 0 {
		checks = append(checks, ui.Check{Message: "project map is ignored while a working directory is set"})
	}
	return checks
}

func workingDirectoryLabel(cfg *config.Config) string {
	if !cfg.AutoDiscovery() {
		return "(none, manual project map)"
	}
	return cfg.WorkingDirectory
}
