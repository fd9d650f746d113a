package main

import (
	"io"
	"os"
	"os/exec"
	"proj/cmd/proj/render"
	"proj/internal/catalog"
	"proj/internal/config"
	"proj/internal/picker"
	"proj/internal/repocache"

	"github.com/charmbracelet/log"
)

// Globals is the per-invocation context handed to every command.
type Globals struct {
	ConfigPath  string
	Store       *repocache.Store
	Log         *log.Logger
	Out         io.Writer
	Err         io.Writer
	Render      render.Renderer
	RunCmd      func(dir, name string, args ...string) error
	Prompter    picker.Prompter
	Interactive func() bool

	lookupEnv func(string) string
}

func (g *Globals) LoadConfig() (*config.Config, error) {
	return config.Load(g.ConfigPath)
}

func (g *Globals) OpenCatalog(refresh bool) (*config.Config, *catalog.Catalog, error) {
	cfg, err := g.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	cat, err := catalog.Open(cfg, g.Store, catalog.OpenOptions{Refresh: refresh})
	if err != nil {
		return nil, nil, err
	}
	g.Log.Debug("catalog ready", "mode", cat.Mode(), "projects", cat.Len())
	return cfg, cat, nil
}

func (g *Globals) interactive() bool {
	return g.Interactive != nil && g.Interactive()
}

func (g *Globals) getenv(key string) string {
	if g.lookupEnv != nil {
		return g.lookupEnv(key)
	}
	return os.Getenv(key)
}

func defaultRunCmd(dir, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
