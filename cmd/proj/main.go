package main

import (
	"os"
	"proj/cmd/proj/render"
	"proj/internal/config"
	"proj/internal/picker"
	"proj/internal/repocache"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/term"
)

type CLI struct {
	Open    OpenCmd    `cmd:"" default:"withargs" aliases:"o" help:"Pick a project and open it in the editor"`
	Refresh RefreshCmd `cmd:"" help:"Rescan the working directory and rewrite the cache"`
	List    ListCmd    `cmd:"" aliases:"ls" help:"List projects"`
	Show    ShowCmd    `cmd:"" help:"Show project details"`
	Add     AddCmd     `cmd:"" aliases:"a" help:"Add a project to the manual project map"`
	Rm      RmCmd      `cmd:"" help:"Remove a project from the manual project map"`
	Setup   SetupCmd   `cmd:"" help:"Configure working directory and editor"`
	Cd      CdCmd      `cmd:"" help:"Change directory to project (requires shell integration)"`
	Init    InitCmd    `cmd:"" help:"Generate shell integration"`

	ConfigPath string `name:"config" short:"c" env:"PROJ_CONFIG" type:"path" help:"Path to configuration file"`
	CachePath  string `name:"cache" env:"PROJ_CACHE" type:"path" help:"Path to repository cache file"`
	Verbose    bool   `short:"v" help:"Log scan and cache activity to stderr"`
}

func newLogger(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "proj"})
	logger.SetLevel(log.WarnLevel)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	configPath := c.ConfigPath
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}
	cachePath := c.CachePath
	if cachePath == "" {
		cachePath = config.DefaultCachePath()
	}

	logger := newLogger(c.Verbose)
	logger.Debug("resolved paths", "config", configPath, "cache", cachePath)

	globals := &Globals{
		ConfigPath: configPath,
		Store:      repocache.New(cachePath, repocache.WithLogger(logger)),
		Log:        logger,
		Out:        os.Stdout,
		Err:        os.Stderr,
		Render:     render.NewLipglossRendererAuto(os.Stdout),
		RunCmd:     defaultRunCmd,
		Prompter:   picker.TeaPrompter{Out: os.Stderr},
		Interactive: func() bool {
			return term.IsTerminal(os.Stdin.Fd()) && term.IsTerminal(os.Stderr.Fd())
		},
	}
	ctx.Bind(globals)
	return nil
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("proj"),
		kong.Description("Find and open projects under your working directory"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
