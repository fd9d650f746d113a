package main

import (
	"errors"
	"fmt"
)

type CdCmd struct {
	Query []string `arg:"" optional:"" help:"Project name or keywords"`
}

func (cmd *CdCmd) Run(g *Globals) error {
	fmt.Fprintln(g.Out, "The 'cd' command requires shell integration.")
	fmt.Fprintln(g.Out, "Add to your shell config: eval \"$(proj init)\"")
	return errors.New("shell integration required")
}
