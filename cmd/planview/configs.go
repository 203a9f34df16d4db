package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/Digivate-Labs-Pvt-Ltd/remorph/render"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='render with ANSI color'"`
	Numbered bool `cli:"name=n aliases=numbered desc='number rendered lines'"`
	YAML     bool `cli:"name=y aliases=yaml desc='dump structural yaml instead of the tree'"`

	Main *cli.Command
}

func (cfg *MainConfig) renderOpts() render.Options {
	opts := render.AutoOptions(os.Stdout)
	if cfg.Color {
		// Explicit request wins over tty autodetection.
		color.NoColor = false
		opts.Color = true
	} else if os.Getenv("NO_COLOR") != "" {
		opts.Color = false
	}
	return opts
}

type ShowConfig struct {
	*MainConfig

	Show *cli.Command
}

type RewriteConfig struct {
	*MainConfig

	Match string `cli:"name=m aliases=match desc='expr predicate restricting matches'"`
	Up    bool   `cli:"name=up desc='apply the rewrite bottom-up'"`

	Rewrite *cli.Command
}
