package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/treedot/treedot/codec"
	"github.com/treedot/treedot/ir"
)

type MainConfig struct {
	J bool `cli:"name=j aliases=json desc='encode output as json'"`
	Y bool `cli:"name=y aliases=yaml desc='encode output as yaml (default)'"`

	Color bool `cli:"name=color desc='colorize scan and diff output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encode(node *ir.Node) ([]byte, error) {
	if cfg.J {
		return codec.EncodeJSON(node)
	}
	return codec.EncodeYAML(node)
}

// colorize reports whether command output to w should be colorized.  An
// explicit -color wins; otherwise we color iff w is a terminal.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return cfg.Color
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type GetConfig struct {
	*MainConfig

	Default string `cli:"name=d aliases=default desc='value to print when the path is absent'"`

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	String bool `cli:"name=s desc='treat the value argument as a plain string'"`

	Set *cli.Command
}

type DelConfig struct {
	*MainConfig

	Del *cli.Command
}

type ScanConfig struct {
	*MainConfig

	Paths bool `cli:"name=p aliases=paths desc='print paths only'"`

	Scan *cli.Command
}

type MergeConfig struct {
	*MainConfig

	Merge *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Text bool `cli:"name=text desc='include text patches for multiline string changes'"`

	Diff *cli.Command
}

type FilterConfig struct {
	*MainConfig

	Filter *cli.Command
}

type PatchConfig struct {
	*MainConfig

	File bool `cli:"name=f desc='treat the patch argument as a file path'"`

	Patch *cli.Command
}
