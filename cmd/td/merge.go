package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/treedot/treedot"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires a base document", cli.ErrUsage)
	}
	base, err := readTree(args[0])
	if err != nil {
		return err
	}
	for _, arg := range args[1:] {
		overlay, err := readTree(arg)
		if err != nil {
			return err
		}
		if _, err := treedot.Merge(base, overlay); err != nil {
			return fmt.Errorf("error merging %s: %w", arg, err)
		}
	}
	return writeTree(cfg.MainConfig, cc.Out, base)
}
