package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/treedot/treedot"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		cfg.Filter.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: filter requires one argument, an expression", cli.ErrUsage)
	}
	src := args[0]
	for _, arg := range inputs(args[1:]) {
		root, err := readTree(arg)
		if err != nil {
			return err
		}
		if err := treedot.FilterExpr(root, src); err != nil {
			return fmt.Errorf("error filtering %s: %w", arg, err)
		}
		if err := writeTree(cfg.MainConfig, cc.Out, root); err != nil {
			return err
		}
	}
	return nil
}
