package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/treedot/treedot"
	"github.com/treedot/treedot/codec"
	"github.com/treedot/treedot/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dot separated path", cli.ErrUsage)
	}
	path := args[0]
	var def *ir.Node
	if cfg.Default != "" {
		def, err = codec.Decode([]byte(cfg.Default))
		if err != nil {
			return fmt.Errorf("%w: bad default %q: %v", cli.ErrUsage, cfg.Default, err)
		}
	}
	for _, arg := range inputs(args[1:]) {
		root, err := readTree(arg)
		if err != nil {
			return err
		}
		res := treedot.Get(root, path, def)
		if res == nil {
			// absent with no default: print nothing, exit nonzero
			return cli.ExitCodeErr(1)
		}
		if err := writeTree(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
