package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/treedot/treedot"
	"github.com/treedot/treedot/codec"
	"github.com/treedot/treedot/ir"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a dot separated path and a value", cli.ErrUsage)
	}
	path, valArg := args[0], args[1]
	var val *ir.Node
	if cfg.String {
		val = ir.FromString(valArg)
	} else {
		val, err = codec.Decode([]byte(valArg))
		if err != nil {
			return fmt.Errorf("%w: bad value %q: %v", cli.ErrUsage, valArg, err)
		}
	}
	for _, arg := range inputs(args[2:]) {
		root, err := readTree(arg)
		if err != nil {
			return err
		}
		// each document gets its own copy so trees don't share nodes
		if err := treedot.Set(root, path, val.Clone()); err != nil {
			return fmt.Errorf("error setting %s in %s: %w", path, arg, err)
		}
		if err := writeTree(cfg.MainConfig, cc.Out, root); err != nil {
			return err
		}
	}
	return nil
}

func del(cfg *DelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		cfg.Del.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: del requires one argument, a dot separated path", cli.ErrUsage)
	}
	path := args[0]
	for _, arg := range inputs(args[1:]) {
		root, err := readTree(arg)
		if err != nil {
			return err
		}
		if _, err := treedot.Delete(root, path); err != nil {
			return fmt.Errorf("error deleting %s in %s: %w", path, arg, err)
		}
		if err := writeTree(cfg.MainConfig, cc.Out, root); err != nil {
			return err
		}
	}
	return nil
}
