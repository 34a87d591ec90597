package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/treedot/treedot"
	"github.com/treedot/treedot/codec"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires one argument, a merge patch document", cli.ErrUsage)
	}
	p := []byte(args[0])
	if cfg.File {
		p, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading patch %s: %w", args[0], err)
		}
	}
	// the patch may arrive as yaml; normalize to json for rfc 7386
	pNode, err := codec.Decode(p)
	if err != nil {
		return fmt.Errorf("%w: bad patch: %v", cli.ErrUsage, err)
	}
	p, err = codec.EncodeJSON(pNode)
	if err != nil {
		return err
	}
	for _, arg := range inputs(args[1:]) {
		root, err := readTree(arg)
		if err != nil {
			return err
		}
		if _, err := treedot.MergePatch(root, p); err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if err := writeTree(cfg.MainConfig, cc.Out, root); err != nil {
			return err
		}
	}
	return nil
}
