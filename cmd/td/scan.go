package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/treedot/treedot"
)

func scan(cfg *ScanConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Scan.Parse(cc, args)
	if err != nil {
		cfg.Scan.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	pathColor := fmt.Sprint
	if cfg.colorize(cc.Out) {
		pathColor = color.New(color.FgCyan).Sprint
	}
	for i, arg := range inputs(args) {
		if i > 0 {
			fmt.Fprintln(cc.Out, "---")
		}
		root, err := readTree(arg)
		if err != nil {
			return err
		}
		entries, err := treedot.Scan(root)
		if err != nil {
			return fmt.Errorf("error scanning %s: %w", arg, err)
		}
		for _, e := range entries {
			if cfg.Paths {
				fmt.Fprintln(cc.Out, pathColor(e.Path))
				continue
			}
			d, err := cfg.encode(e.Value)
			if err != nil {
				return fmt.Errorf("error encoding result: %w", err)
			}
			val := strings.TrimRight(string(d), "\n")
			if strings.Contains(val, "\n") {
				// containers render on their own indented block
				fmt.Fprintf(cc.Out, "%s:\n", pathColor(e.Path))
				for _, line := range strings.Split(val, "\n") {
					fmt.Fprintf(cc.Out, "  %s\n", line)
				}
				continue
			}
			fmt.Fprintf(cc.Out, "%s: %s\n", pathColor(e.Path), val)
		}
	}
	return nil
}
