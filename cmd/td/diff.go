package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/treedot/treedot"
	"github.com/treedot/treedot/ir"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two documents", cli.ErrUsage)
	}
	from, err := readTree(args[0])
	if err != nil {
		return err
	}
	to, err := readTree(args[1])
	if err != nil {
		return err
	}
	changes, err := treedot.Diff(from, to)
	if err != nil {
		return err
	}
	addLine, delLine, repLine := fmt.Sprint, fmt.Sprint, fmt.Sprint
	if cfg.colorize(cc.Out) {
		addLine = color.New(color.FgGreen).Sprint
		delLine = color.New(color.FgRed).Sprint
		repLine = color.New(color.FgYellow).Sprint
	}
	for _, ch := range changes {
		switch ch.Kind {
		case treedot.AddChange:
			fmt.Fprintln(cc.Out, addLine("+ ", ch.Path, ": ", render(cfg, ch.To)))
		case treedot.DeleteChange:
			fmt.Fprintln(cc.Out, delLine("- ", ch.Path, ": ", render(cfg, ch.From)))
		case treedot.ReplaceChange:
			fmt.Fprintln(cc.Out, repLine("~ ", ch.Path, ": ",
				render(cfg, ch.From), " => ", render(cfg, ch.To)))
			if cfg.Text && ch.Text != "" {
				fmt.Fprint(cc.Out, ch.Text)
			}
		}
	}
	if len(changes) != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func render(cfg *DiffConfig, node *ir.Node) string {
	d, err := cfg.encode(node)
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	s := strings.TrimRight(string(d), "\n")
	if strings.Contains(s, "\n") {
		return strings.Join(strings.Split(s, "\n"), " / ")
	}
	return s
}
