package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/lsforge/go-lskit/lsdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two file arguments", cli.ErrUsage)
	}
	from, _, err := cfg.decodeArg(args[0])
	if err != nil {
		return err
	}
	to, _, err := cfg.decodeArg(args[1])
	if err != nil {
		return err
	}
	lines, err := lsdiff.Diff(from, to)
	if err != nil {
		return err
	}
	if !lsdiff.Changed(lines) {
		return nil
	}
	if err := lsdiff.Format(cc.Out, lines, cfg.useColor(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
