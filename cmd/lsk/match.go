package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/lsforge/go-lskit/lsx"
	"github.com/lsforge/go-lskit/query"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires an expression argument", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	var encOpts []lsx.EncodeOption
	if cfg.useColor(cc.Out) {
		encOpts = append(encOpts, lsx.EncodeColors(lsx.NewColors()))
	}
	for _, arg := range args {
		doc, _, err := cfg.decodeArg(arg)
		if err != nil {
			return err
		}
		matches, err := q.Run(doc)
		if err != nil {
			return fmt.Errorf("error matching %s: %w", arg, err)
		}
		for _, m := range matches {
			fmt.Fprintf(cc.Out, "<!-- %s region=%s -->\n", arg, m.Region)
			if err := lsx.EncodeNode(m.Node, cc.Out, encOpts...); err != nil {
				return err
			}
		}
	}
	return nil
}
