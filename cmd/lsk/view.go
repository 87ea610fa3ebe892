package main

import (
	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, in, err := cfg.decodeArg(arg)
		if err != nil {
			return err
		}
		// view keeps the input encoding unless told otherwise
		if err := cfg.encodeDoc(doc, cfg.outFormat(in), cc.Out, true); err != nil {
			return err
		}
	}
	return nil
}
