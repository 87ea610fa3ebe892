package main

import (
	"github.com/scott-cotton/cli"

	"github.com/lsforge/go-lskit/format"
)

func doConvert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
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
		out := format.LSXFormat
		if in.IsLSX() {
			out = format.LSJFormat
		}
		out = cfg.outFormat(out)
		if err := cfg.encodeDoc(doc, out, cc.Out, false); err != nil {
			return err
		}
	}
	return nil
}
