package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/lsforge/go-lskit/lspatch"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file argument", cli.ErrUsage)
	}
	patchBytes, err := readArg(args[0])
	if err != nil {
		return err
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, in, err := cfg.decodeArg(arg)
		if err != nil {
			return err
		}
		patched, err := lspatch.Apply(doc, patchBytes)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if err := cfg.encodeDoc(patched, cfg.outFormat(in), cc.Out, false); err != nil {
			return err
		}
	}
	return nil
}
