package main

import (
	"fmt"

	"github.com/jot-format/go-jot"

	"github.com/scott-cotton/cli"
)

func jotMerge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: merge requires a base and a patch", cli.ErrUsage)
	}
	base, err := readArg(args[0])
	if err != nil {
		return err
	}
	patch, err := readArg(args[1])
	if err != nil {
		return err
	}
	out, diags, err := jot.Merge(base, patch)
	if err != nil {
		return err
	}
	reportDiags(displayName(args[0]), diags)
	_, err = cc.Out.Write(out)
	return err
}
