package main

import (
	"fmt"

	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/libdiff"
	"github.com/jot-format/go-jot/parse"

	"github.com/scott-cotton/cli"
)

// jotDiff compares normalized encodings, so only value, order, and
// comment changes show. Exits 1 when the documents differ, like
// diff(1).
func jotDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two documents", cli.ErrUsage)
	}
	a, err := readArg(args[0])
	if err != nil {
		return err
	}
	b, err := readArg(args[1])
	if err != nil {
		return err
	}
	ra := parse.Parse(a)
	rb := parse.Parse(b)
	reportDiags(displayName(args[0]), ra.Diags)
	reportDiags(displayName(args[1]), rb.Diags)
	ta := encode.MustString(ra.Root, encode.EncodeComments(ra.Comments)) + "\n"
	tb := encode.MustString(rb.Root, encode.EncodeComments(rb.Comments)) + "\n"
	if ta == tb {
		return nil
	}
	if err := libdiff.Render(cc.Out, libdiff.Lines(ta, tb), cfg.useColor(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
