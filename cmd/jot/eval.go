package main

import (
	"fmt"

	"github.com/jot-format/go-jot/parse"
	"github.com/jot-format/go-jot/query"

	"github.com/scott-cotton/cli"
)

func jotEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	expr := args[0]
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, arg := range files {
		src, err := readArg(arg)
		if err != nil {
			return err
		}
		name := displayName(arg)
		res := parse.Parse(src, parse.ParseComments(false))
		reportDiags(name, res.Diags)
		out, err := query.EvalString(res.Root, expr)
		if err != nil {
			return fmt.Errorf("error evaluating %q on %s: %w", expr, name, err)
		}
		if _, err := fmt.Fprintln(cc.Out, out); err != nil {
			return err
		}
	}
	return nil
}
