package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jot-format/go-jot/diag"

	"github.com/scott-cotton/cli"
)

func jotMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// readArg reads a file argument, with "-" meaning stdin.
func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", arg, err)
	}
	return d, nil
}

func displayName(arg string) string {
	if arg == "-" {
		return "(stdin)"
	}
	return arg
}

// reportDiags prints diagnostics the way compilers do, one per line
// prefixed with the file name.
func reportDiags(name string, diags diag.List) {
	for i := range diags {
		fmt.Fprintf(os.Stderr, "%s:%s\n", name, diags[i].Error())
	}
}
