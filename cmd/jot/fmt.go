package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/jot-format/go-jot"
	"github.com/jot-format/go-jot/diag"
	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/libdiff"

	"github.com/scott-cotton/cli"
)

func jotFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		if cfg.Write {
			return fmt.Errorf("%w: -w needs file arguments", cli.ErrUsage)
		}
		args = []string{"-"}
	}
	bad := 0
	for _, arg := range args {
		hasErrs, err := fmtArg(cfg, cc, arg)
		if err != nil {
			return err
		}
		if hasErrs {
			bad++
		}
	}
	if bad > 0 {
		return fmt.Errorf("errors in %d of %d documents", bad, len(args))
	}
	return nil
}

func fmtArg(cfg *FmtConfig, cc *cli.Context, arg string) (bool, error) {
	if cfg.Write && arg == "-" {
		return false, fmt.Errorf("%w: cannot write back to stdin", cli.ErrUsage)
	}
	src, err := readArg(arg)
	if err != nil {
		return false, err
	}
	name := displayName(arg)
	var opts []encode.EncodeOption
	if !cfg.Write && !cfg.List && !cfg.Diff {
		opts = cfg.encOpts(cc.Out)
	}
	if cfg.Bare {
		opts = append(opts, encode.OmitRootBraces(true))
	}
	out, diags, err := jot.Format(src, opts...)
	if err != nil {
		return false, err
	}
	reportDiags(name, diags)
	switch {
	case cfg.List:
		if !bytes.Equal(src, out) {
			fmt.Fprintln(cc.Out, name)
		}
	case cfg.Diff:
		text, differs := formatDiff(src, out)
		if differs {
			fmt.Fprintf(cc.Out, "--- %s\n", name)
			if _, err := io.WriteString(cc.Out, text); err != nil {
				return false, err
			}
		}
	case cfg.Write:
		if !bytes.Equal(src, out) {
			if err := os.WriteFile(arg, out, 0644); err != nil {
				return false, err
			}
		}
	default:
		if _, err := cc.Out.Write(out); err != nil {
			return false, err
		}
	}
	return diags.HasErrors(), nil
}

// formatDiff renders what formatting would change, line by line.
func formatDiff(src, formatted []byte) (string, bool) {
	return libdiff.Strings(string(src), string(formatted))
}

func jotCheck(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	bad := 0
	for _, arg := range args {
		diags, err := checkArg(cfg, cc, arg)
		if err != nil {
			return err
		}
		if diags.HasErrors() {
			bad++
		}
	}
	if bad > 0 {
		return fmt.Errorf("errors in %d of %d documents", bad, len(args))
	}
	return nil
}

func checkArg(cfg *CheckConfig, cc *cli.Context, arg string) (diag.List, error) {
	src, err := readArg(arg)
	if err != nil {
		return nil, err
	}
	name := displayName(arg)
	out, diags, err := jot.Format(src)
	if err != nil {
		return nil, err
	}
	reportDiags(name, diags)
	if cfg.Diff {
		if text, differs := formatDiff(src, out); differs {
			fmt.Fprintf(cc.Out, "--- %s\n", name)
			if _, err := io.WriteString(cc.Out, text); err != nil {
				return nil, err
			}
		}
	}
	return diags, nil
}
