package main

import (
	"fmt"
	"path/filepath"

	"github.com/jot-format/go-jot/convert"
	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/format"
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/parse"

	"github.com/scott-cotton/cli"
)

func jotConvert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := convertArg(cfg, cc, arg); err != nil {
			return err
		}
	}
	return nil
}

func convertArg(cfg *ConvertConfig, cc *cli.Context, arg string) error {
	src, err := readArg(arg)
	if err != nil {
		return err
	}
	name := displayName(arg)
	in := format.JotFormat
	if cfg.InFormat != nil {
		in = *cfg.InFormat
	} else if arg != "-" {
		in = formatForFile(arg)
	}

	var y *ir.Node
	switch {
	case in.IsYAML():
		y, err = convert.FromYAML(src)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", name, err)
		}
	default:
		res := parse.Parse(src, parse.ParseComments(false))
		reportDiags(name, res.Diags)
		y = res.Root
	}

	out := format.JotFormat
	if cfg.OutFormat != nil {
		out = *cfg.OutFormat
	}
	if out.IsYAML() {
		d, err := convert.ToYAML(y)
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", name, err)
		}
		_, err = cc.Out.Write(d)
		return err
	}
	if _, err := encode.Encode(y, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding %s: %w", name, err)
	}
	return nil
}

// formatForFile picks the format a file name implies, defaulting to
// jot.
func formatForFile(name string) format.Format {
	ext := filepath.Ext(name)
	if ext == ".yml" {
		return format.YAMLFormat
	}
	for _, f := range format.AllFormats() {
		if f.Suffix() == ext {
			return f
		}
	}
	return format.JotFormat
}
