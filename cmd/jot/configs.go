package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// useColor says whether output to w should carry ANSI colors: yes when
// -color was given, no when it was explicitly switched off, and
// otherwise only when w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.OutFormat != nil {
		res = append(res, encode.EncodeFormat(*cfg.OutFormat))
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type FmtConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='write results back to source files'"`
	Diff  bool `cli:"name=d desc='print diffs instead of the result'"`
	List  bool `cli:"name=l desc='list files whose formatting differs'"`
	Bare  bool `cli:"name=bare desc='drop the braces around the root object'"`

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Diff bool `cli:"name=d desc='also show what fmt would change'"`

	Check *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Eval *cli.Command
}

type MergeConfig struct {
	*MainConfig

	Merge *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
