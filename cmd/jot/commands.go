package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/jot-format/go-jot"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: jot/j, json, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: jot/j, json, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "jot").
		WithSynopsis("jot [opts] command [opts]").
		WithDescription("jot is a tool for working with jot configuration documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jotMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			CheckCommand(cfg),
			ConvertCommand(cfg),
			EvalCommand(cfg),
			MergeCommand(cfg),
			DiffCommand(cfg),
			VersionCommand(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("fmt").
		WithAliases("f").
		WithSynopsis("fmt [-w|-d|-l] [files]").
		WithDescription("rewrite jot documents in a normal form, keeping comments").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jotFmt(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithSynopsis("check [-d] [files]").
		WithDescription("report every problem the reader finds, without stopping at the first").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jotCheck(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("convert").
		WithAliases("co", "cv").
		WithSynopsis("convert [-I fmt] [-O fmt] [files]").
		WithDescription("convert between jot, JSON, and YAML").
		WithRun(func(cc *cli.Context, args []string) error {
			return jotConvert(cfg, cc, args)
		})
	cfg.Convert = cmd
	return cmd
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval <expr> [files]").
		WithDescription("evaluate an expression against each document; get(path), has(path), and getenv(name) reach into it").
		WithRun(func(cc *cli.Context, args []string) error {
			return jotEval(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("merge").
		WithAliases("m").
		WithSynopsis("merge <base> <patch>").
		WithDescription("apply a JSON merge patch to a document, keeping its comments").
		WithRun(func(cc *cli.Context, args []string) error {
			return jotMerge(cfg, cc, args)
		})
	cfg.Merge = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff <a> <b>").
		WithDescription("compare two documents after normalizing their layout").
		WithRun(func(cc *cli.Context, args []string) error {
			return jotDiff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func VersionCommand(mainCfg *MainConfig) *cli.Command {
	return cli.NewCommand("version").
		WithAliases("v").
		WithSynopsis("version").
		WithDescription("print the jot version").
		WithRun(func(cc *cli.Context, args []string) error {
			_, err := fmt.Fprintf(cc.Out, "jot %s\n", jot.Version())
			return err
		})
}
