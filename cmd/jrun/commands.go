package main

import (
	"errors"
	"fmt"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		{
			Name:        "w",
			Aliases:     []string{"writer"},
			Description: "writer: styled, stream, builder, compact",
			Type:        cli.NamedFuncOpt(cfg.writerOpt, "(writer)"),
		},
		{
			Name:        "e",
			Aliases:     []string{"expected"},
			Description: "file holding the expected rewrite",
			Type:        cli.NamedFuncOpt(cfg.expectedOpt, "(filepath)"),
		},
	}...)

	return cli.NewCommandAt(&cfg.Main, "jrun").
		WithSynopsis("jrun [opts] [command] files...").
		WithDescription("jrun parses JSON documents and rewrites them with a selected writer.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jrunMain(cfg, cc, args)
		}).
		WithSubs(
			QueryCommand(cfg),
			PatchCommand(cfg))
}

func jrunMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		cfg.Main.Usage(cc, err)
		return cli.ExitCodeErr(3)
	}
	if len(args) == 0 {
		err := fmt.Errorf("%w: no input files", cli.ErrUsage)
		cfg.Main.Usage(cc, err)
		return cli.ExitCodeErr(3)
	}
	if sub := cfg.Main.FindSub(cc, args[0]); sub != nil {
		err := sub.Run(cc, args[1:])
		if errors.Is(err, cli.ErrUsage) {
			sub.Usage(cc, err)
			return cli.ExitCodeErr(3)
		}
		return err
	}
	return runFiles(cfg, cc, args)
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("query").
		WithAliases("q").
		WithSynopsis("query <expr> [files]").
		WithDescription("evaluate an expression against JSON documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return runQuery(cfg, cc, args)
		})
	cfg.Query = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch <patchfile> [files]").
		WithDescription("apply a JSON patch (RFC 6902 array) or merge patch (RFC 7386 object) to documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return runPatch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}
