package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Settings: &Settings{}}
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
			Description: "input format: xml/x, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: xml/x, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "config",
			Description: "settings file (default $TROUPE_CONFIG or troupe/config.toml in the user config dir)",
			Type:        cli.NamedFuncOpt(cfg.configOpt, "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "troupe").
		WithSynopsis("troupe [opts] command [opts]").
		WithDescription("troupe reads, writes and queries actor catalogue documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return troupeMain(cfg, cc, args)
		}).
		WithSubs(
			SeedCommand(cfg),
			ViewCommand(cfg),
			CheckCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			GetCommand(cfg),
			QueryCommand(cfg),
			ReportCommand(cfg))
}

func SeedCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SeedConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Seed, "seed").
		WithAliases("s").
		WithSynopsis("seed [file]").
		WithDescription("write the demo catalogue to file or the output").
		WithRun(func(cc *cli.Context, args []string) error {
			return seed(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view documents, converting between formats with -O").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [-w] files").
		WithDescription("load catalogue files into the model, validate them and verify they write back unchanged").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Context: 3}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-r] [-u [-c n]] a b").
		WithDescription("diff documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-m] <patchfile> <file>").
		WithDescription("apply a JSON patch (RFC 6902) or merge patch to the JSON form of a catalogue").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g", "ge").
		WithSynopsis("get <path> [files]").
		WithDescription("get the node at a path such as $[0].filmography[1].performance.name").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Query, "query").
		WithAliases("q").
		WithSynopsis("query [-count|-paths] <element> [predicate] [files]").
		WithDescription("select elements for which an expr predicate holds").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return queryCmd(cfg, cc, args)
		})
}

func ReportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReportConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Report, "report").
		WithAliases("r").
		WithSynopsis("report [-l] <name> [args] <file>").
		WithDescription("run a catalogue report; rows are written as a document when -O is given").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return report(cfg, cc, args)
		})
}
