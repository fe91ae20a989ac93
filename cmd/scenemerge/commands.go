package main

import (
	"github.com/scott-cotton/cli"
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
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: yaml/y, json/j",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "scenemerge").
		WithSynopsis("scenemerge [opts] command [opts]").
		WithDescription("scenemerge detects and resolves differences between two versions of a scene document.").
		WithOpts(opts...).
		WithSubs(
			DiffCommand(cfg),
			MergeCommand(cfg),
			ViewCommand(cfg))
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff <ours> <theirs>").
		WithDescription("list the merge actions between two versions of a scene").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("merge").
		WithAliases("m", "me").
		WithSynopsis("merge [-rules file] [-prefer ours|theirs] <ours> <theirs>").
		WithDescription(mergeDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runMerge(cfg, cc, args)
		})
	cfg.Merge = cmd
	return cmd
}

const mergeDescription = `merge resolves the differences between two versions of a scene
document and writes the merged result.

Resolution happens in three stages:
1. rules from -rules auto-resolve matching actions at detection time
2. -prefer ours|theirs resolves whatever remains
3. anything still unresolved blocks the write, unless -partial is given

With -report, a JSON merge patch describing what resolution changed is
written alongside the result.`

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [file]").
		WithDescription("view a scene document in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}
