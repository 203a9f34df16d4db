package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "planview").
		WithSynopsis("planview [opts] command [opts]").
		WithDescription("planview renders and rewrites sample query plans.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return show(&ShowConfig{MainConfig: cfg, Show: cfg.Main}, cc, args)
		}).
		WithSubs(
			ShowCommand(cfg),
			RewriteCommand(cfg))
}

func ShowCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ShowConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("show").
		WithAliases("s").
		WithSynopsis("show [plans]").
		WithDescription("render sample plans (all when no names are given)").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return show(cfg, cc, args)
		})
	cfg.Show = cmd
	return cmd
}

func RewriteCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RewriteConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("rewrite").
		WithAliases("rw").
		WithSynopsis("rewrite [-m expr] [-up] <rewrite> [plans]").
		WithDescription("apply a built-in rewrite to sample plans and show the diff").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rewrite(cfg, cc, args)
		})
	cfg.Rewrite = cmd
	return cmd
}
