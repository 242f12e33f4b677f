package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Demo     DemoCmd          `cmd:"" help:"Play one hand with a scripted agent and print the result"`
	Simulate SimulateCmd      `cmd:"" help:"Run many episodes in parallel and report statistics"`
	Play     PlayCmd          `cmd:"" help:"Take the agent's seat and play interactively"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("cardrl"),
		kong.Description("Four-player trick-taking environment for reinforcement learning"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
