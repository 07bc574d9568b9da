package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Score   ScoreCmd         `cmd:"" help:"Score a directory of lanes once"`
	Check   CheckCmd         `cmd:"" help:"Validate notation files and list every malformed line"`
	Watch   WatchCmd         `cmd:"" help:"Re-score a lane directory as it changes and stream results"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tenpin"),
		kong.Description("Ten-pin bowling notation validator and scorer"),
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
