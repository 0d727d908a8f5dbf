package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Parse   ParseCmd         `cmd:"" help:"Parse a zip archive of exported hand-history files"`
	Hand    HandCmd          `cmd:"" help:"Parse a single hand from a file or stdin"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handhistory"),
		kong.Description("PokerStars hand-history parser"),
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
