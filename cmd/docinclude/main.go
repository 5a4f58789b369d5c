package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docinclude/cmd/docinclude/commands"
	"git.home.luguber.info/inful/docinclude/internal/errors"
	"git.home.luguber.info/inful/docinclude/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("docinclude"),
		kong.Description("List pattern-matched documentation assets and assemble site file collections from a curated doc list."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	err := parser.Run(&commands.Global{Out: os.Stdout}, cli)
	errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
