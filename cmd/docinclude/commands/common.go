package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

// Global carries state shared by all subcommands.
type Global struct {
	Out io.Writer // command output; logs go to stderr
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Site configuration file path" default:"mkdocs.yml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	List  ListCmd  `cmd:"" help:"Print every file matched by a gitignore-style pattern spec"`
	Files FilesCmd `cmd:"" help:"Print the site file collection after running the configured files hooks"`
	Init  InitCmd  `cmd:"" help:"Write an example site configuration with doc list and pattern spec scaffolds"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}
