package commands

import (
	"fmt"
	"io"
	"log/slog"

	derrors "git.home.luguber.info/inful/docinclude/internal/errors"
	"git.home.luguber.info/inful/docinclude/internal/logfields"
	"git.home.luguber.info/inful/docinclude/internal/pathspec"
	"git.home.luguber.info/inful/docinclude/internal/util/fswalk"
)

// ListCmd implements the 'list' command.
type ListCmd struct {
	Spec string `short:"s" help:"Pattern spec file (gitignore syntax)" default:".docinclude" type:"path"`
	Root string `short:"r" help:"Directory tree to match against" default:"." type:"path"`
}

func (l *ListCmd) Run(g *Global, _ *CLI) error {
	return RunList(g.out(), l.Spec, l.Root)
}

// RunList prints every file below root selected by the spec at specPath,
// one slash-separated relative path per line.
func RunList(w io.Writer, specPath, root string) error {
	spec, err := pathspec.Load(specPath)
	if err != nil {
		return derrors.PatternError(specPath, err)
	}
	slog.Debug("Loaded pattern spec", logfields.Path(specPath), logfields.Count(spec.Len()))

	matches, err := spec.MatchTree(fswalk.OS(root))
	if err != nil {
		return derrors.InputFileError("tree", root, err)
	}

	for _, m := range matches {
		if _, err := fmt.Fprintln(w, m); err != nil {
			return derrors.InternalError("write output", err)
		}
	}
	slog.Debug("Listed matches", logfields.Path(root), logfields.Count(len(matches)))
	return nil
}
