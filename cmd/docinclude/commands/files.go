package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path"
	"text/tabwriter"

	"github.com/disiqueira/gotree/v3"
	"github.com/fatih/color"

	"git.home.luguber.info/inful/docinclude/internal/build"
	"git.home.luguber.info/inful/docinclude/internal/config"
	"git.home.luguber.info/inful/docinclude/internal/docs"
	derrors "git.home.luguber.info/inful/docinclude/internal/errors"
)

// Output formats of the files command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatTree = "tree"
)

// FilesCmd implements the 'files' command.
type FilesCmd struct {
	Format string `short:"f" help:"Output format (text, json, tree)" enum:"text,json,tree" default:"text"`
}

func (f *FilesCmd) Run(g *Global, root *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}
	return RunFiles(ctx, g.out(), cfg, build.NewBuildService(nil), f.Format)
}

// RunFiles assembles the file collection with svc and prints it.
func RunFiles(ctx context.Context, w io.Writer, cfg *config.Config, svc build.BuildService, format string) error {
	result, err := svc.Run(ctx, cfg)
	if err != nil {
		return err
	}

	switch format {
	case FormatJSON:
		err = writeJSON(w, result.Files)
	case FormatTree:
		err = writeTree(w, result.Files)
	case FormatText, "":
		err = writeText(w, result.Files)
	default:
		return derrors.ValidationFailed("format", fmt.Sprintf("unknown format %q", format))
	}
	if err != nil {
		return derrors.InternalError("write output", err)
	}
	return nil
}

// Kind names the role a file plays in the site.
func Kind(f *docs.File) string {
	switch {
	case f.IsDocumentationPage():
		return "page"
	case f.IsStaticPage():
		return "static"
	case f.IsCSS():
		return "css"
	case f.IsJavaScript():
		return "javascript"
	default:
		return "media"
	}
}

func writeText(w io.Writer, files *docs.Files) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := color.New(color.Bold)
	if _, err := header.Fprintln(tw, "ORIGIN\tKIND\tSRC_URI\tDEST_URI\tURL"); err != nil {
		return err
	}
	for _, f := range files.All() {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", f.Origin, Kind(f), f.SrcURI, f.DestURI, f.URL); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// fileJSON is the json output record of one file.
type fileJSON struct {
	SrcURI  string `json:"src_uri"`
	SrcDir  string `json:"src_dir"`
	DestURI string `json:"dest_uri"`
	URL     string `json:"url"`
	Origin  string `json:"origin"`
	Kind    string `json:"kind"`
}

func writeJSON(w io.Writer, files *docs.Files) error {
	out := make([]fileJSON, 0, files.Len())
	for _, f := range files.All() {
		out = append(out, fileJSON{
			SrcURI:  f.SrcURI,
			SrcDir:  f.SrcDir,
			DestURI: f.DestURI,
			URL:     f.URL,
			Origin:  string(f.Origin),
			Kind:    Kind(f),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// writeTree renders the destination layout of the site, keeping collection
// order within each directory.
func writeTree(w io.Writer, files *docs.Files) error {
	root := gotree.New(".")
	dirs := map[string]gotree.Tree{".": root}

	var dirFor func(dir string) gotree.Tree
	dirFor = func(dir string) gotree.Tree {
		if t, ok := dirs[dir]; ok {
			return t
		}
		if dir == "/" {
			return root
		}
		t := dirFor(path.Dir(dir)).Add(path.Base(dir) + "/")
		dirs[dir] = t
		return t
	}

	for _, f := range files.All() {
		dest := path.Clean(f.DestURI)
		label := path.Base(dest)
		if f.Origin == docs.OriginTheme {
			label += " (theme)"
		}
		dirFor(path.Dir(dest)).Add(label)
	}

	_, err := fmt.Fprint(w, root.Print())
	return err
}
