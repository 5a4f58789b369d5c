// Package docslist implements the docs-list files hook. It replaces the
// site's file collection with the files named in a hand-maintained list,
// in list order, followed by the files the theme contributes.
package docslist

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"git.home.luguber.info/inful/docinclude/internal/config"
	"git.home.luguber.info/inful/docinclude/internal/doclist"
	"git.home.luguber.info/inful/docinclude/internal/docs"
	derrors "git.home.luguber.info/inful/docinclude/internal/docs/errors"
	"git.home.luguber.info/inful/docinclude/internal/logfields"
	"git.home.luguber.info/inful/docinclude/internal/plugin"
)

// Plugin is the docs-list files hook.
type Plugin struct {
	plugin.BasePlugin
}

// New returns the docs-list hook.
func New() *Plugin {
	return &Plugin{}
}

var _ plugin.FilesHook = (*Plugin)(nil)

// Metadata implements plugin.Plugin.
func (p *Plugin) Metadata() plugin.PluginMetadata {
	return plugin.PluginMetadata{
		Name:        config.DocsListPlugin,
		Version:     "v1.0.0",
		Type:        plugin.PluginTypeFiles,
		Description: "Replace the file collection with the files named in docs-list",
	}
}

// Validate rejects a site without the directories the hook resolves against.
func (p *Plugin) Validate(site *plugin.Site) error {
	if site == nil {
		return fmt.Errorf("site is required")
	}
	if site.DocsDir == "" || site.SiteDir == "" {
		return fmt.Errorf("docs_dir and site_dir are required")
	}
	return nil
}

// listSettings returns the list path and options, falling back to the
// defaults when the site carries no configuration.
func listSettings(site *plugin.Site) (string, doclist.Options) {
	if site.Config == nil {
		return filepath.Join(site.BaseDir, doclist.DefaultFileName), doclist.Options{BlankLines: doclist.BlankLinesSkip}
	}
	lc := site.Config.DocsList
	path := lc.Path
	if path == "" {
		path = doclist.DefaultFileName
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(site.BaseDir, path)
	}
	return path, doclist.Options{BlankLines: lc.BlankLines}
}

// OnFiles ignores the incoming collection and returns a new one holding one
// file per list entry, in list order, then the theme's files. Entries are
// resolved against the base dir and made relative to docs_dir; they are not
// checked for existence.
func (p *Plugin) OnFiles(ctx context.Context, _ *docs.Files, site *plugin.Site) (*docs.Files, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	listPath, opts := listSettings(site)
	entries, err := doclist.Load(listPath, opts)
	if err != nil {
		return nil, err
	}
	slog.Debug("Doc list entries", logfields.Path(listPath), slog.Any("entries", doclist.Paths(entries)))

	out := docs.NewFiles()
	for _, e := range entries {
		abs := e.Path
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(site.BaseDir, abs)
		}
		rel, err := filepath.Rel(site.DocsDir, abs)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", derrors.ErrInvalidRelativePath, e.Line, err)
		}
		f := docs.NewFile(rel, site.DocsDir, site.SiteDir, site.UseDirectoryURLs)
		slog.Debug("Listed file", logfields.Line(e.Line), logfields.SrcURI(f.SrcURI), logfields.DestURI(f.DestURI))
		out.Append(f)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	listed := out.Len()
	if site.Theme != nil {
		if err := out.AddFilesFromTheme(site.Theme, site.SiteDir, site.UseDirectoryURLs); err != nil {
			return nil, err
		}
	}

	slog.Info("Injected files from doc list",
		logfields.Path(listPath),
		logfields.Count(listed),
		slog.Int("theme_files", out.Len()-listed))
	return out, nil
}
