package docs

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"slices"
	"strings"

	derrors "git.home.luguber.info/inful/docinclude/internal/docs/errors"
	"git.home.luguber.info/inful/docinclude/internal/logfields"
	"git.home.luguber.info/inful/docinclude/internal/pathspec"
	"git.home.luguber.info/inful/docinclude/internal/util/fswalk"
)

// defaultExcludes always apply ahead of the configured exclude_docs rules.
var defaultExcludes = []string{".*", "/templates/"}

// DiscoverOptions configures docs_dir discovery.
type DiscoverOptions struct {
	DocsDir          string
	SiteDir          string
	UseDirectoryURLs bool
	ExcludeDocs      string // gitignore-style rules, one per line
}

// Discover builds the default collection from every file below DocsDir.
// Files of a directory come before those of its subdirectories, with
// index.md and README.md first. A README.md is dropped when an index.md
// sits next to it.
func Discover(opts DiscoverOptions) (*Files, error) {
	info, err := os.Stat(opts.DocsDir)
	if err != nil || !info.IsDir() {
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", derrors.ErrDocsDirNotFound, opts.DocsDir)
		}
		return nil, fmt.Errorf("stat docs dir %s: %w", opts.DocsDir, err)
	}

	rules := append([]string(nil), defaultExcludes...)
	rules = append(rules, strings.Split(opts.ExcludeDocs, "\n")...)
	exclude := pathspec.FromLines(rules...)
	for _, r := range exclude.Rules() {
		slog.Debug("Docs exclude rule", logfields.Pattern(r.Text), logfields.Line(r.Line))
	}

	var paths []string
	err = fswalk.Walk(fswalk.OS(opts.DocsDir), func(rel string, info os.FileInfo) error {
		if info.IsDir() {
			if exclude.Match(rel, true) {
				slog.Debug("Excluded directory from docs", logfields.Path(rel))
				return fswalk.SkipDir
			}
			return nil
		}
		if exclude.Match(rel, false) {
			slog.Debug("Excluded file from docs", logfields.Path(rel))
			return nil
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", derrors.ErrDocsDirWalkFailed, err)
	}

	present := make(map[string]bool, len(paths))
	for _, p := range paths {
		present[p] = true
	}

	slices.SortStableFunc(paths, compareDocPaths)

	files := NewFiles()
	for _, p := range paths {
		dir, name := path.Split(p)
		if name == "README.md" && present[dir+"index.md"] {
			slog.Warn("Excluding README.md from the site because it conflicts with index.md",
				logfields.Path(p))
			continue
		}
		files.Append(NewFile(p, opts.DocsDir, opts.SiteDir, opts.UseDirectoryURLs))
	}

	slog.Debug("Discovered docs", logfields.DocsDir(opts.DocsDir), logfields.Count(files.Len()))
	return files, nil
}

func compareDocPaths(a, b string) int {
	ad, an := path.Split(a)
	bd, bn := path.Split(b)
	if c := slices.Compare(dirParts(ad), dirParts(bd)); c != 0 {
		return c
	}
	if ai, bi := isIndexName(an), isIndexName(bn); ai != bi {
		if ai {
			return -1
		}
		return 1
	}
	return strings.Compare(an, bn)
}

func dirParts(dir string) []string {
	dir = strings.TrimSuffix(dir, "/")
	if dir == "" {
		return nil
	}
	return strings.Split(dir, "/")
}

func isIndexName(name string) bool {
	return name == "index.md" || name == "README.md"
}
