package docs

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gobwas/glob"

	derrors "git.home.luguber.info/inful/docinclude/internal/docs/errors"
	"git.home.luguber.info/inful/docinclude/internal/logfields"
	"git.home.luguber.info/inful/docinclude/internal/theme"
)

// Files is an ordered collection of site files indexed by SrcURI. When two
// files share a SrcURI the later one is returned by Get.
type Files struct {
	files []*File
	bySrc map[string]*File
}

// NewFiles returns a collection holding files in order.
func NewFiles(files ...*File) *Files {
	fs := &Files{bySrc: make(map[string]*File, len(files))}
	for _, f := range files {
		fs.Append(f)
	}
	return fs
}

// Append adds f at the end of the collection.
func (fs *Files) Append(f *File) {
	fs.files = append(fs.files, f)
	fs.bySrc[f.SrcURI] = f
}

// Remove drops f from the collection. It reports whether f was present.
func (fs *Files) Remove(f *File) bool {
	for i, cur := range fs.files {
		if cur != f {
			continue
		}
		fs.files = append(fs.files[:i], fs.files[i+1:]...)
		delete(fs.bySrc, f.SrcURI)
		for _, other := range fs.files {
			if other.SrcURI == f.SrcURI {
				fs.bySrc[other.SrcURI] = other
			}
		}
		return true
	}
	return false
}

// Get returns the file with the given SrcURI.
func (fs *Files) Get(srcURI string) (*File, bool) {
	f, ok := fs.bySrc[srcURI]
	return f, ok
}

func (fs *Files) Len() int { return len(fs.files) }

// All returns the files in collection order.
func (fs *Files) All() []*File {
	return append([]*File(nil), fs.files...)
}

// SrcURIs returns the SrcURI of every file in collection order.
func (fs *Files) SrcURIs() []string {
	out := make([]string, len(fs.files))
	for i, f := range fs.files {
		out[i] = f.SrcURI
	}
	return out
}

func (fs *Files) filter(keep func(*File) bool) []*File {
	var out []*File
	for _, f := range fs.files {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}

func (fs *Files) DocumentationPages() []*File { return fs.filter((*File).IsDocumentationPage) }
func (fs *Files) StaticPages() []*File        { return fs.filter((*File).IsStaticPage) }
func (fs *Files) MediaFiles() []*File         { return fs.filter((*File).IsMediaFile) }
func (fs *Files) JavaScriptFiles() []*File    { return fs.filter((*File).IsJavaScript) }
func (fs *Files) CSSFiles() []*File           { return fs.filter((*File).IsCSS) }

// themeExcludes are never copied from a theme into the site.
var themeExcludes = []string{
	".*", "*/.*", "*.py", "*.pyc", "*.html", "*readme*", "mkdocs_theme.yml", "locales/*",
}

// themeFileFilter reports whether a theme file name is copied into the
// site. Patterns follow fnmatch rules, so "*" also matches "/", and are
// applied to the lowercased name.
func themeFileFilter(t *theme.Theme) (func(string) bool, error) {
	patterns := append([]string(nil), themeExcludes...)
	for _, ext := range markdownExts {
		patterns = append(patterns, "*"+ext)
	}

	globs := make([]glob.Glob, 0, len(patterns)+len(t.StaticTemplates))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compile theme filter %q: %w", p, err)
		}
		globs = append(globs, g)
	}
	for _, p := range t.StaticTemplates {
		g, err := glob.Compile(p)
		if err != nil {
			g = glob.MustCompile(glob.QuoteMeta(p))
		}
		globs = append(globs, g)
	}

	return func(name string) bool {
		lower := strings.ToLower(name)
		for _, g := range globs {
			if g.Match(lower) {
				return false
			}
		}
		return true
	}, nil
}

// AddFilesFromTheme appends the theme's copyable files. Files already in the
// collection are kept; a theme never overrides them. Each added file is
// read from the first theme dir that holds it.
func (fs *Files) AddFilesFromTheme(t *theme.Theme, siteDir string, useDirectoryURLs bool) error {
	keep, err := themeFileFilter(t)
	if err != nil {
		return err
	}
	names, err := t.Env().ListTemplates(keep)
	if err != nil {
		return fmt.Errorf("%w: %w", derrors.ErrThemeFilesFailed, err)
	}

	added := 0
	for _, name := range names {
		if _, exists := fs.Get(name); exists {
			slog.Debug("Theme file shadowed by site file", logfields.SrcURI(name))
			continue
		}
		dir, ok := t.Locate(name)
		if !ok {
			continue
		}
		f := NewFile(name, dir, siteDir, useDirectoryURLs)
		f.Origin = OriginTheme
		fs.Append(f)
		added++
	}

	slog.Debug("Added theme files", logfields.Theme(t.Name), logfields.Count(added))
	return nil
}
