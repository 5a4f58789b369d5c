// Package docs models the files that make up a site: where each one is read
// from, where it is written to and the URL it is served at.
package docs

import (
	"net/url"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// Origin records where a file entered the collection from.
type Origin string

const (
	OriginDocs  Origin = "docs"
	OriginTheme Origin = "theme"
)

var (
	markdownExts   = []string{".md", ".markdown", ".mdown", ".mkdn", ".mkd"}
	staticPageExts = []string{".html", ".htm", ".xml", ".json"}
	javascriptExts = []string{".js", ".javascript", ".mjs"}
	cssExts        = []string{".css"}
)

// File describes one site file. Name, DestURI and URL are derived from the
// other fields by NewFile.
type File struct {
	SrcURI           string // slash-separated, relative to SrcDir
	SrcDir           string
	DestDir          string
	UseDirectoryURLs bool
	Origin           Origin

	Name    string // stem, README becomes index
	DestURI string // slash-separated, relative to DestDir
	URL     string // percent-escaped, relative to the site root
}

// NewFile derives a descriptor for srcPath, given relative to srcDir in
// either separator style.
func NewFile(srcPath, srcDir, destDir string, useDirectoryURLs bool) *File {
	f := &File{
		SrcURI:           path.Clean(filepath.ToSlash(srcPath)),
		SrcDir:           srcDir,
		DestDir:          destDir,
		UseDirectoryURLs: useDirectoryURLs,
		Origin:           OriginDocs,
	}
	f.Name = f.stem()
	f.DestURI = f.destURI()
	f.URL = f.url()
	return f
}

func (f *File) ext() string {
	return strings.ToLower(path.Ext(f.SrcURI))
}

func (f *File) stem() string {
	base := path.Base(f.SrcURI)
	stem := strings.TrimSuffix(base, path.Ext(base))
	if stem == "README" {
		return "index"
	}
	return stem
}

func (f *File) destURI() string {
	if !f.IsDocumentationPage() {
		return f.SrcURI
	}
	parent := path.Dir(f.SrcURI)
	if !f.UseDirectoryURLs || f.Name == "index" {
		return path.Join(parent, f.Name+".html")
	}
	return path.Join(parent, f.Name, "index.html")
}

func (f *File) url() string {
	u := f.DestURI
	dir, file := path.Split(u)
	if f.UseDirectoryURLs && file == "index.html" {
		if dir == "" {
			dir = "./"
		}
		u = dir
	}
	return escapePath(u)
}

func escapePath(p string) string {
	segs := strings.Split(p, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}

// AbsSrcPath is the file's location on disk.
func (f *File) AbsSrcPath() string {
	return filepath.Join(f.SrcDir, filepath.FromSlash(f.SrcURI))
}

// AbsDestPath is where the file is written in the built site.
func (f *File) AbsDestPath() string {
	return filepath.Join(f.DestDir, filepath.FromSlash(f.DestURI))
}

// IsDocumentationPage reports whether the file is a markdown page.
func (f *File) IsDocumentationPage() bool { return slices.Contains(markdownExts, f.ext()) }

// IsStaticPage reports whether the file is copied as a standalone page.
func (f *File) IsStaticPage() bool { return slices.Contains(staticPageExts, f.ext()) }

// IsMediaFile reports whether the file is neither a page nor a static page.
func (f *File) IsMediaFile() bool { return !f.IsDocumentationPage() && !f.IsStaticPage() }

func (f *File) IsJavaScript() bool { return slices.Contains(javascriptExts, f.ext()) }

func (f *File) IsCSS() bool { return slices.Contains(cssExts, f.ext()) }

// URLRelativeTo returns f's URL relative to the page other is served at.
func (f *File) URLRelativeTo(other *File) string {
	return RelativeURL(f.URL, other.URL)
}
