package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath     = "path"
	KeyTarget   = "target"
	KeyPattern  = "pattern"
	KeyLine     = "line"
	KeyCount    = "count"
	KeyDocsDir  = "docs_dir"
	KeySiteDir  = "site_dir"
	KeyTheme    = "theme"
	KeyPlugin   = "plugin"
	KeyStage    = "stage"
	KeySrcURI   = "src_uri"
	KeyDestURI  = "dest_uri"
	KeyError    = "error"
	KeyCategory = "category"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr      { return slog.String(KeyPath, p) }
func Target(p string) slog.Attr    { return slog.String(KeyTarget, p) }
func Pattern(p string) slog.Attr   { return slog.String(KeyPattern, p) }
func Line(n int) slog.Attr         { return slog.Int(KeyLine, n) }
func Count(n int) slog.Attr        { return slog.Int(KeyCount, n) }
func DocsDir(d string) slog.Attr   { return slog.String(KeyDocsDir, d) }
func SiteDir(d string) slog.Attr   { return slog.String(KeySiteDir, d) }
func Theme(name string) slog.Attr  { return slog.String(KeyTheme, name) }
func Plugin(name string) slog.Attr { return slog.String(KeyPlugin, name) }
func Stage(name string) slog.Attr  { return slog.String(KeyStage, name) }
func SrcURI(u string) slog.Attr    { return slog.String(KeySrcURI, u) }
func DestURI(u string) slog.Attr   { return slog.String(KeyDestURI, u) }
func Category(c string) slog.Attr  { return slog.String(KeyCategory, c) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
