package plugin

import (
	"git.home.luguber.info/inful/docinclude/internal/config"
	"git.home.luguber.info/inful/docinclude/internal/theme"
)

// Site is the configuration bundle handed to every hook. Paths are
// absolute.
type Site struct {
	BaseDir          string
	DocsDir          string
	SiteDir          string
	UseDirectoryURLs bool
	Theme            *theme.Theme
	Config           *config.Config
}

// NewSite builds the bundle from a normalized configuration.
func NewSite(cfg *config.Config, t *theme.Theme) *Site {
	return &Site{
		BaseDir:          cfg.BaseDir(),
		DocsDir:          cfg.DocsDir,
		SiteDir:          cfg.SiteDir,
		UseDirectoryURLs: cfg.UseDirectoryURLs,
		Theme:            t,
		Config:           cfg,
	}
}
