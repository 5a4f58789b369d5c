package config

import (
	"path/filepath"
	"strconv"
	"strings"

	derrors "git.home.luguber.info/inful/docinclude/internal/errors"
)

// Validate checks a normalized configuration.
func (c *Config) Validate() error {
	if c.DocsDir == c.SiteDir {
		return derrors.ValidationFailed("site_dir", "must differ from docs_dir")
	}
	if isWithin(c.SiteDir, c.DocsDir) {
		return derrors.ValidationFailed("site_dir", "must not be inside docs_dir")
	}
	if !c.DocsList.BlankLines.IsValid() {
		return derrors.ValidationFailed("docs_list.blank_lines", "must be one of skip, reject")
	}
	for i, name := range c.Plugins {
		if strings.TrimSpace(name) == "" {
			return derrors.ValidationFailed("plugins", "entry "+strconv.Itoa(i)+" is empty")
		}
	}
	return nil
}

// isWithin reports whether child lies below parent.
func isWithin(child, parent string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
