package theme

import "errors"

var (
	// ErrThemeNotFound indicates a configured theme directory does not exist.
	ErrThemeNotFound = errors.New("theme not found")

	// ErrThemeConfig indicates mkdocs_theme.yml could not be read or decoded.
	ErrThemeConfig = errors.New("invalid theme configuration")

	// ErrThemeCycle indicates themes extending each other in a loop.
	ErrThemeCycle = errors.New("theme inheritance cycle")
)
