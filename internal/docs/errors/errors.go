// Package errors provides sentinel errors for site file operations.
// These enable consistent classification of docs stage failures.
package errors

import "errors"

var (
	// ErrDocsDirNotFound indicates the configured docs_dir does not exist.
	ErrDocsDirNotFound = errors.New("docs directory not found")

	// ErrDocsDirWalkFailed indicates filesystem traversal of the docs directory failed.
	ErrDocsDirWalkFailed = errors.New("documentation directory walk failed")

	// ErrThemeFilesFailed indicates listing the files of the active theme failed.
	ErrThemeFilesFailed = errors.New("theme file listing failed")

	// ErrInvalidRelativePath indicates calculating a path relative to docs_dir failed.
	ErrInvalidRelativePath = errors.New("invalid relative path calculation")
)
