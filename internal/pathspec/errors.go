package pathspec

import "errors"

var (
	// ErrSpecNotFound indicates the pattern spec file does not exist.
	ErrSpecNotFound = errors.New("pattern spec not found")

	// ErrSpecRead indicates the pattern spec file exists but could not be read.
	ErrSpecRead = errors.New("pattern spec read failed")

	// ErrTreeWalk indicates traversal of the matched tree failed.
	ErrTreeWalk = errors.New("pattern tree walk failed")
)
