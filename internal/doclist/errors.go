package doclist

import "errors"

var (
	// ErrListNotFound indicates the doc list file does not exist.
	ErrListNotFound = errors.New("doc list not found")

	// ErrListRead indicates the doc list file exists but could not be read.
	ErrListRead = errors.New("doc list read failed")

	// ErrBlankEntry indicates a blank line under the reject policy.
	ErrBlankEntry = errors.New("blank doc list entry")

	// ErrUnknownPolicy indicates an unrecognized blank line policy.
	ErrUnknownPolicy = errors.New("unknown blank line policy")
)
