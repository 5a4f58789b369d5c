// Package doclist reads the manually curated list of documentation files.
//
// The list holds one path per line. Lines are trimmed of surrounding
// whitespace; lines then starting with "#" are comments. What happens to
// blank lines is decided by a BlankLinePolicy.
package doclist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"git.home.luguber.info/inful/docinclude/internal/logfields"
)

// DefaultFileName is the list file looked up in the base directory.
const DefaultFileName = "docs-list"

// BlankLinePolicy selects how blank lines are treated.
type BlankLinePolicy string

const (
	// BlankLinesSkip drops blank lines and logs a warning for each one.
	BlankLinesSkip BlankLinePolicy = "skip"
	// BlankLinesReject fails on the first blank line.
	BlankLinesReject BlankLinePolicy = "reject"
)

// IsValid reports whether p is a known policy. The empty policy is valid
// and behaves as BlankLinesSkip.
func (p BlankLinePolicy) IsValid() bool {
	switch p {
	case "", BlankLinesSkip, BlankLinesReject:
		return true
	default:
		return false
	}
}

// Entry is one listed path.
type Entry struct {
	Line int    // 1-based line number in the list file
	Path string // trimmed path as written
}

// Options control parsing.
type Options struct {
	BlankLines BlankLinePolicy
}

// Parse reads entries from r in file order.
func Parse(r io.Reader, opts Options) ([]Entry, error) {
	if !opts.BlankLines.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, opts.BlankLines)
	}

	var entries []Entry
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		if line == "" {
			if opts.BlankLines == BlankLinesReject {
				return nil, fmt.Errorf("%w: line %d", ErrBlankEntry, lineNo)
			}
			slog.Warn("Skipping blank doc list line", logfields.Line(lineNo))
			continue
		}
		entries = append(entries, Entry{Line: lineNo, Path: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListRead, err)
	}
	return entries, nil
}

// Load reads the list file at path.
func Load(path string, opts Options) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrListNotFound, path, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrListRead, path, err)
	}
	defer func() { _ = f.Close() }()

	entries, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("Loaded doc list", logfields.Path(path), logfields.Count(len(entries)))
	return entries, nil
}

// Paths returns the entry paths in order.
func Paths(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Path
	}
	return out
}
