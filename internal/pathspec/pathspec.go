// Package pathspec compiles gitignore-style rule files and evaluates them
// against relative paths and directory trees.
//
// Rules follow gitignore semantics: later rules override earlier ones, a
// leading "!" re-includes, a trailing "/" only matches directories (and so
// everything below them), a rule containing "/" is anchored at the root and
// "**" spans any number of directories. Blank lines and "#" comments are
// ignored. Matching is delegated to go-git's gitignore implementation.
package pathspec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"git.home.luguber.info/inful/docinclude/internal/logfields"
	"git.home.luguber.info/inful/docinclude/internal/util/fswalk"
)

// Rule is one compiled line of a spec.
type Rule struct {
	Line    int    // 1-based line number in the source
	Text    string // the rule as written, without trailing CR
	Negated bool   // "!"-prefixed re-include rule
}

// Spec is an ordered, immutable set of gitignore-style rules.
type Spec struct {
	rules   []Rule
	matcher gitignore.Matcher
}

// FromLines compiles a spec from individual lines.
func FromLines(lines ...string) *Spec {
	rules := make([]Rule, 0, len(lines))
	patterns := make([]gitignore.Pattern, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if isSkippable(line) {
			continue
		}
		rules = append(rules, Rule{
			Line:    i + 1,
			Text:    line,
			Negated: strings.HasPrefix(line, "!"),
		})
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	return &Spec{rules: rules, matcher: gitignore.NewMatcher(patterns)}
}

// Parse compiles a spec from r.
func Parse(r io.Reader) (*Spec, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return FromLines(lines...), nil
}

// Load reads and compiles the spec file at path.
func Load(path string) (*Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrSpecNotFound, path, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrSpecRead, path, err)
	}
	defer func() { _ = f.Close() }()

	spec, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSpecRead, path, err)
	}
	slog.Debug("Compiled pattern spec", logfields.Path(path), logfields.Count(spec.Len()))
	return spec, nil
}

// isSkippable mirrors gitignore: comments and whitespace-only lines carry no rule.
func isSkippable(line string) bool {
	return strings.HasPrefix(line, "#") || strings.TrimSpace(line) == ""
}

// Rules returns a copy of the compiled rules in source order.
func (s *Spec) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Len returns the number of effective rules.
func (s *Spec) Len() int { return len(s.rules) }

// Match reports whether the slash-separated relative path is selected by the
// spec. The last rule that applies decides.
func (s *Spec) Match(rel string, isDir bool) bool {
	rel = strings.Trim(rel, "/")
	if rel == "" || rel == "." {
		return false
	}
	return s.matcher.Match(strings.Split(rel, "/"), isDir)
}

// MatchFiles returns the file paths selected by the spec, preserving order.
func (s *Spec) MatchFiles(paths []string) []string {
	var out []string
	for _, p := range paths {
		if s.Match(p, false) {
			out = append(out, p)
		}
	}
	return out
}

// MatchTree walks fsys and returns every non-directory entry the spec
// selects. Directories are never pruned since a later rule may re-include
// something below an excluded directory. Symbolic links are followed: the
// files below a linked directory are listed under the link's path, and a
// link loop is entered only once.
func (s *Spec) MatchTree(fsys billy.Filesystem) ([]string, error) {
	var matches []string
	err := fswalk.Walk(fsys, func(rel string, info os.FileInfo) error {
		if info.IsDir() {
			return nil
		}
		if s.Match(rel, false) {
			matches = append(matches, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTreeWalk, err)
	}
	return matches, nil
}
