package errors

import (
	"bytes"
	stdErrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"testing"
)

func TestDocIncludeError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *DocIncludeError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(CategoryConfig, SeverityFatal, "configuration invalid"),
			expected: "config (fatal): configuration invalid",
		},
		{
			name:     "error with cause",
			err:      Wrap(fmt.Errorf("file not found"), CategoryConfig, SeverityFatal, "failed to load config"),
			expected: "config (fatal): failed to load config: file not found",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := test.err.Error()
			if result != test.expected {
				t.Errorf("Error() = %q, want %q", result, test.expected)
			}
		})
	}
}

func TestDocIncludeError_WithContext(t *testing.T) {
	err := New(CategoryPattern, SeverityWarning, "bad spec").
		WithContext("path", ".docinclude").
		WithContext("line", 3)

	if err.Context == nil {
		t.Fatal("Context should not be nil")
	}
	if err.Context["path"] != ".docinclude" {
		t.Errorf("Context[path] = %v, want .docinclude", err.Context["path"])
	}
	if err.Context["line"] != 3 {
		t.Errorf("Context[line] = %v, want 3", err.Context["line"])
	}
}

func TestIsCategory(t *testing.T) {
	configErr := New(CategoryConfig, SeverityFatal, "config error")
	themeErr := New(CategoryTheme, SeverityWarning, "theme error")
	wrapped := fmt.Errorf("outer: %w", themeErr)
	standardErr := fmt.Errorf("standard error")

	tests := []struct {
		name     string
		err      error
		category ErrorCategory
		expected bool
	}{
		{"config error matches config category", configErr, CategoryConfig, true},
		{"config error doesn't match theme category", configErr, CategoryTheme, false},
		{"theme error matches theme category", themeErr, CategoryTheme, true},
		{"wrapped theme error still matches", wrapped, CategoryTheme, true},
		{"standard error doesn't match any category", standardErr, CategoryConfig, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsCategory(test.err, test.category)
			if result != test.expected {
				t.Errorf("IsCategory() = %v, want %v", result, test.expected)
			}
		})
	}
}

func TestGetCategory(t *testing.T) {
	if got := GetCategory(PluginFailed("docs-list", fs.ErrNotExist)); got != CategoryPlugin {
		t.Errorf("GetCategory() = %v, want %v", got, CategoryPlugin)
	}
	if got := GetCategory(fmt.Errorf("plain")); got != CategoryInternal {
		t.Errorf("GetCategory() = %v, want %v", got, CategoryInternal)
	}
}

func TestConstructorsPreserveCause(t *testing.T) {
	err := InputFileError("doc list", "docs-list", fs.ErrNotExist)
	if !stdErrors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected cause to be reachable via errors.Is")
	}
	if err.Context["path"] != "docs-list" {
		t.Errorf("Context[path] = %v, want docs-list", err.Context["path"])
	}
}

func TestCLIErrorAdapter_ExitCodes(t *testing.T) {
	a := NewCLIErrorAdapter(false, nil)

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"nil", nil, 0},
		{"plain", fmt.Errorf("x"), 1},
		{"validation", ValidationFailed("docs_dir", "empty"), 2},
		{"config", ConfigNotFound("mkdocs.yml", fs.ErrNotExist), 7},
		{"filesystem", InputFileError("doc list", "docs-list", fs.ErrNotExist), 11},
		{"pattern", PatternError(".docinclude", fs.ErrNotExist), 11},
		{"theme", ThemeError("mkdocs", fs.ErrNotExist), 11},
		{"plugin", PluginFailed("docs-list", fs.ErrNotExist), 12},
		{"internal", InternalError("boom", nil), 10},
		{"wrapped", fmt.Errorf("ctx: %w", PluginFailed("docs-list", nil)), 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.ExitCodeFor(tc.err); got != tc.code {
				t.Errorf("ExitCodeFor() = %d, want %d", got, tc.code)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	quiet := NewCLIErrorAdapter(false, nil)
	verbose := NewCLIErrorAdapter(true, nil)

	cfgErr := ValidationFailed("docs_dir", "must differ from site_dir")
	if got := quiet.FormatError(cfgErr); got != "validation failed: docs_dir: must differ from site_dir" {
		t.Errorf("quiet FormatError() = %q", got)
	}

	fsErr := InputFileError("doc list", "docs-list", fmt.Errorf("missing"))
	if got := quiet.FormatError(fsErr); got != "filesystem: doc list unreadable: missing" {
		t.Errorf("quiet FormatError() = %q", got)
	}
	if got := verbose.FormatError(fsErr); got != fsErr.Error() {
		t.Errorf("verbose FormatError() = %q", got)
	}
	if got := quiet.FormatError(fmt.Errorf("plain")); got != "Error: plain" {
		t.Errorf("plain FormatError() = %q", got)
	}
	if got := quiet.FormatError(nil); got != "" {
		t.Errorf("nil FormatError() = %q", got)
	}
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var logBuf, errBuf bytes.Buffer
	a := NewCLIErrorAdapter(true, slog.New(slog.NewTextHandler(&logBuf, nil)))
	a.stderr = &errBuf
	code := -1
	a.exit = func(c int) { code = c }

	a.HandleError(PatternError(".docinclude", fs.ErrNotExist))

	if code != 11 {
		t.Fatalf("exit code = %d, want 11", code)
	}
	if errBuf.Len() == 0 {
		t.Fatal("expected message on stderr")
	}
	if !bytes.Contains(logBuf.Bytes(), []byte("category=pattern")) {
		t.Fatalf("expected category in log output, got %q", logBuf.String())
	}

	code = -1
	a.HandleError(nil)
	if code != -1 {
		t.Fatal("nil error must not exit")
	}
}
