package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"git.home.luguber.info/inful/docinclude/internal/logfields"
)

// CLIErrorAdapter handles error presentation and exit code determination for CLI applications.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
	stderr  io.Writer
	exit    func(int)
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
		stderr:  os.Stderr,
		exit:    os.Exit,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	if die, ok := As(err); ok {
		return a.exitCodeFromDocInclude(die)
	}

	return 1
}

// exitCodeFromDocInclude maps DocIncludeError to exit codes.
func (a *CLIErrorAdapter) exitCodeFromDocInclude(err *DocIncludeError) int {
	switch err.Category {
	case CategoryValidation:
		return 2 // Invalid usage
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryFileSystem, CategoryPattern, CategoryTheme:
		return 11 // Input error
	case CategoryPlugin:
		return 12 // Hook error
	case CategoryInternal:
		return 10 // Internal error
	default:
		return 1 // General error
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	if die, ok := As(err); ok {
		return a.formatDocInclude(die)
	}

	return fmt.Sprintf("Error: %v", err)
}

// formatDocInclude formats a DocIncludeError for display.
func (a *CLIErrorAdapter) formatDocInclude(err *DocIncludeError) string {
	if a.verbose {
		return err.Error()
	}

	msg := err.Message
	if err.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, err.Cause)
	}

	switch err.Category {
	case CategoryConfig, CategoryValidation:
		return msg
	default:
		return fmt.Sprintf("%s: %s", err.Category, msg)
	}
}

// HandleError processes an error and exits the program with appropriate code.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}

	exitCode := a.ExitCodeFor(err)
	message := a.FormatError(err)

	if a.verbose {
		a.logError(err)
	}

	_, _ = color.New(color.FgRed).Fprintln(a.stderr, message)
	a.exit(exitCode)
}

// logError logs an error with appropriate level and context.
func (a *CLIErrorAdapter) logError(err error) {
	if die, ok := As(err); ok {
		level := slogLevelFromSeverity(die.Severity)
		attrs := []slog.Attr{
			logfields.Category(string(die.Category)),
		}
		for k, v := range die.Context {
			attrs = append(attrs, slog.Any(k, v))
		}

		a.logger.LogAttrs(context.Background(), level, die.Message, attrs...)
		return
	}

	a.logger.Error("Unclassified error", logfields.Error(err))
}

// slogLevelFromSeverity converts DocIncludeError severity to slog level.
func slogLevelFromSeverity(severity ErrorSeverity) slog.Level {
	switch severity {
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
