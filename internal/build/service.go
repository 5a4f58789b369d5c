package build

import (
	"context"
	"time"

	"git.home.luguber.info/inful/docinclude/internal/config"
	"git.home.luguber.info/inful/docinclude/internal/docs"
	"git.home.luguber.info/inful/docinclude/internal/theme"
)

// BuildService is the interface for assembling a site's file collection.
type BuildService interface {
	// Run executes the pipeline: theme -> discover -> theme files -> hooks.
	Run(ctx context.Context, cfg *config.Config) (*BuildResult, error)
}

// BuildResult contains the outcome of a run.
type BuildResult struct {
	Status BuildStatus

	// RunID identifies the run on every log line it emits.
	RunID string

	// Files is the final collection; nil when the run failed.
	Files *docs.Files

	// Theme is the resolved theme.
	Theme *theme.Theme

	// HooksRun lists the hooks that ran, in order.
	HooksRun []string

	// HooksSkipped lists configured plugin names with no registered hook.
	HooksSkipped []string

	Duration  time.Duration
	StartTime time.Time
	EndTime   time.Time
}

// BuildStatus represents the outcome of a run.
type BuildStatus string

const (
	// BuildStatusSuccess indicates the run completed successfully.
	BuildStatusSuccess BuildStatus = "success"

	// BuildStatusFailed indicates the run encountered an error.
	BuildStatusFailed BuildStatus = "failed"

	// BuildStatusCancelled indicates the run was cancelled.
	BuildStatusCancelled BuildStatus = "cancelled"
)

// IsTerminal returns true if the status represents a final state.
func (s BuildStatus) IsTerminal() bool {
	return s == BuildStatusSuccess || s == BuildStatusFailed || s == BuildStatusCancelled
}

// IsSuccess returns true if the run completed successfully.
func (s BuildStatus) IsSuccess() bool {
	return s == BuildStatusSuccess
}
