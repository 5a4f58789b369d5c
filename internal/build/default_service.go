package build

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docinclude/internal/config"
	"git.home.luguber.info/inful/docinclude/internal/docs"
	derrors "git.home.luguber.info/inful/docinclude/internal/errors"
	"git.home.luguber.info/inful/docinclude/internal/logfields"
	"git.home.luguber.info/inful/docinclude/internal/observability"
	"git.home.luguber.info/inful/docinclude/internal/plugin"
	"git.home.luguber.info/inful/docinclude/internal/plugin/docslist"
	"git.home.luguber.info/inful/docinclude/internal/theme"
)

// DefaultPlugins returns a registry holding the built-in hooks.
func DefaultPlugins() *plugin.Registry {
	return plugin.NewRegistry().MustRegister(docslist.New())
}

// DefaultBuildService is the standard implementation of BuildService.
type DefaultBuildService struct {
	registry *plugin.Registry
	now      func() time.Time
	newID    func() string
}

// NewBuildService creates a service running hooks from registry. A nil
// registry means DefaultPlugins.
func NewBuildService(registry *plugin.Registry) *DefaultBuildService {
	if registry == nil {
		registry = DefaultPlugins()
	}
	return &DefaultBuildService{registry: registry, now: time.Now, newID: uuid.NewString}
}

var _ BuildService = (*DefaultBuildService)(nil)

// Run executes the complete pipeline.
func (s *DefaultBuildService) Run(ctx context.Context, cfg *config.Config) (*BuildResult, error) {
	startTime := s.now()
	result := &BuildResult{
		StartTime: startTime,
		RunID:     startTime.Format("20060102-150405") + "-" + s.newID(),
	}
	ctx = observability.WithRunID(ctx, result.RunID)

	finish := func(err error) (*BuildResult, error) {
		result.EndTime = s.now()
		result.Duration = result.EndTime.Sub(startTime)
		switch {
		case err == nil:
			result.Status = BuildStatusSuccess
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			result.Status = BuildStatusCancelled
			result.Files = nil
		default:
			result.Status = BuildStatusFailed
			result.Files = nil
		}
		return result, err
	}

	if cfg == nil {
		return finish(derrors.InternalError("config required", nil))
	}

	// Stage 1: theme
	ctx = observability.WithStage(ctx, "theme")
	th, err := theme.Load(cfg.Theme)
	if err != nil {
		return finish(derrors.ThemeError(cfg.Theme.Name, fmt.Errorf("%w: %w", ErrTheme, err)))
	}
	result.Theme = th
	observability.DebugContext(ctx, "Theme loaded", logfields.Theme(th.Name), logfields.Count(len(th.Dirs)))

	if err := ctx.Err(); err != nil {
		return finish(err)
	}

	// Stage 2: discover docs_dir
	ctx = observability.WithStage(ctx, "discover")
	files, err := docs.Discover(docs.DiscoverOptions{
		DocsDir:          cfg.DocsDir,
		SiteDir:          cfg.SiteDir,
		UseDirectoryURLs: cfg.UseDirectoryURLs,
		ExcludeDocs:      cfg.ExcludeDocs,
	})
	if err != nil {
		return finish(derrors.InputFileError("docs dir", cfg.DocsDir, fmt.Errorf("%w: %w", ErrDiscovery, err)))
	}
	if err := files.AddFilesFromTheme(th, cfg.SiteDir, cfg.UseDirectoryURLs); err != nil {
		return finish(derrors.ThemeError(th.Name, fmt.Errorf("%w: %w", ErrTheme, err)))
	}
	observability.DebugContext(ctx, "Discovered files", logfields.Count(files.Len()))

	// Stage 3: hooks
	ctx = observability.WithStage(ctx, "hooks")
	site := plugin.NewSite(cfg, th)
	observability.DebugContext(ctx, "Registered plugins", logfields.Count(s.registry.Count()))
	for _, p := range s.registry.List() {
		observability.DebugContext(ctx, "Registered plugin", logfields.Plugin(p.Metadata().String()))
	}
	files, err = s.runHooks(ctx, cfg.Plugins, files, site, result)
	if err != nil {
		return finish(err)
	}

	result.Files = files
	observability.InfoContext(ctx, "Build complete",
		logfields.Count(files.Len()),
		logfields.Theme(th.Name))
	return finish(nil)
}

func (s *DefaultBuildService) runHooks(
	ctx context.Context,
	names []string,
	files *docs.Files,
	site *plugin.Site,
	result *BuildResult,
) (*docs.Files, error) {
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !s.registry.Has(name) {
			observability.WarnContext(ctx, "Skipping unknown plugin",
				logfields.Plugin(name),
				slog.Any("registered", s.registry.Names()))
			result.HooksSkipped = append(result.HooksSkipped, name)
			continue
		}
		p, err := s.registry.Get(name)
		if err != nil {
			return nil, derrors.InternalError("plugin lookup failed", err)
		}
		hook, ok := p.(plugin.FilesHook)
		if !ok {
			observability.DebugContext(ctx, "Plugin has no files hook", logfields.Plugin(name))
			continue
		}

		hookCtx := observability.WithPlugin(ctx, name)
		files, err = runHook(hookCtx, hook, files, site)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			return nil, derrors.PluginFailed(name, fmt.Errorf("%w: %w", ErrHook, err))
		}
		result.HooksRun = append(result.HooksRun, name)
		observability.DebugContext(hookCtx, "Hook finished", logfields.Count(files.Len()))
	}
	return files, nil
}

func runHook(ctx context.Context, hook plugin.FilesHook, files *docs.Files, site *plugin.Site) (out *docs.Files, err error) {
	name := hook.Metadata().Name

	if err := hook.Validate(site); err != nil {
		return nil, plugin.NewPluginError(name, "validate", err)
	}

	if lc, ok := hook.(plugin.PluginLifecycle); ok {
		if err := lc.Init(); err != nil {
			return nil, plugin.NewPluginError(name, "init", err)
		}
		defer func() {
			if cerr := lc.Cleanup(); cerr != nil && err == nil {
				err = plugin.NewPluginError(name, "cleanup", cerr)
			}
		}()
	}

	out, err = hook.OnFiles(ctx, files, site)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, plugin.NewPluginError(name, "on_files", err)
	}
	if out == nil {
		out = files
	}
	return out, nil
}
