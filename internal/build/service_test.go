package build

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docinclude/internal/config"
	"git.home.luguber.info/inful/docinclude/internal/doclist"
	"git.home.luguber.info/inful/docinclude/internal/docs"
	derrors "git.home.luguber.info/inful/docinclude/internal/errors"
	"git.home.luguber.info/inful/docinclude/internal/plugin"
	"git.home.luguber.info/inful/docinclude/internal/testutil"
)

// newProject lays out docs/, a theme and a docs-list and returns the
// loaded configuration for it.
func newProject(t *testing.T, list string) *config.Config {
	t.Helper()
	return testutil.NewProject(t).
		WithDocs("index.md", "guide.md", "extra.md").
		WithTheme("handbook", "css/base.css", "main.html").
		WithFile(doclist.DefaultFileName, list).
		Load()
}

// recordingHook appends a marker file and records that it ran.
type recordingHook struct {
	plugin.BasePlugin
	name  string
	calls *[]string
	err   error
}

func (h *recordingHook) Metadata() plugin.PluginMetadata {
	return plugin.PluginMetadata{Name: h.name, Version: "v0.0.1", Type: plugin.PluginTypeFiles}
}

func (h *recordingHook) OnFiles(_ context.Context, files *docs.Files, site *plugin.Site) (*docs.Files, error) {
	*h.calls = append(*h.calls, h.name)
	if h.err != nil {
		return nil, h.err
	}
	files.Append(docs.NewFile(h.name+".md", site.DocsDir, site.SiteDir, site.UseDirectoryURLs))
	return files, nil
}

func TestBuildStatus_IsSuccess(t *testing.T) {
	tests := []struct {
		status   BuildStatus
		expected bool
	}{
		{BuildStatusSuccess, true},
		{BuildStatusFailed, false},
		{BuildStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.IsSuccess())
			assert.True(t, tt.status.IsTerminal())
		})
	}
}

func TestDefaultBuildService_Run_NilConfig(t *testing.T) {
	result, err := NewBuildService(nil).Run(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, BuildStatusFailed, result.Status)
	assert.True(t, derrors.IsCategory(err, derrors.CategoryInternal))
}

func TestDefaultBuildService_Run_DocsList(t *testing.T) {
	cfg := newProject(t, "# order matters\ndocs/guide.md\ndocs/index.md\n")

	result, err := NewBuildService(nil).Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, BuildStatusSuccess, result.Status)
	assert.Equal(t, []string{"docs-list"}, result.HooksRun)
	assert.Equal(t, []string{"guide.md", "index.md", "css/base.css"}, result.Files.SrcURIs())
	assert.Equal(t, "handbook", result.Theme.Name)
	assert.False(t, result.EndTime.Before(result.StartTime))
}

func TestDefaultBuildService_Run_NoHooksKeepsDiscovery(t *testing.T) {
	cfg := newProject(t, "")
	cfg.Plugins = config.PluginList{}

	result, err := NewBuildService(nil).Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"index.md", "extra.md", "guide.md", "css/base.css"}, result.Files.SrcURIs())
	assert.Empty(t, result.HooksRun)
}

func TestDefaultBuildService_Run_UnknownPluginSkipped(t *testing.T) {
	cfg := newProject(t, "docs/index.md\n")
	cfg.Plugins = config.PluginList{"search", "docs-list"}

	result, err := NewBuildService(nil).Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"search"}, result.HooksSkipped)
	assert.Equal(t, []string{"docs-list"}, result.HooksRun)
}

func TestDefaultBuildService_Run_UnknownPluginWarnsWithRegisteredNames(t *testing.T) {
	cfg := newProject(t, "docs/index.md\n")
	cfg.Plugins = config.PluginList{"search"}

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	_, err := NewBuildService(nil).Run(context.Background(), cfg)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Skipping unknown plugin")
	assert.Contains(t, out, "plugin=search")
	assert.Contains(t, out, "registered=[docs-list]")
}

func TestDefaultBuildService_Run_UniqueRunIDs(t *testing.T) {
	cfg := newProject(t, "docs/index.md\n")
	svc := NewBuildService(nil)
	fixed := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	first, err := svc.Run(context.Background(), cfg)
	require.NoError(t, err)
	second, err := svc.Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID)
	assert.True(t, strings.HasPrefix(first.RunID, "20261019-120000-"), first.RunID)
}

func TestDefaultBuildService_Run_HooksInConfigOrder(t *testing.T) {
	cfg := newProject(t, "docs/index.md\n")
	cfg.Plugins = config.PluginList{"second", "docs-list", "first"}

	var calls []string
	registry := DefaultPlugins().MustRegister(
		&recordingHook{name: "first", calls: &calls},
		&recordingHook{name: "second", calls: &calls},
	)

	result, err := NewBuildService(registry).Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"second", "first"}, calls)
	assert.Equal(t, []string{"second", "docs-list", "first"}, result.HooksRun)
	// docs-list replaced the collection second's marker was added to.
	assert.Equal(t, []string{"index.md", "css/base.css", "first.md"}, result.Files.SrcURIs())
}

func TestDefaultBuildService_Run_HookFailure(t *testing.T) {
	cfg := newProject(t, "")
	cfg.Plugins = config.PluginList{"broken"}

	var calls []string
	boom := errors.New("boom")
	registry := plugin.NewRegistry().MustRegister(&recordingHook{name: "broken", calls: &calls, err: boom})

	result, err := NewBuildService(registry).Run(context.Background(), cfg)
	require.Error(t, err)
	assert.Equal(t, BuildStatusFailed, result.Status)
	assert.Nil(t, result.Files)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, ErrHook)
	assert.True(t, derrors.IsCategory(err, derrors.CategoryPlugin))

	var perr *plugin.PluginError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "on_files", perr.Operation)
}

func TestDefaultBuildService_Run_MissingDocsList(t *testing.T) {
	cfg := newProject(t, "")
	require.NoError(t, os.Remove(cfg.DocsList.Path))

	_, err := NewBuildService(nil).Run(context.Background(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, doclist.ErrListNotFound)
	assert.True(t, derrors.IsCategory(err, derrors.CategoryPlugin))
}

func TestDefaultBuildService_Run_MissingDocsDir(t *testing.T) {
	cfg := newProject(t, "")
	cfg.DocsDir = filepath.Join(cfg.BaseDir(), "nope")

	_, err := NewBuildService(nil).Run(context.Background(), cfg)
	require.ErrorIs(t, err, ErrDiscovery)
	assert.True(t, derrors.IsCategory(err, derrors.CategoryFileSystem))
}

func TestDefaultBuildService_Run_MissingTheme(t *testing.T) {
	cfg := newProject(t, "")
	cfg.Theme.Name = "does-not-exist"

	_, err := NewBuildService(nil).Run(context.Background(), cfg)
	require.ErrorIs(t, err, ErrTheme)
	assert.True(t, derrors.IsCategory(err, derrors.CategoryTheme))
}

func TestDefaultBuildService_Run_Cancelled(t *testing.T) {
	cfg := newProject(t, "docs/index.md\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := NewBuildService(nil).Run(ctx, cfg)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, BuildStatusCancelled, result.Status)
}
