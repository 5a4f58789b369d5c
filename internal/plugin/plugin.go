// Package plugin provides the hook system the build pipeline runs over the
// site's file collection. Hooks are registered explicitly on a Registry and
// run in the order the site configuration lists them.
package plugin

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/docinclude/internal/docs"
)

// Plugin represents a docinclude plugin with metadata and validation.
type Plugin interface {
	// Metadata returns the plugin's metadata (name, version, type).
	Metadata() PluginMetadata

	// Validate checks if the plugin can run against the given site.
	Validate(site *Site) error
}

// FilesHook is a plugin that may replace or edit the site's file
// collection. The returned collection is handed to the next hook.
type FilesHook interface {
	Plugin

	OnFiles(ctx context.Context, files *docs.Files, site *Site) (*docs.Files, error)
}

// PluginLifecycle extends Plugin with optional lifecycle hooks.
type PluginLifecycle interface {
	Plugin

	// Init is called once before the plugin first runs.
	Init() error

	// Cleanup is called after the build finished, also on failure.
	Cleanup() error
}

// PluginMetadata describes a plugin's identity.
type PluginMetadata struct {
	// Name is the identifier used in the site configuration's plugins list.
	Name string

	// Version is the semantic version (e.g., "v1.0.0").
	Version string

	Type PluginType

	Description string
}

// String returns a human-readable representation of the plugin metadata.
func (m PluginMetadata) String() string {
	return fmt.Sprintf("%s@%s (%s)", m.Name, m.Version, m.Type)
}

// Validate checks if the plugin metadata is valid.
func (m PluginMetadata) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("plugin name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("plugin version is required")
	}
	if !m.Type.IsValid() {
		return fmt.Errorf("invalid plugin type: %s", m.Type)
	}
	return nil
}

// BasePlugin provides default implementations for the optional methods.
// Plugins can embed this to avoid implementing them.
type BasePlugin struct{}

func (b *BasePlugin) Init() error { return nil }

func (b *BasePlugin) Cleanup() error { return nil }

// Validate is a no-op default implementation that accepts any site.
func (b *BasePlugin) Validate(*Site) error { return nil }
