// Package testutil provides helpers for tests that need a site project on
// disk: docs, a theme, a doc list and a site configuration.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docinclude/internal/config"
	"git.home.luguber.info/inful/docinclude/internal/doclist"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// Project is a fluent builder for a site project in a temp dir.
type Project struct {
	t      testing.TB
	dir    string
	config *config.Config
}

// NewProject creates a project in a fresh temp dir with the default
// configuration.
func NewProject(t testing.TB) *Project {
	t.Helper()
	return &Project{t: t, dir: t.TempDir(), config: config.Default()}
}

// Dir returns the project root, which is also the base dir.
func (p *Project) Dir() string { return p.dir }

// Path joins slash-separated rel onto the project root.
func (p *Project) Path(rel string) string {
	return filepath.Join(p.dir, filepath.FromSlash(rel))
}

// ConfigPath is where Save writes the site configuration.
func (p *Project) ConfigPath() string { return p.Path(config.DefaultFileName) }

// WithFile writes a file relative to the project root.
func (p *Project) WithFile(rel, content string) *Project {
	p.t.Helper()
	WriteFile(p.t, p.Path(rel), content)
	return p
}

// WithDocs writes empty files below docs_dir.
func (p *Project) WithDocs(names ...string) *Project {
	p.t.Helper()
	for _, n := range names {
		p.WithFile(p.config.DocsDir+"/"+n, "")
	}
	return p
}

// WithTheme selects a theme and writes its files below themes_dir.
func (p *Project) WithTheme(name string, files ...string) *Project {
	p.t.Helper()
	p.config.Theme.Name = name
	for _, f := range files {
		p.WithFile(p.config.Theme.ThemesDir+"/"+name+"/"+f, "")
	}
	return p
}

// WithDocList writes the doc list, one line per argument.
func (p *Project) WithDocList(lines ...string) *Project {
	p.t.Helper()
	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	return p.WithFile(doclist.DefaultFileName, content)
}

// WithPlugins replaces the configured plugin list.
func (p *Project) WithPlugins(names ...string) *Project {
	p.config.Plugins = append(config.PluginList{}, names...)
	return p
}

// WithBlankLines sets the doc list blank-line policy.
func (p *Project) WithBlankLines(policy doclist.BlankLinePolicy) *Project {
	p.config.DocsList.BlankLines = policy
	return p
}

// Save writes the site configuration and returns its path.
func (p *Project) Save() string {
	p.t.Helper()
	data, err := yaml.Marshal(p.config)
	if err != nil {
		p.t.Fatalf("marshal config: %v", err)
	}
	WriteFile(p.t, p.ConfigPath(), string(data))
	return p.ConfigPath()
}

// Load saves and loads the configuration the way the CLI does.
func (p *Project) Load() *config.Config {
	p.t.Helper()
	cfg, err := config.Load(p.Save())
	if err != nil {
		p.t.Fatalf("load config: %v", err)
	}
	return cfg
}
