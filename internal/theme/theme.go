// Package theme resolves the active site theme: the directories its files
// live in, the templates it renders as standalone pages and its locale.
package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docinclude/internal/config"
	"git.home.luguber.info/inful/docinclude/internal/logfields"
)

// ManifestFileName is the per-theme configuration file.
const ManifestFileName = "mkdocs_theme.yml"

// Theme is a resolved theme. Dirs are searched in order; earlier dirs
// shadow later ones.
type Theme struct {
	Name            string
	Dirs            []string
	StaticTemplates []string
	Locale          string
}

type manifest struct {
	Extends         string   `yaml:"extends"`
	StaticTemplates []string `yaml:"static_templates"`
	Locale          string   `yaml:"locale"`
}

// Load resolves a theme from its configuration. A theme without name and
// custom dir has no directories and contributes no files.
func Load(cfg config.ThemeConfig) (*Theme, error) {
	t := &Theme{Name: cfg.Name}

	if cfg.CustomDir != "" {
		if err := requireDir(cfg.CustomDir); err != nil {
			return nil, err
		}
		t.Dirs = append(t.Dirs, cfg.CustomDir)
	}

	if cfg.Name != "" {
		if err := t.loadNamed(cfg.Name, cfg.ThemesDir, map[string]bool{}); err != nil {
			return nil, err
		}
	}

	t.StaticTemplates = appendUnique(t.StaticTemplates, cfg.StaticTemplates...)
	if cfg.Locale != "" {
		t.Locale = cfg.Locale
	}

	slog.Debug("Loaded theme",
		logfields.Theme(t.Name),
		slog.Any("dirs", t.Dirs),
		slog.Any("static_templates", t.StaticTemplates))
	return t, nil
}

// loadNamed appends the named theme dir and, through "extends", its parents.
// Settings of a child theme win over its parent's.
func (t *Theme) loadNamed(name, themesDir string, seen map[string]bool) error {
	if seen[name] {
		return fmt.Errorf("%w: %s", ErrThemeCycle, name)
	}
	seen[name] = true

	dir := filepath.Join(themesDir, name)
	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
	case err == nil || errors.Is(err, fs.ErrNotExist):
		d, ok := LookupDefaults(name)
		if !ok {
			return fmt.Errorf("%w: %s (looked in %s)", ErrThemeNotFound, name, themesDir)
		}
		slog.Debug("Using built-in theme defaults", logfields.Theme(name))
		t.StaticTemplates = appendUnique(t.StaticTemplates, d.StaticTemplates...)
		if t.Locale == "" {
			t.Locale = d.Locale
		}
		return nil
	default:
		return fmt.Errorf("stat theme dir %s: %w", dir, err)
	}
	t.Dirs = append(t.Dirs, dir)

	m, ok, err := readManifest(dir)
	if err != nil {
		return err
	}
	if !ok {
		if d, found := LookupDefaults(name); found {
			m = manifest{StaticTemplates: d.StaticTemplates, Locale: d.Locale}
		}
	}
	t.StaticTemplates = appendUnique(t.StaticTemplates, m.StaticTemplates...)
	if t.Locale == "" {
		t.Locale = m.Locale
	}

	if m.Extends != "" {
		return t.loadNamed(m.Extends, themesDir, seen)
	}
	return nil
}

func readManifest(dir string) (manifest, bool, error) {
	var m manifest
	path := filepath.Join(dir, ManifestFileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return m, false, nil
	}
	if err != nil {
		return m, false, fmt.Errorf("%w: %s: %w", ErrThemeConfig, path, err)
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, false, fmt.Errorf("%w: %s: %w", ErrThemeConfig, path, err)
	}
	return m, true, nil
}

func requireDir(dir string) error {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.IsDir()) {
		return fmt.Errorf("%w: %s", ErrThemeNotFound, dir)
	}
	if err != nil {
		return fmt.Errorf("stat theme dir %s: %w", dir, err)
	}
	return nil
}

func appendUnique(dst []string, vals ...string) []string {
	for _, v := range vals {
		if !slices.Contains(dst, v) {
			dst = append(dst, v)
		}
	}
	return dst
}

// Env returns the template environment over the theme dirs.
func (t *Theme) Env() *Env {
	return &Env{dirs: t.Dirs}
}

// Locate returns the first theme dir holding a file called name
// (slash-separated, relative to the dir).
func (t *Theme) Locate(name string) (string, bool) {
	for _, dir := range t.Dirs {
		info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name)))
		if err == nil && !info.IsDir() {
			return dir, true
		}
	}
	return "", false
}

// IsStaticTemplate reports whether name is rendered as a standalone page.
func (t *Theme) IsStaticTemplate(name string) bool {
	return slices.Contains(t.StaticTemplates, name)
}
