package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docinclude/internal/doclist"
	derrors "git.home.luguber.info/inful/docinclude/internal/errors"
	"git.home.luguber.info/inful/docinclude/internal/logfields"
)

// DefaultFileName is the site configuration looked up when no path is given.
const DefaultFileName = "mkdocs.yml"

// DocsListPlugin is the name of the doc list files hook.
const DocsListPlugin = "docs-list"

// Config represents the site configuration. Keys the tool does not know are
// ignored so an existing site configuration can be used unchanged.
type Config struct {
	SiteName         string         `yaml:"site_name,omitempty"`
	DocsDir          string         `yaml:"docs_dir"`
	SiteDir          string         `yaml:"site_dir"`
	UseDirectoryURLs bool           `yaml:"use_directory_urls"`
	Theme            ThemeConfig    `yaml:"theme"`
	ExcludeDocs      string         `yaml:"exclude_docs,omitempty"` // gitignore-style rules, one per line
	Plugins          PluginList     `yaml:"plugins"`
	DocsList         DocsListConfig `yaml:"docs_list"`

	baseDir string
}

// ThemeConfig selects the theme and where its files live.
type ThemeConfig struct {
	Name            string   `yaml:"name,omitempty"`
	CustomDir       string   `yaml:"custom_dir,omitempty"`
	ThemesDir       string   `yaml:"themes_dir,omitempty"` // parent of named theme dirs
	StaticTemplates []string `yaml:"static_templates,omitempty"`
	Locale          string   `yaml:"locale,omitempty"`
}

// DocsListConfig configures the doc list files hook.
type DocsListConfig struct {
	Path       string                  `yaml:"path"`
	BlankLines doclist.BlankLinePolicy `yaml:"blank_lines"`
}

// Default returns a configuration populated with defaults. Paths are
// relative until Normalize is called.
func Default() *Config {
	return &Config{
		DocsDir:          "docs",
		SiteDir:          "site",
		UseDirectoryURLs: true,
		Theme: ThemeConfig{
			ThemesDir: "themes",
		},
		Plugins: PluginList{DocsListPlugin},
		DocsList: DocsListConfig{
			Path:       doclist.DefaultFileName,
			BlankLines: doclist.BlankLinesSkip,
		},
	}
}

// Load loads configuration from the specified file
func Load(configPath string) (*Config, error) {
	baseDir, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return nil, derrors.ConfigInvalid(configPath, err)
	}

	if loaded, err := loadEnvFile(baseDir); err != nil {
		slog.Debug("No .env file loaded", logfields.Error(err))
	} else {
		slog.Debug("Loaded environment file", logfields.Path(loaded))
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, derrors.ConfigNotFound(configPath, err)
		}
		return nil, derrors.ConfigInvalid(configPath, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, derrors.ConfigInvalid(configPath, err)
	}

	cfg.Normalize(baseDir)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("Loaded configuration",
		logfields.Path(configPath),
		logfields.DocsDir(cfg.DocsDir),
		logfields.SiteDir(cfg.SiteDir))
	return cfg, nil
}

// Parse decodes YAML over the defaults after expanding environment
// variables. The result is not normalized.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// Normalize fills empty values with defaults and resolves every path
// against baseDir.
func (c *Config) Normalize(baseDir string) {
	def := Default()
	c.baseDir = baseDir

	if c.DocsDir == "" {
		c.DocsDir = def.DocsDir
	}
	if c.SiteDir == "" {
		c.SiteDir = def.SiteDir
	}
	if c.Theme.ThemesDir == "" {
		c.Theme.ThemesDir = def.Theme.ThemesDir
	}
	if c.DocsList.Path == "" {
		c.DocsList.Path = def.DocsList.Path
	}
	if c.DocsList.BlankLines == "" {
		c.DocsList.BlankLines = def.DocsList.BlankLines
	}

	c.DocsDir = resolve(baseDir, c.DocsDir)
	c.SiteDir = resolve(baseDir, c.SiteDir)
	c.Theme.ThemesDir = resolve(baseDir, c.Theme.ThemesDir)
	if c.Theme.CustomDir != "" {
		c.Theme.CustomDir = resolve(baseDir, c.Theme.CustomDir)
	}
	c.DocsList.Path = resolve(baseDir, c.DocsList.Path)
}

// BaseDir returns the directory relative paths were resolved against.
func (c *Config) BaseDir() string { return c.baseDir }

func resolve(baseDir, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(baseDir, p)
}
