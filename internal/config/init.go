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
	"git.home.luguber.info/inful/docinclude/internal/logfields"
)

// DefaultSpecFileName is the pattern spec read by the list command.
const DefaultSpecFileName = ".docinclude"

const docsListScaffold = `# Documentation files, one path per line, relative to this directory.
# Files are added to the site in the order listed.
`

const specScaffold = `# gitignore-style rules selecting documentation assets
docs/**/*.md
`

// Init creates a new configuration file with example content, plus empty
// doc list and pattern spec scaffolds next to it when they do not exist yet.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	exampleConfig := Config{
		SiteName:         "My Documentation Site",
		DocsDir:          "docs",
		SiteDir:          "site",
		UseDirectoryURLs: true,
		Theme: ThemeConfig{
			Name:      "mkdocs",
			ThemesDir: "themes",
		},
		Plugins: PluginList{DocsListPlugin},
		DocsList: DocsListConfig{
			Path:       doclist.DefaultFileName,
			BlankLines: doclist.BlankLinesSkip,
		},
	}

	data, err := yaml.Marshal(&exampleConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	slog.Info("Wrote configuration", logfields.Path(configPath))

	dir := filepath.Dir(configPath)
	scaffolds := []struct{ name, content string }{
		{doclist.DefaultFileName, docsListScaffold},
		{DefaultSpecFileName, specScaffold},
	}
	for _, s := range scaffolds {
		path := filepath.Join(dir, s.name)
		if err := writeIfMissing(path, s.content); err != nil {
			return err
		}
	}
	return nil
}

func writeIfMissing(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		slog.Debug("Keeping existing file", logfields.Path(path))
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	slog.Info("Wrote scaffold", logfields.Path(path))
	return nil
}
