package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// envFiles are tried in order; the first one found is loaded.
var envFiles = []string{".env", ".env.local"}

// loadEnvFile loads environment variables from the first .env/.env.local
// file found in dir. Existing process environment variables are not
// overwritten.
func loadEnvFile(dir string) (string, error) {
	for _, name := range envFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return "", err
		}
		if err := godotenv.Load(path); err != nil {
			return "", fmt.Errorf("parse %s: %w", path, err)
		}
		return path, nil
	}
	return "", fmt.Errorf("no .env file found in %s", dir)
}
