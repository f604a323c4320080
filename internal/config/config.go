// Package config resolves the admin tools' runtime configuration.
//
// Configuration comes from an optional .env file beside the executable and
// from the process environment. All paths are resolved against an explicit
// base directory; the working directory is never consulted or changed.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	apperrors "gamenight-admin/internal/errors"
)

const (
	// EnvFileName is the optional environment file read beside the executable.
	EnvFileName = ".env"
	// EnvDatabaseURL is the recognized configuration key.
	EnvDatabaseURL = "DATABASE_URL"
	// DefaultDatabaseURL points at the Game Night server's database file.
	DefaultDatabaseURL = "sqlite:./game_night.db"

	sqliteScheme = "sqlite:"
)

// Config holds the resolved configuration for one run.
type Config struct {
	// BaseDir anchors the .env lookup and relative database paths.
	BaseDir string
	// DatabaseURL is the value the path was derived from.
	DatabaseURL string
	// DatabasePath is the resolved filesystem path of the SQLite file.
	DatabasePath string
	// FileValues holds every key from the .env file. Unrecognized keys are
	// retained here but unused.
	FileValues map[string]string
}

// BaseDir resolves the directory containing the running executable, the
// anchor for .env lookup and relative database paths.
func BaseDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", apperrors.ConfigError("config.BaseDir", err)
	}
	dir, err := filepath.Abs(filepath.Dir(exe))
	if err != nil {
		return "", apperrors.ConfigError("config.BaseDir", err)
	}
	return dir, nil
}

// Load resolves configuration against baseDir. DATABASE_URL precedence:
// process environment, then the .env file, then the built-in default. The
// .env file is optional; a missing file is not an error, a malformed one is.
func Load(baseDir string) (*Config, error) {
	cfg := &Config{
		BaseDir:    baseDir,
		FileValues: map[string]string{},
	}

	envPath := filepath.Join(baseDir, EnvFileName)
	if _, err := os.Stat(envPath); err == nil {
		values, readErr := godotenv.Read(envPath)
		if readErr != nil {
			return nil, apperrors.ConfigError("config.Load", fmt.Errorf("parse %s: %w", envPath, readErr))
		}
		cfg.FileValues = values
	} else if !os.IsNotExist(err) {
		return nil, apperrors.ConfigError("config.Load", err)
	}

	url := DefaultDatabaseURL
	if v := cfg.FileValues[EnvDatabaseURL]; v != "" {
		url = v
	}
	if v := os.Getenv(EnvDatabaseURL); v != "" {
		url = v
	}
	cfg.DatabaseURL = url

	path, err := databasePath(url, baseDir)
	if err != nil {
		return nil, err
	}
	cfg.DatabasePath = path

	return cfg, nil
}

// databasePath strips the sqlite scheme prefix and anchors relative paths
// at baseDir. A bare path without a scheme is accepted as-is; any other
// explicit scheme is rejected.
func databasePath(url, baseDir string) (string, error) {
	path := strings.TrimPrefix(url, sqliteScheme)

	if idx := strings.Index(path, "://"); idx > 0 {
		return "", apperrors.ConfigError("config.Load",
			fmt.Errorf("unsupported database URL scheme %q, only sqlite:<path> is supported", path[:idx]))
	}
	if path == "" {
		return "", apperrors.ConfigError("config.Load",
			fmt.Errorf("database URL %q contains no path", url))
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	return filepath.Clean(path), nil
}
