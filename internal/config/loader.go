package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/voilajsx/create-uikit/internal/defs"
)

// maxConfigSize is the maximum accepted size of the settings file.
const maxConfigSize = 1 << 20

// DefaultPath returns the settings file location, honouring
// CREATE_UIKIT_CONFIG and otherwise the user config directory.
// It returns "" when no location can be determined.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigFile); p != "" {
		return filepath.Clean(p)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, defs.AppDirName, defs.ConfigYAML)
}

// Load reads the settings file at path (DefaultPath() when empty), layers
// environment overrides on top, fills missing fields with defaults and
// validates the result. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := NewDefaultConfig()

	if path != "" {
		loaded, err := loadYAMLFile(path, cfg)
		if err != nil {
			return nil, err
		}
		if !loaded {
			slog.Debug("settings file not found, using defaults", "path", path)
		}
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadYAMLFile unmarshals path into target. Returns (true, nil) if the file
// was found and parsed, (false, nil) if it does not exist.
func loadYAMLFile(path string, target *Config) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > maxConfigSize {
		return false, fmt.Errorf("%s exceeds %d bytes: %w", path, maxConfigSize, ErrInvalidConfig)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w: %v", path, ErrInvalidYAML, err)
	}
	return true, nil
}

// applyEnvOverrides applies environment variables over file values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvAuthor); v != "" {
		cfg.Author = v
	}
	if v := os.Getenv(EnvPackageManager); v != "" {
		cfg.PackageManager = v
	}
	if v := os.Getenv(EnvTemplatesDir); v != "" {
		cfg.TemplatesDir = v
	}
	if v, ok := envBool(EnvSkipInstall); ok {
		cfg.SkipInstall = v
	}
	// NO_COLOR disables colour when present, regardless of value.
	if _, ok := os.LookupEnv(EnvNoColor); ok {
		cfg.NoColor = true
	}
}

// applyDefaults restores compiled defaults for fields the file blanked out.
func applyDefaults(cfg *Config) {
	if cfg.Author == "" {
		cfg.Author = DefaultAuthor
	}
	if cfg.AppDescription == "" {
		cfg.AppDescription = DefaultAppDescription
	}
	if cfg.ExtensionDescription == "" {
		cfg.ExtensionDescription = DefaultExtensionDescription
	}
	if cfg.PackageManager == "" {
		cfg.PackageManager = DefaultPackageManager
	}
}

func envBool(key string) (bool, bool) {
	v := os.Getenv(key)
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("ignoring invalid boolean environment variable", "key", key, "value", v)
		return false, false
	}
	return b, true
}
