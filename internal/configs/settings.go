package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kerrors "github.com/ppc-cli/ppc/internal/errors"
)

// Settings is the on-disk settings file.
type Settings struct {
	Instance InstanceSettings `toml:"instance"`
	Auth     AuthSettings     `toml:"auth"`
}

type InstanceSettings struct {
	URL      string `toml:"url,omitempty"`
	Protocol string `toml:"protocol,omitempty"`
}

type AuthSettings struct {
	Email string `toml:"email,omitempty"`
	Token string `toml:"token,omitempty"`
}

// DefaultSettingsPath returns the settings file location under the user's
// config directory. XDG_CONFIG_HOME is honored on every platform.
func DefaultSettingsPath() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("error getting config directory: %w", err)
		}
		configDir = dir
	}
	return filepath.Join(configDir, "ppc", "config.toml"), nil
}

// LoadSettings reads the settings file at path. A missing file yields empty
// settings, not an error.
func LoadSettings(path string) (*Settings, error) {
	settings := &Settings{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return settings, nil
	}

	if err := LoadTOML(path, settings); err != nil {
		if strings.Contains(err.Error(), "toml:") {
			return nil, fmt.Errorf("%w: %s is not valid TOML: %v", kerrors.ErrInvalidConfig, path, err)
		}
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return settings, nil
}

// SaveSettings writes the settings file at path, creating parent directories.
func SaveSettings(path string, settings *Settings) error {
	if err := SaveTOML(path, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
