// Package config provides configuration loading for potcat.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/l10n-kit/potcat/repository"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds settings that change potcat's default behavior.
type Config struct {
	// FromCode is the default charset of PO text input; empty means UTF-8.
	FromCode string `yaml:"from_code"`
	// JSONIndent is the indent string used for --json output.
	JSONIndent string `yaml:"json_indent"`
}

// configFileName is looked up at the project root, and dot-prefixed
// in the home directory.
const configFileName = "potcat.yaml"

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{JSONIndent: "  "}
}

// Load reads the configuration. Priority: the explicit path when not
// empty, then <project-root>/potcat.yaml, then ~/.potcat.yaml.
// Missing files fall back to the defaults; a file that exists but
// does not parse is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if root := repository.WorkDir(); root != "" {
		name := filepath.Join(root, configFileName)
		if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
			if err := loadFile(cfg, name); err != nil {
				return nil, err
			}
			return cfg, nil
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		name := filepath.Join(home, "."+configFileName)
		if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
			if err := loadFile(cfg, name); err != nil {
				return nil, err
			}
		}
	}
	return cfg, nil
}

func loadFile(cfg *Config, name string) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", name, err)
	}
	log.Debugf("loaded config from %s", name)
	return nil
}
