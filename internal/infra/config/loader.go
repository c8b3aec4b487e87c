package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/scwatts/ecocyc-pathways/internal/domain"
)

// FileName is the config file searched for by Finder.
const FileName = "ecocyc.yaml"

// LoadConfig reads a config file and applies it over the defaults.
func LoadConfig(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Config{}, &domain.OpError{
			Op:     "config.load",
			Kind:   domain.KindNotFound,
			Target: path,
			Err:    err,
		}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Config{}, &domain.OpError{
			Op:     "config.load",
			Kind:   domain.KindInvalidConfig,
			Target: path,
			Err:    err,
		}
	}

	return MapConfig(path, dto)
}

// Resolve returns the effective config and the file it came from.
// An explicit path must exist. Otherwise ecocyc.yaml is searched upward from
// startDir, and the defaults apply when none is found.
func Resolve(explicit, startDir string) (domain.Config, string, error) {
	if explicit != "" {
		cfg, err := LoadConfig(explicit)
		return cfg, explicit, err
	}

	root, err := NewFinder().FindRoot(startDir)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.DefaultConfig(), "", nil
		}
		return domain.Config{}, "", err
	}

	path := filepath.Join(root, FileName)
	cfg, err := LoadConfig(path)
	return cfg, path, err
}
