package conf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the CLI searches for, walking upward from
// the working directory.
const ManifestName = "attest.toml"

type manifestConfig struct {
	Check checkConfig `toml:"check"`
}

type checkConfig struct {
	Mode       string `toml:"mode"`
	SampleSize int    `toml:"sample_size"`
	MaxDepth   int    `toml:"max_depth"`
	ReprLimit  int    `toml:"repr_limit"`
}

// FindManifest walks from startDir toward the filesystem root looking
// for an attest.toml. Reports the path and whether one was found.
func FindManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadManifest reads an attest.toml and merges it over the defaults.
// Zero-valued manifest fields keep their default.
func LoadManifest(path string) (*Config, error) {
	var mc manifestConfig
	if _, err := toml.DecodeFile(path, &mc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg := Default()
	if mc.Check.Mode != "" {
		mode, err := ParseMode(mc.Check.Mode)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		cfg.Mode = mode
	}
	if mc.Check.SampleSize > 0 {
		cfg.SampleSize = mc.Check.SampleSize
	}
	if mc.Check.MaxDepth > 0 {
		cfg.MaxDepth = mc.Check.MaxDepth
	}
	if mc.Check.ReprLimit > 0 {
		cfg.ReprLimit = mc.Check.ReprLimit
	}
	return cfg, nil
}

// LoadNearest finds and loads the closest manifest above startDir, or
// returns the defaults when none exists.
func LoadNearest(startDir string) (*Config, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Default(), nil
	}
	return LoadManifest(path)
}
