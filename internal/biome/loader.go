package biome

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// ConfigFileNames are looked up in order.
var ConfigFileNames = []string{"biome.json", "biome.jsonc"}

// ErrConfigNotFound is returned when no configuration file exists.
var ErrConfigNotFound = errors.New("biome configuration not found (looked for biome.json and biome.jsonc)")

// Load reads the first configuration file found in dir and returns it with
// the path it was read from.
func Load(dir string) (*Configuration, string, error) {
	for _, name := range ConfigFileNames {
		path := filepath.Join(dir, name)

		cfg, err := LoadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, path, err
		}
		return cfg, path, nil
	}
	return nil, "", fmt.Errorf("%w in %s", ErrConfigNotFound, dir)
}

// LoadFile reads a configuration file. Comments and trailing commas are
// accepted regardless of the extension.
func LoadFile(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes JSON or JSONC configuration text.
func Parse(data []byte) (*Configuration, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, err
	}

	var cfg Configuration
	if err := json.Unmarshal(std, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
