package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"github.com/purduesigbots/purdueros-cli/internal/messages"
)

// ErrConfigValidation is a sentinel that wraps config validation failures
// (as opposed to TOML syntax or filesystem errors).
var ErrConfigValidation = errors.New("config validation failed")

// Config is the user-level CLI configuration stored in config.toml.
type Config struct {
	Kernels KernelsConfig `toml:"kernels"`
	Upgrade UpgradeConfig `toml:"upgrade"`
}

// KernelsConfig locates the local kernel store.
type KernelsConfig struct {
	// Dir overrides the kernel store location. Relative paths are resolved
	// against the data directory; "~/" expands to the home directory.
	Dir string `toml:"dir,omitempty"`
}

// UpgradeConfig holds defaults for `pros upgrade`.
type UpgradeConfig struct {
	// Environments is used when neither --environments nor the project file names any.
	Environments []string `toml:"environments,omitempty"`
	// DiffLines caps each diff shown by --dry-run. Zero means the built-in default.
	DiffLines int `toml:"diff_lines,omitempty"`
}

// Load reads and validates the config file at path.
// A missing file is not an error: the zero Config is returned.
func Load(fsys afero.Fs, path string) (*Config, error) {
	if fsys == nil {
		return nil, fmt.Errorf(messages.ConfigFSRequired)
	}
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf(messages.ConfigReadFileFmt, path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses and validates config TOML data from a source identifier.
// data is the TOML content; source is used in error messages.
func ParseConfig(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt+" "+messages.ConfigValidationGuidance, ErrConfigValidation, source, err)
	}
	if err := cfg.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w "+messages.ConfigValidationGuidance, ErrConfigValidation, err)
	}
	return &cfg, nil
}

// decodeStrict re-decodes the TOML data with strict unknown-field rejection.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}
