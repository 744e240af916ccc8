package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/purduesigbots/purdueros-cli/internal/messages"
)

// Validate ensures the config is consistent.
func (c *Config) Validate(path string) error {
	if c.Kernels.Dir != "" && strings.TrimSpace(c.Kernels.Dir) == "" {
		return fmt.Errorf(messages.ConfigKernelsDirWhitespaceFmt, path)
	}
	seen := make(map[string]int, len(c.Upgrade.Environments))
	for i, env := range c.Upgrade.Environments {
		if strings.TrimSpace(env) == "" {
			return fmt.Errorf(messages.ConfigEnvironmentEmptyFmt, path, i)
		}
		if first, ok := seen[env]; ok {
			return fmt.Errorf(messages.ConfigEnvironmentDuplicateFmt, path, i, env, first)
		}
		seen[env] = i
	}
	if c.Upgrade.DiffLines < 0 {
		return fmt.Errorf(messages.ConfigDiffLinesNegativeFmt, path, c.Upgrade.DiffLines)
	}
	return nil
}

// KernelsDir returns the kernel store directory for this config.
func (c *Config) KernelsDir(paths Paths) string {
	dir := strings.TrimSpace(c.Kernels.Dir)
	if dir == "" {
		return paths.KernelsDir
	}
	dir = ExpandHome(dir, paths.Home)
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(paths.DataDir, dir)
	}
	return filepath.Clean(dir)
}

// DefaultEnvironments returns a copy of the configured upgrade environments.
func (c *Config) DefaultEnvironments() []string {
	return append([]string(nil), c.Upgrade.Environments...)
}
