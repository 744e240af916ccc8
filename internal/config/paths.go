package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/purduesigbots/purdueros-cli/internal/messages"
)

// EnvHome overrides the PROS data directory (default ~/.pros).
const EnvHome = "PROS_HOME"

// Paths holds resolved paths for the CLI's config file and kernel store.
type Paths struct {
	Home       string
	DataDir    string
	ConfigPath string
	KernelsDir string
}

// DefaultPaths returns the default paths rooted at a user's home directory.
func DefaultPaths(home string) Paths {
	return pathsForDataDir(home, filepath.Join(home, ".pros"))
}

// ResolvePaths returns DefaultPaths unless the PROS_HOME override is set.
// lookupEnv is usually os.LookupEnv.
func ResolvePaths(home string, lookupEnv func(string) (string, bool)) (Paths, error) {
	if lookupEnv != nil {
		if override, ok := lookupEnv(EnvHome); ok && strings.TrimSpace(override) != "" {
			dataDir := ExpandHome(strings.TrimSpace(override), home)
			if !filepath.IsAbs(dataDir) {
				return Paths{}, fmt.Errorf(messages.ConfigHomeOverrideNotAbsoluteFmt, EnvHome, override)
			}
			return pathsForDataDir(home, filepath.Clean(dataDir)), nil
		}
	}
	return DefaultPaths(home), nil
}

func pathsForDataDir(home string, dataDir string) Paths {
	return Paths{
		Home:       home,
		DataDir:    dataDir,
		ConfigPath: filepath.Join(dataDir, "config.toml"),
		KernelsDir: filepath.Join(dataDir, "kernels"),
	}
}

// ExpandHome replaces a leading "~/" or "~\" in raw with home.
// Any other input, including a bare "~" or "~user/...", is returned unchanged.
func ExpandHome(raw string, home string) string {
	if len(raw) < 2 || raw[0] != '~' || (raw[1] != '/' && raw[1] != '\\') {
		return raw
	}
	return filepath.Clean(home + raw[1:])
}
