package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultLogFormat = "console"
	defaultLogLevel  = "warn"
	downloadsDirName = "Downloads"
)

// Default returns a Config populated with repository defaults. The target
// directory stays empty here; normalize fills it from the environment.
func Default() Config {
	return Config{
		Organize: Organize{
			Overwrite: false,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

// DefaultTargetDir returns the user's downloads directory, honouring
// XDG_DOWNLOAD_DIR before falling back to ~/Downloads. It returns an empty
// string when no home directory can be resolved.
func DefaultTargetDir() string {
	if dir, ok := os.LookupEnv("XDG_DOWNLOAD_DIR"); ok && strings.TrimSpace(dir) != "" {
		return strings.TrimSpace(dir)
	}
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return ""
	}
	return filepath.Join(home, downloadsDirName)
}
