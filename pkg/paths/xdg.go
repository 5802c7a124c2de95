// Package paths provides XDG-compliant path resolution.
//
// Resolution order:
// 1. XPANES_HOME (portable root) → $XPANES_HOME/{config,cache}
// 2. XDG env vars → $XDG_*_HOME/xpanes
// 3. Platform defaults → ~/.config/xpanes, ~/.cache/xpanes
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// getConfigHome returns the base config home directory.
func getConfigHome() string {
	if home := os.Getenv("XPANES_HOME"); home != "" {
		return filepath.Join(home, "config")
	}
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config")
	}
	return ""
}

// getCacheHome returns the base cache home directory.
func getCacheHome() string {
	if home := os.Getenv("XPANES_HOME"); home != "" {
		return filepath.Join(home, "cache")
	}
	if xdgCacheHome := os.Getenv("XDG_CACHE_HOME"); xdgCacheHome != "" {
		return xdgCacheHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".cache")
	}
	return ""
}

// ConfigDir returns the configuration directory.
// Used for the xpanes.yml defaults file.
func ConfigDir() string {
	base := getConfigHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, "xpanes")
}

// ConfigFile returns the path of the defaults file.
func ConfigFile() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "xpanes.yml")
}

// CacheDir returns the cache directory.
// Used for regenerable data such as captured pane output.
func CacheDir() string {
	base := getCacheHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, "xpanes")
}

// DefaultLogDir returns the directory pane output is captured into when
// logging is enabled without an explicit destination.
func DefaultLogDir() string {
	cache := CacheDir()
	if cache == "" {
		return ""
	}
	return filepath.Join(cache, "logs")
}

// Expand resolves a leading tilde against the user's home directory.
func Expand(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
