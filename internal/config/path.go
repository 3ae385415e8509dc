// Package config loads settings from viper, the environment and .env files.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// AppName names the configuration directory.
const AppName = "ledger"

// tokenFileName is the saved Google OAuth2 token inside Dir.
const tokenFileName = "sheets-token.json"

// ExpandPath resolves a leading ~ to the home directory, then expands $VAR
// references. Paths that cannot be expanded are returned unchanged.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return os.ExpandEnv(path)
}

// Dir returns the configuration directory, honoring XDG_CONFIG_HOME.
func Dir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName), nil
}

// DefaultTokenFile is where the auth command stores the Google token. It is
// empty when no home directory can be found.
func DefaultTokenFile() string {
	dir, err := Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, tokenFileName)
}
