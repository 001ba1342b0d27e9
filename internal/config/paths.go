// ABOUTME: Standard filesystem path for the cmdline-ai-helper config file
// ABOUTME: Resolves flag, then CMDLINE_AI_HELPER_CONFIG, then ~/.cmdline-ai-helper

package config

import (
	"os"
	"path/filepath"
)

const (
	fileName = ".cmdline-ai-helper"
	envPath  = "CMDLINE_AI_HELPER_CONFIG"
)

// DefaultPath returns the user-global config file (~/.cmdline-ai-helper).
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", fileName)
	}
	return filepath.Join(home, fileName)
}

// ResolvePath picks the config file: an explicit path wins, then the
// environment override, then DefaultPath.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv(envPath); p != "" {
		return p
	}
	return DefaultPath()
}
