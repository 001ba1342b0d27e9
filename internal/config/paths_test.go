// ABOUTME: Tests for config file path resolution order
// ABOUTME: Explicit flag, then environment override, then home directory default

package config

import (
	"path/filepath"
	"testing"
)

func TestResolvePath(t *testing.T) {
	t.Setenv(envPath, "")
	t.Setenv("HOME", "/home/tester")

	if got := ResolvePath("/etc/ai.conf"); got != "/etc/ai.conf" {
		t.Errorf("explicit path = %q", got)
	}
	if got := ResolvePath(""); got != filepath.Join("/home/tester", ".cmdline-ai-helper") {
		t.Errorf("default path = %q", got)
	}

	t.Setenv(envPath, "/tmp/custom")
	if got := ResolvePath(""); got != "/tmp/custom" {
		t.Errorf("env path = %q", got)
	}
}
