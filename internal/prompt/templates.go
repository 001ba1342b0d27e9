// ABOUTME: Prompt templates for turning a natural-language request into a shell command prompt
// ABOUTME: YAML fragments per OS plus a general instruction; an override file replaces entries

package prompt

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Supported OS identifiers.
const (
	OSMacOS   = "macos"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Templates holds the prompt fragments.
type Templates struct {
	OS      map[string]string `yaml:"os"`
	General string            `yaml:"general"`
}

// Defaults returns the embedded templates.
func Defaults() (*Templates, error) {
	var t Templates
	if err := yaml.Unmarshal(defaultTemplates, &t); err != nil {
		return nil, fmt.Errorf("parse embedded prompts: %w", err)
	}
	return &t, nil
}

// Load returns the embedded templates with any entries from overridePath
// applied on top. An empty overridePath means defaults only.
func Load(overridePath string) (*Templates, error) {
	t, err := Defaults()
	if err != nil {
		return nil, err
	}
	if overridePath == "" {
		return t, nil
	}

	data, err := os.ReadFile(overridePath)
	if err != nil {
		return nil, fmt.Errorf("read prompts file: %w", err)
	}
	var overlay Templates
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("parse prompts file %s: %w", overridePath, err)
	}

	for k, v := range overlay.OS {
		if v != "" {
			t.OS[k] = v
		}
	}
	if overlay.General != "" {
		t.General = overlay.General
	}
	return t, nil
}

// DetectOS maps a GOOS value to one of the OS identifiers. Anything that
// is not darwin or windows is treated as linux.
func DetectOS(goos string) string {
	switch goos {
	case "darwin":
		return OSMacOS
	case "windows":
		return OSWindows
	default:
		return OSLinux
	}
}

// CurrentOS returns DetectOS for the running platform.
func CurrentOS() string {
	return DetectOS(runtime.GOOS)
}

// Build assembles the full prompt for request on osType.
func (t *Templates) Build(osType, request string) string {
	osPrompt, ok := t.OS[osType]
	if !ok {
		osPrompt = t.OS[OSLinux]
	}
	return fmt.Sprintf("%s %s Request: %s", osPrompt, t.General, request)
}
