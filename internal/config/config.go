// ABOUTME: Settings loading from the KEY=VALUE file ~/.cmdline-ai-helper
// ABOUTME: Skips comments and invalid lines, requires DEFAULT_PROVIDER and DEFAULT_MODEL

package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/mauromedda/cmdline-ai-helper/internal/log"
)

// Well-known keys.
const (
	KeyProvider    = "DEFAULT_PROVIDER"
	KeyModel       = "DEFAULT_MODEL"
	KeyTemperature = "TEMPERATURE"
	KeyMaxTokens   = "MAX_TOKENS"
	KeyPromptsFile = "PROMPTS_FILE"
)

var requiredKeys = []string{KeyProvider, KeyModel}

var (
	// ErrNotFound is returned when the config file does not exist.
	ErrNotFound = errors.New("config file not found")
	// ErrMissingKeys is returned when a required key is absent.
	ErrMissingKeys = errors.New("missing required config keys")
	// ErrUnknownProvider is returned by Validate for unregistered providers.
	ErrUnknownProvider = errors.New("unknown provider")
)

// Settings holds the parsed configuration.
type Settings struct {
	Provider    string
	Model       string
	Temperature *float64 // nil when TEMPERATURE is absent
	MaxTokens   int      // 0 means "provider default"
	PromptsFile string

	values map[string]string
}

// ProviderSettings are the per-provider keys, NAME_ENDPOINT and NAME_API_KEY.
type ProviderSettings struct {
	Endpoint string
	APIKey   string
}

// Load reads and parses the config file at path.
func Load(path string) (*Settings, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w at %s\nPlease copy .cmdline-ai-helper.sample to ~/.cmdline-ai-helper and edit it",
			ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, nil
}

// Parse reads KEY=VALUE lines from r. Blank lines and lines starting with
// '#' are skipped; lines without '=' are logged and ignored. Values have
// ${VAR} references expanded from the environment.
func Parse(r io.Reader) (*Settings, error) {
	values := make(map[string]string)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			log.Warn("Ignoring invalid config line: %s", line)
			continue
		}
		values[strings.TrimSpace(k)] = expandEnv(strings.TrimSpace(v))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var missing []string
	for _, k := range requiredKeys {
		if _, ok := values[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return nil, fmt.Errorf("%w: %s", ErrMissingKeys, strings.Join(missing, ", "))
	}

	return fromValues(values)
}

// fromValues fills the typed fields from the raw key map.
func fromValues(values map[string]string) (*Settings, error) {
	s := &Settings{
		Provider:    values[KeyProvider],
		Model:       values[KeyModel],
		PromptsFile: values[KeyPromptsFile],
		values:      values,
	}

	if v := values[KeyTemperature]; v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", KeyTemperature, v, err)
		}
		s.Temperature = &f
	}
	if v := values[KeyMaxTokens]; v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid %s %q: must be a positive integer", KeyMaxTokens, v)
		}
		s.MaxTokens = n
	}
	return s, nil
}

// Get returns the raw value for key, or "" when unset.
func (s *Settings) Get(key string) string {
	return s.values[key]
}

// ProviderSettings returns the endpoint and API key configured for the
// named provider; empty fields mean "use the provider default".
func (s *Settings) ProviderSettings(name string) ProviderSettings {
	prefix := strings.ToUpper(name) + "_"
	return ProviderSettings{
		Endpoint: s.Get(prefix + "ENDPOINT"),
		APIKey:   s.Get(prefix + "API_KEY"),
	}
}

// Override applies non-empty command-line values on top of the file.
func (s *Settings) Override(provider, model string) {
	if provider != "" {
		s.Provider = provider
	}
	if model != "" {
		s.Model = model
	}
}

// Validate checks the provider against the registered names, suggesting
// the closest match when there is one.
func (s *Settings) Validate(known []string) error {
	if slices.Contains(known, s.Provider) {
		return nil
	}
	if hint := suggest(s.Provider, known); hint != "" {
		return fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownProvider, s.Provider, hint)
	}
	return fmt.Errorf("%w %q (known: %s)", ErrUnknownProvider, s.Provider, strings.Join(known, ", "))
}
