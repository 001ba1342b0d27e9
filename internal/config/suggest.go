// ABOUTME: Fuzzy "did you mean" suggestions for mistyped provider names
// ABOUTME: Thin use of sahilm/fuzzy; best-scoring candidate wins

package config

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// suggest returns the known name that best matches name, or "".
func suggest(name string, known []string) string {
	if name == "" {
		return ""
	}
	matches := fuzzy.Find(strings.ToLower(name), known)
	if len(matches) > 0 {
		return matches[0].Str
	}
	// Subsequence matching misses transpositions ("opneai"); fall back to
	// a shared prefix.
	for _, k := range known {
		if len(name) >= 2 && strings.HasPrefix(k, strings.ToLower(name[:2])) {
			return k
		}
	}
	return ""
}
