// ABOUTME: CleanCommand strips the decoration models wrap around a shell command
// ABOUTME: Removes surrounding whitespace, paired backticks, and a markdown code fence

package ai

import "strings"

// CleanCommand returns the bare command from a model answer such as
// "```bash\nls -la\n```" or "`ls -la`".
func CleanCommand(s string) string {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "```"); ok {
		// Drop the info string ("bash", "sh", ...) on the fence line.
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			rest = rest[i+1:]
		}
		s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rest), "```"))
	}
	// Only a matched pair is decoration; "echo `date`" must survive.
	for len(s) >= 2 && s[0] == '`' && s[len(s)-1] == '`' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}
