// ABOUTME: Embeds the default prompt fragments into the binary via go:embed
// ABOUTME: templates/prompts.yaml is the fallback when no override file is configured

package prompt

import _ "embed"

//go:embed templates/prompts.yaml
var defaultTemplates []byte
