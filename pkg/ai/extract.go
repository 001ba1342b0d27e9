// ABOUTME: TextAt pulls the generated text out of a provider's JSON response by path
// ABOUTME: Uses tidwall/gjson paths such as "choices.0.message.content"

package ai

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// TextAt returns the string found at path in body.
func TextAt(body []byte, path string) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("failed to parse API response: %.200s", body)
	}
	res := gjson.GetBytes(body, path)
	if res.Type != gjson.String {
		return "", fmt.Errorf("%w: no text at %s in %.200s", ErrUnexpectedResponse, path, body)
	}
	return res.String(), nil
}
