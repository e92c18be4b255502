package record

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans record text before it reaches plain-text style renderers.
type Sanitizer interface {
	Clean(raw string) string
}

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// markupSanitizer strips every HTML element and unescapes the remaining
// entities, leaving readable text. Descriptions in real exports routinely
// carry inline markup pasted from the web UI.
type markupSanitizer struct{}

// NewMarkupSanitizer returns the shared markup-stripping sanitizer.
func NewMarkupSanitizer() Sanitizer {
	return markupSanitizer{}
}

func (markupSanitizer) Clean(raw string) string {
	if raw == "" {
		return ""
	}
	cleaned := textSanitizer().Sanitize(raw)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
