package cleaner

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Cleaner strips HTML from raw posting text using Bluemonday. Source
// exports frequently carry markup inside description fields; skill
// extraction wants plain text.
type Cleaner struct {
	strict *bluemonday.Policy
}

// NewCleaner creates a cleaner that strips ALL HTML
func NewCleaner() *Cleaner {
	return &Cleaner{strict: bluemonday.StrictPolicy()}
}

// CleanToText removes all HTML, decodes entities, and returns plain text
func (c *Cleaner) CleanToText(raw string) string {
	text := c.strict.Sanitize(raw)
	text = html.UnescapeString(text)

	// Clean up whitespace
	text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	return strings.TrimSpace(text)
}
