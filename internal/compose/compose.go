// Package compose renders notification message templates. Templates use
// {field} placeholders, matching the format persisted in the plugin settings,
// and rendering is pure: the same template and fields always produce the same
// string.
package compose

import (
	"fmt"
	"regexp"
	"strings"
)

var placeholderRe = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// MissingFieldError reports a placeholder with no corresponding payload field.
// A malformed notification is worse than none, so this surfaces to the caller
// instead of producing a partial message.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("template field %q has no value", e.Field)
}

// Render substitutes every {field} placeholder in template with its value
// from fields. It returns an empty string and a MissingFieldError if any
// placeholder is unknown; no partial result is ever returned.
func Render(template string, fields map[string]string) (string, error) {
	var b strings.Builder
	last := 0

	for _, loc := range placeholderRe.FindAllStringSubmatchIndex(template, -1) {
		name := template[loc[2]:loc[3]]

		value, ok := fields[name]
		if !ok {
			return "", &MissingFieldError{Field: name}
		}

		b.WriteString(template[last:loc[0]])
		b.WriteString(value)
		last = loc[1]
	}

	b.WriteString(template[last:])

	return b.String(), nil
}
