// Package template resolves named prompt templates and substitutes fields
// into their {placeholder} slots.
//
// The template set is loaded once (from the embedded defaults or a YAML
// file) and is read-only afterwards, so a Store is safe for concurrent use.
package template

import (
	"fmt"
	"regexp"

	"github.com/litchilabs/lychee/pkg/domain"
)

var placeholderRe = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// Store maps template names to raw bodies containing {field} placeholders.
type Store struct {
	templates map[string]string
}

// Render looks up the named template and substitutes every placeholder with
// the corresponding value from fields. It is a pure function of the store
// contents and fields.
func (s *Store) Render(name string, fields map[string]string) (string, error) {
	body, ok := s.templates[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrTemplateNotFound, name)
	}

	var missing *domain.MissingFieldError
	out := placeholderRe.ReplaceAllStringFunc(body, func(m string) string {
		field := m[1 : len(m)-1]
		value, ok := fields[field]
		if !ok {
			if missing == nil {
				missing = &domain.MissingFieldError{Template: name, Field: field}
			}
			return m
		}
		return value
	})
	if missing != nil {
		return "", missing
	}
	return out, nil
}

// Names returns the template names in the store, for introspection.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}
	return names
}
