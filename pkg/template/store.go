package template

import (
	_ "embed"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

//go:embed prompts.yaml
var defaultPrompts []byte

// entry is one template definition in the YAML file. The prompt body may be
// given as a single string or as a list of lines, which are joined with
// newlines during decoding.
type entry struct {
	Description string `mapstructure:"description"`
	Prompt      string `mapstructure:"prompt"`
}

// Default returns the store built from the embedded prompt set.
func Default() *Store {
	store, err := Parse(defaultPrompts)
	if err != nil {
		// The embedded file is fixed at compile time; failing to parse it is
		// a build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded prompts.yaml is invalid: %v", err))
	}
	return store
}

// FromFile loads a template set from a YAML file on disk.
func FromFile(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates: %w", err)
	}
	store, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return store, nil
}

// Parse decodes a YAML template set of the form:
//
//	name:
//	  description: optional human note
//	  prompt: body with {field} placeholders, string or list of lines
func Parse(raw []byte) (*Store, error) {
	var doc map[string]map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid template yaml: %w", err)
	}

	templates := make(map[string]string, len(doc))
	for name, fields := range doc {
		var e entry
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			DecodeHook: joinLinesHook,
			Result:     &e,
		})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(fields); err != nil {
			return nil, fmt.Errorf("template %q: %w", name, err)
		}
		if strings.TrimSpace(e.Prompt) == "" {
			return nil, fmt.Errorf("template %q has an empty prompt", name)
		}
		templates[name] = e.Prompt
	}
	return &Store{templates: templates}, nil
}

// joinLinesHook lets prompt bodies be written as YAML lists of lines.
func joinLinesHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Slice || to.Kind() != reflect.String {
		return data, nil
	}
	v := reflect.ValueOf(data)
	lines := make([]string, v.Len())
	for i := 0; i < v.Len(); i++ {
		s, ok := v.Index(i).Interface().(string)
		if !ok {
			return nil, fmt.Errorf("prompt lines must be strings, got %T", v.Index(i).Interface())
		}
		lines[i] = s
	}
	return strings.Join(lines, "\n"), nil
}
