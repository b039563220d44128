package phrases

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Errors returned when loading a phrase document.
var (
	ErrMissingFile = errors.New("phrase file not found")
	ErrMalformed   = errors.New("malformed phrase data")
)

// Format identifies the encoding of a phrase document.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatForPath picks the format from the file extension. Anything that is
// not .yaml or .yml is read as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Set maps language codes to phrase lists and remembers document order.
type Set struct {
	order   []string
	phrases map[string][]string
}

func newSet() *Set {
	return &Set{phrases: make(map[string][]string)}
}

// add stores a list. A repeated code replaces the earlier list but keeps its position.
func (s *Set) add(code string, list []string) {
	if _, ok := s.phrases[code]; !ok {
		s.order = append(s.order, code)
	}
	s.phrases[code] = list
}

// Languages returns the language codes in document order.
func (s *Set) Languages() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Phrases returns the list for code and whether the code is present.
func (s *Set) Phrases(code string) ([]string, bool) {
	list, ok := s.phrases[code]
	return list, ok
}

// Len returns the number of languages.
func (s *Set) Len() int {
	return len(s.order)
}

// truncate keeps the first n languages and reports how many were dropped.
func (s *Set) truncate(n int) int {
	if n < 0 || len(s.order) <= n {
		return 0
	}
	dropped := s.order[n:]
	for _, code := range dropped {
		delete(s.phrases, code)
	}
	s.order = s.order[:n:n]
	return len(dropped)
}

// Parse decodes a phrase document of the given format.
func Parse(r io.Reader, format Format) (*Set, error) {
	switch format {
	case FormatYAML:
		return parseYAML(r)
	default:
		return parseJSON(r)
	}
}

// parseJSON walks the token stream so object keys keep their document order.
func parseJSON(r io.Reader) (*Set, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMalformed)
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: top level must be an object", ErrMalformed)
	}

	set := newSet()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		code, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected key %v", ErrMalformed, keyTok)
		}

		var list []string
		if err := dec.Decode(&list); err != nil {
			return nil, fmt.Errorf("%w: language %q: %w", ErrMalformed, code, err)
		}
		set.add(code, list)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after object", ErrMalformed)
	}
	return set, nil
}

// parseYAML uses the node tree, whose mapping content preserves key order.
func parseYAML(r io.Reader) (*Set, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMalformed)
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformed)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping", ErrMalformed)
	}

	set := newSet()
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: key must be a string", ErrMalformed, key.Line)
		}

		var list []string
		if err := value.Decode(&list); err != nil {
			return nil, fmt.Errorf("%w: language %q: %w", ErrMalformed, key.Value, err)
		}
		set.add(key.Value, list)
	}
	return set, nil
}
