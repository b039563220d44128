// Package phrases loads the localized phrase sets the avatar speaks and picks
// random phrases from them.
package phrases

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// DefaultMaxLanguages is the number of languages kept when no cap is given.
const DefaultMaxLanguages = 10

// Phrase is a single pick: the text plus where it came from.
type Phrase struct {
	Lang  string
	Index int // position in the language's list, zero-based
	Text  string
}

// Manager owns the loaded phrase set.
type Manager struct {
	path         string
	maxLanguages int
	set          *Set
	rng          *rand.Rand
	log          zerolog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithMaxLanguages caps the number of languages retained after loading.
func WithMaxLanguages(n int) Option {
	return func(m *Manager) {
		m.maxLanguages = n
	}
}

// WithRand sets the random source used to pick phrases.
func WithRand(rng *rand.Rand) Option {
	return func(m *Manager) {
		m.rng = rng
	}
}

// NewManager creates an empty manager. Call Load before picking phrases.
func NewManager(log zerolog.Logger, opts ...Option) *Manager {
	m := &Manager{
		maxLanguages: DefaultMaxLanguages,
		set:          newSet(),
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		log:          log,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Open creates a manager and loads path into it.
func Open(path string, log zerolog.Logger, opts ...Option) (*Manager, error) {
	m := NewManager(log, opts...)
	if err := m.Load(path); err != nil {
		return nil, err
	}
	return m, nil
}

// Load parses the phrase document at path and replaces the current set.
// On error the current set is left untouched and nothing is logged; the
// caller decides how severe the failure is.
func (m *Manager) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrMissingFile, path)
		}
		return fmt.Errorf("failed to open phrase file: %w", err)
	}
	defer f.Close()

	set, err := Parse(f, FormatForPath(path))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if dropped := set.truncate(m.maxLanguages); dropped > 0 {
		m.log.Warn().
			Int("max", m.maxLanguages).
			Int("dropped", dropped).
			Msg("More languages than allowed, keeping the first ones")
	}

	m.path = path
	m.set = set
	m.log.Info().Str("path", path).Int("languages", set.Len()).Msg("Phrases loaded")
	return nil
}

// Reload re-reads the file given to the last successful Load.
func (m *Manager) Reload() error {
	if m.path == "" {
		return fmt.Errorf("%w: nothing loaded yet", ErrMissingFile)
	}
	m.log.Info().Str("path", m.path).Msg("Reloading phrases")
	return m.Load(m.path)
}

// Path returns the file of the last successful Load.
func (m *Manager) Path() string {
	return m.path
}

// Pick chooses a phrase uniformly at random for lang. It returns false when
// the language is unknown or has no phrases.
func (m *Manager) Pick(lang string) (Phrase, bool) {
	list, ok := m.set.Phrases(lang)
	if !ok {
		m.log.Warn().Str("lang", lang).Msg("Language has no phrases loaded")
		return Phrase{}, false
	}
	if len(list) == 0 {
		m.log.Warn().Str("lang", lang).Msg("Phrase list is empty")
		return Phrase{}, false
	}

	i := m.rng.Intn(len(list))
	m.log.Debug().Str("lang", lang).Int("index", i).Str("phrase", list[i]).Msg("Picked phrase")
	return Phrase{Lang: lang, Index: i, Text: list[i]}, true
}

// GetRandom returns a random phrase for lang, or "" when there is none.
func (m *Manager) GetRandom(lang string) string {
	p, _ := m.Pick(lang)
	return p.Text
}

// ListLanguages returns the loaded language codes in load order.
func (m *Manager) ListLanguages() []string {
	return m.set.Languages()
}
