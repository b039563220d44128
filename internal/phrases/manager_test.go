package phrases

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestGetRandomScenario(t *testing.T) {
	path := writeFile(t, "phrases.json", `{"en": ["hi"], "fr": []}`)
	m, err := Open(path, zerolog.Nop())
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		assert.Equal(t, "hi", m.GetRandom("en"))
	}
	assert.Equal(t, "", m.GetRandom("fr"))
	assert.Equal(t, "", m.GetRandom("de"))
}

func TestGetRandomUnknownLanguages(t *testing.T) {
	path := writeFile(t, "phrases.json", `{"en": ["a", "b"], "ru": ["в"]}`)
	m, err := Open(path, zerolog.Nop())
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		code := fmt.Sprintf("x%d-%d", i, rng.Intn(1000))
		assert.NotPanics(t, func() {
			assert.Equal(t, "", m.GetRandom(code))
		})
	}
	assert.Equal(t, "", m.GetRandom(""))
}

func TestGetRandomIsUniform(t *testing.T) {
	path := writeFile(t, "phrases.json", `{"en": ["a", "b", "c"]}`)
	m, err := Open(path, zerolog.Nop(), WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)

	counts := map[string]int{}
	for i := 0; i < 3000; i++ {
		counts[m.GetRandom("en")]++
	}
	for _, p := range []string{"a", "b", "c"} {
		assert.InDelta(t, 1000, counts[p], 150, "phrase %q", p)
	}
}

func TestPickReportsIndex(t *testing.T) {
	path := writeFile(t, "phrases.json", `{"en": ["zero", "one"]}`)
	m, err := Open(path, zerolog.Nop())
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		p, ok := m.Pick("en")
		require.True(t, ok)
		assert.Equal(t, "en", p.Lang)
		assert.Equal(t, []string{"zero", "one"}[p.Index], p.Text)
	}

	_, ok := m.Pick("de")
	assert.False(t, ok)
}

func TestLoadKeepsDocumentOrder(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
	}{
		{
			name: "json",
			file: "phrases.json",
			data: `{"ru": ["привет"], "en": ["hi"], "de": ["hallo"], "ab": []}`,
		},
		{
			name: "yaml",
			file: "phrases.yaml",
			data: "ru: [привет]\nen:\n  - hi\nde: [hallo]\nab: []\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Open(writeFile(t, tt.file, tt.data), zerolog.Nop())
			require.NoError(t, err)
			assert.Equal(t, []string{"ru", "en", "de", "ab"}, m.ListLanguages())
			assert.Equal(t, "привет", m.GetRandom("ru"))
		})
	}
}

func TestLoadTruncatesToCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("{")
	for i := 0; i < 15; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `"l%02d": ["p%d"]`, i, i)
	}
	b.WriteString("}")
	path := writeFile(t, "phrases.json", b.String())

	for _, limit := range []int{1, 3, 10} {
		m, err := Open(path, zerolog.Nop(), WithMaxLanguages(limit))
		require.NoError(t, err)

		langs := m.ListLanguages()
		require.Len(t, langs, limit)
		for i, code := range langs {
			assert.Equal(t, fmt.Sprintf("l%02d", i), code)
		}
		assert.Equal(t, "", m.GetRandom(fmt.Sprintf("l%02d", limit)))
	}
}

func TestLoadDefaultCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("{")
	for i := 0; i < DefaultMaxLanguages+2; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `"l%02d": []`, i)
	}
	b.WriteString("}")

	m, err := Open(writeFile(t, "phrases.json", b.String()), zerolog.Nop())
	require.NoError(t, err)
	assert.Len(t, m.ListLanguages(), DefaultMaxLanguages)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.json"), zerolog.Nop())
	assert.ErrorIs(t, err, ErrMissingFile)
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
	}{
		{"empty", "p.json", ""},
		{"syntax", "p.json", `{"en": ["hi"`},
		{"array root", "p.json", `["hi"]`},
		{"string list", "p.json", `{"en": "hi"}`},
		{"numbers", "p.json", `{"en": [1, 2]}`},
		{"trailing", "p.json", `{"en": []} {}`},
		{"yaml scalar root", "p.yaml", "hello\n"},
		{"yaml scalar value", "p.yml", "en: hi\n"},
		{"yaml syntax", "p.yaml", "en: [hi\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(writeFile(t, tt.file, tt.data), zerolog.Nop())
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestReloadReplacesSet(t *testing.T) {
	path := writeFile(t, "phrases.json", `{"en": ["old"]}`)
	m, err := Open(path, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{"fr": ["nouveau"], "en": ["new"]}`), 0o644))
	require.NoError(t, m.Reload())

	assert.Equal(t, []string{"fr", "en"}, m.ListLanguages())
	assert.Equal(t, "new", m.GetRandom("en"))
}

func TestReloadFailureKeepsPreviousSet(t *testing.T) {
	path := writeFile(t, "phrases.json", `{"en": ["old"]}`)
	m, err := Open(path, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{"en": [`), 0o644))
	assert.ErrorIs(t, m.Reload(), ErrMalformed)

	assert.Equal(t, []string{"en"}, m.ListLanguages())
	assert.Equal(t, "old", m.GetRandom("en"))
}

func TestLoadFailuresAreLeftToCaller(t *testing.T) {
	var buf strings.Builder
	m := NewManager(zerolog.New(&buf))

	assert.ErrorIs(t, m.Load(filepath.Join(t.TempDir(), "nope.json")), ErrMissingFile)
	assert.ErrorIs(t, m.Load(writeFile(t, "phrases.json", `{"en": `)), ErrMalformed)

	assert.Empty(t, buf.String())
}

func TestReloadBeforeLoad(t *testing.T) {
	m := NewManager(zerolog.Nop())
	assert.ErrorIs(t, m.Reload(), ErrMissingFile)
	assert.Empty(t, m.ListLanguages())
}

func TestListLanguagesReturnsCopy(t *testing.T) {
	m, err := Open(writeFile(t, "phrases.json", `{"en": ["hi"]}`), zerolog.Nop())
	require.NoError(t, err)

	langs := m.ListLanguages()
	langs[0] = "zz"
	assert.Equal(t, []string{"en"}, m.ListLanguages())
}
