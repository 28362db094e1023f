package content

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nfrund/formdocs/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBundle returns a minimal valid mapping: every key in English, a few in
// Spanish, and one reference page.
func testBundle() Bundle {
	entries := make(map[Key]map[string]Fragment, len(knownKeys))
	for _, k := range knownKeys {
		entries[k] = map[string]Fragment{"en": {Text: "en:" + string(k)}}
	}
	entries[KeyName]["es"] = Fragment{Text: "Nombre"}
	entries[KeyType]["es"] = Fragment{Text: "Tipo"}
	entries[KeyBuilderRules]["en"] = Fragment{
		Text: "Validation rules",
		Rows: []Row{{Name: "required", Type: "boolean", Description: "must have a value"}},
	}

	return Bundle{
		Version:         "test",
		DefaultLanguage: "en",
		Languages:       []string{"en", "es", "pt-BR"},
		Entries:         entries,
		References: map[string]map[string]Reference{
			"getFieldState": {
				"en": {
					Name:        "getFieldState",
					TypeName:    "object",
					Description: []string{"Return individual field state."},
					Return:      []Field{{Name: "isDirty", Type: "boolean", Description: "field is modified.", Condition: "subscribe to `dirtyFields`."}},
					Examples:    []Example{{Label: "getFieldState", Code: "getFieldState('test')"}},
				},
				"es": {
					Name:        "getFieldState",
					TypeName:    "object",
					Description: []string{"Devuelve el estado del campo."},
					Examples:    []Example{{Label: "getFieldState", Code: "getFieldState('test')"}},
				},
			},
		},
	}
}

func mustStore(t *testing.T, b Bundle) *Store {
	t.Helper()
	s, err := NewStore(b)
	require.NoError(t, err)
	return s
}

func TestStore_EverySupportedLanguageResolvesEveryKey(t *testing.T) {
	stores := map[string]*Store{"test bundle": mustStore(t, testBundle())}

	embedded, err := NewEmbeddedLoader().Load(context.Background())
	require.NoError(t, err)
	stores["embedded bundle"] = embedded

	for name, s := range stores {
		t.Run(name, func(t *testing.T) {
			for _, lang := range s.Languages() {
				for _, key := range Keys() {
					f, err := s.Lookup(key, lang)
					require.NoError(t, err, "lookup %s/%s", key, lang)
					assert.False(t, f.Empty(), "lookup %s/%s returned empty content", key, lang)
				}
			}
		})
	}
}

func TestStore_UnsupportedLanguageFallsBackToDefault(t *testing.T) {
	s := mustStore(t, testBundle())

	for _, lang := range []string{"fr", "de-DE", "xx", "", "not a language", "ko"} {
		t.Run(fmt.Sprintf("lang=%q", lang), func(t *testing.T) {
			for _, key := range Keys() {
				got, err := s.Lookup(key, lang)
				require.NoError(t, err)
				want, err := s.Lookup(key, "en")
				require.NoError(t, err)
				assert.Equal(t, want, got, "key %s", key)
			}
			assert.Equal(t, "en", s.Resolve(lang).String())
			assert.False(t, s.Supported(lang))
		})
	}
}

func TestStore_Lookup(t *testing.T) {
	s := mustStore(t, testBundle())

	t.Run("translated entry", func(t *testing.T) {
		f, err := s.Lookup(KeyName, "es")
		require.NoError(t, err)
		assert.Equal(t, "Nombre", f.Text)
	})

	t.Run("regional variant matches its base language", func(t *testing.T) {
		f, err := s.Lookup(KeyName, "es-MX")
		require.NoError(t, err)
		assert.Equal(t, "Nombre", f.Text)
		assert.True(t, s.Supported("es-MX"))
	})

	t.Run("supported language without an entry falls back per key", func(t *testing.T) {
		f, err := s.Lookup(KeyDescription, "es")
		require.NoError(t, err)
		assert.Equal(t, "en:description", f.Text)
	})

	t.Run("structured fragment", func(t *testing.T) {
		f, err := s.Lookup(KeyBuilderRules, "en")
		require.NoError(t, err)
		require.Len(t, f.Rows, 1)
		assert.Equal(t, "required", f.Rows[0].Name)
	})

	t.Run("unknown key is an error, not empty content", func(t *testing.T) {
		_, err := s.Lookup(Key("nope"), "en")
		assert.ErrorIs(t, err, domain.ErrUnknownKey)
	})

	t.Run("Text panics on unknown key", func(t *testing.T) {
		assert.Panics(t, func() { s.Text(Key("nope"), "en") })
	})

	t.Run("returned fragments are copies", func(t *testing.T) {
		f, err := s.Lookup(KeyBuilderRules, "en")
		require.NoError(t, err)
		f.Rows[0].Name = "mutated"

		again, err := s.Lookup(KeyBuilderRules, "en")
		require.NoError(t, err)
		assert.Equal(t, "required", again.Rows[0].Name)
	})
}

func TestStore_Reference(t *testing.T) {
	s := mustStore(t, testBundle())

	assert.Equal(t, []string{"getfieldstate"}, s.References())

	ref, err := s.Reference("GetFieldState", "es")
	require.NoError(t, err)
	assert.Equal(t, "Devuelve el estado del campo.", ref.Description[0])

	ref, err = s.Reference("getfieldstate", "ja")
	require.NoError(t, err)
	assert.Equal(t, "Return individual field state.", ref.Description[0])
	assert.Equal(t, "getfieldstate", ref.Slug())

	_, err = s.Reference("useController", "en")
	assert.ErrorIs(t, err, domain.ErrUnknownReference)
}

func TestLocalizer(t *testing.T) {
	s := mustStore(t, testBundle())

	l := s.For("es-ES")
	assert.Equal(t, "es", l.Lang())
	assert.Equal(t, "Tipo", l.T(KeyType))
	assert.Equal(t, "en:rules", l.T(KeyRules))
	assert.Len(t, l.Fragment(KeyBuilderRules).Rows, 1)

	assert.Equal(t, "en", s.For("klingon").Lang())
}

func TestNewStore_RejectsBadMappings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(b *Bundle)
		want   error
	}{
		{
			name:   "unknown key",
			mutate: func(b *Bundle) { b.Entries[Key("mystery")] = map[string]Fragment{"en": {Text: "?"}} },
			want:   domain.ErrUnknownKey,
		},
		{
			name:   "missing default entry",
			mutate: func(b *Bundle) { delete(b.Entries[KeyTips], "en") },
			want:   domain.ErrMissingDefault,
		},
		{
			name:   "missing key entirely",
			mutate: func(b *Bundle) { delete(b.Entries, KeyFooter) },
			want:   domain.ErrMissingDefault,
		},
		{
			name:   "empty fragment",
			mutate: func(b *Bundle) { b.Entries[KeyName]["es"] = Fragment{} },
			want:   domain.ErrInvalidContent,
		},
		{
			name:   "undeclared language",
			mutate: func(b *Bundle) { b.Entries[KeyName]["fr"] = Fragment{Text: "Nom"} },
			want:   domain.ErrInvalidContent,
		},
		{
			name:   "default language not listed",
			mutate: func(b *Bundle) { b.DefaultLanguage = "fr" },
			want:   domain.ErrInvalidContent,
		},
		{
			name:   "reference without default language",
			mutate: func(b *Bundle) { delete(b.References["getFieldState"], "en") },
			want:   domain.ErrMissingDefault,
		},
		{
			name: "reference failing validation",
			mutate: func(b *Bundle) {
				ref := b.References["getFieldState"]["en"]
				ref.Examples = nil
				b.References["getFieldState"]["en"] = ref
			},
			want: domain.ErrInvalidContent,
		},
		{
			name: "row without a name",
			mutate: func(b *Bundle) {
				b.Entries[KeyBuilderRules]["en"] = Fragment{Rows: []Row{{Type: "boolean"}}}
			},
			want: domain.ErrInvalidContent,
		},
		{
			name:   "language listed twice under different case",
			mutate: func(b *Bundle) { b.Languages = append(b.Languages, "EN") },
			want:   domain.ErrInvalidContent,
		},
		{
			name:   "missing version",
			mutate: func(b *Bundle) { b.Version = "" },
			want:   domain.ErrInvalidContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBundle()
			tt.mutate(&b)

			_, err := NewStore(b)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestRoundTrip_PreservesEveryLookup(t *testing.T) {
	original, err := NewEmbeddedLoader().Load(context.Background())
	require.NoError(t, err)

	data, err := Marshal(original.Bundle())
	require.NoError(t, err)
	decoded, err := Unmarshal(data)
	require.NoError(t, err)
	reloaded := mustStore(t, decoded)

	if diff := cmp.Diff(original.Bundle(), reloaded.Bundle()); diff != "" {
		t.Fatalf("bundle changed across round trip (-want +got):\n%s", diff)
	}

	langs := append(original.Languages(), "fr", "")
	for _, lang := range langs {
		for _, key := range Keys() {
			want, err := original.Lookup(key, lang)
			require.NoError(t, err)
			got, err := reloaded.Lookup(key, lang)
			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("lookup %s/%s changed (-want +got):\n%s", key, lang, diff)
			}
		}
		for _, name := range original.References() {
			want, err := original.Reference(name, lang)
			require.NoError(t, err)
			got, err := reloaded.Reference(name, lang)
			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("reference %s/%s changed (-want +got):\n%s", name, lang, diff)
			}
		}
	}
}

func TestUnmarshal(t *testing.T) {
	t.Run("scalar and structured fragments", func(t *testing.T) {
		b, err := Unmarshal([]byte(`
version: "1"
defaultLanguage: en
languages: [en]
entries:
  name:
    en: Name
  builderRules:
    en:
      text: Rules
      rows:
        - name: required
          type: boolean
`))
		require.NoError(t, err)
		assert.Equal(t, Fragment{Text: "Name"}, b.Entries[KeyName]["en"])
		assert.Equal(t, "required", b.Entries[KeyBuilderRules]["en"].Rows[0].Name)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := Unmarshal([]byte("version: \"1\"\ncolour: blue\n"))
		assert.ErrorIs(t, err, domain.ErrInvalidContent)
	})

	t.Run("unknown field inside a structured fragment", func(t *testing.T) {
		_, err := Unmarshal([]byte("entries:\n  name:\n    en: {text: Name, row: [{name: x}]}\n"))
		assert.ErrorIs(t, err, domain.ErrInvalidContent)
		assert.ErrorContains(t, err, "field row not found")
	})

	t.Run("unknown field inside a fragment row", func(t *testing.T) {
		_, err := Unmarshal([]byte(`
entries:
  builderRules:
    en:
      rows:
        - name: required
          typ: boolean
`))
		assert.ErrorIs(t, err, domain.ErrInvalidContent)
		assert.ErrorContains(t, err, "field typ not found")
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := Unmarshal(nil)
		assert.ErrorIs(t, err, domain.ErrInvalidContent)
	})

	t.Run("fragment of the wrong shape", func(t *testing.T) {
		_, err := Unmarshal([]byte("entries:\n  name:\n    en: [a, b]\n"))
		assert.ErrorIs(t, err, domain.ErrInvalidContent)
	})
}
