package content

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nfrund/formdocs/internal/domain"
	"golang.org/x/text/language"
)

// DefaultLanguage is the fallback language when a mapping does not name one.
const DefaultLanguage = "en"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Store is the read-only, validated view of a Bundle. Lookups never mutate it
// and it is safe for concurrent use.
type Store struct {
	version    string
	defaultTag language.Tag
	tags       []language.Tag
	matcher    language.Matcher
	entries    map[Key]map[string]Fragment
	references map[string]map[string]Reference
	refNames   []string
	source     Bundle
}

// NewStore validates b and builds a store from it. Every problem found is
// reported; the error matches domain.ErrUnknownKey, domain.ErrMissingDefault
// or domain.ErrInvalidContent with errors.Is.
func NewStore(b Bundle) (*Store, error) {
	if err := validate.Struct(b); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidContent, err)
	}

	var problems []error
	s := &Store{
		version:    b.Version,
		entries:    make(map[Key]map[string]Fragment, len(knownKeys)),
		references: make(map[string]map[string]Reference, len(b.References)),
		source:     b.clone(),
	}

	// Language codes as written in the file map to canonical tags.
	canonical := make(map[string]string, len(b.Languages))
	seen := make(map[string]string, len(b.Languages))
	for _, code := range b.Languages {
		tag, err := language.Parse(code)
		if err != nil {
			problems = append(problems, fmt.Errorf("%w: language %q: %v", domain.ErrInvalidContent, code, err))
			continue
		}
		if first, dup := seen[tag.String()]; dup {
			problems = append(problems, fmt.Errorf("%w: language %q is the same as %q", domain.ErrInvalidContent, code, first))
			continue
		}
		seen[tag.String()] = code
		canonical[code] = tag.String()
		s.tags = append(s.tags, tag)
	}

	defaultCanonical, ok := canonical[b.DefaultLanguage]
	if !ok {
		return nil, errors.Join(append(problems,
			fmt.Errorf("%w: default language %q is not in the language list", domain.ErrInvalidContent, b.DefaultLanguage))...)
	}
	s.defaultTag = language.Make(defaultCanonical)

	// The matcher prefers its first tag when nothing matches, so the default
	// language goes first.
	matcherTags := []language.Tag{s.defaultTag}
	for _, tag := range s.tags {
		if tag.String() != defaultCanonical {
			matcherTags = append(matcherTags, tag)
		}
	}
	s.tags = matcherTags
	s.matcher = language.NewMatcher(matcherTags)

	for key, byLang := range b.Entries {
		if !key.Known() {
			problems = append(problems, fmt.Errorf("%w: %q", domain.ErrUnknownKey, key))
			continue
		}
		inner := make(map[string]Fragment, len(byLang))
		for code, f := range byLang {
			tag, ok := canonical[code]
			if !ok {
				problems = append(problems, fmt.Errorf("%w: entry %q uses undeclared language %q", domain.ErrInvalidContent, key, code))
				continue
			}
			if f.Empty() {
				problems = append(problems, fmt.Errorf("%w: entry %q is empty for language %q", domain.ErrInvalidContent, key, code))
				continue
			}
			inner[tag] = f.clone()
		}
		s.entries[key] = inner
	}
	for _, key := range knownKeys {
		if _, ok := s.entries[key][defaultCanonical]; !ok {
			problems = append(problems, fmt.Errorf("%w: key %q has no %q entry", domain.ErrMissingDefault, key, b.DefaultLanguage))
		}
	}

	for name, byLang := range b.References {
		slug := slugify(name)
		if _, dup := s.references[slug]; dup {
			problems = append(problems, fmt.Errorf("%w: reference %q collides with another reference", domain.ErrInvalidContent, name))
			continue
		}
		inner := make(map[string]Reference, len(byLang))
		for code, ref := range byLang {
			tag, ok := canonical[code]
			if !ok {
				problems = append(problems, fmt.Errorf("%w: reference %q uses undeclared language %q", domain.ErrInvalidContent, name, code))
				continue
			}
			inner[tag] = ref.clone()
		}
		if _, ok := inner[defaultCanonical]; !ok {
			problems = append(problems, fmt.Errorf("%w: reference %q has no %q entry", domain.ErrMissingDefault, name, b.DefaultLanguage))
		}
		s.references[slug] = inner
		s.refNames = append(s.refNames, slug)
	}
	sort.Strings(s.refNames)

	if len(problems) > 0 {
		return nil, errors.Join(problems...)
	}
	return s, nil
}

// Version returns the version string of the loaded mapping.
func (s *Store) Version() string { return s.version }

// DefaultLanguage returns the fallback language tag.
func (s *Store) DefaultLanguage() language.Tag { return s.defaultTag }

// Languages returns the supported language codes, default first.
func (s *Store) Languages() []string {
	out := make([]string, len(s.tags))
	for i, tag := range s.tags {
		out[i] = tag.String()
	}
	return out
}

// Supported reports whether lang resolves to a supported language without
// falling back.
func (s *Store) Supported(lang string) bool {
	tag, err := language.Parse(lang)
	if err != nil {
		return false
	}
	_, _, conf := s.matcher.Match(tag)
	return conf != language.No
}

// Resolve maps a requested language code onto a supported tag. Unparsable and
// unsupported codes resolve to the default language.
func (s *Store) Resolve(lang string) language.Tag {
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return s.defaultTag
	}
	_, idx, conf := s.matcher.Match(tag)
	if conf == language.No {
		return s.defaultTag
	}
	return s.tags[idx]
}

// Lookup returns the fragment for key in lang, falling back to the default
// language when lang is unsupported or has no entry for key.
func (s *Store) Lookup(key Key, lang string) (Fragment, error) {
	if !key.Known() {
		return Fragment{}, fmt.Errorf("%w: %q", domain.ErrUnknownKey, key)
	}
	byLang := s.entries[key]
	if f, ok := byLang[s.Resolve(lang).String()]; ok {
		return f.clone(), nil
	}
	f, ok := byLang[s.defaultTag.String()]
	if !ok {
		return Fragment{}, fmt.Errorf("%w: %q", domain.ErrMissingDefault, key)
	}
	return f.clone(), nil
}

// Text returns the text of key in lang. A key outside the enumeration is a
// programming error and panics.
func (s *Store) Text(key Key, lang string) string {
	f, err := s.Lookup(key, lang)
	if err != nil {
		panic(err)
	}
	return f.Text
}

// References returns the slugs of every reference page, sorted.
func (s *Store) References() []string {
	return cloneSlice(s.refNames)
}

// Reference returns the reference page named name (case-insensitive) in lang,
// with the same fallback rules as Lookup.
func (s *Store) Reference(name, lang string) (Reference, error) {
	byLang, ok := s.references[slugify(name)]
	if !ok {
		return Reference{}, fmt.Errorf("%w: %q", domain.ErrUnknownReference, name)
	}
	if ref, ok := byLang[s.Resolve(lang).String()]; ok {
		return ref.clone(), nil
	}
	ref, ok := byLang[s.defaultTag.String()]
	if !ok {
		return Reference{}, fmt.Errorf("%w: reference %q", domain.ErrMissingDefault, name)
	}
	return ref.clone(), nil
}

// Bundle returns a deep copy of the mapping the store was built from.
func (s *Store) Bundle() Bundle {
	return s.source.clone()
}

// Localizer binds a store to one resolved language.
type Localizer struct {
	store *Store
	tag   language.Tag
}

// For returns a Localizer for the requested language code.
func (s *Store) For(lang string) Localizer {
	return Localizer{store: s, tag: s.Resolve(lang)}
}

// Tag returns the resolved language.
func (l Localizer) Tag() language.Tag { return l.tag }

// Lang returns the resolved language code.
func (l Localizer) Lang() string { return l.tag.String() }

// Store returns the store the localizer reads from.
func (l Localizer) Store() *Store { return l.store }

// T returns the text of key. See Store.Text.
func (l Localizer) T(key Key) string { return l.store.Text(key, l.tag.String()) }

// Fragment returns the full fragment of key.
func (l Localizer) Fragment(key Key) Fragment {
	f, err := l.store.Lookup(key, l.tag.String())
	if err != nil {
		panic(err)
	}
	return f
}

func slugify(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
