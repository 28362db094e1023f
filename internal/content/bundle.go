package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/nfrund/formdocs/internal/domain"
	"gopkg.in/yaml.v3"
)

// Bundle is the serializable content mapping: every localized entry and
// reference page, keyed by language code. It is the unit that is loaded from
// disk, exported by the CLI and reloaded in development.
type Bundle struct {
	Version         string                          `yaml:"version" validate:"required"`
	DefaultLanguage string                          `yaml:"defaultLanguage" validate:"required"`
	Languages       []string                        `yaml:"languages" validate:"required,min=1,dive,required"`
	Entries         map[Key]map[string]Fragment     `yaml:"entries" validate:"required,dive,dive"`
	References      map[string]map[string]Reference `yaml:"references,omitempty" validate:"dive,dive"`
}

func (b Bundle) clone() Bundle {
	out := Bundle{
		Version:         b.Version,
		DefaultLanguage: b.DefaultLanguage,
		Languages:       cloneSlice(b.Languages),
	}
	if b.Entries != nil {
		out.Entries = make(map[Key]map[string]Fragment, len(b.Entries))
		for key, byLang := range b.Entries {
			inner := make(map[string]Fragment, len(byLang))
			for lang, f := range byLang {
				inner[lang] = f.clone()
			}
			out.Entries[key] = inner
		}
	}
	if b.References != nil {
		out.References = make(map[string]map[string]Reference, len(b.References))
		for name, byLang := range b.References {
			inner := make(map[string]Reference, len(byLang))
			for lang, ref := range byLang {
				inner[lang] = ref.clone()
			}
			out.References[name] = inner
		}
	}
	return out
}

// Marshal serializes a bundle to YAML.
func Marshal(b Bundle) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(b); err != nil {
		return nil, fmt.Errorf("encode content bundle: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode content bundle: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a YAML content mapping. Unknown fields are rejected so
// that a typo in the file fails the load instead of silently dropping copy.
func Unmarshal(data []byte) (Bundle, error) {
	var b Bundle
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil {
		if errors.Is(err, io.EOF) {
			return Bundle{}, fmt.Errorf("%w: empty document", domain.ErrInvalidContent)
		}
		return Bundle{}, fmt.Errorf("%w: %v", domain.ErrInvalidContent, err)
	}
	return b, nil
}
