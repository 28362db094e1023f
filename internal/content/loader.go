package content

import (
	"context"
	"embed"
	"fmt"
	"io"

	"github.com/nfrund/formdocs/internal/storage"
)

// EmbeddedPath is the location of the built-in mapping inside the embedded FS.
const EmbeddedPath = "data/content.yaml"

//go:embed data/*.yaml
var embedded embed.FS

// EmbeddedStore exposes the built-in mapping as a read-only storage.Store.
func EmbeddedStore() storage.Store {
	return storage.NewReadOnlyStore(embedded)
}

// Loader reads a mapping file from a storage backend and builds a Store.
type Loader struct {
	store           storage.Store
	path            string
	defaultLanguage string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithDefaultLanguage overrides the default language named in the mapping.
func WithDefaultLanguage(lang string) LoaderOption {
	return func(l *Loader) {
		l.defaultLanguage = lang
	}
}

// NewLoader creates a loader for path on store.
func NewLoader(store storage.Store, path string, opts ...LoaderOption) *Loader {
	l := &Loader{store: store, path: path}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewEmbeddedLoader creates a loader for the built-in mapping.
func NewEmbeddedLoader(opts ...LoaderOption) *Loader {
	return NewLoader(EmbeddedStore(), EmbeddedPath, opts...)
}

// Path returns the mapping file path.
func (l *Loader) Path() string { return l.path }

// LoadBundle reads and decodes the mapping without validating it.
func (l *Loader) LoadBundle(ctx context.Context) (Bundle, error) {
	rc, err := l.store.Get(ctx, l.path)
	if err != nil {
		return Bundle{}, fmt.Errorf("open content %s: %w", l.path, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return Bundle{}, fmt.Errorf("read content %s: %w", l.path, err)
	}
	b, err := Unmarshal(data)
	if err != nil {
		return Bundle{}, fmt.Errorf("decode content %s: %w", l.path, err)
	}
	if l.defaultLanguage != "" {
		b.DefaultLanguage = l.defaultLanguage
	}
	return b, nil
}

// Load reads, decodes and validates the mapping.
func (l *Loader) Load(ctx context.Context) (*Store, error) {
	b, err := l.LoadBundle(ctx)
	if err != nil {
		return nil, err
	}
	s, err := NewStore(b)
	if err != nil {
		return nil, fmt.Errorf("load content %s: %w", l.path, err)
	}
	return s, nil
}
