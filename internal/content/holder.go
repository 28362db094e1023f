package content

import "sync/atomic"

// Holder publishes the current Store. Readers take one snapshot per request
// with Current and keep using it even if a reload swaps the holder meanwhile.
type Holder struct {
	current atomic.Pointer[Store]
}

// NewHolder creates a holder serving s.
func NewHolder(s *Store) *Holder {
	h := &Holder{}
	h.current.Store(s)
	return h
}

// Current returns the store in effect.
func (h *Holder) Current() *Store {
	return h.current.Load()
}

// Swap replaces the store and returns the previous one.
func (h *Holder) Swap(s *Store) *Store {
	return h.current.Swap(s)
}
