package domain

import "errors"

// Sentinel errors for the documentation site. These provide consistent,
// checkable errors for content and page lookups.
var (
	ErrUnknownKey       = errors.New("unknown content key")
	ErrUnknownReference = errors.New("unknown reference")
	ErrMissingDefault   = errors.New("content entry missing default language")
	ErrInvalidContent   = errors.New("invalid content mapping")
	ErrNotFound         = errors.New("requested resource not found")
)
