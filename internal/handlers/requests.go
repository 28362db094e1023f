package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// Rule is a named custom validation tag.
type Rule struct {
	Tag string
	Fn  validator.Func
}

// NewValidator creates a new CustomValidator with the given custom rules
// registered on top of the built-in tags.
func NewValidator(rules ...Rule) (*CustomValidator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	for _, r := range rules {
		if err := v.RegisterValidation(r.Tag, r.Fn); err != nil {
			return nil, fmt.Errorf("register validation %q: %w", r.Tag, err)
		}
	}
	return &CustomValidator{validator: v}, nil
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
