package builder

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nfrund/formdocs/internal/handlers"
)

// MaxFields bounds the form size. The field list travels in a cookie, which
// is limited to 4 KB.
const MaxFields = 10

// FieldTypes lists the input types offered by the builder.
var FieldTypes = []string{
	"text", "number", "email", "password", "tel", "url",
	"date", "checkbox", "radio", "select", "textarea",
}

// Field is one input of the form being built.
type Field struct {
	Name      string `form:"name" json:"name" validate:"required,max=40,fieldname"`
	Type      string `form:"type" json:"type" validate:"required,oneof=text number email password tel url date checkbox radio select textarea"`
	Required  bool   `form:"required" json:"required,omitempty"`
	Min       string `form:"min" json:"min,omitempty" validate:"omitempty,numeric"`
	Max       string `form:"max" json:"max,omitempty" validate:"omitempty,numeric"`
	MinLength int    `form:"minLength" json:"minLength,omitempty" validate:"gte=0,lte=10000"`
	MaxLength int    `form:"maxLength" json:"maxLength,omitempty" validate:"omitempty,lte=10000,gtefield=MinLength"`
	Pattern   string `form:"pattern" json:"pattern,omitempty" validate:"omitempty,max=200,jsregexp"`
}

var fieldNamePattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$.]*$`)

// NewValidator returns the validator for Field, with the "fieldname" and
// "jsregexp" rules registered.
func NewValidator() (*handlers.CustomValidator, error) {
	return handlers.NewValidator(
		handlers.Rule{Tag: "fieldname", Fn: func(fl validator.FieldLevel) bool {
			return fieldNamePattern.MatchString(fl.Field().String())
		}},
		handlers.Rule{Tag: "jsregexp", Fn: func(fl validator.FieldLevel) bool {
			// RE2 is stricter than JavaScript, but a pattern it accepts is a
			// pattern the browser accepts as well. Line terminators would
			// end the regex literal.
			pattern := fl.Field().String()
			if strings.ContainsAny(pattern, "\r\n\u2028\u2029") {
				return false
			}
			_, err := regexp.Compile(pattern)
			return err == nil
		}},
	)
}

func indexOf(fields []Field, name string) int {
	for i, f := range fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}
