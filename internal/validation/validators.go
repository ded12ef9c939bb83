// Package validation holds the reusable form-field validators the screens and
// view models run before a submit. A Validator returns the user-facing
// message (Spanish, matching the backend's locale) or "" when the value
// passes. Validation happens client-side only; nothing here re-checks the
// backend schema.
package validation

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Validator validates a raw string value and returns a message if invalid.
type Validator func(v string) string

// Required validates that a field is not empty after trimming.
func Required(fieldName string) Validator {
	return func(v string) string {
		if strings.TrimSpace(v) == "" {
			return fieldName + " es obligatorio"
		}
		return ""
	}
}

// IntRange validates that a field parses as an integer inside [minVal, maxVal].
func IntRange(fieldName string, minVal, maxVal int) Validator {
	return func(v string) string {
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fieldName + " debe ser un número"
		}
		if i < minVal || i > maxVal {
			return fmt.Sprintf("%s debe estar entre %d y %d", fieldName, minVal, maxVal)
		}
		return ""
	}
}

// FloatRange validates that a field parses as a number inside [minVal, maxVal].
func FloatRange(fieldName string, minVal, maxVal float64) Validator {
	return func(v string) string {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fieldName + " debe ser un número"
		}
		if f < minVal || f > maxVal {
			return fmt.Sprintf("%s debe estar entre %g y %g", fieldName, minVal, maxVal)
		}
		return ""
	}
}

// OptionalURL validates that a field, when present, is a valid http(s) URL.
func OptionalURL(fieldName string) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		p, err := url.Parse(v)
		if err != nil || (p.Scheme != "http" && p.Scheme != "https") || p.Host == "" {
			return fieldName + " debe ser una URL http(s) válida"
		}
		return ""
	}
}

// OneOf validates that a field matches one of the options (case-insensitive).
func OneOf(fieldName string, options []string) Validator {
	return func(v string) string {
		v = strings.ToUpper(strings.TrimSpace(v))
		for _, opt := range options {
			if v == strings.ToUpper(opt) {
				return ""
			}
		}
		return fmt.Sprintf("%s debe ser uno de: %s", fieldName, strings.Join(options, ", "))
	}
}

// FieldValidator accumulates per-field messages, stopping at the first
// failure for each field.
type FieldValidator struct {
	errors map[string]string
	order  []string
}

// New creates an empty FieldValidator.
func New() *FieldValidator {
	return &FieldValidator{errors: make(map[string]string)}
}

// Validate runs the validators against value, recording the first failure
// under field.
func (fv *FieldValidator) Validate(field, value string, validators ...Validator) *FieldValidator {
	if _, seen := fv.errors[field]; seen {
		return fv
	}
	for _, v := range validators {
		if msg := v(value); msg != "" {
			fv.errors[field] = msg
			fv.order = append(fv.order, field)
			break
		}
	}
	return fv
}

// Errors returns the accumulated messages keyed by field.
func (fv *FieldValidator) Errors() map[string]string {
	return fv.errors
}

// First returns the first recorded failure in insertion order, or ("", "")
// when everything passed. Screens surface one message at a time.
func (fv *FieldValidator) First() (field, message string) {
	if len(fv.order) == 0 {
		return "", ""
	}
	return fv.order[0], fv.errors[fv.order[0]]
}
