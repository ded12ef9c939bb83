// Package errclass normalizes error values into short class names suitable
// for tagging log records, so gateway failures can be grouped without
// logging raw error strings twice.
package errclass

import (
	"errors"
	"reflect"
	"strings"
)

// Classify unwraps err to its innermost cause and returns a lowercased
// type-derived name ("apperror_requesterror", "net_operror", ...).
func Classify(err error) string {
	if err == nil {
		return ""
	}

	for {
		inner := errors.Unwrap(err)
		if inner == nil {
			break
		}
		err = inner
	}

	t := reflect.TypeOf(err)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "unknown"
	}

	name := strings.ToLower(t.String())
	name = strings.NewReplacer("*", "", ".", "_").Replace(name)
	if name == "" {
		return "unknown"
	}
	return name
}
