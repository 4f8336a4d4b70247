// Package validation carries the field-level error type shared by the payment
// and receipt models. Every smart constructor and every Seal step reports its
// violations through these types so a caller can fix a request in one pass.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FieldError names the offending field and the rule it broke.
type FieldError struct {
	Field string
	Rule  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Rule)
}

// NewFieldError builds a FieldError with a formatted rule description.
func NewFieldError(field, format string, args ...any) *FieldError {
	return &FieldError{Field: field, Rule: fmt.Sprintf(format, args...)}
}

// Errors aggregates every violation found during a Seal pass.
type Errors []*FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return fmt.Sprintf("%d validation error(s): %s", len(e), strings.Join(msgs, "; "))
}

// Add appends a violation. A nil error is ignored so call sites can
// pass constructor results through unconditionally.
func (e *Errors) Add(err *FieldError) {
	if err != nil {
		*e = append(*e, err)
	}
}

// Addf records a violation for field with a formatted rule description.
func (e *Errors) Addf(field, format string, args ...any) {
	*e = append(*e, NewFieldError(field, format, args...))
}

// OrNil returns the aggregate as an error, or nil when nothing was recorded.
func (e Errors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// MaxLen rejects values longer than limit runes. Length is counted in runes,
// not bytes, because the gateway limits apply to characters (receipt names
// and measurement units are Cyrillic).
func MaxLen(field, value string, limit int) *FieldError {
	if utf8.RuneCountInString(value) > limit {
		return NewFieldError(field, "must be at most %d characters, got %d", limit, utf8.RuneCountInString(value))
	}
	return nil
}

// NonEmpty rejects the empty string.
func NonEmpty(field, value string) *FieldError {
	if value == "" {
		return NewFieldError(field, "must not be empty")
	}
	return nil
}

// Digits rejects values containing anything but ASCII digits, or whose
// length differs from want when want > 0.
func Digits(field, value string, want int) *FieldError {
	if want > 0 && len(value) != want {
		return NewFieldError(field, "must be exactly %d digits", want)
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return NewFieldError(field, "must contain only digits")
		}
	}
	return nil
}

// Phone rejects values that are not +{digits}, the gateway's phone format.
func Phone(field, value string) *FieldError {
	if len(value) < 2 || value[0] != '+' {
		return NewFieldError(field, "must be in +{digits} format")
	}
	return Digits(field, value[1:], 0)
}

// OneOf rejects values outside a closed set of tokens.
func OneOf(field, value string, allowed ...string) *FieldError {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return NewFieldError(field, "must be one of [%s], got %q", strings.Join(allowed, ", "), value)
}
