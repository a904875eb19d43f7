package errors

import (
	"strings"
	"unicode"
)

// ValidateItemID validates an item identifier used in stack documents
// and serialized layouts.
//
// The validation rules are intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - No path separators (IDs end up in cache keys and file names)
//   - Maximum length of 128 characters
func ValidateItemID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidItem, "item id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidItem, "item id too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidItem, "item id contains invalid control characters")
		}
	}

	if strings.ContainsAny(id, "/\\") {
		return New(ErrCodeInvalidItem, "item id cannot contain path separators")
	}

	return nil
}

// ValidateFraction validates a relative-fraction annotation. Fractions
// are intended to lie in (0,1); values above 1 are accepted and clamped
// during measurement, but non-positive or non-finite values are
// configuration mistakes.
func ValidateFraction(f float64) error {
	if f != f { // NaN
		return New(ErrCodeInvalidFraction, "fraction must be a number")
	}
	if f <= 0 {
		return New(ErrCodeInvalidFraction, "fraction must be positive, got %g", f)
	}
	return nil
}

// ValidateSpacing validates an inter-item spacing value.
func ValidateSpacing(s float64) error {
	if s != s {
		return New(ErrCodeInvalidInput, "spacing must be a number")
	}
	if s < 0 {
		return New(ErrCodeInvalidInput, "spacing must be non-negative, got %g", s)
	}
	return nil
}
