package util

import "github.com/google/uuid"

// NewID returns a random token for correlation and request ids.
func NewID() string {
	return uuid.NewString()
}

// IsID reports whether s is a hyphenated UUID, the form NewID produces.
// Braced and URN spellings are rejected so that an echoed id always looks
// like a generated one.
func IsID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
