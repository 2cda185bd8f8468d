package domain

import "unique"

// InternedString wraps a unique.Handle[string]. Package names repeat across
// every input set of a resolved environment, so interning them keeps the
// working set small for large dependency closures.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString interns s and returns a handle-backed value object.
func NewInternedString(s string) InternedString {
	return InternedString{
		h: unique.Make(s),
	}
}

// String returns the underlying string value.
func (is InternedString) String() string {
	var zero unique.Handle[string]
	if is.h == zero {
		return ""
	}
	return is.h.Value()
}
