package dot

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidID is returned by [NewID] when the candidate string is not a
// legal bare DOT identifier, and by [Render] when a graph surfaces a zero
// ID. Identifiers must match [a-zA-Z_][a-zA-Z0-9_]*.
var ErrInvalidID = errors.New("invalid identifier")

var idPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ID is a validated bare identifier usable as a graph or node name.
//
// IDs are emitted into the document without quoting or escaping, which is
// safe because [NewID] is the only way to obtain a non-zero value. The zero
// value is invalid and rejected at render time. IDs are immutable.
type ID struct {
	name string
}

// NewID validates candidate against the bare-identifier grammar: an ASCII
// letter or underscore followed by letters, digits, or underscores. No
// trimming or case folding is applied. Returns [ErrInvalidID] (wrapped with
// the offending string) on violation.
func NewID(candidate string) (ID, error) {
	if !idPattern.MatchString(candidate) {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidID, candidate)
	}
	return ID{name: candidate}, nil
}

// MustID is like [NewID] but panics on invalid input. Intended for
// identifiers that are compile-time constants.
func MustID(candidate string) ID {
	id, err := NewID(candidate)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the identifier text exactly as validated.
func (id ID) String() string { return id.name }

// isZero reports whether the ID was not produced by NewID.
func (id ID) isZero() bool { return id.name == "" }
