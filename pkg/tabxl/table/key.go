package table

import (
	"fmt"
	"strings"
)

// Key identifies one position along a table axis: either a single scalar
// label or an ordered tuple of labels, one per hierarchy level. A 1-tuple
// is distinct from a scalar; pattern matching and trailing-blank merges
// treat the two shapes differently.
//
// Labels must be comparable scalars (strings, numbers, bools, nil). A NaN
// label never equals anything, including itself.
type Key struct {
	parts []any
	tuple bool
}

// Scalar returns a scalar key holding a single label.
func Scalar(v any) Key {
	return Key{parts: []any{v}}
}

// Tuple returns a tuple key with one label per hierarchy level.
func Tuple(parts ...any) Key {
	return Key{parts: parts, tuple: true}
}

// IsTuple reports whether the key is a tuple.
func (k Key) IsTuple() bool {
	return k.tuple
}

// IsZero reports whether the key is the zero value (no labels at all).
func (k Key) IsZero() bool {
	return !k.tuple && len(k.parts) == 0
}

// Levels returns the number of hierarchy levels: 1 for a scalar key, the
// tuple length otherwise.
func (k Key) Levels() int {
	if !k.tuple {
		if len(k.parts) == 0 {
			return 0
		}
		return 1
	}
	return len(k.parts)
}

// Level returns the label at hierarchy level i. A scalar key only has
// level 0.
func (k Key) Level(i int) any {
	return k.parts[i]
}

// Truncate returns the key restricted to its first n levels. Truncating a
// scalar key returns it unchanged; a truncated tuple stays a tuple, even
// at length 1.
func (k Key) Truncate(n int) Key {
	if !k.tuple || n >= len(k.parts) {
		return k
	}
	if n < 1 {
		n = 1
	}
	return Key{parts: k.parts[:n], tuple: true}
}

// Drop returns the key without its first n levels. n must be less than
// Levels(); a single remaining label yields a scalar key.
func (k Key) Drop(n int) Key {
	if n <= 0 {
		return k
	}
	rest := k.parts[n:]
	if len(rest) == 1 {
		return Key{parts: rest}
	}
	return Key{parts: rest, tuple: true}
}

// Equal reports whether two keys have the same shape, length, and labels.
// Labels compare by interface equality, so values of different dynamic
// types differ.
func (k Key) Equal(other Key) bool {
	if k.tuple != other.tuple || len(k.parts) != len(other.parts) {
		return false
	}
	for i := range k.parts {
		if k.parts[i] != other.parts[i] {
			return false
		}
	}
	return true
}

// String returns a display form for diagnostics: the label itself for a
// scalar key, a parenthesized list for a tuple.
func (k Key) String() string {
	if !k.tuple {
		if len(k.parts) == 0 {
			return "<zero>"
		}
		return fmt.Sprintf("%v", k.parts[0])
	}
	var b strings.Builder
	b.WriteByte('(')
	for i, p := range k.parts {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", p)
	}
	b.WriteByte(')')
	return b.String()
}
