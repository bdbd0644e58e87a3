// Package pattern matches hierarchical keys against key patterns and
// resolves per-position values from ordered rule lists. Patterns are plain
// keys: a tuple pattern pins an exact key, a scalar pattern matches by
// component.
package pattern

import (
	"strings"

	"github.com/hmtbr/tabxl/pkg/tabxl/table"
)

// Matcher controls matching behavior.
type Matcher struct {
	// Prefix enables the string-prefix fallback: a string label matches a
	// string pattern it starts with.
	Prefix bool
}

// Default is the matcher behind the package-level Match: prefix matching
// enabled.
var Default = Matcher{Prefix: true}

// Match reports whether the key matches the pattern under the default
// matcher.
func Match(key, pat table.Key) bool {
	return Default.Match(key, pat)
}

// Match reports whether the key matches the pattern. A tuple pattern
// matches only the exactly equal tuple key. A scalar pattern matches a
// scalar key by equality or prefix, and a tuple key when any component
// matches the same way.
func (m Matcher) Match(key, pat table.Key) bool {
	if pat.IsZero() || key.IsZero() {
		return false
	}
	if pat.IsTuple() {
		return key.IsTuple() && key.Equal(pat)
	}
	p := pat.Level(0)
	if !key.IsTuple() {
		return m.labelMatch(key.Level(0), p)
	}
	for i := 0; i < key.Levels(); i++ {
		if m.labelMatch(key.Level(i), p) {
			return true
		}
	}
	return false
}

func (m Matcher) labelMatch(label, pat any) bool {
	if label == pat {
		return true
	}
	if !m.Prefix {
		return false
	}
	ls, ok := label.(string)
	if !ok {
		return false
	}
	ps, ok := pat.(string)
	return ok && strings.HasPrefix(ls, ps)
}

// Rule pairs a key pattern with the value it selects.
type Rule[T any] struct {
	Pattern table.Key
	Value   T
}

// First returns the value of the first rule whose pattern matches the key.
func First[T any](m Matcher, key table.Key, rules []Rule[T]) (T, bool) {
	for _, r := range rules {
		if m.Match(key, r.Pattern) {
			return r.Value, true
		}
	}
	var zero T
	return zero, false
}

// PositionMap resolves a rule list against every key of an axis. The
// result has one entry per position: a pointer to the first matching
// rule's value, or nil where nothing matched.
func PositionMap[T any](m Matcher, keys []table.Key, rules []Rule[T]) []*T {
	out := make([]*T, len(keys))
	for i, k := range keys {
		if v, ok := First(m, k, rules); ok {
			out[i] = &v
		}
	}
	return out
}

// Flags marks every axis position matched by at least one pattern.
func Flags(m Matcher, keys []table.Key, pats []table.Key) []bool {
	out := make([]bool, len(keys))
	for i, k := range keys {
		for _, p := range pats {
			if m.Match(k, p) {
				out[i] = true
				break
			}
		}
	}
	return out
}
