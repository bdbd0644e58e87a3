package table

import "fmt"

// Axis describes one side of a table: the ordered keys plus optional
// per-level names.
type Axis struct {
	// Keys holds one key per position, all of one shape: all scalars, or
	// all tuples of the same length.
	Keys []Key
	// Names holds one name per hierarchy level. Nil entries mark unnamed
	// levels; an empty slice marks a fully unnamed axis.
	Names []any
}

// ScalarAxis returns an axis of scalar keys, one per label.
func ScalarAxis(labels ...any) Axis {
	keys := make([]Key, len(labels))
	for i, v := range labels {
		keys[i] = Scalar(v)
	}
	return Axis{Keys: keys}
}

// Len returns the number of positions along the axis.
func (a Axis) Len() int {
	return len(a.Keys)
}

// Levels returns the hierarchy depth: the level count of the keys, or the
// name count for an axis with names but no keys, or zero for an entirely
// empty axis.
func (a Axis) Levels() int {
	if len(a.Keys) > 0 {
		return a.Keys[0].Levels()
	}
	return len(a.Names)
}

// HasNames reports whether at least one level carries a non-blank name.
func (a Axis) HasNames() bool {
	for _, n := range a.Names {
		if !IsBlank(n) {
			return true
		}
	}
	return false
}

// Name returns the name of the given level, or nil when the axis has no
// names.
func (a Axis) Name(level int) any {
	if level < len(a.Names) {
		return a.Names[level]
	}
	return nil
}

// Validate checks the axis invariants: uniform key shape and length, and a
// name count matching the level count when names are present.
func (a Axis) Validate() error {
	if len(a.Keys) == 0 {
		return nil
	}
	first := a.Keys[0]
	for i, k := range a.Keys[1:] {
		if k.IsTuple() != first.IsTuple() {
			return fmt.Errorf("%w: key %d mixes scalar and tuple shapes", ErrInvalidHierarchy, i+1)
		}
		if k.Levels() != first.Levels() {
			return fmt.Errorf("%w: key %d has %d levels, want %d", ErrInvalidHierarchy, i+1, k.Levels(), first.Levels())
		}
	}
	if len(a.Names) > 0 && len(a.Names) != first.Levels() {
		return fmt.Errorf("%w: %d level names for %d levels", ErrInvalidHierarchy, len(a.Names), first.Levels())
	}
	return nil
}
