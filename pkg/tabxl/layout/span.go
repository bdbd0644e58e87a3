package layout

import (
	"fmt"

	"github.com/hmtbr/tabxl/pkg/tabxl/table"
)

// Span is a maximal run of equal key values along an axis: Count positions
// starting at Start, all carrying Value.
type Span struct {
	Start int
	Value table.Key
	Count int
}

// End returns the position just past the span.
func (s Span) End() int {
	return s.Start + s.Count
}

// Runs detects the maximal runs of equal keys in a single left-to-right
// pass. The result partitions [0, len(keys)) exactly; empty input yields
// nil. A key containing NaN never equals its neighbor, so each such
// position is its own run.
func Runs(keys []table.Key) []Span {
	if len(keys) == 0 {
		return nil
	}
	var spans []Span
	start := 0
	for i := 1; i < len(keys); i++ {
		if !keys[i].Equal(keys[i-1]) {
			spans = append(spans, Span{Start: start, Value: keys[start], Count: i - start})
			start = i
		}
	}
	return append(spans, Span{Start: start, Value: keys[start], Count: len(keys) - start})
}

func levelRuns(keys []table.Key, level int) []Span {
	trunc := make([]table.Key, len(keys))
	for i, k := range keys {
		trunc[i] = k.Truncate(level + 1)
	}
	return Runs(trunc)
}

// LevelSpans returns the runs at one hierarchy level. Keys are truncated
// to level+1 components first, so two positions continue a run at level L
// only when they agree on every level up to and including L.
func LevelSpans(keys []table.Key, level int) ([]Span, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	depth := keys[0].Levels()
	if level < 0 || level >= depth {
		return nil, fmt.Errorf("%w: span level %d of %d", table.ErrInvalidHierarchy, level, depth)
	}
	return levelRuns(keys, level), nil
}

// SpansByLevel returns the runs for levels 0..maxLevel-1. A negative
// maxLevel means the full hierarchy depth; a maxLevel beyond the depth is
// an error. A scalar axis yields exactly one level.
func SpansByLevel(keys []table.Key, maxLevel int) ([][]Span, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	depth := keys[0].Levels()
	if maxLevel < 0 {
		maxLevel = depth
	}
	if maxLevel > depth {
		return nil, fmt.Errorf("%w: span level %d of %d", table.ErrInvalidHierarchy, maxLevel, depth)
	}
	out := make([][]Span, maxLevel)
	for level := 0; level < maxLevel; level++ {
		out[level] = levelRuns(keys, level)
	}
	return out, nil
}

// SplitSpans cuts every span that crosses a set break position: a true
// entry at position i forces i to start a new span. Values carry over from
// the span being cut. Positions beyond the break slice never split.
func SplitSpans(spans []Span, breaks []bool) []Span {
	var out []Span
	for _, s := range spans {
		start := s.Start
		for i := s.Start + 1; i < s.End(); i++ {
			if i < len(breaks) && breaks[i] {
				out = append(out, Span{Start: start, Value: s.Value, Count: i - start})
				start = i
			}
		}
		out = append(out, Span{Start: start, Value: s.Value, Count: s.End() - start})
	}
	return out
}
