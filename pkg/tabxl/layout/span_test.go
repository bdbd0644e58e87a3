package layout

import (
	"errors"
	"math"
	"testing"

	"github.com/hmtbr/tabxl/pkg/tabxl/table"
)

func spansEqual(a, b []Span) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Start != b[i].Start || a[i].Count != b[i].Count || !a[i].Value.Equal(b[i].Value) {
			return false
		}
	}
	return true
}

// checkPartition verifies the runs cover [0, n) exactly, in order, with no
// gaps or overlaps.
func checkPartition(t *testing.T, spans []Span, n int) {
	t.Helper()
	next := 0
	for _, s := range spans {
		if s.Start != next {
			t.Errorf("span starts at %d, expected %d", s.Start, next)
		}
		if s.Count < 1 {
			t.Errorf("span at %d has count %d", s.Start, s.Count)
		}
		next = s.End()
	}
	if next != n {
		t.Errorf("spans cover [0, %d), expected [0, %d)", next, n)
	}
}

func TestRuns(t *testing.T) {
	tests := []struct {
		name string
		keys []table.Key
		want []Span
	}{
		{
			name: "empty",
			keys: nil,
			want: nil,
		},
		{
			name: "single",
			keys: []table.Key{table.Scalar("a")},
			want: []Span{{Start: 0, Value: table.Scalar("a"), Count: 1}},
		},
		{
			name: "runs",
			keys: []table.Key{table.Scalar("a"), table.Scalar("a"), table.Scalar("b"), table.Scalar("a")},
			want: []Span{
				{Start: 0, Value: table.Scalar("a"), Count: 2},
				{Start: 2, Value: table.Scalar("b"), Count: 1},
				{Start: 3, Value: table.Scalar("a"), Count: 1},
			},
		},
		{
			name: "all equal",
			keys: []table.Key{table.Scalar(1), table.Scalar(1), table.Scalar(1)},
			want: []Span{{Start: 0, Value: table.Scalar(1), Count: 3}},
		},
	}
	for _, tt := range tests {
		got := Runs(tt.keys)
		if !spansEqual(got, tt.want) {
			t.Errorf("%s: Runs = %v, expected %v", tt.name, got, tt.want)
		}
		checkPartition(t, got, len(tt.keys))
	}
}

func TestRunsNaNNeverJoins(t *testing.T) {
	keys := []table.Key{table.Scalar(math.NaN()), table.Scalar(math.NaN())}
	got := Runs(keys)
	if len(got) != 2 {
		t.Errorf("NaN keys produced %d spans, expected 2", len(got))
	}
	checkPartition(t, got, 2)
}

func TestLevelSpans(t *testing.T) {
	keys := []table.Key{
		table.Tuple("A", "x"),
		table.Tuple("A", "y"),
		table.Tuple("B", "x"),
	}

	level0, err := LevelSpans(keys, 0)
	if err != nil {
		t.Fatalf("LevelSpans(0) failed: %v", err)
	}
	want0 := []Span{
		{Start: 0, Value: table.Tuple("A"), Count: 2},
		{Start: 2, Value: table.Tuple("B"), Count: 1},
	}
	if !spansEqual(level0, want0) {
		t.Errorf("level 0 = %v, expected %v", level0, want0)
	}

	level1, err := LevelSpans(keys, 1)
	if err != nil {
		t.Fatalf("LevelSpans(1) failed: %v", err)
	}
	if len(level1) != 3 {
		t.Errorf("level 1 has %d spans, expected 3 singletons", len(level1))
	}
	for _, s := range level1 {
		if s.Count != 1 {
			t.Errorf("level 1 span %v is not a singleton", s)
		}
	}
}

// A shared outer prefix is required for an inner run: the same inner label
// under different outer labels must not fuse.
func TestLevelSpansOuterPrefixBreaksRun(t *testing.T) {
	keys := []table.Key{
		table.Tuple("A", "x"),
		table.Tuple("B", "x"),
	}
	got, err := LevelSpans(keys, 1)
	if err != nil {
		t.Fatalf("LevelSpans failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d spans, expected 2", len(got))
	}
}

func TestLevelSpansErrors(t *testing.T) {
	tuples := []table.Key{table.Tuple("A", "x")}
	if _, err := LevelSpans(tuples, 2); !errors.Is(err, table.ErrInvalidHierarchy) {
		t.Errorf("level beyond depth: got %v", err)
	}
	scalars := []table.Key{table.Scalar("a")}
	if _, err := LevelSpans(scalars, 1); !errors.Is(err, table.ErrInvalidHierarchy) {
		t.Errorf("level 1 of scalar axis: got %v", err)
	}
	if _, err := LevelSpans(scalars, 0); err != nil {
		t.Errorf("level 0 of scalar axis: got %v", err)
	}
}

func TestSpansByLevel(t *testing.T) {
	keys := []table.Key{
		table.Tuple("A", "x"),
		table.Tuple("A", "y"),
	}

	all, err := SpansByLevel(keys, -1)
	if err != nil {
		t.Fatalf("SpansByLevel failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d levels, expected 2", len(all))
	}
	if len(all[0]) != 1 || all[0][0].Count != 2 {
		t.Errorf("level 0 = %v", all[0])
	}
	if len(all[1]) != 2 {
		t.Errorf("level 1 = %v", all[1])
	}

	one, err := SpansByLevel(keys, 1)
	if err != nil {
		t.Fatalf("SpansByLevel(1) failed: %v", err)
	}
	if len(one) != 1 {
		t.Errorf("maxLevel 1 produced %d levels", len(one))
	}

	if _, err := SpansByLevel(keys, 3); !errors.Is(err, table.ErrInvalidHierarchy) {
		t.Errorf("maxLevel beyond depth: got %v", err)
	}

	empty, err := SpansByLevel(nil, -1)
	if err != nil || empty != nil {
		t.Errorf("empty keys = %v, %v", empty, err)
	}
}

func TestSplitSpans(t *testing.T) {
	v := table.Scalar("a")
	spans := []Span{{Start: 0, Value: v, Count: 4}}

	breaks := make([]bool, 4)
	breaks[2] = true
	got := SplitSpans(spans, breaks)
	want := []Span{
		{Start: 0, Value: v, Count: 2},
		{Start: 2, Value: v, Count: 2},
	}
	if !spansEqual(got, want) {
		t.Errorf("SplitSpans = %v, expected %v", got, want)
	}

	// A break at a span start changes nothing.
	startOnly := make([]bool, 4)
	startOnly[0] = true
	if got := SplitSpans(spans, startOnly); !spansEqual(got, spans) {
		t.Errorf("break at start: %v", got)
	}

	if got := SplitSpans(spans, nil); !spansEqual(got, spans) {
		t.Errorf("no breaks: %v", got)
	}
}
