package table

import "fmt"

// RowKind tags an entry in a grouped row sequence.
type RowKind int

const (
	// DataRow is an ordinary table row carrying cell values.
	DataRow RowKind = iota
	// GroupHeaderRow is a synthetic row introducing a group of data rows.
	GroupHeaderRow
)

// Row is one entry of a grouped row sequence.
type Row struct {
	// Kind distinguishes data rows from synthetic group headers.
	Kind RowKind
	// Key holds the remaining (ungrouped) levels for a data row, or the
	// group label as a scalar for a header row.
	Key Key
	// Depth is the grouping level a header label came from. Zero for data
	// rows.
	Depth int
	// Cells holds the data row's values. Nil for header rows.
	Cells []any
}

// GroupRows turns the outermost levels of the row axis into synthetic
// header rows: one walk over the ordered row sequence that, before the
// first row of each new distinct key prefix at each grouped level, emits a
// GroupHeaderRow carrying that level's label. Data rows keep only the
// levels after the grouped prefix.
//
// levels counts the outermost levels to group by and must leave at least
// one level ungrouped.
func GroupRows(t *Table, levels int) ([]Row, error) {
	depth := t.Rows.Levels()
	if levels < 1 || levels >= depth {
		return nil, fmt.Errorf("%w: cannot group %d of %d row levels", ErrInvalidHierarchy, levels, depth)
	}
	keys := t.Rows.Keys
	out := make([]Row, 0, len(keys)+len(keys)/2)
	for i, k := range keys {
		for d := 0; d < levels; d++ {
			// A changed prefix at an outer level changes every deeper
			// prefix too, so headers cascade on their own.
			if i > 0 && k.Truncate(d+1).Equal(keys[i-1].Truncate(d+1)) {
				continue
			}
			out = append(out, Row{Kind: GroupHeaderRow, Key: Scalar(k.Level(d)), Depth: d})
		}
		out = append(out, Row{Kind: DataRow, Key: k.Drop(levels), Cells: t.Cells[i]})
	}
	return out, nil
}
