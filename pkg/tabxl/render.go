package tabxl

import (
	"github.com/hmtbr/tabxl/pkg/tabxl/grid"
	"github.com/hmtbr/tabxl/pkg/tabxl/table"
	"github.com/hmtbr/tabxl/pkg/tabxl/writer"
)

// Render writes a whole table onto a grid sink: header and index values,
// axis names, data cells, then merges and borders. With GroupLevels set,
// the outermost row levels become group header rows first.
func Render(t *table.Table, sink grid.Sink, opts Options) error {
	if opts.ShouldGroup() {
		w, err := writer.NewGrouped(t, sink, opts.GroupLevels, opts.Config())
		if err != nil {
			return err
		}
		return w.WriteAll()
	}
	w, err := writer.New(t, sink, opts.Config())
	if err != nil {
		return err
	}
	return w.WriteAll()
}
