package writer

import (
	"errors"

	"github.com/hmtbr/tabxl/pkg/tabxl/grid"
	"github.com/hmtbr/tabxl/pkg/tabxl/layout"
	"github.com/hmtbr/tabxl/pkg/tabxl/logging"
)

// ApplyMerges applies merge ranges to a sink in order. A range colliding
// with an already applied merge is skipped and logged at debug level; any
// other sink failure aborts.
func ApplyMerges(sink grid.Sink, ranges []layout.MergeRange, log logging.Logger) error {
	if log == nil {
		log = logging.NewNoOpLogger()
	}
	for _, r := range ranges {
		err := sink.Merge(r.StartRow, r.StartCol, r.EndRow, r.EndCol)
		if err == nil {
			continue
		}
		if errors.Is(err, grid.ErrMergeConflict) {
			log.Debug("skipping merge %d,%d:%d,%d: %v", r.StartRow, r.StartCol, r.EndRow, r.EndCol, err)
			continue
		}
		return err
	}
	return nil
}
