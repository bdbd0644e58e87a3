package tabxl

import (
	"github.com/hmtbr/tabxl/pkg/tabxl/grid"
	"github.com/hmtbr/tabxl/pkg/tabxl/layout"
	"github.com/hmtbr/tabxl/pkg/tabxl/table"
)

// The subpackage sentinels, re-exported so callers can match them with
// errors.Is without importing the subpackages.
var (
	// ErrInvalidHierarchy indicates axis keys with inconsistent shapes or a
	// level outside the hierarchy depth.
	ErrInvalidHierarchy = table.ErrInvalidHierarchy
	// ErrDimensionMismatch indicates a cell matrix whose shape does not
	// match the axes.
	ErrDimensionMismatch = table.ErrDimensionMismatch
	// ErrRegionOverlap indicates two computed layout regions intersect.
	ErrRegionOverlap = layout.ErrRegionOverlap
	// ErrMergeConflict indicates a merge range overlapping an applied one.
	ErrMergeConflict = grid.ErrMergeConflict
)
