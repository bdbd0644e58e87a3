// Package tabxl renders tables with hierarchical row and column keys onto
// spreadsheet grids: multi-level headers, merged label spans, hierarchy
// borders, and pattern-driven number formats.
package tabxl

import (
	"github.com/hmtbr/tabxl/pkg/tabxl/grid"
	"github.com/hmtbr/tabxl/pkg/tabxl/layout"
	"github.com/hmtbr/tabxl/pkg/tabxl/logging"
	"github.com/hmtbr/tabxl/pkg/tabxl/pattern"
	"github.com/hmtbr/tabxl/pkg/tabxl/table"
	"github.com/hmtbr/tabxl/pkg/tabxl/writer"
)

// Options configures rendering behavior.
type Options struct {
	// Origin is the top-left cell of the table rectangle, zero-based.
	Origin layout.Pos
	// GroupLevels turns that many outermost row levels into group header
	// rows. Zero renders the table ungrouped.
	GroupLevels int
	// NA is written in place of missing data values.
	NA string
	// NumberFormat is the fallback format code for numeric data cells.
	NumberFormat string
	// RowNumberFormats and ColNumberFormats select format codes by key
	// pattern. A row match wins over a column match, which wins over
	// NumberFormat.
	RowNumberFormats []pattern.Rule[string]
	ColNumberFormats []pattern.Rule[string]
	// RowBorders and ColBorders mark keys that get an extra separator
	// line.
	RowBorders []table.Key
	ColBorders []table.Key
	// MinBorderLevel is the number of innermost hierarchy levels that
	// never draw level separators.
	// If nil, defaults to 1.
	MinBorderLevel *int
	// SeparatorLine is the line style of the index and header separators.
	// If unset, defaults to a medium line.
	SeparatorLine grid.LineStyle
	// LevelLine is the line style of level and custom separators.
	// If unset, defaults to a thin line.
	LevelLine grid.LineStyle
	// HeaderRowHeight is applied to group header rows.
	// If zero, defaults to 32.
	HeaderRowHeight float64
	// Matcher controls how keys match patterns.
	// If nil, component equality with string prefixes is used.
	Matcher *pattern.Matcher
	// Presets replaces the region style presets.
	// If nil, the writer defaults apply.
	Presets *writer.Presets
	// Logger receives debug diagnostics such as skipped merges.
	// If nil, nothing is logged.
	Logger logging.Logger
}

// DefaultOptions returns default rendering options.
func DefaultOptions() Options {
	return Options{}
}

// Int returns a pointer to v, for literal option values.
func Int(v int) *int {
	return &v
}

// ShouldGroup reports whether rendering inserts group header rows.
func (o Options) ShouldGroup() bool {
	return o.GroupLevels > 0
}

// EffectiveMinBorderLevel returns the number of innermost levels without
// level separators.
func (o Options) EffectiveMinBorderLevel() int {
	if o.MinBorderLevel != nil {
		return *o.MinBorderLevel
	}
	return 1
}

// EffectiveSeparatorLine returns the index and header separator line
// style.
func (o Options) EffectiveSeparatorLine() grid.LineStyle {
	if o.SeparatorLine != grid.LineUnset {
		return o.SeparatorLine
	}
	return grid.LineMedium
}

// EffectiveLevelLine returns the level and custom separator line style.
func (o Options) EffectiveLevelLine() grid.LineStyle {
	if o.LevelLine != grid.LineUnset {
		return o.LevelLine
	}
	return grid.LineThin
}

// EffectiveHeaderRowHeight returns the group header row height.
func (o Options) EffectiveHeaderRowHeight() float64 {
	if o.HeaderRowHeight != 0 {
		return o.HeaderRowHeight
	}
	return 32
}

// EffectiveMatcher returns the pattern matcher to resolve rules with.
func (o Options) EffectiveMatcher() pattern.Matcher {
	if o.Matcher != nil {
		return *o.Matcher
	}
	return pattern.Default
}

// EffectivePresets returns the region style presets.
func (o Options) EffectivePresets() writer.Presets {
	if o.Presets != nil {
		return *o.Presets
	}
	return writer.DefaultPresets()
}

// EffectiveLogger returns the diagnostics logger.
func (o Options) EffectiveLogger() logging.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logging.NewNoOpLogger()
}

// Config resolves the options into writer parameters.
func (o Options) Config() writer.Config {
	cfg := writer.DefaultConfig()
	cfg.Origin = o.Origin
	cfg.NA = o.NA
	cfg.NumberFormat = o.NumberFormat
	cfg.RowFormats = o.RowNumberFormats
	cfg.ColFormats = o.ColNumberFormats
	cfg.RowBorders = o.RowBorders
	cfg.ColBorders = o.ColBorders
	cfg.MinBorderLevel = o.EffectiveMinBorderLevel()
	cfg.SeparatorLine = o.EffectiveSeparatorLine()
	cfg.LevelLine = o.EffectiveLevelLine()
	cfg.HeaderRowHeight = o.EffectiveHeaderRowHeight()
	cfg.Matcher = o.EffectiveMatcher()
	cfg.Presets = o.EffectivePresets()
	cfg.Logger = o.EffectiveLogger()
	return cfg
}
