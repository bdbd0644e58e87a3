package writer

import (
	"github.com/hmtbr/tabxl/pkg/tabxl/grid"
	"github.com/hmtbr/tabxl/pkg/tabxl/layout"
	"github.com/hmtbr/tabxl/pkg/tabxl/logging"
	"github.com/hmtbr/tabxl/pkg/tabxl/pattern"
	"github.com/hmtbr/tabxl/pkg/tabxl/table"
)

// Config holds resolved rendering parameters for one table write. Start
// from DefaultConfig and adjust fields as needed.
type Config struct {
	// Origin is the top-left cell of the table rectangle, zero-based.
	Origin layout.Pos
	// NA is written in place of missing data values.
	NA string
	// NumberFormat is the fallback format code for numeric data cells.
	NumberFormat string
	// RowFormats and ColFormats select format codes by key pattern. A row
	// match wins over a column match, which wins over NumberFormat.
	RowFormats []pattern.Rule[string]
	ColFormats []pattern.Rule[string]
	// RowBorders and ColBorders mark axis positions that get an extra
	// separator line.
	RowBorders []table.Key
	ColBorders []table.Key
	// MinBorderLevel is the number of innermost hierarchy levels that never
	// draw level separators.
	MinBorderLevel int
	// SeparatorLine rules the index and header separators, LevelLine the
	// level and custom separators.
	SeparatorLine grid.LineStyle
	LevelLine     grid.LineStyle
	// HeaderRowHeight is applied to synthetic group header rows.
	HeaderRowHeight float64
	Matcher         pattern.Matcher
	Logger          logging.Logger
	Presets         Presets
}

// DefaultConfig returns the standard rendering parameters.
func DefaultConfig() Config {
	return Config{
		NA:              "",
		MinBorderLevel:  1,
		SeparatorLine:   grid.LineMedium,
		LevelLine:       grid.LineThin,
		HeaderRowHeight: 32,
		Matcher:         pattern.Default,
		Logger:          logging.NewNoOpLogger(),
		Presets:         DefaultPresets(),
	}
}
