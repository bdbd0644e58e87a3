package grid

import "github.com/tiendc/go-deepcopy"

// HAlign is a horizontal alignment. The zero value means inherit.
type HAlign int

const (
	HDefault HAlign = iota
	HLeft
	HCenter
	HRight
)

// VAlign is a vertical alignment. The zero value means inherit.
type VAlign int

const (
	VDefault VAlign = iota
	VTop
	VCenter
	VBottom
)

// LineStyle is a border line style. LineUnset inherits whatever the side
// already carries; LineNone explicitly clears it.
type LineStyle int

const (
	LineUnset LineStyle = iota
	LineNone
	LineThin
	LineMedium
	LineThick
	LineDashed
	LineDotted
	LineDouble
)

// Border carries one line style per cell side.
type Border struct {
	Left   LineStyle
	Top    LineStyle
	Right  LineStyle
	Bottom LineStyle
}

// Style is a cell style patch. Every field is optional: nil pointers, zero
// enums, empty strings, and a zero font size all mean "leave the current
// value alone", so patches compose without clobbering each other.
type Style struct {
	Bold   *bool
	Italic *bool
	// FontSize in points. Zero inherits.
	FontSize float64
	// FontColor as RRGGBB. Empty inherits.
	FontColor string
	// Fill is the background color as RRGGBB. Empty inherits.
	Fill   string
	HAlign HAlign
	VAlign VAlign
	Wrap   *bool
	// NumberFormat is a spreadsheet format code. Empty inherits.
	NumberFormat string
	Border       Border
}

// Bool returns a pointer to v, for literal Style patches.
func Bool(v bool) *bool {
	return &v
}

// Merge overlays every set field of patch onto base and returns the
// result. Neither input is touched and the result aliases neither.
func Merge(base, patch Style) Style {
	out := base.Clone()
	if patch.Bold != nil {
		out.Bold = Bool(*patch.Bold)
	}
	if patch.Italic != nil {
		out.Italic = Bool(*patch.Italic)
	}
	if patch.FontSize != 0 {
		out.FontSize = patch.FontSize
	}
	if patch.FontColor != "" {
		out.FontColor = patch.FontColor
	}
	if patch.Fill != "" {
		out.Fill = patch.Fill
	}
	if patch.HAlign != HDefault {
		out.HAlign = patch.HAlign
	}
	if patch.VAlign != VDefault {
		out.VAlign = patch.VAlign
	}
	if patch.Wrap != nil {
		out.Wrap = Bool(*patch.Wrap)
	}
	if patch.NumberFormat != "" {
		out.NumberFormat = patch.NumberFormat
	}
	if patch.Border.Left != LineUnset {
		out.Border.Left = patch.Border.Left
	}
	if patch.Border.Top != LineUnset {
		out.Border.Top = patch.Border.Top
	}
	if patch.Border.Right != LineUnset {
		out.Border.Right = patch.Border.Right
	}
	if patch.Border.Bottom != LineUnset {
		out.Border.Bottom = patch.Border.Bottom
	}
	return out
}

// Clone returns a deep copy sharing no pointers with the original.
func (s Style) Clone() Style {
	var out Style
	// Copying between identical types cannot fail.
	_ = deepcopy.Copy(&out, &s)
	return out
}

// IsZero reports whether the style sets nothing at all.
func (s Style) IsZero() bool {
	return s.Equal(Style{})
}

// Equal compares two styles by value, pointer fields included.
func (s Style) Equal(o Style) bool {
	return eqBoolPtr(s.Bold, o.Bold) &&
		eqBoolPtr(s.Italic, o.Italic) &&
		eqBoolPtr(s.Wrap, o.Wrap) &&
		s.FontSize == o.FontSize &&
		s.FontColor == o.FontColor &&
		s.Fill == o.Fill &&
		s.HAlign == o.HAlign &&
		s.VAlign == o.VAlign &&
		s.NumberFormat == o.NumberFormat &&
		s.Border == o.Border
}

func eqBoolPtr(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
