package layout

import (
	"gioui.org/layout"
	"gioui.org/unit"
)

// VerticalMarginStyle insets a widget on its top and bottom edges.
// Wrapping every row of a conversation in one keeps neighboring rows
// from crowding each other. The two edges are independent so that a
// row can sit closer to one neighbor than the other.
type VerticalMarginStyle struct {
	Top    unit.Dp
	Bottom unit.Dp
}

// VerticalMargin configures a vertical margin with a sensible default.
func VerticalMargin() VerticalMarginStyle {
	return VerticalMarginStyle{
		Top:    unit.Dp(4),
		Bottom: unit.Dp(4),
	}
}

// Layout the provided widget within the margin and return their
// combined dimensions.
func (v VerticalMarginStyle) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	return layout.Inset{
		Top:    v.Top,
		Bottom: v.Bottom,
	}.Layout(gtx, w)
}
