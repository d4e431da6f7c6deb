// Package debug provides visual debugging helpers for layout code.
package debug

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
)

// Outline draws a 1dp black border around the provided widget, making
// its laid-out bounds visible while tuning row and bubble dimensions.
func Outline(gtx layout.Context, w layout.Widget) layout.Dimensions {
	return widget.Border{
		Color: color.NRGBA{A: 255},
		Width: unit.Dp(1),
	}.Layout(gtx, w)
}
