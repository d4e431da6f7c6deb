package layout

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"
)

// CornerRadii specifies the rounding of each corner of a rectangle
// independently. A zero value squares the corner off.
type CornerRadii struct {
	NW, NE, SE, SW unit.Dp
}

// UniformRadii rounds every corner by r.
func UniformRadii(r unit.Dp) CornerRadii {
	return CornerRadii{NW: r, NE: r, SE: r, SW: r}
}

// Rounded lays out a widget clipped to its corner radii.
type Rounded CornerRadii

func (r Rounded) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	defer clip.RRect{
		Rect: image.Rectangle{Max: dims.Size},
		NW:   gtx.Dp(r.NW),
		NE:   gtx.Dp(r.NE),
		SE:   gtx.Dp(r.SE),
		SW:   gtx.Dp(r.SW),
	}.Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
	return dims
}
