package material

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	chatlayout "git.sr.ht/~larkspur/bubble/layout"
)

// BubbleStyle defines a colored surface with independently rounded
// corners that clips its content.
type BubbleStyle struct {
	// Radii of the corners of the surface. The content is clipped to
	// the same rounded rectangle.
	Radii chatlayout.CornerRadii
	Color color.NRGBA
}

// Bubble creates a bubble style for a message sent by the local user
// when local is true, and by a peer otherwise. The corner adjacent to
// the bubble's tail is squared to zero to signal message direction:
// bottom-left for local messages, bottom-right for peers. All other
// corners take the theme radius. Local bubbles use the primary color,
// peer bubbles the surface color.
func Bubble(th *Theme, local bool) BubbleStyle {
	b := BubbleStyle{
		Radii: chatlayout.UniformRadii(th.BubbleRadius),
		Color: th.Palette.Surface,
	}
	if local {
		b.Radii.SW = 0
		b.Color = th.Palette.Primary
	} else {
		b.Radii.SE = 0
	}
	return b
}

// Layout renders the surface beneath the provided widget and clips the
// widget to it.
func (b BubbleStyle) Layout(gtx C, w layout.Widget) D {
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	rr := clip.RRect{
		Rect: image.Rectangle{Max: dims.Size},
		NW:   gtx.Dp(b.Radii.NW),
		NE:   gtx.Dp(b.Radii.NE),
		SE:   gtx.Dp(b.Radii.SE),
		SW:   gtx.Dp(b.Radii.SW),
	}
	defer rr.Push(gtx.Ops).Pop()
	paint.FillShape(gtx.Ops, b.Color, rr.Op(gtx.Ops))
	call.Add(gtx.Ops)
	return dims
}
