package ninepatch

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
)

// PxInset encodes an inset in source-image pixels. 9-Patch content
// insets are defined in the pixel space of the source image and must
// not scale with display density.
type PxInset struct {
	Top, Right, Bottom, Left int
}

// Layout a widget inset by the pixel values on all sides.
func (in PxInset) Layout(gtx C, w layout.Widget) D {
	top, right, bottom, left := in.Top, in.Right, in.Bottom, in.Left
	mcs := gtx.Constraints
	mcs.Max.X -= left + right
	if mcs.Max.X < 0 {
		left = 0
		right = 0
		mcs.Max.X = 0
	}
	if mcs.Min.X > mcs.Max.X {
		mcs.Min.X = mcs.Max.X
	}
	mcs.Max.Y -= top + bottom
	if mcs.Max.Y < 0 {
		top = 0
		bottom = 0
		mcs.Max.Y = 0
	}
	if mcs.Min.Y > mcs.Max.Y {
		mcs.Min.Y = mcs.Max.Y
	}
	gtx.Constraints = mcs
	trans := op.Offset(image.Pt(left, top)).Push(gtx.Ops)
	dims := w(gtx)
	trans.Pop()
	return D{
		Size:     dims.Size.Add(image.Point{X: right + left, Y: top + bottom}),
		Baseline: dims.Baseline + bottom,
	}
}

// DecodeNinePatch from a source image.
//
// Note: any colored pixel around the border will be considered a
// 9-Patch marker.
func DecodeNinePatch(src image.Image) NinePatch {
	var (
		b      = src.Bounds()
		inset  = PxInset{}
		x1, x2 = 0, 0
		y1, y2 = 0, 0
	)
	right := walk(src, b.Max.X-1, layout.Vertical)
	if right.IsValid() {
		inset.Top = right.Start
		inset.Bottom = b.Max.Y - right.End
	}
	bottom := walk(src, b.Max.Y-1, layout.Horizontal)
	if bottom.IsValid() {
		inset.Left = bottom.Start
		inset.Right = b.Max.X - bottom.End
	}
	top := walk(src, 0, layout.Vertical)
	if top.IsValid() {
		y1, y2 = top.Start, b.Max.Y-top.End
	}
	left := walk(src, 0, layout.Horizontal)
	if left.IsValid() {
		x1, x2 = left.Start, b.Max.X-left.End
	}
	return NinePatch{
		Image:   eraseBorder(src),
		Content: inset,
		Grid: Grid{
			Size: image.Point{
				X: b.Dx(),
				Y: b.Dy(),
			},
			X1: x1, X2: x2,
			Y1: y1, Y2: y2,
		},
	}
}

// eraseBorder clears the 1px border around the image containing the
// 9-Patch region specifiers (1px black lines).
func eraseBorder(src image.Image) *image.NRGBA {
	var (
		b   = src.Bounds()
		out = image.NewNRGBA(b)
	)
	// Copy image data.
	for xx := b.Min.X; xx < b.Max.X; xx++ {
		for yy := b.Min.Y; yy < b.Max.Y; yy++ {
			out.Set(xx, yy, src.At(xx, yy))
		}
	}
	// Clear out the borders which contain 1px 9-Patch stretch region
	// identifiers.
	for xx := b.Min.X; xx < b.Max.X; xx++ {
		out.Set(xx, b.Min.Y, color.NRGBA{})
		out.Set(xx, b.Max.Y-1, color.NRGBA{})
	}
	for yy := b.Min.Y; yy < b.Max.Y; yy++ {
		out.Set(b.Min.X, yy, color.NRGBA{})
		out.Set(b.Max.X-1, yy, color.NRGBA{})
	}
	return out
}

// line encodes a one-dimensional line.
type line struct {
	Start, End int
}

func (l line) IsValid() bool {
	return l.Start > -1 && l.End > -1
}

// walk pixels in the source image, along the specified main axis, and
// offset along the cross axis, returning a line that describes the
// length of any sequence of colored pixels.
func walk(src image.Image, offset int, axis layout.Axis) line {
	var (
		end  = axis.Convert(src.Bounds().Max).X
		line = line{Start: -1, End: -1}
	)
	for ii := 0; ii < end; ii++ {
		pt := axis.Convert(image.Point{X: ii, Y: offset})
		r, g, b, a := src.At(pt.X, pt.Y).RGBA()
		var (
			colorIsSet = r > 0 || g > 0 || b > 0 || a > 0
			startIsSet = line.Start > -1
			endIsSet   = line.End > -1
		)
		if colorIsSet && !startIsSet {
			line.Start = ii
		}
		if !colorIsSet && startIsSet {
			line.End = ii
		}
		if startIsSet && endIsSet {
			break
		}
	}
	return line
}
