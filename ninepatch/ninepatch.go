// Package ninepatch implements 9-Patch image rendering in Gio.
// https://developer.android.com/guide/topics/graphics/drawables#nine-patch
package ninepatch

import (
	"image"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// NinePatch lays out a 9-Patch image as the background for another
// widget. The corners stay static, the edges stretch along one axis
// and the center stretches along both.
type NinePatch struct {
	// Image is the backing image of the 9-Patch, with the 1px marker
	// border erased.
	image.Image
	// Content encodes the content insets defined by the marker lines
	// on the bottom and right of the source image, in source pixels.
	Content PxInset
	// Grid describes the stretchable regions of the image.
	Grid
}

// Region describes how to lay out a particular region of a 9-Patch
// image. It defines an offset and size within the source image, and an
// offset and size within the layout.
type Region struct {
	Size, Offset       image.Point
	SrcSize, SrcOffset image.Point
}

// Layout the region of the provided ImageOp described by the Region.
func (r Region) Layout(gtx C, src paint.ImageOp) D {
	// Shift layout to the origin of the region that we are covering,
	// but compensate for the fact that we're going to be reaching to
	// an arbitrary point in the source image. This aligns the origin
	// of the important region of the source image with the origin of
	// the region that we're laying out.
	defer op.Offset(r.Offset.Sub(r.SrcOffset)).Push(gtx.Ops).Pop()
	if r.Size != r.SrcSize {
		defer op.Affine(f32.Affine2D{}.Scale(layout.FPt(r.Offset), f32.Point{
			X: float32(r.Size.X) / float32(r.SrcSize.X),
			Y: float32(r.Size.Y) / float32(r.SrcSize.Y),
		})).Push(gtx.Ops).Pop()
	}
	// Clip the scaled image to the bounds of the area we need to
	// cover, then paint it.
	defer clip.Rect(image.Rectangle{
		Min: r.SrcOffset,
		Max: r.SrcSize.Add(r.SrcOffset),
	}).Push(gtx.Ops).Pop()
	src.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	return D{Size: r.Size}
}

// Layout the provided widget with the NinePatch as a background.
func (n NinePatch) Layout(gtx C, w layout.Widget) D {
	macro := op.Record(gtx.Ops)
	dims := n.Content.Layout(gtx, w)
	call := macro.Stop()

	middleSrcWidth := n.Image.Bounds().Dx() - (n.X1 + n.X2)
	middleSrcHeight := n.Image.Bounds().Dy() - (n.Y1 + n.Y2)
	middleWidth := dims.Size.X - (n.X1 + n.X2)
	middleHeight := dims.Size.Y - (n.Y1 + n.Y2)

	imageOp := paint.NewImageOp(n.Image)

	regions := [9]Region{
		// Upper left.
		{
			Size:    image.Point{X: n.X1, Y: n.Y1},
			SrcSize: image.Point{X: n.X1, Y: n.Y1},
		},
		// Upper middle.
		{
			Offset:    image.Point{X: n.X1},
			Size:      image.Point{X: middleWidth, Y: n.Y1},
			SrcOffset: image.Point{X: n.X1},
			SrcSize:   image.Point{X: middleSrcWidth, Y: n.Y1},
		},
		// Upper right.
		{
			Offset:    image.Point{X: n.X1 + middleWidth},
			Size:      image.Point{X: n.X2, Y: n.Y1},
			SrcOffset: image.Point{X: n.X1 + middleSrcWidth},
			SrcSize:   image.Point{X: n.X2, Y: n.Y1},
		},
		// Middle left.
		{
			Offset:    image.Point{Y: n.Y1},
			Size:      image.Point{X: n.X1, Y: middleHeight},
			SrcOffset: image.Point{Y: n.Y1},
			SrcSize:   image.Point{X: n.X1, Y: middleSrcHeight},
		},
		// Center.
		{
			Offset:    image.Point{X: n.X1, Y: n.Y1},
			Size:      image.Point{X: middleWidth, Y: middleHeight},
			SrcOffset: image.Point{X: n.X1, Y: n.Y1},
			SrcSize:   image.Point{X: middleSrcWidth, Y: middleSrcHeight},
		},
		// Middle right.
		{
			Offset:    image.Point{X: n.X1 + middleWidth, Y: n.Y1},
			Size:      image.Point{X: n.X2, Y: middleHeight},
			SrcOffset: image.Point{X: n.X1 + middleSrcWidth, Y: n.Y1},
			SrcSize:   image.Point{X: n.X2, Y: middleSrcHeight},
		},
		// Bottom left.
		{
			Offset:    image.Point{Y: n.Y1 + middleHeight},
			Size:      image.Point{X: n.X1, Y: n.Y2},
			SrcOffset: image.Point{Y: n.Y1 + middleSrcHeight},
			SrcSize:   image.Point{X: n.X1, Y: n.Y2},
		},
		// Bottom middle.
		{
			Offset:    image.Point{X: n.X1, Y: n.Y1 + middleHeight},
			Size:      image.Point{X: middleWidth, Y: n.Y2},
			SrcOffset: image.Point{X: n.X1, Y: n.Y1 + middleSrcHeight},
			SrcSize:   image.Point{X: middleSrcWidth, Y: n.Y2},
		},
		// Bottom right.
		{
			Offset:    image.Point{X: n.X1 + middleWidth, Y: n.Y1 + middleHeight},
			Size:      image.Point{X: n.X2, Y: n.Y2},
			SrcOffset: image.Point{X: n.X1 + middleSrcWidth, Y: n.Y1 + middleSrcHeight},
			SrcSize:   image.Point{X: n.X2, Y: n.Y2},
		},
	}
	for _, r := range regions {
		r.Layout(gtx, imageOp)
	}

	call.Add(gtx.Ops)

	return dims
}
