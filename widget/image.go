package widget

import (
	"image"

	"gioui.org/op/paint"
	xdraw "golang.org/x/image/draw"
)

// CachedImage is a cacheable image operation.
type CachedImage paint.ImageOp

// Changer can report that it has changed since the last call.
type Changer interface {
	Changed() bool
}

// ToNRGBA can render an image.NRGBA image.
type ToNRGBA interface {
	ToNRGBA() *image.NRGBA
}

// Cache the image if it is not already.
//
// First call will compute the image operation, subsequent calls will
// noop.
//
// If image implements Changer, and Changed returns true, the image
// operation will be re-computed.
//
// If image implements ToNRGBA, the *image.NRGBA will be used to compute
// the image operation. This is an optimization since Gio uses a
// fast-path for image.NRGBA images.
func (img *CachedImage) Cache(src image.Image) {
	bake((*paint.ImageOp)(img), src, 0)
}

// CacheScaled caches the image like Cache, additionally downscaling
// sources whose longest side exceeds maxDim pixels so that oversized
// images are not uploaded to the GPU at full resolution.
func (img *CachedImage) CacheScaled(src image.Image, maxDim int) {
	bake((*paint.ImageOp)(img), src, maxDim)
}

// Op returns the concrete image operation.
func (img CachedImage) Op() paint.ImageOp {
	return paint.ImageOp(img)
}

// bake the image into a paint.ImageOp, if not already.
func bake(cache *paint.ImageOp, src image.Image, maxDim int) {
	if cache == nil || src == nil {
		return
	}
	var (
		img image.Image = src
	)
	if nrgba, ok := src.(ToNRGBA); ok {
		img = nrgba.ToNRGBA()
	}
	if changer, ok := src.(Changer); (ok && changer.Changed()) || *cache == (paint.ImageOp{}) {
		if maxDim > 0 {
			img = downscale(img, maxDim)
		}
		*cache = paint.NewImageOp(img)
	}
}

// downscale returns src scaled so that its longest side is no more than
// maxDim pixels. Sources already within bounds are returned unchanged.
func downscale(src image.Image, maxDim int) image.Image {
	b := src.Bounds()
	longest := b.Dx()
	if b.Dy() > longest {
		longest = b.Dy()
	}
	if longest <= maxDim {
		return src
	}
	scale := float64(maxDim) / float64(longest)
	dst := image.NewNRGBA(image.Rect(0, 0,
		int(float64(b.Dx())*scale),
		int(float64(b.Dy())*scale),
	))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}
