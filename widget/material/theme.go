package material

import (
	"image/color"

	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette defines the semantic colors used by message rows.
//
// `On` colors define a color that is appropriate to display atop its
// counterpart.
type Palette struct {
	// Primary colors the bubbles of messages sent by the local user.
	Primary   color.NRGBA
	OnPrimary color.NRGBA
	// Surface colors peer bubbles and image bubbles.
	Surface   color.NRGBA
	OnSurface color.NRGBA
	// Bg appears behind scrollable content.
	Bg   color.NRGBA
	OnBg color.NRGBA
	// Danger is used to indicate failures and destructive actions.
	Danger   color.NRGBA
	OnDanger color.NRGBA
}

var (
	Light = Palette{
		Primary:   rgb(0x3F85E8),
		OnPrimary: rgb(0xFFFFFF),
		Surface:   rgb(0xEBEBEB),
		OnSurface: rgb(0x000000),
		Bg:        rgb(0xFFFFFF),
		OnBg:      rgb(0x000000),
		Danger:    rgb(0xB00020),
		OnDanger:  rgb(0xFFFFFF),
	}
	Dark = Palette{
		Primary:   rgb(0x2D5C9E),
		OnPrimary: rgb(0xFFFFFF),
		Surface:   rgb(0x444444),
		OnSurface: rgb(0xFFFFFF),
		Bg:        rgb(0x222222),
		OnBg:      rgb(0xEEEEEE),
		Danger:    rgb(0xB00020),
		OnDanger:  rgb(0xFFFFFF),
	}
)

// UserColorData tracks both a color and its luminance.
type UserColorData struct {
	color.NRGBA
	Luminance float64
}

// Theme wraps the material.Theme with the chat-specific configuration
// that message rows consume. It is passed explicitly to every style
// constructor; nothing in this package performs ambient lookup.
type Theme struct {
	*material.Theme
	// Palette specifies semantic colors.
	Palette Palette
	// BubbleRadius is the uniform corner radius of message bubbles.
	// The corner nearest a bubble's tail is always squared off
	// regardless of this value.
	BubbleRadius unit.Dp
	// AvatarSize specifies how large avatar images should be.
	AvatarSize unit.Dp
	// DeliveredIcon and ReadIcon override the built-in delivery status
	// icons when non-nil. The sending indicator has no override.
	DeliveredIcon *widget.Icon
	ReadIcon      *widget.Icon
	// UserColors tracks a mapping from author name to the color chosen
	// to represent that author.
	UserColors map[string]UserColorData
}

// NewTheme instantiates a theme using the provided fonts.
func NewTheme(fonts []text.FontFace) *Theme {
	th := Theme{
		Theme:        material.NewTheme(fonts),
		BubbleRadius: DefaultBubbleRadius,
		AvatarSize:   DefaultAvatarSize,
		UserColors:   make(map[string]UserColorData),
	}
	th.UsePalette(Light)
	return &th
}

// UsePalette changes to the specified palette.
func (t *Theme) UsePalette(p Palette) {
	t.Palette = p
	t.Theme.Bg = p.Bg
	t.Theme.Fg = p.OnBg
}

// Toggle the active theme between the pre-configured Light and Dark
// palettes.
func (t *Theme) Toggle() {
	if t.Palette == Light {
		t.UsePalette(Dark)
	} else {
		t.UsePalette(Light)
	}
}

// UserColor returns a color for the provided author name. It will
// choose a new color if the name is new.
func (t *Theme) UserColor(name string) UserColorData {
	if c, ok := t.UserColors[name]; ok {
		return c
	}
	uc := UserColorData{
		NRGBA: ToNRGBA(colorful.FastHappyColor().Clamped()),
	}
	uc.Luminance = Luminance(uc.NRGBA)
	t.UserColors[name] = uc
	return uc
}

// Contrast returns a color legible against the given luminance.
func (t *Theme) Contrast(luminance float64) color.NRGBA {
	contrast := luminance < 0.5
	if t.Palette == Dark {
		contrast = luminance > 0.5
	}
	if contrast {
		return t.Palette.Bg
	}
	return t.Palette.OnBg
}

// Luminance computes the relative brightness of a color, normalized
// between [0,1]. Ignores alpha.
func Luminance(c color.NRGBA) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// ToNRGBA converts a colorful.Color to the nearest representable
// color.NRGBA.
func ToNRGBA(c colorful.Color) color.NRGBA {
	r, g, b, a := c.RGBA()
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}

func rgb(c uint32) color.NRGBA {
	return argb(0xff000000 | c)
}

func argb(c uint32) color.NRGBA {
	return color.NRGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}
