package material

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"time"
	"unicode"

	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	"gioui.org/x/richtext"

	chatwidget "git.sr.ht/~larkspur/bubble/widget"
)

// Content is the payload of a message. It is a sealed sum over the
// four variant types in this package; exactly one variant describes
// any given message.
type Content interface {
	variant()
}

// TextContent is a plain text message body.
type TextContent struct {
	Body string
	// Preview carries resolved link preview metadata, if any. The zero
	// value means no preview has been resolved.
	Preview PreviewData
	// OnPreviewFetched is forwarded to the caller's preview resolver.
	// It is invoked, off the layout path, when preview metadata for a
	// link in Body becomes available.
	OnPreviewFetched func(PreviewData)
}

// ImageContent is an image payload. The source is caller-supplied;
// this package never fetches it.
type ImageContent struct {
	Src image.Image
}

// FileContent describes an attached file by name and size in bytes.
type FileContent struct {
	Name string
	Size int64
}

// AudioContent describes a voice clip of the given length.
type AudioContent struct {
	Duration time.Duration
}

func (TextContent) variant()  {}
func (ImageContent) variant() {}
func (FileContent) variant()  {}
func (AudioContent) variant() {}

// PreviewData is resolved link preview metadata for a text message.
type PreviewData struct {
	URL   string
	Title string
}

// ContentStyle lays out one message payload variant.
type ContentStyle interface {
	Layout(gtx C) D
}

// Variant returns the style for the concrete variant of content. A nil
// or unrecognized variant yields a style that renders nothing: unknown
// payloads degrade to an empty bubble rather than failing, so that
// forward-compatible variants never break rendering.
func Variant(th *Theme, state *chatwidget.Message, content Content, local bool) ContentStyle {
	switch c := content.(type) {
	case TextContent:
		return Text(th, state, c, local)
	case ImageContent:
		return ImageMessage(th, state, c)
	case FileContent:
		return File(th, state, c, local)
	case AudioContent:
		return Audio(th, state, c, local)
	default:
		return NoContent{}
	}
}

// NoContent renders nothing. It is the fallback for nil and unknown
// content variants.
type NoContent struct{}

func (NoContent) Layout(gtx C) D {
	return D{}
}

// TextStyle presents a text message as richtext, styling any links it
// contains and laying out a preview box beneath the body once preview
// metadata has been resolved.
type TextStyle struct {
	// Content is the styled text of the message.
	Content richtext.TextStyle
	// Preview configures the link preview box. Only laid out when
	// ShowPreview is set.
	Preview     PreviewStyle
	ShowPreview bool
	// OnPreviewFetched is carried through from the content so that
	// callers walking styles can hand it to their resolver.
	OnPreviewFetched func(PreviewData)
	// ContentPadding separates the text from the bubble edges.
	ContentPadding layout.Inset
}

// Text constructs a TextStyle. Text atop a local bubble uses the
// on-primary color; atop a peer bubble the on-surface color.
func Text(th *Theme, state *chatwidget.Message, content TextContent, local bool) TextStyle {
	fg := th.Palette.OnSurface
	link := th.Palette.Primary
	if local {
		fg = th.Palette.OnPrimary
		link = th.Palette.OnPrimary
	}
	l := material.Body1(th.Theme, "")
	base := richtext.SpanStyle{
		Font:  l.Font,
		Size:  l.TextSize,
		Color: fg,
	}
	linked := base
	linked.Color = link
	ts := TextStyle{
		Content: richtext.Text(
			&state.InteractiveText,
			th.Shaper,
			Linkify(content.Body, base, linked)...,
		),
		ContentPadding:   layout.UniformInset(unit.Dp(8)),
		OnPreviewFetched: content.OnPreviewFetched,
	}
	if content.Preview != (PreviewData{}) {
		ts.Preview = LinkPreview(th, content.Preview, local)
		ts.ShowPreview = true
	}
	return ts
}

// Layout the text and, if resolved, its link preview.
func (t TextStyle) Layout(gtx C) D {
	return t.ContentPadding.Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(t.Content.Layout),
			layout.Rigid(func(gtx C) D {
				if !t.ShowPreview {
					return D{}
				}
				return layout.Inset{Top: unit.Dp(6)}.Layout(gtx, t.Preview.Layout)
			}),
		)
	})
}

// Linkify splits body into spans, styling http(s) URLs with the link
// span. Runs of plain text use the base span.
func Linkify(body string, base, link richtext.SpanStyle) []richtext.SpanStyle {
	var spans []richtext.SpanStyle
	emit := func(style richtext.SpanStyle, content string) {
		if content == "" {
			return
		}
		style.Content = content
		spans = append(spans, style)
	}
	for len(body) > 0 {
		idx := strings.Index(body, "http://")
		if jdx := strings.Index(body, "https://"); jdx != -1 && (idx == -1 || jdx < idx) {
			idx = jdx
		}
		if idx == -1 {
			emit(base, body)
			break
		}
		emit(base, body[:idx])
		rest := body[idx:]
		end := strings.IndexFunc(rest, unicode.IsSpace)
		if end == -1 {
			end = len(rest)
		}
		emit(link, rest[:end])
		body = rest[end:]
	}
	return spans
}

// FirstLink returns the first http(s) URL in body, if any.
func FirstLink(body string) (string, bool) {
	idx := strings.Index(body, "http://")
	if jdx := strings.Index(body, "https://"); jdx != -1 && (idx == -1 || jdx < idx) {
		idx = jdx
	}
	if idx == -1 {
		return "", false
	}
	rest := body[idx:]
	if end := strings.IndexFunc(rest, unicode.IsSpace); end != -1 {
		rest = rest[:end]
	}
	return rest, true
}

// PreviewStyle presents resolved link preview metadata as a small
// bordered box with the page title above the URL.
type PreviewStyle struct {
	Title  material.LabelStyle
	URL    material.LabelStyle
	Border widget.Border
	Inset  layout.Inset
}

// LinkPreview constructs a PreviewStyle.
func LinkPreview(th *Theme, data PreviewData, local bool) PreviewStyle {
	fg := th.Palette.OnSurface
	if local {
		fg = th.Palette.OnPrimary
	}
	title := material.Label(th.Theme, unit.Sp(12), data.Title)
	title.Color = fg
	title.Font.Weight = 600
	url := material.Label(th.Theme, unit.Sp(10), data.URL)
	url.Color = component.WithAlpha(fg, 180)
	url.MaxLines = 1
	return PreviewStyle{
		Title: title,
		URL:   url,
		Border: widget.Border{
			Color:        component.WithAlpha(fg, 100),
			CornerRadius: unit.Dp(4),
			Width:        unit.Dp(1),
		},
		Inset: layout.UniformInset(unit.Dp(6)),
	}
}

// Layout the preview box.
func (p PreviewStyle) Layout(gtx C) D {
	return p.Border.Layout(gtx, func(gtx C) D {
		return p.Inset.Layout(gtx, func(gtx C) D {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(p.Title.Layout),
				layout.Rigid(p.URL.Layout),
			)
		})
	})
}

// ImageStyle presents image content. The image fills the bubble with
// no content padding; the bubble clips it to the rounded surface.
type ImageStyle struct {
	Image
	// Click tracks interactions with the image so that callers can
	// offer a zoomed view.
	Click *widget.Clickable
	// MaxHeight constrains the image; sources are scaled to fit,
	// preserving aspect ratio.
	MaxHeight unit.Dp
}

// ImageMessage constructs an ImageStyle. Oversized sources are
// downscaled before upload.
func ImageMessage(th *Theme, state *chatwidget.Message, content ImageContent) ImageStyle {
	state.Image.CacheScaled(content.Src, 2048)
	return ImageStyle{
		Image: Image{
			Image: widget.Image{
				Src:      state.Image.Op(),
				Fit:      widget.ScaleDown,
				Position: layout.Center,
			},
		},
		Click:     &state.Clickable,
		MaxHeight: DefaultMaxImageHeight,
	}
}

// Layout the image.
func (i ImageStyle) Layout(gtx C) D {
	if i.Image.Src == (paint.ImageOp{}) {
		return D{}
	}
	defer pointer.CursorPointer.Add(gtx.Ops)
	return material.Clickable(gtx, i.Click, func(gtx C) D {
		gtx.Constraints.Max.Y = gtx.Dp(i.MaxHeight)
		return i.Image.Layout(gtx)
	})
}

// FileStyle presents file content as a document icon beside the file
// name and a humanized size caption.
type FileStyle struct {
	Icon      *widget.Icon
	IconColor color.NRGBA
	IconSize  unit.Dp
	Name      material.LabelStyle
	Size      material.LabelStyle
	// Click tracks activation of the file, typically to open or save
	// it.
	Click          *widget.Clickable
	ContentPadding layout.Inset
}

// File constructs a FileStyle.
func File(th *Theme, state *chatwidget.Message, content FileContent, local bool) FileStyle {
	fg := th.Palette.OnSurface
	if local {
		fg = th.Palette.OnPrimary
	}
	name := material.Body1(th.Theme, content.Name)
	name.Color = fg
	size := material.Label(th.Theme, unit.Sp(11), humanSize(content.Size))
	size.Color = component.WithAlpha(fg, 200)
	return FileStyle{
		Icon:           FileIcon,
		IconColor:      fg,
		IconSize:       unit.Dp(32),
		Name:           name,
		Size:           size,
		Click:          &state.File,
		ContentPadding: layout.UniformInset(unit.Dp(8)),
	}
}

// Layout the file row.
func (f FileStyle) Layout(gtx C) D {
	return material.Clickable(gtx, f.Click, func(gtx C) D {
		return f.ContentPadding.Layout(gtx, func(gtx C) D {
			return layout.Flex{
				Axis:      layout.Horizontal,
				Alignment: layout.Middle,
			}.Layout(gtx,
				layout.Rigid(func(gtx C) D {
					side := gtx.Dp(f.IconSize)
					gtx.Constraints.Max.X = side
					gtx.Constraints.Max.Y = side
					gtx.Constraints.Min = gtx.Constraints.Constrain(gtx.Constraints.Min)
					return f.Icon.Layout(gtx, f.IconColor)
				}),
				layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
				layout.Rigid(func(gtx C) D {
					return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
						layout.Rigid(f.Name.Layout),
						layout.Rigid(f.Size.Layout),
					)
				}),
			)
		})
	})
}

// AudioStyle presents a voice clip as a play/pause control, a progress
// track and a duration caption.
type AudioStyle struct {
	// State holds playback interaction state across frames.
	State *chatwidget.Audio
	// PlayIcon and PauseIcon are swapped based on State.Playing.
	PlayIcon  *widget.Icon
	PauseIcon *widget.Icon
	IconColor color.NRGBA
	IconSize  unit.Dp
	// Track and Played color the progress bar.
	Track  color.NRGBA
	Played color.NRGBA
	// TrackWidth is the length of the progress bar.
	TrackWidth unit.Dp
	// Duration is the formatted clip length.
	Duration       material.LabelStyle
	ContentPadding layout.Inset
}

// Audio constructs an AudioStyle.
func Audio(th *Theme, state *chatwidget.Message, content AudioContent, local bool) AudioStyle {
	fg := th.Palette.OnSurface
	if local {
		fg = th.Palette.OnPrimary
	}
	duration := material.Label(th.Theme, unit.Sp(11), formatDuration(content.Duration))
	duration.Color = component.WithAlpha(fg, 200)
	return AudioStyle{
		State:          &state.Audio,
		PlayIcon:       PlayIcon,
		PauseIcon:      PauseIcon,
		IconColor:      fg,
		IconSize:       unit.Dp(32),
		Track:          component.WithAlpha(fg, 100),
		Played:         fg,
		TrackWidth:     unit.Dp(96),
		Duration:       duration,
		ContentPadding: layout.UniformInset(unit.Dp(8)),
	}
}

// Layout the audio controls.
func (a AudioStyle) Layout(gtx C) D {
	if a.State.Toggle.Clicked() {
		a.State.Playing = !a.State.Playing
	}
	return a.ContentPadding.Layout(gtx, func(gtx C) D {
		return layout.Flex{
			Axis:      layout.Horizontal,
			Alignment: layout.Middle,
		}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				return a.State.Toggle.Layout(gtx, func(gtx C) D {
					side := gtx.Dp(a.IconSize)
					gtx.Constraints.Max.X = side
					gtx.Constraints.Max.Y = side
					gtx.Constraints.Min = gtx.Constraints.Constrain(gtx.Constraints.Min)
					icon := a.PlayIcon
					if a.State.Playing {
						icon = a.PauseIcon
					}
					return icon.Layout(gtx, a.IconColor)
				})
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(a.layoutTrack),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(a.Duration.Layout),
		)
	})
}

// layoutTrack draws the progress bar with the played fraction filled.
func (a AudioStyle) layoutTrack(gtx C) D {
	size := image.Point{
		X: gtx.Dp(a.TrackWidth),
		Y: gtx.Dp(unit.Dp(4)),
	}
	paint.FillShape(gtx.Ops, a.Track, clip.Rect(image.Rectangle{Max: size}).Op())
	played := size
	played.X = int(float32(played.X) * clampFraction(a.State.Progress))
	paint.FillShape(gtx.Ops, a.Played, clip.Rect(image.Rectangle{Max: played}).Op())
	return D{Size: size}
}

func clampFraction(f float32) float32 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// humanSize renders a byte count with a binary unit suffix.
func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// formatDuration renders a clip length as minutes and seconds.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
