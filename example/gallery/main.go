// Gallery lays out a fixed matrix of message rows covering the content
// variants, delivery statuses and adjacency arrangements, for visual
// inspection of the styles.
package main

import (
	"image"
	"image/color"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/lucasb-eyer/go-colorful"

	chatlayout "git.sr.ht/~larkspur/bubble/layout"
	chatwidget "git.sr.ht/~larkspur/bubble/widget"
	matchat "git.sr.ht/~larkspur/bubble/widget/material"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var th = matchat.NewTheme(gofont.Collection())

// exhibit is one labeled row in the gallery.
type exhibit struct {
	Label string
	Cfg   matchat.RowConfig
	State chatwidget.Row
}

func main() {
	var (
		w = app.NewWindow(
			app.Title("Gallery"),
			app.Size(unit.Dp(800), unit.Dp(600)),
		)
		ops      op.Ops
		list     widget.List
		toggle   widget.Clickable
		exhibits = buildExhibits()
	)
	list.Axis = layout.Vertical

	go func() {
		for event := range w.Events() {
			switch event := event.(type) {
			case system.DestroyEvent:
				if event.Err != nil {
					os.Exit(1)
				}
				os.Exit(0)
			case system.FrameEvent:
				gtx := layout.NewContext(&ops, event)
				if toggle.Clicked() {
					th.Toggle()
				}
				paint.Fill(gtx.Ops, th.Palette.Bg)
				layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Rigid(func(gtx C) D {
						return layout.UniformInset(unit.Dp(8)).Layout(gtx,
							material.Button(th.Theme, &toggle, "Toggle palette").Layout)
					}),
					layout.Flexed(1, func(gtx C) D {
						gtx.Constraints.Min = gtx.Constraints.Max
						return material.List(th.Theme, &list).Layout(gtx, len(exhibits),
							func(gtx C, index int) D {
								return layoutExhibit(gtx, &exhibits[index])
							})
					}),
				)
				event.Frame(&ops)
			}
		}
	}()
	app.Main()
}

// layoutExhibit renders the label above the configured row, sharing
// the gutters of the enclosing list.
func layoutExhibit(gtx C, e *exhibit) D {
	r := chatlayout.Row{
		Padding: chatlayout.VerticalMarginStyle{Top: unit.Dp(2)},
		Gutter: chatlayout.GutterStyle{
			LeftWidth:  unit.Dp(8),
			RightWidth: unit.Dp(8),
			Alignment:  layout.Middle,
		},
	}
	return r.Layout(gtx,
		chatlayout.ContentRow(func(gtx C) D {
			label := material.Label(th.Theme, unit.Sp(10), e.Label)
			label.Color = th.Palette.OnBg
			return label.Layout(gtx)
		}),
		chatlayout.ContentRow(func(gtx C) D {
			row, err := matchat.NewRow(th, &e.State, nil, e.Cfg)
			if err != nil {
				label := material.Label(th.Theme, unit.Sp(10), err.Error())
				label.Color = th.Palette.Danger
				return label.Layout(gtx)
			}
			return row.Layout(gtx)
		}),
	)
}

// buildExhibits constructs the full matrix of rows.
func buildExhibits() []exhibit {
	var (
		at     = time.Date(2024, time.March, 14, 15, 4, 0, 0, time.UTC)
		avatar = gradient(image.Pt(64, 64))
		photo  = gradient(image.Pt(600, 300))
		out    []exhibit
	)

	peer := matchat.AvatarData{
		Name:        "ada",
		Image:       avatar,
		Placeholder: matchat.PersonIcon,
	}

	// Local statuses.
	for _, status := range []matchat.Status{
		matchat.StatusNone,
		matchat.StatusSending,
		matchat.StatusDelivered,
		matchat.StatusRead,
	} {
		out = append(out, exhibit{
			Label: "local text, status " + status.String(),
			Cfg: matchat.RowConfig{
				Content:             matchat.TextContent{Body: "The quick brown fox jumps over the lazy dog."},
				SentAt:              at,
				Location:            time.UTC,
				Status:              status,
				Local:               true,
				PrevDifferentAuthor: true,
				NextDifferentAuthor: true,
				ShowTime:            true,
			},
		})
	}

	// Peer adjacency arrangements.
	out = append(out,
		exhibit{
			Label: "peer run start: avatar, no time",
			Cfg: matchat.RowConfig{
				Content:             matchat.TextContent{Body: "First message of a run."},
				SentAt:              at,
				Location:            time.UTC,
				Avatar:              peer,
				PrevDifferentAuthor: true,
			},
		},
		exhibit{
			Label: "peer run middle: placeholder, tight margin",
			Cfg: matchat.RowConfig{
				Content:        matchat.TextContent{Body: "Second message of the run."},
				SentAt:         at.Add(time.Second * 30),
				Location:       time.UTC,
				Avatar:         peer,
				PrevSameAuthor: true,
			},
		},
		exhibit{
			Label: "peer run end: name shown, time shown",
			Cfg: matchat.RowConfig{
				Content:             matchat.TextContent{Body: "Last message of the run."},
				SentAt:              at.Add(time.Minute * 2),
				Location:            time.UTC,
				Avatar:              peer,
				PrevSameAuthor:      true,
				NextDifferentAuthor: true,
				ShowTime:            true,
			},
		},
		exhibit{
			Label: "peer without avatar graphic: empty slot",
			Cfg: matchat.RowConfig{
				Content:             matchat.TextContent{Body: "No avatar supplied."},
				SentAt:              at,
				Location:            time.UTC,
				Avatar:              matchat.AvatarData{Name: "bis"},
				PrevDifferentAuthor: true,
				NextDifferentAuthor: true,
				ShowTime:            true,
			},
		},
	)

	// Remaining content variants, peer and local.
	variants := []struct {
		label   string
		content matchat.Content
	}{
		{"image", matchat.ImageContent{Src: photo}},
		{"file", matchat.FileContent{Name: "report.pdf", Size: 2 * 1024 * 1024}},
		{"audio", matchat.AudioContent{Duration: time.Second * 93}},
		{"link preview", matchat.TextContent{
			Body: "See https://example.com/post for details.",
			Preview: matchat.PreviewData{
				URL:   "https://example.com/post",
				Title: "An example post",
			},
		}},
		{"empty (unknown variant)", nil},
	}
	for _, v := range variants {
		out = append(out,
			exhibit{
				Label: "peer " + v.label,
				Cfg: matchat.RowConfig{
					Content:             v.content,
					SentAt:              at,
					Location:            time.UTC,
					Avatar:              peer,
					PrevDifferentAuthor: true,
					NextDifferentAuthor: true,
					ShowTime:            true,
				},
			},
			exhibit{
				Label: "local " + v.label,
				Cfg: matchat.RowConfig{
					Content:             v.content,
					SentAt:              at,
					Location:            time.UTC,
					Status:              matchat.StatusRead,
					Local:               true,
					PrevDifferentAuthor: true,
					NextDifferentAuthor: true,
					ShowTime:            true,
				},
			},
		)
	}

	return out
}

// gradient renders a two-color gradient image.
func gradient(sz image.Point) image.Image {
	var (
		from = colorful.Hsv(210, 0.6, 0.9)
		to   = colorful.Hsv(330, 0.5, 0.8)
		img  = image.NewNRGBA(image.Rectangle{Max: sz})
		span = float64(sz.X + sz.Y)
	)
	for xx := 0; xx < sz.X; xx++ {
		for yy := 0; yy < sz.Y; yy++ {
			c := from.BlendLuv(to, float64(xx+yy)/span).Clamped()
			r, g, b := c.RGB255()
			img.Set(xx, yy, color.NRGBA{R: r, G: g, B: b, A: 0xFF})
		}
	}
	return img
}
