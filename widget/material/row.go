package material

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"

	chatlayout "git.sr.ht/~larkspur/bubble/layout"
	chatwidget "git.sr.ht/~larkspur/bubble/widget"
)

// AvatarData bundles the renderable identity of a message's author.
// Every slot is optional and caller-supplied; the component never
// fetches or caches these resources itself.
type AvatarData struct {
	// Name of the author, rendered above the first bubble of a run of
	// peer messages when supplied.
	Name string
	// Image is the author's avatar graphic.
	Image image.Image
	// Placeholder is shown in the avatar slot when the avatar graphic
	// does not apply to this row.
	Placeholder *widget.Icon
}

// RowConfig describes the aspects of a chat message relevant for
// displaying it within a conversation.
type RowConfig struct {
	// Content is the message payload. Nil renders an empty bubble.
	Content Content
	// SentAt is when the message was sent. It is required whenever
	// ShowTime is set.
	SentAt time.Time
	// Location in which to present SentAt. Nil uses the system
	// location.
	Location *time.Location
	// Status is the delivery status. It only decorates messages sent
	// by the local user.
	Status Status
	// Local indicates that the message was sent by the viewing user,
	// and should be right-aligned.
	Local bool
	// Avatar supplies the author's name and graphics.
	Avatar AvatarData
	// MaxWidth constrains the bubble's width. Zero selects the
	// default.
	MaxWidth unit.Dp
	// Adjacency flags relating this message to its neighbors in the
	// conversation. They are computed by the caller from the full
	// list; see package thread.
	PrevSameAuthor      bool
	PrevDifferentAuthor bool
	NextDifferentAuthor bool
	ShowTime            bool
	// Wrap, when non-nil, decorates the assembled bubble before it is
	// placed in the row. It allows callers to inject decoration
	// without modifying this package.
	Wrap func(layout.Widget) layout.Widget
}

// AvatarKind discriminates what occupies the avatar slot.
type AvatarKind uint8

const (
	// AvatarNone reserves the slot without drawing.
	AvatarNone AvatarKind = iota
	// AvatarImage draws the author's avatar graphic.
	AvatarImage
	// AvatarPlaceholder draws the supplied placeholder icon.
	AvatarPlaceholder
)

// AvatarStyle lays out the avatar slot beside a bubble. The slot
// always occupies the same width so that bubbles align whether or not
// a graphic is shown.
type AvatarStyle struct {
	Kind  AvatarKind
	Image Image
	// Placeholder and its tint, used when Kind is AvatarPlaceholder.
	Placeholder *widget.Icon
	Tint        color.NRGBA
	Size        unit.Dp
}

// Avatar selects what occupies the avatar slot. Rows sent by the local
// user never show a graphic. Peer rows show the avatar graphic when
// the previous message came from a different author; otherwise they
// fall back to the supplied placeholder, or to an empty slot when no
// placeholder was supplied either.
func Avatar(th *Theme, state *chatwidget.UserInfo, local, prevDifferentAuthor bool, data AvatarData) AvatarStyle {
	a := AvatarStyle{
		Size: th.AvatarSize,
		Tint: component.WithAlpha(th.Fg, 150),
	}
	if local {
		return a
	}
	if prevDifferentAuthor && data.Image != nil {
		state.Avatar.Cache(data.Image)
		a.Kind = AvatarImage
		a.Image = Image{
			Image: widget.Image{
				Src:      state.Avatar.Op(),
				Fit:      widget.Cover,
				Position: layout.Center,
			},
			// Half-size radius makes for a circle.
			Radii:  th.AvatarSize / 2,
			Width:  th.AvatarSize,
			Height: th.AvatarSize,
		}
		return a
	}
	if data.Placeholder != nil {
		a.Kind = AvatarPlaceholder
		a.Placeholder = data.Placeholder
	}
	return a
}

// Layout the avatar slot.
func (a AvatarStyle) Layout(gtx C) D {
	side := gtx.Dp(a.Size)
	sz := image.Pt(side, side)
	switch a.Kind {
	case AvatarImage:
		return a.Image.Layout(gtx)
	case AvatarPlaceholder:
		gtx.Constraints.Max = gtx.Constraints.Constrain(sz)
		gtx.Constraints.Min = gtx.Constraints.Max
		a.Placeholder.Layout(gtx, a.Tint)
		return D{Size: sz}
	default:
		return D{Size: sz}
	}
}

// RowStyle configures the presentation of one chat message within a
// vertical list of messages: avatar slot, author name, bubble, and
// time/status row.
type RowStyle struct {
	// Margin separates this row from the one above it. Rows that share
	// an author sit closer together than rows that change author.
	Margin chatlayout.VerticalMarginStyle
	// Local indicates that the message was sent by the local user, and
	// should be right-aligned.
	Local bool
	// Avatar occupies the gutter beside the bubble.
	Avatar AvatarStyle
	// Name is the author name label, drawn inside the bubble above the
	// content when ShowName is set.
	Name     material.LabelStyle
	ShowName bool
	// Bubble is the surface beneath the content.
	Bubble BubbleStyle
	// Content is the style for the message's payload variant.
	Content ContentStyle
	// Time is the time/status row beneath the bubble, laid out when
	// ShowTime is set.
	Time     TimeStampStyle
	ShowTime bool
	// MaxWidth constrains the bubble.
	MaxWidth unit.Dp
	// Wrap decorates the assembled bubble, if non-nil.
	Wrap func(layout.Widget) layout.Widget
	// Interaction holds the interactive state of this message.
	Interaction *chatwidget.Row
	// Menu configures the right-click context menu for this message.
	Menu component.MenuStyle
}

// NewRow creates a style type that can lay out the data for a message.
// It returns an error when cfg requests a time row for a message
// without a timestamp; callers must treat that as a programming error.
func NewRow(th *Theme, interact *chatwidget.Row, menu *component.MenuState, cfg RowConfig) (RowStyle, error) {
	if interact == nil {
		interact = &chatwidget.Row{}
	}
	if menu == nil {
		menu = &component.MenuState{}
	}
	row := RowStyle{
		Margin:      chatlayout.VerticalMarginStyle{Bottom: unit.Dp(16)},
		Local:       cfg.Local,
		Avatar:      Avatar(th, &interact.UserInfo, cfg.Local, cfg.PrevDifferentAuthor, cfg.Avatar),
		Bubble:      Bubble(th, cfg.Local),
		Content:     Variant(th, &interact.Message, cfg.Content, cfg.Local),
		MaxWidth:    cfg.MaxWidth,
		Wrap:        cfg.Wrap,
		Interaction: interact,
		Menu:        component.Menu(th.Theme, menu),
	}
	if row.MaxWidth == 0 {
		row.MaxWidth = DefaultMaxMessageWidth
	}
	if cfg.PrevSameAuthor {
		row.Margin.Bottom = unit.Dp(8)
	}
	if _, ok := cfg.Content.(ImageContent); ok {
		// Images read poorly on the primary color; they always sit on
		// the surface color.
		row.Bubble.Color = th.Palette.Surface
	}
	if cfg.NextDifferentAuthor && !cfg.Local && cfg.Avatar.Name != "" {
		name := material.Label(th.Theme, unit.Sp(12), cfg.Avatar.Name)
		name.Color = th.UserColor(cfg.Avatar.Name).NRGBA
		name.Font.Weight = 600
		row.Name = name
		row.ShowName = true
	}
	if cfg.ShowTime {
		ts, err := TimeStamp(th, cfg.SentAt, cfg.Location, cfg.Local, cfg.Status)
		if err != nil {
			return RowStyle{}, fmt.Errorf("building time row: %w", err)
		}
		row.Time = ts
		row.ShowTime = true
	}
	return row, nil
}

// Layout the message row.
func (r RowStyle) Layout(gtx C) D {
	align := layout.W
	if r.Local {
		align = layout.E
	}
	return r.Margin.Layout(gtx, func(gtx C) D {
		return align.Layout(gtx, func(gtx C) D {
			return layout.Flex{
				Axis:      layout.Horizontal,
				Alignment: layout.End,
			}.Layout(gtx,
				chatlayout.Reverse(r.Local,
					layout.Rigid(r.layoutAvatar),
					layout.Rigid(r.layoutColumn),
				)...,
			)
		})
	})
}

// layoutAvatar lays out the avatar slot, padded at the bottom when a
// time row renders beneath the bubble so that the slot aligns with the
// bubble rather than the time text.
func (r RowStyle) layoutAvatar(gtx C) D {
	inset := layout.Inset{Right: unit.Dp(8)}
	if r.Local {
		inset = layout.Inset{Left: unit.Dp(8)}
	}
	if r.ShowTime {
		inset.Bottom = unit.Dp(20)
	}
	return inset.Layout(gtx, r.Avatar.Layout)
}

// layoutColumn lays out the bubble with the time row beneath it.
func (r RowStyle) layoutColumn(gtx C) D {
	if max := gtx.Dp(r.MaxWidth); gtx.Constraints.Max.X > max {
		gtx.Constraints.Max.X = max
	}
	align := layout.Start
	if r.Local {
		align = layout.End
	}
	return layout.Flex{
		Axis:      layout.Vertical,
		Alignment: align,
	}.Layout(gtx,
		layout.Rigid(r.layoutBubble),
		layout.Rigid(func(gtx C) D {
			if !r.ShowTime {
				return D{}
			}
			return layout.Inset{Top: unit.Dp(4)}.Layout(gtx, r.Time.Layout)
		}),
	)
}

// layoutBubble lays out the bubble surface, its content and the
// context menu, passing the result through the Wrap decorator when one
// is configured.
func (r RowStyle) layoutBubble(gtx C) D {
	bubble := func(gtx C) D {
		return r.Bubble.Layout(gtx, func(gtx C) D {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx C) D {
					if !r.ShowName {
						return D{}
					}
					return layout.Inset{
						Top:   unit.Dp(6),
						Left:  unit.Dp(8),
						Right: unit.Dp(8),
					}.Layout(gtx, r.Name.Layout)
				}),
				layout.Rigid(r.Content.Layout),
			)
		})
	}
	if r.Wrap != nil {
		bubble = r.Wrap(bubble)
	}
	return layout.Stack{}.Layout(gtx,
		layout.Stacked(bubble),
		layout.Expanded(func(gtx C) D {
			return r.Interaction.ContextArea.Layout(gtx, func(gtx C) D {
				gtx.Constraints.Min = image.Point{}
				return r.Menu.Layout(gtx)
			})
		}),
	)
}
