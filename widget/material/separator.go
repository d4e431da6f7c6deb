package material

import (
	"image"
	"time"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// SeparatorStyle configures the presentation of a full-width divider
// between rows of a conversation.
type SeparatorStyle struct {
	Message    material.LabelStyle
	TextMargin layout.Inset
	LineMargin layout.Inset
	LineWidth  unit.Dp
}

// UnreadSeparator fills in a SeparatorStyle that marks the boundary
// between read and unread messages.
func UnreadSeparator(th *Theme) SeparatorStyle {
	us := SeparatorStyle{
		Message:    material.Body1(th.Theme, "New Messages"),
		TextMargin: layout.UniformInset(unit.Dp(8)),
		LineMargin: layout.UniformInset(unit.Dp(8)),
		LineWidth:  unit.Dp(2),
	}
	us.Message.Color = th.Palette.Primary
	return us
}

// DateSeparator makes a SeparatorStyle indicating the transition to
// the date provided in the time.Time.
func DateSeparator(th *Theme, date time.Time) SeparatorStyle {
	return SeparatorStyle{
		Message:    material.Body1(th.Theme, date.Format("Mon Jan 2, 2006")),
		TextMargin: layout.UniformInset(unit.Dp(8)),
		LineMargin: layout.UniformInset(unit.Dp(8)),
		LineWidth:  unit.Dp(2),
	}
}

// Layout the separator.
func (u SeparatorStyle) Layout(gtx C) D {
	layoutLine := func(gtx C) D {
		return u.LineMargin.Layout(gtx, func(gtx C) D {
			size := image.Point{
				X: gtx.Constraints.Max.X,
				Y: gtx.Dp(u.LineWidth),
			}
			paint.FillShape(gtx.Ops, u.Message.Color, clip.Rect(image.Rectangle{Max: size}).Op())
			return D{Size: size}
		})
	}
	return layout.Flex{
		Alignment: layout.Middle,
	}.Layout(gtx,
		layout.Flexed(.5, layoutLine),
		layout.Rigid(func(gtx C) D {
			return u.TextMargin.Layout(gtx, u.Message.Layout)
		}),
		layout.Flexed(.5, layoutLine),
	)
}
