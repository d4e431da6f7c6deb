package material

import (
	"errors"
	"time"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"gioui.org/x/component"
)

// ErrNoTimestamp is returned when a time row is requested for a message
// that carries no timestamp.
var ErrNoTimestamp = errors.New("message has no timestamp")

// TimeStampStyle presents the time a message was sent and, for messages
// sent by the local user, its delivery status.
type TimeStampStyle struct {
	// Time is the formatted send time.
	Time material.LabelStyle
	// Icon is the resolved status indicator, laid out after the time
	// text when ShowIcon is set.
	Icon     StatusIconStyle
	ShowIcon bool
}

// TimeStamp formats at on a 12-hour clock in the provided location.
// loc may be nil to use the system location. For local messages the
// resolved status indicator is appended after the time text.
//
// Messages without a timestamp cannot be formatted: requesting a time
// row for one is a programmer error and yields ErrNoTimestamp.
func TimeStamp(th *Theme, at time.Time, loc *time.Location, local bool, status Status) (TimeStampStyle, error) {
	if at.IsZero() {
		return TimeStampStyle{}, ErrNoTimestamp
	}
	if loc == nil {
		loc = time.Local
	}
	l := material.Label(th.Theme, unit.Sp(11), at.In(loc).Format("3:04 PM"))
	l.Color = component.WithAlpha(th.Fg, 200)
	ts := TimeStampStyle{Time: l}
	if local {
		if icon, ok := StatusIndicator(th, status); ok {
			ts.Icon = icon
			ts.ShowIcon = true
		}
	}
	return ts, nil
}

// Layout the time row.
func (t TimeStampStyle) Layout(gtx C) D {
	return layout.Flex{
		Axis:      layout.Horizontal,
		Alignment: layout.Middle,
	}.Layout(gtx,
		layout.Rigid(t.Time.Layout),
		layout.Rigid(func(gtx C) D {
			if !t.ShowIcon {
				return D{}
			}
			return layout.Inset{Left: unit.Dp(4)}.Layout(gtx, t.Icon.Layout)
		}),
	)
}
