package material

import (
	"image/color"

	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/x/component"
)

// Status describes the delivery state of a message.
type Status uint8

const (
	// StatusNone indicates that no delivery information is available.
	StatusNone Status = iota
	// StatusSending indicates the message has not reached the backend
	// yet.
	StatusSending
	// StatusDelivered indicates the backend has accepted the message.
	StatusDelivered
	// StatusRead indicates a peer has seen the message.
	StatusRead
)

// String converts a status into a printable representation.
func (s Status) String() string {
	switch s {
	case StatusSending:
		return "sending"
	case StatusDelivered:
		return "delivered"
	case StatusRead:
		return "read"
	default:
		return "none"
	}
}

// StatusIconStyle renders a delivery status glyph.
type StatusIconStyle struct {
	Icon  *widget.Icon
	Color color.NRGBA
	Size  unit.Dp
}

// StatusIndicator resolves a delivery status to its icon. Delivered and
// read prefer the theme's override icons, falling back to the built-in
// check glyphs tinted with the primary color. Sending always uses the
// built-in clock; the theme cannot override it. The second return is
// false for any other status, in which case the message renders with
// no indicator at all.
func StatusIndicator(th *Theme, status Status) (StatusIconStyle, bool) {
	s := StatusIconStyle{
		Color: th.Palette.Primary,
		Size:  unit.Dp(16),
	}
	switch status {
	case StatusDelivered:
		s.Icon = th.DeliveredIcon
		if s.Icon == nil {
			s.Icon = DoneIcon
		}
	case StatusRead:
		s.Icon = th.ReadIcon
		if s.Icon == nil {
			s.Icon = DoneAllIcon
		}
	case StatusSending:
		s.Icon = ScheduleIcon
		s.Color = component.WithAlpha(th.Fg, 200)
	default:
		return StatusIconStyle{}, false
	}
	return s, true
}

// Layout the status glyph within a square of the configured size.
func (s StatusIconStyle) Layout(gtx C) D {
	if s.Icon == nil {
		return D{}
	}
	side := gtx.Dp(s.Size)
	gtx.Constraints.Max.X = side
	gtx.Constraints.Max.Y = side
	gtx.Constraints.Min = gtx.Constraints.Constrain(gtx.Constraints.Min)
	return s.Icon.Layout(gtx, s.Color)
}
