// Package material implements themed styles for chat message rows: a
// bubble surface with per-corner rounding, per-variant content styles,
// delivery status indicators, time rows and avatar slots. Styles are
// pure functions of a theme, a state pointer from package widget and a
// RowConfig; they are rebuilt every frame.
package material

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Note: the values chosen are a best-guess heuristic, open to change.
var (
	DefaultMaxImageHeight  = unit.Dp(400)
	DefaultMaxMessageWidth = unit.Dp(600)
	DefaultAvatarSize      = unit.Dp(24)
	DefaultBubbleRadius    = unit.Dp(12)
)

// Icons used as defaults by the styles in this package. Decoding the
// bundled material design icon data cannot fail.
var (
	// DoneIcon is the single check used for delivered messages.
	DoneIcon = mustIcon(icons.ActionDone)
	// DoneAllIcon is the double check used for read messages.
	DoneAllIcon = mustIcon(icons.ActionDoneAll)
	// ScheduleIcon is the clock shown while a message is sending.
	ScheduleIcon = mustIcon(icons.ActionSchedule)
	// FileIcon is the document glyph shown beside file content.
	FileIcon = mustIcon(icons.ActionDescription)
	// PlayIcon and PauseIcon are the audio playback controls.
	PlayIcon  = mustIcon(icons.AVPlayArrow)
	PauseIcon = mustIcon(icons.AVPause)
	// PersonIcon is a generic avatar placeholder.
	PersonIcon = mustIcon(icons.SocialPerson)
)

func mustIcon(data []byte) *widget.Icon {
	icon, err := widget.NewIcon(data)
	if err != nil {
		panic(err)
	}
	return icon
}
