// Package widget holds the per-row interaction state for chat
// interfaces. State types live here; their visual configuration lives
// in widget/material.
package widget

import (
	"gioui.org/widget"
	"gioui.org/x/richtext"
)

// Message holds the state necessary to facilitate user interactions
// with a message across frames. Only the fields matching the message's
// content variant are consulted during layout.
type Message struct {
	richtext.InteractiveText
	// Clickable tracks clicks on the message image.
	widget.Clickable
	// Image contains the cached image op for image content.
	Image CachedImage
	// Audio holds playback state for audio content.
	Audio Audio
	// File tracks activation of file content.
	File widget.Clickable
}
