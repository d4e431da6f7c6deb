package widget

import "gioui.org/widget"

// Audio holds playback state for an audio message across frames. The
// component renders this state; advancing playback is the caller's
// responsibility.
type Audio struct {
	// Toggle tracks clicks on the play/pause control.
	Toggle widget.Clickable
	// Playing reports whether playback is currently running.
	Playing bool
	// Progress is the fraction of the clip played so far, in [0,1].
	Progress float32
}
