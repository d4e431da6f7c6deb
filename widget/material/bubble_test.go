package material

import (
	"testing"

	"gioui.org/font/gofont"
	"gioui.org/unit"
)

func TestBubbleCorners(t *testing.T) {
	th := NewTheme(gofont.Collection())
	th.BubbleRadius = unit.Dp(10)

	local := Bubble(th, true)
	if local.Radii.SW != 0 {
		t.Errorf("expected local bubble to square its bottom-left corner, got %v", local.Radii.SW)
	}
	for corner, r := range map[string]unit.Dp{
		"NW": local.Radii.NW,
		"NE": local.Radii.NE,
		"SE": local.Radii.SE,
	} {
		if r != th.BubbleRadius {
			t.Errorf("expected local bubble corner %s to use the theme radius, got %v", corner, r)
		}
	}
	if local.Color != th.Palette.Primary {
		t.Errorf("expected local bubble to use the primary color, got %v", local.Color)
	}

	peer := Bubble(th, false)
	if peer.Radii.SE != 0 {
		t.Errorf("expected peer bubble to square its bottom-right corner, got %v", peer.Radii.SE)
	}
	for corner, r := range map[string]unit.Dp{
		"NW": peer.Radii.NW,
		"NE": peer.Radii.NE,
		"SW": peer.Radii.SW,
	} {
		if r != th.BubbleRadius {
			t.Errorf("expected peer bubble corner %s to use the theme radius, got %v", corner, r)
		}
	}
	if peer.Color != th.Palette.Surface {
		t.Errorf("expected peer bubble to use the surface color, got %v", peer.Color)
	}
}
