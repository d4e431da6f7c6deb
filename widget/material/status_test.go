package material

import (
	"testing"

	"gioui.org/font/gofont"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

func TestStatusString(t *testing.T) {
	type testcase struct {
		status Status
		want   string
	}
	for _, tc := range []testcase{
		{StatusNone, "none"},
		{StatusSending, "sending"},
		{StatusDelivered, "delivered"},
		{StatusRead, "read"},
		{Status(42), "none"},
	} {
		if got := tc.status.String(); got != tc.want {
			t.Errorf("Status(%d).String() = %q, expected %q", tc.status, got, tc.want)
		}
	}
}

func TestStatusIndicator(t *testing.T) {
	th := NewTheme(gofont.Collection())
	override := mustIcon(icons.ActionFace)
	type testcase struct {
		name            string
		status          Status
		delivered, read bool
		wantIcon        interface{}
		wantOk          bool
	}
	for _, tc := range []testcase{
		{
			name:   "none has no indicator",
			status: StatusNone,
		},
		{
			name:   "unknown statuses have no indicator",
			status: Status(99),
		},
		{
			name:     "sending uses the clock",
			status:   StatusSending,
			wantIcon: ScheduleIcon,
			wantOk:   true,
		},
		{
			name:     "delivered falls back to the single check",
			status:   StatusDelivered,
			wantIcon: DoneIcon,
			wantOk:   true,
		},
		{
			name:     "read falls back to the double check",
			status:   StatusRead,
			wantIcon: DoneAllIcon,
			wantOk:   true,
		},
		{
			name:      "delivered prefers the theme override",
			status:    StatusDelivered,
			delivered: true,
			wantIcon:  override,
			wantOk:    true,
		},
		{
			name:     "read prefers the theme override",
			status:   StatusRead,
			read:     true,
			wantIcon: override,
			wantOk:   true,
		},
		{
			name:      "sending ignores overrides",
			status:    StatusSending,
			delivered: true,
			read:      true,
			wantIcon:  ScheduleIcon,
			wantOk:    true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			th.DeliveredIcon = nil
			th.ReadIcon = nil
			if tc.delivered {
				th.DeliveredIcon = override
			}
			if tc.read {
				th.ReadIcon = override
			}
			s, ok := StatusIndicator(th, tc.status)
			if ok != tc.wantOk {
				t.Fatalf("expected ok=%v, got %v", tc.wantOk, ok)
			}
			if !ok {
				if s != (StatusIconStyle{}) {
					t.Errorf("expected zero style for hidden indicator, got %+v", s)
				}
				return
			}
			if s.Icon != tc.wantIcon {
				t.Errorf("resolved wrong icon for status %v", tc.status)
			}
			if s.Icon == ScheduleIcon {
				if s.Color == th.Palette.Primary {
					t.Error("expected the sending clock to use a muted color")
				}
			} else if s.Color != th.Palette.Primary {
				t.Errorf("expected primary tint, got %v", s.Color)
			}
		})
	}
}
