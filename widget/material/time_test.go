package material

import (
	"errors"
	"testing"
	"time"

	"gioui.org/font/gofont"
)

func TestTimeStampNoTimestamp(t *testing.T) {
	th := NewTheme(gofont.Collection())
	_, err := TimeStamp(th, time.Time{}, time.UTC, false, StatusNone)
	if !errors.Is(err, ErrNoTimestamp) {
		t.Fatalf("expected ErrNoTimestamp, got %v", err)
	}
}

func TestTimeStampFormat(t *testing.T) {
	th := NewTheme(gofont.Collection())
	type testcase struct {
		name string
		at   time.Time
		loc  *time.Location
		want string
	}
	for _, tc := range []testcase{
		{
			name: "afternoon",
			at:   time.Date(2021, 3, 14, 15, 4, 5, 0, time.UTC),
			loc:  time.UTC,
			want: "3:04 PM",
		},
		{
			name: "morning single digit hour",
			at:   time.Date(2021, 3, 14, 9, 30, 0, 0, time.UTC),
			loc:  time.UTC,
			want: "9:30 AM",
		},
		{
			name: "midnight",
			at:   time.Date(2021, 3, 14, 0, 0, 0, 0, time.UTC),
			loc:  time.UTC,
			want: "12:00 AM",
		},
		{
			name: "location shifts the displayed hour",
			at:   time.Date(2021, 3, 14, 15, 4, 0, 0, time.UTC),
			loc:  time.FixedZone("ahead", 2*60*60),
			want: "5:04 PM",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ts, err := TimeStamp(th, tc.at, tc.loc, false, StatusNone)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ts.Time.Text != tc.want {
				t.Errorf("expected %q, got %q", tc.want, ts.Time.Text)
			}
		})
	}
}

func TestTimeStampStatusIcon(t *testing.T) {
	th := NewTheme(gofont.Collection())
	at := time.Date(2021, 3, 14, 15, 4, 5, 0, time.UTC)
	type testcase struct {
		name     string
		local    bool
		status   Status
		showIcon bool
	}
	for _, tc := range []testcase{
		{
			name:     "local read message shows the indicator",
			local:    true,
			status:   StatusRead,
			showIcon: true,
		},
		{
			name:     "local sending message shows the indicator",
			local:    true,
			status:   StatusSending,
			showIcon: true,
		},
		{
			name:   "local message without status shows no indicator",
			local:  true,
			status: StatusNone,
		},
		{
			name:   "peer messages never show an indicator",
			status: StatusRead,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ts, err := TimeStamp(th, at, time.UTC, tc.local, tc.status)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ts.ShowIcon != tc.showIcon {
				t.Errorf("expected ShowIcon=%v, got %v", tc.showIcon, ts.ShowIcon)
			}
		})
	}
}
