package layout

import (
	"image"
	"testing"

	"gioui.org/io/router"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
)

func testContext() layout.Context {
	return layout.Context{
		Ops: new(op.Ops),
		Metric: unit.Metric{
			PxPerDp: 1,
			PxPerSp: 1,
		},
		Constraints: layout.Exact(image.Pt(100, 100)),
		Queue:       new(router.Router),
	}
}

func TestUniformRadii(t *testing.T) {
	r := UniformRadii(unit.Dp(7))
	for corner, got := range map[string]unit.Dp{
		"NW": r.NW,
		"NE": r.NE,
		"SE": r.SE,
		"SW": r.SW,
	} {
		if got != unit.Dp(7) {
			t.Errorf("corner %s: expected 7, got %v", corner, got)
		}
	}
}

func TestReverse(t *testing.T) {
	type testcase struct {
		name    string
		reverse bool
		in      []int
		want    []int
	}
	for _, tc := range []testcase{
		{
			name: "unreversed order is preserved",
			in:   []int{1, 2, 3},
			want: []int{1, 2, 3},
		},
		{
			name:    "even lengths reverse",
			reverse: true,
			in:      []int{1, 2, 3, 4},
			want:    []int{4, 3, 2, 1},
		},
		{
			name:    "odd lengths reverse",
			reverse: true,
			in:      []int{1, 2, 3},
			want:    []int{3, 2, 1},
		},
		{
			name:    "empty",
			reverse: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var (
				order    []int
				children []layout.FlexChild
			)
			for _, id := range tc.in {
				id := id
				children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					order = append(order, id)
					return layout.Dimensions{}
				}))
			}
			// Rigid flex children lay out in declaration order, so the
			// recorded order reflects the child order after reversal.
			layout.Flex{}.Layout(testContext(), Reverse(tc.reverse, children...)...)
			if len(order) != len(tc.want) {
				t.Fatalf("expected %d children laid out, got %d", len(tc.want), len(order))
			}
			for i := range tc.want {
				if order[i] != tc.want[i] {
					t.Errorf("expected layout order %v, got %v", tc.want, order)
					break
				}
			}
		})
	}
}

func TestVerticalMarginDefaults(t *testing.T) {
	m := VerticalMargin()
	if m.Top != unit.Dp(4) || m.Bottom != unit.Dp(4) {
		t.Errorf("expected 4dp margins, got top %v bottom %v", m.Top, m.Bottom)
	}
}
