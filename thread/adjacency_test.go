package thread

import (
	"testing"
	"time"
)

func TestRelate(t *testing.T) {
	var (
		base = time.Date(2024, time.March, 14, 15, 4, 5, 0, time.UTC)
		ada  = func(serial string, at time.Time) testEntry {
			return testEntry{
				testElement: testElement{serial: serial},
				author:      "ada",
				sent:        at,
			}
		}
		bob = func(serial string, at time.Time) testEntry {
			return testEntry{
				testElement: testElement{serial: serial},
				author:      "bob",
				sent:        at,
			}
		}
	)
	type testcase struct {
		name             string
		prev, curr, next Element
		want             Adjacency
	}
	for _, tc := range []testcase{
		{
			name: "non-entry element",
			prev: ada("a", base),
			curr: testElement{serial: "sep"},
			next: ada("b", base),
			want: Adjacency{},
		},
		{
			name: "alone in the conversation",
			prev: Start{},
			curr: ada("a", base),
			next: End{},
			want: Adjacency{
				PrevDifferentAuthor: true,
				NextDifferentAuthor: true,
				ShowTime:            true,
			},
		},
		{
			name: "middle of a run, same minute",
			prev: ada("a", base),
			curr: ada("b", base.Add(time.Second*10)),
			next: ada("c", base.Add(time.Second*20)),
			want: Adjacency{
				PrevSameAuthor: true,
			},
		},
		{
			name: "middle of a run, minute changes",
			prev: ada("a", base),
			curr: ada("b", base.Add(time.Second*10)),
			next: ada("c", base.Add(time.Minute*2)),
			want: Adjacency{
				PrevSameAuthor: true,
				ShowTime:       true,
			},
		},
		{
			name: "end of a run",
			prev: ada("a", base),
			curr: ada("b", base.Add(time.Second*10)),
			next: bob("c", base.Add(time.Second*20)),
			want: Adjacency{
				PrevSameAuthor:      true,
				NextDifferentAuthor: true,
				ShowTime:            true,
			},
		},
		{
			name: "start of a run",
			prev: bob("a", base),
			curr: ada("b", base.Add(time.Second*10)),
			next: ada("c", base.Add(time.Second*20)),
			want: Adjacency{
				PrevDifferentAuthor: true,
			},
		},
		{
			name: "separator neighbors count as a different author",
			prev: testElement{serial: "sep"},
			curr: ada("a", base),
			next: testElement{serial: "sep2"},
			want: Adjacency{
				PrevDifferentAuthor: true,
				NextDifferentAuthor: true,
				ShowTime:            true,
			},
		},
		{
			name: "no timestamp never shows time",
			prev: Start{},
			curr: ada("a", time.Time{}),
			next: End{},
			want: Adjacency{
				PrevDifferentAuthor: true,
				NextDifferentAuthor: true,
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := Relate(tc.prev, tc.curr, tc.next)
			if got != tc.want {
				t.Errorf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestSameMinute(t *testing.T) {
	base := time.Date(2024, time.March, 14, 15, 4, 59, 0, time.UTC)
	if !sameMinute(base, base.Add(-time.Second*59)) {
		t.Error("expected times within one calendar minute to match")
	}
	if sameMinute(base, base.Add(time.Second)) {
		t.Error("expected times in neighboring minutes to differ")
	}
}
