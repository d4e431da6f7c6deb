package material

import (
	"image"
	"image/color"
	"testing"
	"time"

	"gioui.org/font/gofont"
	"gioui.org/x/richtext"

	chatwidget "git.sr.ht/~larkspur/bubble/widget"
)

func TestVariantDispatch(t *testing.T) {
	th := NewTheme(gofont.Collection())
	type testcase struct {
		name    string
		content Content
		check   func(ContentStyle) bool
	}
	for _, tc := range []testcase{
		{
			name:    "text",
			content: TextContent{Body: "hello"},
			check: func(s ContentStyle) bool {
				_, ok := s.(TextStyle)
				return ok
			},
		},
		{
			name:    "image",
			content: ImageContent{Src: image.NewNRGBA(image.Rect(0, 0, 4, 4))},
			check: func(s ContentStyle) bool {
				_, ok := s.(ImageStyle)
				return ok
			},
		},
		{
			name:    "file",
			content: FileContent{Name: "report.pdf", Size: 1024},
			check: func(s ContentStyle) bool {
				_, ok := s.(FileStyle)
				return ok
			},
		},
		{
			name:    "audio",
			content: AudioContent{Duration: 42 * time.Second},
			check: func(s ContentStyle) bool {
				_, ok := s.(AudioStyle)
				return ok
			},
		},
		{
			name:    "nil falls back to empty",
			content: nil,
			check: func(s ContentStyle) bool {
				_, ok := s.(NoContent)
				return ok
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var state chatwidget.Row
			style := Variant(th, &state.Message, tc.content, false)
			if !tc.check(style) {
				t.Errorf("content %T resolved to unexpected style %T", tc.content, style)
			}
		})
	}
}

func TestTextPreview(t *testing.T) {
	th := NewTheme(gofont.Collection())
	var state chatwidget.Row

	plain := Text(th, &state.Message, TextContent{Body: "no links here"}, false)
	if plain.ShowPreview {
		t.Error("expected no preview for text without resolved metadata")
	}

	previewed := Text(th, &state.Message, TextContent{
		Body: "see https://example.com",
		Preview: PreviewData{
			URL:   "https://example.com",
			Title: "Example",
		},
	}, false)
	if !previewed.ShowPreview {
		t.Fatal("expected preview for text with resolved metadata")
	}
	if previewed.Preview.Title.Text != "Example" {
		t.Errorf("expected preview title %q, got %q", "Example", previewed.Preview.Title.Text)
	}

	var fetched []PreviewData
	hooked := Text(th, &state.Message, TextContent{
		Body: "see https://example.com",
		OnPreviewFetched: func(p PreviewData) {
			fetched = append(fetched, p)
		},
	}, false)
	if hooked.OnPreviewFetched == nil {
		t.Fatal("expected the preview hook to carry through to the style")
	}
	hooked.OnPreviewFetched(PreviewData{URL: "https://example.com", Title: "Example"})
	if len(fetched) != 1 || fetched[0].Title != "Example" {
		t.Errorf("expected the hook to receive resolved metadata, got %v", fetched)
	}
}

// richSpan builds a minimal span style whose color marks whether it is
// the link style.
func richSpan(link bool) richtext.SpanStyle {
	s := richtext.SpanStyle{Color: color.NRGBA{A: 255}}
	if link {
		s.Color = color.NRGBA{B: 255, A: 255}
	}
	return s
}

func TestLinkify(t *testing.T) {
	type span struct {
		content string
		link    bool
	}
	type testcase struct {
		name string
		body string
		want []span
	}
	for _, tc := range []testcase{
		{
			name: "plain text",
			body: "hello there",
			want: []span{{"hello there", false}},
		},
		{
			name: "empty body",
			body: "",
			want: nil,
		},
		{
			name: "lone link",
			body: "https://example.com",
			want: []span{{"https://example.com", true}},
		},
		{
			name: "link mid sentence",
			body: "see http://example.com for more",
			want: []span{
				{"see ", false},
				{"http://example.com", true},
				{" for more", false},
			},
		},
		{
			name: "multiple links",
			body: "http://a.com and https://b.com",
			want: []span{
				{"http://a.com", true},
				{" and ", false},
				{"https://b.com", true},
			},
		},
		{
			name: "trailing link runs to end of body",
			body: "go to https://example.com/page?q=1",
			want: []span{
				{"go to ", false},
				{"https://example.com/page?q=1", true},
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			baseStyle := richSpan(false)
			linkStyle := richSpan(true)
			spans := Linkify(tc.body, baseStyle, linkStyle)
			if len(spans) != len(tc.want) {
				t.Fatalf("expected %d spans, got %d", len(tc.want), len(spans))
			}
			for i, w := range tc.want {
				if spans[i].Content != w.content {
					t.Errorf("span %d: expected content %q, got %q", i, w.content, spans[i].Content)
				}
				if isLink := spans[i].Color == linkStyle.Color; isLink != w.link {
					t.Errorf("span %d (%q): expected link=%v", i, w.content, w.link)
				}
			}
		})
	}
}

func TestFirstLink(t *testing.T) {
	type testcase struct {
		name string
		body string
		want string
		ok   bool
	}
	for _, tc := range []testcase{
		{
			name: "no link",
			body: "just words",
		},
		{
			name: "http",
			body: "see http://example.com now",
			want: "http://example.com",
			ok:   true,
		},
		{
			name: "https wins when earlier",
			body: "https://first.com then http://second.com",
			want: "https://first.com",
			ok:   true,
		},
		{
			name: "http wins when earlier",
			body: "http://first.com then https://second.com",
			want: "http://first.com",
			ok:   true,
		},
		{
			name: "link at end of body",
			body: "go https://example.com",
			want: "https://example.com",
			ok:   true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := FirstLink(tc.body)
			if ok != tc.ok || got != tc.want {
				t.Errorf("FirstLink(%q) = %q, %v; expected %q, %v", tc.body, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestHumanSize(t *testing.T) {
	type testcase struct {
		n    int64
		want string
	}
	for _, tc := range []testcase{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1048576, "1.0 MiB"},
		{5 * 1024 * 1024 * 1024, "5.0 GiB"},
	} {
		if got := humanSize(tc.n); got != tc.want {
			t.Errorf("humanSize(%d) = %q, expected %q", tc.n, got, tc.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	type testcase struct {
		d    time.Duration
		want string
	}
	for _, tc := range []testcase{
		{0, "0:00"},
		{5 * time.Second, "0:05"},
		{65 * time.Second, "1:05"},
		{245 * time.Second, "4:05"},
		{90 * time.Minute, "90:00"},
		{1500 * time.Millisecond, "0:02"},
	} {
		if got := formatDuration(tc.d); got != tc.want {
			t.Errorf("formatDuration(%v) = %q, expected %q", tc.d, got, tc.want)
		}
	}
}
