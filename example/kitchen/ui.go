package main

import (
	"image"
	"image/color"
	"log/slog"
	"sync"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"

	"git.sr.ht/~larkspur/bubble/debug"
	"git.sr.ht/~larkspur/bubble/example/kitchen/gen"
	"git.sr.ht/~larkspur/bubble/example/kitchen/model"
	chatlayout "git.sr.ht/~larkspur/bubble/layout"
	"git.sr.ht/~larkspur/bubble/ninepatch"
	"git.sr.ht/~larkspur/bubble/thread"
	chatwidget "git.sr.ht/~larkspur/bubble/widget"
	matchat "git.sr.ht/~larkspur/bubble/widget/material"
)

// UI manages the state for the entire application's UI.
type UI struct {
	Log *slog.Logger
	// Th is the active theme.
	Th *matchat.Theme
	// Gen produces fake data.
	Gen *gen.Generator
	// Backend is the source of truth for messages.
	Backend *Backend
	// Manager owns per-row state and presentation.
	Manager *thread.Manager
	// List implements the raw scrolling, adding scrollbars and
	// responding to mousewheel / touch fling gestures.
	List widget.List
	// Editor contains the edit buffer for composing messages.
	Editor widget.Editor
	// SendBtn sends the contents of the editor.
	SendBtn widget.Clickable
	// ThemeBtn toggles between the light and dark palettes.
	ThemeBtn widget.Clickable
	// DeleteBtn lives in the message context menu.
	DeleteBtn widget.Clickable
	// MessageMenu is the context menu available on messages.
	MessageMenu component.MenuState
	// ContextMenuTarget tracks the message on which the context menu
	// is currently acting.
	ContextMenuTarget model.Message
	// Modal shows a zoomed view of a clicked image.
	Modal component.ModalState

	// Decoration wraps bubbles in a 9-Patch surface when non-nil.
	Decoration *ninepatch.NinePatch
	// DebugLayout traces an outline around every row.
	DebugLayout bool

	// pending is the latest snapshot published by the backend, applied
	// to the manager at the start of the next frame.
	pendingMu sync.Mutex
	pending   []thread.Element

	// previewRequested tracks messages whose link previews have
	// already been requested.
	previewRequested map[thread.Serial]bool

	// audioTick is the last frame time used to advance audio playback
	// per row.
	audioTick map[thread.Serial]time.Time
}

// UIConfig carries the command-line configuration into the UI.
type UIConfig struct {
	Log        *slog.Logger
	Theme      *matchat.Theme
	Gen        *gen.Generator
	History    []model.Message
	Invalidate func()
	Decorate   bool
	Debug      bool
}

// NewUI constructs the UI and populates it with the provided history.
func NewUI(cfg UIConfig) *UI {
	ui := UI{
		Log:              cfg.Log,
		Th:               cfg.Theme,
		Gen:              cfg.Gen,
		DebugLayout:      cfg.Debug,
		previewRequested: make(map[thread.Serial]bool),
		audioTick:        make(map[thread.Serial]time.Time),
	}
	ui.Modal.VisibilityAnimation.Duration = time.Millisecond * 250
	ui.MessageMenu = component.MenuState{
		Options: []func(gtx C) D{
			component.MenuItem(ui.Th.Theme, &ui.DeleteBtn, "Delete").Layout,
		},
	}
	if cfg.Decorate {
		np := ninepatch.DecodeNinePatch(proceduralPatch())
		ui.Decoration = &np
	}

	ui.Backend = NewBackend(cfg.Log, cfg.History)
	ui.Backend.Invalidate = cfg.Invalidate
	ui.Backend.OnChange = func(els []thread.Element) {
		ui.pendingMu.Lock()
		ui.pending = els
		ui.pendingMu.Unlock()
	}

	ui.Manager = thread.NewManager(
		// Allocate the appropriate state type for each kind of row
		// data in the list.
		func(data thread.Element) interface{} {
			switch data.(type) {
			case model.Message:
				return &chatwidget.Row{}
			default:
				return nil
			}
		},
		// Transform each kind of row data and state into a widget.
		ui.present,
		ui.synthesize,
	)
	ui.Manager.Update(ui.Backend.Snapshot())

	ui.List.ScrollToEnd = true
	ui.List.Axis = layout.Vertical

	return &ui
}

// present turns one element with its adjacency flags into a widget.
func (ui *UI) present(data thread.Element, adj thread.Adjacency, state interface{}) layout.Widget {
	switch data := data.(type) {
	case model.Message:
		rowState, ok := state.(*chatwidget.Row)
		if !ok {
			return func(C) D { return D{} }
		}
		row, err := matchat.NewRow(ui.Th, rowState, &ui.MessageMenu, ui.rowConfig(data, adj))
		if err != nil {
			ui.Log.Error("presenting message", "serial", data.SerialID, "error", err)
			return func(C) D { return D{} }
		}
		return func(gtx C) D {
			if rowState.Clicked() {
				ui.Modal.Show(gtx.Now, func(gtx C) D {
					return layout.UniformInset(unit.Dp(25)).Layout(gtx, func(gtx C) D {
						return widget.Image{
							Src:      rowState.Image.Op(),
							Fit:      widget.ScaleDown,
							Position: layout.Center,
						}.Layout(gtx)
					})
				})
			}
			if rowState.ContextArea.Active() {
				// If the right-click context area for this message is
				// activated, inform the UI that this message is the
				// target of any action taken within that menu.
				ui.ContextMenuTarget = data
			}
			ui.advanceAudio(gtx, data, rowState)
			if ui.DebugLayout {
				return debug.Outline(gtx, row.Layout)
			}
			return row.Layout(gtx)
		}
	case model.DateBoundary:
		return matchat.DateSeparator(ui.Th, data.Date).Layout
	case model.UnreadBoundary:
		return matchat.UnreadSeparator(ui.Th).Layout
	default:
		return func(gtx C) D { return D{} }
	}
}

// synthesize inserts date separators and unread separators between
// chat rows.
func (ui *UI) synthesize(prev, curr, next thread.Element) []thread.Element {
	var out []thread.Element
	asMessage, ok := curr.(model.Message)
	if !ok {
		out = append(out, curr)
		return out
	}
	if _, isStart := prev.(thread.Start); isStart {
		if !asMessage.Read {
			out = append(out, model.UnreadBoundary{})
		}
		out = append(out, model.DateBoundary{Date: asMessage.SentAt}, curr)
		return out
	}
	lastMessage, ok := prev.(model.Message)
	if !ok {
		out = append(out, curr)
		return out
	}
	if !asMessage.Read && lastMessage.Read {
		out = append(out, model.UnreadBoundary{})
	}
	y, m, d := asMessage.SentAt.Local().Date()
	yy, mm, dd := lastMessage.SentAt.Local().Date()
	if y != yy || m != mm || d != dd {
		out = append(out, model.DateBoundary{Date: asMessage.SentAt})
	}
	out = append(out, curr)
	return out
}

// rowConfig converts a domain-specific message into the general
// purpose RowConfig.
func (ui *UI) rowConfig(m model.Message, adj thread.Adjacency) matchat.RowConfig {
	cfg := matchat.RowConfig{
		Content: ui.contentFor(m),
		SentAt:  m.SentAt,
		Status:  statusFor(m.State),
		Local:   m.Local,
		Avatar: matchat.AvatarData{
			Name:        m.Sender,
			Image:       m.Avatar,
			Placeholder: matchat.PersonIcon,
		},
		PrevSameAuthor:      adj.PrevSameAuthor,
		PrevDifferentAuthor: adj.PrevDifferentAuthor,
		NextDifferentAuthor: adj.NextDifferentAuthor,
		ShowTime:            adj.ShowTime,
	}
	if ui.Decoration != nil {
		cfg.Wrap = func(w layout.Widget) layout.Widget {
			return func(gtx C) D {
				return ui.Decoration.Layout(gtx, w)
			}
		}
	}
	return cfg
}

// contentFor maps a message's payload onto a content variant. Unknown
// kinds yield nil, which renders as an empty bubble.
func (ui *UI) contentFor(m model.Message) matchat.Content {
	switch m.Kind {
	case model.KindText:
		c := matchat.TextContent{
			Body: m.Body,
			Preview: matchat.PreviewData{
				URL:   m.PreviewURL,
				Title: m.PreviewTitle,
			},
		}
		if c.Preview == (matchat.PreviewData{}) {
			serial := m.Serial()
			c.OnPreviewFetched = func(p matchat.PreviewData) {
				ui.Backend.ApplyPreview(serial, p.URL, p.Title)
			}
			ui.maybeRequestPreview(m, c.OnPreviewFetched)
		}
		return c
	case model.KindImage:
		return matchat.ImageContent{Src: m.Image}
	case model.KindFile:
		return matchat.FileContent{Name: m.FileName, Size: m.FileSize}
	case model.KindAudio:
		return matchat.AudioContent{Duration: m.Duration}
	default:
		return nil
	}
}

// maybeRequestPreview kicks off preview resolution for messages whose
// body contains a link, at most once per message. The resolved
// metadata flows back to the message through onFetched.
func (ui *UI) maybeRequestPreview(m model.Message, onFetched func(matchat.PreviewData)) {
	if ui.previewRequested[m.Serial()] {
		return
	}
	link, ok := matchat.FirstLink(m.Body)
	if !ok {
		return
	}
	ui.previewRequested[m.Serial()] = true
	ui.Backend.FetchPreview(link, func(url, title string) {
		onFetched(matchat.PreviewData{URL: url, Title: title})
	})
}

// advanceAudio progresses audio playback for rows whose clip is
// playing, requesting a redraw until the clip finishes.
func (ui *UI) advanceAudio(gtx C, m model.Message, state *chatwidget.Row) {
	if !state.Audio.Playing {
		delete(ui.audioTick, m.Serial())
		return
	}
	if m.Duration <= 0 {
		state.Audio.Playing = false
		return
	}
	if last, ok := ui.audioTick[m.Serial()]; ok {
		state.Audio.Progress += float32(gtx.Now.Sub(last)) / float32(m.Duration)
	}
	ui.audioTick[m.Serial()] = gtx.Now
	if state.Audio.Progress >= 1 {
		state.Audio.Progress = 0
		state.Audio.Playing = false
		delete(ui.audioTick, m.Serial())
	}
	op.InvalidateOp{}.Add(gtx.Ops)
}

// statusFor maps the backend delivery state onto a presentation
// status.
func statusFor(s model.DeliveryState) matchat.Status {
	switch s {
	case model.StateSending:
		return matchat.StatusSending
	case model.StateDelivered:
		return matchat.StatusDelivered
	case model.StateRead:
		return matchat.StatusRead
	default:
		return matchat.StatusNone
	}
}

// Layout the application UI.
func (ui *UI) Layout(gtx C) D {
	ui.pendingMu.Lock()
	if ui.pending != nil {
		ui.Manager.Update(ui.pending)
		ui.pending = nil
	}
	ui.pendingMu.Unlock()

	if ui.ThemeBtn.Clicked() {
		ui.Th.Toggle()
	}
	if ui.SendBtn.Clicked() {
		ui.sendEditor()
	}
	if ui.DeleteBtn.Clicked() {
		ui.Backend.Delete(ui.ContextMenuTarget.Serial())
	}

	paint.Fill(gtx.Ops, ui.Th.Palette.Bg)
	return layout.Flex{
		Axis: layout.Vertical,
	}.Layout(gtx,
		layout.Flexed(1, func(gtx C) D {
			return layout.Stack{}.Layout(gtx,
				layout.Stacked(func(gtx C) D {
					gtx.Constraints.Min = gtx.Constraints.Max
					return material.List(ui.Th.Theme, &ui.List).Layout(gtx,
						ui.Manager.Len(),
						ui.Manager.Layout,
					)
				}),
				layout.Expanded(ui.layoutModal),
			)
		}),
		layout.Rigid(ui.layoutComposer),
	)
}

// sendEditor sends the contents of the edit buffer to the backend.
func (ui *UI) sendEditor() {
	text := ui.Editor.Text()
	if text == "" {
		return
	}
	ui.Editor.SetText("")
	ui.Backend.Send(ui.Gen.GenSentMessage(text))
}

// layoutComposer lays out the message editor with its controls.
func (ui *UI) layoutComposer(gtx C) D {
	return chatlayout.Background(ui.Th.Palette.Surface).Layout(gtx, func(gtx C) D {
		return layout.Inset{
			Top:    unit.Dp(8),
			Bottom: unit.Dp(8),
		}.Layout(gtx, func(gtx C) D {
			gutter := chatlayout.Gutter()
			gutter.RightWidth = unit.Dp(96)
			return gutter.Layout(gtx,
				nil,
				ui.layoutEditor,
				func(gtx C) D {
					return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
						layout.Rigid(material.IconButton(ui.Th.Theme, &ui.SendBtn, Send).Layout),
						layout.Rigid(func(gtx C) D {
							btn := material.IconButton(ui.Th.Theme, &ui.ThemeBtn, Brightness)
							btn.Background = color.NRGBA{}
							btn.Color = ui.Th.Fg
							return btn.Layout(gtx)
						}),
					)
				},
			)
		})
	})
}

// layoutEditor lays out the edit buffer on a rounded surface.
func (ui *UI) layoutEditor(gtx C) D {
	r := chatlayout.UniformRadii(unit.Dp(8))
	return chatlayout.Rounded(r).Layout(gtx, func(gtx C) D {
		return chatlayout.Background(ui.Th.Palette.Bg).Layout(gtx, func(gtx C) D {
			return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx C) D {
				return material.Editor(ui.Th.Theme, &ui.Editor, "Send a message").Layout(gtx)
			})
		})
	})
}

// layoutModal lays out the image zoom modal.
func (ui *UI) layoutModal(gtx C) D {
	if ui.Modal.Clicked() {
		ui.Modal.ToggleVisibility(gtx.Now)
	}
	return component.Modal(ui.Th.Theme, &ui.Modal).Layout(gtx)
}

// proceduralPatch builds a 9-Patch source image in memory: a soft
// rectangle with marker borders declaring its stretch regions and
// content insets. It stands in for a hand-drawn asset.
func proceduralPatch() image.Image {
	const (
		side   = 48
		corner = 16
	)
	img := image.NewNRGBA(image.Rect(0, 0, side, side))
	body := color.NRGBA{R: 0xFF, G: 0xE0, B: 0xB2, A: 0xFF}
	edge := color.NRGBA{R: 0xE6, G: 0xA6, B: 0x5C, A: 0xFF}
	for xx := 1; xx < side-1; xx++ {
		for yy := 1; yy < side-1; yy++ {
			c := body
			if xx < 3 || yy < 3 || xx >= side-3 || yy >= side-3 {
				c = edge
			}
			img.Set(xx, yy, c)
		}
	}
	marker := color.NRGBA{A: 0xFF}
	for ii := corner; ii < side-corner; ii++ {
		// Stretch regions on the top and left.
		img.Set(ii, 0, marker)
		img.Set(0, ii, marker)
		// Content insets on the bottom and right.
		img.Set(ii, side-1, marker)
		img.Set(side-1, ii, marker)
	}
	return img
}
