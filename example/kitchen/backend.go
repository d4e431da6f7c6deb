package main

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	lorem "github.com/drhodes/golorem"

	"git.sr.ht/~larkspur/bubble/example/kitchen/model"
	"git.sr.ht/~larkspur/bubble/thread"
)

// Backend is a stand-in for an application's data access logic. It
// stores the chat messages, advances the delivery state of sent
// messages over time, and resolves link previews. It simulates the
// latency of a real backend for realism.
type Backend struct {
	mu   sync.Mutex
	rows *thread.History

	// Log records backend activity.
	Log *slog.Logger
	// Invalidate wakes the window when data changes off the layout
	// path.
	Invalidate func()
	// OnChange is invoked with a fresh snapshot whenever the data
	// changes. It may be called from any goroutine.
	OnChange func([]thread.Element)
}

// bySentAt sorts messages chronologically.
func bySentAt(a, b thread.Element) bool {
	am, aok := a.(model.Message)
	bm, bok := b.(model.Message)
	if !aok || !bok {
		return false
	}
	return am.SentAt.Before(bm.SentAt)
}

// NewBackend constructs a Backend around the provided message history.
func NewBackend(log *slog.Logger, history []model.Message) *Backend {
	rows := thread.NewHistory(len(history)+1024, bySentAt)
	initial := make([]thread.Element, len(history))
	for i, msg := range history {
		initial[i] = msg
	}
	rows.Apply(initial, nil, nil)
	return &Backend{
		Log:  log,
		rows: rows,
	}
}

// Snapshot returns a sorted copy of the current messages as thread
// elements.
func (b *Backend) Snapshot() []thread.Element {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

func (b *Backend) snapshotLocked() []thread.Element {
	return append([]thread.Element(nil), b.rows.Contents()...)
}

// lookupLocked finds the stored message with the given serial. Callers
// must hold b.mu.
func (b *Backend) lookupLocked(serial thread.Serial) (model.Message, bool) {
	for _, el := range b.rows.Contents() {
		if el.Serial() == serial {
			return el.(model.Message), true
		}
	}
	return model.Message{}, false
}

// publish pushes a fresh snapshot to the UI. Callers must hold b.mu.
func (b *Backend) publishLocked() {
	if b.OnChange != nil {
		b.OnChange(b.snapshotLocked())
	}
	if b.Invalidate != nil {
		b.Invalidate()
	}
}

// Send accepts a message for delivery. The message is stored
// immediately in the sending state; a goroutine simulates the network
// round-trip and advances it to delivered and then read.
func (b *Backend) Send(msg model.Message) {
	b.mu.Lock()
	b.rows.Apply([]thread.Element{msg}, nil, nil)
	b.publishLocked()
	b.mu.Unlock()
	b.Log.Debug("message accepted", "serial", msg.SerialID, "kind", msg.Kind)
	go b.progress(msg.Serial())
}

// Delete removes the message with the provided serial from storage.
func (b *Backend) Delete(serial thread.Serial) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rows.Apply(nil, nil, []thread.Serial{serial})
	b.Log.Debug("message deleted", "serial", serial)
	b.publishLocked()
}

// progress walks a sent message through the delivery states with
// plausible delays.
func (b *Backend) progress(serial thread.Serial) {
	for _, next := range []model.DeliveryState{
		model.StateDelivered,
		model.StateRead,
	} {
		time.Sleep(time.Second + time.Duration(len(serial))*time.Millisecond*37)
		b.mu.Lock()
		msg, ok := b.lookupLocked(serial)
		if !ok {
			// Deleted while in flight.
			b.mu.Unlock()
			return
		}
		msg.State = next
		b.rows.Apply(nil, []thread.Element{msg}, nil)
		b.publishLocked()
		b.mu.Unlock()
		b.Log.Debug("delivery state advanced", "serial", serial, "state", next)
	}
}

// FetchPreview simulates resolving link preview metadata for link,
// invoking onFetched with the result once it is available. The
// callback runs on the resolver goroutine, never on the layout path.
func (b *Backend) FetchPreview(link string, onFetched func(url, title string)) {
	go func() {
		time.Sleep(time.Millisecond * 750)
		title := strings.TrimSuffix(lorem.Sentence(2, 5), ".")
		b.Log.Debug("link preview resolved", "url", link)
		if onFetched != nil {
			onFetched(link, title)
		}
	}()
}

// ApplyPreview stores resolved preview metadata on the message with
// the given serial. It is a no-op for unknown serials.
func (b *Backend) ApplyPreview(serial thread.Serial, url, title string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	msg, ok := b.lookupLocked(serial)
	if !ok {
		return
	}
	msg.PreviewURL = url
	msg.PreviewTitle = title
	b.rows.Apply(nil, []thread.Element{msg}, nil)
	b.publishLocked()
}
