package thread

import "time"

// Entry is an Element that carries enough metadata to be related to
// its neighbors: who authored it and when it was sent. Message
// elements implement Entry; separators and other synthetic rows need
// not.
type Entry interface {
	Element
	// Author identifies the sender of the entry. Any stable string
	// works; the flags only compare for equality.
	Author() string
	// Sent is the send time of the entry. A zero time means the entry
	// has no timestamp and will never request a time row.
	Sent() time.Time
}

// Adjacency describes how an entry relates to the entries surrounding
// it in the conversation. Row presentation (margins, avatars, author
// names, time rows) keys off these flags.
type Adjacency struct {
	// PrevSameAuthor is true when the previous entry was sent by the
	// same author, permitting a tighter vertical margin.
	PrevSameAuthor bool
	// PrevDifferentAuthor is true when the previous element was sent
	// by a different author (or is the start of the conversation),
	// requesting an avatar for peer messages.
	PrevDifferentAuthor bool
	// NextDifferentAuthor is true when the next element was sent by a
	// different author (or is the end of the conversation),
	// requesting an author name row for peer messages.
	NextDifferentAuthor bool
	// ShowTime is true when this entry should display its send time,
	// because the next element starts a new author run or a new
	// minute.
	ShowTime bool
}

// Relate computes the adjacency flags for curr given its neighboring
// elements. prev and next may be Start{} and End{} at the list
// boundaries; boundaries and non-Entry neighbors (separators) count as
// a different author.
func Relate(prev, curr, next Element) Adjacency {
	var a Adjacency
	entry, ok := curr.(Entry)
	if !ok {
		return a
	}
	if p, ok := prev.(Entry); ok && p.Author() == entry.Author() {
		a.PrevSameAuthor = true
	} else {
		a.PrevDifferentAuthor = true
	}
	n, ok := next.(Entry)
	if !ok || n.Author() != entry.Author() {
		a.NextDifferentAuthor = true
	}
	if !entry.Sent().IsZero() {
		a.ShowTime = a.NextDifferentAuthor || (ok && !sameMinute(entry.Sent(), n.Sent()))
	}
	return a
}

// sameMinute reports whether two times fall within the same calendar
// minute.
func sameMinute(a, b time.Time) bool {
	return a.Truncate(time.Minute).Equal(b.Truncate(time.Minute))
}
