/*
Package model provides the domain-specific data models for the kitchen
example.
*/
package model

import (
	"image"
	"time"

	"git.sr.ht/~larkspur/bubble/thread"
)

// Kind discriminates the payload carried by a message.
type Kind string

const (
	KindText  Kind = "text"
	KindImage Kind = "image"
	KindFile  Kind = "file"
	KindAudio Kind = "audio"
)

// DeliveryState mirrors the lifecycle of a sent message on the wire.
type DeliveryState string

const (
	StateNone      DeliveryState = ""
	StateSending   DeliveryState = "sending"
	StateDelivered DeliveryState = "delivered"
	StateRead      DeliveryState = "read"
)

// User is a chat participant.
type User struct {
	Name   string
	Avatar image.Image
	Local  bool
}

// Message represents a chat message. The Kind field selects which of
// the payload fields are meaningful.
type Message struct {
	SerialID string
	Sender   string
	SentAt   time.Time
	Local    bool
	Read     bool
	State    DeliveryState

	Kind Kind
	// Body is the text payload of a text message.
	Body string
	// PreviewURL and PreviewTitle carry resolved link preview metadata
	// for a text message.
	PreviewURL   string
	PreviewTitle string
	// Image is the payload of an image message.
	Image image.Image
	// FileName and FileSize describe a file message.
	FileName string
	FileSize int64
	// Duration is the length of an audio message.
	Duration time.Duration

	// Avatar is the sender's avatar graphic.
	Avatar image.Image
}

// Serial returns the unique identifier for this message.
func (m Message) Serial() thread.Serial {
	return thread.Serial(m.SerialID)
}

// Author identifies the sender for adjacency computation.
func (m Message) Author() string {
	return m.Sender
}

// Sent reports when the message was sent.
func (m Message) Sent() time.Time {
	return m.SentAt
}

// DateBoundary represents a change in the date during a chat.
type DateBoundary struct {
	Date time.Time
}

// Serial returns the unique identifier of the element. Boundaries are
// stateless and return none.
func (d DateBoundary) Serial() thread.Serial {
	return thread.NoSerial
}

// UnreadBoundary represents the boundary between the last read message
// in a chat and the next unread message.
type UnreadBoundary struct{}

// Serial returns the unique identifier for the boundary.
func (u UnreadBoundary) Serial() thread.Serial {
	return thread.NoSerial
}
