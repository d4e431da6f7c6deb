package main

import (
	"fmt"
	"image"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"git.sr.ht/~larkspur/bubble/example/kitchen/gen"
	"git.sr.ht/~larkspur/bubble/example/kitchen/model"
)

// transcriptMessage is the on-disk form of one message in a YAML
// transcript. Only serializable payloads are supported; image messages
// are declared by kind and rendered with a generated stand-in.
type transcriptMessage struct {
	Sender   string        `yaml:"sender"`
	At       time.Time     `yaml:"at"`
	Kind     string        `yaml:"kind,omitempty"`
	Body     string        `yaml:"body,omitempty"`
	FileName string        `yaml:"file,omitempty"`
	FileSize int64         `yaml:"size,omitempty"`
	Duration time.Duration `yaml:"duration,omitempty"`
	State    string        `yaml:"state,omitempty"`
	Unread   bool          `yaml:"unread,omitempty"`
}

// transcript is the on-disk form of a conversation.
type transcript struct {
	// Local names the user whose messages are right-aligned.
	Local    string              `yaml:"local"`
	Messages []transcriptMessage `yaml:"messages"`
}

// LoadTranscript reads a YAML conversation from path. The generator
// supplies avatars and stands in for unserializable payloads.
func LoadTranscript(path string, g *gen.Generator) ([]model.Message, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading transcript: %w", err)
	}
	var t transcript
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("parsing transcript: %w", err)
	}
	avatars := make(map[string]*model.User)
	lookup := func(name string) *model.User {
		if u, ok := avatars[name]; ok {
			return u
		}
		u := g.GenUser()
		u.Name = name
		u.Local = name == t.Local
		avatars[name] = u
		return u
	}
	var out []model.Message
	for i, tm := range t.Messages {
		user := lookup(tm.Sender)
		msg := model.Message{
			SerialID: uuid.NewString(),
			Sender:   user.Name,
			SentAt:   tm.At,
			Local:    user.Local,
			Read:     !tm.Unread,
			State:    model.DeliveryState(tm.State),
			Avatar:   user.Avatar,
		}
		switch model.Kind(tm.Kind) {
		case model.KindImage:
			msg.Kind = model.KindImage
			msg.Image = g.GradientImage(imageSizeFor(i))
		case model.KindFile:
			msg.Kind = model.KindFile
			msg.FileName = tm.FileName
			msg.FileSize = tm.FileSize
		case model.KindAudio:
			msg.Kind = model.KindAudio
			msg.Duration = tm.Duration
		default:
			// Unrecognized kinds fall back to text so that a
			// hand-edited transcript still renders.
			msg.Kind = model.KindText
			msg.Body = tm.Body
		}
		out = append(out, msg)
	}
	return out, nil
}

// imageSizeFor cycles through a few representative aspect ratios for
// stand-in transcript images.
func imageSizeFor(i int) image.Point {
	sizes := []image.Point{
		image.Pt(1792, 828),
		image.Pt(828, 1792),
		image.Pt(600, 600),
	}
	return sizes[i%len(sizes)]
}
