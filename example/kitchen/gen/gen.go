// Package gen implements data generators for the kitchen example.
package gen

import (
	"image"
	"math/rand"
	"time"

	lorem "github.com/drhodes/golorem"
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"

	"git.sr.ht/~larkspur/bubble/example/kitchen/model"
)

// Generator produces fake chat data. The seed controls the shape of
// the conversation; serials are random UUIDs.
type Generator struct {
	rng   *rand.Rand
	users []*model.User
	local *model.User
}

// NewGenerator seeds a generator and populates it with between min and
// max fake users, one of which is the local user.
func NewGenerator(seed int64, min, max int) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewSource(seed)),
	}
	count := g.rng.Intn(max-min) + min
	for ii := 0; ii < count; ii++ {
		g.users = append(g.users, g.GenUser())
	}
	g.local = g.users[0]
	g.local.Local = true
	return g
}

// Local returns the user representing this device.
func (g *Generator) Local() *model.User {
	return g.local
}

// Peer returns a random non-local user.
func (g *Generator) Peer() *model.User {
	for {
		u := g.users[g.rng.Intn(len(g.users))]
		if !u.Local {
			return u
		}
	}
}

// GenUser generates a fake user with a gradient avatar.
func (g *Generator) GenUser() *model.User {
	return &model.User{
		Name:   lorem.Word(4, 15),
		Avatar: g.GradientImage(image.Pt(64, 64)),
	}
}

// GenHistory generates a conversation of n messages ending at the
// current time, with the final unread messages marked accordingly.
func (g *Generator) GenHistory(n int) []model.Message {
	var (
		out []model.Message
		at  = time.Now().Add(-time.Minute * time.Duration(n))
	)
	for ii := 0; ii < n; ii++ {
		user := g.Peer()
		if g.rng.Float32() < 0.4 {
			user = g.local
		}
		// Runs of messages from one author make the adjacency logic
		// visible: sometimes the next message lands within the same
		// minute, sometimes later.
		at = at.Add(time.Second * time.Duration(20+g.rng.Intn(120)))
		msg := g.GenMessage(user, at)
		msg.Read = ii < n-n/10
		if msg.Local {
			msg.State = model.StateRead
			if !msg.Read {
				msg.State = model.DeliveryState([]model.DeliveryState{
					model.StateSending,
					model.StateDelivered,
				}[g.rng.Intn(2)])
			}
		}
		out = append(out, msg)
	}
	return out
}

// GenMessage generates a message from the given user at the given
// time. Most messages are text; the remainder spread across the other
// payload kinds.
func (g *Generator) GenMessage(user *model.User, at time.Time) model.Message {
	msg := model.Message{
		SerialID: uuid.NewString(),
		Sender:   user.Name,
		SentAt:   at,
		Local:    user.Local,
		Avatar:   user.Avatar,
	}
	switch v := g.rng.Float32(); {
	case v < 0.7:
		msg.Kind = model.KindText
		msg.Body = lorem.Paragraph(1, 4)
		if g.rng.Float32() < 0.15 {
			msg.Body += " " + lorem.Url()
		}
	case v < 0.8:
		msg.Kind = model.KindImage
		sizes := []image.Point{
			image.Pt(1792, 828),
			image.Pt(828, 1792),
			image.Pt(600, 600),
			image.Pt(300, 300),
		}
		msg.Image = g.GradientImage(sizes[g.rng.Intn(len(sizes))])
	case v < 0.9:
		msg.Kind = model.KindFile
		msg.FileName = lorem.Word(3, 10) + ".pdf"
		msg.FileSize = int64(g.rng.Intn(50*1024*1024) + 512)
	default:
		msg.Kind = model.KindAudio
		msg.Duration = time.Second * time.Duration(g.rng.Intn(240)+5)
	}
	return msg
}

// GenSentMessage generates a text message authored by the local user,
// as if just typed.
func (g *Generator) GenSentMessage(body string) model.Message {
	return model.Message{
		SerialID: uuid.NewString(),
		Sender:   g.local.Name,
		SentAt:   time.Now(),
		Local:    true,
		Read:     true,
		State:    model.StateSending,
		Kind:     model.KindText,
		Body:     body,
		Avatar:   g.local.Avatar,
	}
}

// GradientImage renders a smooth two-color gradient of the given size.
// It stands in for photos without requiring network access.
func (g *Generator) GradientImage(sz image.Point) image.Image {
	var (
		from = colorful.FastHappyColor().Clamped()
		to   = colorful.FastHappyColor().Clamped()
		img  = image.NewNRGBA(image.Rectangle{Max: sz})
		span = float64(sz.X + sz.Y)
	)
	for xx := 0; xx < sz.X; xx++ {
		for yy := 0; yy < sz.Y; yy++ {
			c := from.BlendLuv(to, float64(xx+yy)/span).Clamped()
			r, gg, b := c.RGB255()
			i := img.PixOffset(xx, yy)
			img.Pix[i+0] = r
			img.Pix[i+1] = gg
			img.Pix[i+2] = b
			img.Pix[i+3] = 0xFF
		}
	}
	return img
}
