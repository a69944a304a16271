package contact

import (
	"context"
	"log"
	"time"

	"github.com/pkg/errors"
)

// Sender delivers a contact message somewhere. Implementations must return
// promptly once ctx is done.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, msg Message) error

func (fn SenderFunc) Send(ctx context.Context, msg Message) error {
	return fn(ctx, msg)
}

// SimulatedDelay is how long Simulated pretends a send takes by default.
const SimulatedDelay = 2 * time.Second

// Simulated waits Delay and reports success without transmitting anything.
type Simulated struct {
	Delay time.Duration
}

func (s Simulated) Send(ctx context.Context, msg Message) error {
	t := time.NewTimer(s.Delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		log.Printf("Simulated contact message from %s (%s)", msg.Name, msg.Email)
		return nil
	}
}

// Multi sends through every sender in order and stops at the first error.
type Multi []Sender

func (m Multi) Send(ctx context.Context, msg Message) error {
	for i, s := range m {
		if err := s.Send(ctx, msg); err != nil {
			return errors.Wrapf(err, "contact transport %d", i)
		}
	}
	return nil
}

// Saver persists contact messages and returns the stored id.
type Saver interface {
	SaveMessage(ctx context.Context, msg Message) (string, error)
}

// Outbox stores messages instead of relaying them; the admin pages read them
// back.
type Outbox struct {
	Store Saver
}

func (o Outbox) Send(ctx context.Context, msg Message) error {
	id, err := o.Store.SaveMessage(ctx, msg)
	if err != nil {
		return errors.Wrap(err, "failed to store contact message")
	}
	log.Printf("Contact message %s stored from %s", id, msg.Name)
	return nil
}
