package natsclient

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/nats-io/nats.go"

	"github.com/devghori1264/aerophoenix/circuitd/internal/admin"
)

var ErrNotConnected = errors.New("nats not connected")

type Publisher struct {
	nc *nats.Conn
}

func NewPublisher(nc *nats.Conn) *Publisher {
	return &Publisher{nc: nc}
}

func (p *Publisher) Publish(ctx context.Context, subject string, payload []byte) error {
	if p.nc == nil || p.nc.IsClosed() {
		return ErrNotConnected
	}
	return p.nc.Publish(subject, payload)
}

// Close drains pending messages and closes the connection.
func (p *Publisher) Close() {
	if p.nc != nil {
		_ = p.nc.Drain()
		p.nc.Close()
	}
}

type subjectPublisher interface {
	Publish(ctx context.Context, subject string, payload []byte) error
}

// EventPublisher sends admin events as JSON on one subject.
type EventPublisher struct {
	pub     subjectPublisher
	subject string
}

func NewEventPublisher(pub subjectPublisher, subject string) *EventPublisher {
	return &EventPublisher{pub: pub, subject: subject}
}

func (e *EventPublisher) Publish(ctx context.Context, ev admin.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return e.pub.Publish(ctx, e.subject, data)
}
