package natsclient

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// SenderHeader names the sending node on every admin message.
const SenderHeader = "Circuitd-Sender"

// AdminSubject is the subject a node receives admin messages on.
func AdminSubject(prefix, nodeID string) string {
	return fmt.Sprintf("%s.admin.%s", prefix, nodeID)
}

// Deliverer accepts inbound admin messages.
type Deliverer interface {
	Deliver(ctx context.Context, from string, data []byte) error
}

// Transport sends admin messages to <prefix>.admin.<node id> subjects.
// NATS core delivery is at-most-once; the admin layer tolerates loss by
// re-sending deciding votes.
type Transport struct {
	nc     *nats.Conn
	prefix string
	nodeID string
	log    *zap.Logger
	sub    *nats.Subscription
}

func NewTransport(nc *nats.Conn, prefix, nodeID string, log *zap.Logger) *Transport {
	if log == nil {
		log = zap.NewNop()
	}
	return &Transport{nc: nc, prefix: prefix, nodeID: nodeID, log: log}
}

func (t *Transport) Send(_ context.Context, recipient string, payload []byte) error {
	if t.nc == nil || t.nc.IsClosed() {
		return ErrNotConnected
	}
	msg := nats.NewMsg(AdminSubject(t.prefix, recipient))
	msg.Header.Set(SenderHeader, t.nodeID)
	msg.Data = payload
	return t.nc.PublishMsg(msg)
}

// Listen subscribes to this node's subject and feeds every message to d.
func (t *Transport) Listen(ctx context.Context, d Deliverer) error {
	if t.nc == nil || t.nc.IsClosed() {
		return ErrNotConnected
	}
	subject := AdminSubject(t.prefix, t.nodeID)
	sub, err := t.nc.Subscribe(subject, func(m *nats.Msg) {
		from := m.Header.Get(SenderHeader)
		if err := d.Deliver(ctx, from, m.Data); err != nil {
			t.log.Debug("admin message not applied", zap.String("from", from), zap.Error(err))
		}
	})
	if err != nil {
		return err
	}
	t.sub = sub
	t.log.Info("listening for admin messages", zap.String("subject", subject))
	return nil
}

func (t *Transport) Close() error {
	if t.sub == nil {
		return nil
	}
	return t.sub.Unsubscribe()
}
