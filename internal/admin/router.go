package admin

import (
	"context"
	"errors"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	protobuf "google.golang.org/protobuf/proto"

	"github.com/devghori1264/aerophoenix/circuitd/internal/metrics"
	"github.com/devghori1264/aerophoenix/circuitd/internal/proto"
)

// Transport moves opaque admin messages between nodes. Send is fire and
// forget: a nil error means the message was handed off, not delivered.
// Delivery is at-least-once and unordered.
type Transport interface {
	Send(ctx context.Context, recipient string, payload []byte) error
}

// Handler consumes admin messages addressed to this node.
type Handler interface {
	HandleProposedCircuit(ctx context.Context, from string, msg *proto.ProposedCircuit) error
	HandleConsensus(ctx context.Context, from string, payload *proto.CircuitManagementPayload) error
	HandleMemberReady(ctx context.Context, from string, msg *proto.MemberReady) error
}

const seenMessages = 4096

// Router encodes outbound admin messages and demultiplexes inbound ones.
// Redelivered messages are dropped by message id.
type Router struct {
	nodeID    string
	transport Transport
	handler   Handler
	seen      *lru.Cache[string, struct{}]
	metrics   *metrics.Metrics
	log       *zap.Logger
}

func NewRouter(nodeID string, transport Transport, handler Handler, m *metrics.Metrics, log *zap.Logger) *Router {
	seen, _ := lru.New[string, struct{}](seenMessages)
	if log == nil {
		log = zap.NewNop()
	}
	return &Router{
		nodeID:    nodeID,
		transport: transport,
		handler:   handler,
		seen:      seen,
		metrics:   m,
		log:       log,
	}
}

// Broadcast sends msg to every target except this node. All targets are
// attempted; failures are joined into one DisseminationFailure.
func (r *Router) Broadcast(ctx context.Context, msg *proto.AdminMessage, targets []string) error {
	if msg.MessageId == "" {
		msg.MessageId = uuid.NewString()
	}
	data, err := protobuf.Marshal(msg)
	if err != nil {
		return newError(ErrMalformedPayload, "", err)
	}
	var errs error
	for _, target := range dedupe(targets) {
		if target == r.nodeID {
			continue
		}
		err := r.transport.Send(ctx, target, data)
		r.metrics.MessageSent(msg.MessageType.String(), err)
		if err != nil {
			r.log.Warn("send admin message failed",
				zap.String("recipient", target),
				zap.Stringer("type", msg.MessageType),
				zap.Error(err))
			errs = multierr.Append(errs, err)
		}
	}
	if errs != nil {
		return newError(ErrDisseminationFailure, "", errs)
	}
	return nil
}

// Deliver decodes one inbound message and hands it to the handler.
func (r *Router) Deliver(ctx context.Context, from string, data []byte) error {
	msg, err := proto.UnmarshalAdminMessage(data)
	if err != nil {
		r.metrics.MessageReceived("UNKNOWN", err)
		return newError(ErrMalformedPayload, "", err)
	}
	if msg.MessageId != "" {
		if ok, _ := r.seen.ContainsOrAdd(msg.MessageId, struct{}{}); ok {
			r.log.Debug("dropping redelivered message", zap.String("message_id", msg.MessageId))
			return nil
		}
	}

	switch msg.MessageType {
	case proto.MessageType_PROPOSED_CIRCUIT:
		if msg.ProposedCircuit == nil {
			err = errorf(ErrMalformedPayload, "", "proposed circuit message without body")
			break
		}
		err = r.handler.HandleProposedCircuit(ctx, from, msg.ProposedCircuit)
	case proto.MessageType_CONSENSUS_MESSAGE:
		if msg.ConsensusMessage == nil {
			err = errorf(ErrMalformedPayload, "", "consensus message without payload")
			break
		}
		err = r.handler.HandleConsensus(ctx, from, msg.ConsensusMessage)
	case proto.MessageType_MEMBER_READY:
		if msg.MemberReady == nil {
			err = errorf(ErrMalformedPayload, "", "member ready message without body")
			break
		}
		err = r.handler.HandleMemberReady(ctx, from, msg.MemberReady)
	default:
		err = errorf(ErrMalformedPayload, "", "unknown message type %d", int32(msg.MessageType))
	}
	r.metrics.MessageReceived(msg.MessageType.String(), err)
	if err != nil && msg.MessageId != "" && errors.Is(err, ErrStorageFailure) {
		// let a redelivery try again
		r.seen.Remove(msg.MessageId)
	}
	return err
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
