package admin

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event types published as circuits change.
const (
	EventProposalSubmitted     = "proposal.submitted"
	EventProposalAccepted      = "proposal.accepted"
	EventProposalRejected      = "proposal.rejected"
	EventProposalCommitFailed  = "proposal.commit_failed"
	EventCircuitAbandoned      = "circuit.abandoned"
	EventCircuitMemberAbandons = "circuit.member_abandoned"
	EventCircuitReady          = "circuit.ready"
)

type Event struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	CircuitID    string    `json:"circuit_id"`
	NodeID       string    `json:"node_id,omitempty"`
	ProposalType string    `json:"proposal_type,omitempty"`
	CircuitHash  string    `json:"circuit_hash,omitempty"`
	Detail       string    `json:"detail,omitempty"`
	Time         time.Time `json:"time"`
}

// EventSink receives admin events. Publishing is best effort.
type EventSink interface {
	Publish(ctx context.Context, ev Event) error
}

type nopSink struct{}

func (nopSink) Publish(context.Context, Event) error { return nil }

func newEvent(typ, circuitID string) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      typ,
		CircuitID: circuitID,
		Time:      time.Now().UTC(),
	}
}
