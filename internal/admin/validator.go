package admin

import (
	"bytes"
	"context"
	"crypto/sha512"
	"errors"

	"github.com/devghori1264/aerophoenix/circuitd/internal/models"
	"github.com/devghori1264/aerophoenix/circuitd/internal/proto"
	"github.com/devghori1264/aerophoenix/circuitd/internal/signing"
	"github.com/devghori1264/aerophoenix/circuitd/internal/storage"
)

// CircuitReader looks up committed circuits.
type CircuitReader interface {
	Get(ctx context.Context, circuitID string) (*models.Circuit, error)
}

// ProposalReader looks up outstanding proposals.
type ProposalReader interface {
	Get(ctx context.Context, circuitID string) (*models.CircuitProposal, error)
}

// Validator turns raw payloads into ValidatedActions. Checks run in a fixed
// order and the first failure wins: structure, body digest, signature, then
// requester membership.
type Validator struct {
	verifier  signing.Verifier
	circuits  CircuitReader
	proposals ProposalReader
}

func NewValidator(verifier signing.Verifier, circuits CircuitReader, proposals ProposalReader) *Validator {
	return &Validator{verifier: verifier, circuits: circuits, proposals: proposals}
}

// Validate runs every check against p.
func (v *Validator) Validate(ctx context.Context, p *proto.CircuitManagementPayload) (ValidatedAction, error) {
	a, err := v.Authenticate(p)
	if err != nil {
		return nil, err
	}
	if err := v.Authorize(ctx, a, nil); err != nil {
		return nil, err
	}
	return a, nil
}

// Authenticate checks structure, digest and signature. It reads no state.
func (v *Validator) Authenticate(p *proto.CircuitManagementPayload) (ValidatedAction, error) {
	if p == nil || len(p.Header) == 0 {
		return nil, errorf(ErrMalformedPayload, "", "header missing")
	}
	h, err := proto.UnmarshalHeader(p.Header)
	if err != nil {
		return nil, newError(ErrMalformedPayload, "", err)
	}
	if !h.Action.Known() {
		return nil, errorf(ErrMalformedPayload, "", "unknown action %d", int32(h.Action))
	}
	bodies := p.Bodies()
	if len(bodies) != 1 {
		return nil, errorf(ErrMalformedPayload, "", "expected one body, got %d", len(bodies))
	}
	body := bodies[0]
	if body.Action() != h.Action {
		return nil, errorf(ErrMalformedPayload, "", "body does not match action %s", h.Action)
	}
	if len(h.Requester) == 0 || h.RequesterNodeId == "" {
		return nil, errorf(ErrMalformedPayload, "", "requester missing")
	}
	raw, err := proto.BodyBytes(body)
	if err != nil {
		return nil, newError(ErrMalformedPayload, "", err)
	}
	digest := sha512.Sum512(raw)
	if !bytes.Equal(digest[:], h.PayloadSha512) {
		return nil, errorf(ErrMalformedPayload, "", "body digest mismatch")
	}
	if err := v.verifier.Verify(h.Requester, p.Header, p.Signature); err != nil {
		return nil, newError(ErrInvalidSignature, "", err)
	}

	base := actionBase{
		requester: Requester{PublicKey: h.Requester, NodeID: h.RequesterNodeId},
		payload:   p,
	}
	var action ValidatedAction
	switch b := body.(type) {
	case *proto.CircuitCreateRequest:
		c := proto.CircuitFromProto(b.GetCircuit())
		if c == nil {
			return nil, errorf(ErrMalformedPayload, "", "create request without circuit")
		}
		base.circuitID = c.CircuitID
		action = &CreateCircuit{actionBase: base, Circuit: c}
	case *proto.CircuitJoinRequest:
		c := proto.CircuitFromProto(b.GetCircuit())
		if c == nil {
			return nil, errorf(ErrMalformedPayload, "", "join request without circuit")
		}
		base.circuitID = c.CircuitID
		action = &JoinCircuit{actionBase: base, Circuit: c}
	case *proto.CircuitUpdateRosterRequest:
		base.circuitID = b.GetCircuitId()
		action = &UpdateRoster{
			actionBase: base,
			Add:        proto.ServicesFromProto(b.GetAddServices()),
			Remove:     proto.ServicesFromProto(b.GetRemoveServices()),
		}
	case *proto.CircuitUpdateAddNodeRequest:
		if b.GetNode().GetNodeId() == "" {
			return nil, errorf(ErrMalformedPayload, b.GetCircuitId(), "add node request without node")
		}
		base.circuitID = b.GetCircuitId()
		action = &AddNode{actionBase: base, Node: proto.NodeFromProto(b.GetNode())}
	case *proto.CircuitUpdateRemoveNodeRequest:
		if b.GetNodeId() == "" {
			return nil, errorf(ErrMalformedPayload, b.GetCircuitId(), "remove node request without node id")
		}
		base.circuitID = b.GetCircuitId()
		action = &RemoveNode{actionBase: base, NodeID: b.GetNodeId()}
	case *proto.CircuitUpdateApplicationMetadataRequest:
		base.circuitID = b.GetCircuitId()
		action = &UpdateApplicationMetadata{actionBase: base, Metadata: b.GetApplicationMetadata()}
	case *proto.CircuitDestroyRequest:
		base.circuitID = b.GetCircuitId()
		action = &DestroyCircuit{actionBase: base}
	case *proto.CircuitAbandon:
		base.circuitID = b.GetCircuitId()
		action = &AbandonCircuit{actionBase: base}
	case *proto.CircuitProposalVote:
		if b.GetVote() != proto.Vote_ACCEPT && b.GetVote() != proto.Vote_REJECT {
			return nil, errorf(ErrMalformedPayload, b.GetCircuitId(), "vote must be ACCEPT or REJECT")
		}
		base.circuitID = b.GetCircuitId()
		action = &CastVote{actionBase: base, CircuitHash: b.GetCircuitHash(), Vote: models.Vote(b.GetVote())}
	default:
		return nil, errorf(ErrMalformedPayload, "", "unsupported body %T", body)
	}
	if action.CircuitID() == "" {
		return nil, errorf(ErrMalformedPayload, "", "circuit id missing")
	}
	return action, nil
}

// Authorize checks that the requester may act on the circuit. Create and
// join requests carry their own circuit and are checked against it. Other
// actions need the requester to be a member of the committed circuit, or of
// the proposed circuit when the circuit is not committed yet. fallback, when
// non-nil, stands in for a proposal this node has not stored yet.
func (v *Validator) Authorize(ctx context.Context, a ValidatedAction, fallback *models.Circuit) error {
	nodeID := a.Requester().NodeID
	switch act := a.(type) {
	case *CreateCircuit:
		return requireMember(act.Circuit, nodeID)
	case *JoinCircuit:
		return requireMember(act.Circuit, nodeID)
	}

	id := a.CircuitID()
	err := v.AuthorizeMember(ctx, id, nodeID)
	if errors.Is(err, ErrUnknownCircuit) && fallback != nil && fallback.CircuitID == id {
		return requireMember(fallback, nodeID)
	}
	return err
}

// AuthorizeMember checks that nodeID belongs to the committed circuit, or to
// the proposed circuit when circuitID is not committed yet.
func (v *Validator) AuthorizeMember(ctx context.Context, circuitID, nodeID string) error {
	c, err := v.circuits.Get(ctx, circuitID)
	switch {
	case err == nil:
		return requireMember(c, nodeID)
	case !errors.Is(err, storage.ErrNotFound):
		return newError(ErrStorageFailure, circuitID, err)
	}
	p, err := v.proposals.Get(ctx, circuitID)
	switch {
	case err == nil:
		return requireMember(&p.CircuitProposal, nodeID)
	case !errors.Is(err, storage.ErrNotFound):
		return newError(ErrStorageFailure, circuitID, err)
	}
	return newError(ErrUnknownCircuit, circuitID, nil)
}

func requireMember(c *models.Circuit, nodeID string) error {
	if c.HasMember(nodeID) {
		return nil
	}
	return errorf(ErrUnauthorizedRequester, c.CircuitID, "node %s is not a member", nodeID)
}
