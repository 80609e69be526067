package proto

import (
	"crypto/sha512"
	"fmt"

	protobuf "google.golang.org/protobuf/proto"
)

// Known reports whether a is a recognised, non-unset action.
func (a Action) Known() bool {
	_, ok := Action_name[int32(a)]
	return ok && a != Action_ACTION_UNSET
}

// Body is implemented by every action body record.
type Body interface {
	protobuf.Message
	Action() Action
}

func (*CircuitCreateRequest) Action() Action       { return Action_CIRCUIT_CREATE_REQUEST }
func (*CircuitProposalVote) Action() Action        { return Action_CIRCUIT_PROPOSAL_VOTE }
func (*CircuitJoinRequest) Action() Action         { return Action_CIRCUIT_JOIN_REQUEST }
func (*CircuitUpdateRosterRequest) Action() Action { return Action_CIRCUIT_UPDATE_ROSTER_REQUEST }
func (*CircuitUpdateAddNodeRequest) Action() Action {
	return Action_CIRCUIT_UPDATE_ADD_NODE_REQUEST
}
func (*CircuitUpdateRemoveNodeRequest) Action() Action {
	return Action_CIRCUIT_UPDATE_REMOVE_NODE_REQUEST
}
func (*CircuitUpdateApplicationMetadataRequest) Action() Action {
	return Action_CIRCUIT_UPDATE_APPLICATION_METADATA_REQUEST
}
func (*CircuitDestroyRequest) Action() Action { return Action_CIRCUIT_DESTROY_REQUEST }
func (*CircuitAbandon) Action() Action        { return Action_CIRCUIT_ABANDON }

// Bodies returns every body set on the payload, in field order. A well-formed
// payload carries exactly one.
func (x *CircuitManagementPayload) Bodies() []Body {
	var out []Body
	for _, b := range []Body{
		x.GetCircuitCreateRequest(),
		x.GetCircuitProposalVote(),
		x.GetCircuitJoinRequest(),
		x.GetCircuitUpdateRosterRequest(),
		x.GetCircuitUpdateAddNodeRequest(),
		x.GetCircuitUpdateRemoveNodeRequest(),
		x.GetCircuitUpdateApplicationMetadataRequest(),
		x.GetCircuitDestroyRequest(),
		x.GetCircuitAbandon(),
	} {
		if b.ProtoReflect().IsValid() {
			out = append(out, b)
		}
	}
	return out
}

// SetBody stores body in the payload field its action names.
func (x *CircuitManagementPayload) SetBody(body Body) {
	switch b := body.(type) {
	case *CircuitCreateRequest:
		x.CircuitCreateRequest = b
	case *CircuitProposalVote:
		x.CircuitProposalVote = b
	case *CircuitJoinRequest:
		x.CircuitJoinRequest = b
	case *CircuitUpdateRosterRequest:
		x.CircuitUpdateRosterRequest = b
	case *CircuitUpdateAddNodeRequest:
		x.CircuitUpdateAddNodeRequest = b
	case *CircuitUpdateRemoveNodeRequest:
		x.CircuitUpdateRemoveNodeRequest = b
	case *CircuitUpdateApplicationMetadataRequest:
		x.CircuitUpdateApplicationMetadataRequest = b
	case *CircuitDestroyRequest:
		x.CircuitDestroyRequest = b
	case *CircuitAbandon:
		x.CircuitAbandon = b
	}
}

// BodyBytes is the encoding the header digest is taken over.
func BodyBytes(body Body) ([]byte, error) {
	return deterministic.Marshal(body)
}

// Signer produces a signature over msg with the requester's private key.
type Signer interface {
	PublicKey() []byte
	Sign(msg []byte) ([]byte, error)
}

// NewPayload builds and signs a payload carrying body on behalf of nodeID.
func NewPayload(body Body, nodeID string, signer Signer) (*CircuitManagementPayload, error) {
	raw, err := BodyBytes(body)
	if err != nil {
		return nil, fmt.Errorf("encode %s body: %w", body.Action(), err)
	}
	digest := sha512.Sum512(raw)
	header, err := deterministic.Marshal(&Header{
		Action:          body.Action(),
		Requester:       signer.PublicKey(),
		PayloadSha512:   digest[:],
		RequesterNodeId: nodeID,
	})
	if err != nil {
		return nil, fmt.Errorf("encode header: %w", err)
	}
	sig, err := signer.Sign(header)
	if err != nil {
		return nil, fmt.Errorf("sign header: %w", err)
	}
	p := &CircuitManagementPayload{Header: header, Signature: sig}
	p.SetBody(body)
	return p, nil
}

func UnmarshalHeader(b []byte) (*Header, error) {
	var h Header
	if err := protobuf.Unmarshal(b, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func UnmarshalPayload(b []byte) (*CircuitManagementPayload, error) {
	var p CircuitManagementPayload
	if err := protobuf.Unmarshal(b, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func UnmarshalAdminMessage(b []byte) (*AdminMessage, error) {
	var m AdminMessage
	if err := protobuf.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
