package admin

import (
	"github.com/devghori1264/aerophoenix/circuitd/internal/models"
	"github.com/devghori1264/aerophoenix/circuitd/internal/proto"
)

// Requester identifies who signed a payload.
type Requester struct {
	PublicKey []byte
	NodeID    string
}

// ValidatedAction is a payload that passed validation, narrowed to the one
// action its header names. The set of implementations is closed.
type ValidatedAction interface {
	CircuitID() string
	Requester() Requester
	// Payload is the signed payload the action was decoded from, kept so it
	// can be forwarded to peers unchanged.
	Payload() *proto.CircuitManagementPayload
	isValidatedAction()
}

type actionBase struct {
	circuitID string
	requester Requester
	payload   *proto.CircuitManagementPayload
}

func (a *actionBase) CircuitID() string                        { return a.circuitID }
func (a *actionBase) Requester() Requester                     { return a.requester }
func (a *actionBase) Payload() *proto.CircuitManagementPayload { return a.payload }
func (a *actionBase) isValidatedAction()                       {}

type CreateCircuit struct {
	actionBase
	Circuit *models.Circuit
}

// JoinCircuit is ratified exactly like CreateCircuit.
type JoinCircuit struct {
	actionBase
	Circuit *models.Circuit
}

type UpdateRoster struct {
	actionBase
	Add    []models.Service
	Remove []models.Service
}

type AddNode struct {
	actionBase
	Node models.Node
}

type RemoveNode struct {
	actionBase
	NodeID string
}

type UpdateApplicationMetadata struct {
	actionBase
	Metadata []byte
}

type DestroyCircuit struct {
	actionBase
}

type AbandonCircuit struct {
	actionBase
}

type CastVote struct {
	actionBase
	CircuitHash string
	Vote        models.Vote
}
