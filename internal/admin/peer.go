package admin

import (
	"bytes"
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/devghori1264/aerophoenix/circuitd/internal/models"
	"github.com/devghori1264/aerophoenix/circuitd/internal/proto"
	"github.com/devghori1264/aerophoenix/circuitd/internal/storage"
)

// HandleProposedCircuit stores a proposal announced by its requester after
// re-validating the signed request and re-deriving the proposed circuit
// from local state. A redelivered proposal is a no-op.
func (sm *StateMachine) HandleProposedCircuit(ctx context.Context, from string, msg *proto.ProposedCircuit) error {
	ctx, span := sm.tracer.Start(ctx, "admin.HandleProposedCircuit")
	defer span.End()
	span.SetAttributes(attribute.String("peer", from))

	res, err := sm.acceptProposed(ctx, msg)
	if err != nil {
		sm.refuse(span, err)
		sm.log.Warn("refused proposed circuit", zap.String("from", from), zap.String("kind", KindName(err)), zap.Error(err))
		return err
	}
	if res.Status == StatusProposed {
		sm.replayPending(ctx, res.CircuitID)
	}
	return nil
}

func (sm *StateMachine) acceptProposed(ctx context.Context, msg *proto.ProposedCircuit) (Result, error) {
	p := proto.ProposalFromProto(msg.GetCircuitProposal())
	if p == nil || msg.GetCircuitPayload() == nil {
		return Result{}, errorf(ErrMalformedPayload, "", "proposed circuit without proposal or payload")
	}
	id := p.CircuitID
	if got := proto.CircuitHash(&p.CircuitProposal); got != p.CircuitHash || got != msg.GetExpectedHash() {
		return Result{CircuitID: id}, errorf(ErrHashMismatch, id, "proposed circuit hashes to %s", got)
	}
	a, err := sm.validator.Authenticate(msg.GetCircuitPayload())
	if err != nil {
		return Result{CircuitID: id}, err
	}
	req := a.Requester()
	if a.CircuitID() != id || req.NodeID != p.RequesterNodeID || !bytes.Equal(req.PublicKey, p.Requester) {
		return Result{CircuitID: id}, errorf(ErrMalformedPayload, id, "proposal does not match its signed request")
	}
	if err := sm.validator.Authorize(ctx, a, &p.CircuitProposal); err != nil {
		return Result{CircuitID: id}, err
	}

	var fx effects
	res, err := sm.withCircuit(id, func() (Result, error) {
		existing, err := sm.proposals.Get(ctx, id)
		switch {
		case err == nil:
			if existing.CircuitHash == p.CircuitHash && existing.ProposalType == p.ProposalType {
				return Result{CircuitID: id, Status: StatusDuplicate}, nil
			}
			return Result{CircuitID: id}, newError(ErrProposalAlreadyExists, id, nil)
		case !errors.Is(err, storage.ErrNotFound):
			return Result{CircuitID: id}, newError(ErrStorageFailure, id, err)
		}

		expected, err := sm.buildProposal(ctx, a)
		switch {
		case err == nil:
			if expected.CircuitHash != p.CircuitHash || expected.ProposalType != p.ProposalType {
				return Result{CircuitID: id}, errorf(ErrHashMismatch, id, "local derivation gives %s %s", expected.ProposalType, expected.CircuitHash)
			}
		case errors.Is(err, ErrUnknownCircuit):
			// the node being added has no copy of the circuit to derive from
			add, ok := a.(*AddNode)
			if !ok || add.Node.NodeID != sm.nodeID || p.ProposalType != models.ProposalAddNode || !p.CircuitProposal.HasMember(sm.nodeID) {
				return Result{CircuitID: id}, err
			}
			if err := validateCircuit(&p.CircuitProposal); err != nil {
				return Result{CircuitID: id}, err
			}
		default:
			return Result{CircuitID: id}, err
		}

		fresh := p.Clone()
		fresh.Votes = nil
		return sm.openProposal(ctx, fresh, nil, &fx)
	})
	sm.flush(ctx, &fx)
	return res, err
}

// HandleConsensus applies a vote or an abandon notice sent by a member.
func (sm *StateMachine) HandleConsensus(ctx context.Context, from string, payload *proto.CircuitManagementPayload) error {
	ctx, span := sm.tracer.Start(ctx, "admin.HandleConsensus")
	defer span.End()
	span.SetAttributes(attribute.String("peer", from))

	a, err := sm.validator.Authenticate(payload)
	if err == nil {
		switch act := a.(type) {
		case *CastVote:
			err = sm.receiveVote(ctx, act)
		case *AbandonCircuit:
			err = sm.memberAbandoned(ctx, act)
		default:
			err = errorf(ErrMalformedPayload, a.CircuitID(), "unexpected %T in consensus message", a)
		}
	}
	if err != nil {
		sm.refuse(span, err)
		sm.log.Warn("refused consensus message", zap.String("from", from), zap.String("kind", KindName(err)), zap.Error(err))
	}
	return err
}

// receiveVote applies a member's vote. A vote that outruns its proposal is
// buffered and replayed once the proposal arrives. The buffering decision is
// taken under the circuit's op lock, the same lock openProposal and
// takePending hold, so a vote is never queued after its queue was drained.
func (sm *StateMachine) receiveVote(ctx context.Context, act *CastVote) error {
	var fx effects
	_, err := sm.withCircuit(act.CircuitID(), func() (Result, error) {
		err := sm.validator.Authorize(ctx, act, nil)
		if errors.Is(err, ErrUnknownCircuit) {
			sm.bufferVote(act)
			return Result{CircuitID: act.CircuitID(), Status: StatusPending}, nil
		}
		if err != nil {
			return Result{CircuitID: act.CircuitID()}, err
		}
		res, err := sm.castVote(ctx, act, false, &fx)
		if errors.Is(err, ErrUnknownProposal) {
			sm.bufferVote(act)
			return Result{CircuitID: act.CircuitID(), Status: StatusPending}, nil
		}
		return res, err
	})
	sm.flush(ctx, &fx)
	return err
}

// bufferVote must be called with the circuit's op lock held.
func (sm *StateMachine) bufferVote(act *CastVote) {
	id := act.CircuitID()
	key := id + "\x00" + act.CircuitHash
	if sm.resolved.Contains(key) {
		sm.log.Debug("dropping vote for resolved proposal", zap.String("circuit_id", id), zap.String("voter", act.Requester().NodeID))
		return
	}
	sm.pendingMu.Lock()
	q := append(sm.pending[id], act)
	if len(q) > sm.cfg.PendingVoteLimit {
		q = q[len(q)-sm.cfg.PendingVoteLimit:]
	}
	sm.pending[id] = q
	sm.pendingMu.Unlock()
	sm.log.Debug("buffered early vote", zap.String("circuit_id", id), zap.String("voter", act.Requester().NodeID))
}

// takePending removes and returns the votes buffered for circuitID. It must
// be called with the circuit's op lock held.
func (sm *StateMachine) takePending(circuitID string) []*CastVote {
	sm.pendingMu.Lock()
	defer sm.pendingMu.Unlock()
	q := sm.pending[circuitID]
	delete(sm.pending, circuitID)
	return q
}

func (sm *StateMachine) replayPending(ctx context.Context, circuitID string) {
	var q []*CastVote
	_, _ = sm.withCircuit(circuitID, func() (Result, error) {
		q = sm.takePending(circuitID)
		return Result{CircuitID: circuitID}, nil
	})
	for _, act := range q {
		if err := sm.receiveVote(ctx, act); err != nil {
			sm.log.Warn("buffered vote refused", zap.String("circuit_id", circuitID), zap.String("kind", KindName(err)), zap.Error(err))
		}
	}
}

// PendingVotes reports how many early votes are buffered for circuitID.
func (sm *StateMachine) PendingVotes(circuitID string) int {
	sm.pendingMu.Lock()
	defer sm.pendingMu.Unlock()
	return len(sm.pending[circuitID])
}

func (sm *StateMachine) memberAbandoned(ctx context.Context, act *AbandonCircuit) error {
	if err := sm.validator.Authorize(ctx, act, nil); err != nil {
		return err
	}
	node := act.Requester().NodeID
	sm.log.Info("member abandoned circuit", zap.String("circuit_id", act.CircuitID()), zap.String("member", node))
	ev := newEvent(EventCircuitMemberAbandons, act.CircuitID())
	ev.NodeID = node
	sm.publish(ctx, ev)
	return nil
}

// HandleMemberReady records a member's readiness. Only the member itself may
// report, and it must belong to the circuit or to its outstanding proposal.
func (sm *StateMachine) HandleMemberReady(ctx context.Context, from string, msg *proto.MemberReady) error {
	id, member := msg.GetCircuitId(), msg.GetMemberNodeId()
	if id == "" || member == "" {
		return errorf(ErrMalformedPayload, id, "member ready without circuit or node")
	}
	if member != from {
		err := errorf(ErrUnauthorizedRequester, id, "%s reported readiness for %s", from, member)
		sm.log.Warn("refused member ready", zap.String("from", from), zap.Error(err))
		return err
	}
	if err := sm.validator.AuthorizeMember(ctx, id, member); err != nil {
		sm.log.Warn("refused member ready", zap.String("from", from), zap.String("kind", KindName(err)), zap.Error(err))
		return err
	}
	sm.log.Debug("member ready", zap.String("circuit_id", id), zap.String("member", member))
	sm.readiness.MemberReady(ctx, id, member)
	return nil
}

// Recover resolves stored proposals whose votes were already decisive when
// the node stopped, for example between a commit and the proposal removal.
func (sm *StateMachine) Recover(ctx context.Context) error {
	props, err := sm.proposals.List(ctx)
	if err != nil {
		return newError(ErrStorageFailure, "", err)
	}
	sm.metrics.ProposalsRestored(len(props))
	for _, p := range props {
		var fx effects
		res, err := sm.withCircuit(p.CircuitID, func() (Result, error) {
			outcome, err := sm.tally.Evaluate(ctx, p)
			if err != nil || outcome == Pending {
				return Result{CircuitID: p.CircuitID, Status: StatusPending}, err
			}
			return sm.resolve(ctx, p, outcome, nil, &fx)
		})
		sm.flush(ctx, &fx)
		if err != nil {
			sm.log.Warn("recovering proposal failed", zap.String("circuit_id", p.CircuitID), zap.Error(err))
			continue
		}
		sm.log.Info("recovered proposal", zap.String("circuit_id", p.CircuitID), zap.String("status", string(res.Status)))
	}
	return nil
}
