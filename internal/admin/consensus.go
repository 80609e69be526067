package admin

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/devghori1264/aerophoenix/circuitd/internal/models"
	"github.com/devghori1264/aerophoenix/circuitd/internal/proto"
	"github.com/devghori1264/aerophoenix/circuitd/internal/storage"
)

// buildProposal derives the proposal an action would open from this node's
// committed state. Peers run the same derivation to check a proposal they
// receive, so it must be deterministic.
func (sm *StateMachine) buildProposal(ctx context.Context, a ValidatedAction) (*models.CircuitProposal, error) {
	switch act := a.(type) {
	case *CreateCircuit:
		return sm.newCircuitProposal(ctx, act.Requester(), act.Circuit)
	case *JoinCircuit:
		return sm.newCircuitProposal(ctx, act.Requester(), act.Circuit)
	case *UpdateRoster:
		return sm.changeProposal(ctx, a, models.ProposalUpdateRoster, func(c *models.Circuit) error {
			storage.ApplyRosterUpdate(c, act.Add, act.Remove)
			return validateCircuit(c)
		})
	case *AddNode:
		return sm.changeProposal(ctx, a, models.ProposalAddNode, func(c *models.Circuit) error {
			if c.HasMember(act.Node.NodeID) {
				return errorf(ErrInvalidCircuit, c.CircuitID, "node %s is already a member", act.Node.NodeID)
			}
			if err := storage.ApplyMemberUpdate(c, &act.Node, ""); err != nil {
				return newError(ErrInvalidCircuit, c.CircuitID, err)
			}
			return validateCircuit(c)
		})
	case *RemoveNode:
		// services still allowing the node are caught at commit
		return sm.changeProposal(ctx, a, models.ProposalRemoveNode, func(c *models.Circuit) error {
			if !c.HasMember(act.NodeID) {
				return errorf(ErrInvalidCircuit, c.CircuitID, "node %s is not a member", act.NodeID)
			}
			members := c.Members[:0]
			for _, m := range c.Members {
				if m.NodeID != act.NodeID {
					members = append(members, m)
				}
			}
			c.Members = members
			return nil
		})
	case *UpdateApplicationMetadata:
		return sm.changeProposal(ctx, a, models.ProposalUpdateApplicationMetadata, func(c *models.Circuit) error {
			c.ApplicationMetadata = append([]byte(nil), act.Metadata...)
			return nil
		})
	case *DestroyCircuit:
		return sm.changeProposal(ctx, a, models.ProposalDestroy, func(*models.Circuit) error { return nil })
	}
	return nil, errorf(ErrMalformedPayload, a.CircuitID(), "%T does not open a proposal", a)
}

func (sm *StateMachine) newCircuitProposal(ctx context.Context, req Requester, circuit *models.Circuit) (*models.CircuitProposal, error) {
	c := circuit.Clone()
	c.Status = models.CircuitActive
	if err := validateCircuit(c); err != nil {
		return nil, err
	}
	if !c.HasMember(req.NodeID) {
		return nil, errorf(ErrUnauthorizedRequester, c.CircuitID, "requester %s is not a proposed member", req.NodeID)
	}
	_, err := sm.loadCircuit(ctx, c.CircuitID)
	switch {
	case err == nil:
		return nil, newError(ErrCircuitExists, c.CircuitID, nil)
	case !errors.Is(err, ErrUnknownCircuit):
		return nil, err
	}
	return proposalFor(models.ProposalCreate, c, req), nil
}

func (sm *StateMachine) changeProposal(ctx context.Context, a ValidatedAction, typ models.ProposalType, mutate func(*models.Circuit) error) (*models.CircuitProposal, error) {
	current, err := sm.loadCircuit(ctx, a.CircuitID())
	if err != nil {
		return nil, err
	}
	if current.Status == models.CircuitAbandoned {
		return nil, newError(ErrCircuitInactive, current.CircuitID, nil)
	}
	proposed := current.Clone()
	proposed.Status = models.CircuitActive
	if err := mutate(proposed); err != nil {
		return nil, err
	}
	return proposalFor(typ, proposed, a.Requester()), nil
}

func proposalFor(typ models.ProposalType, c *models.Circuit, req Requester) *models.CircuitProposal {
	return &models.CircuitProposal{
		ProposalType:    typ,
		CircuitID:       c.CircuitID,
		CircuitHash:     proto.CircuitHash(c),
		CircuitProposal: *c,
		Requester:       append([]byte(nil), req.PublicKey...),
		RequesterNodeID: req.NodeID,
	}
}

func validateCircuit(c *models.Circuit) error {
	if err := c.Validate(); err != nil {
		return newError(ErrInvalidCircuit, c.CircuitID, err)
	}
	return nil
}

// openProposal stores p as the circuit's outstanding proposal. When payload
// is non-nil this node is the requester and announces the proposal.
func (sm *StateMachine) openProposal(ctx context.Context, p *models.CircuitProposal, payload *proto.CircuitManagementPayload, fx *effects) (Result, error) {
	id := p.CircuitID
	err := sm.retry(ctx, id, func() error { return sm.proposals.Create(ctx, p) })
	if errors.Is(err, storage.ErrProposalExists) {
		return Result{CircuitID: id}, newError(ErrProposalAlreadyExists, id, nil)
	}
	if err != nil {
		return Result{CircuitID: id}, err
	}
	sm.resolved.Remove(resolvedKey(p))
	sm.metrics.ProposalOpened(p.ProposalType.String())
	sm.log.Info("proposal opened",
		zap.String("circuit_id", id),
		zap.Stringer("proposal_type", p.ProposalType),
		zap.String("circuit_hash", p.CircuitHash),
		zap.String("requester", p.RequesterNodeID))

	ev := newEvent(EventProposalSubmitted, id)
	ev.NodeID = p.RequesterNodeID
	ev.ProposalType = p.ProposalType.String()
	ev.CircuitHash = p.CircuitHash
	sm.publish(ctx, ev)

	if payload != nil {
		fx.send(&proto.AdminMessage{
			MessageType: proto.MessageType_PROPOSED_CIRCUIT,
			ProposedCircuit: &proto.ProposedCircuit{
				CircuitProposal: proto.ProposalToProto(p),
				ExpectedHash:    p.CircuitHash,
				CircuitPayload:  payload,
			},
		}, sm.targetsFor(ctx, p))
	}

	// a circuit whose only member is the requester needs no votes
	var outcome Outcome
	err = sm.retry(ctx, id, func() (err error) {
		outcome, err = sm.tally.Evaluate(ctx, p)
		return err
	})
	if err != nil {
		return Result{CircuitID: id}, err
	}
	if outcome != Pending {
		return sm.resolve(ctx, p, outcome, nil, fx)
	}
	return Result{CircuitID: id, Status: StatusProposed}, nil
}

// castVote records a vote. Local votes are sent to every member; a remote
// vote that decides the proposal is forwarded so members that missed it
// still converge.
func (sm *StateMachine) castVote(ctx context.Context, act *CastVote, local bool, fx *effects) (Result, error) {
	id := act.CircuitID()
	req := act.Requester()
	vote := models.VoteRecord{PublicKey: req.PublicKey, Vote: act.Vote, VoterNodeID: req.NodeID}

	var res TallyResult
	err := sm.retry(ctx, id, func() (err error) {
		res, err = sm.tally.ApplyVote(ctx, id, act.CircuitHash, vote)
		return err
	})
	if err != nil {
		return Result{CircuitID: id}, err
	}
	if res.Changed {
		sm.metrics.VoteApplied(act.Vote.String())
		sm.log.Info("vote recorded",
			zap.String("circuit_id", id),
			zap.String("voter", req.NodeID),
			zap.Stringer("vote", act.Vote),
			zap.Stringer("outcome", res.Outcome))
	}
	if local {
		fx.send(&proto.AdminMessage{
			MessageType:      proto.MessageType_CONSENSUS_MESSAGE,
			ConsensusMessage: act.Payload(),
		}, sm.targetsFor(ctx, res.Proposal))
	}
	if res.Outcome == Pending {
		return Result{CircuitID: id, Status: StatusPending}, nil
	}
	var deciding *proto.CircuitManagementPayload
	if !local {
		deciding = act.Payload()
	}
	return sm.resolve(ctx, res.Proposal, res.Outcome, deciding, fx)
}

// resolve commits an accepted proposal, drops the proposal and reports the
// outcome. A commit refused with MemberInUse drops the proposal and leaves
// the directory untouched.
func (sm *StateMachine) resolve(ctx context.Context, p *models.CircuitProposal, outcome Outcome, deciding *proto.CircuitManagementPayload, fx *effects) (Result, error) {
	id := p.CircuitID
	targets := sm.targetsFor(ctx, p)
	if deciding != nil {
		fx.send(&proto.AdminMessage{MessageType: proto.MessageType_CONSENSUS_MESSAGE, ConsensusMessage: deciding}, targets)
	}

	var commitErr error
	if outcome == Accepted {
		commitErr = sm.commit(ctx, p)
		if commitErr != nil && !errors.Is(commitErr, ErrMemberInUse) {
			return Result{CircuitID: id}, commitErr
		}
	}
	if err := sm.retry(ctx, id, func() error { return sm.proposals.Remove(ctx, id) }); err != nil {
		return Result{CircuitID: id}, err
	}
	sm.resolved.Add(resolvedKey(p), struct{}{})

	evType := EventProposalRejected
	status := StatusRejected
	switch {
	case commitErr != nil:
		evType = EventProposalCommitFailed
		sm.metrics.ProposalResolved("commit_failed")
		sm.log.Warn("accepted proposal could not be committed",
			zap.String("circuit_id", id),
			zap.Stringer("proposal_type", p.ProposalType),
			zap.Error(commitErr))
	case outcome == Accepted:
		evType = EventProposalAccepted
		status = StatusAccepted
		sm.metrics.ProposalResolved(outcome.String())
		sm.log.Info("proposal accepted", zap.String("circuit_id", id), zap.Stringer("proposal_type", p.ProposalType))
	default:
		sm.metrics.ProposalResolved(outcome.String())
		sm.log.Info("proposal rejected", zap.String("circuit_id", id), zap.Stringer("proposal_type", p.ProposalType))
	}
	ev := newEvent(evType, id)
	ev.ProposalType = p.ProposalType.String()
	ev.CircuitHash = p.CircuitHash
	ev.NodeID = p.RequesterNodeID
	if commitErr != nil {
		ev.Detail = commitErr.Error()
	}
	sm.publish(ctx, ev)

	if commitErr != nil {
		return Result{CircuitID: id, Status: StatusRejected}, commitErr
	}
	if status == StatusAccepted {
		sm.afterCommit(ctx, p, targets, fx)
	}
	return Result{CircuitID: id, Status: status}, nil
}

// commit applies an accepted proposal to the directory. Roster changes are
// applied before member removals so a removal only succeeds once no service
// allows the node. The stored circuit then takes the proposed layout
// verbatim, so every member stores the circuit that was hashed.
func (sm *StateMachine) commit(ctx context.Context, p *models.CircuitProposal) error {
	id := p.CircuitID
	proposed := p.CircuitProposal.Clone()
	proposed.Status = models.CircuitActive

	if p.ProposalType == models.ProposalDestroy {
		return sm.retry(ctx, id, func() error { return sm.circuits.Remove(ctx, id) })
	}
	err := sm.retry(ctx, id, func() error {
		_, err := sm.circuits.Apply(ctx, id, func(c *models.Circuit) error {
			return applyProposed(c, proposed)
		})
		if errors.Is(err, storage.ErrNotFound) {
			return sm.circuits.Commit(ctx, proposed)
		}
		if errors.Is(err, storage.ErrMemberInUse) {
			return newError(ErrMemberInUse, id, err)
		}
		return err
	})
	if err != nil {
		return err
	}
	if !proposed.HasMember(sm.nodeID) {
		sm.log.Info("removed from circuit", zap.String("circuit_id", id))
		return sm.retry(ctx, id, func() error { return sm.circuits.Remove(ctx, id) })
	}
	return nil
}

func applyProposed(c, proposed *models.Circuit) error {
	keep := make(map[string]struct{}, len(proposed.Roster))
	for _, s := range proposed.Roster {
		keep[s.ServiceID] = struct{}{}
	}
	var removeSvc []models.Service
	for _, s := range c.Roster {
		if _, ok := keep[s.ServiceID]; !ok {
			removeSvc = append(removeSvc, s)
		}
	}
	storage.ApplyRosterUpdate(c, proposed.Roster, removeSvc)

	for _, id := range c.MemberIDs() {
		if proposed.HasMember(id) {
			continue
		}
		if err := storage.ApplyMemberUpdate(c, nil, id); err != nil {
			return err
		}
	}
	for i := range proposed.Members {
		if err := storage.ApplyMemberUpdate(c, &proposed.Members[i], ""); err != nil {
			return err
		}
	}

	status := c.Status
	*c = *proposed.Clone()
	c.Status = status
	return nil
}

func (sm *StateMachine) afterCommit(ctx context.Context, p *models.CircuitProposal, targets []string, fx *effects) {
	id := p.CircuitID
	switch p.ProposalType {
	case models.ProposalDestroy:
		sm.readiness.Forget(id)
	case models.ProposalCreate, models.ProposalAddNode:
		if !p.CircuitProposal.HasMember(sm.nodeID) {
			return
		}
		fx.send(&proto.AdminMessage{
			MessageType: proto.MessageType_MEMBER_READY,
			MemberReady: &proto.MemberReady{CircuitId: id, MemberNodeId: sm.nodeID},
		}, targets)
		sm.readiness.MemberReady(ctx, id, sm.nodeID)
	default:
		if !p.CircuitProposal.HasMember(sm.nodeID) {
			sm.readiness.Forget(id)
			return
		}
		sm.readiness.Check(ctx, id)
	}
}

// abandon marks the local copy of a circuit abandoned and tells the other
// members. Abandoning twice is a no-op.
func (sm *StateMachine) abandon(ctx context.Context, act *AbandonCircuit, fx *effects) (Result, error) {
	id := act.CircuitID()
	current, err := sm.loadCircuit(ctx, id)
	if err != nil {
		return Result{CircuitID: id}, err
	}
	if current.Status == models.CircuitAbandoned {
		return Result{CircuitID: id, Status: StatusAbandoned}, nil
	}
	err = sm.retry(ctx, id, func() error {
		_, err := sm.circuits.SetStatus(ctx, id, models.CircuitAbandoned)
		return err
	})
	if err != nil {
		return Result{CircuitID: id}, err
	}
	sm.log.Info("circuit abandoned", zap.String("circuit_id", id))
	ev := newEvent(EventCircuitAbandoned, id)
	ev.NodeID = sm.nodeID
	sm.publish(ctx, ev)

	fx.send(&proto.AdminMessage{
		MessageType:      proto.MessageType_CONSENSUS_MESSAGE,
		ConsensusMessage: act.Payload(),
	}, current.MemberIDs())
	return Result{CircuitID: id, Status: StatusAbandoned}, nil
}

// targetsFor is every node that must hear about p: the proposed members and
// the current members, which differ for ADD_NODE and REMOVE_NODE.
func (sm *StateMachine) targetsFor(ctx context.Context, p *models.CircuitProposal) []string {
	ids := p.CircuitProposal.MemberIDs()
	if c, err := sm.circuits.Get(ctx, p.CircuitID); err == nil {
		ids = append(ids, c.MemberIDs()...)
	}
	ids = dedupe(ids)
	sort.Strings(ids)
	return ids
}

func resolvedKey(p *models.CircuitProposal) string {
	return p.CircuitID + "\x00" + p.CircuitHash
}
