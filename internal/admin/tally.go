package admin

import (
	"context"
	"errors"
	"sort"

	"github.com/devghori1264/aerophoenix/circuitd/internal/models"
	"github.com/devghori1264/aerophoenix/circuitd/internal/storage"
)

type Outcome int

const (
	Pending Outcome = iota
	Accepted
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	default:
		return "pending"
	}
}

// TallyResult is the state of a proposal after a vote was recorded.
type TallyResult struct {
	Outcome  Outcome
	Proposal *models.CircuitProposal
	// Changed is false when the vote repeated one already on record.
	Changed bool
}

// EligibleVoters returns the nodes whose votes decide p. The requester never
// votes. CREATE proposals are voted by the proposed members; every other
// type by the members of the committed circuit. A node that was never part
// of the committed circuit (the subject of an ADD_NODE) has no local copy and
// derives the set from the proposed circuit without itself.
func EligibleVoters(p *models.CircuitProposal, current *models.Circuit, localNodeID string) []string {
	var base []string
	switch {
	case p.ProposalType == models.ProposalCreate:
		base = p.CircuitProposal.MemberIDs()
	case current != nil:
		base = current.MemberIDs()
	default:
		for _, id := range p.CircuitProposal.MemberIDs() {
			if id != localNodeID {
				base = append(base, id)
			}
		}
	}
	out := make([]string, 0, len(base))
	for _, id := range base {
		if id != p.RequesterNodeID {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// Decide is a pure function of the recorded votes: any REJECT from an
// eligible voter rejects, an ACCEPT from every eligible voter accepts, and
// anything else stays pending. Votes from other nodes are ignored.
func Decide(p *models.CircuitProposal, eligible []string) Outcome {
	votes := p.LatestVotes()
	all := true
	for _, id := range eligible {
		switch votes[id] {
		case models.VoteReject:
			return Rejected
		case models.VoteAccept:
		default:
			all = false
		}
	}
	if all {
		return Accepted
	}
	return Pending
}

// Tally records votes against stored proposals.
type Tally struct {
	nodeID    string
	proposals *storage.ProposalStore
	circuits  CircuitReader
}

func NewTally(nodeID string, proposals *storage.ProposalStore, circuits CircuitReader) *Tally {
	return &Tally{nodeID: nodeID, proposals: proposals, circuits: circuits}
}

// ApplyVote records vote on the proposal for circuitID and evaluates it.
// Domain refusals come back as *Error; anything else is a storage error the
// caller may retry.
func (t *Tally) ApplyVote(ctx context.Context, circuitID, circuitHash string, vote models.VoteRecord) (TallyResult, error) {
	current, err := t.current(ctx, circuitID)
	if err != nil {
		return TallyResult{}, err
	}
	var eligible []string
	changed := false
	p, err := t.proposals.Update(ctx, circuitID, func(p *models.CircuitProposal) error {
		if p.CircuitHash != circuitHash {
			return errorf(ErrHashMismatch, circuitID, "vote for %s, proposal is %s", circuitHash, p.CircuitHash)
		}
		eligible = EligibleVoters(p, current, t.nodeID)
		if !contains(eligible, vote.VoterNodeID) {
			return errorf(ErrUnauthorizedRequester, circuitID, "node %s may not vote on this proposal", vote.VoterNodeID)
		}
		changed = p.UpsertVote(vote)
		return nil
	})
	if errors.Is(err, storage.ErrNotFound) {
		return TallyResult{}, newError(ErrUnknownProposal, circuitID, nil)
	}
	if err != nil {
		return TallyResult{}, err
	}
	return TallyResult{Outcome: Decide(p, eligible), Proposal: p, Changed: changed}, nil
}

// Evaluate decides a stored proposal without recording anything.
func (t *Tally) Evaluate(ctx context.Context, p *models.CircuitProposal) (Outcome, error) {
	current, err := t.current(ctx, p.CircuitID)
	if err != nil {
		return Pending, err
	}
	return Decide(p, EligibleVoters(p, current, t.nodeID)), nil
}

func (t *Tally) current(ctx context.Context, circuitID string) (*models.Circuit, error) {
	c, err := t.circuits.Get(ctx, circuitID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	return c, err
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
