package models

// ProposalType names the change a proposal would make once accepted.
type ProposalType int32

const (
	ProposalUnset ProposalType = iota
	ProposalCreate
	ProposalUpdateRoster
	ProposalAddNode
	ProposalRemoveNode
	ProposalDestroy
	ProposalUpdateApplicationMetadata
)

func (p ProposalType) String() string {
	switch p {
	case ProposalCreate:
		return "CREATE"
	case ProposalUpdateRoster:
		return "UPDATE_ROSTER"
	case ProposalAddNode:
		return "ADD_NODE"
	case ProposalRemoveNode:
		return "REMOVE_NODE"
	case ProposalDestroy:
		return "DESTROY"
	case ProposalUpdateApplicationMetadata:
		return "UPDATE_APPLICATION_METADATA"
	default:
		return "UNSET"
	}
}

type Vote int32

const (
	VoteUnset Vote = iota
	VoteAccept
	VoteReject
)

func (v Vote) String() string {
	switch v {
	case VoteAccept:
		return "ACCEPT"
	case VoteReject:
		return "REJECT"
	default:
		return "UNSET"
	}
}

// VoteRecord is the latest vote cast by one node on a proposal.
type VoteRecord struct {
	PublicKey   []byte `json:"public_key"`
	Vote        Vote   `json:"vote"`
	VoterNodeID string `json:"voter_node_id"`
}

// CircuitProposal is an in-flight change to a circuit awaiting ratification.
type CircuitProposal struct {
	ProposalType    ProposalType `json:"proposal_type"`
	CircuitID       string       `json:"circuit_id"`
	CircuitHash     string       `json:"circuit_hash"`
	CircuitProposal Circuit      `json:"circuit_proposal"`
	Votes           []VoteRecord `json:"votes"`
	Requester       []byte       `json:"requester"`
	RequesterNodeID string       `json:"requester_node_id"`
}

// UpsertVote records v, replacing any earlier vote from the same node.
// It reports whether the stored votes changed.
func (p *CircuitProposal) UpsertVote(v VoteRecord) bool {
	for i := range p.Votes {
		if p.Votes[i].VoterNodeID != v.VoterNodeID {
			continue
		}
		if p.Votes[i].Vote == v.Vote && string(p.Votes[i].PublicKey) == string(v.PublicKey) {
			return false
		}
		p.Votes[i] = v
		return true
	}
	p.Votes = append(p.Votes, v)
	return true
}

// LatestVotes maps voter node id to that node's current vote.
func (p *CircuitProposal) LatestVotes() map[string]Vote {
	out := make(map[string]Vote, len(p.Votes))
	for _, v := range p.Votes {
		out[v.VoterNodeID] = v.Vote
	}
	return out
}

func (p *CircuitProposal) Clone() *CircuitProposal {
	if p == nil {
		return nil
	}
	out := *p
	out.CircuitProposal = *p.CircuitProposal.Clone()
	out.Votes = make([]VoteRecord, 0, len(p.Votes))
	for _, v := range p.Votes {
		v.PublicKey = append([]byte(nil), v.PublicKey...)
		out.Votes = append(out.Votes, v)
	}
	out.Requester = append([]byte(nil), p.Requester...)
	return &out
}
