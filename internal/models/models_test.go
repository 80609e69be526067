package models

import (
	"errors"
	"testing"
)

func sample() *Circuit {
	return &Circuit{
		CircuitID: "c1",
		Members:   []Node{{NodeID: "a", Endpoint: "tcp://a"}, {NodeID: "b", Endpoint: "tcp://b"}},
		Roster: []Service{
			{ServiceID: "s1", ServiceType: "t", AllowedNodes: []string{"a"}, Arguments: map[string]string{"k": "v"}},
			{ServiceID: "s2", ServiceType: "t", AllowedNodes: []string{"a", "b"}},
		},
		ApplicationMetadata: []byte("meta"),
	}
}

func TestValidate(t *testing.T) {
	if err := sample().Validate(); err != nil {
		t.Fatalf("valid circuit rejected: %v", err)
	}
	cases := map[string]struct {
		mutate func(*Circuit)
		want   error
	}{
		"empty id":          {func(c *Circuit) { c.CircuitID = "" }, ErrEmptyCircuitID},
		"duplicate member":  {func(c *Circuit) { c.Members = append(c.Members, Node{NodeID: "a"}) }, ErrDuplicateMember},
		"empty member":      {func(c *Circuit) { c.Members[1].NodeID = "" }, ErrEmptyMemberNodeID},
		"duplicate service": {func(c *Circuit) { c.Roster[1].ServiceID = "s1" }, ErrDuplicateService},
		"no allowed nodes":  {func(c *Circuit) { c.Roster[0].AllowedNodes = nil }, ErrNoAllowedNodes},
		"unknown allowed":   {func(c *Circuit) { c.Roster[0].AllowedNodes = []string{"z"} }, ErrUnknownAllowed},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c := sample()
			tc.mutate(c)
			if err := c.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestReferencedBy(t *testing.T) {
	c := sample()
	if got := c.ReferencedBy("b"); len(got) != 1 || got[0] != "s2" {
		t.Fatalf("ReferencedBy(b) = %v", got)
	}
	if got := c.ReferencedBy("z"); got != nil {
		t.Fatalf("ReferencedBy(z) = %v", got)
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	c := sample()
	cp := c.Clone()
	cp.Members[0].NodeID = "x"
	cp.Roster[0].AllowedNodes[0] = "x"
	cp.Roster[0].Arguments["k"] = "x"
	cp.ApplicationMetadata[0] = 'X'

	if c.Members[0].NodeID != "a" || c.Roster[0].AllowedNodes[0] != "a" || c.Roster[0].Arguments["k"] != "v" || string(c.ApplicationMetadata) != "meta" {
		t.Fatalf("clone shares state with original: %+v", c)
	}
	if (*Circuit)(nil).Clone() != nil {
		t.Fatal("nil clone should be nil")
	}
}

func TestUpsertVote(t *testing.T) {
	p := &CircuitProposal{CircuitID: "c1"}
	if !p.UpsertVote(VoteRecord{VoterNodeID: "b", Vote: VoteAccept, PublicKey: []byte("k")}) {
		t.Fatal("first vote not recorded")
	}
	if p.UpsertVote(VoteRecord{VoterNodeID: "b", Vote: VoteAccept, PublicKey: []byte("k")}) {
		t.Fatal("identical vote reported a change")
	}
	if !p.UpsertVote(VoteRecord{VoterNodeID: "b", Vote: VoteReject, PublicKey: []byte("k")}) {
		t.Fatal("changed vote not recorded")
	}
	if len(p.Votes) != 1 || p.LatestVotes()["b"] != VoteReject {
		t.Fatalf("votes = %+v", p.Votes)
	}

	cp := p.Clone()
	cp.Votes[0].PublicKey[0] = 'x'
	if string(p.Votes[0].PublicKey) != "k" {
		t.Fatal("proposal clone shares vote keys")
	}
}
