package admin_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"sync"
	"testing"

	"github.com/devghori1264/aerophoenix/circuitd/internal/admin"
	"github.com/devghori1264/aerophoenix/circuitd/internal/admin/admintest"
	"github.com/devghori1264/aerophoenix/circuitd/internal/models"
	"github.com/devghori1264/aerophoenix/circuitd/internal/proto"
	"github.com/devghori1264/aerophoenix/circuitd/internal/storage"
)

// establish creates circuitID with every cluster node as member and drives
// it to commit.
func establish(t *testing.T, c *admintest.Cluster, circuitID string) {
	t.Helper()
	ctx := context.Background()
	ids := c.IDs()
	requester := c.Nodes[ids[0]]
	res, err := requester.Submit(t, &proto.CircuitCreateRequest{Circuit: proto.CircuitToProto(admintest.TwoPartyCircuit(circuitID, ids...))})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.Status != admin.StatusProposed {
		t.Fatalf("create status = %s", res.Status)
	}
	c.Net.DeliverAll(ctx)
	for _, id := range ids[1:] {
		if _, err := c.Nodes[id].Vote(t, circuitID, models.VoteAccept); err != nil {
			t.Fatalf("vote by %s: %v", id, err)
		}
	}
	c.Net.DeliverAll(ctx)
	for _, id := range ids {
		if c.Nodes[id].Circuit(circuitID) == nil {
			t.Fatalf("%s did not commit %s", id, circuitID)
		}
	}
}

func TestCreateCircuitTwoParties(t *testing.T) {
	ctx := context.Background()
	c := admintest.NewCluster(t, "alpha", "beta")
	alpha, beta := c.Nodes["alpha"], c.Nodes["beta"]
	circuit := admintest.TwoPartyCircuit("01234-abcde", "alpha", "beta")

	res, err := alpha.Submit(t, &proto.CircuitCreateRequest{Circuit: proto.CircuitToProto(circuit)})
	if err != nil {
		t.Fatalf("submit create: %v", err)
	}
	if res.Status != admin.StatusProposed || res.CircuitID != "01234-abcde" {
		t.Fatalf("unexpected result %+v", res)
	}
	if alpha.Proposal("01234-abcde") == nil {
		t.Fatal("requester did not store the proposal")
	}
	if alpha.Circuit("01234-abcde") != nil {
		t.Fatal("circuit committed before any vote")
	}

	c.Net.DeliverAll(ctx)
	p := beta.Proposal("01234-abcde")
	if p == nil {
		t.Fatal("beta did not receive the proposal")
	}
	if p.CircuitHash != proto.CircuitHash(circuit) {
		t.Fatalf("hash = %s, want %s", p.CircuitHash, proto.CircuitHash(circuit))
	}

	res, err = beta.Vote(t, "01234-abcde", models.VoteAccept)
	if err != nil {
		t.Fatalf("vote: %v", err)
	}
	if res.Status != admin.StatusAccepted {
		t.Fatalf("beta vote status = %s, want accepted", res.Status)
	}
	c.Net.DeliverAll(ctx)

	for _, n := range []*admintest.Node{alpha, beta} {
		got := n.Circuit("01234-abcde")
		if got == nil {
			t.Fatalf("%s has no committed circuit", n.ID)
		}
		if proto.CircuitHash(got) != proto.CircuitHash(circuit) {
			t.Fatalf("%s committed a different circuit", n.ID)
		}
		if n.Proposal("01234-abcde") != nil {
			t.Fatalf("%s still holds the proposal", n.ID)
		}
		if n.Events.Count(admin.EventProposalAccepted) != 1 {
			t.Fatalf("%s accepted events = %d", n.ID, n.Events.Count(admin.EventProposalAccepted))
		}
		if n.Events.Count(admin.EventCircuitReady) != 1 {
			t.Fatalf("%s ready events = %d", n.ID, n.Events.Count(admin.EventCircuitReady))
		}
	}
	if got := alpha.SM.Readiness().ReadyMembers("01234-abcde"); !reflect.DeepEqual(got, []string{"alpha", "beta"}) {
		t.Fatalf("ready members = %v", got)
	}
}

func TestCreateCircuitRejected(t *testing.T) {
	ctx := context.Background()
	c := admintest.NewCluster(t, "alpha", "beta", "gamma")
	alpha := c.Nodes["alpha"]
	if _, err := alpha.Submit(t, &proto.CircuitCreateRequest{Circuit: proto.CircuitToProto(admintest.TwoPartyCircuit("c1", "alpha", "beta", "gamma"))}); err != nil {
		t.Fatal(err)
	}
	c.Net.DeliverAll(ctx)

	if _, err := c.Nodes["beta"].Vote(t, "c1", models.VoteAccept); err != nil {
		t.Fatal(err)
	}
	res, err := c.Nodes["gamma"].Vote(t, "c1", models.VoteReject)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != admin.StatusRejected {
		t.Fatalf("status = %s, want rejected", res.Status)
	}
	c.Net.DeliverAll(ctx)

	for _, id := range c.IDs() {
		n := c.Nodes[id]
		if n.Circuit("c1") != nil {
			t.Fatalf("%s committed a rejected circuit", id)
		}
		if n.Proposal("c1") != nil {
			t.Fatalf("%s still holds the rejected proposal", id)
		}
		if n.Events.Count(admin.EventProposalRejected) != 1 {
			t.Fatalf("%s rejected events = %d", id, n.Events.Count(admin.EventProposalRejected))
		}
	}
}

func TestSubmitBadSignatureStoresNothing(t *testing.T) {
	c := admintest.NewCluster(t, "alpha", "beta")
	alpha := c.Nodes["alpha"]
	p := alpha.Payload(t, &proto.CircuitCreateRequest{Circuit: proto.CircuitToProto(admintest.TwoPartyCircuit("c1", "alpha", "beta"))})
	p.Signature[len(p.Signature)-1] ^= 0x01

	_, err := alpha.SM.Submit(context.Background(), p)
	if !errors.Is(err, admin.ErrInvalidSignature) {
		t.Fatalf("err = %v, want InvalidSignature", err)
	}
	if admin.KindName(err) != "InvalidSignature" {
		t.Fatalf("kind = %s", admin.KindName(err))
	}
	if alpha.Proposal("c1") != nil {
		t.Fatal("proposal stored for a bad signature")
	}
	if c.Net.Pending() != 0 {
		t.Fatal("messages sent for a bad signature")
	}
}

func TestSubmitForeignRequesterRefused(t *testing.T) {
	c := admintest.NewCluster(t, "alpha", "beta")
	p := c.Nodes["beta"].Payload(t, &proto.CircuitCreateRequest{Circuit: proto.CircuitToProto(admintest.TwoPartyCircuit("c1", "alpha", "beta"))})

	_, err := c.Nodes["alpha"].SM.Submit(context.Background(), p)
	if !errors.Is(err, admin.ErrUnauthorizedRequester) {
		t.Fatalf("err = %v, want UnauthorizedRequester", err)
	}
}

func TestRemoveNodeStillReferencedFailsAtCommit(t *testing.T) {
	ctx := context.Background()
	c := admintest.NewCluster(t, "alpha", "beta", "gamma")
	establish(t, c, "c1")
	before := c.Nodes["alpha"].Circuit("c1")

	if _, err := c.Nodes["alpha"].Submit(t, &proto.CircuitUpdateRemoveNodeRequest{CircuitId: "c1", NodeId: "gamma"}); err != nil {
		t.Fatalf("propose removal: %v", err)
	}
	c.Net.DeliverAll(ctx)
	if _, err := c.Nodes["beta"].Vote(t, "c1", models.VoteAccept); err != nil {
		t.Fatal(err)
	}
	c.Net.DeliverAll(ctx)

	_, err := c.Nodes["gamma"].Vote(t, "c1", models.VoteAccept)
	if !errors.Is(err, admin.ErrMemberInUse) {
		t.Fatalf("err = %v, want MemberInUse", err)
	}
	c.Net.DeliverAll(ctx)

	for _, id := range c.IDs() {
		n := c.Nodes[id]
		got := n.Circuit("c1")
		if got == nil || !reflect.DeepEqual(got, before) {
			t.Fatalf("%s directory changed: %+v", id, got)
		}
		if n.Proposal("c1") != nil {
			t.Fatalf("%s kept the failed proposal", id)
		}
		if n.Events.Count(admin.EventProposalCommitFailed) != 1 {
			t.Fatalf("%s commit_failed events = %d", id, n.Events.Count(admin.EventProposalCommitFailed))
		}
	}
}

func TestSingleOutstandingProposal(t *testing.T) {
	c := admintest.NewCluster(t, "alpha", "beta")
	establish(t, c, "c1")
	alpha := c.Nodes["alpha"]

	if _, err := alpha.Submit(t, &proto.CircuitUpdateApplicationMetadataRequest{CircuitId: "c1", ApplicationMetadata: []byte("v2")}); err != nil {
		t.Fatal(err)
	}
	_, err := alpha.Submit(t, &proto.CircuitDestroyRequest{CircuitId: "c1"})
	if !errors.Is(err, admin.ErrProposalAlreadyExists) {
		t.Fatalf("err = %v, want ProposalAlreadyExists", err)
	}
	if p := alpha.Proposal("c1"); p.ProposalType != models.ProposalUpdateApplicationMetadata {
		t.Fatalf("outstanding proposal = %s", p.ProposalType)
	}
}

func TestConcurrentProposalsOneWins(t *testing.T) {
	c := admintest.NewCluster(t, "alpha", "beta")
	establish(t, c, "c1")
	alpha := c.Nodes["alpha"]

	const n = 8
	payloads := make([]*proto.CircuitManagementPayload, n)
	for i := range payloads {
		payloads[i] = alpha.Payload(t, &proto.CircuitUpdateApplicationMetadataRequest{
			CircuitId:           "c1",
			ApplicationMetadata: []byte(fmt.Sprintf("meta-%d", i)),
		})
	}
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok, lost int
	)
	for _, p := range payloads {
		wg.Add(1)
		go func(p *proto.CircuitManagementPayload) {
			defer wg.Done()
			_, err := alpha.SM.Submit(context.Background(), p)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, admin.ErrProposalAlreadyExists):
				lost++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(p)
	}
	wg.Wait()
	if ok != 1 || lost != n-1 {
		t.Fatalf("accepted %d, refused %d", ok, lost)
	}
}

func TestProposalsFromTwoRequestersConflict(t *testing.T) {
	ctx := context.Background()
	c := admintest.NewCluster(t, "alpha", "beta")
	establish(t, c, "c1")

	if _, err := c.Nodes["alpha"].Submit(t, &proto.CircuitUpdateApplicationMetadataRequest{CircuitId: "c1", ApplicationMetadata: []byte("a")}); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Nodes["beta"].Submit(t, &proto.CircuitUpdateApplicationMetadataRequest{CircuitId: "c1", ApplicationMetadata: []byte("b")}); err != nil {
		t.Fatal(err)
	}
	c.Net.DeliverAll(ctx)

	// each node keeps its own proposal and refuses the other
	if got := c.Nodes["alpha"].Proposal("c1"); got == nil || string(got.CircuitProposal.ApplicationMetadata) != "a" {
		t.Fatalf("alpha proposal = %+v", got)
	}
	if got := c.Nodes["beta"].Proposal("c1"); got == nil || string(got.CircuitProposal.ApplicationMetadata) != "b" {
		t.Fatalf("beta proposal = %+v", got)
	}
}

func TestVoteOutcomeIndependentOfDeliveryOrder(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		t.Run(fmt.Sprintf("seed-%d", seed), func(t *testing.T) {
			ctx := context.Background()
			c := admintest.NewCluster(t, "a", "b", "c", "d")
			if _, err := c.Nodes["a"].Submit(t, &proto.CircuitCreateRequest{Circuit: proto.CircuitToProto(admintest.TwoPartyCircuit("c1", "a", "b", "c", "d"))}); err != nil {
				t.Fatal(err)
			}
			c.Net.DeliverAll(ctx)
			for _, id := range []string{"b", "c", "d"} {
				if _, err := c.Nodes[id].Vote(t, "c1", models.VoteAccept); err != nil {
					t.Fatalf("vote by %s: %v", id, err)
				}
			}
			c.Net.Duplicate()
			c.Net.Shuffle(rand.New(rand.NewSource(seed)))
			c.Net.DeliverAll(ctx)

			want := proto.CircuitHash(c.Nodes["a"].Circuit("c1"))
			for _, id := range c.IDs() {
				got := c.Nodes[id].Circuit("c1")
				if got == nil {
					t.Fatalf("%s did not commit", id)
				}
				if proto.CircuitHash(got) != want {
					t.Fatalf("%s committed a different circuit", id)
				}
				if n := c.Nodes[id].Events.Count(admin.EventProposalAccepted); n != 1 {
					t.Fatalf("%s accepted %d times", id, n)
				}
			}
		})
	}
}

func TestEarlyVoteIsBuffered(t *testing.T) {
	ctx := context.Background()
	c := admintest.NewCluster(t, "a", "b", "c")
	a, b, cc := c.Nodes["a"], c.Nodes["b"], c.Nodes["c"]

	// c misses the proposal announcement
	c.Net.Drop = func(from, to string) bool { return from == "a" && to == "c" }
	create := a.Payload(t, &proto.CircuitCreateRequest{Circuit: proto.CircuitToProto(admintest.TwoPartyCircuit("c1", "a", "b", "c"))})
	if _, err := a.SM.Submit(ctx, create); err != nil {
		t.Fatal(err)
	}
	c.Net.DeliverAll(ctx)
	c.Net.Drop = nil

	if _, err := b.Vote(t, "c1", models.VoteAccept); err != nil {
		t.Fatal(err)
	}
	c.Net.DeliverAll(ctx)
	if cc.SM.PendingVotes("c1") != 1 {
		t.Fatalf("c buffered %d votes, want 1", cc.SM.PendingVotes("c1"))
	}

	p := a.Proposal("c1")
	err := cc.SM.HandleProposedCircuit(ctx, "a", &proto.ProposedCircuit{
		CircuitProposal: proto.ProposalToProto(p),
		ExpectedHash:    p.CircuitHash,
		CircuitPayload:  create,
	})
	if err != nil {
		t.Fatalf("late proposal: %v", err)
	}
	if cc.SM.PendingVotes("c1") != 0 {
		t.Fatal("buffered vote not replayed")
	}
	stored := cc.Proposal("c1")
	if stored == nil || stored.LatestVotes()["b"] != models.VoteAccept {
		t.Fatalf("replayed vote missing: %+v", stored)
	}

	if _, err := cc.Vote(t, "c1", models.VoteAccept); err != nil {
		t.Fatal(err)
	}
	c.Net.DeliverAll(ctx)
	for _, id := range c.IDs() {
		if c.Nodes[id].Circuit("c1") == nil {
			t.Fatalf("%s did not commit", id)
		}
	}
}

func TestDuplicateProposalIsNoop(t *testing.T) {
	ctx := context.Background()
	c := admintest.NewCluster(t, "a", "b")
	create := c.Nodes["a"].Payload(t, &proto.CircuitCreateRequest{Circuit: proto.CircuitToProto(admintest.TwoPartyCircuit("c1", "a", "b"))})
	if _, err := c.Nodes["a"].SM.Submit(ctx, create); err != nil {
		t.Fatal(err)
	}
	c.Net.DeliverAll(ctx)
	p := c.Nodes["a"].Proposal("c1")
	msg := &proto.ProposedCircuit{CircuitProposal: proto.ProposalToProto(p), ExpectedHash: p.CircuitHash, CircuitPayload: create}
	if err := c.Nodes["b"].SM.HandleProposedCircuit(ctx, "a", msg); err != nil {
		t.Fatalf("redelivery: %v", err)
	}
	if n := c.Nodes["b"].Events.Count(admin.EventProposalSubmitted); n != 1 {
		t.Fatalf("submitted events = %d, want 1", n)
	}
}

func TestTamperedProposalRefused(t *testing.T) {
	ctx := context.Background()
	c := admintest.NewCluster(t, "a", "b", "c")
	establish(t, c, "c1")

	meta := c.Nodes["a"].Payload(t, &proto.CircuitUpdateApplicationMetadataRequest{CircuitId: "c1", ApplicationMetadata: []byte("x")})
	current := c.Nodes["a"].Circuit("c1")
	forged := current.Clone()
	forged.Members = forged.Members[:2]
	forged.Roster = forged.Roster[:2]
	p := &models.CircuitProposal{
		ProposalType:    models.ProposalUpdateApplicationMetadata,
		CircuitID:       "c1",
		CircuitHash:     proto.CircuitHash(forged),
		CircuitProposal: *forged,
		Requester:       c.Nodes["a"].Signer.PublicKey(),
		RequesterNodeID: "a",
	}
	err := c.Nodes["b"].SM.HandleProposedCircuit(ctx, "a", &proto.ProposedCircuit{CircuitProposal: proto.ProposalToProto(p), ExpectedHash: p.CircuitHash, CircuitPayload: meta})
	if !errors.Is(err, admin.ErrHashMismatch) {
		t.Fatalf("err = %v, want HashMismatch", err)
	}
	if c.Nodes["b"].Proposal("c1") != nil {
		t.Fatal("forged proposal stored")
	}
}

func TestVoteChecks(t *testing.T) {
	c := admintest.NewCluster(t, "a", "b", "c")
	if _, err := c.Nodes["a"].Submit(t, &proto.CircuitCreateRequest{Circuit: proto.CircuitToProto(admintest.TwoPartyCircuit("c1", "a", "b"))}); err != nil {
		t.Fatal(err)
	}
	c.Net.DeliverAll(context.Background())

	_, err := c.Nodes["b"].Submit(t, &proto.CircuitProposalVote{CircuitId: "c1", CircuitHash: "deadbeef", Vote: proto.Vote_ACCEPT})
	if !errors.Is(err, admin.ErrHashMismatch) {
		t.Fatalf("wrong hash: err = %v", err)
	}
	if len(c.Nodes["b"].Proposal("c1").Votes) != 0 {
		t.Fatal("vote with wrong hash recorded")
	}

	_, err = c.Nodes["a"].Vote(t, "c1", models.VoteAccept)
	if !errors.Is(err, admin.ErrUnauthorizedRequester) {
		t.Fatalf("requester vote: err = %v", err)
	}

	_, err = c.Nodes["b"].Submit(t, &proto.CircuitProposalVote{CircuitId: "other", CircuitHash: "x", Vote: proto.Vote_ACCEPT})
	if !errors.Is(err, admin.ErrUnknownCircuit) {
		t.Fatalf("unknown circuit: err = %v", err)
	}
}

func TestVoteOnResolvedProposal(t *testing.T) {
	c := admintest.NewCluster(t, "a", "b")
	establish(t, c, "c1")
	_, err := c.Nodes["b"].Submit(t, &proto.CircuitProposalVote{CircuitId: "c1", CircuitHash: "x", Vote: proto.Vote_ACCEPT})
	if !errors.Is(err, admin.ErrUnknownProposal) {
		t.Fatalf("err = %v, want UnknownProposal", err)
	}
}

func TestCreateExistingCircuit(t *testing.T) {
	c := admintest.NewCluster(t, "a", "b")
	establish(t, c, "c1")
	_, err := c.Nodes["a"].Submit(t, &proto.CircuitCreateRequest{Circuit: proto.CircuitToProto(admintest.TwoPartyCircuit("c1", "a", "b"))})
	if !errors.Is(err, admin.ErrCircuitExists) {
		t.Fatalf("err = %v, want CircuitExists", err)
	}
}

func TestCreateInvalidCircuit(t *testing.T) {
	c := admintest.NewCluster(t, "a", "b")
	circuit := admintest.TwoPartyCircuit("c1", "a", "b")
	circuit.Roster[0].AllowedNodes = []string{"zed"}
	_, err := c.Nodes["a"].Submit(t, &proto.CircuitCreateRequest{Circuit: proto.CircuitToProto(circuit)})
	if !errors.Is(err, admin.ErrInvalidCircuit) {
		t.Fatalf("err = %v, want InvalidCircuit", err)
	}
	if !errors.Is(err, models.ErrUnknownAllowed) {
		t.Fatalf("cause not kept: %v", err)
	}
}

func TestSingleMemberCircuitCommitsImmediately(t *testing.T) {
	c := admintest.NewCluster(t, "solo")
	res, err := c.Nodes["solo"].Submit(t, &proto.CircuitCreateRequest{Circuit: proto.CircuitToProto(admintest.TwoPartyCircuit("c1", "solo"))})
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != admin.StatusAccepted {
		t.Fatalf("status = %s, want accepted", res.Status)
	}
	if c.Nodes["solo"].Circuit("c1") == nil {
		t.Fatal("circuit not committed")
	}
}

func TestJoinCircuitRatifiedLikeCreate(t *testing.T) {
	ctx := context.Background()
	c := admintest.NewCluster(t, "a", "b")
	if _, err := c.Nodes["b"].Submit(t, &proto.CircuitJoinRequest{Circuit: proto.CircuitToProto(admintest.TwoPartyCircuit("j1", "a", "b"))}); err != nil {
		t.Fatal(err)
	}
	c.Net.DeliverAll(ctx)
	if p := c.Nodes["a"].Proposal("j1"); p == nil || p.ProposalType != models.ProposalCreate {
		t.Fatalf("join proposal = %+v", p)
	}
	if _, err := c.Nodes["a"].Vote(t, "j1", models.VoteAccept); err != nil {
		t.Fatal(err)
	}
	c.Net.DeliverAll(ctx)
	if c.Nodes["b"].Circuit("j1") == nil {
		t.Fatal("join not committed")
	}
}

func TestUpdateRosterAndMetadata(t *testing.T) {
	ctx := context.Background()
	c := admintest.NewCluster(t, "a", "b")
	establish(t, c, "c1")

	extra := proto.ServiceToProto(&models.Service{ServiceID: "svc-shared", ServiceType: "scabbard", AllowedNodes: []string{"a", "b"}})
	remove := &proto.Service{ServiceId: "svc-a"}
	if _, err := c.Nodes["a"].Submit(t, &proto.CircuitUpdateRosterRequest{
		CircuitId:      "c1",
		AddServices:    []*proto.Service{extra},
		RemoveServices: []*proto.Service{remove},
	}); err != nil {
		t.Fatal(err)
	}
	c.Net.DeliverAll(ctx)
	if _, err := c.Nodes["b"].Vote(t, "c1", models.VoteAccept); err != nil {
		t.Fatal(err)
	}
	c.Net.DeliverAll(ctx)
	for _, id := range c.IDs() {
		got := c.Nodes[id].Circuit("c1")
		var ids []string
		for _, s := range got.Roster {
			ids = append(ids, s.ServiceID)
		}
		if want := []string{"svc-b", "svc-shared"}; !reflect.DeepEqual(ids, want) {
			t.Fatalf("%s roster = %v, want %v", id, ids, want)
		}
	}

	if _, err := c.Nodes["b"].Submit(t, &proto.CircuitUpdateApplicationMetadataRequest{CircuitId: "c1", ApplicationMetadata: []byte(`{"v":2}`)}); err != nil {
		t.Fatal(err)
	}
	c.Net.DeliverAll(ctx)
	if _, err := c.Nodes["a"].Vote(t, "c1", models.VoteAccept); err != nil {
		t.Fatal(err)
	}
	c.Net.DeliverAll(ctx)
	for _, id := range c.IDs() {
		if got := string(c.Nodes[id].Circuit("c1").ApplicationMetadata); got != `{"v":2}` {
			t.Fatalf("%s metadata = %q", id, got)
		}
	}
}

func TestAddNode(t *testing.T) {
	ctx := context.Background()
	c := admintest.NewCluster(t, "a", "b")
	establish(t, c, "c1")
	newcomer := c.AddNode(t, "n")

	if _, err := c.Nodes["a"].Submit(t, &proto.CircuitUpdateAddNodeRequest{
		CircuitId: "c1",
		Node:      &proto.Node{NodeId: "n", Endpoint: "tcp://n:8044"},
	}); err != nil {
		t.Fatalf("propose add: %v", err)
	}
	c.Net.DeliverAll(ctx)
	if newcomer.Proposal("c1") == nil {
		t.Fatal("new node did not receive the proposal")
	}
	if _, err := c.Nodes["b"].Vote(t, "c1", models.VoteAccept); err != nil {
		t.Fatal(err)
	}
	c.Net.DeliverAll(ctx)

	want := c.Nodes["a"].Circuit("c1")
	if !want.HasMember("n") {
		t.Fatal("requester did not add the node")
	}
	for _, id := range []string{"a", "b", "n"} {
		got := c.Nodes[id].Circuit("c1")
		if got == nil || proto.CircuitHash(got) != proto.CircuitHash(want) {
			t.Fatalf("%s circuit = %+v", id, got)
		}
	}
	if newcomer.Events.Count(admin.EventCircuitReady) != 1 {
		t.Fatalf("new node ready events = %d", newcomer.Events.Count(admin.EventCircuitReady))
	}
}

func TestRemoveNodeAfterRosterUpdate(t *testing.T) {
	ctx := context.Background()
	c := admintest.NewCluster(t, "a", "b", "c")
	establish(t, c, "c1")

	vote := func(circuitID string, voters ...string) {
		t.Helper()
		c.Net.DeliverAll(ctx)
		for _, id := range voters {
			if _, err := c.Nodes[id].Vote(t, circuitID, models.VoteAccept); err != nil {
				t.Fatalf("vote by %s: %v", id, err)
			}
		}
		c.Net.DeliverAll(ctx)
	}

	if _, err := c.Nodes["a"].Submit(t, &proto.CircuitUpdateRosterRequest{CircuitId: "c1", RemoveServices: []*proto.Service{{ServiceId: "svc-c"}}}); err != nil {
		t.Fatal(err)
	}
	vote("c1", "b", "c")
	if _, err := c.Nodes["a"].Submit(t, &proto.CircuitUpdateRemoveNodeRequest{CircuitId: "c1", NodeId: "c"}); err != nil {
		t.Fatal(err)
	}
	vote("c1", "b", "c")

	for _, id := range []string{"a", "b"} {
		got := c.Nodes[id].Circuit("c1")
		if got == nil || got.HasMember("c") {
			t.Fatalf("%s circuit = %+v", id, got)
		}
	}
	if c.Nodes["c"].Circuit("c1") != nil {
		t.Fatal("removed node kept the circuit")
	}
}

func TestDestroyCircuit(t *testing.T) {
	ctx := context.Background()
	c := admintest.NewCluster(t, "a", "b")
	establish(t, c, "c1")
	if _, err := c.Nodes["b"].Submit(t, &proto.CircuitDestroyRequest{CircuitId: "c1"}); err != nil {
		t.Fatal(err)
	}
	c.Net.DeliverAll(ctx)
	if _, err := c.Nodes["a"].Vote(t, "c1", models.VoteAccept); err != nil {
		t.Fatal(err)
	}
	c.Net.DeliverAll(ctx)
	for _, id := range c.IDs() {
		if c.Nodes[id].Circuit("c1") != nil {
			t.Fatalf("%s still has the destroyed circuit", id)
		}
	}
}

func TestAbandonCircuit(t *testing.T) {
	ctx := context.Background()
	c := admintest.NewCluster(t, "a", "b")
	establish(t, c, "c1")

	res, err := c.Nodes["a"].Submit(t, &proto.CircuitAbandon{CircuitId: "c1"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != admin.StatusAbandoned {
		t.Fatalf("status = %s", res.Status)
	}
	c.Net.DeliverAll(ctx)

	if got := c.Nodes["a"].Circuit("c1"); got.Status != models.CircuitAbandoned {
		t.Fatalf("status = %s, want abandoned", got.Status)
	}
	if got := c.Nodes["b"].Circuit("c1"); got.Status != models.CircuitActive {
		t.Fatalf("peer status = %s, want active", got.Status)
	}
	if c.Nodes["b"].Events.Count(admin.EventCircuitMemberAbandons) != 1 {
		t.Fatal("peer did not observe the abandon")
	}
	if proto.CircuitHash(c.Nodes["a"].Circuit("c1")) != proto.CircuitHash(c.Nodes["b"].Circuit("c1")) {
		t.Fatal("status leaked into the circuit hash")
	}

	_, err = c.Nodes["a"].Submit(t, &proto.CircuitDestroyRequest{CircuitId: "c1"})
	if !errors.Is(err, admin.ErrCircuitInactive) {
		t.Fatalf("err = %v, want CircuitInactive", err)
	}
	if res, err := c.Nodes["a"].Submit(t, &proto.CircuitAbandon{CircuitId: "c1"}); err != nil || res.Status != admin.StatusAbandoned {
		t.Fatalf("second abandon: %+v, %v", res, err)
	}
}

func TestRecoverResolvesDecidedProposal(t *testing.T) {
	ctx := context.Background()
	c := admintest.NewCluster(t, "a", "b")
	a := c.Nodes["a"]
	circuit := admintest.TwoPartyCircuit("c1", "a", "b")
	p := &models.CircuitProposal{
		ProposalType:    models.ProposalCreate,
		CircuitID:       "c1",
		CircuitHash:     proto.CircuitHash(circuit),
		CircuitProposal: *circuit,
		Requester:       a.Signer.PublicKey(),
		RequesterNodeID: "a",
		Votes:           []models.VoteRecord{{VoterNodeID: "b", Vote: models.VoteAccept, PublicKey: []byte("Ub")}},
	}
	if err := a.Proposals.Put(ctx, p); err != nil {
		t.Fatal(err)
	}
	if err := a.SM.Recover(ctx); err != nil {
		t.Fatalf("Recover: %v", err)
	}
	if a.Circuit("c1") == nil || a.Proposal("c1") != nil {
		t.Fatal("decided proposal not resolved on recovery")
	}
}

func TestMemberChangesVoteToReject(t *testing.T) {
	ctx := context.Background()
	c := admintest.NewCluster(t, "a", "b", "c")
	if _, err := c.Nodes["a"].Submit(t, &proto.CircuitCreateRequest{Circuit: proto.CircuitToProto(admintest.TwoPartyCircuit("c1", "a", "b", "c"))}); err != nil {
		t.Fatal(err)
	}
	c.Net.DeliverAll(ctx)

	b := c.Nodes["b"]
	res, err := b.Vote(t, "c1", models.VoteAccept)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != admin.StatusPending {
		t.Fatalf("accept status = %s, want pending", res.Status)
	}
	res, err = b.Vote(t, "c1", models.VoteReject)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != admin.StatusRejected {
		t.Fatalf("reject status = %s, want rejected", res.Status)
	}
	c.Net.DeliverAll(ctx)
	for _, id := range c.IDs() {
		n := c.Nodes[id]
		if n.Circuit("c1") != nil || n.Proposal("c1") != nil {
			t.Fatalf("%s kept state for the rejected circuit", id)
		}
		if n.Events.Count(admin.EventProposalAccepted) != 0 {
			t.Fatalf("%s accepted the circuit", id)
		}
	}
}

func TestCommitTwiceLeavesDirectoryUnchanged(t *testing.T) {
	ctx := context.Background()
	c := admintest.NewCluster(t, "a", "b")
	establish(t, c, "c1")
	a := c.Nodes["a"]

	extra := proto.ServiceToProto(&models.Service{ServiceID: "svc-extra", ServiceType: "scabbard", AllowedNodes: []string{"b"}})
	if _, err := a.Submit(t, &proto.CircuitUpdateRosterRequest{CircuitId: "c1", AddServices: []*proto.Service{extra}}); err != nil {
		t.Fatal(err)
	}
	committed := a.Proposal("c1")
	if committed == nil {
		t.Fatal("roster update not proposed")
	}
	c.Net.DeliverAll(ctx)
	if _, err := c.Nodes["b"].Vote(t, "c1", models.VoteAccept); err != nil {
		t.Fatal(err)
	}
	c.Net.DeliverAll(ctx)
	before := a.Circuit("c1")
	if before == nil || len(before.Roster) != 3 {
		t.Fatalf("roster update not committed: %+v", before)
	}
	listed, err := a.Circuits.List(ctx)
	if err != nil {
		t.Fatal(err)
	}

	committed.UpsertVote(models.VoteRecord{VoterNodeID: "b", Vote: models.VoteAccept, PublicKey: c.Nodes["b"].Signer.PublicKey()})
	if err := a.Proposals.Put(ctx, committed); err != nil {
		t.Fatal(err)
	}
	if err := a.SM.Recover(ctx); err != nil {
		t.Fatalf("Recover: %v", err)
	}

	if got := a.Circuit("c1"); !reflect.DeepEqual(got, before) {
		t.Fatalf("directory changed on second commit:\n got %+v\nwant %+v", got, before)
	}
	after, err := a.Circuits.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(after) != len(listed) {
		t.Fatalf("circuits = %d, want %d", len(after), len(listed))
	}
	if a.Proposal("c1") != nil {
		t.Fatal("proposal left after recovery")
	}
}

func TestEarlyVoteRacingProposalIsApplied(t *testing.T) {
	ctx := context.Background()
	c := admintest.NewCluster(t, "a", "b", "c")
	a, b, late := c.Nodes["a"], c.Nodes["b"], c.Nodes["c"]
	c.Net.Drop = func(from, to string) bool { return to == "c" }

	for i := 0; i < 50; i++ {
		id := fmt.Sprintf("race-%d", i)
		create := a.Payload(t, &proto.CircuitCreateRequest{Circuit: proto.CircuitToProto(admintest.TwoPartyCircuit(id, "a", "b", "c"))})
		if _, err := a.SM.Submit(ctx, create); err != nil {
			t.Fatal(err)
		}
		c.Net.Clear()
		p := a.Proposal(id)
		msg := &proto.ProposedCircuit{CircuitProposal: proto.ProposalToProto(p), ExpectedHash: p.CircuitHash, CircuitPayload: create}
		ballot := b.Payload(t, &proto.CircuitProposalVote{CircuitId: id, CircuitHash: p.CircuitHash, Vote: proto.Vote_ACCEPT})

		var wg sync.WaitGroup
		errs := make([]error, 2)
		wg.Add(2)
		go func() {
			defer wg.Done()
			errs[0] = late.SM.HandleConsensus(ctx, "b", ballot)
		}()
		go func() {
			defer wg.Done()
			errs[1] = late.SM.HandleProposedCircuit(ctx, "a", msg)
		}()
		wg.Wait()
		for _, err := range errs {
			if err != nil {
				t.Fatalf("%s: %v", id, err)
			}
		}

		if n := late.SM.PendingVotes(id); n != 0 {
			t.Fatalf("%s: %d votes stranded in the buffer", id, n)
		}
		stored := late.Proposal(id)
		if stored == nil || stored.LatestVotes()["b"] != models.VoteAccept {
			t.Fatalf("%s: vote from b not applied: %+v", id, stored)
		}
	}
}

func TestMemberReadyChecksSender(t *testing.T) {
	ctx := context.Background()
	c := admintest.NewCluster(t, "a", "b")
	establish(t, c, "c1")
	a := c.Nodes["a"]
	before := a.Events.Count(admin.EventCircuitReady)

	cases := []struct {
		name    string
		from    string
		msg     *proto.MemberReady
		wantErr error
	}{
		{"spoofed member", "b", &proto.MemberReady{CircuitId: "c1", MemberNodeId: "z"}, admin.ErrUnauthorizedRequester},
		{"outsider", "z", &proto.MemberReady{CircuitId: "c1", MemberNodeId: "z"}, admin.ErrUnauthorizedRequester},
		{"unknown circuit", "b", &proto.MemberReady{CircuitId: "nope", MemberNodeId: "b"}, admin.ErrUnknownCircuit},
		{"empty", "b", &proto.MemberReady{}, admin.ErrMalformedPayload},
		{"member", "b", &proto.MemberReady{CircuitId: "c1", MemberNodeId: "b"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := a.SM.HandleMemberReady(ctx, tc.from, tc.msg)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("err = %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
	if got := a.SM.Readiness().ReadyMembers("c1"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("ready members = %v", got)
	}
	if got := a.SM.Readiness().ReadyMembers("nope"); len(got) != 0 {
		t.Fatalf("readiness recorded for unknown circuit: %v", got)
	}
	if a.Events.Count(admin.EventCircuitReady) != before {
		t.Fatal("circuit announced ready twice")
	}
}

// failingKV fails every write once armed.
type failingKV struct {
	storage.KV
	mu    sync.Mutex
	armed bool
}

var errDiskGone = errors.New("disk gone")

func (f *failingKV) arm() { f.mu.Lock(); f.armed = true; f.mu.Unlock() }

func (f *failingKV) fail() bool { f.mu.Lock(); defer f.mu.Unlock(); return f.armed }

func (f *failingKV) Put(ctx context.Context, k, v []byte) error {
	if f.fail() {
		return errDiskGone
	}
	return f.KV.Put(ctx, k, v)
}

func (f *failingKV) Update(ctx context.Context, k []byte, fn func([]byte) ([]byte, error)) error {
	if f.fail() {
		return errDiskGone
	}
	return f.KV.Update(ctx, k, fn)
}

func TestStorageFailureHaltsCircuit(t *testing.T) {
	inner, err := storage.NewInMemoryBadgerKV()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = inner.Close() })
	kv := &failingKV{KV: inner}

	var fatal []string
	net := admintest.NewNetwork()
	n := admintest.NewNode(t, net, "a", kv, admin.WithFatalHandler(func(id string, err error) {
		fatal = append(fatal, id)
	}))
	kv.arm()

	_, err = n.Submit(t, &proto.CircuitCreateRequest{Circuit: proto.CircuitToProto(admintest.TwoPartyCircuit("c1", "a", "b"))})
	if !errors.Is(err, admin.ErrStorageFailure) || !errors.Is(err, errDiskGone) {
		t.Fatalf("err = %v, want StorageFailure wrapping the cause", err)
	}
	if !n.SM.Halted("c1") {
		t.Fatal("circuit not halted")
	}
	if !reflect.DeepEqual(fatal, []string{"c1"}) {
		t.Fatalf("fatal hook calls = %v", fatal)
	}
	_, err = n.Submit(t, &proto.CircuitCreateRequest{Circuit: proto.CircuitToProto(admintest.TwoPartyCircuit("c1", "a", "b"))})
	if !errors.Is(err, admin.ErrStorageFailure) || errors.Is(err, errDiskGone) {
		t.Fatalf("halted circuit: err = %v", err)
	}
	if len(fatal) != 1 {
		t.Fatalf("fatal hook fired %d times", len(fatal))
	}
	if n.SM.Halted("c2") {
		t.Fatal("unrelated circuit halted")
	}
}
