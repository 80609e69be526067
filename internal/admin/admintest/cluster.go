package admintest

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/devghori1264/aerophoenix/circuitd/internal/admin"
	"github.com/devghori1264/aerophoenix/circuitd/internal/models"
	"github.com/devghori1264/aerophoenix/circuitd/internal/proto"
	"github.com/devghori1264/aerophoenix/circuitd/internal/signing"
	"github.com/devghori1264/aerophoenix/circuitd/internal/storage"
)

// Recorder is an EventSink that keeps every event.
type Recorder struct {
	mu     sync.Mutex
	events []admin.Event
}

func (r *Recorder) Publish(_ context.Context, ev admin.Event) error {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
	return nil
}

func (r *Recorder) Count(typ string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, ev := range r.events {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

func (r *Recorder) Events() []admin.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]admin.Event(nil), r.events...)
}

// Node is one member of a test cluster.
type Node struct {
	ID        string
	Signer    *signing.KeySigner
	KV        storage.KV
	Proposals *storage.ProposalStore
	Circuits  *storage.CircuitDirectory
	SM        *admin.StateMachine
	Events    *Recorder
}

type Cluster struct {
	Net   *Network
	Nodes map[string]*Node
}

// NewCluster starts one state machine per id, each on in-memory Badger,
// all attached to one Network.
func NewCluster(t testing.TB, ids ...string) *Cluster {
	t.Helper()
	c := &Cluster{Net: NewNetwork(), Nodes: make(map[string]*Node)}
	for _, id := range ids {
		kv, err := storage.NewInMemoryBadgerKV()
		if err != nil {
			t.Fatalf("open kv for %s: %v", id, err)
		}
		t.Cleanup(func() { _ = kv.Close() })
		c.add(t, id, kv)
	}
	return c
}

// NewNode builds a node over kv on the given network without attaching
// it to a cluster.
func NewNode(t testing.TB, net *Network, id string, kv storage.KV, opts ...admin.Option) *Node {
	t.Helper()
	signer, err := signing.NewKeySigner()
	if err != nil {
		t.Fatalf("keygen for %s: %v", id, err)
	}
	n := &Node{
		ID:        id,
		Signer:    signer,
		KV:        kv,
		Proposals: storage.NewProposalStore(kv),
		Circuits:  storage.NewCircuitDirectory(kv),
		Events:    &Recorder{},
	}
	opts = append([]admin.Option{admin.WithEvents(n.Events)}, opts...)
	sm, err := admin.New(admin.Config{
		NodeID:         id,
		StorageRetries: 2,
		RetryInterval:  time.Millisecond,
	}, n.Proposals, n.Circuits, signing.NKeyVerifier{}, net.Transport(id), opts...)
	if err != nil {
		t.Fatalf("state machine for %s: %v", id, err)
	}
	n.SM = sm
	net.Attach(id, sm.Router())
	return n
}

func (c *Cluster) add(t testing.TB, id string, kv storage.KV) *Node {
	n := NewNode(t, c.Net, id, kv)
	c.Nodes[id] = n
	return n
}

// AddNode joins a fresh node to the network.
func (c *Cluster) AddNode(t testing.TB, id string) *Node {
	t.Helper()
	kv, err := storage.NewInMemoryBadgerKV()
	if err != nil {
		t.Fatalf("open kv for %s: %v", id, err)
	}
	t.Cleanup(func() { _ = kv.Close() })
	return c.add(t, id, kv)
}

func (c *Cluster) IDs() []string {
	out := make([]string, 0, len(c.Nodes))
	for id := range c.Nodes {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Payload signs body as node n.
func (n *Node) Payload(t testing.TB, body proto.Body) *proto.CircuitManagementPayload {
	t.Helper()
	p, err := proto.NewPayload(body, n.ID, n.Signer)
	if err != nil {
		t.Fatalf("sign payload: %v", err)
	}
	return p
}

// Submit signs body as n and submits it to n's own state machine.
func (n *Node) Submit(t testing.TB, body proto.Body) (admin.Result, error) {
	t.Helper()
	return n.SM.Submit(context.Background(), n.Payload(t, body))
}

// Vote casts n's vote on the proposal outstanding for circuitID.
func (n *Node) Vote(t testing.TB, circuitID string, vote models.Vote) (admin.Result, error) {
	t.Helper()
	p, err := n.Proposals.Get(context.Background(), circuitID)
	if err != nil {
		t.Fatalf("%s has no proposal for %s: %v", n.ID, circuitID, err)
	}
	return n.Submit(t, &proto.CircuitProposalVote{CircuitId: circuitID, CircuitHash: p.CircuitHash, Vote: proto.Vote(vote)})
}

// Circuit returns n's committed copy of circuitID, or nil.
func (n *Node) Circuit(circuitID string) *models.Circuit {
	c, err := n.Circuits.Get(context.Background(), circuitID)
	if err != nil {
		return nil
	}
	return c
}

// Proposal returns n's outstanding proposal for circuitID, or nil.
func (n *Node) Proposal(circuitID string) *models.CircuitProposal {
	p, err := n.Proposals.Get(context.Background(), circuitID)
	if err != nil {
		return nil
	}
	return p
}

// TwoPartyCircuit builds a circuit with one service hosted by each member.
func TwoPartyCircuit(id string, members ...string) *models.Circuit {
	c := &models.Circuit{
		CircuitID:             id,
		AuthorizationType:     models.AuthorizationTrust,
		Persistence:           models.PersistenceAny,
		Durability:            models.DurabilityNone,
		Routes:                models.RouteAny,
		CircuitManagementType: "test_app",
	}
	for _, m := range members {
		c.Members = append(c.Members, models.Node{NodeID: m, Endpoint: "tcp://" + m + ":8044"})
		c.Roster = append(c.Roster, models.Service{
			ServiceID:    "svc-" + m,
			ServiceType:  "scabbard",
			AllowedNodes: []string{m},
			Arguments:    map[string]string{"admin_keys": m},
		})
	}
	return c
}
