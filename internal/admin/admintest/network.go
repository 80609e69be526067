// Package admintest provides an in-process network and cluster for
// exercising admin state machines without a broker.
package admintest

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/devghori1264/aerophoenix/circuitd/internal/admin"
)

type envelope struct {
	from, to string
	data     []byte
}

// Network queues every message until the test delivers it, so tests
// control ordering, loss and duplication.
type Network struct {
	mu      sync.Mutex
	routers map[string]*admin.Router
	queue   []envelope

	// Drop, when set, discards matching messages at send time.
	Drop func(from, to string) bool
}

func NewNetwork() *Network {
	return &Network{routers: make(map[string]*admin.Router)}
}

// Transport returns the sending side for nodeID.
func (n *Network) Transport(nodeID string) admin.Transport {
	return &endpoint{net: n, nodeID: nodeID}
}

func (n *Network) Attach(nodeID string, r *admin.Router) {
	n.mu.Lock()
	n.routers[nodeID] = r
	n.mu.Unlock()
}

type endpoint struct {
	net    *Network
	nodeID string
}

func (e *endpoint) Send(_ context.Context, recipient string, payload []byte) error {
	n := e.net
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.routers[recipient]; !ok {
		return fmt.Errorf("no route to %s", recipient)
	}
	if n.Drop != nil && n.Drop(e.nodeID, recipient) {
		return nil
	}
	n.queue = append(n.queue, envelope{from: e.nodeID, to: recipient, data: append([]byte(nil), payload...)})
	return nil
}

func (n *Network) Pending() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.queue)
}

// Step delivers the oldest queued message. It reports false on an empty queue.
func (n *Network) Step(ctx context.Context) bool {
	n.mu.Lock()
	if len(n.queue) == 0 {
		n.mu.Unlock()
		return false
	}
	env := n.queue[0]
	n.queue = n.queue[1:]
	r := n.routers[env.to]
	n.mu.Unlock()

	_ = r.Deliver(ctx, env.from, env.data)
	return true
}

// DeliverAll delivers until the network is quiet and returns the number of
// messages delivered.
func (n *Network) DeliverAll(ctx context.Context) int {
	count := 0
	for n.Step(ctx) {
		count++
		if count > 100000 {
			panic("admintest: network did not quiesce")
		}
	}
	return count
}

// Shuffle permutes the queued messages.
func (n *Network) Shuffle(rng *rand.Rand) {
	n.mu.Lock()
	rng.Shuffle(len(n.queue), func(i, j int) { n.queue[i], n.queue[j] = n.queue[j], n.queue[i] })
	n.mu.Unlock()
}

// Duplicate queues a second copy of every queued message.
func (n *Network) Duplicate() {
	n.mu.Lock()
	n.queue = append(n.queue, n.queue...)
	n.mu.Unlock()
}

// Clear discards every queued message.
func (n *Network) Clear() {
	n.mu.Lock()
	n.queue = nil
	n.mu.Unlock()
}
