package admin

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Readiness tracks MEMBER_READY announcements and emits circuit.ready once
// every member of a committed circuit has reported in. A change of the
// member set re-arms the announcement.
type Readiness struct {
	mu        sync.Mutex
	ready     map[string]map[string]struct{}
	announced map[string]string

	circuits CircuitReader
	events   EventSink
	log      *zap.Logger
}

func NewReadiness(circuits CircuitReader, events EventSink, log *zap.Logger) *Readiness {
	if events == nil {
		events = nopSink{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Readiness{
		ready:     make(map[string]map[string]struct{}),
		announced: make(map[string]string),
		circuits:  circuits,
		events:    events,
		log:       log,
	}
}

// MemberReady records that nodeID is ready on circuitID.
func (r *Readiness) MemberReady(ctx context.Context, circuitID, nodeID string) {
	r.mu.Lock()
	set, ok := r.ready[circuitID]
	if !ok {
		set = make(map[string]struct{})
		r.ready[circuitID] = set
	}
	set[nodeID] = struct{}{}
	r.mu.Unlock()
	r.Check(ctx, circuitID)
}

// Check emits circuit.ready if every current member is ready and the current
// member set has not been announced yet.
func (r *Readiness) Check(ctx context.Context, circuitID string) {
	c, err := r.circuits.Get(ctx, circuitID)
	if err != nil {
		return
	}
	members := c.MemberIDs()
	sort.Strings(members)
	key := strings.Join(members, ",")

	r.mu.Lock()
	set := r.ready[circuitID]
	for _, id := range members {
		if _, ok := set[id]; !ok {
			r.mu.Unlock()
			return
		}
	}
	if r.announced[circuitID] == key {
		r.mu.Unlock()
		return
	}
	r.announced[circuitID] = key
	r.mu.Unlock()

	r.log.Info("circuit ready", zap.String("circuit_id", circuitID), zap.Strings("members", members))
	ev := newEvent(EventCircuitReady, circuitID)
	ev.Detail = key
	if err := r.events.Publish(ctx, ev); err != nil {
		r.log.Warn("publish event failed", zap.String("type", ev.Type), zap.Error(err))
	}
}

// ReadyMembers lists the nodes that reported ready on circuitID.
func (r *Readiness) ReadyMembers(circuitID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.ready[circuitID]))
	for id := range r.ready[circuitID] {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (r *Readiness) Forget(circuitID string) {
	r.mu.Lock()
	delete(r.ready, circuitID)
	delete(r.announced, circuitID)
	r.mu.Unlock()
}
