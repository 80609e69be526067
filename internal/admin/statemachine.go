// Package admin implements the circuit admin consensus core: it validates
// signed circuit management payloads, opens proposals, tallies votes from
// circuit members and commits accepted proposals to the circuit directory.
package admin

import (
	"context"
	"errors"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/devghori1264/aerophoenix/circuitd/internal/metrics"
	"github.com/devghori1264/aerophoenix/circuitd/internal/proto"
	"github.com/devghori1264/aerophoenix/circuitd/internal/signing"
	"github.com/devghori1264/aerophoenix/circuitd/internal/storage"
)

const (
	defaultStorageRetries   = 5
	defaultRetryInterval    = 50 * time.Millisecond
	defaultPendingVoteLimit = 64
	resolvedProposals       = 1024

	tracerName = "github.com/devghori1264/aerophoenix/circuitd/internal/admin"
)

type Config struct {
	NodeID string
	// StorageRetries bounds how often a failed storage operation is retried
	// before the circuit is halted.
	StorageRetries   uint64
	RetryInterval    time.Duration
	PendingVoteLimit int
}

// Status reports what a request did.
type Status string

const (
	StatusProposed  Status = "proposed"
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusAbandoned Status = "abandoned"
	StatusDuplicate Status = "duplicate"
)

type Result struct {
	CircuitID string `json:"circuit_id"`
	Status    Status `json:"status"`
}

type Option func(*StateMachine)

func WithLogger(l *zap.Logger) Option { return func(sm *StateMachine) { sm.log = l } }

func WithEvents(s EventSink) Option { return func(sm *StateMachine) { sm.events = s } }

func WithMetrics(m *metrics.Metrics) Option { return func(sm *StateMachine) { sm.metrics = m } }

func WithTracer(t trace.Tracer) Option { return func(sm *StateMachine) { sm.tracer = t } }

// WithFatalHandler sets the hook called when a circuit is halted after its
// storage retries are exhausted.
func WithFatalHandler(fn func(circuitID string, err error)) Option {
	return func(sm *StateMachine) { sm.onFatal = fn }
}

// StateMachine serializes all work on one circuit behind a per-circuit lock.
// Different circuits proceed in parallel. Messages produced while the lock
// is held are sent after it is released.
type StateMachine struct {
	cfg       Config
	nodeID    string
	proposals *storage.ProposalStore
	circuits  *storage.CircuitDirectory
	validator *Validator
	tally     *Tally
	router    *Router
	readiness *Readiness

	events  EventSink
	metrics *metrics.Metrics
	tracer  trace.Tracer
	log     *zap.Logger
	onFatal func(circuitID string, err error)

	opMu   sync.Map // circuit id -> *sync.Mutex
	halted sync.Map // circuit id -> error

	pendingMu sync.Mutex
	pending   map[string][]*CastVote
	resolved  *lru.Cache[string, struct{}]
}

func New(cfg Config, proposals *storage.ProposalStore, circuits *storage.CircuitDirectory, verifier signing.Verifier, transport Transport, opts ...Option) (*StateMachine, error) {
	if cfg.NodeID == "" {
		return nil, errors.New("admin: node id required")
	}
	if cfg.StorageRetries == 0 {
		cfg.StorageRetries = defaultStorageRetries
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = defaultRetryInterval
	}
	if cfg.PendingVoteLimit <= 0 {
		cfg.PendingVoteLimit = defaultPendingVoteLimit
	}
	resolved, err := lru.New[string, struct{}](resolvedProposals)
	if err != nil {
		return nil, err
	}
	sm := &StateMachine{
		cfg:       cfg,
		nodeID:    cfg.NodeID,
		proposals: proposals,
		circuits:  circuits,
		validator: NewValidator(verifier, circuits, proposals),
		tally:     NewTally(cfg.NodeID, proposals, circuits),
		events:    nopSink{},
		log:       zap.NewNop(),
		tracer:    otel.Tracer(tracerName),
		pending:   make(map[string][]*CastVote),
		resolved:  resolved,
	}
	for _, opt := range opts {
		opt(sm)
	}
	sm.log = sm.log.With(zap.String("node_id", cfg.NodeID))
	sm.router = NewRouter(cfg.NodeID, transport, sm, sm.metrics, sm.log)
	sm.readiness = NewReadiness(circuits, sm.events, sm.log)
	return sm, nil
}

func (sm *StateMachine) NodeID() string { return sm.nodeID }

// Router returns the router inbound transport messages are delivered to.
func (sm *StateMachine) Router() *Router { return sm.router }

func (sm *StateMachine) Readiness() *Readiness { return sm.readiness }

// Halted reports whether storage failures stopped processing for circuitID.
func (sm *StateMachine) Halted(circuitID string) bool {
	_, ok := sm.halted.Load(circuitID)
	return ok
}

// Submit validates a payload signed by a local administrator and applies it.
func (sm *StateMachine) Submit(ctx context.Context, p *proto.CircuitManagementPayload) (Result, error) {
	ctx, span := sm.tracer.Start(ctx, "admin.Submit")
	defer span.End()

	res, err := sm.submit(ctx, p)
	if err != nil {
		sm.refuse(span, err)
		sm.log.Info("request refused", zap.String("circuit_id", res.CircuitID), zap.String("kind", KindName(err)), zap.Error(err))
		return res, err
	}
	if res.Status == StatusProposed {
		sm.replayPending(ctx, res.CircuitID)
	}
	return res, nil
}

func (sm *StateMachine) submit(ctx context.Context, p *proto.CircuitManagementPayload) (Result, error) {
	a, err := sm.validator.Validate(ctx, p)
	if err != nil {
		return Result{}, err
	}
	id := a.CircuitID()
	if node := a.Requester().NodeID; node != sm.nodeID {
		return Result{CircuitID: id}, errorf(ErrUnauthorizedRequester, id, "requester node %s is not the local node", node)
	}

	var fx effects
	res, err := sm.withCircuit(id, func() (Result, error) {
		switch act := a.(type) {
		case *CastVote:
			return sm.castVote(ctx, act, true, &fx)
		case *AbandonCircuit:
			return sm.abandon(ctx, act, &fx)
		}
		prop, err := sm.buildProposal(ctx, a)
		if err != nil {
			return Result{CircuitID: id}, err
		}
		return sm.openProposal(ctx, prop, a.Payload(), &fx)
	})
	sm.flush(ctx, &fx)
	return res, err
}

// withCircuit runs fn holding the circuit's op lock.
func (sm *StateMachine) withCircuit(circuitID string, fn func() (Result, error)) (Result, error) {
	if v, ok := sm.halted.Load(circuitID); ok {
		return Result{CircuitID: circuitID}, errorf(ErrStorageFailure, circuitID, "processing halted: %v", v)
	}
	mtx := sm.acquireOpLock(circuitID)
	defer mtx.Unlock()
	return fn()
}

func (sm *StateMachine) acquireOpLock(circuitID string) *sync.Mutex {
	v, _ := sm.opMu.LoadOrStore(circuitID, &sync.Mutex{})
	mtx := v.(*sync.Mutex)
	mtx.Lock()
	return mtx
}

func (sm *StateMachine) refuse(span trace.Span, err error) {
	sm.metrics.Refused(KindName(err))
	span.RecordError(err)
	span.SetStatus(codes.Error, KindName(err))
}

func (sm *StateMachine) publish(ctx context.Context, ev Event) {
	if err := sm.events.Publish(ctx, ev); err != nil {
		sm.log.Warn("publish event failed", zap.String("type", ev.Type), zap.String("circuit_id", ev.CircuitID), zap.Error(err))
	}
}

type outbound struct {
	msg     *proto.AdminMessage
	targets []string
}

// effects collects messages produced under a circuit lock.
type effects struct {
	out []outbound
}

func (fx *effects) send(msg *proto.AdminMessage, targets []string) {
	fx.out = append(fx.out, outbound{msg: msg, targets: targets})
}

func (sm *StateMachine) flush(ctx context.Context, fx *effects) {
	for _, o := range fx.out {
		if err := sm.router.Broadcast(ctx, o.msg, o.targets); err != nil {
			sm.log.Warn("dissemination incomplete", zap.Stringer("type", o.msg.MessageType), zap.Error(err))
		}
	}
	fx.out = nil
}
