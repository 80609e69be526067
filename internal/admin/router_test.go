package admin_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/devghori1264/aerophoenix/circuitd/internal/admin"
	"github.com/devghori1264/aerophoenix/circuitd/internal/proto"
)

type sentMsg struct {
	to   string
	data []byte
}

type recordingTransport struct {
	mu   sync.Mutex
	sent []sentMsg
	down map[string]bool
}

func (rt *recordingTransport) Send(_ context.Context, to string, data []byte) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.down[to] {
		return errors.New("unreachable")
	}
	rt.sent = append(rt.sent, sentMsg{to: to, data: data})
	return nil
}

type countingHandler struct {
	ready int
	err   error
}

func (h *countingHandler) HandleProposedCircuit(context.Context, string, *proto.ProposedCircuit) error {
	return nil
}

func (h *countingHandler) HandleConsensus(context.Context, string, *proto.CircuitManagementPayload) error {
	return nil
}

func (h *countingHandler) HandleMemberReady(context.Context, string, *proto.MemberReady) error {
	h.ready++
	return h.err
}

func readyMsg() *proto.AdminMessage {
	return &proto.AdminMessage{
		MessageType: proto.MessageType_MEMBER_READY,
		MemberReady: &proto.MemberReady{CircuitId: "c1", MemberNodeId: "alpha"},
	}
}

func TestBroadcastSkipsSelfAndJoinsFailures(t *testing.T) {
	rt := &recordingTransport{down: map[string]bool{"gamma": true}}
	r := admin.NewRouter("alpha", rt, &countingHandler{}, nil, nil)

	msg := readyMsg()
	err := r.Broadcast(context.Background(), msg, []string{"alpha", "beta", "beta", "gamma", "delta"})
	if !errors.Is(err, admin.ErrDisseminationFailure) {
		t.Fatalf("err = %v, want DisseminationFailure", err)
	}
	if msg.MessageId == "" {
		t.Fatal("broadcast did not assign a message id")
	}
	if len(rt.sent) != 2 || rt.sent[0].to != "beta" || rt.sent[1].to != "delta" {
		t.Fatalf("sent to %+v", rt.sent)
	}
}

func TestDeliverDropsRedelivery(t *testing.T) {
	rt := &recordingTransport{}
	h := &countingHandler{}
	sender := admin.NewRouter("alpha", rt, &countingHandler{}, nil, nil)
	receiver := admin.NewRouter("beta", &recordingTransport{}, h, nil, nil)

	if err := sender.Broadcast(context.Background(), readyMsg(), []string{"beta"}); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := receiver.Deliver(context.Background(), "alpha", rt.sent[0].data); err != nil {
			t.Fatalf("Deliver: %v", err)
		}
	}
	if h.ready != 1 {
		t.Fatalf("handler ran %d times, want 1", h.ready)
	}
}

func TestDeliverRetriesAfterStorageFailure(t *testing.T) {
	rt := &recordingTransport{}
	h := &countingHandler{err: fmt.Errorf("commit c1: %w", admin.ErrStorageFailure)}
	sender := admin.NewRouter("alpha", rt, &countingHandler{}, nil, nil)
	receiver := admin.NewRouter("beta", &recordingTransport{}, h, nil, nil)

	if err := sender.Broadcast(context.Background(), readyMsg(), []string{"beta"}); err != nil {
		t.Fatal(err)
	}
	_ = receiver.Deliver(context.Background(), "alpha", rt.sent[0].data)
	h.err = nil
	if err := receiver.Deliver(context.Background(), "alpha", rt.sent[0].data); err != nil {
		t.Fatalf("redelivery: %v", err)
	}
	if h.ready != 2 {
		t.Fatalf("handler ran %d times, want 2", h.ready)
	}
}

func TestDeliverRejectsGarbage(t *testing.T) {
	r := admin.NewRouter("beta", &recordingTransport{}, &countingHandler{}, nil, nil)
	if err := r.Deliver(context.Background(), "alpha", []byte{0xff}); !errors.Is(err, admin.ErrMalformedPayload) {
		t.Fatalf("err = %v, want MalformedPayload", err)
	}
}

func TestDeliverKeepsOtherFailuresDeduplicated(t *testing.T) {
	rt := &recordingTransport{}
	h := &countingHandler{err: fmt.Errorf("refused: %w", admin.ErrUnauthorizedRequester)}
	sender := admin.NewRouter("alpha", rt, &countingHandler{}, nil, nil)
	receiver := admin.NewRouter("beta", &recordingTransport{}, h, nil, nil)

	if err := sender.Broadcast(context.Background(), readyMsg(), []string{"beta"}); err != nil {
		t.Fatal(err)
	}
	_ = receiver.Deliver(context.Background(), "alpha", rt.sent[0].data)
	h.err = nil
	if err := receiver.Deliver(context.Background(), "alpha", rt.sent[0].data); err != nil {
		t.Fatalf("redelivery: %v", err)
	}
	if h.ready != 1 {
		t.Fatalf("handler ran %d times, want 1", h.ready)
	}
}
