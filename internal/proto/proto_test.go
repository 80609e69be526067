package proto

import (
	"bytes"
	"reflect"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
	protobuf "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"

	"github.com/devghori1264/aerophoenix/circuitd/internal/models"
	"github.com/devghori1264/aerophoenix/circuitd/internal/signing"
)

func testCircuit() *models.Circuit {
	return &models.Circuit{
		CircuitID: "c1",
		Members:   []models.Node{{NodeID: "a", Endpoint: "tcp://a"}, {NodeID: "b", Endpoint: "tcp://b"}},
		Roster: []models.Service{
			{ServiceID: "s1", ServiceType: "t", AllowedNodes: []string{"a", "b"}, Arguments: map[string]string{"z": "1", "a": "2"}},
		},
		AuthorizationType:     models.AuthorizationTrust,
		Persistence:           models.PersistenceAny,
		Durability:            models.DurabilityNone,
		Routes:                models.RouteAny,
		CircuitManagementType: "app",
		ApplicationMetadata:   []byte{1, 2, 3},
	}
}

func TestCircuitRoundTrip(t *testing.T) {
	c := testCircuit()
	c.Status = models.CircuitAbandoned
	raw, err := MarshalCircuit(c)
	if err != nil {
		t.Fatalf("MarshalCircuit: %v", err)
	}
	got, err := UnmarshalCircuit(raw)
	if err != nil {
		t.Fatalf("UnmarshalCircuit: %v", err)
	}
	if !reflect.DeepEqual(got, c) {
		t.Fatalf("round trip:\n got %+v\nwant %+v", got, c)
	}
}

func TestProposalRoundTrip(t *testing.T) {
	p := &models.CircuitProposal{
		ProposalType:    models.ProposalUpdateRoster,
		CircuitID:       "c1",
		CircuitHash:     CircuitHash(testCircuit()),
		CircuitProposal: *testCircuit(),
		Votes:           []models.VoteRecord{{VoterNodeID: "b", Vote: models.VoteReject, PublicKey: []byte("Ub")}},
		Requester:       []byte("Ua"),
		RequesterNodeID: "a",
	}
	raw, err := MarshalProposal(p)
	if err != nil {
		t.Fatal(err)
	}
	got, err := UnmarshalProposal(raw)
	if err != nil {
		t.Fatalf("UnmarshalProposal: %v", err)
	}
	if !reflect.DeepEqual(got, p) {
		t.Fatalf("round trip:\n got %+v\nwant %+v", got, p)
	}
}

func TestCircuitHash(t *testing.T) {
	c := testCircuit()
	h := CircuitHash(c)
	if len(h) != 64 {
		t.Fatalf("hash %q is not hex sha256", h)
	}
	for i := 0; i < 10; i++ {
		if CircuitHash(testCircuit()) != h {
			t.Fatal("hash not stable across encodings")
		}
	}

	abandoned := testCircuit()
	abandoned.Status = models.CircuitAbandoned
	if CircuitHash(abandoned) != h {
		t.Fatal("local status changed the hash")
	}

	changed := testCircuit()
	changed.Roster[0].AllowedNodes = []string{"a"}
	if CircuitHash(changed) == h {
		t.Fatal("roster change did not change the hash")
	}
}

func TestPayloadRoundTripKeepsSignedBytes(t *testing.T) {
	s, err := signing.NewKeySigner()
	if err != nil {
		t.Fatal(err)
	}
	p, err := NewPayload(&CircuitCreateRequest{Circuit: CircuitToProto(testCircuit())}, "a", s)
	if err != nil {
		t.Fatalf("NewPayload: %v", err)
	}
	raw, err := protobuf.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	got, err := UnmarshalPayload(raw)
	if err != nil {
		t.Fatalf("UnmarshalPayload: %v", err)
	}
	if !bytes.Equal(got.Header, p.Header) || !bytes.Equal(got.Signature, p.Signature) {
		t.Fatal("header or signature changed in transit")
	}
	if err := (signing.NKeyVerifier{}).Verify(s.PublicKey(), got.Header, got.Signature); err != nil {
		t.Fatalf("signature no longer verifies: %v", err)
	}
	bodies := got.Bodies()
	if len(bodies) != 1 || bodies[0].Action() != Action_CIRCUIT_CREATE_REQUEST {
		t.Fatalf("bodies = %v", bodies)
	}
	if CircuitHash(CircuitFromProto(got.GetCircuitCreateRequest().GetCircuit())) != CircuitHash(testCircuit()) {
		t.Fatal("decoded circuit differs")
	}

	h, err := UnmarshalHeader(got.Header)
	if err != nil {
		t.Fatal(err)
	}
	if h.Action != Action_CIRCUIT_CREATE_REQUEST || h.RequesterNodeId != "a" || len(h.PayloadSha512) != 64 {
		t.Fatalf("header = %v", h)
	}
	sent, _ := BodyBytes(p.GetCircuitCreateRequest())
	received, _ := BodyBytes(got.GetCircuitCreateRequest())
	if !bytes.Equal(sent, received) {
		t.Fatal("body encoding changed in transit")
	}
}

func TestBodiesReportsEverySetBody(t *testing.T) {
	p := &CircuitManagementPayload{}
	if len(p.Bodies()) != 0 {
		t.Fatal("empty payload reports a body")
	}
	p.SetBody(&CircuitDestroyRequest{})
	p.SetBody(&CircuitAbandon{CircuitId: "c1"})
	got := p.Bodies()
	if len(got) != 2 || got[0].Action() != Action_CIRCUIT_DESTROY_REQUEST || got[1].Action() != Action_CIRCUIT_ABANDON {
		t.Fatalf("bodies = %v", got)
	}
}

// Each body sits in the payload field numbered action+2.
func TestBodyFieldsFollowActions(t *testing.T) {
	fields := (&CircuitManagementPayload{}).ProtoReflect().Descriptor().Fields()
	bodies := []Body{
		&CircuitCreateRequest{}, &CircuitProposalVote{}, &CircuitJoinRequest{},
		&CircuitUpdateRosterRequest{}, &CircuitUpdateAddNodeRequest{}, &CircuitUpdateRemoveNodeRequest{},
		&CircuitUpdateApplicationMetadataRequest{}, &CircuitDestroyRequest{}, &CircuitAbandon{},
	}
	for _, b := range bodies {
		fd := fields.ByNumber(protoreflect.FieldNumber(b.Action() + 2))
		if fd == nil || fd.Message() == nil {
			t.Fatalf("%s has no payload field", b.Action())
		}
		if got, want := fd.Message().FullName(), b.ProtoReflect().Descriptor().FullName(); got != want {
			t.Fatalf("%s field holds %s, want %s", b.Action(), got, want)
		}
	}
}

func TestUnknownFieldsAreSkipped(t *testing.T) {
	b, err := protobuf.Marshal(&Node{NodeId: "a", Endpoint: "tcp://a"})
	if err != nil {
		t.Fatal(err)
	}
	b = protowire.AppendTag(b, 99, protowire.BytesType)
	b = protowire.AppendString(b, "future")
	var n Node
	if err := protobuf.Unmarshal(b, &n); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if n.GetNodeId() != "a" || n.GetEndpoint() != "tcp://a" {
		t.Fatalf("node = %v", &n)
	}
}

func TestTruncatedInputFails(t *testing.T) {
	b, err := MarshalCircuit(testCircuit())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := UnmarshalCircuit(b[:len(b)-2]); err == nil {
		t.Fatal("truncated circuit decoded")
	}
}

func TestAdminMessageRoundTrip(t *testing.T) {
	s, err := signing.NewKeySigner()
	if err != nil {
		t.Fatal(err)
	}
	payload, err := NewPayload(&CircuitDestroyRequest{CircuitId: "c1"}, "a", s)
	if err != nil {
		t.Fatal(err)
	}
	prop := &models.CircuitProposal{
		ProposalType:    models.ProposalDestroy,
		CircuitID:       "c1",
		CircuitHash:     CircuitHash(testCircuit()),
		CircuitProposal: *testCircuit(),
		Votes:           []models.VoteRecord{{VoterNodeID: "b", Vote: models.VoteAccept, PublicKey: []byte("Ub")}},
		Requester:       s.PublicKey(),
		RequesterNodeID: "a",
	}
	msg := &AdminMessage{
		MessageType: MessageType_PROPOSED_CIRCUIT,
		MessageId:   "m-1",
		ProposedCircuit: &ProposedCircuit{
			CircuitProposal: ProposalToProto(prop),
			ExpectedHash:    prop.CircuitHash,
			CircuitPayload:  payload,
		},
	}
	raw, err := protobuf.Marshal(msg)
	if err != nil {
		t.Fatal(err)
	}
	got, err := UnmarshalAdminMessage(raw)
	if err != nil {
		t.Fatalf("UnmarshalAdminMessage: %v", err)
	}
	if got.MessageType != MessageType_PROPOSED_CIRCUIT || got.MessageId != "m-1" || got.ProposedCircuit == nil {
		t.Fatalf("message = %v", got)
	}
	if p := ProposalFromProto(got.ProposedCircuit.CircuitProposal); !reflect.DeepEqual(p, prop) {
		t.Fatalf("proposal:\n got %+v\nwant %+v", p, prop)
	}
	if !bytes.Equal(got.ProposedCircuit.CircuitPayload.Header, payload.Header) {
		t.Fatal("embedded payload header changed")
	}
}

func TestActionNames(t *testing.T) {
	if Action_CIRCUIT_ABANDON.String() != "CIRCUIT_ABANDON" {
		t.Fatalf("name = %s", Action_CIRCUIT_ABANDON)
	}
	if Action(42).Known() || Action_ACTION_UNSET.Known() || !Action_CIRCUIT_PROPOSAL_VOTE.Known() {
		t.Fatal("Known misreports")
	}
}

func TestServiceRegistered(t *testing.T) {
	d, err := protoregistry.GlobalFiles.FindDescriptorByName("circuitd.admin.AdminService")
	if err != nil {
		t.Fatalf("service not registered: %v", err)
	}
	sd, ok := d.(protoreflect.ServiceDescriptor)
	if !ok {
		t.Fatalf("descriptor is %T", d)
	}
	m := sd.Methods().ByName("SubmitPayload")
	if m == nil || m.Input().FullName() != "circuitd.admin.CircuitManagementPayload" || m.Output().FullName() != "circuitd.admin.SubmitResponse" {
		t.Fatalf("SubmitPayload = %v", m)
	}
	if AdminService_ServiceDesc.ServiceName != string(sd.FullName()) {
		t.Fatalf("service desc name %s", AdminService_ServiceDesc.ServiceName)
	}
}
