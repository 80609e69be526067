package proto

import (
	"crypto/sha256"
	"encoding/hex"

	protobuf "google.golang.org/protobuf/proto"

	"github.com/devghori1264/aerophoenix/circuitd/internal/models"
)

// deterministic keeps equal records byte-identical on every node.
var deterministic = protobuf.MarshalOptions{Deterministic: true}

func NodeToProto(n *models.Node) *Node {
	if n == nil {
		return nil
	}
	return &Node{NodeId: n.NodeID, Endpoint: n.Endpoint}
}

func NodeFromProto(n *Node) models.Node {
	return models.Node{NodeID: n.GetNodeId(), Endpoint: n.GetEndpoint()}
}

// ServiceToProto writes arguments sorted by key.
func ServiceToProto(s *models.Service) *Service {
	if s == nil {
		return nil
	}
	out := &Service{
		ServiceId:    s.ServiceID,
		ServiceType:  s.ServiceType,
		AllowedNodes: append([]string(nil), s.AllowedNodes...),
	}
	for _, k := range s.SortedArgumentKeys() {
		out.Arguments = append(out.Arguments, &Argument{Key: k, Value: s.Arguments[k]})
	}
	return out
}

func ServiceFromProto(s *Service) models.Service {
	out := models.Service{
		ServiceID:    s.GetServiceId(),
		ServiceType:  s.GetServiceType(),
		AllowedNodes: append([]string(nil), s.GetAllowedNodes()...),
	}
	for _, a := range s.GetArguments() {
		if out.Arguments == nil {
			out.Arguments = make(map[string]string, len(s.GetArguments()))
		}
		out.Arguments[a.GetKey()] = a.GetValue()
	}
	return out
}

func ServicesToProto(in []models.Service) []*Service {
	out := make([]*Service, 0, len(in))
	for i := range in {
		out = append(out, ServiceToProto(&in[i]))
	}
	return out
}

func ServicesFromProto(in []*Service) []models.Service {
	if len(in) == 0 {
		return nil
	}
	out := make([]models.Service, 0, len(in))
	for _, s := range in {
		out = append(out, ServiceFromProto(s))
	}
	return out
}

func CircuitToProto(c *models.Circuit) *Circuit {
	if c == nil {
		return nil
	}
	out := &Circuit{
		CircuitId:             c.CircuitID,
		Roster:                ServicesToProto(c.Roster),
		AuthorizationType:     AuthorizationType(c.AuthorizationType),
		Persistence:           PersistenceType(c.Persistence),
		Durability:            DurabilityType(c.Durability),
		Routes:                RouteType(c.Routes),
		CircuitManagementType: c.CircuitManagementType,
		ApplicationMetadata:   append([]byte(nil), c.ApplicationMetadata...),
		Status:                CircuitStatus(c.Status),
	}
	for i := range c.Members {
		out.Members = append(out.Members, NodeToProto(&c.Members[i]))
	}
	return out
}

// CircuitFromProto returns nil for a nil circuit.
func CircuitFromProto(c *Circuit) *models.Circuit {
	if c == nil {
		return nil
	}
	out := &models.Circuit{
		CircuitID:             c.GetCircuitId(),
		Roster:                ServicesFromProto(c.GetRoster()),
		AuthorizationType:     models.AuthorizationType(c.GetAuthorizationType()),
		Persistence:           models.PersistenceType(c.GetPersistence()),
		Durability:            models.DurabilityType(c.GetDurability()),
		Routes:                models.RouteType(c.GetRoutes()),
		CircuitManagementType: c.GetCircuitManagementType(),
		Status:                models.CircuitStatus(c.GetStatus()),
	}
	if len(c.GetApplicationMetadata()) > 0 {
		out.ApplicationMetadata = append([]byte(nil), c.GetApplicationMetadata()...)
	}
	for _, n := range c.GetMembers() {
		out.Members = append(out.Members, NodeFromProto(n))
	}
	return out
}

func ProposalToProto(p *models.CircuitProposal) *CircuitProposal {
	if p == nil {
		return nil
	}
	out := &CircuitProposal{
		ProposalType:    ProposalType(p.ProposalType),
		CircuitId:       p.CircuitID,
		CircuitHash:     p.CircuitHash,
		CircuitProposal: CircuitToProto(&p.CircuitProposal),
		Requester:       append([]byte(nil), p.Requester...),
		RequesterNodeId: p.RequesterNodeID,
	}
	for _, v := range p.Votes {
		out.Votes = append(out.Votes, &VoteRecord{
			PublicKey:   append([]byte(nil), v.PublicKey...),
			Vote:        Vote(v.Vote),
			VoterNodeId: v.VoterNodeID,
		})
	}
	return out
}

// ProposalFromProto returns nil for a nil proposal.
func ProposalFromProto(p *CircuitProposal) *models.CircuitProposal {
	if p == nil {
		return nil
	}
	out := &models.CircuitProposal{
		ProposalType:    models.ProposalType(p.GetProposalType()),
		CircuitID:       p.GetCircuitId(),
		CircuitHash:     p.GetCircuitHash(),
		RequesterNodeID: p.GetRequesterNodeId(),
	}
	if c := CircuitFromProto(p.GetCircuitProposal()); c != nil {
		out.CircuitProposal = *c
	}
	if len(p.GetRequester()) > 0 {
		out.Requester = append([]byte(nil), p.GetRequester()...)
	}
	for _, v := range p.GetVotes() {
		rec := models.VoteRecord{Vote: models.Vote(v.GetVote()), VoterNodeID: v.GetVoterNodeId()}
		if len(v.GetPublicKey()) > 0 {
			rec.PublicKey = append([]byte(nil), v.GetPublicKey()...)
		}
		out.Votes = append(out.Votes, rec)
	}
	return out
}

// MarshalCircuit encodes the full committed record, status included.
func MarshalCircuit(c *models.Circuit) ([]byte, error) {
	return deterministic.Marshal(CircuitToProto(c))
}

func UnmarshalCircuit(b []byte) (*models.Circuit, error) {
	var c Circuit
	if err := protobuf.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return CircuitFromProto(&c), nil
}

func MarshalProposal(p *models.CircuitProposal) ([]byte, error) {
	return deterministic.Marshal(ProposalToProto(p))
}

func UnmarshalProposal(b []byte) (*models.CircuitProposal, error) {
	var p CircuitProposal
	if err := protobuf.Unmarshal(b, &p); err != nil {
		return nil, err
	}
	return ProposalFromProto(&p), nil
}

// CircuitHash is the hex sha256 of the circuit's encoding without local
// status. Every node computes it independently to confirm it votes on the
// same state. A circuit that cannot be encoded hashes to "".
func CircuitHash(c *models.Circuit) string {
	pc := CircuitToProto(c)
	if pc == nil {
		return ""
	}
	pc.Status = CircuitStatus_ACTIVE
	b, err := deterministic.Marshal(pc)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
