package models

import (
	"errors"
	"fmt"
	"sort"
)

// Node is a peer taking part in a circuit.
type Node struct {
	NodeID   string `json:"node_id"`
	Endpoint string `json:"endpoint"`
}

// Service is an application endpoint hosted by one of its allowed nodes.
type Service struct {
	ServiceID    string            `json:"service_id"`
	ServiceType  string            `json:"service_type"`
	AllowedNodes []string          `json:"allowed_nodes"`
	Arguments    map[string]string `json:"arguments,omitempty"`
}

type AuthorizationType int32

const (
	AuthorizationUnset AuthorizationType = iota
	AuthorizationTrust
)

func (a AuthorizationType) String() string {
	if a == AuthorizationTrust {
		return "trust"
	}
	return "unset"
}

type PersistenceType int32

const (
	PersistenceUnset PersistenceType = iota
	PersistenceAny
)

func (p PersistenceType) String() string {
	if p == PersistenceAny {
		return "any"
	}
	return "unset"
}

type DurabilityType int32

const (
	DurabilityUnset DurabilityType = iota
	DurabilityNone
)

func (d DurabilityType) String() string {
	if d == DurabilityNone {
		return "no_durability"
	}
	return "unset"
}

type RouteType int32

const (
	RouteUnset RouteType = iota
	RouteAny
)

func (r RouteType) String() string {
	if r == RouteAny {
		return "any"
	}
	return "unset"
}

// CircuitStatus is local bookkeeping; it never takes part in the circuit hash.
type CircuitStatus int32

const (
	CircuitActive CircuitStatus = iota
	CircuitAbandoned
)

func (s CircuitStatus) String() string {
	if s == CircuitAbandoned {
		return "abandoned"
	}
	return "active"
}

// Circuit is the committed definition of a multi-party circuit.
type Circuit struct {
	CircuitID             string            `json:"circuit_id"`
	Roster                []Service         `json:"roster"`
	Members               []Node            `json:"members"`
	AuthorizationType     AuthorizationType `json:"authorization_type"`
	Persistence           PersistenceType   `json:"persistence"`
	Durability            DurabilityType    `json:"durability"`
	Routes                RouteType         `json:"routes"`
	CircuitManagementType string            `json:"circuit_management_type"`
	ApplicationMetadata   []byte            `json:"application_metadata,omitempty"`
	Status                CircuitStatus     `json:"status"`
}

var (
	ErrEmptyCircuitID    = errors.New("circuit id required")
	ErrDuplicateMember   = errors.New("duplicate member")
	ErrDuplicateService  = errors.New("duplicate service id")
	ErrUnknownAllowed    = errors.New("allowed node is not a member")
	ErrNoAllowedNodes    = errors.New("service has no allowed nodes")
	ErrEmptyMemberNodeID = errors.New("member node id required")
)

// Validate checks the structural invariants of a circuit definition.
func (c *Circuit) Validate() error {
	if c.CircuitID == "" {
		return ErrEmptyCircuitID
	}
	seen := make(map[string]struct{}, len(c.Members))
	for _, m := range c.Members {
		if m.NodeID == "" {
			return ErrEmptyMemberNodeID
		}
		if _, ok := seen[m.NodeID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateMember, m.NodeID)
		}
		seen[m.NodeID] = struct{}{}
	}
	services := make(map[string]struct{}, len(c.Roster))
	for _, s := range c.Roster {
		if _, ok := services[s.ServiceID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateService, s.ServiceID)
		}
		services[s.ServiceID] = struct{}{}
		if len(s.AllowedNodes) == 0 {
			return fmt.Errorf("%w: %s", ErrNoAllowedNodes, s.ServiceID)
		}
		for _, n := range s.AllowedNodes {
			if _, ok := seen[n]; !ok {
				return fmt.Errorf("%w: service %s references %s", ErrUnknownAllowed, s.ServiceID, n)
			}
		}
	}
	return nil
}

// HasMember reports whether nodeID is one of the circuit's members.
func (c *Circuit) HasMember(nodeID string) bool {
	for _, m := range c.Members {
		if m.NodeID == nodeID {
			return true
		}
	}
	return false
}

// MemberIDs returns the member node ids in circuit order.
func (c *Circuit) MemberIDs() []string {
	out := make([]string, 0, len(c.Members))
	for _, m := range c.Members {
		out = append(out, m.NodeID)
	}
	return out
}

// ReferencedBy returns the ids of services that list nodeID as allowed.
func (c *Circuit) ReferencedBy(nodeID string) []string {
	var out []string
	for _, s := range c.Roster {
		for _, n := range s.AllowedNodes {
			if n == nodeID {
				out = append(out, s.ServiceID)
				break
			}
		}
	}
	return out
}

// Clone returns a deep copy so callers can mutate without aliasing stored state.
func (c *Circuit) Clone() *Circuit {
	if c == nil {
		return nil
	}
	out := *c
	out.Members = append([]Node(nil), c.Members...)
	out.Roster = make([]Service, 0, len(c.Roster))
	for _, s := range c.Roster {
		out.Roster = append(out.Roster, s.Clone())
	}
	if c.ApplicationMetadata != nil {
		out.ApplicationMetadata = append([]byte(nil), c.ApplicationMetadata...)
	}
	return &out
}

func (s Service) Clone() Service {
	out := s
	out.AllowedNodes = append([]string(nil), s.AllowedNodes...)
	if s.Arguments != nil {
		out.Arguments = make(map[string]string, len(s.Arguments))
		for k, v := range s.Arguments {
			out.Arguments[k] = v
		}
	}
	return out
}

// SortedArgumentKeys gives a deterministic iteration order over Arguments.
func (s Service) SortedArgumentKeys() []string {
	keys := make([]string, 0, len(s.Arguments))
	for k := range s.Arguments {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
