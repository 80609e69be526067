package main

import (
	"fmt"
	"strings"

	"github.com/devghori1264/aerophoenix/circuitd/internal/models"
)

// parseMember reads "node_id=endpoint".
func parseMember(s string) (models.Node, error) {
	id, endpoint, ok := strings.Cut(s, "=")
	if !ok || id == "" || endpoint == "" {
		return models.Node{}, fmt.Errorf("member %q: want node_id=endpoint", s)
	}
	return models.Node{NodeID: id, Endpoint: endpoint}, nil
}

// parseService reads "service_id:service_type:node[,node...][:key=value[;key=value...]]".
func parseService(s string) (models.Service, error) {
	parts := strings.SplitN(s, ":", 4)
	if len(parts) < 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return models.Service{}, fmt.Errorf("service %q: want id:type:node[,node][:key=value;...]", s)
	}
	svc := models.Service{
		ServiceID:    parts[0],
		ServiceType:  parts[1],
		AllowedNodes: strings.Split(parts[2], ","),
	}
	if len(parts) == 4 && parts[3] != "" {
		svc.Arguments = make(map[string]string)
		for _, kv := range strings.Split(parts[3], ";") {
			k, v, ok := strings.Cut(kv, "=")
			if !ok || k == "" {
				return models.Service{}, fmt.Errorf("service %q: bad argument %q", s, kv)
			}
			svc.Arguments[k] = v
		}
	}
	return svc, nil
}

func parseVote(s string) (models.Vote, error) {
	switch strings.ToLower(s) {
	case "accept", "yes":
		return models.VoteAccept, nil
	case "reject", "no":
		return models.VoteReject, nil
	}
	return models.VoteUnset, fmt.Errorf("vote %q: want accept or reject", s)
}

// circuitFlags collects the flags describing a full circuit definition.
type circuitFlags struct {
	id             string
	members        []string
	services       []string
	managementType string
	metadata       string
}

func (cs circuitFlags) build() (*models.Circuit, error) {
	c := &models.Circuit{
		CircuitID:             cs.id,
		AuthorizationType:     models.AuthorizationTrust,
		Persistence:           models.PersistenceAny,
		Durability:            models.DurabilityNone,
		Routes:                models.RouteAny,
		CircuitManagementType: cs.managementType,
	}
	if cs.metadata != "" {
		c.ApplicationMetadata = []byte(cs.metadata)
	}
	for _, m := range cs.members {
		n, err := parseMember(m)
		if err != nil {
			return nil, err
		}
		c.Members = append(c.Members, n)
	}
	for _, s := range cs.services {
		svc, err := parseService(s)
		if err != nil {
			return nil, err
		}
		c.Roster = append(c.Roster, svc)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
