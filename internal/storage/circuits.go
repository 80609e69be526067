package storage

import (
	"context"
	"fmt"

	"github.com/devghori1264/aerophoenix/circuitd/internal/models"
	"github.com/devghori1264/aerophoenix/circuitd/internal/proto"
)

const circuitPrefix = "circuit/"

func circuitKey(circuitID string) []byte {
	return []byte(circuitPrefix + circuitID)
}

// CircuitDirectory holds the committed definition of every circuit this node
// belongs to. Every mutation is idempotent: applying the same accepted
// proposal twice leaves the stored circuit unchanged.
type CircuitDirectory struct {
	kv KV
}

func NewCircuitDirectory(kv KV) *CircuitDirectory {
	return &CircuitDirectory{kv: kv}
}

func (d *CircuitDirectory) Get(ctx context.Context, circuitID string) (*models.Circuit, error) {
	data, err := d.kv.Get(ctx, circuitKey(circuitID))
	if err != nil {
		return nil, err
	}
	return proto.UnmarshalCircuit(data)
}

func (d *CircuitDirectory) List(ctx context.Context) ([]*models.Circuit, error) {
	var out []*models.Circuit
	err := d.kv.Scan(ctx, []byte(circuitPrefix), func(_, v []byte) error {
		c, err := proto.UnmarshalCircuit(v)
		if err != nil {
			return err
		}
		out = append(out, c)
		return nil
	})
	return out, err
}

// Commit creates the circuit or fully replaces the stored definition.
func (d *CircuitDirectory) Commit(ctx context.Context, c *models.Circuit) error {
	data, err := proto.MarshalCircuit(c)
	if err != nil {
		return err
	}
	return d.kv.Put(ctx, circuitKey(c.CircuitID), data)
}

func (d *CircuitDirectory) Remove(ctx context.Context, circuitID string) error {
	return d.kv.Delete(ctx, circuitKey(circuitID))
}

// Apply runs fn against the stored circuit in one atomic read-modify-write.
// Nothing is written when fn fails.
func (d *CircuitDirectory) Apply(ctx context.Context, circuitID string, fn func(*models.Circuit) error) (*models.Circuit, error) {
	var out *models.Circuit
	err := d.kv.Update(ctx, circuitKey(circuitID), func(old []byte) ([]byte, error) {
		if old == nil {
			return nil, fmt.Errorf("circuit %s: %w", circuitID, ErrNotFound)
		}
		c, err := proto.UnmarshalCircuit(old)
		if err != nil {
			return nil, err
		}
		if err := fn(c); err != nil {
			return nil, err
		}
		out = c
		return proto.MarshalCircuit(c)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (d *CircuitDirectory) UpdateRoster(ctx context.Context, circuitID string, add, remove []models.Service) (*models.Circuit, error) {
	return d.Apply(ctx, circuitID, func(c *models.Circuit) error {
		ApplyRosterUpdate(c, add, remove)
		return nil
	})
}

func (d *CircuitDirectory) UpdateMembers(ctx context.Context, circuitID string, add *models.Node, removeID string) (*models.Circuit, error) {
	return d.Apply(ctx, circuitID, func(c *models.Circuit) error {
		return ApplyMemberUpdate(c, add, removeID)
	})
}

func (d *CircuitDirectory) SetApplicationMetadata(ctx context.Context, circuitID string, metadata []byte) (*models.Circuit, error) {
	return d.Apply(ctx, circuitID, func(c *models.Circuit) error {
		c.ApplicationMetadata = append([]byte(nil), metadata...)
		return nil
	})
}

func (d *CircuitDirectory) SetStatus(ctx context.Context, circuitID string, status models.CircuitStatus) (*models.Circuit, error) {
	return d.Apply(ctx, circuitID, func(c *models.Circuit) error {
		c.Status = status
		return nil
	})
}

// ApplyRosterUpdate removes services by id, then adds or replaces services
// by id, keeping the existing roster order.
func ApplyRosterUpdate(c *models.Circuit, add, remove []models.Service) {
	drop := make(map[string]struct{}, len(remove))
	for _, s := range remove {
		drop[s.ServiceID] = struct{}{}
	}
	roster := c.Roster[:0]
	for _, s := range c.Roster {
		if _, ok := drop[s.ServiceID]; !ok {
			roster = append(roster, s)
		}
	}
	for _, s := range add {
		replaced := false
		for i := range roster {
			if roster[i].ServiceID == s.ServiceID {
				roster[i] = s.Clone()
				replaced = true
				break
			}
		}
		if !replaced {
			roster = append(roster, s.Clone())
		}
	}
	c.Roster = roster
}

// ApplyMemberUpdate adds (or refreshes) one member and removes another. The
// removal fails with ErrMemberInUse while any service still allows the node,
// so roster changes must be applied first.
func ApplyMemberUpdate(c *models.Circuit, add *models.Node, removeID string) error {
	if add != nil {
		found := false
		for i := range c.Members {
			if c.Members[i].NodeID == add.NodeID {
				c.Members[i] = *add
				found = true
				break
			}
		}
		if !found {
			c.Members = append(c.Members, *add)
		}
	}
	if removeID == "" {
		return nil
	}
	if refs := c.ReferencedBy(removeID); len(refs) > 0 {
		return fmt.Errorf("%w: node %s is allowed by services %v", ErrMemberInUse, removeID, refs)
	}
	members := c.Members[:0]
	for _, m := range c.Members {
		if m.NodeID != removeID {
			members = append(members, m)
		}
	}
	c.Members = members
	return nil
}
