package storage

import (
	"context"
	"fmt"

	"github.com/devghori1264/aerophoenix/circuitd/internal/models"
	"github.com/devghori1264/aerophoenix/circuitd/internal/proto"
)

const proposalPrefix = "proposal/"

func proposalKey(circuitID string) []byte {
	return []byte(proposalPrefix + circuitID)
}

// ProposalStore keeps the single outstanding proposal of each circuit.
type ProposalStore struct {
	kv KV
}

func NewProposalStore(kv KV) *ProposalStore {
	return &ProposalStore{kv: kv}
}

func (s *ProposalStore) Get(ctx context.Context, circuitID string) (*models.CircuitProposal, error) {
	data, err := s.kv.Get(ctx, proposalKey(circuitID))
	if err != nil {
		return nil, err
	}
	return proto.UnmarshalProposal(data)
}

// Create stores p only if no proposal for its circuit is outstanding.
// Two racing Create calls for one circuit cannot both succeed.
func (s *ProposalStore) Create(ctx context.Context, p *models.CircuitProposal) error {
	data, err := proto.MarshalProposal(p)
	if err != nil {
		return err
	}
	return s.kv.Update(ctx, proposalKey(p.CircuitID), func(old []byte) ([]byte, error) {
		if old != nil {
			return nil, fmt.Errorf("%w: %s", ErrProposalExists, p.CircuitID)
		}
		return data, nil
	})
}

// Put overwrites the stored proposal.
func (s *ProposalStore) Put(ctx context.Context, p *models.CircuitProposal) error {
	data, err := proto.MarshalProposal(p)
	if err != nil {
		return err
	}
	return s.kv.Put(ctx, proposalKey(p.CircuitID), data)
}

// Update applies fn to the stored proposal atomically and returns the result.
func (s *ProposalStore) Update(ctx context.Context, circuitID string, fn func(*models.CircuitProposal) error) (*models.CircuitProposal, error) {
	var out *models.CircuitProposal
	err := s.kv.Update(ctx, proposalKey(circuitID), func(old []byte) ([]byte, error) {
		if old == nil {
			return nil, ErrNotFound
		}
		p, err := proto.UnmarshalProposal(old)
		if err != nil {
			return nil, err
		}
		if err := fn(p); err != nil {
			return nil, err
		}
		out = p
		return proto.MarshalProposal(p)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Remove deletes the proposal; removing an absent proposal is not an error.
func (s *ProposalStore) Remove(ctx context.Context, circuitID string) error {
	return s.kv.Delete(ctx, proposalKey(circuitID))
}

func (s *ProposalStore) List(ctx context.Context) ([]*models.CircuitProposal, error) {
	var out []*models.CircuitProposal
	err := s.kv.Scan(ctx, []byte(proposalPrefix), func(_, v []byte) error {
		p, err := proto.UnmarshalProposal(v)
		if err != nil {
			return err
		}
		out = append(out, p)
		return nil
	})
	return out, err
}
