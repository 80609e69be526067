package admin

import (
	"context"
	"errors"
	"sort"

	"github.com/devghori1264/aerophoenix/circuitd/internal/models"
	"github.com/devghori1264/aerophoenix/circuitd/internal/storage"
)

// Listing bounds. A zero Limit takes DefaultLimit; larger limits are capped
// at MaxLimit.
const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// CircuitFilter narrows ListCircuits.
type CircuitFilter struct {
	Member string
	Offset int
	Limit  int
}

// Page locates one page of a listing among its neighbours.
type Page struct {
	Offset     int
	Limit      int
	Total      int
	PrevOffset int
	NextOffset int
	LastOffset int
}

// NewPage normalizes offset and limit and computes the neighbouring offsets.
// NextOffset stays at LastOffset once the last page is reached.
func NewPage(offset, limit, total int) Page {
	if limit <= 0 {
		limit = DefaultLimit
	}
	limit = min(limit, MaxLimit)
	offset = max(offset, 0)
	pg := Page{Offset: offset, Limit: limit, Total: total}
	if offset > limit {
		pg.PrevOffset = offset - limit
	}
	if total > 0 {
		pg.LastOffset = (total - 1) / limit * limit
	}
	pg.NextOffset = offset + limit
	if pg.NextOffset > pg.LastOffset {
		pg.NextOffset = pg.LastOffset
	}
	return pg
}

func (sm *StateMachine) Circuit(ctx context.Context, circuitID string) (*models.Circuit, error) {
	c, err := sm.circuits.Get(ctx, circuitID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, newError(ErrUnknownCircuit, circuitID, nil)
	}
	if err != nil {
		return nil, newError(ErrStorageFailure, circuitID, err)
	}
	return c, nil
}

// ListCircuits returns one page of circuits sorted by id, with the page
// bounds and the number of circuits matching the filter.
func (sm *StateMachine) ListCircuits(ctx context.Context, f CircuitFilter) ([]*models.Circuit, Page, error) {
	all, err := sm.circuits.List(ctx)
	if err != nil {
		return nil, Page{}, newError(ErrStorageFailure, "", err)
	}
	matched := all[:0]
	for _, c := range all {
		if f.Member == "" || c.HasMember(f.Member) {
			matched = append(matched, c)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CircuitID < matched[j].CircuitID })

	pg := NewPage(f.Offset, f.Limit, len(matched))
	if pg.Offset >= pg.Total {
		return []*models.Circuit{}, pg, nil
	}
	page := matched[pg.Offset:]
	if pg.Limit < len(page) {
		page = page[:pg.Limit]
	}
	return page, pg, nil
}

func (sm *StateMachine) Proposal(ctx context.Context, circuitID string) (*models.CircuitProposal, error) {
	p, err := sm.proposals.Get(ctx, circuitID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, newError(ErrUnknownProposal, circuitID, nil)
	}
	if err != nil {
		return nil, newError(ErrStorageFailure, circuitID, err)
	}
	return p, nil
}

// ListProposals returns outstanding proposals, optionally only those whose
// proposed circuit includes member.
func (sm *StateMachine) ListProposals(ctx context.Context, member string) ([]*models.CircuitProposal, error) {
	all, err := sm.proposals.List(ctx)
	if err != nil {
		return nil, newError(ErrStorageFailure, "", err)
	}
	out := all[:0]
	for _, p := range all {
		if member == "" || p.CircuitProposal.HasMember(member) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CircuitID < out[j].CircuitID })
	return out, nil
}
