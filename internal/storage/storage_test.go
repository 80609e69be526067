package storage_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/devghori1264/aerophoenix/circuitd/internal/models"
	"github.com/devghori1264/aerophoenix/circuitd/internal/storage"
)

func engines(t *testing.T) map[string]storage.KV {
	t.Helper()
	b, err := storage.NewInMemoryBadgerKV()
	if err != nil {
		t.Fatalf("badger: %v", err)
	}
	l, err := storage.NewInMemoryLevelKV()
	if err != nil {
		t.Fatalf("leveldb: %v", err)
	}
	t.Cleanup(func() {
		_ = b.Close()
		_ = l.Close()
	})
	return map[string]storage.KV{"badger": b, "leveldb": l}
}

func circuit(id string, members ...string) *models.Circuit {
	c := &models.Circuit{CircuitID: id, AuthorizationType: models.AuthorizationTrust, CircuitManagementType: "app"}
	for _, m := range members {
		c.Members = append(c.Members, models.Node{NodeID: m, Endpoint: "tcp://" + m})
		c.Roster = append(c.Roster, models.Service{ServiceID: "svc-" + m, ServiceType: "t", AllowedNodes: []string{m}})
	}
	return c
}

func TestProposalStoreCreateIsExclusive(t *testing.T) {
	ctx := context.Background()
	for name, kv := range engines(t) {
		t.Run(name, func(t *testing.T) {
			ps := storage.NewProposalStore(kv)
			p := &models.CircuitProposal{ProposalType: models.ProposalCreate, CircuitID: "c1", CircuitProposal: *circuit("c1", "a", "b")}

			var wg sync.WaitGroup
			errs := make([]error, 8)
			for i := range errs {
				wg.Add(1)
				go func() {
					defer wg.Done()
					errs[i] = ps.Create(ctx, p)
				}()
			}
			wg.Wait()

			created := 0
			for _, err := range errs {
				switch {
				case err == nil:
					created++
				case !errors.Is(err, storage.ErrProposalExists):
					t.Fatalf("unexpected error: %v", err)
				}
			}
			if created != 1 {
				t.Fatalf("%d creates succeeded, want 1", created)
			}
		})
	}
}

func TestProposalStoreUpdate(t *testing.T) {
	ctx := context.Background()
	for name, kv := range engines(t) {
		t.Run(name, func(t *testing.T) {
			ps := storage.NewProposalStore(kv)
			if _, err := ps.Update(ctx, "missing", func(*models.CircuitProposal) error { return nil }); !errors.Is(err, storage.ErrNotFound) {
				t.Fatalf("update missing: err = %v", err)
			}

			p := &models.CircuitProposal{ProposalType: models.ProposalCreate, CircuitID: "c1", CircuitProposal: *circuit("c1", "a", "b")}
			if err := ps.Create(ctx, p); err != nil {
				t.Fatal(err)
			}
			got, err := ps.Update(ctx, "c1", func(p *models.CircuitProposal) error {
				p.UpsertVote(models.VoteRecord{VoterNodeID: "b", Vote: models.VoteAccept, PublicKey: []byte("Ub")})
				return nil
			})
			if err != nil {
				t.Fatalf("Update: %v", err)
			}
			if len(got.Votes) != 1 {
				t.Fatalf("votes = %v", got.Votes)
			}

			boom := errors.New("boom")
			if _, err := ps.Update(ctx, "c1", func(p *models.CircuitProposal) error {
				p.Votes = nil
				return boom
			}); !errors.Is(err, boom) {
				t.Fatalf("err = %v, want boom", err)
			}
			stored, err := ps.Get(ctx, "c1")
			if err != nil {
				t.Fatal(err)
			}
			if len(stored.Votes) != 1 {
				t.Fatal("failed update was written")
			}

			if err := ps.Remove(ctx, "c1"); err != nil {
				t.Fatal(err)
			}
			if err := ps.Remove(ctx, "c1"); err != nil {
				t.Fatalf("second remove: %v", err)
			}
			if _, err := ps.Get(ctx, "c1"); !errors.Is(err, storage.ErrNotFound) {
				t.Fatalf("get after remove: err = %v", err)
			}
		})
	}
}

func TestCircuitDirectory(t *testing.T) {
	ctx := context.Background()
	for name, kv := range engines(t) {
		t.Run(name, func(t *testing.T) {
			d := storage.NewCircuitDirectory(kv)
			for _, id := range []string{"c2", "c1"} {
				if err := d.Commit(ctx, circuit(id, "a", "b")); err != nil {
					t.Fatal(err)
				}
			}
			// Proposals share the engine but not the key space.
			if err := storage.NewProposalStore(kv).Create(ctx, &models.CircuitProposal{CircuitID: "c3"}); err != nil {
				t.Fatal(err)
			}
			all, err := d.List(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if len(all) != 2 {
				t.Fatalf("listed %d circuits, want 2", len(all))
			}

			if _, err := d.UpdateMembers(ctx, "c1", nil, "b"); !errors.Is(err, storage.ErrMemberInUse) {
				t.Fatalf("remove referenced member: err = %v", err)
			}
			if _, err := d.UpdateRoster(ctx, "c1", nil, []models.Service{{ServiceID: "svc-b"}}); err != nil {
				t.Fatal(err)
			}
			c, err := d.UpdateMembers(ctx, "c1", &models.Node{NodeID: "c", Endpoint: "tcp://c"}, "b")
			if err != nil {
				t.Fatalf("UpdateMembers: %v", err)
			}
			if got := c.MemberIDs(); len(got) != 2 || got[0] != "a" || got[1] != "c" {
				t.Fatalf("members = %v", got)
			}

			if _, err := d.SetStatus(ctx, "c1", models.CircuitAbandoned); err != nil {
				t.Fatal(err)
			}
			c, err = d.Get(ctx, "c1")
			if err != nil {
				t.Fatal(err)
			}
			if c.Status != models.CircuitAbandoned {
				t.Fatalf("status = %v", c.Status)
			}

			if _, err := d.SetApplicationMetadata(ctx, "nope", []byte("x")); !errors.Is(err, storage.ErrNotFound) {
				t.Fatalf("apply on missing circuit: err = %v", err)
			}
		})
	}
}

func TestApplyRosterUpdateReplacesInPlace(t *testing.T) {
	c := circuit("c1", "a", "b")
	storage.ApplyRosterUpdate(c, []models.Service{
		{ServiceID: "svc-a", ServiceType: "t2", AllowedNodes: []string{"a", "b"}},
		{ServiceID: "svc-new", ServiceType: "t", AllowedNodes: []string{"b"}},
	}, nil)
	if len(c.Roster) != 3 || c.Roster[0].ServiceID != "svc-a" || c.Roster[0].ServiceType != "t2" || c.Roster[2].ServiceID != "svc-new" {
		t.Fatalf("roster = %+v", c.Roster)
	}
}

func TestOpenPersistsAcrossRestart(t *testing.T) {
	ctx := context.Background()
	for _, engine := range []string{storage.EngineBadger, storage.EngineLevelDB} {
		t.Run(engine, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), engine)
			kv, err := storage.Open(engine, path)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			if err := storage.NewCircuitDirectory(kv).Commit(ctx, circuit("c1", "a")); err != nil {
				t.Fatal(err)
			}
			if err := kv.Close(); err != nil {
				t.Fatal(err)
			}

			kv, err = storage.Open(engine, path)
			if err != nil {
				t.Fatalf("reopen: %v", err)
			}
			defer kv.Close()
			if _, err := storage.NewCircuitDirectory(kv).Get(ctx, "c1"); err != nil {
				t.Fatalf("circuit lost across restart: %v", err)
			}
		})
	}

	if _, err := storage.Open("rocks", t.TempDir()); err == nil {
		t.Fatal("unknown engine accepted")
	}
}
