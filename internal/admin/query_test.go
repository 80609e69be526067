package admin_test

import (
	"context"
	"testing"

	"github.com/devghori1264/aerophoenix/circuitd/internal/admin"
	"github.com/devghori1264/aerophoenix/circuitd/internal/admin/admintest"
)

func TestNewPage(t *testing.T) {
	cases := []struct {
		name                 string
		offset, limit, total int
		want                 admin.Page
	}{
		{"defaults", 0, 0, 2, admin.Page{Offset: 0, Limit: 100, Total: 2}},
		{"limit one", 0, 1, 2, admin.Page{Offset: 0, Limit: 1, Total: 2, NextOffset: 1, LastOffset: 1}},
		{"offset one", 1, 0, 2, admin.Page{Offset: 1, Limit: 100, Total: 2}},
		{"middle page", 20, 10, 45, admin.Page{Offset: 20, Limit: 10, Total: 45, PrevOffset: 10, NextOffset: 30, LastOffset: 40}},
		{"capped", 0, 5000, 3, admin.Page{Offset: 0, Limit: admin.MaxLimit, Total: 3}},
		{"empty", 0, 0, 0, admin.Page{Offset: 0, Limit: 100}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := admin.NewPage(tc.offset, tc.limit, tc.total); got != tc.want {
				t.Fatalf("NewPage(%d, %d, %d) = %+v, want %+v", tc.offset, tc.limit, tc.total, got, tc.want)
			}
		})
	}
}

func TestListCircuitsDefaultLimit(t *testing.T) {
	ctx := context.Background()
	c := admintest.NewCluster(t, "a")
	n := c.Nodes["a"]
	for _, id := range []string{"c3", "c1", "c2"} {
		if err := n.Circuits.Commit(ctx, admintest.TwoPartyCircuit(id, "a")); err != nil {
			t.Fatal(err)
		}
	}

	got, pg, err := n.SM.ListCircuits(ctx, admin.CircuitFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if pg.Limit != admin.DefaultLimit || pg.Total != 3 || len(got) != 3 {
		t.Fatalf("page = %+v with %d circuits", pg, len(got))
	}
	if got[0].CircuitID != "c1" || got[2].CircuitID != "c3" {
		t.Fatalf("not sorted by id: %s..%s", got[0].CircuitID, got[2].CircuitID)
	}

	got, pg, err = n.SM.ListCircuits(ctx, admin.CircuitFilter{Offset: 1, Limit: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].CircuitID != "c2" || pg.NextOffset != 2 || pg.PrevOffset != 0 {
		t.Fatalf("second page = %+v, %+v", got, pg)
	}

	got, _, err = n.SM.ListCircuits(ctx, admin.CircuitFilter{Offset: 9})
	if err != nil || len(got) != 0 {
		t.Fatalf("past the end = %v, %v", got, err)
	}
}
