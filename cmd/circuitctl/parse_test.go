package main

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/devghori1264/aerophoenix/circuitd/internal/models"
	"github.com/devghori1264/aerophoenix/circuitd/internal/signing"
)

func TestParseService(t *testing.T) {
	got, err := parseService("svc-a:scabbard:alpha,beta:admin_keys=k1;version=2")
	if err != nil {
		t.Fatalf("parseService: %v", err)
	}
	want := models.Service{
		ServiceID:    "svc-a",
		ServiceType:  "scabbard",
		AllowedNodes: []string{"alpha", "beta"},
		Arguments:    map[string]string{"admin_keys": "k1", "version": "2"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	for _, bad := range []string{"svc", "svc:type", "svc:type:", "svc:type:a:noequals"} {
		if _, err := parseService(bad); err == nil {
			t.Fatalf("parseService(%q) succeeded", bad)
		}
	}
}

func TestParseMemberAndVote(t *testing.T) {
	n, err := parseMember("alpha=tcp://alpha:8044")
	if err != nil || n.NodeID != "alpha" || n.Endpoint != "tcp://alpha:8044" {
		t.Fatalf("parseMember = %+v, %v", n, err)
	}
	if _, err := parseMember("alpha"); err == nil {
		t.Fatal("member without endpoint accepted")
	}
	if v, _ := parseVote("Accept"); v != models.VoteAccept {
		t.Fatalf("vote = %v", v)
	}
	if _, err := parseVote("maybe"); err == nil {
		t.Fatal("bad vote accepted")
	}
}

func TestCircuitSpecBuildValidates(t *testing.T) {
	cs := circuitFlags{
		id:       "c1",
		members:  []string{"alpha=tcp://a:1", "beta=tcp://b:1"},
		services: []string{"s1:scabbard:alpha", "s2:scabbard:gamma"},
	}
	if _, err := cs.build(); !errors.Is(err, models.ErrUnknownAllowed) {
		t.Fatalf("err = %v, want ErrUnknownAllowed", err)
	}
	cs.services = cs.services[:1]
	c, err := cs.build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if c.AuthorizationType != models.AuthorizationTrust || len(c.Members) != 2 {
		t.Fatalf("circuit = %+v", c)
	}
}

func TestKeygenWritesLoadableSeed(t *testing.T) {
	dir := t.TempDir()
	o := keygenOptions{dir: dir}
	pub, err := writeKeyPair(o, "ops")
	if err != nil {
		t.Fatalf("writeKeyPair: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "ops.nk"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("seed mode = %v", info.Mode().Perm())
	}
	s, err := signing.SignerFromFile(filepath.Join(dir, "ops.nk"))
	if err != nil {
		t.Fatalf("SignerFromFile: %v", err)
	}
	if string(s.PublicKey()) != pub {
		t.Fatalf("public key mismatch: %s vs %s", s.PublicKey(), pub)
	}

	if _, err := writeKeyPair(o, "ops"); !errors.Is(err, errKeyExists) {
		t.Fatalf("second keygen: err = %v, want errKeyExists", err)
	}
	o.force = true
	if _, err := writeKeyPair(o, "ops"); err != nil {
		t.Fatalf("forced keygen: %v", err)
	}
}
