package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "circuitd.log")
	log, err := New(path, "info")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Debug("hidden")
	log.Info("circuit committed")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), data)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("not JSON: %v", err)
	}
	if entry["msg"] != "circuit committed" {
		t.Fatalf("msg = %v", entry["msg"])
	}
	if _, ok := entry["time"]; !ok {
		t.Fatal("time key missing")
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	if _, err := New("", "loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
