package id_gen

import (
	"testing"
)

func TestNewID(t *testing.T) {
	g := NewIDGenerator(2)
	defer g.Stop()

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		id := g.NewID()
		if id == "" {
			t.Fatalf("empty id at iteration %d", i)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestStopIsIdempotent(t *testing.T) {
	g := NewIDGenerator(1)
	g.Stop()
	g.Stop()
}
