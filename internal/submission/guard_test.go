package submission

import "testing"

func TestGuard(t *testing.T) {
	var g Guard

	release, ok := g.Acquire("view-1")
	if !ok {
		t.Fatal("first Acquire should succeed")
	}
	if _, ok := g.Acquire("view-1"); ok {
		t.Error("second Acquire of the same key should fail")
	}
	other, ok := g.Acquire("view-2")
	if !ok {
		t.Fatal("Acquire of another key should succeed")
	}
	if g.InFlight() != 2 {
		t.Errorf("InFlight = %d, want 2", g.InFlight())
	}

	release()
	release() // idempotent
	other()
	if g.InFlight() != 0 {
		t.Errorf("InFlight = %d, want 0", g.InFlight())
	}
	if _, ok := g.Acquire("view-1"); !ok {
		t.Error("Acquire after release should succeed")
	}
}
