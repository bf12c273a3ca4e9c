package main

import "testing"

// TestEvalAllRuns is a smoke test, not a node-count regression pin: this
// module has never had a real search run against it, so there is no
// trustworthy baseline node count to hardcode the way an established
// engine's bench suite would. It still exercises the same path a
// regression pin would (every game to a fixed depth) so a future change
// can replace this with real pinned counts once a baseline exists.
func TestEvalAllRuns(t *testing.T) {
	nodes, nps := evalAll(2)
	if nodes == 0 {
		t.Fatalf("expected at least one node visited, got 0")
	}
	if nps <= 0 {
		t.Fatalf("expected positive nodes/sec, got %f", nps)
	}
}

func TestDeeperSearchVisitsMoreNodes(t *testing.T) {
	shallow, _ := evalAll(1)
	deep, _ := evalAll(2)
	if deep <= shallow {
		t.Fatalf("expected depth 2 to visit more nodes than depth 1: %d vs %d", deep, shallow)
	}
}
