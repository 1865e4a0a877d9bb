package graph

import "testing"

const (
	w16 = int64(1) << 16
	w32 = int64(1) << 32
)

func TestDistances_Chain(t *testing.T) {
	g := New()
	root := g.AddNode(10)
	a := g.AddNode(4)
	b := g.AddNode(6)
	g.AddLink(root, a, Width16)
	g.AddLink(a, b, Width16)

	dist := g.Distances()

	if dist[root] != 0 {
		t.Errorf("dist[root] = %d, want 0", dist[root])
	}
	if want := 4 + w16; dist[a] != want {
		t.Errorf("dist[a] = %d, want %d", dist[a], want)
	}
	if want := 4 + w16 + 6 + w16; dist[b] != want {
		t.Errorf("dist[b] = %d, want %d", dist[b], want)
	}
}

func TestDistances_ShortestPathWins(t *testing.T) {
	// Two routes to c: through a (cheap) and through b (expensive).
	g := New()
	root := g.AddNode(2)
	a := g.AddNode(3)
	b := g.AddNode(50)
	c := g.AddNode(7)
	g.AddLink(root, a, Width16)
	g.AddLink(root, b, Width16)
	g.AddLink(a, c, Width16)
	g.AddLink(b, c, Width16)

	dist := g.Distances()

	if want := (3 + w16) + (7 + w16); dist[c] != want {
		t.Errorf("dist[c] = %d, want %d (shortest path through a)", dist[c], want)
	}
}

func TestDistances_WideLinkPenalty(t *testing.T) {
	g := New()
	root := g.AddNode(2)
	a := g.AddNode(3)
	b := g.AddNode(3)
	g.AddLink(root, a, Width16)
	g.AddLink(root, b, Width32)

	dist := g.Distances()

	if want := 3 + w16; dist[a] != want {
		t.Errorf("dist[a] = %d, want %d", dist[a], want)
	}
	if want := 3 + w32; dist[b] != want {
		t.Errorf("dist[b] = %d, want %d", dist[b], want)
	}
}

func TestDistances_IncrementalAfterAddLink(t *testing.T) {
	g := New()
	root := g.AddNode(2)
	a := g.AddNode(3)
	c := g.AddNode(7)
	g.AddLink(root, a, Width16)
	g.AddLink(a, c, Width16)

	// Populate the cache, then add a shortcut and verify the dirty
	// region (c alone) is refreshed.
	if want := (3 + w16) + (7 + w16); g.Distances()[c] != want {
		t.Fatalf("dist[c] = %d, want %d before shortcut", g.Distances()[c], want)
	}

	g.AddLink(root, c, Width16)

	if want := 7 + w16; g.Distances()[c] != want {
		t.Errorf("dist[c] = %d, want %d after shortcut", g.Distances()[c], want)
	}
}

func TestDistances_IncrementalAfterRewire(t *testing.T) {
	g := New()
	root := g.AddNode(2)
	p1 := g.AddNode(2)
	p2 := g.AddNode(9)
	c := g.AddNode(3)
	g.AddLink(root, p1, Width16)
	g.AddLink(root, p2, Width16)
	g.AddLink(p1, c, Width16)
	g.AddLink(p2, c, Width16)

	// c's shortest route runs through the smaller p1.
	if want := (2 + w16) + (3 + w16); g.Distances()[c] != want {
		t.Fatalf("dist[c] = %d, want %d", g.Distances()[c], want)
	}

	dup, err := g.Duplicate(c)
	if err != nil {
		t.Fatalf("Duplicate() error = %v", err)
	}
	if err := g.RewireLink(p1, 0, dup); err != nil {
		t.Fatalf("RewireLink() error = %v", err)
	}

	dist := g.Distances()

	// The copy took over the cheap route; the original lost it.
	if want := (2 + w16) + (3 + w16); dist[dup] != want {
		t.Errorf("dist[dup] = %d, want %d", dist[dup], want)
	}
	if want := (9 + w16) + (3 + w16); dist[c] != want {
		t.Errorf("dist[c] = %d, want %d after losing the p1 route", dist[c], want)
	}
}

func TestDistances_UnchangedNodesKeepValues(t *testing.T) {
	g := New()
	root := g.AddNode(2)
	a := g.AddNode(3)
	b := g.AddNode(5)
	g.AddLink(root, a, Width16)
	g.AddLink(root, b, Width16)
	g.AddLink(a, b, Width16)

	first := g.Distances()[a]
	g.AddLink(root, b, Width16) // touches b only

	if got := g.Distances()[a]; got != first {
		t.Errorf("dist[a] = %d after unrelated mutation, want %d", got, first)
	}
}
