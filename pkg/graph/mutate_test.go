package graph

import (
	"errors"
	"testing"
)

// sharedChild builds root → {p1, p2} → c, the smallest graph with a
// shared node worth duplicating.
func sharedChild(t *testing.T) (g *Graph, root, p1, p2, c NodeID) {
	t.Helper()
	g = New()
	root = g.AddNode(2)
	p1 = g.AddNode(2)
	p2 = g.AddNode(2)
	c = g.AddNode(3)
	g.AddLink(root, p1, Width16)
	g.AddLink(root, p2, Width16)
	g.AddLink(p1, c, Width16)
	g.AddLink(p2, c, Width16)
	return g, root, p1, p2, c
}

func TestDuplicate_CopiesNode(t *testing.T) {
	g, _, _, _, c := sharedChild(t)

	g.BumpPriority([]NodeID{c}, -7)
	dup, err := g.Duplicate(c)
	if err != nil {
		t.Fatalf("Duplicate() error = %v", err)
	}

	if dup == c {
		t.Error("Duplicate() returned the original id")
	}
	if g.ByteLength(dup) != g.ByteLength(c) {
		t.Errorf("ByteLength(dup) = %d, want %d", g.ByteLength(dup), g.ByteLength(c))
	}
	if g.Priority(dup) != g.Priority(c) {
		t.Errorf("Priority(dup) = %d, want %d", g.Priority(dup), g.Priority(c))
	}
	if len(g.Links(dup)) != len(g.Links(c)) {
		t.Errorf("Links(dup) has %d entries, want %d", len(g.Links(dup)), len(g.Links(c)))
	}
	if g.InDegree(dup) != 0 {
		t.Errorf("InDegree(dup) = %d, want 0 before rewiring", g.InDegree(dup))
	}
}

func TestDuplicate_SharesChildren(t *testing.T) {
	// The copy links to the *same* children, so their in-degrees grow.
	g := New()
	root := g.AddNode(2)
	mid := g.AddNode(2)
	leaf := g.AddNode(3)
	g.AddLink(root, mid, Width16)
	g.AddLink(mid, leaf, Width16)

	dup, err := g.Duplicate(mid)
	if err != nil {
		t.Fatalf("Duplicate() error = %v", err)
	}

	if g.Links(dup)[0].Target != leaf {
		t.Errorf("Links(dup)[0].Target = %d, want shared child %d", g.Links(dup)[0].Target, leaf)
	}
	if g.InDegree(leaf) != 2 {
		t.Errorf("InDegree(leaf) = %d, want 2 after duplication", g.InDegree(leaf))
	}
}

func TestDuplicate_RewirePreservesTotalInDegree(t *testing.T) {
	g, _, p1, _, c := sharedChild(t)
	before := g.InDegree(c)

	dup, err := g.Duplicate(c)
	if err != nil {
		t.Fatalf("Duplicate() error = %v", err)
	}
	if err := g.RewireLink(p1, 0, dup); err != nil {
		t.Fatalf("RewireLink() error = %v", err)
	}

	if got := g.InDegree(c) + g.InDegree(dup); got != before {
		t.Errorf("InDegree(c)+InDegree(dup) = %d, want %d", got, before)
	}
	if g.Links(p1)[0].Target != dup {
		t.Errorf("Links(p1)[0].Target = %d, want %d", g.Links(p1)[0].Target, dup)
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() after duplicate+rewire = %v, want nil", err)
	}
}

func TestDuplicate_UnknownNode(t *testing.T) {
	g := New()
	g.AddNode(1)

	if _, err := g.Duplicate(42); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("Duplicate(42) error = %v, want ErrUnknownNode", err)
	}
}

func TestRewireLink_Errors(t *testing.T) {
	g := New()
	root := g.AddNode(2)
	a := g.AddNode(3)
	g.AddLink(root, a, Width16)

	if err := g.RewireLink(root, 5, a); !errors.Is(err, ErrUnknownLink) {
		t.Errorf("RewireLink(bad field) error = %v, want ErrUnknownLink", err)
	}
	if err := g.RewireLink(root, 0, 99); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("RewireLink(bad target) error = %v, want ErrUnknownNode", err)
	}
	if err := g.RewireLink(root, 0, root); !errors.Is(err, ErrSelfLink) {
		t.Errorf("RewireLink(self) error = %v, want ErrSelfLink", err)
	}
}

func TestBumpPriority(t *testing.T) {
	g := New()
	a := g.AddNode(1)
	b := g.AddNode(2)

	g.BumpPriority([]NodeID{a, b}, -10)
	g.BumpPriority([]NodeID{b}, 4)

	if g.Priority(a) != -10 {
		t.Errorf("Priority(a) = %d, want -10", g.Priority(a))
	}
	if g.Priority(b) != -6 {
		t.Errorf("Priority(b) = %d, want -6", g.Priority(b))
	}
}
