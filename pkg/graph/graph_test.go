package graph

import (
	"errors"
	"testing"
)

func TestAddNode_FirstNodeBecomesRoot(t *testing.T) {
	g := New()

	if g.Root() != InvalidNode {
		t.Errorf("Root() = %d on empty graph, want InvalidNode", g.Root())
	}

	root := g.AddNode(4)
	child := g.AddNode(3)

	if g.Root() != root {
		t.Errorf("Root() = %d, want %d", g.Root(), root)
	}
	if root == child {
		t.Error("AddNode() returned the same id twice")
	}
	if g.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", g.NodeCount())
	}
	if g.ByteLength(child) != 3 {
		t.Errorf("ByteLength(child) = %d, want 3", g.ByteLength(child))
	}
}

func TestSetRoot(t *testing.T) {
	g := New()
	a := g.AddNode(1)
	b := g.AddNode(2)

	if err := g.SetRoot(b); err != nil {
		t.Fatalf("SetRoot() error = %v", err)
	}
	if g.Root() != b {
		t.Errorf("Root() = %d, want %d", g.Root(), b)
	}

	if err := g.SetRoot(99); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("SetRoot(99) error = %v, want ErrUnknownNode", err)
	}
	_ = a
}

func TestAddLink(t *testing.T) {
	g := New()
	root := g.AddNode(4)
	a := g.AddNode(3)

	if err := g.AddLink(root, a, Width16); err != nil {
		t.Fatalf("AddLink() error = %v", err)
	}

	links := g.Links(root)
	if len(links) != 1 {
		t.Fatalf("Links(root) has %d entries, want 1", len(links))
	}
	if links[0].Target != a || links[0].Width != Width16 {
		t.Errorf("Links(root)[0] = %+v, want target %d width 16", links[0], a)
	}
	if g.InDegree(a) != 1 {
		t.Errorf("InDegree(a) = %d, want 1", g.InDegree(a))
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
}

func TestAddLink_Errors(t *testing.T) {
	g := New()
	root := g.AddNode(4)

	if err := g.AddLink(root, 99, Width16); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("AddLink(root, 99) error = %v, want ErrUnknownNode", err)
	}
	if err := g.AddLink(99, root, Width16); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("AddLink(99, root) error = %v, want ErrUnknownNode", err)
	}
	if err := g.AddLink(root, root, Width16); !errors.Is(err, ErrSelfLink) {
		t.Errorf("AddLink(root, root) error = %v, want ErrSelfLink", err)
	}
}

func TestInDegree_CountsLinksNotParents(t *testing.T) {
	// Two links from the same parent to the same child count separately.
	g := New()
	root := g.AddNode(8)
	a := g.AddNode(3)
	g.AddLink(root, a, Width16)
	g.AddLink(root, a, Width16)

	if g.InDegree(a) != 2 {
		t.Errorf("InDegree(a) = %d, want 2", g.InDegree(a))
	}
}

func TestValidate_WellFormed(t *testing.T) {
	g := New()
	root := g.AddNode(4)
	a := g.AddNode(3)
	b := g.AddNode(2)
	g.AddLink(root, a, Width16)
	g.AddLink(root, b, Width16)
	g.AddLink(a, b, Width16)

	if err := g.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_EmptyGraph(t *testing.T) {
	if err := New().Validate(); !errors.Is(err, ErrEmptyGraph) {
		t.Errorf("Validate() error = %v, want ErrEmptyGraph", err)
	}
}

func TestValidate_RootHasParents(t *testing.T) {
	g := New()
	root := g.AddNode(4)
	a := g.AddNode(3)
	g.AddLink(root, a, Width16)
	g.AddLink(a, root, Width16)

	if err := g.Validate(); !errors.Is(err, ErrRootHasParents) {
		t.Errorf("Validate() error = %v, want ErrRootHasParents", err)
	}
}

func TestValidate_DetachedNode(t *testing.T) {
	g := New()
	root := g.AddNode(4)
	a := g.AddNode(3)
	g.AddNode(2) // never linked

	g.AddLink(root, a, Width16)

	if err := g.Validate(); !errors.Is(err, ErrDetachedNode) {
		t.Errorf("Validate() error = %v, want ErrDetachedNode", err)
	}
}

func TestValidate_Cycle(t *testing.T) {
	g := New()
	root := g.AddNode(4)
	a := g.AddNode(3)
	b := g.AddNode(2)
	g.AddLink(root, a, Width16)
	g.AddLink(a, b, Width16)
	g.AddLink(b, a, Width16)

	if err := g.Validate(); !errors.Is(err, ErrGraphHasCycle) {
		t.Errorf("Validate() error = %v, want ErrGraphHasCycle", err)
	}
}

func TestWidth_Weight(t *testing.T) {
	if got := Width16.Weight(10); got != 10+1<<16 {
		t.Errorf("Width16.Weight(10) = %d, want %d", got, 10+1<<16)
	}
	if got := Width32.Weight(10); got != 10+1<<32 {
		t.Errorf("Width32.Weight(10) = %d, want %d", got, 10+1<<32)
	}
}
