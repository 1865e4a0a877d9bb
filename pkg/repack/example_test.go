package repack_test

import (
	"fmt"

	"github.com/glyphstack/tablepack/pkg/graph"
	"github.com/glyphstack/tablepack/pkg/repack"
)

func ExampleRun() {
	// A table with two subtables behind 16-bit offsets.
	g := graph.New()
	root := g.AddNode(4)
	small := g.AddNode(3)
	big := g.AddNode(20)
	_ = g.AddLink(root, small, graph.Width16)
	_ = g.AddLink(root, big, graph.Width16)

	res, err := repack.Run(g, repack.Options{})
	if err != nil {
		panic(err)
	}

	fmt.Println("status:", res.Status)
	fmt.Println("order:", res.Order)
	for _, off := range res.Offsets {
		fmt.Printf("offset %d→%d = %d\n", off.Parent, off.Child, off.Offset)
	}
	// Output:
	// status: done
	// order: [0 1 2]
	// offset 0→1 = 4
	// offset 0→2 = 7
}

func ExampleRun_overflow() {
	// With a synthetic 10-byte limit the big subtable pushes the small
	// one out of range; a priority bump and one distance sort fix it.
	g := graph.New()
	root := g.AddNode(4)
	big := g.AddNode(20)
	small := g.AddNode(3)
	_ = g.AddLink(root, small, graph.Width16)
	_ = g.AddLink(root, big, graph.Width16)

	res, err := repack.Run(g, repack.Options{
		Limits: repack.Limits{Short: 10, Wide: 1<<32 - 1},
	})
	if err != nil {
		panic(err)
	}

	fmt.Println("status:", res.Status)
	fmt.Println("iterations:", res.Iterations)
	fmt.Println("order:", res.Order)
	// Output:
	// status: done
	// iterations: 2
	// order: [0 2 1]
}
