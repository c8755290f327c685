package tree_test

import (
	"context"
	"fmt"
	"strconv"

	tree "github.com/bcrumbs/booben-common-tree"
)

// ExampleNewWalker demonstrates stepping through a forest one node at a time
// and abandoning a subtree mid-traversal.
func ExampleNewWalker() {
	forest := tree.Forest[string, string]{
		{ID: "A", Children: tree.Forest[string, string]{
			{ID: "B"},
			{ID: "C"},
		}},
		{ID: "D"},
	}

	ctx := context.Background()

	w := tree.NewWalker(forest)
	for {
		node, _ := w.Next(ctx)
		if node == nil {
			break
		}
		fmt.Println(node.ID)
	}

	// Skip A's subtree this time: B and C are never yielded.
	w.Rewind()
	for {
		node, _ := w.Next(ctx)
		if node == nil {
			break
		}
		fmt.Println(node.ID)
		if node.ID == "A" {
			w.AbandonSubtree()
		}
	}

	// Output:
	// A
	// B
	// C
	// D
	// A
	// D
}

// ExampleBuild demonstrates reconstructing a nested forest from a flat
// sequence arriving in arbitrary order.
func ExampleBuild() {
	parent := func(id int) *int { return &id }
	flat := tree.Forest[string, int]{
		{ID: 2, Parent: parent(1), Value: "child"},
		{ID: 1, Value: "root"},
		{ID: 3, Parent: parent(99), Value: "orphan"}, // parent 99 never appears
	}

	roots := tree.Build(flat, strconv.Itoa)

	for _, root := range roots {
		fmt.Printf("%s has %d child(ren)\n", root.Value, root.CountChildren())
	}
	fmt.Println("total:", tree.CountNodes(roots))

	// Output:
	// root has 1 child(ren)
	// total: 2
}

// ExampleFlatten demonstrates the nested-to-flat conversion.
func ExampleFlatten() {
	forest := tree.Forest[string, int]{
		{Value: "a", Children: tree.Forest[string, int]{
			{Value: "b"},
		}},
		{Value: "c"},
	}

	next := 0
	flat := tree.Flatten(forest, func(*tree.Node[string, int]) int {
		next++
		return next
	})

	for _, n := range flat {
		if n.Parent != nil {
			fmt.Printf("%d %s (parent %d)\n", n.ID, n.Value, *n.Parent)
			continue
		}
		fmt.Printf("%d %s (root)\n", n.ID, n.Value)
	}

	// Output:
	// 1 a (root)
	// 2 b (parent 1)
	// 3 c (root)
}
