/*
Package tree converts rooted forests between their nested and flat
representations and traverses them lazily, one node at a time.

A forest is an ordered list of root nodes; each node may carry an ordered
list of children (the nested representation) or a reference to its parent's
identity (the flat, order-independent representation). The library provides
the conversions between the two, a handful of derived helpers, and two
depth-first pre-order walkers: a synchronous one over materialized forests
and a lazy one whose children are resolved on demand, possibly from a remote
source.

# Conversions

Flatten assigns ids and turns a nested forest into a single flat slice in
pre-order; Build reconstructs the nesting from a flat slice in one pass,
tolerating arbitrary input order:

	flat := tree.Flatten(forest, func(n *tree.Node[string, int]) int { next++; return next })
	roots := tree.Build(flat, strconv.Itoa)

Both mutate the caller's nodes in place and are mutual inverses up to child
order as long as the id functions uniquely identify every node.

# Traversal

Walkers yield nodes in pre-order and support abandoning the remainder of the
current subtree and rewinding to the first root:

	w := tree.NewWalker(forest)
	for {
		node, _ := w.Next(ctx)
		if node == nil {
			break
		}
		if skip(node) {
			w.AbandonSubtree() // none of node's descendants are yielded
		}
	}

The lazy variant fetches children through a resolver instead of reading them
off the node, so the forest need not exist in memory:

	w, err := tree.NewLazyWalker(roots, store) // store implements ports.ChildResolver
	node, err := w.Next(ctx)                   // suspends on one resolution call

Adapters under pkg/adapters back the resolver with memory, Redis, an HTTP
API, or documents on disk; pkg/observability instruments traversals with
Prometheus.
*/
package tree
