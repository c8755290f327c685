package transform

import (
	"github.com/bcrumbs/booben-common-tree/pkg/domain"
)

// Flatten converts a nested forest into its flat representation.
//
// Every node is visited exactly once in pre-order. For each node, idFn
// produces its identity, each child records the node's identity as its
// Parent, and the node is appended to the flat output with its Children
// cleared. Roots keep a nil Parent.
//
// The conversion mutates the input nodes in place; the returned slice
// contains the same node pointers the caller already holds. idFn is trusted
// to be deterministic and to produce distinct identities - no duplicate
// detection is performed.
func Flatten[T, I any](forest domain.Forest[T, I], idFn func(*domain.Node[T, I]) I) domain.Forest[T, I] {
	flat := make(domain.Forest[T, I], 0, domain.CountNodes(forest))

	var visit func(nodes domain.Forest[T, I], parent *I)
	visit = func(nodes domain.Forest[T, I], parent *I) {
		for _, n := range nodes {
			n.ID = idFn(n)
			n.Parent = parent

			children := n.Children
			n.Children = nil
			flat = append(flat, n)

			id := n.ID
			visit(children, &id)
		}
	}
	visit(forest, nil)

	return flat
}

// Build reconstructs a nested forest from a flat sequence.
//
// The input may arrive in any order: a child seen before its parent is
// parked in a pending list keyed by the parent's stringified identity and
// adopted once the parent appears. idToString must be injective over the
// identities actually present.
//
// A node whose declared parent never appears in the input is an orphan: it
// is silently excluded from the returned root list, its own subtree intact
// but unreachable. This mirrors the historical behavior and is covered by
// tests; it is not treated as an error.
//
// Nodes are mutated in place (each receives a fresh Children list); child
// order equals input order restricted to each parent's children.
func Build[T, I any](flat domain.Forest[T, I], idToString func(I) string) domain.Forest[T, I] {
	roots := make(domain.Forest[T, I], 0)
	seen := make(map[string]*domain.Node[T, I], len(flat))
	pending := make(map[string]domain.Forest[T, I])

	for _, n := range flat {
		key := idToString(n.ID)

		// Adopt any children that arrived before this node.
		n.Children = pending[key]
		if n.Children == nil {
			n.Children = make(domain.Forest[T, I], 0)
		}
		delete(pending, key)
		seen[key] = n

		if n.Parent == nil {
			roots = append(roots, n)
			continue
		}

		parentKey := idToString(*n.Parent)
		if parent, ok := seen[parentKey]; ok {
			parent.Children = append(parent.Children, n)
		} else {
			pending[parentKey] = append(pending[parentKey], n)
		}
	}

	return roots
}
