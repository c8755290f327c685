package memory

import (
	"fmt"

	"github.com/bcrumbs/booben-common-tree/pkg/domain"
)

// Index is an id-keyed view over a nested forest with string identities.
// The HTTP and MCP servers use it to answer by-id lookups without walking
// the forest per request.
//
// The index is built once and read afterwards; it does not track later
// mutations of the forest and provides no locking.
type Index[T any] struct {
	roots domain.Forest[T, string]
	nodes map[string]*domain.Node[T, string]
}

// NewIndex builds an index over the given forest. Every node must already
// carry a unique non-empty ID; a duplicate or missing id is a construction
// error.
func NewIndex[T any](roots domain.Forest[T, string]) (*Index[T], error) {
	idx := &Index[T]{
		roots: roots,
		nodes: make(map[string]*domain.Node[T, string]),
	}

	var err error
	domain.Walk(roots, func(n *domain.Node[T, string]) {
		if err != nil {
			return
		}
		if n.ID == "" {
			err = fmt.Errorf("node missing ID")
			return
		}
		if _, dup := idx.nodes[n.ID]; dup {
			err = fmt.Errorf("duplicate node ID: %s", n.ID)
			return
		}
		idx.nodes[n.ID] = n
	})
	if err != nil {
		return nil, err
	}
	return idx, nil
}

// Roots returns the forest's root nodes in their original order.
func (idx *Index[T]) Roots() domain.Forest[T, string] {
	return idx.roots
}

// Node retrieves a node by id. Returns domain.ErrNodeNotFound when the id is
// unknown.
func (idx *Index[T]) Node(id string) (*domain.Node[T, string], error) {
	n, ok := idx.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNodeNotFound, id)
	}
	return n, nil
}

// Children returns the ordered children of the node with the given id.
func (idx *Index[T]) Children(id string) (domain.Forest[T, string], error) {
	n, err := idx.Node(id)
	if err != nil {
		return nil, err
	}
	return n.Children, nil
}

// Count returns the total number of indexed nodes.
func (idx *Index[T]) Count() int {
	return len(idx.nodes)
}
