// Package memory provides in-memory implementations of the library's ports.
// It is the default backend for tests, embedded scenarios, and the servers
// that expose a forest over HTTP or MCP.
package memory

import (
	"context"

	"github.com/bcrumbs/booben-common-tree/pkg/domain"
	"github.com/bcrumbs/booben-common-tree/pkg/ports"
)

// Resolver implements ports.ChildResolver over nodes whose children are
// already materialized in memory: it simply returns the node's Children.
// Driving a LazyWalker with it reproduces the synchronous walker's sequence
// exactly, which makes it useful for tests and for mixing lazy and eager
// sources behind one interface.
type Resolver[T, I any] struct{}

var _ ports.ChildResolver[any, string] = Resolver[any, string]{}

// NewResolver creates an in-memory child resolver.
func NewResolver[T, I any]() Resolver[T, I] {
	return Resolver[T, I]{}
}

// ResolveChildren returns the node's in-memory children.
func (Resolver[T, I]) ResolveChildren(ctx context.Context, node *domain.Node[T, I]) (domain.Forest[T, I], error) {
	return node.Children, nil
}
