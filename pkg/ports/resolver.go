package ports

import (
	"context"

	"github.com/bcrumbs/booben-common-tree/pkg/domain"
)

// ChildResolver supplies a node's children on demand. This is the external
// collaborator of the lazy walker: implementations may read from memory, a
// database, or a remote service. The walker guarantees that at most one
// ResolveChildren call is in flight per walker instance.
type ChildResolver[T, I any] interface {
	// ResolveChildren returns the ordered children of node, or an empty
	// slice (or nil) when it is a leaf. An error aborts the current Next
	// call; the walker state is left untouched so the caller may retry.
	ResolveChildren(ctx context.Context, node *domain.Node[T, I]) (domain.Forest[T, I], error)
}

// ChildResolverFunc adapts a plain function to the ChildResolver interface.
type ChildResolverFunc[T, I any] func(ctx context.Context, node *domain.Node[T, I]) (domain.Forest[T, I], error)

// ResolveChildren implements ChildResolver.
func (f ChildResolverFunc[T, I]) ResolveChildren(ctx context.Context, node *domain.Node[T, I]) (domain.Forest[T, I], error) {
	return f(ctx, node)
}
