package tree

import (
	"github.com/bcrumbs/booben-common-tree/pkg/domain"
	"github.com/bcrumbs/booben-common-tree/pkg/ports"
	"github.com/bcrumbs/booben-common-tree/pkg/transform"
	"github.com/bcrumbs/booben-common-tree/pkg/walker"
)

// Node is a single entry of a forest. See domain.Node.
type Node[T, I any] = domain.Node[T, I]

// Forest is an ordered list of root nodes.
type Forest[T, I any] = domain.Forest[T, I]

// Walker is the shared traversal contract. See ports.Walker.
type Walker[T, I any] = ports.Walker[T, I]

// ChildResolver supplies a node's children on demand. See ports.ChildResolver.
type ChildResolver[T, I any] = ports.ChildResolver[T, I]

// ChildResolverFunc adapts a plain function to ChildResolver.
type ChildResolverFunc[T, I any] = ports.ChildResolverFunc[T, I]

// Option configures a walker. See the walker package for the available
// options (WithSaveChildren, WithHooks, WithLogger).
type Option[T, I any] = walker.Option[T, I]

// CountNodes returns the total node count of the nested forest.
func CountNodes[T, I any](forest Forest[T, I]) int {
	return domain.CountNodes(forest)
}

// WalkTree eagerly visits every node of the nested forest in pre-order.
func WalkTree[T, I any](forest Forest[T, I], visit func(*Node[T, I])) {
	domain.Walk(forest, visit)
}

// Flatten converts a nested forest into its flat representation, assigning
// ids with idFn. See transform.Flatten for the mutation contract.
func Flatten[T, I any](forest Forest[T, I], idFn func(*Node[T, I]) I) Forest[T, I] {
	return transform.Flatten(forest, idFn)
}

// Build reconstructs a nested forest from a flat sequence. See
// transform.Build for ordering and orphan semantics.
func Build[T, I any](flat Forest[T, I], idToString func(I) string) Forest[T, I] {
	return transform.Build(flat, idToString)
}

// NewWalker creates a synchronous pre-order walker over the forest.
func NewWalker[T, I any](roots Forest[T, I], opts ...Option[T, I]) *walker.Walker[T, I] {
	return walker.New(roots, opts...)
}

// NewLazyWalker creates a pre-order walker that resolves children through
// resolver instead of reading them off the nodes.
func NewLazyWalker[T, I any](roots Forest[T, I], resolver ChildResolver[T, I], opts ...Option[T, I]) (*walker.LazyWalker[T, I], error) {
	return walker.NewLazy(roots, resolver, opts...)
}
