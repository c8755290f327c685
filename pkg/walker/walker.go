package walker

import (
	"context"

	"github.com/bcrumbs/booben-common-tree/pkg/domain"
	"github.com/bcrumbs/booben-common-tree/pkg/ports"
)

// Walker traverses an already materialized nested forest, one node per call.
// The zero value is not usable; construct with New.
type Walker[T, I any] struct {
	cursor[T, I]
	cfg config[T, I]
}

var _ ports.Walker[any, string] = (*Walker[any, string])(nil)

// New creates a synchronous walker over the given roots. The root list is
// captured by reference and reused by Rewind.
func New[T, I any](roots domain.Forest[T, I], opts ...Option[T, I]) *Walker[T, I] {
	w := &Walker[T, I]{cfg: newConfig(opts...)}
	w.roots = roots
	w.reset(roots)
	return w
}

// Next returns the next node in pre-order, or (nil, nil) once the traversal
// is exhausted. It never suspends and never fails; ctx is accepted only to
// satisfy the shared Walker contract.
func (w *Walker[T, I]) Next(ctx context.Context) (*domain.Node[T, I], error) {
	node := w.step()
	if node == nil {
		return nil, nil
	}

	w.push(node.Children)

	if w.cfg.hooks.OnNodeYield != nil {
		w.cfg.hooks.OnNodeYield(ctx, node)
	}
	return node, nil
}

// AbandonSubtree discards the remainder of the subtree rooted at the node
// most recently returned by Next. Meaningful only right after a Next that
// yielded a node with children; otherwise a no-op. Calling it twice for the
// same node has no additional effect.
func (w *Walker[T, I]) AbandonSubtree() {
	w.abandon()
	if w.cfg.hooks.OnSubtreeAbandon != nil {
		w.cfg.hooks.OnSubtreeAbandon()
	}
}

// Rewind resets the traversal to the root list captured at construction.
func (w *Walker[T, I]) Rewind() {
	w.reset(w.roots)
}
