package walker

import (
	"context"
	"fmt"
	"time"

	"github.com/bcrumbs/booben-common-tree/pkg/domain"
	"github.com/bcrumbs/booben-common-tree/pkg/ports"
)

// LazyWalker traverses a forest whose children are not assumed present on
// the nodes: each time a node is yielded, its children are fetched through
// the injected ChildResolver. This allows walking forests that live behind a
// database or a remote API without materializing them up front.
//
// Exactly one resolution call is in flight at a time per walker instance;
// the walker is a single logical thread of control that suspends at each
// resolution point and resumes with its result.
type LazyWalker[T, I any] struct {
	cursor[T, I]
	resolver ports.ChildResolver[T, I]
	cfg      config[T, I]
}

var _ ports.Walker[any, string] = (*LazyWalker[any, string])(nil)

// NewLazy creates a lazy walker over the given roots, resolving children
// through resolver. Returns domain.ErrNilResolver if resolver is nil.
func NewLazy[T, I any](roots domain.Forest[T, I], resolver ports.ChildResolver[T, I], opts ...Option[T, I]) (*LazyWalker[T, I], error) {
	if resolver == nil {
		return nil, domain.ErrNilResolver
	}

	w := &LazyWalker[T, I]{
		resolver: resolver,
		cfg:      newConfig(opts...),
	}
	w.roots = roots
	w.reset(roots)
	return w, nil
}

// Next yields the next node in pre-order, suspending once on the resolution
// of that node's children. It returns (nil, nil) when the traversal is
// exhausted.
//
// If the resolver fails, the error is returned and the walker state is left
// exactly as it was before the call, so Next may be retried; the retry will
// re-resolve the same node.
func (w *LazyWalker[T, I]) Next(ctx context.Context) (*domain.Node[T, I], error) {
	saved := w.snapshot()

	node := w.step()
	if node == nil {
		return nil, nil
	}

	start := time.Now()
	children, err := w.resolver.ResolveChildren(ctx, node)
	if w.cfg.hooks.OnResolve != nil {
		w.cfg.hooks.OnResolve(ctx, node, time.Since(start), err)
	}
	if err != nil {
		w.restore(saved)
		w.cfg.logger.Debug("children resolution failed", "err", err)
		return nil, fmt.Errorf("resolve children: %w", err)
	}

	if w.cfg.saveChildren {
		node.Children = children
	}
	w.push(children)

	if w.cfg.hooks.OnNodeYield != nil {
		w.cfg.hooks.OnNodeYield(ctx, node)
	}
	return node, nil
}

// AbandonSubtree discards the remainder of the subtree rooted at the node
// most recently returned by Next. No-op after a childless node.
func (w *LazyWalker[T, I]) AbandonSubtree() {
	w.abandon()
	if w.cfg.hooks.OnSubtreeAbandon != nil {
		w.cfg.hooks.OnSubtreeAbandon()
	}
}

// Rewind resets the traversal to the root list captured at construction.
// Children resolved with WithSaveChildren stay on the nodes; they will still
// be re-resolved on the next pass, per the resolver-always contract.
func (w *LazyWalker[T, I]) Rewind() {
	w.reset(w.roots)
}
