package domain

import (
	"context"
	"time"
)

// TraversalHooks defines callbacks for walker observability. All fields are
// optional; a nil field is simply skipped. Hooks run synchronously on the
// walker's goroutine, so they should return quickly.
type TraversalHooks[T, I any] struct {
	// OnNodeYield fires once for every node a walker returns from Next.
	OnNodeYield func(context.Context, *Node[T, I])

	// OnSubtreeAbandon fires when AbandonSubtree is called.
	OnSubtreeAbandon func()

	// OnResolve fires after every children-resolution attempt of the lazy
	// walker, successful or not.
	OnResolve func(ctx context.Context, node *Node[T, I], elapsed time.Duration, err error)
}
