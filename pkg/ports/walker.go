package ports

import (
	"context"

	"github.com/bcrumbs/booben-common-tree/pkg/domain"
)

// Walker is the capability contract shared by the traversal variants.
// There is no abstract base type; each variant composes the shared cursor
// state and implements this interface directly.
//
// A Walker must not be driven concurrently by two callers. It provides no
// internal locking.
type Walker[T, I any] interface {
	// Next yields the next node in pre-order, or (nil, nil) once the
	// traversal is exhausted. Exhaustion is not terminal for the instance:
	// Rewind restarts it. The synchronous variant never returns an error
	// and ignores ctx; the lazy variant suspends on children resolution
	// and surfaces resolver failures.
	Next(ctx context.Context) (*domain.Node[T, I], error)

	// AbandonSubtree discards the remainder of the subtree rooted at the
	// most recently yielded node. The next call to Next continues with
	// that node's following sibling. Calling it after a childless node is
	// a no-op.
	AbandonSubtree()

	// Rewind resets the traversal to the root list captured at
	// construction time.
	Rewind()
}
