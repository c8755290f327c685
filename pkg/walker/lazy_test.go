package walker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bcrumbs/booben-common-tree/pkg/adapters/memory"
	"github.com/bcrumbs/booben-common-tree/pkg/domain"
	"github.com/bcrumbs/booben-common-tree/pkg/ports"
	"github.com/bcrumbs/booben-common-tree/pkg/walker"
)

func drainLazy(t *testing.T, w *walker.LazyWalker[string, string]) []string {
	t.Helper()
	var ids []string
	for {
		n, err := w.Next(context.Background())
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if n == nil {
			return ids
		}
		ids = append(ids, n.ID)
	}
}

func TestLazyWalker_NilResolver(t *testing.T) {
	_, err := walker.NewLazy[string, string](forestAB(), nil)
	if !errors.Is(err, domain.ErrNilResolver) {
		t.Fatalf("Expected ErrNilResolver, got %v", err)
	}
}

func TestLazyWalker_MatchesSyncSequence(t *testing.T) {
	// A resolver that returns the already-known children must reproduce
	// the synchronous walker's sequence exactly.
	forest := forestDeep()
	expected := drain(t, walker.New(forest))

	w, err := walker.NewLazy(forest, memory.NewResolver[string, string]())
	if err != nil {
		t.Fatalf("NewLazy failed: %v", err)
	}
	assertSequence(t, drainLazy(t, w), expected)
}

func TestLazyWalker_AbandonSubtree(t *testing.T) {
	w, err := walker.NewLazy(forestAB(), memory.NewResolver[string, string]())
	if err != nil {
		t.Fatalf("NewLazy failed: %v", err)
	}

	n, err := w.Next(context.Background())
	if err != nil || n == nil || n.ID != "A" {
		t.Fatalf("Expected first node A, got %v (err %v)", n, err)
	}
	w.AbandonSubtree()

	assertSequence(t, drainLazy(t, w), []string{"D"})
}

func TestLazyWalker_SaveChildren(t *testing.T) {
	// The resolver serves children from a side table; the nodes themselves
	// start out bare.
	children := map[string]domain.Forest[string, string]{
		"A": {node("B"), node("C")},
	}
	resolver := ports.ChildResolverFunc[string, string](
		func(_ context.Context, n *domain.Node[string, string]) (domain.Forest[string, string], error) {
			return children[n.ID], nil
		})

	roots := domain.Forest[string, string]{node("A"), node("D")}

	t.Run("Disabled By Default", func(t *testing.T) {
		w, err := walker.NewLazy(roots, resolver)
		if err != nil {
			t.Fatalf("NewLazy failed: %v", err)
		}
		assertSequence(t, drainLazy(t, w), []string{"A", "B", "C", "D"})

		if roots[0].HasChildren() {
			t.Error("Expected resolved children NOT to be written back")
		}
	})

	t.Run("Enabled", func(t *testing.T) {
		w, err := walker.NewLazy(roots, resolver, walker.WithSaveChildren[string, string]())
		if err != nil {
			t.Fatalf("NewLazy failed: %v", err)
		}
		assertSequence(t, drainLazy(t, w), []string{"A", "B", "C", "D"})

		if roots[0].CountChildren() != 2 {
			t.Errorf("Expected 2 children written back onto A, got %d", roots[0].CountChildren())
		}
	})
}

// flakyResolver fails the resolution of one node id exactly once.
type flakyResolver struct {
	failID string
	failed bool
}

func (r *flakyResolver) ResolveChildren(_ context.Context, n *domain.Node[string, string]) (domain.Forest[string, string], error) {
	if n.ID == r.failID && !r.failed {
		r.failed = true
		return nil, errors.New("backend unavailable")
	}
	return n.Children, nil
}

func TestLazyWalker_FailureIsRetryable(t *testing.T) {
	w, err := walker.NewLazy(forestDeep(), &flakyResolver{failID: "b"})
	if err != nil {
		t.Fatalf("NewLazy failed: %v", err)
	}
	ctx := context.Background()

	n, err := w.Next(ctx)
	if err != nil || n.ID != "a" {
		t.Fatalf("Expected a, got %v (err %v)", n, err)
	}

	// The resolution of b fails once; the walker state must be untouched,
	// so the retry yields b and the rest of the sequence is unaffected.
	if _, err := w.Next(ctx); err == nil {
		t.Fatal("Expected a resolution error")
	}

	n, err = w.Next(ctx)
	if err != nil || n == nil || n.ID != "b" {
		t.Fatalf("Expected retry to yield b, got %v (err %v)", n, err)
	}

	assertSequence(t, drainLazy(t, w), []string{"d", "e", "c", "f"})
}

func TestLazyWalker_FailureDuringAbandon(t *testing.T) {
	// An abandon pending at the failed call must still be honored by the
	// retry, not consumed by the failure.
	resolver := &flakyResolver{failID: "c"}
	w, err := walker.NewLazy(forestDeep(), resolver)
	if err != nil {
		t.Fatalf("NewLazy failed: %v", err)
	}
	ctx := context.Background()

	w.Next(ctx) // a
	w.Next(ctx) // b
	w.AbandonSubtree()

	if _, err := w.Next(ctx); err == nil {
		t.Fatal("Expected a resolution error")
	}

	n, err := w.Next(ctx)
	if err != nil || n == nil || n.ID != "c" {
		t.Fatalf("Expected retry to skip b's subtree and yield c, got %v (err %v)", n, err)
	}
}

// serialResolver asserts that resolutions never overlap.
type serialResolver struct {
	inFlight int
	maxSeen  int
}

func (r *serialResolver) ResolveChildren(_ context.Context, n *domain.Node[string, string]) (domain.Forest[string, string], error) {
	r.inFlight++
	if r.inFlight > r.maxSeen {
		r.maxSeen = r.inFlight
	}
	defer func() { r.inFlight-- }()
	return n.Children, nil
}

func TestLazyWalker_SequentialResolution(t *testing.T) {
	resolver := &serialResolver{}
	w, err := walker.NewLazy(forestDeep(), resolver)
	if err != nil {
		t.Fatalf("NewLazy failed: %v", err)
	}
	drainLazy(t, w)

	if resolver.maxSeen != 1 {
		t.Errorf("Expected at most one resolution in flight, saw %d", resolver.maxSeen)
	}
}

func TestLazyWalker_Rewind(t *testing.T) {
	w, err := walker.NewLazy(forestDeep(), memory.NewResolver[string, string]())
	if err != nil {
		t.Fatalf("NewLazy failed: %v", err)
	}

	first := drainLazy(t, w)
	w.Rewind()
	assertSequence(t, drainLazy(t, w), first)
}

func TestLazyWalker_ResolveHook(t *testing.T) {
	resolves := 0
	failures := 0
	w, err := walker.NewLazy(forestAB(), memory.NewResolver[string, string](),
		walker.WithHooks[string, string](domain.TraversalHooks[string, string]{
			OnResolve: func(_ context.Context, _ *domain.Node[string, string], _ time.Duration, err error) {
				resolves++
				if err != nil {
					failures++
				}
			},
		}))
	if err != nil {
		t.Fatalf("NewLazy failed: %v", err)
	}
	drainLazy(t, w)

	if resolves != 4 {
		t.Errorf("Expected 4 resolutions (one per node), got %d", resolves)
	}
	if failures != 0 {
		t.Errorf("Expected no failures, got %d", failures)
	}
}
