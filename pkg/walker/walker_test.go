package walker_test

import (
	"context"
	"testing"

	"github.com/bcrumbs/booben-common-tree/pkg/domain"
	"github.com/bcrumbs/booben-common-tree/pkg/walker"
)

func node(id string, children ...*domain.Node[string, string]) *domain.Node[string, string] {
	return &domain.Node[string, string]{ID: id, Children: children}
}

// forestAB is the small running example used across these tests: [A{B,C}, D].
func forestAB() domain.Forest[string, string] {
	return domain.Forest[string, string]{
		node("A", node("B"), node("C")),
		node("D"),
	}
}

func forestDeep() domain.Forest[string, string] {
	return domain.Forest[string, string]{
		node("a",
			node("b", node("d"), node("e")),
			node("c")),
		node("f"),
	}
}

// drain exhausts the walker and returns the yielded ids.
func drain(t *testing.T, w *walker.Walker[string, string]) []string {
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

func assertSequence(t *testing.T, got, expected []string) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("Expected sequence %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("Expected sequence %v, got %v", expected, got)
		}
	}
}

func TestWalker_PreOrder(t *testing.T) {
	forest := forestDeep()

	// The walker's order must equal the eager visit's order.
	var eager []string
	domain.Walk(forest, func(n *domain.Node[string, string]) {
		eager = append(eager, n.ID)
	})

	got := drain(t, walker.New(forest))
	assertSequence(t, got, eager)
	assertSequence(t, got, []string{"a", "b", "d", "e", "c", "f"})
}

func TestWalker_DoneStaysDone(t *testing.T) {
	w := walker.New(forestAB())
	drain(t, w)

	for i := 0; i < 3; i++ {
		n, err := w.Next(context.Background())
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if n != nil {
			t.Fatalf("Expected exhausted walker to keep returning nil, got %q", n.ID)
		}
	}
}

func TestWalker_EmptyForest(t *testing.T) {
	w := walker.New(domain.Forest[string, string]{})
	if n, _ := w.Next(context.Background()); n != nil {
		t.Fatalf("Expected nil from empty forest, got %q", n.ID)
	}
}

func TestWalker_AbandonSubtree(t *testing.T) {
	w := walker.New(forestAB())

	n, _ := w.Next(context.Background())
	if n == nil || n.ID != "A" {
		t.Fatalf("Expected first node A, got %v", n)
	}
	w.AbandonSubtree()

	// B and C are skipped entirely; D is still yielded.
	assertSequence(t, drain(t, w), []string{"D"})
}

func TestWalker_AbandonDeep(t *testing.T) {
	w := walker.New(forestDeep())
	ctx := context.Background()

	var got []string
	for {
		n, _ := w.Next(ctx)
		if n == nil {
			break
		}
		got = append(got, n.ID)
		if n.ID == "b" {
			w.AbandonSubtree()
		}
	}

	// b's descendants (d, e) are skipped; the parent's later child c and
	// the later root f are yielded normally.
	assertSequence(t, got, []string{"a", "b", "c", "f"})
}

func TestWalker_AbandonOnLeafIsNoop(t *testing.T) {
	w := walker.New(forestAB())
	ctx := context.Background()

	var got []string
	for {
		n, _ := w.Next(ctx)
		if n == nil {
			break
		}
		got = append(got, n.ID)
		if n.ID == "B" {
			// B has no children; abandoning must not disturb the walk.
			w.AbandonSubtree()
			w.AbandonSubtree() // repeated calls have no additional effect
		}
	}

	assertSequence(t, got, []string{"A", "B", "C", "D"})
}

func TestWalker_Rewind(t *testing.T) {
	w := walker.New(forestDeep())

	first := drain(t, w)

	for i := 0; i < 3; i++ {
		w.Rewind()
		assertSequence(t, drain(t, w), first)
	}
}

func TestWalker_RewindMidTraversal(t *testing.T) {
	w := walker.New(forestDeep())
	ctx := context.Background()

	w.Next(ctx)
	w.Next(ctx)
	w.Rewind()

	assertSequence(t, drain(t, w), []string{"a", "b", "d", "e", "c", "f"})
}

func TestWalker_RewindAfterAbandon(t *testing.T) {
	w := walker.New(forestAB())
	ctx := context.Background()

	w.Next(ctx)
	w.AbandonSubtree()
	w.Rewind()

	// The pending abandon must not leak into the fresh pass.
	assertSequence(t, drain(t, w), []string{"A", "B", "C", "D"})
}

func TestWalker_Hooks(t *testing.T) {
	yields := 0
	abandons := 0
	w := walker.New(forestAB(), walker.WithHooks[string, string](domain.TraversalHooks[string, string]{
		OnNodeYield:      func(context.Context, *domain.Node[string, string]) { yields++ },
		OnSubtreeAbandon: func() { abandons++ },
	}))

	n, _ := w.Next(context.Background())
	if n.ID != "A" {
		t.Fatalf("Expected A, got %q", n.ID)
	}
	w.AbandonSubtree()
	drain(t, w)

	if yields != 2 {
		t.Errorf("Expected 2 yields (A, D), got %d", yields)
	}
	if abandons != 1 {
		t.Errorf("Expected 1 abandon, got %d", abandons)
	}
}
