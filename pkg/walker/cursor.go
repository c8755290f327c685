package walker

import (
	"github.com/bcrumbs/booben-common-tree/pkg/domain"
)

// frame is one entry of the traversal stack: a sibling sequence paired with
// the index of the next unvisited sibling.
type frame[T, I any] struct {
	nodes domain.Forest[T, I]
	next  int
}

// cursor holds the traversal state shared by both walker variants: the
// original roots, the frame stack, and the abandon/push flags. It is
// composed, not inherited - each variant embeds it and layers its own
// children handling on top.
type cursor[T, I any] struct {
	roots domain.Forest[T, I]
	stack []frame[T, I]

	// abandoned is set by AbandonSubtree and consumed by the next step.
	abandoned bool
	// pushed records whether the most recent step pushed a child frame for
	// the node it yielded.
	pushed bool
}

// reset restores the initial state over the given roots.
func (c *cursor[T, I]) reset(roots domain.Forest[T, I]) {
	c.stack = append(c.stack[:0], frame[T, I]{nodes: roots})
	c.abandoned = false
	c.pushed = true
}

// step advances to the next node in pre-order and returns it, or nil when
// the traversal is exhausted. It honors a pending abandon by dropping the
// child frame pushed for the previous node. Pushing the yielded node's own
// child frame is the variant's job (via push), because the lazy variant must
// resolve children first.
func (c *cursor[T, I]) step() *domain.Node[T, I] {
	if c.abandoned {
		if c.pushed && len(c.stack) > 0 {
			c.stack = c.stack[:len(c.stack)-1]
		}
		c.abandoned = false
	}

	for len(c.stack) > 0 {
		top := &c.stack[len(c.stack)-1]
		if top.next < len(top.nodes) {
			node := top.nodes[top.next]
			top.next++
			return node
		}
		// Exhausted sibling run; drop the frame and continue one level up.
		c.stack = c.stack[:len(c.stack)-1]
	}

	return nil
}

// push records the children of the node just yielded by step. A non-empty
// list becomes the new top frame, so the next step descends into it.
func (c *cursor[T, I]) push(children domain.Forest[T, I]) {
	if len(children) > 0 {
		c.stack = append(c.stack, frame[T, I]{nodes: children})
		c.pushed = true
		return
	}
	c.pushed = false
}

// abandon flags the current subtree for disposal on the next step.
func (c *cursor[T, I]) abandon() {
	c.abandoned = true
}

// snapshot captures the full cursor state so a failed resolution can roll
// back to the exact pre-call state, making Next a safe retry point.
type snapshot[T, I any] struct {
	stack     []frame[T, I]
	abandoned bool
	pushed    bool
}

func (c *cursor[T, I]) snapshot() snapshot[T, I] {
	return snapshot[T, I]{
		stack:     append([]frame[T, I](nil), c.stack...),
		abandoned: c.abandoned,
		pushed:    c.pushed,
	}
}

func (c *cursor[T, I]) restore(s snapshot[T, I]) {
	c.stack = s.stack
	c.abandoned = s.abandoned
	c.pushed = s.pushed
}
