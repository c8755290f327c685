/*
Package walker implements lazy, pre-order, depth-first traversal of a forest.

Two variants share one state machine (an explicit stack of sibling frames):

  - Walker traverses an already materialized nested forest. Next never
    suspends and never fails.
  - LazyWalker obtains each node's children from an injected
    ports.ChildResolver, so the forest need not exist up front. Next suspends
    exactly once per yielded node, on that resolution call.

Both support abandoning the remainder of the current subtree mid-traversal
(AbandonSubtree) and restarting from the first root (Rewind). Node yield
order is deterministic pre-order: a node is returned strictly before any of
its descendants and before any later sibling's subtree.

A walker instance owns its stack exclusively and must not be driven by two
goroutines at once. The root list and nodes are shared with the caller by
reference; mutating a node's children while a traversal is in flight is
undefined behavior.
*/
package walker
