package domain

// Node is a single entry of a forest. The same shape serves both
// representations: nested (Children populated, Parent ignored) and flat
// (Parent populated, Children empty).
//
// T is the caller's payload type, I the identity type. The library never
// inspects either beyond what the caller-supplied id functions provide, so
// both are fully opaque to the engine.
type Node[T, I any] struct {
	// ID is assigned by the caller's id function during Flatten, or carried
	// by the input in the flat representation. Unset until then.
	ID I `json:"id" yaml:"id" mapstructure:"id"`

	// Parent names the identity of the parent node. nil marks a root.
	// It is only meaningful in the flat representation; Flatten sets it and
	// Build consumes it.
	Parent *I `json:"parent" yaml:"parent,omitempty" mapstructure:"parent"`

	// Value is the caller-owned payload.
	Value T `json:"value,omitempty" yaml:"value,omitempty" mapstructure:"value"`

	// Children is the ordered list of child nodes. Absent or empty means
	// "no children materialized (yet)" - the lazy walker fills it on demand
	// when configured to do so.
	//
	// The type is spelled []*Node rather than Forest (the identical alias)
	// because a generic alias mentioned inside the type it aliases deadlocks
	// the compiler's importer when instantiated from another package.
	Children []*Node[T, I] `json:"children,omitempty" yaml:"children,omitempty" mapstructure:"children"`
}

// Forest is an ordered list of root nodes, each heading an independent tree.
// The transitive children relation is assumed acyclic with a single entry
// point per node; that precondition is documented, not guarded.
type Forest[T, I any] = []*Node[T, I]

// HasChildren reports whether the node has at least one materialized child.
func (n *Node[T, I]) HasChildren() bool {
	return n != nil && len(n.Children) > 0
}

// CountChildren returns the number of materialized children.
func (n *Node[T, I]) CountChildren() int {
	if n == nil {
		return 0
	}
	return len(n.Children)
}

// CountNodes returns the total number of nodes in the nested forest,
// the forest's roots included. No cycle protection is performed.
func CountNodes[T, I any](forest Forest[T, I]) int {
	total := 0
	for _, n := range forest {
		total += 1 + CountNodes(n.Children)
	}
	return total
}

// Walk visits every node of the nested forest in pre-order, invoking visit
// once per node. It is eager and cannot be cancelled mid-flight; use a walker
// when lazy stepping or subtree abandonment is needed. A panic raised by
// visit propagates to the caller immediately.
func Walk[T, I any](forest Forest[T, I], visit func(*Node[T, I])) {
	for _, n := range forest {
		visit(n)
		Walk(n.Children, visit)
	}
}
