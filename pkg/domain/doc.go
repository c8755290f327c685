/*
Package domain contains the core data model shared by every part of the library.

It defines the Node shape that both representations of a forest are built from:
the nested representation, where a node carries an ordered list of child nodes,
and the flat representation, where a node carries a reference to its parent's
identity instead. The conversion and traversal packages (transform, walker) and
all adapters operate on this single model.

This package is kept pure and free of external dependencies like I/O or
persistence, following Hexagonal Architecture principles.

# Key Entities

  - Node: a single entry of a forest, generic over its payload and identity types.
  - Forest: an ordered list of root nodes, each heading an independent tree.
  - TraversalHooks: optional observability callbacks fired by the walkers.
*/
package domain
