/*
Package ports defines the interfaces (contracts) between the traversal core
and the outside world.

Following Hexagonal Architecture, the walkers depend only on these small
interfaces; the adapters package provides concrete implementations backed by
memory, Redis, HTTP, or files.
*/
package ports
