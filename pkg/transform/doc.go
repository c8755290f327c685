/*
Package transform converts forests between their nested and flat
representations.

Flatten walks a nested forest in pre-order, assigns identities, records
parent references and returns a single flat sequence. Build performs the
inverse: it reconstructs a nested forest from a flat sequence in a single
pass, regardless of input order.

Both functions mutate the caller's nodes in place (see the function docs);
callers holding references to nodes see the updated values. The two are
mutual inverses up to child order provided the caller's id functions uniquely
identify every node.
*/
package transform
