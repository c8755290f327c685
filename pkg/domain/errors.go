package domain

import "errors"

// ErrNodeNotFound is returned when an adapter cannot locate a node by id.
var ErrNodeNotFound = errors.New("node not found")

// ErrNilResolver is returned when a lazy walker is constructed without a
// child resolver. This is a programming-contract error on the caller's side.
var ErrNilResolver = errors.New("child resolver is required")
