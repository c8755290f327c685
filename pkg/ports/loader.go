package ports

import (
	"context"

	"github.com/bcrumbs/booben-common-tree/pkg/domain"
)

// ForestLoader defines how a nested forest is retrieved from a backing
// source (file, memory, remote). This decouples the CLI and servers from the
// storage layer.
type ForestLoader[T, I any] interface {
	// LoadForest returns the ordered list of root nodes.
	LoadForest(ctx context.Context) (domain.Forest[T, I], error)
}
