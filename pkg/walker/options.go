package walker

import (
	"log/slog"

	"github.com/bcrumbs/booben-common-tree/internal/logging"
	"github.com/bcrumbs/booben-common-tree/pkg/domain"
)

// config carries the options shared by both walker variants.
type config[T, I any] struct {
	saveChildren bool
	hooks        domain.TraversalHooks[T, I]
	logger       *slog.Logger
}

func newConfig[T, I any](opts ...Option[T, I]) config[T, I] {
	cfg := config[T, I]{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures a walker. Options are applied at construction time.
type Option[T, I any] func(*config[T, I])

// WithSaveChildren makes the lazy walker write resolved children back onto
// the node's Children field for later reuse or inspection by the caller.
// Default off: resolved children only drive the traversal and are not
// retained. The synchronous walker ignores this option.
func WithSaveChildren[T, I any]() Option[T, I] {
	return func(cfg *config[T, I]) {
		cfg.saveChildren = true
	}
}

// WithHooks registers observability callbacks.
func WithHooks[T, I any](hooks domain.TraversalHooks[T, I]) Option[T, I] {
	return func(cfg *config[T, I]) {
		cfg.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the walker.
func WithLogger[T, I any](logger *slog.Logger) Option[T, I] {
	return func(cfg *config[T, I]) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
