package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/bcrumbs/booben-common-tree/pkg/domain"
	"github.com/bcrumbs/booben-common-tree/pkg/ports"
)

// Resolver implements ports.ChildResolver against a server speaking the API
// of NewHandler. It is the remote-source collaborator for LazyWalker: each
// children resolution becomes one GET request.
type Resolver[T any] struct {
	baseURL string
	client  *http.Client
}

var _ ports.ChildResolver[any, string] = (*Resolver[any])(nil)

// ClientOption configures a Resolver.
type ClientOption func(*clientOptions)

type clientOptions struct {
	httpClient *http.Client
}

// WithHTTPClient injects a custom http.Client (timeouts, transport, auth).
func WithHTTPClient(c *http.Client) ClientOption {
	return func(o *clientOptions) {
		if c != nil {
			o.httpClient = c
		}
	}
}

// NewResolver creates a resolver against the given base URL
// (e.g. "http://localhost:8080").
func NewResolver[T any](baseURL string, opts ...ClientOption) *Resolver[T] {
	o := clientOptions{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Resolver[T]{
		baseURL: baseURL,
		client:  o.httpClient,
	}
}

// Roots fetches the ordered root nodes, the starting point for a walk.
func (r *Resolver[T]) Roots(ctx context.Context) (domain.Forest[T, string], error) {
	return r.getNodes(ctx, r.baseURL+"/roots")
}

// ResolveChildren implements ports.ChildResolver with one GET per node.
func (r *Resolver[T]) ResolveChildren(ctx context.Context, node *domain.Node[T, string]) (domain.Forest[T, string], error) {
	endpoint := fmt.Sprintf("%s/nodes/%s/children", r.baseURL, url.PathEscape(node.ID))
	return r.getNodes(ctx, endpoint)
}

func (r *Resolver[T]) getNodes(ctx context.Context, endpoint string) (domain.Forest[T, string], error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fallthrough to decode
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", domain.ErrNodeNotFound, endpoint)
	default:
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint)
	}

	var nodes domain.Forest[T, string]
	if err := json.NewDecoder(resp.Body).Decode(&nodes); err != nil {
		return nil, fmt.Errorf("failed to decode nodes: %w", err)
	}
	return nodes, nil
}
