// Package redis persists a forest in Redis in its flat representation and
// resolves children lazily from it, making Redis a backend for LazyWalker.
//
// Layout: each node's JSON lives at <prefix>node:<id>, the ordered list of a
// node's child ids at <prefix>children:<id>, and the ordered root ids at
// <prefix>roots.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/bcrumbs/booben-common-tree/pkg/domain"
	"github.com/bcrumbs/booben-common-tree/pkg/ports"
)

// Store reads and writes forests with string identities against Redis.
// It implements ports.ChildResolver, so it can drive a LazyWalker directly.
type Store[T any] struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

var _ ports.ChildResolver[any, string] = (*Store[any])(nil)

// Option configures a Store.
type Option func(*options)

type options struct {
	prefix string
	ttl    time.Duration
}

// WithPrefix sets the key prefix for all forest keys.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithTTL sets the expiration for stored nodes.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) {
		o.ttl = ttl
	}
}

// New creates a new Redis store with options.
func New[T any](address, password string, db int, opts ...Option) *Store[T] {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient[T](rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient[T any](client *backend.Client, opts ...Option) *Store[T] {
	o := options{
		prefix: "tree:",
		ttl:    0, // No expiration by default
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Store[T]{
		client: client,
		prefix: o.prefix,
		ttl:    o.ttl,
	}
}

func (s *Store[T]) nodeKey(id string) string {
	return s.prefix + "node:" + id
}

func (s *Store[T]) childrenKey(id string) string {
	return s.prefix + "children:" + id
}

func (s *Store[T]) rootsKey() string {
	return s.prefix + "roots"
}

// Save persists a nested forest in flat form. Every node must already carry
// a unique non-empty ID (assign them with transform.Flatten or by hand
// before saving). Existing keys under the same prefix are overwritten.
func (s *Store[T]) Save(ctx context.Context, forest domain.Forest[T, string]) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.rootsKey())

	var saveErr error
	domain.Walk(forest, func(n *domain.Node[T, string]) {
		if saveErr != nil {
			return
		}
		if n.ID == "" {
			saveErr = fmt.Errorf("node missing ID")
			return
		}

		data, err := json.Marshal(wireNode[T]{ID: n.ID, Parent: n.Parent, Value: n.Value})
		if err != nil {
			saveErr = fmt.Errorf("failed to marshal node %s: %w", n.ID, err)
			return
		}
		pipe.Set(ctx, s.nodeKey(n.ID), data, s.ttl)

		pipe.Del(ctx, s.childrenKey(n.ID))
		if len(n.Children) > 0 {
			ids := make([]interface{}, 0, len(n.Children))
			for _, c := range n.Children {
				ids = append(ids, c.ID)
			}
			pipe.RPush(ctx, s.childrenKey(n.ID), ids...)
			if s.ttl > 0 {
				pipe.Expire(ctx, s.childrenKey(n.ID), s.ttl)
			}
		}
	})
	if saveErr != nil {
		return saveErr
	}

	for _, root := range forest {
		pipe.RPush(ctx, s.rootsKey(), root.ID)
	}
	if s.ttl > 0 {
		pipe.Expire(ctx, s.rootsKey(), s.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save forest: %w", err)
	}
	return nil
}

// Roots returns the stored root nodes in their original order. The returned
// nodes carry no children; resolve them through ResolveChildren.
func (s *Store[T]) Roots(ctx context.Context) (domain.Forest[T, string], error) {
	ids, err := s.client.LRange(ctx, s.rootsKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list roots: %w", err)
	}
	return s.fetch(ctx, ids)
}

// Node retrieves a single stored node by id. Returns domain.ErrNodeNotFound
// when the id is unknown.
func (s *Store[T]) Node(ctx context.Context, id string) (*domain.Node[T, string], error) {
	data, err := s.client.Get(ctx, s.nodeKey(id)).Bytes()
	if errors.Is(err, backend.Nil) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNodeNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load node %s: %w", id, err)
	}
	return decodeNode[T](data)
}

// ResolveChildren implements ports.ChildResolver by reading the node's child
// id list and fetching each child node.
func (s *Store[T]) ResolveChildren(ctx context.Context, node *domain.Node[T, string]) (domain.Forest[T, string], error) {
	ids, err := s.client.LRange(ctx, s.childrenKey(node.ID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list children of %s: %w", node.ID, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return s.fetch(ctx, ids)
}

// fetch loads the nodes for the given ids, preserving order. An id without a
// stored node is a consistency error.
func (s *Store[T]) fetch(ctx context.Context, ids []string) (domain.Forest[T, string], error) {
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, s.nodeKey(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch nodes: %w", err)
	}

	nodes := make(domain.Forest[T, string], 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrNodeNotFound, ids[i])
		}
		n, err := decodeNode[T]([]byte(raw))
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// wireNode is the stored shape of one node: the flat representation, with
// children kept as a separate id list.
type wireNode[T any] struct {
	ID     string  `json:"id"`
	Parent *string `json:"parent,omitempty"`
	Value  T       `json:"value,omitempty"`
}

func decodeNode[T any](data []byte) (*domain.Node[T, string], error) {
	var w wireNode[T]
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to unmarshal node: %w", err)
	}
	return &domain.Node[T, string]{ID: w.ID, Parent: w.Parent, Value: w.Value}, nil
}
