package http_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/bcrumbs/booben-common-tree/pkg/adapters/http"
	"github.com/bcrumbs/booben-common-tree/pkg/adapters/memory"
	"github.com/bcrumbs/booben-common-tree/pkg/domain"
	"github.com/bcrumbs/booben-common-tree/pkg/walker"
)

func TestResolver_LazyWalkOverHTTP(t *testing.T) {
	forest := domain.Forest[payload, string]{
		node("a", node("b", node("d"), node("e")), node("c")),
		node("f"),
	}
	idx, err := memory.NewIndex(forest)
	require.NoError(t, err)

	srv := httptest.NewServer(httpAdapter.NewHandler(idx))
	t.Cleanup(srv.Close)

	resolver := httpAdapter.NewResolver[payload](srv.URL)
	ctx := context.Background()

	roots, err := resolver.Roots(ctx)
	require.NoError(t, err)

	w, err := walker.NewLazy[payload, string](roots, resolver)
	require.NoError(t, err)

	var got []string
	for {
		n, err := w.Next(ctx)
		require.NoError(t, err)
		if n == nil {
			break
		}
		got = append(got, n.ID)
	}

	// The remote walk reproduces the in-memory pre-order exactly.
	var expected []string
	domain.Walk(forest, func(n *domain.Node[payload, string]) {
		expected = append(expected, n.ID)
	})
	assert.Equal(t, expected, got)
}

func TestResolver_ServerGone(t *testing.T) {
	srv := httptest.NewServer(nil)
	url := srv.URL
	srv.Close()

	resolver := httpAdapter.NewResolver[payload](url)
	_, err := resolver.ResolveChildren(context.Background(), node("a"))
	assert.Error(t, err)
}
