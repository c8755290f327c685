// Package http exposes a forest over a JSON API and resolves children from
// such an API, so one process can serve a forest and another can lazily walk
// it without ever materializing the whole tree.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bcrumbs/booben-common-tree/pkg/adapters/memory"
	"github.com/bcrumbs/booben-common-tree/pkg/domain"
)

// NewHandler creates an HTTP handler serving the indexed forest.
//
// Routes:
//
//	GET /roots                - ordered root nodes (shallow)
//	GET /nodes/{id}           - a single node (shallow)
//	GET /nodes/{id}/children  - ordered children of a node (shallow)
//
// Nodes are serialized shallow: the children of a node are never inlined,
// clients fetch them through the children route. This keeps responses
// bounded regardless of subtree size.
func NewHandler[T any](index *memory.Index[T]) http.Handler {
	s := &server[T]{index: index}

	r := chi.NewRouter()
	r.Get("/roots", s.handleRoots)
	r.Get("/nodes/{id}", s.handleNode)
	r.Get("/nodes/{id}/children", s.handleChildren)

	return enableCORS(r)
}

type server[T any] struct {
	index *memory.Index[T]
}

func (s *server[T]) handleRoots(w http.ResponseWriter, r *http.Request) {
	writeNodes(w, s.index.Roots())
}

func (s *server[T]) handleNode(w http.ResponseWriter, r *http.Request) {
	node, err := s.index.Node(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, shallow(node))
}

func (s *server[T]) handleChildren(w http.ResponseWriter, r *http.Request) {
	children, err := s.index.Children(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeNodes(w, children)
}

// shallow strips the nested children from a node before serialization.
func shallow[T any](n *domain.Node[T, string]) *domain.Node[T, string] {
	return &domain.Node[T, string]{ID: n.ID, Parent: n.Parent, Value: n.Value}
}

func writeNodes[T any](w http.ResponseWriter, nodes domain.Forest[T, string]) {
	out := make(domain.Forest[T, string], 0, len(nodes))
	for _, n := range nodes {
		out = append(out, shallow(n))
	}
	writeJSON(w, out)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrNodeNotFound) {
		status = http.StatusNotFound
	}
	http.Error(w, err.Error(), status)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
