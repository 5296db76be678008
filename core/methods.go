// Package core: Graph method implementations.
//
// Every method takes g.mu; readers use RLock. Vertices and edges are stored
// in maps for O(1) lookup plus ID slices for insertion-order iteration.

package core

import (
	"fmt"
	"math"
)

const (
	edgeIDPrefix = "e"
)

// AddVertex inserts a new vertex with the given ID.
// Returns ErrEmptyVertexID if id is empty and ErrBadPosition for non-finite
// coordinates. If the vertex already exists, this is a no-op (idempotent)
// and opts are not applied.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	v := &Vertex{ID: id, Label: id}
	for _, opt := range opts {
		opt(v)
	}
	if v.Position != nil && !finite(*v.Position) {
		return fmt.Errorf("AddVertex(%q): %w", id, ErrBadPosition)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(v)

	return nil
}

func (g *Graph) addVertexLocked(v *Vertex) {
	if _, exists := g.vertices[v.ID]; exists {
		return
	}
	g.vertices[v.ID] = v
	g.vertexIDs = append(g.vertexIDs, v.ID)
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex with the given ID.
// Complexity: O(1).
func (g *Graph) Vertex(id string) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}

	return copyVertex(v), nil
}

// AddEdge creates a directed edge from→to and returns its ID.
// Missing endpoints are added (unpositioned).
//
// Returns ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed
// (the pair already has an edge), ErrBadPort.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	e := &Edge{From: from, To: to}
	for _, opt := range opts {
		opt(e)
	}
	if !e.Placement.TailPort.Valid() || !e.Placement.HeadPort.Valid() {
		return "", fmt.Errorf("AddEdge(%s->%s): %w", from, to, ErrBadPort)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Multi-edge check
	if g.pairCount[from][to] > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	// 3) Ensure both endpoints exist
	g.addVertexLocked(&Vertex{ID: from, Label: from})
	g.addVertexLocked(&Vertex{ID: to, Label: to})

	// 4) Store under a fresh ID
	g.nextEdgeID++
	e.ID = fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID)
	g.edges[e.ID] = e
	g.edgeIDs = append(g.edgeIDs, e.ID)
	if g.pairCount[from] == nil {
		g.pairCount[from] = make(map[string]int)
	}
	g.pairCount[from][to]++

	return e.ID, nil
}

// HasEdge reports true if at least one edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.pairCount[from][to] > 0
}

// Vertices returns copies of all vertices in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Vertex, 0, len(g.vertexIDs))
	for _, id := range g.vertexIDs {
		out = append(out, copyVertex(g.vertices[id]))
	}

	return out
}

// Edges returns copies of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, len(g.edgeIDs))
	for _, id := range g.edgeIDs {
		out = append(out, *g.edges[id])
	}

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Positioned reports whether every vertex carries a fixed Position.
// An empty graph reports false.
func (g *Graph) Positioned() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if len(g.vertices) == 0 {
		return false
	}
	for _, v := range g.vertices {
		if v.Position == nil {
			return false
		}
	}

	return true
}

// Name returns the graph identifier.
func (g *Graph) Name() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.name
}

// Title returns the free-text title.
func (g *Graph) Title() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.title
}

// Engine returns the layout engine hint.
func (g *Graph) Engine() Engine {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.engine
}

func copyVertex(v *Vertex) Vertex {
	out := Vertex{ID: v.ID, Label: v.Label}
	if v.Position != nil {
		p := *v.Position
		out.Position = &p
	}

	return out
}

func finite(p Position) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
