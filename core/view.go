// File: view.go
// Role: Non-mutating snapshots of a Graph (plain values for comparison
// and JSON output).
// Determinism:
//   - Vertices and edges keep insertion order; edge IDs are preserved.

package core

// VertexView is the JSON-friendly form of a Vertex.
type VertexView struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Position *Position `json:"position,omitempty"`
}

// EdgeView is the JSON-friendly form of an Edge.
type EdgeView struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Label     string    `json:"label"`
	Color     string    `json:"color"`
	Weight    float64   `json:"weight"`
	Placement Placement `json:"placement"`
}

// Description is a detached, comparable snapshot of a Graph.
// Two renders of the same input produce Descriptions equal under
// reflect.DeepEqual / cmp.Diff.
type Description struct {
	Name     string       `json:"name"`
	Title    string       `json:"title,omitempty"`
	Engine   Engine       `json:"engine"`
	Vertices []VertexView `json:"vertices"`
	Edges    []EdgeView   `json:"edges"`
}

// Describe returns a snapshot of g. The result shares no memory with g.
// Complexity: O(V + E).
func (g *Graph) Describe() Description {
	g.mu.RLock()
	defer g.mu.RUnlock()

	d := Description{
		Name:     g.name,
		Title:    g.title,
		Engine:   g.engine,
		Vertices: make([]VertexView, 0, len(g.vertexIDs)),
		Edges:    make([]EdgeView, 0, len(g.edgeIDs)),
	}
	for _, id := range g.vertexIDs {
		v := copyVertex(g.vertices[id])
		d.Vertices = append(d.Vertices, VertexView{ID: v.ID, Label: v.Label, Position: v.Position})
	}
	for _, id := range g.edgeIDs {
		e := g.edges[id]
		d.Edges = append(d.Edges, EdgeView{
			ID: e.ID, From: e.From, To: e.To,
			Label: e.Label, Color: e.Color, Weight: e.Weight,
			Placement: e.Placement,
		})
	}

	return d
}
