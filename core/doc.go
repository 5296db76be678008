// Package core provides the graph description: an ordered, directed,
// styled graph ready to be handed to a layout-and-drawing backend.
//
// The Graph G = (V,E) carries:
//
//   - Vertices with an optional fixed Position (nil = let the engine place it)
//   - Directed edges with a Label, a Color, the numeric Weight behind the
//     label, and a Placement (label distance, tail/head compass ports,
//     self-loop flag)
//   - A layout Engine hint, a Name and a free-text Title
//
// Why a dedicated type instead of a bare map?
//
//   - Deterministic iteration: Vertices() and Edges() return insertion order,
//     so rendering the same matrix twice yields equal Descriptions.
//   - Constraints: self-loops are rejected unless WithLoops is set, and an
//     ordered pair holds at most one edge, as in the relationship matrix.
//   - Detached snapshots: Describe() returns plain values for cmp/JSON.
//
// Configuration Options (GraphOption):
//
//	– WithName(name)        graph identifier used by encoders (default "G")
//	– WithTitle(title)      caption, drawn apart from the graph body
//	– WithEngine(engine)    layout hint (default EngineNeato)
//	– WithLoops()           permit v→v edges
//
// Core Methods:
//
//	AddVertex(id, opts...) error                  // O(1), idempotent
//	AddEdge(from, to, opts...) (edgeID, error)    // O(1), auto-adds endpoints
//	HasVertex / HasEdge / Vertex                  // O(1)
//	Vertices() / Edges()                          // O(V) / O(E)
//	Describe() Description                        // O(V+E)
//
// A Graph guards its state with a sync.RWMutex, but the intended lifecycle is
// write-once (by the renderer) and read-once (by an encoder).
package core
