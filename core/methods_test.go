// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in insertion-order iteration for vertices and edges.
//   - Validate constraint enforcement (loops, multi-edges, ports, positions).
//   - Check that snapshots are detached from the source graph.

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relgraph/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""
	VertexA     = "A"
	VertexB     = "B"
	VertexC     = "C"
	VertexX     = "X"
)

func TestGraph_Defaults(t *testing.T) {
	g := core.NewGraph()

	assert.Equal(t, "G", g.Name())
	assert.Equal(t, core.EngineNeato, g.Engine())
	assert.Empty(t, g.Title())
	assert.False(t, g.Positioned())

	g = core.NewGraph(core.WithName("People"), core.WithTitle("#000"), core.WithEngine(core.EngineDot))
	assert.Equal(t, "People", g.Name())
	assert.Equal(t, "#000", g.Title())
	assert.Equal(t, core.EngineDot, g.Engine())
}

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(VertexEmpty), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.AddVertex(VertexX, core.WithPosition(math.NaN(), 0)), core.ErrBadPosition)
	require.False(t, g.HasVertex(VertexX))

	require.NoError(t, g.AddVertex(VertexA, core.WithPosition(1, 2), core.WithVertexLabel("Alpha")))
	// Duplicate insert is a no-op and does not apply options.
	require.NoError(t, g.AddVertex(VertexA, core.WithPosition(9, 9)))
	require.Equal(t, 1, g.VertexCount())

	v, err := g.Vertex(VertexA)
	require.NoError(t, err)
	assert.Equal(t, "Alpha", v.Label)
	require.NotNil(t, v.Position)
	assert.Equal(t, core.Position{X: 1, Y: 2}, *v.Position)

	_, err = g.Vertex(VertexX)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_Positioned(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexA, core.WithPosition(3, -1)))
	assert.True(t, g.Positioned())

	// Returned copies must not alias internal state.
	v, err := g.Vertex(VertexA)
	require.NoError(t, err)
	v.Position.X = 100
	v2, _ := g.Vertex(VertexA)
	assert.Equal(t, 3.0, v2.Position.X)

	require.NoError(t, g.AddVertex(VertexB))
	assert.False(t, g.Positioned())
}

func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge(VertexEmpty, VertexA)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge(VertexA, VertexA)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge(VertexA, VertexB, core.WithPlacement(core.Placement{HeadPort: "up"}))
	require.ErrorIs(t, err, core.ErrBadPort)

	id, err := g.AddEdge(VertexA, VertexB)
	require.NoError(t, err)
	assert.Equal(t, "e1", id)
	_, err = g.AddEdge(VertexA, VertexB)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	// Reverse direction is a different pair.
	_, err = g.AddEdge(VertexB, VertexA)
	require.NoError(t, err)
	assert.True(t, g.HasEdge(VertexA, VertexB))
	assert.True(t, g.HasEdge(VertexB, VertexA))
	assert.False(t, g.HasEdge(VertexA, VertexC))

	lg := core.NewGraph(core.WithLoops())
	_, err = lg.AddEdge(VertexA, VertexA)
	require.NoError(t, err)
	_, err = lg.AddEdge(VertexA, VertexA)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	assert.Equal(t, 1, lg.EdgeCount())
}

func TestGraph_InsertionOrder(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.AddVertex(VertexC))
	_, err := g.AddEdge(VertexB, VertexA, core.WithLabel("+1"), core.WithColor("#90EE90"), core.WithWeight(1))
	require.NoError(t, err)
	_, err = g.AddEdge(VertexA, VertexA, core.WithLabel("-2"))
	require.NoError(t, err)

	var ids []string
	for _, v := range g.Vertices() {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{VertexC, VertexB, VertexA}, ids)

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "+1", edges[0].Label)
	assert.Equal(t, "#90EE90", edges[0].Color)
	assert.Equal(t, 1.0, edges[0].Weight)
	assert.Equal(t, "e2", edges[1].ID)
	assert.Equal(t, "-2", edges[1].Label)
}

func TestGraph_Describe(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithTitle("t"))
	require.NoError(t, g.AddVertex(VertexA, core.WithPosition(0, 0)))
	_, err := g.AddEdge(VertexA, VertexA, core.WithPlacement(core.Placement{
		LabelDistance: 2, TailPort: core.PortNorth, HeadPort: core.PortSouth, SelfLoop: true,
	}))
	require.NoError(t, err)

	d := g.Describe()
	assert.Equal(t, "t", d.Title)
	require.Len(t, d.Vertices, 1)
	require.Len(t, d.Edges, 1)
	assert.True(t, d.Edges[0].Placement.SelfLoop)

	// The snapshot is detached: later edits to the graph or the snapshot do
	// not leak across.
	d.Vertices[0].Position.X = 7
	_, err = g.AddEdge(VertexA, VertexB)
	require.NoError(t, err)
	v, err := g.Vertex(VertexA)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v.Position.X)
	assert.Len(t, d.Edges, 1)
}

func TestPort_Valid(t *testing.T) {
	for _, p := range []core.Port{core.PortAuto, core.PortNorth, core.PortSouthWest, core.PortCenter, core.PortAny} {
		assert.Truef(t, p.Valid(), "%q", p)
	}
	assert.False(t, core.Port("north").Valid())
}
