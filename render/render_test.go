// SPDX-License-Identifier: MIT
// Package render_test verifies labels, colors, placement and layout of
// rendered descriptions.
package render_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relgraph/core"
	"github.com/katalvlaran/relgraph/matrix"
	"github.com/katalvlaran/relgraph/render"
	"github.com/katalvlaran/relgraph/table"
)

const people = `
        Daffy   Ernie   Ivan    Jason
Daffy   -3      -3      -4      4
Ernie   3       -1      0       6
Ivan    0       -2      2       -5
Jason   1       6       3       -5
`

func parse(t *testing.T, raw string) *matrix.Matrix {
	t.Helper()
	m, err := table.Parse(raw)
	require.NoError(t, err)
	return m
}

func edgeMap(g *core.Graph) map[matrix.Pair]core.Edge {
	out := make(map[matrix.Pair]core.Edge)
	for _, e := range g.Edges() {
		out[matrix.Pair{From: e.From, To: e.To}] = e
	}
	return out
}

func TestRender_LabelsAndColors(t *testing.T) {
	t.Parallel()

	m := parse(t, "A B\nA 1 -1\nB 0 2")
	g, err := render.Render(m, render.AutoLayout(), render.DefaultStyle())
	require.NoError(t, err)

	edges := edgeMap(g)
	require.Len(t, edges, 4)

	cases := []struct {
		from, to, label, color string
	}{
		{"A", "A", "+1", render.DefaultPositiveColor},
		{"A", "B", "-1", render.DefaultNegativeColor},
		{"B", "A", "0", render.DefaultZeroColor},
		{"B", "B", "+2", render.DefaultPositiveColor},
	}
	for _, tc := range cases {
		e, ok := edges[matrix.Pair{From: tc.from, To: tc.to}]
		require.Truef(t, ok, "missing %s->%s", tc.from, tc.to)
		assert.Equal(t, tc.label, e.Label)
		assert.Equal(t, tc.color, e.Color)
	}
}

func TestRender_LabelSignProperty(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{people, "A B\nA 0.5 -0.25\nB 0.0 -7"} {
		g, err := render.Render(parse(t, raw), render.AutoLayout(), render.DefaultStyle())
		require.NoError(t, err)
		for _, e := range g.Edges() {
			switch {
			case e.Weight > 0:
				assert.True(t, strings.HasPrefix(e.Label, "+"), e.Label)
			case e.Weight < 0:
				assert.True(t, strings.HasPrefix(e.Label, "-"), e.Label)
			default:
				assert.Equal(t, "0", e.Label)
			}
		}
	}
}

func TestRender_ZeroEdgePolicy(t *testing.T) {
	t.Parallel()

	m := parse(t, people)

	style := render.DefaultStyle()
	g, err := render.Render(m, render.AutoLayout(), style)
	require.NoError(t, err)
	assert.Equal(t, 16, g.EdgeCount())
	assert.True(t, g.HasEdge("Ernie", "Ivan"))

	style.DrawZeroEdges = false
	g, err = render.Render(m, render.AutoLayout(), style)
	require.NoError(t, err)
	assert.Equal(t, 14, g.EdgeCount())
	assert.False(t, g.HasEdge("Ernie", "Ivan"))
	assert.False(t, g.HasEdge("Ivan", "Daffy"))
	// Vertices stay even when all their zero edges are skipped.
	assert.Equal(t, 4, g.VertexCount())
}

func TestRender_SelfLoopPlacementDiffers(t *testing.T) {
	t.Parallel()

	g, err := render.Render(parse(t, people), render.AutoLayout(), render.DefaultStyle())
	require.NoError(t, err)

	var self, inter []core.Placement
	for _, e := range g.Edges() {
		if e.From == e.To {
			self = append(self, e.Placement)
		} else {
			inter = append(inter, e.Placement)
		}
	}
	require.Len(t, self, 4)
	require.Len(t, inter, 12)
	for _, s := range self {
		assert.True(t, s.SelfLoop)
		assert.Equal(t, render.DefaultSelfLoopLabelDistance, s.LabelDistance)
		assert.Equal(t, core.PortNorth, s.TailPort)
		assert.Equal(t, core.PortSouth, s.HeadPort)
		for _, i := range inter {
			assert.NotEqual(t, s, i)
		}
	}
	for _, i := range inter {
		assert.Equal(t, render.DefaultInterEdgeLabelDistance, i.LabelDistance)
		assert.Equal(t, core.PortAuto, i.HeadPort)
	}
}

func TestRender_Idempotent(t *testing.T) {
	t.Parallel()

	m := parse(t, people)
	layout := render.FixedLayout("Jason")
	style := render.DefaultStyle()

	g1, err := render.Render(m, layout, style, render.WithTitle("t"))
	require.NoError(t, err)
	g2, err := render.Render(m, layout, style, render.WithTitle("t"))
	require.NoError(t, err)

	if diff := cmp.Diff(g1.Describe(), g2.Describe()); diff != "" {
		t.Fatalf("renders differ (-first +second):\n%s", diff)
	}
}

func TestRender_FixedTriangleAndCenter(t *testing.T) {
	t.Parallel()

	g, err := render.Render(parse(t, people), render.FixedLayout("Jason"), render.DefaultStyle())
	require.NoError(t, err)
	require.True(t, g.Positioned())

	want := map[string]core.Position{
		"Jason": {X: 0, Y: 0},
		"Daffy": {X: 3, Y: 0},
		"Ernie": {X: -1.5, Y: 2.598076211},
		"Ivan":  {X: -1.5, Y: -2.598076211},
	}
	for id, p := range want {
		v, err := g.Vertex(id)
		require.NoError(t, err)
		require.NotNil(t, v.Position)
		assert.InDelta(t, p.X, v.Position.X, 1e-9, id)
		assert.InDelta(t, p.Y, v.Position.Y, 1e-9, id)
	}
}

func TestRender_FixedExplicitPositionsAndRing(t *testing.T) {
	t.Parallel()

	layout := render.LayoutPolicy{
		Mode:       render.LayoutFixed,
		Radius:     2,
		StartAngle: 90,
		Ring:       []string{"A", "B"},
		Positions:  map[string]core.Position{"C": {X: 7, Y: 7}},
	}
	g, err := render.Render(parse(t, "A B C\nA 1"), layout, render.DefaultStyle())
	require.NoError(t, err)

	a, _ := g.Vertex("A")
	b, _ := g.Vertex("B")
	c, _ := g.Vertex("C")
	assert.InDelta(t, 0, a.Position.X, 1e-9)
	assert.InDelta(t, 2, a.Position.Y, 1e-9)
	assert.InDelta(t, 0, b.Position.X, 1e-9)
	assert.InDelta(t, -2, b.Position.Y, 1e-9)
	assert.Equal(t, core.Position{X: 7, Y: 7}, *c.Position)
	assert.Equal(t, render.DefaultEngine, g.Engine())
}

func TestRender_MissingLayoutPosition(t *testing.T) {
	t.Parallel()

	layout := render.LayoutPolicy{
		Mode:   render.LayoutFixed,
		Radius: 3,
		Pinned: "A",
		Ring:   []string{"B"},
	}
	g, err := render.Render(parse(t, "A B C\nA 1 1 1"), layout, render.DefaultStyle())
	require.Nil(t, g)
	require.ErrorIs(t, err, render.ErrMissingLayoutPosition)

	var mErr *render.MissingLayoutPositionError
	require.True(t, errors.As(err, &mErr))
	assert.Equal(t, "C", mErr.Entity)
}

func TestRender_AutoLayoutHasNoPositions(t *testing.T) {
	t.Parallel()

	layout := render.AutoLayout()
	layout.Engine = core.EngineFDP
	g, err := render.Render(parse(t, people), layout, render.DefaultStyle())
	require.NoError(t, err)

	for _, v := range g.Vertices() {
		assert.Nil(t, v.Position)
	}
	assert.Equal(t, core.EngineFDP, g.Engine())
}

func TestRender_InvalidPolicies(t *testing.T) {
	t.Parallel()

	m := parse(t, "A\nA 1")

	_, err := render.Render(nil, render.AutoLayout(), render.DefaultStyle())
	require.ErrorIs(t, err, render.ErrNilMatrix)

	bad := render.DefaultStyle()
	bad.SelfLoopLabelDistance = -1
	_, err = render.Render(m, render.AutoLayout(), bad)
	require.ErrorIs(t, err, render.ErrInvalidStyle)

	bad = render.DefaultStyle()
	bad.ZeroColor = ""
	_, err = render.Render(m, render.AutoLayout(), bad)
	require.ErrorIs(t, err, render.ErrInvalidStyle)

	bad = render.DefaultStyle()
	bad.SelfLoopHeadPort = "south"
	_, err = render.Render(m, render.AutoLayout(), bad)
	require.ErrorIs(t, err, render.ErrInvalidStyle)

	// Without ports a self-loop needs the larger label distance.
	bad = render.DefaultStyle()
	bad.SelfLoopTailPort, bad.SelfLoopHeadPort = core.PortAuto, core.PortAuto
	bad.SelfLoopLabelDistance = bad.InterEdgeLabelDistance
	_, err = render.Render(m, render.AutoLayout(), bad)
	require.ErrorIs(t, err, render.ErrInvalidStyle)
	bad.SelfLoopLabelDistance = bad.InterEdgeLabelDistance + 0.5
	_, err = render.Render(m, render.AutoLayout(), bad)
	require.NoError(t, err)
	// Ports alone are enough to tell the two apart.
	anchored := render.DefaultStyle()
	anchored.SelfLoopLabelDistance = anchored.InterEdgeLabelDistance
	_, err = render.Render(m, render.AutoLayout(), anchored)
	require.NoError(t, err)

	layout := render.FixedLayout("A")
	layout.Radius = 0
	_, err = render.Render(m, layout, render.DefaultStyle())
	require.ErrorIs(t, err, render.ErrInvalidLayout)

	layout = render.FixedLayout("A")
	layout.Positions = map[string]core.Position{"A": {X: math.NaN()}}
	_, err = render.Render(m, layout, render.DefaultStyle())
	require.ErrorIs(t, err, render.ErrInvalidLayout)
	require.ErrorIs(t, layout.Validate(), render.ErrInvalidLayout)
}

func TestRender_RingSkipsPlacedEntities(t *testing.T) {
	t.Parallel()

	// The pinned entity sits at the origin; the other three share the
	// circle evenly even though A is listed in the ring.
	layout := render.FixedLayout("A")
	layout.Ring = []string{"A", "B", "C", "D"}
	g, err := render.Render(parse(t, "A B C D\nA 1"), layout, render.DefaultStyle())
	require.NoError(t, err)

	want := map[string]core.Position{
		"A": {X: 0, Y: 0},
		"B": {X: 3, Y: 0},
		"C": {X: -1.5, Y: 2.598076211},
		"D": {X: -1.5, Y: -2.598076211},
	}
	for id, p := range want {
		v, err := g.Vertex(id)
		require.NoError(t, err)
		require.NotNil(t, v.Position)
		assert.InDelta(t, p.X, v.Position.X, 1e-9, id)
		assert.InDelta(t, p.Y, v.Position.Y, 1e-9, id)
	}
}

func TestRender_VariationAndLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	v := render.Variation{
		Name:   "large-triangle",
		Title:  "#000 - Large Triangle",
		Layout: render.FixedLayout("Jason"),
		Style:  render.DefaultStyle(),
	}
	g, err := render.RenderVariation(parse(t, people), v, render.WithLogger(zerolog.New(&buf)))
	require.NoError(t, err)

	assert.Equal(t, "large-triangle", g.Name())
	assert.Equal(t, "#000 - Large Triangle", g.Title())
	assert.Contains(t, buf.String(), `"message":"graph rendered"`)
	assert.Contains(t, buf.String(), `"layout":"fixed"`)
}

func TestRender_VertexLabels(t *testing.T) {
	t.Parallel()

	v := render.Variation{
		Name:         "scored",
		Layout:       render.AutoLayout(),
		Style:        render.DefaultStyle(),
		VertexLabels: map[string]string{"Ivan": "Ivan\n0.42", "Nobody": "x"},
	}
	g, err := render.RenderVariation(parse(t, people), v)
	require.NoError(t, err)

	labels := make(map[string]string)
	for _, vx := range g.Vertices() {
		labels[vx.ID] = vx.Label
	}
	assert.Equal(t, map[string]string{"Daffy": "", "Ernie": "", "Ivan": "Ivan\n0.42", "Jason": ""}, labels)
	assert.False(t, g.HasVertex("Nobody"))
}

func TestClassify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, render.ClassNegative, render.Classify(matrix.Int(-1)))
	assert.Equal(t, render.ClassZero, render.Classify(matrix.Float(0)))
	assert.Equal(t, render.ClassPositive, render.Classify(matrix.Float(0.1)))
	assert.Equal(t, "warning", render.ClassNegative.String())
	assert.Equal(t, "neutral", render.ClassZero.String())
	assert.Equal(t, "positive", render.ClassPositive.String())
}

func TestParseLayoutMode(t *testing.T) {
	t.Parallel()

	m, err := render.ParseLayoutMode("fixed")
	require.NoError(t, err)
	assert.Equal(t, render.LayoutFixed, m)
	m, err = render.ParseLayoutMode("auto")
	require.NoError(t, err)
	assert.Equal(t, render.LayoutAuto, m)
	_, err = render.ParseLayoutMode("spiral")
	require.ErrorIs(t, err, render.ErrInvalidLayout)
}
