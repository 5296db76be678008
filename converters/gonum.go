// SPDX-License-Identifier: MIT

package converters

import (
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/multi"

	"github.com/katalvlaran/relgraph/core"
)

// Attrs is a set of Graphviz attributes. Values are stored exactly as they
// must appear in DOT, so string values carry their own quotes.
type Attrs map[string]string

var (
	_ encoding.Attributer = Attrs{}
	_ encoding.Attributer = Node{}
	_ encoding.Attributer = Line{}
	_ dot.Node            = Node{}
	_ dot.Porter          = Line{}
	_ dot.Attributers     = (*Graph)(nil)
)

// Attributes implements encoding.Attributer, sorted by key.
func (a Attrs) Attributes() []encoding.Attribute {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	enc := make([]encoding.Attribute, 0, len(keys))
	for _, k := range keys {
		enc = append(enc, encoding.Attribute{Key: k, Value: a[k]})
	}

	return enc
}

func (a Attrs) clone() Attrs {
	c := make(Attrs, len(a))
	for k, v := range a {
		c[k] = v
	}

	return c
}

// Node is a gonum node standing for one core.Vertex.
type Node struct {
	id    int64
	name  string
	attrs Attrs
}

// ID implements graph.Node. IDs follow vertex insertion order.
func (n Node) ID() int64 { return n.id }

// Name returns the vertex ID the node was built from.
func (n Node) Name() string { return n.name }

// DOTID implements dot.Node.
func (n Node) DOTID() string { return quote(n.name) }

// Attributes implements encoding.Attributer.
func (n Node) Attributes() []encoding.Attribute { return n.attrs.Attributes() }

// Line is a gonum line standing for one core.Edge.
type Line struct {
	from, to Node
	id       int64
	attrs    Attrs

	tailPort core.Port
	headPort core.Port
}

// From implements graph.Line.
func (l Line) From() graph.Node { return l.from }

// To implements graph.Line.
func (l Line) To() graph.Node { return l.to }

// ReversedLine implements graph.Line; ports swap with the endpoints.
func (l Line) ReversedLine() graph.Line {
	l.from, l.to = l.to, l.from
	l.tailPort, l.headPort = l.headPort, l.tailPort

	return l
}

// ID implements graph.Line. IDs follow edge insertion order.
func (l Line) ID() int64 { return l.id }

// Attributes implements encoding.Attributer.
func (l Line) Attributes() []encoding.Attribute { return l.attrs.Attributes() }

// FromPort implements dot.Porter.
func (l Line) FromPort() (port, compass string) { return "", string(l.tailPort) }

// ToPort implements dot.Porter.
func (l Line) ToPort() (port, compass string) { return "", string(l.headPort) }

// Graph is a gonum directed multigraph carrying graph-wide DOT attributes.
type Graph struct {
	*multi.DirectedGraph

	name   string
	byName map[string]Node

	graphAttrs Attrs
	nodeAttrs  Attrs
	edgeAttrs  Attrs
}

// DOTAttributers implements dot.Attributers.
func (g *Graph) DOTAttributers() (graph, node, edge encoding.Attributer) {
	return g.graphAttrs, g.nodeAttrs, g.edgeAttrs
}

// Name returns the graph identifier used when marshaling.
func (g *Graph) Name() string { return g.name }

// ToGonum converts g into a gonum multigraph with DOT attributes attached.
//
// Implementation:
//   - Stage 1: one Node per vertex, IDs 0..V-1 in insertion order; pinned
//     vertices get pos="x,y!".
//   - Stage 2: one Line per edge, IDs 0..E-1 in insertion order, carrying
//     headlabel, fontcolor, color and labeldistance; self-loop ports become
//     DOT compass points.
//   - Stage 3: graph attributes (layout, optional title) merged over the
//     encoder defaults.
//
// Errors: ErrNilGraph.
//
// Complexity: O(V + E).
func ToGonum(g *core.Graph, opts ...Option) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	enc := newEncoder(opts)

	out := &Graph{
		DirectedGraph: multi.NewDirectedGraph(),
		name:          g.Name(),
		byName:        make(map[string]Node, g.VertexCount()),
		graphAttrs:    enc.graph.clone(),
		nodeAttrs:     enc.node.clone(),
		edgeAttrs:     enc.edge.clone(),
	}
	if _, set := out.graphAttrs["layout"]; !set && g.Engine() != "" {
		out.graphAttrs["layout"] = quote(string(g.Engine()))
	}
	if title := g.Title(); title != "" && enc.title {
		out.graphAttrs["label"] = quote(title)
		out.graphAttrs["labelloc"] = quote("t")
	}

	for i, v := range g.Vertices() {
		attrs := Attrs{"label": quote(v.ID)}
		if v.Label != "" {
			attrs["label"] = quote(v.Label)
		}
		if v.Position != nil {
			attrs["pos"] = quote(formatFloat(v.Position.X) + "," + formatFloat(v.Position.Y) + "!")
		}
		n := Node{id: int64(i), name: v.ID, attrs: attrs}
		out.AddNode(n)
		out.byName[v.ID] = n
	}

	for i, e := range g.Edges() {
		attrs := Attrs{
			"headlabel":     quote(e.Label),
			"fontcolor":     quote(e.Color),
			"color":         quote(e.Color),
			"labeldistance": quote(formatFloat(e.Placement.LabelDistance)),
		}
		out.SetLine(Line{
			from:     out.byName[e.From],
			to:       out.byName[e.To],
			id:       int64(i),
			attrs:    attrs,
			tailPort: e.Placement.TailPort,
			headPort: e.Placement.HeadPort,
		})
	}

	return out, nil
}

func quote(s string) string { return strconv.Quote(s) }

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
