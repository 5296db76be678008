// SPDX-License-Identifier: MIT

package render

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/relgraph/core"
	"github.com/katalvlaran/relgraph/matrix"
)

// Option configures a Render call.
type Option func(*options)

type options struct {
	name   string
	title  string
	labels map[string]string
	log    zerolog.Logger
}

// WithTitle sets the free-text title carried by the description.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithName sets the graph identifier (default "G").
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithVertexLabels replaces the displayed text of the named entities.
// Entities without an entry keep their name.
func WithVertexLabels(labels map[string]string) Option {
	return func(o *options) { o.labels = labels }
}

// WithLogger logs a debug summary of each render on l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l.With().Str("component", "render").Logger() }
}

// Render converts m into a styled directed graph description.
//
// Implementation:
//   - Stage 1: validate policies and compute the fixed position table.
//   - Stage 2: add every entity as a vertex, in matrix entity order.
//   - Stage 3: walk pairs in matrix order; classify, color, label and place
//     each, skipping zero weights when the style says so.
//
// Behavior highlights:
//   - Pure with respect to m: equal inputs give equal Describe() output.
//   - Self-loops always get a placement distinct from inter-entity edges
//     (SelfLoop flag plus the self-loop ports).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidStyle, ErrInvalidLayout.
//   - *MissingLayoutPositionError under LayoutFixed.
//
// Complexity: O(V + E).
func Render(m *matrix.Matrix, layout LayoutPolicy, style StylePolicy, opts ...Option) (*core.Graph, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	o := options{name: "G", log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := style.Validate(); err != nil {
		return nil, err
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	entities := m.Entities()
	table, err := layout.positions(entities)
	if err != nil {
		return nil, err
	}

	engine := layout.Engine
	if engine == "" {
		engine = DefaultEngine
	}
	g := core.NewGraph(
		core.WithName(o.name),
		core.WithTitle(o.title),
		core.WithEngine(engine),
		core.WithLoops(),
	)

	for _, id := range entities {
		var vopts []core.VertexOption
		if p, ok := table[id]; ok {
			vopts = append(vopts, core.WithPosition(p.X, p.Y))
		}
		if label, ok := o.labels[id]; ok {
			vopts = append(vopts, core.WithVertexLabel(label))
		}
		if err = g.AddVertex(id, vopts...); err != nil {
			return nil, fmt.Errorf("render: vertex %q: %w", id, err)
		}
	}

	skipped := 0
	for _, e := range m.Entries() {
		class := Classify(e.Weight)
		if class == ClassZero && !style.DrawZeroEdges {
			skipped++
			continue
		}
		_, err = g.AddEdge(e.From, e.To,
			core.WithLabel(FormatLabel(e.Weight)),
			core.WithColor(style.ColorFor(class)),
			core.WithWeight(e.Weight.Float64()),
			core.WithPlacement(style.PlacementFor(e.From, e.To)),
		)
		if err != nil {
			return nil, fmt.Errorf("render: edge %s: %w", e.Pair, err)
		}
	}

	o.log.Debug().
		Str("graph", o.name).
		Str("layout", layout.Mode.String()).
		Int("vertices", g.VertexCount()).
		Int("edges", g.EdgeCount()).
		Int("zero_skipped", skipped).
		Msg("graph rendered")

	return g, nil
}

// Variation is one named stylistic rendering of a matrix.
type Variation struct {
	Name   string
	Title  string
	Layout LayoutPolicy
	Style  StylePolicy
	// VertexLabels, when set, is passed to WithVertexLabels.
	VertexLabels map[string]string
}

// RenderVariation renders m with v's policies, name, title and labels.
func RenderVariation(m *matrix.Matrix, v Variation, opts ...Option) (*core.Graph, error) {
	all := make([]Option, 0, len(opts)+3)
	if v.Name != "" {
		all = append(all, WithName(v.Name))
	}
	all = append(all, WithTitle(v.Title))
	if v.VertexLabels != nil {
		all = append(all, WithVertexLabels(v.VertexLabels))
	}
	all = append(all, opts...)

	return Render(m, v.Layout, v.Style, all...)
}
