// SPDX-License-Identifier: MIT

package converters

// Option customizes how a core.Graph is encoded.
type Option func(*encoder)

type encoder struct {
	graph Attrs
	node  Attrs
	edge  Attrs
	title bool
}

// Default DOT attributes applied to every node and edge. They reproduce the
// small filled nodes and head-anchored labels of the relationship diagram.
var (
	DefaultNodeAttrs = Attrs{
		"shape":     quote("circle"),
		"style":     quote("filled"),
		"fillcolor": quote("lightblue"),
		"fontsize":  quote("14"),
	}
	DefaultEdgeAttrs = Attrs{
		"labelangle": quote("0"),
		"labelfloat": quote("false"),
		"penwidth":   quote("0.5"),
	}
)

func newEncoder(opts []Option) encoder {
	e := encoder{
		graph: Attrs{},
		node:  DefaultNodeAttrs.clone(),
		edge:  DefaultEdgeAttrs.clone(),
		title: true,
	}
	for _, opt := range opts {
		opt(&e)
	}

	return e
}

// WithGraphAttr sets a graph-wide attribute. The value is quoted on output.
// Setting "layout" overrides the graph's engine.
// Panics on an empty key.
func WithGraphAttr(key, value string) Option {
	mustKey(key)

	return func(e *encoder) { e.graph[key] = quote(value) }
}

// WithNodeAttr sets a default attribute for every node. Panics on an empty key.
func WithNodeAttr(key, value string) Option {
	mustKey(key)

	return func(e *encoder) { e.node[key] = quote(value) }
}

// WithEdgeAttr sets a default attribute for every edge. Panics on an empty key.
func WithEdgeAttr(key, value string) Option {
	mustKey(key)

	return func(e *encoder) { e.edge[key] = quote(value) }
}

// WithoutTitle omits the graph label even when the graph has a title.
// Use it when the title is drawn separately, e.g. by a caption compositor.
func WithoutTitle() Option {
	return func(e *encoder) { e.title = false }
}

// WithoutDefaults drops DefaultNodeAttrs and DefaultEdgeAttrs.
func WithoutDefaults() Option {
	return func(e *encoder) {
		e.node = Attrs{}
		e.edge = Attrs{}
	}
}

func mustKey(key string) {
	if key == "" {
		panic(ErrEmptyAttrKey.Error())
	}
}
