// Package core defines the graph description handed to drawing backends:
// Graph, Vertex and Edge, their options, and sentinel errors.
//
// A Graph is always directed. Vertices and edges iterate in insertion order,
// which is what makes two renders of the same matrix compare equal.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - second edge for the same ordered pair.
//	ErrBadPosition         - NaN or ±Inf coordinate.
//	ErrBadPort             - unknown compass port.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge for an ordered pair that
	// already has one.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadPosition indicates a coordinate that is NaN or infinite.
	ErrBadPosition = errors.New("core: position must be finite")

	// ErrBadPort indicates a compass port outside n, ne, e, se, s, sw, w, nw, c, _.
	ErrBadPort = errors.New("core: unknown compass port")
)

// Position is a fixed 2-D coordinate in layout units (Graphviz inches).
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Port is a Graphviz compass point on a node boundary. The empty Port lets
// the backend choose.
type Port string

// Compass ports.
const (
	PortAuto      Port = ""
	PortNorth     Port = "n"
	PortNorthEast Port = "ne"
	PortEast      Port = "e"
	PortSouthEast Port = "se"
	PortSouth     Port = "s"
	PortSouthWest Port = "sw"
	PortWest      Port = "w"
	PortNorthWest Port = "nw"
	PortCenter    Port = "c"
	PortAny       Port = "_"
)

// Valid reports whether p is one of the compass ports (or PortAuto).
func (p Port) Valid() bool {
	switch p {
	case PortAuto, PortNorth, PortNorthEast, PortEast, PortSouthEast,
		PortSouth, PortSouthWest, PortWest, PortNorthWest, PortCenter, PortAny:
		return true
	}

	return false
}

// Placement tells the backend where to put an edge label relative to the
// edge and which node ports the edge attaches to.
type Placement struct {
	LabelDistance float64 `json:"label_distance"`
	TailPort      Port    `json:"tail_port,omitempty"`
	HeadPort      Port    `json:"head_port,omitempty"`
	SelfLoop      bool    `json:"self_loop"`
}

// Engine is the layout-algorithm hint passed to the drawing backend.
type Engine string

// Layout engines understood by Graphviz.
const (
	EngineNeato Engine = "neato"
	EngineDot   Engine = "dot"
	EngineFDP   Engine = "fdp"
	EngineSFDP  Engine = "sfdp"
	EngineCirco Engine = "circo"
	EngineTwopi Engine = "twopi"
)

// Vertex is a node of the description.
//
// Position is nil when the backend should place the vertex itself.
type Vertex struct {
	ID       string
	Label    string
	Position *Position
}

// Edge is a directed, styled connection From→To.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	From string
	To   string

	// Label is the text drawn next to the edge head.
	Label string

	// Color is a backend color string ("#FF9999", "grey", …) used for
	// the label and the line.
	Color string

	// Weight is the numeric value the label was formatted from.
	Weight float64

	Placement Placement
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithName sets the graph identifier used by encoders.
func WithName(name string) GraphOption {
	return func(g *Graph) { g.name = name }
}

// WithTitle sets the free-text title drawn apart from the node-and-edge body.
func WithTitle(title string) GraphOption {
	return func(g *Graph) { g.title = title }
}

// WithEngine sets the layout engine hint.
func WithEngine(e Engine) GraphOption {
	return func(g *Graph) { g.engine = e }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// VertexOption configures a vertex when added.
type VertexOption func(*Vertex)

// WithPosition pins the vertex at (x, y).
func WithPosition(x, y float64) VertexOption {
	return func(v *Vertex) { v.Position = &Position{X: x, Y: y} }
}

// WithVertexLabel overrides the displayed vertex text (default: ID).
func WithVertexLabel(label string) VertexOption {
	return func(v *Vertex) { v.Label = label }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithLabel sets the edge label.
func WithLabel(label string) EdgeOption {
	return func(e *Edge) { e.Label = label }
}

// WithColor sets the edge color.
func WithColor(color string) EdgeOption {
	return func(e *Edge) { e.Color = color }
}

// WithWeight records the numeric value behind the label.
func WithWeight(w float64) EdgeOption {
	return func(e *Edge) { e.Weight = w }
}

// WithPlacement sets label distance and ports.
func WithPlacement(p Placement) EdgeOption {
	return func(e *Edge) { e.Placement = p }
}

// Graph is the in-memory graph description.
//
// It is directed, holds at most one edge per ordered pair, optionally allows
// self-loops, and remembers insertion order of vertices and edges.
// mu guards every field below it.
type Graph struct {
	mu sync.RWMutex

	// Configuration
	name       string
	title      string
	engine     Engine
	allowLoops bool

	// Storage
	nextEdgeID uint64
	vertices   map[string]*Vertex
	vertexIDs  []string // insertion order
	edges      map[string]*Edge
	edgeIDs    []string // insertion order

	// pairCount[from][to] = number of edges from→to
	pairCount map[string]map[string]int
}

// NewGraph creates an empty Graph with the given options.
// By default: no loops, EngineNeato, name "G".
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		name:      "G",
		engine:    EngineNeato,
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		pairCount: make(map[string]map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
